// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package guard_test

import (
	"testing"

	"github.com/awnumar/memguard"
	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/report-sealer/internal/guard"
)

// The process-wide purge run on exit and on interrupt wipes buffers that
// were never released, and a later release is still safe.
func TestResource_PurgeWipesUnreleased(t *testing.T) {
	res := guard.NewResource([]byte("secret clause"))

	memguard.Purge()

	assert.Empty(t, res.Bytes())
	assert.False(t, res.Released())
	res.Release()
	assert.Equal(t, 1, res.Releases())
}
