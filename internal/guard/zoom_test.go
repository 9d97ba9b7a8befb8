// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package guard_test

import (
	"testing"

	"github.com/MKhiriev/report-sealer/internal/guard"
	"github.com/stretchr/testify/assert"
)

func TestZoom_Steps(t *testing.T) {
	z := guard.DefaultZoom
	assert.Equal(t, guard.Zoom(115), z.In())
	assert.Equal(t, guard.Zoom(85), z.Out())
	assert.Equal(t, guard.MaxZoom, guard.Zoom(240).In())
	assert.Equal(t, guard.MinZoom, guard.Zoom(60).Out())
}

func TestClampZoom(t *testing.T) {
	assert.Equal(t, guard.MinZoom, guard.ClampZoom(0))
	assert.Equal(t, guard.MaxZoom, guard.ClampZoom(1000))
	assert.Equal(t, guard.Zoom(130), guard.ClampZoom(130))
}

func TestZoom_Layout(t *testing.T) {
	assert.Equal(t, 80, guard.DefaultZoom.WrapWidth(80))
	assert.Equal(t, 160, guard.MinZoom.WrapWidth(80))
	assert.Equal(t, 32, guard.MaxZoom.WrapWidth(80))
	assert.Equal(t, 1, guard.MaxZoom.WrapWidth(1))

	assert.Equal(t, 0, guard.DefaultZoom.LineGap())
	assert.Equal(t, 1, guard.Zoom(160).LineGap())
	assert.Equal(t, 2, guard.MaxZoom.LineGap())
	assert.Equal(t, "100%", guard.DefaultZoom.String())
}
