// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package guard

import (
	"sync"
	"sync/atomic"

	"github.com/awnumar/memguard"
)

// Resource is the single owner of a decrypted payload.
//
// The bytes live in a memguard locked buffer: excluded from swap and core
// dumps, guarded by canary pages, and wiped when released. Release destroys
// the buffer exactly once no matter how many exit paths call it.
type Resource struct {
	once     sync.Once
	buf      *memguard.LockedBuffer
	releases atomic.Int32
	onFree   func()
}

// NewResource moves plaintext into a locked buffer. The source slice is
// wiped and must not be used afterwards.
func NewResource(plaintext []byte) *Resource {
	return &Resource{buf: memguard.NewBufferFromBytes(plaintext)}
}

// Bytes returns a view of the locked buffer, or nil once released. Callers
// must not retain the slice beyond the current render.
func (r *Resource) Bytes() []byte {
	if r.Released() {
		return nil
	}
	return r.buf.Bytes()
}

// Size is the payload length, or 0 once released.
func (r *Resource) Size() int {
	if r.Released() {
		return 0
	}
	return r.buf.Size()
}

// Release wipes and frees the buffer. Only the first call has an effect.
func (r *Resource) Release() {
	r.once.Do(func() {
		r.buf.Destroy()
		r.releases.Add(1)
		if r.onFree != nil {
			r.onFree()
		}
	})
}

// Released reports whether Release has run.
func (r *Resource) Released() bool {
	return r.releases.Load() > 0
}

// Releases is the number of times the buffer was actually destroyed. It is
// 0 before release and 1 after, never more.
func (r *Resource) Releases() int {
	return int(r.releases.Load())
}
