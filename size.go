// Copyright 2017 The Memory Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package memory

import "unsafe"

// AllocSize returns the exact usable payload capacity of a live allocation,
// in bytes. It returns 0 for a nil/zero-capacity b. AllocSize does not
// acquire the spinlock (spec.md §4.7, §5): it is safe to call concurrently
// with operations on other allocations, but not concurrently with a
// Free/Realloc of this same allocation.
func (p *Pool) AllocSize(b []byte) int {
	b = b[:cap(b)]
	if len(b) == 0 {
		return 0
	}
	return p.UnsafeAllocSize(unsafe.Pointer(&b[0]))
}

// UnsafeAllocSize is the unsafe.Pointer-based counterpart of AllocSize.
func (p *Pool) UnsafeAllocSize(ptr unsafe.Pointer) int {
	if ptr == nil {
		return 0
	}
	return headerOf(uintptr(ptr)).payloadBytes()
}
