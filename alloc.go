// Copyright 2017 The Memory Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package memory

import (
	"fmt"
	"os"
	"unsafe"
)

// maxUintptr is the largest representable uintptr value.
const maxUintptr = ^uintptr(0)

// unitsNeeded converts a requested payload size in bytes to the number of
// units a block must span, header included. It reports false if size is
// zero or the request (plus header and alignment rounding) would overflow
// address arithmetic — spec.md §4.4's two null-returning failure modes
// that do not depend on free-list contents.
func unitsNeeded(size int) (uintptr, bool) {
	if size <= 0 {
		return 0, false
	}

	n := uintptr(size)
	if n > maxUintptr-unitSize { // rounding up would overflow
		return 0, false
	}

	units := roundupUintptr(n, unitSize) / unitSize
	if units > maxUintptr-1 {
		return 0, false
	}

	return units + 1, true
}

// Alloc returns a byte slice of size bytes carved out of the pool, or nil
// if size is invalid or no free block is large enough. The returned
// memory's contents are unspecified. Alloc policy is next-fit (spec.md
// §4.4): the search resumes from where the previous Alloc/Free left off.
func (p *Pool) Alloc(size int) (r []byte) {
	if trace {
		defer func() { fmt.Fprintf(os.Stderr, "Alloc(%#x) %p\n", size, addrOf(r)) }()
	}
	ptr := p.UnsafeAlloc(size)
	if ptr == nil {
		return nil
	}
	return unsafe.Slice((*byte)(ptr), size)
}

// Calloc is like Alloc except the returned memory is zeroed.
func (p *Pool) Calloc(size int) []byte {
	b := p.Alloc(size)
	for i := range b {
		b[i] = 0
	}
	return b
}

// UnsafeAlloc is the unsafe.Pointer-based counterpart of Alloc.
func (p *Pool) UnsafeAlloc(size int) unsafe.Pointer {
	need, ok := unitsNeeded(size)
	if !ok {
		return nil
	}

	p.mu.Lock()
	h := p.allocLocked(need)
	if h != nil {
		p.allocs++
	}
	p.mu.Unlock()

	if h == nil {
		return nil
	}
	return unsafe.Pointer(h.payload())
}

// UnsafeCalloc is like UnsafeAlloc except the returned memory is zeroed.
func (p *Pool) UnsafeCalloc(size int) unsafe.Pointer {
	ptr := p.UnsafeAlloc(size)
	if ptr == nil {
		return nil
	}
	b := unsafe.Slice((*byte)(ptr), size)
	for i := range b {
		b[i] = 0
	}
	return ptr
}
