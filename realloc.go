// Copyright 2017 The Memory Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package memory

import (
	"fmt"
	"os"
	"unsafe"
)

// Realloc changes the size of b's backing block to size bytes, copying
// min(old size, size) bytes of content. b == nil is equivalent to
// Alloc(size); size == 0 frees b and returns nil. If the existing block
// already has enough capacity, Realloc returns the same block resliced to
// size — no shrink is ever performed (spec.md §4.6). Otherwise a new block is allocated, the
// old content copied, and the old block freed; if the new allocation
// fails, Realloc returns nil and leaves b untouched.
func (p *Pool) Realloc(b []byte, size int) (r []byte) {
	if trace {
		defer func() { fmt.Fprintf(os.Stderr, "Realloc(%#x, %#x) %p\n", addrOf(b), size, addrOf(r)) }()
	}

	b = b[:cap(b)]
	switch {
	case len(b) == 0:
		return p.Alloc(size)
	case size == 0:
		p.Free(b)
		return nil
	case p.AllocSize(b) >= size:
		return b[:size]
	}

	r = p.Alloc(size)
	if r == nil {
		return nil
	}
	copy(r, b)
	p.Free(b)
	return r
}

// UnsafeRealloc is the unsafe.Pointer-based counterpart of Realloc.
func (p *Pool) UnsafeRealloc(ptr unsafe.Pointer, size int) unsafe.Pointer {
	switch {
	case ptr == nil:
		return p.UnsafeAlloc(size)
	case size == 0:
		p.UnsafeFree(ptr)
		return nil
	}

	old := p.UnsafeAllocSize(ptr)
	if old >= size {
		return ptr
	}

	r := p.UnsafeAlloc(size)
	if r == nil {
		return nil
	}

	n := old
	if size < n {
		n = size
	}
	copy(unsafe.Slice((*byte)(r), n), unsafe.Slice((*byte)(ptr), n))
	p.UnsafeFree(ptr)
	return r
}
