// Copyright 2017 The Memory Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package memory

import (
	"fmt"
	"os"
	"unsafe"
)

// Free returns b's backing block to the pool. b MUST have been returned by
// Alloc, Calloc, or Realloc on this same Pool and not freed already;
// violating that is undefined behavior (spec.md §3.3, §7). A nil or
// zero-capacity b is a no-op.
func (p *Pool) Free(b []byte) {
	if trace {
		defer func() { fmt.Fprintf(os.Stderr, "Free(%#x)\n", addrOf(b)) }()
	}
	b = b[:cap(b)]
	if len(b) == 0 {
		return
	}
	p.UnsafeFree(unsafe.Pointer(&b[0]))
}

// UnsafeFree is the unsafe.Pointer-based counterpart of Free. A nil ptr is
// a no-op.
func (p *Pool) UnsafeFree(ptr unsafe.Pointer) {
	if ptr == nil {
		return
	}

	h := headerOf(uintptr(ptr))
	p.mu.Lock()
	p.freeLocked(h)
	p.allocs--
	p.mu.Unlock()
}
