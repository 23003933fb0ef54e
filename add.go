// Copyright 2017 The Memory Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package memory

import (
	"fmt"
	"os"
	"unsafe"
)

// Add seeds the pool with region, making its bytes available to future
// Alloc/Calloc calls. region becomes part of the pool's managed memory: the
// caller MUST NOT read, write, or otherwise reuse it afterwards except
// through the Pool.
//
// Regions that, after alignment padding, do not have more than one unit
// (the header) of room are silently rejected; a region whose aligned part
// holds exactly one whole unit is accepted as a header-only free block. Add never returns an error (spec.md §4.3, §7.3).
// Adding overlapping regions, or the same region twice, is a caller error
// with undefined results.
func (p *Pool) Add(region []byte) {
	if trace {
		defer func() { fmt.Fprintf(os.Stderr, "Add(%#x) len=%d\n", addrOf(region), len(region)) }()
	}
	if len(region) == 0 {
		return
	}
	p.AddPointer(unsafe.Pointer(&region[0]), uintptr(len(region)))
}

// AddPointer is the unsafe.Pointer-based counterpart of Add, for callers
// that already hold a raw base address (for example one obtained outside
// Go's slice machinery, such as from mmap or a shared-memory mapping).
func (p *Pool) AddPointer(base unsafe.Pointer, nbytes uintptr) {
	if base == nil || nbytes == 0 {
		return
	}

	addr := uintptr(base)
	offset := padding(addr, unitSize)
	if nbytes <= offset+unitSize {
		return // region too small: reject (spec.md §4.3.2)
	}

	nunits := (nbytes - offset) / unitSize
	if nunits == 0 {
		return // rounds down to zero whole units: reject (spec.md §4.3.3)
	}

	h := headerAt(addr + offset)
	h.nunits = nunits

	p.mu.Lock()
	defer p.mu.Unlock()
	p.bytes += int(nbytes)
	p.freeLocked(h)
}

func addrOf(b []byte) unsafe.Pointer {
	if len(b) == 0 {
		return nil
	}
	return unsafe.Pointer(&b[0])
}
