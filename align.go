// Copyright 2017 The Memory Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package memory

import "unsafe"

// maxAlign is a struct wide/aligned enough that unsafe.Alignof(maxAlign{})
// equals the platform's strictest scalar alignment. Any address aligned to
// this value is safe to hand back as a payload pointer for any built-in
// scalar type.
type maxAlign struct {
	_ complex128
	_ uint64
	_ unsafe.Pointer
}

// maxAlignment is the platform's strictest scalar alignment, in bytes.
var maxAlignment = uintptr(unsafe.Alignof(maxAlign{}))

// padding returns the number of bytes that must be added to addr to reach
// the next address that is a multiple of align. align MUST be a power of
// two. The result is always in [0, align).
func padding(addr, align uintptr) uintptr {
	return (align - addr%align) % align
}

// roundupUintptr rounds n up to the next multiple of m. m MUST be a power
// of two.
func roundupUintptr(n, m uintptr) uintptr {
	return (n + m - 1) &^ (m - 1)
}
