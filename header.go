// Copyright 2017 The Memory Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package memory

import "unsafe"

// header is the fixed-size prefix that precedes every block, free or live.
// nunits counts the block's total size, header included, in units. next is
// only meaningful while the block sits on the free list.
type header struct {
	nunits uintptr
	next   *header
}

// unitSize is the size, in bytes, of one unit: exactly sizeof(header),
// rounded up to maxAlignment so that every unit-aligned address is safe to
// return as a payload pointer. unitSize is therefore itself a multiple of
// maxAlignment, and every header placed at a unit-aligned address yields a
// unit-aligned payload immediately past it.
var unitSize = roundupUintptr(unsafe.Sizeof(header{}), maxAlignment)

// headerAt reinterprets the unit-aligned address addr as a *header.
func headerAt(addr uintptr) *header {
	return (*header)(unsafe.Pointer(addr))
}

// addr returns h's own address.
func (h *header) addr() uintptr {
	return uintptr(unsafe.Pointer(h))
}

// end returns the address one byte past h's block.
func (h *header) end() uintptr {
	return h.addr() + h.nunits*unitSize
}

// payload returns the address of the first payload byte following h.
func (h *header) payload() uintptr {
	return h.addr() + unitSize
}

// payloadBytes is the number of usable payload bytes in h's block.
func (h *header) payloadBytes() int {
	return int((h.nunits - 1) * unitSize)
}

// headerOf recovers the header preceding a payload address.
func headerOf(payload uintptr) *header {
	return headerAt(payload - unitSize)
}
