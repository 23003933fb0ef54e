// Copyright 2017 The Memory Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build mips || mipsle || mips64p32 || mips64p32le

package memory

import "sync/atomic"

// flag is the fallback spinlock variant for platforms where a byte-sized
// atomic cannot be assumed lock-free (32-bit MIPS variants, mirroring the
// constraint bare-metal Go runtimes such as TinyGo's gc_blocks.go hit when
// targeting boards without a native single-instruction CAS). There is no
// cheap way to poll a non-lock-free flag for read, so this variant loops a
// raw test-and-set instead of first polling.
type flag struct {
	v atomic.Int32
}

func (f *flag) lock() {
	for !f.v.CompareAndSwap(0, 1) {
	}
}

func (f *flag) unlock() {
	f.v.Store(0)
}
