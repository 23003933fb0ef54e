// Copyright 2017 The Memory Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !(mips || mipsle || mips64p32 || mips64p32le)

package memory

import "sync/atomic"

// flag is the fast spinlock variant, used on every platform where a
// byte-sized atomic is known to be lock-free. It implements
// test-and-test-and-set: the initial Load-only poll lets a spinning CPU sit
// on a shared (not exclusive) cache line until the flag looks clear, which
// keeps cache-coherency traffic down versus hammering CompareAndSwap in a
// tight loop.
type flag struct {
	v atomic.Bool
}

func (f *flag) lock() {
	for {
		for f.v.Load() {
			// busy-wait without attempting to write
		}
		if f.v.CompareAndSwap(false, true) {
			return
		}
	}
}

func (f *flag) unlock() {
	f.v.Store(false)
}
