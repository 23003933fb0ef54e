// Copyright 2017 The Memory Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package memory

// spinlock is a non-recursive, non-fair mutual-exclusion primitive guarding
// a Pool's free list. It never suspends: Lock busy-waits until the flag is
// clear. Two implementations exist, selected at compile time by build tag
// (spinlock_fast.go / spinlock_fallback.go) depending on whether the target
// platform is known to make a byte-sized atomic flag lock-free; the choice
// never leaks through the Pool API.
//
// The zero value of spinlock is unlocked and ready to use, matching the
// zero-value-ready contract of Pool itself.
type spinlock struct {
	flag flag
}

// Lock acquires the spinlock, busy-waiting if necessary.
func (s *spinlock) Lock() { s.flag.lock() }

// Unlock releases the spinlock. The caller MUST hold it.
func (s *spinlock) Unlock() { s.flag.unlock() }
