// Copyright 2017 The Memory Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package memory

// ForBlocks walks the free list exactly once, starting at the cursor, and
// invokes fn with each free block's usable payload size in bytes. It holds
// the spinlock for the whole walk (spec.md §4.8, §5): fn MUST NOT call back
// into the Pool, directly or indirectly, or it will deadlock.
func (p *Pool) ForBlocks(fn func(size int)) {
	p.mu.Lock()
	defer p.mu.Unlock()

	start := p.free
	if start == nil {
		return
	}

	cur := start
	for {
		fn(cur.payloadBytes())
		cur = cur.next
		if cur == start {
			return
		}
	}
}
