// Copyright 2017 The Memory Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package memory implements a pool memory allocator.
//
// A Pool serves variable-sized allocation, free, and reallocation requests
// out of one or more caller-supplied, disjoint byte ranges ("regions").
// Pool never acquires memory of its own: it is a building block for
// callers that already have a byte range (a mmap'd arena, a big []byte, a
// shared-memory segment, ...) and want malloc/free semantics over it.
//
// The allocator keeps an intrusive, circular, address-ordered free list
// threaded through the regions' own bytes. Allocation uses next-fit,
// resuming the search from a cursor left by the previous operation; free
// reinserts in address order and coalesces with both neighbors when they
// are adjacent. All of this lives behind a spinlock (spinlock.go):
// concurrent callers serialize on it, but never suspend or yield.
//
// Changelog
//
// Added a Pool.ForBlocks free-list iteration hook and an Unsafe*
// pointer-based API alongside the []byte-based one.
package memory

// trace gates the package's debug diagnostics. It is always false in
// committed code; flip it locally when chasing a free-list bug.
const trace = false

// Pool allocates and frees memory carved out of caller-supplied regions.
// Its zero value is ready for use: an empty free list, an unlocked
// spinlock, and no seeded regions.
type Pool struct {
	mu     spinlock
	free   *header // Cursor: nil (empty) or any one free-list member.
	allocs int     // Live allocation count.
	bytes  int     // Total bytes seeded across all regions.
}

// PoolStats reports Pool bookkeeping: live allocation count and total bytes
// seeded, the same counters a soak test checks for conservation.
type PoolStats struct {
	Allocs int // Number of currently live allocations.
	Seeded int // Total bytes of the regions Add accepted over the Pool's lifetime.
}

// Stats returns a snapshot of the pool's bookkeeping counters. Safe to call
// concurrently with any other Pool operation; it acquires the spinlock like
// every other mutating entry point.
func (p *Pool) Stats() PoolStats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return PoolStats{Allocs: p.allocs, Seeded: p.bytes}
}
