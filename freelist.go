// Copyright 2017 The Memory Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package memory

// This file holds the free-list core: next-fit search with tail-splitting,
// and address-ordered insertion with bidirectional coalescing. Every
// function here assumes p.mu is already held.

// allocLocked searches the free list, starting just past the cursor, for a
// block with at least need units (header included). On a match it unlinks
// (exact fit) or tail-splits (oversize fit) the block and returns its
// header; the cursor is left at the predecessor so the next search resumes
// there. Returns nil if the list is empty or no block is large enough.
func (p *Pool) allocLocked(need uintptr) *header {
	if p.free == nil {
		return nil
	}

	prev := p.free
	cand := prev.next
	for {
		if cand.nunits >= need {
			return p.takeLocked(prev, cand, need)
		}
		if cand == p.free {
			return nil // walked the whole ring, nothing fits
		}
		prev = cand
		cand = cand.next
	}
}

// takeLocked removes need units from cand (whose predecessor in the ring is
// prev), splitting from cand's high-address tail when cand is larger than
// needed, and returns the block to hand back to the caller.
func (p *Pool) takeLocked(prev, cand *header, need uintptr) *header {
	switch {
	case cand.nunits == need:
		if prev == cand {
			// cand was the only free block.
			p.free = nil
		} else {
			prev.next = cand.next
			p.free = prev
		}
		return cand
	default: // cand.nunits > need
		tail := headerAt(cand.addr() + (cand.nunits-need)*unitSize)
		tail.nunits = need
		cand.nunits -= need
		p.free = prev
		return tail
	}
}

// freeLocked reinserts h into the free list in address order and coalesces
// it with whichever immediate neighbors it touches.
func (p *Pool) freeLocked(h *header) {
	if p.free == nil {
		h.next = h
		p.free = h
		return
	}

	cur := p.free
	for {
		if cur.addr() < h.addr() && h.addr() < cur.next.addr() {
			break // h sits strictly between cur and its successor
		}
		if cur.addr() >= cur.next.addr() && (h.addr() > cur.addr() || h.addr() < cur.next.addr()) {
			break // cur is the wrap point; h belongs at the low or high end
		}
		cur = cur.next
	}

	next := cur.next
	if h.end() == next.addr() && next == cur {
		// cur is the only free block and starts right where h ends: h
		// absorbs it and becomes the new singleton.
		h.nunits += cur.nunits
		h.next = h
		p.free = h
		return
	}
	if h.end() == next.addr() {
		h.nunits += next.nunits
		h.next = next.next
	} else {
		h.next = next
	}

	if cur.end() == h.addr() {
		cur.nunits += h.nunits
		cur.next = h.next
	} else {
		cur.next = h
	}

	p.free = cur
}
