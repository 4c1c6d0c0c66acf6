package roaring

const maxRange = 1 << 32

// clampRange clamps [start, end) to the 32-bit space and splits it into the
// first and last chunk keys with their in-chunk bounds.
func clampRange(start, end uint64) (hiFirst, hiLast int, loFirst, loLast uint16, ok bool) {
	if end > maxRange {
		end = maxRange
	}
	if start >= end {
		return 0, 0, 0, 0, false
	}

	last := end - 1
	return int(start >> 16), int(last >> 16), uint16(start), uint16(last), true
}

// chunkBounds returns the in-chunk closed bounds for chunk hi of the range.
func chunkBounds(hi, hiFirst, hiLast int, loFirst, loLast uint16) (lo, hiEnd uint16) {
	lo, hiEnd = 0, 65535
	if hi == hiFirst {
		lo = loFirst
	}
	if hi == hiLast {
		hiEnd = loLast
	}
	return lo, hiEnd
}

// AddRange adds every value in [start, end) to the bitmap. Long stretches
// are stored as runs directly, without going through per-value adds.
func (rb *Bitmap) AddRange(start, end uint64) {
	hiFirst, hiLast, loFirst, loLast, ok := clampRange(start, end)
	if !ok {
		return
	}

	for hi := hiFirst; hi <= hiLast; hi++ {
		lo, hiEnd := chunkBounds(hi, hiFirst, hiLast, loFirst, loLast)
		at, found := find16(rb.index, uint16(hi))
		if !found {
			rb.ctrAdd(uint16(hi), at, container{Type: typeRun, Data: make([]uint16, 0, 2)})
		}
		rb.containers[at].addRange(lo, hiEnd)
	}
}

// RemoveRange removes every value in [start, end) from the bitmap.
func (rb *Bitmap) RemoveRange(start, end uint64) {
	hiFirst, hiLast, loFirst, loLast, ok := clampRange(start, end)
	if !ok {
		return
	}

	for hi := hiFirst; hi <= hiLast; hi++ {
		at, found := find16(rb.index, uint16(hi))
		if !found {
			continue
		}

		lo, hiEnd := chunkBounds(hi, hiFirst, hiLast, loFirst, loLast)
		if lo == 0 && hiEnd == 65535 {
			rb.ctrDel(at)
			continue
		}

		c := &rb.containers[at]
		c.removeRange(lo, hiEnd)
		if c.isEmpty() {
			rb.ctrDel(at)
		}
	}
}

// Flip toggles every value in [start, end): present values are removed,
// absent ones are added.
func (rb *Bitmap) Flip(start, end uint64) {
	hiFirst, hiLast, loFirst, loLast, ok := clampRange(start, end)
	if !ok {
		return
	}

	for hi := hiFirst; hi <= hiLast; hi++ {
		lo, hiEnd := chunkBounds(hi, hiFirst, hiLast, loFirst, loLast)
		at, found := find16(rb.index, uint16(hi))
		if !found {
			c := rb.ctrAdd(uint16(hi), at, container{Type: typeRun, Data: make([]uint16, 0, 2)})
			c.addRange(lo, hiEnd)
			continue
		}

		c := &rb.containers[at]
		c.flipRange(lo, hiEnd)
		if c.isEmpty() {
			rb.ctrDel(at)
		}
	}
}

// addRange adds the closed range [lo, hi] to the container.
func (c *container) addRange(lo, hi uint16) {
	c.fork()
	switch c.Type {
	case typeArray:
		c.arrToRun()
		c.runAddRange(lo, hi)
		c.optimize()
	case typeBitmap:
		c.bmpSetRange(lo, hi)
	case typeRun:
		c.runAddRange(lo, hi)
		if c.runCount() > runMaxSize {
			c.runToBmp()
		}
	}
}

// removeRange removes the closed range [lo, hi] from the container.
func (c *container) removeRange(lo, hi uint16) {
	c.fork()
	switch c.Type {
	case typeArray:
		c.arrDelRange(lo, hi)
	case typeBitmap:
		c.bmpDelRange(lo, hi)
		if c.Size > 0 && c.Size <= arrMaxSize {
			c.bmpToArr()
		}
	case typeRun:
		c.runDelRange(lo, hi)
		if c.runCount() > runMaxSize {
			c.runToBmp()
		}
	}
}

// flipRange toggles the closed range [lo, hi] within the container. A run
// container flipped across the whole chunk inverts in place; other cases go
// through the dense form.
func (c *container) flipRange(lo, hi uint16) {
	c.fork()
	switch {
	case c.Type == typeRun && lo == 0 && hi == 65535:
		c.runInvert()
		if c.runCount() > runMaxSize {
			c.runToBmp()
		}
	case c.Type == typeBitmap:
		c.bmpFlipRange(lo, hi)
		if c.Size > 0 && c.Size <= arrMaxSize {
			c.bmpToArr()
		}
	default:
		if c.Type == typeArray {
			c.arrToBmp()
		} else {
			c.runToBmp()
		}
		c.bmpFlipRange(lo, hi)
		c.optimize()
	}
}
