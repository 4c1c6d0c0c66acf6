package roaring

import "math/bits"

// Range calls the given function for each value in the bitmap, ascending.
func (rb *Bitmap) Range(fn func(x uint32)) {
	for i := range rb.containers {
		c := &rb.containers[i]
		base := uint32(rb.index[i]) << 16

		switch c.Type {
		case typeArray:
			for _, v := range c.Data {
				fn(base | uint32(v))
			}

		case typeBitmap:
			c.bmp().Range(func(value uint32) {
				fn(base | value)
			})

		case typeRun:
			for k := 0; k < c.runCount(); k++ {
				r := c.runAt(k)
				for v := int(r[0]); v <= int(r[1]); v++ {
					fn(base | uint32(v))
				}
			}
		}
	}
}

// RangeReverse calls the given function for each value in the bitmap,
// descending.
func (rb *Bitmap) RangeReverse(fn func(x uint32)) {
	for i := len(rb.containers) - 1; i >= 0; i-- {
		c := &rb.containers[i]
		base := uint32(rb.index[i]) << 16

		switch c.Type {
		case typeArray:
			for k := len(c.Data) - 1; k >= 0; k-- {
				fn(base | uint32(c.Data[k]))
			}

		case typeBitmap:
			words := c.bmpWords()
			for w := len(words) - 1; w >= 0; w-- {
				word := words[w]
				for word != 0 {
					top := 63 - bits.LeadingZeros64(word)
					fn(base | uint32(w<<6+top))
					word &^= 1 << top
				}
			}

		case typeRun:
			for k := c.runCount() - 1; k >= 0; k-- {
				r := c.runAt(k)
				for v := int(r[1]); v >= int(r[0]); v-- {
					fn(base | uint32(v))
				}
			}
		}
	}
}

// Filter iterates over the bitmap elements and calls the predicate for each
// containing element. If the predicate returns false, the element is removed
// from the bitmap.
func (rb *Bitmap) Filter(f func(x uint32) bool) {
	var toRemove []uint32
	rb.Range(func(x uint32) {
		if !f(x) {
			toRemove = append(toRemove, x)
		}
	})

	for _, x := range toRemove {
		rb.Remove(x)
	}
}
