// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

// andNot performs AND NOT (difference) with a single bitmap efficiently
func (rb *Bitmap) andNot(other *Bitmap) {
	if other == nil || len(other.containers) == 0 || len(rb.containers) == 0 {
		return
	}

	// Only chunks present in both bitmaps change; those are rewritten in
	// place and removed when they become empty.
	var empty []int
	for i := 0; i < len(rb.containers); i++ {
		hi := rb.index[i]
		if c2, ok := other.findContainer(hi); ok {
			if !rb.ctrAndNot(&rb.containers[i], c2) {
				empty = append(empty, i)
			}
		}
	}

	// Remove empty containers in reverse to keep indices stable
	for i := len(empty) - 1; i >= 0; i-- {
		rb.ctrDel(empty[i])
	}
}

// ctrAndNot removes every value of c2 from c1 and reports whether c1 is
// still non-empty.
func (rb *Bitmap) ctrAndNot(c1, c2 *container) bool {
	c1.fork()
	switch c1.Type {
	case typeArray:
		switch c2.Type {
		case typeArray:
			rb.arrAndNotArr(c1, c2)
		case typeBitmap:
			rb.arrAndNotBmp(c1, c2)
		case typeRun:
			rb.arrAndNotRun(c1, c2)
		}
	case typeBitmap:
		switch c2.Type {
		case typeArray:
			rb.bmpAndNotArr(c1, c2)
		case typeBitmap:
			rb.bmpAndNotBmp(c1, c2)
		case typeRun:
			rb.bmpAndNotRun(c1, c2)
		}
	case typeRun:
		switch c2.Type {
		case typeArray:
			rb.runAndNotArr(c1, c2)
		case typeBitmap:
			rb.runAndNotBmp(c1, c2)
		case typeRun:
			rb.runAndNotRun(c1, c2)
		}
	}

	switch {
	case c1.Type == typeBitmap && c1.Size <= arrMaxSize:
		c1.bmpToArr()
	case c1.Type == typeRun && c1.runCount() > runMaxSize:
		c1.runToBmp()
	}
	return c1.Size > 0
}

// arrAndNotArr performs AND NOT between two array containers
func (rb *Bitmap) arrAndNotArr(c1, c2 *container) {
	a, b := c1.Data, c2.Data
	out := a[:0]
	i, j := 0, 0
	for i < len(a) {
		switch {
		case j >= len(b) || a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] == b[j]:
			i++
			j++
		default: // a[i] > b[j]
			j++
		}
	}

	c1.Data = out
	c1.Size = uint32(len(out))
}

// arrAndNotBmp performs AND NOT between array and bitmap containers
func (rb *Bitmap) arrAndNotBmp(c1, c2 *container) {
	a := c1.Data
	out := a[:0]
	bmp := c2.bmp()
	for _, val := range a {
		if !bmp.Contains(uint32(val)) {
			out = append(out, val)
		}
	}

	c1.Data = out
	c1.Size = uint32(len(out))
}

// arrAndNotRun performs AND NOT between array and run containers
func (rb *Bitmap) arrAndNotRun(c1, c2 *container) {
	a, b := c1.Data, c2.Data
	out := a[:0]
	j := 0
	for _, val := range a {
		for j+1 < len(b) && b[j+1] < val {
			j += 2
		}
		if j+1 < len(b) && b[j] <= val && val <= b[j+1] {
			continue
		}
		out = append(out, val)
	}

	c1.Data = out
	c1.Size = uint32(len(out))
}

// bmpAndNotArr performs AND NOT between bitmap and array containers
func (rb *Bitmap) bmpAndNotArr(c1, c2 *container) {
	bmp := c1.bmp()
	for _, val := range c2.Data {
		if bmp.Contains(uint32(val)) {
			bmp.Remove(uint32(val))
			c1.Size--
		}
	}
}

// bmpAndNotBmp performs AND NOT between two bitmap containers
func (rb *Bitmap) bmpAndNotBmp(c1, c2 *container) {
	a, b := c1.bmp(), c2.bmp()
	a.AndNot(b)
	c1.Size = uint32(a.Count())
}

// bmpAndNotRun performs AND NOT between bitmap and run containers by
// clearing whole word ranges at once
func (rb *Bitmap) bmpAndNotRun(c1, c2 *container) {
	words := c1.bmpWords()
	for j := 0; j+1 < len(c2.Data); j += 2 {
		clearWordRange(words, int(c2.Data[j]), int(c2.Data[j+1]))
	}
	c1.Size = uint32(popcountWords(words))
}

// runAndNotArr performs AND NOT between run and array containers
func (rb *Bitmap) runAndNotArr(c1, c2 *container) {
	a, b := c1.Data, c2.Data
	out := rb.scratch[:0]
	j := 0
	for i := 0; i+1 < len(a); i += 2 {
		cur, last := int(a[i]), int(a[i+1])
		for j < len(b) && int(b[j]) < cur {
			j++
		}
		for k := j; cur <= last; {
			// Skip removed values that fall within the current run,
			// emitting the surviving pieces between them.
			for k < len(b) && int(b[k]) < cur {
				k++
			}
			if k >= len(b) || int(b[k]) > last {
				out = append(out, uint16(cur), uint16(last))
				break
			}
			if v := int(b[k]); v > cur {
				out = append(out, uint16(cur), uint16(v-1))
			}
			cur = int(b[k]) + 1
			k++
		}
	}

	c1.Data = append(c1.Data[:0], out...)
	rb.scratch = out
	c1.runRecount()
}

// runAndNotBmp performs AND NOT between run and bitmap containers
func (rb *Bitmap) runAndNotBmp(c1, c2 *container) {
	c1.runToBmp()
	rb.bmpAndNotBmp(c1, c2)
}

// runAndNotRun performs AND NOT between two run containers
func (rb *Bitmap) runAndNotRun(c1, c2 *container) {
	a, b := c1.Data, c2.Data
	out := rb.scratch[:0]
	j := 0
	for i := 0; i+1 < len(a); i += 2 {
		cur, last := int(a[i]), int(a[i+1])
		for j+1 < len(b) && int(b[j+1]) < cur {
			j += 2
		}
		for k := j; cur <= last; {
			for k+1 < len(b) && int(b[k+1]) < cur {
				k += 2
			}
			if k+1 >= len(b) || int(b[k]) > last {
				out = append(out, uint16(cur), uint16(last))
				break
			}
			if s := int(b[k]); s > cur {
				out = append(out, uint16(cur), uint16(s-1))
			}
			cur = int(b[k+1]) + 1
			k += 2
		}
	}

	c1.Data = append(c1.Data[:0], out...)
	rb.scratch = out
	c1.runRecount()
}
