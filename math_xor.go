// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

// xor performs XOR with a single bitmap efficiently
func (rb *Bitmap) xor(other *Bitmap) {
	switch {
	case other == nil || len(other.containers) == 0:
		return
	case len(rb.containers) == 0:
		for i := range other.containers {
			other.containers[i].Shared = true
		}
		rb.index = append(rb.index[:0], other.index...)
		rb.containers = append(rb.containers[:0], other.containers...)
		return
	}

	// Merge containers from both bitmaps in chunk-key order. A key present
	// in both may cancel out entirely, in which case it is dropped.
	i, j := 0, 0
	newContainers := make([]container, 0, len(rb.containers)+len(other.containers))
	newIndex := make([]uint16, 0, len(rb.index)+len(other.index))

	for i < len(rb.containers) && j < len(other.containers) {
		hi1, hi2 := rb.index[i], other.index[j]
		switch {
		case hi1 < hi2:
			newContainers = append(newContainers, rb.containers[i])
			newIndex = append(newIndex, hi1)
			i++
		case hi1 > hi2:
			other.containers[j].Shared = true
			newContainers = append(newContainers, other.containers[j])
			newIndex = append(newIndex, hi2)
			j++
		default:
			c1 := &rb.containers[i]
			if rb.ctrXor(c1, &other.containers[j]) {
				newContainers = append(newContainers, *c1)
				newIndex = append(newIndex, hi1)
			}
			i++
			j++
		}
	}

	for i < len(rb.containers) {
		newContainers = append(newContainers, rb.containers[i])
		newIndex = append(newIndex, rb.index[i])
		i++
	}
	for j < len(other.containers) {
		other.containers[j].Shared = true
		newContainers = append(newContainers, other.containers[j])
		newIndex = append(newIndex, other.index[j])
		j++
	}

	rb.containers = newContainers
	rb.index = newIndex
}

// ctrXor computes the symmetric difference of c1 and c2 into c1 and reports
// whether the result is non-empty.
func (rb *Bitmap) ctrXor(c1, c2 *container) bool {
	c1.fork()
	switch c1.Type {
	case typeArray:
		switch c2.Type {
		case typeArray:
			rb.arrXorArr(c1, c2)
		case typeBitmap:
			rb.arrXorBmp(c1, c2)
		case typeRun:
			rb.arrXorRun(c1, c2)
		}
	case typeBitmap:
		switch c2.Type {
		case typeArray:
			rb.bmpXorArr(c1, c2)
		case typeBitmap:
			rb.bmpXorBmp(c1, c2)
		case typeRun:
			rb.bmpXorRun(c1, c2)
		}
	case typeRun:
		switch c2.Type {
		case typeArray:
			rb.runXorArr(c1, c2)
		case typeBitmap:
			rb.runXorBmp(c1, c2)
		case typeRun:
			rb.runXorRun(c1, c2)
		}
	}

	switch {
	case c1.Type == typeArray && c1.Size > arrMaxSize:
		c1.arrToBmp()
	case c1.Type == typeBitmap && c1.Size <= arrMaxSize:
		c1.bmpToArr()
	case c1.Type == typeRun && c1.runCount() > runMaxSize:
		c1.runToBmp()
	}
	return c1.Size > 0
}

// arrXorArr performs XOR between two array containers
func (rb *Bitmap) arrXorArr(c1, c2 *container) {
	a, b := c1.Data, c2.Data
	out := rb.scratch[:0]
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		av, bv := a[i], b[j]
		switch {
		case av == bv:
			i++
			j++
		case av < bv:
			out = append(out, av)
			i++
		default: // av > bv
			out = append(out, bv)
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)

	c1.Data = append(c1.Data[:0], out...)
	c1.Size = uint32(len(out))
	rb.scratch = out
}

// arrXorBmp performs XOR between array and bitmap containers
func (rb *Bitmap) arrXorBmp(c1, c2 *container) {
	c1.arrToBmp()
	rb.bmpXorBmp(c1, c2)
}

// arrXorRun performs XOR between array and run containers
func (rb *Bitmap) arrXorRun(c1, c2 *container) {
	c1.arrToBmp()
	rb.bmpXorRun(c1, c2)
}

// bmpXorArr performs XOR between bitmap and array containers
func (rb *Bitmap) bmpXorArr(c1, c2 *container) {
	bmp := c1.bmp()
	for _, val := range c2.Data {
		if bmp.Contains(uint32(val)) {
			bmp.Remove(uint32(val))
			c1.Size--
		} else {
			bmp.Set(uint32(val))
			c1.Size++
		}
	}
}

// bmpXorBmp performs XOR between two bitmap containers
func (rb *Bitmap) bmpXorBmp(c1, c2 *container) {
	a, b := c1.bmp(), c2.bmp()
	a.Xor(b)
	c1.Size = uint32(a.Count())
}

// bmpXorRun performs XOR between bitmap and run containers by flipping
// whole word ranges at once
func (rb *Bitmap) bmpXorRun(c1, c2 *container) {
	words := c1.bmpWords()
	for j := 0; j+1 < len(c2.Data); j += 2 {
		flipWordRange(words, int(c2.Data[j]), int(c2.Data[j+1]))
	}
	c1.Size = uint32(popcountWords(words))
}

// runXorArr performs XOR between run and array containers
func (rb *Bitmap) runXorArr(c1, c2 *container) {
	for _, v := range c2.Data {
		if c1.runHas(v) {
			c1.runDel(v)
		} else {
			c1.runSet(v)
		}
	}
}

// runXorBmp performs XOR between run and bitmap containers
func (rb *Bitmap) runXorBmp(c1, c2 *container) {
	c1.runToBmp()
	rb.bmpXorBmp(c1, c2)
}

// runXorRun performs XOR between two run containers. Both operands may be
// the same container; that case must not reach the in-place conversion.
func (rb *Bitmap) runXorRun(c1, c2 *container) {
	if c1 == c2 {
		c1.Data = c1.Data[:0]
		c1.Size = 0
		return
	}
	c1.runToBmp()
	rb.bmpXorRun(c1, c2)
}
