// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

// or performs OR with a single bitmap efficiently
func (rb *Bitmap) or(other *Bitmap) {
	switch {
	case other == nil || len(other.containers) == 0:
		return
	case len(rb.containers) == 0:
		// Copy all containers from other, sharing storage copy-on-write
		for i := range other.containers {
			other.containers[i].Shared = true
		}
		rb.index = append(rb.index[:0], other.index...)
		rb.containers = append(rb.containers[:0], other.containers...)
		return
	}

	// Merge containers from both bitmaps in chunk-key order
	i, j := 0, 0
	newContainers := make([]container, 0, len(rb.containers)+len(other.containers))
	newIndex := make([]uint16, 0, len(rb.index)+len(other.index))

	for i < len(rb.containers) && j < len(other.containers) {
		hi1, hi2 := rb.index[i], other.index[j]
		switch {
		case hi1 < hi2:
			// Only in left bitmap
			newContainers = append(newContainers, rb.containers[i])
			newIndex = append(newIndex, hi1)
			i++
		case hi1 > hi2:
			// Only in right bitmap
			other.containers[j].Shared = true
			newContainers = append(newContainers, other.containers[j])
			newIndex = append(newIndex, hi2)
			j++
		default:
			// In both bitmaps - merge them
			c1 := &rb.containers[i]
			rb.ctrOr(c1, &other.containers[j])
			newContainers = append(newContainers, *c1)
			newIndex = append(newIndex, hi1)
			i++
			j++
		}
	}

	// Add remaining containers from left
	for i < len(rb.containers) {
		newContainers = append(newContainers, rb.containers[i])
		newIndex = append(newIndex, rb.index[i])
		i++
	}

	// Add remaining containers from right
	for j < len(other.containers) {
		other.containers[j].Shared = true
		newContainers = append(newContainers, other.containers[j])
		newIndex = append(newIndex, other.index[j])
		j++
	}

	rb.containers = newContainers
	rb.index = newIndex
}

// ctrOr unions c2 into c1 in place, dispatching on the concrete pair of
// representations. The result is promoted when it outgrows its form.
func (rb *Bitmap) ctrOr(c1, c2 *container) {
	c1.fork()
	switch c1.Type {
	case typeArray:
		switch c2.Type {
		case typeArray:
			rb.arrOrArr(c1, c2)
		case typeBitmap:
			rb.arrOrBmp(c1, c2)
		case typeRun:
			rb.arrOrRun(c1, c2)
		}
	case typeBitmap:
		switch c2.Type {
		case typeArray:
			rb.bmpOrArr(c1, c2)
		case typeBitmap:
			rb.bmpOrBmp(c1, c2)
		case typeRun:
			rb.bmpOrRun(c1, c2)
		}
	case typeRun:
		switch c2.Type {
		case typeArray:
			rb.runOrArr(c1, c2)
		case typeBitmap:
			rb.runOrBmp(c1, c2)
		case typeRun:
			rb.runOrRun(c1, c2)
		}
	}

	switch {
	case c1.Type == typeArray && c1.Size > arrMaxSize:
		c1.arrToBmp()
	case c1.Type == typeRun && c1.runCount() > runMaxSize:
		c1.runToBmp()
	}
}

// arrOrArr performs OR between two array containers
func (rb *Bitmap) arrOrArr(c1, c2 *container) {
	a, b := c1.Data, c2.Data
	out := rb.scratch[:0]
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		av, bv := a[i], b[j]
		switch {
		case av == bv:
			out = append(out, av)
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

// arrOrBmp performs OR between array and bitmap containers
func (rb *Bitmap) arrOrBmp(c1, c2 *container) {
	c1.arrToBmp()
	rb.bmpOrBmp(c1, c2)
}

// arrOrRun performs OR between array and run containers
func (rb *Bitmap) arrOrRun(c1, c2 *container) {
	c1.arrToRun()
	rb.runOrRun(c1, c2)
}

// bmpOrArr performs OR between bitmap and array containers
func (rb *Bitmap) bmpOrArr(c1, c2 *container) {
	bmp := c1.bmp()
	for _, val := range c2.Data {
		if !bmp.Contains(uint32(val)) {
			bmp.Set(uint32(val))
			c1.Size++
		}
	}
}

// bmpOrBmp performs OR between two bitmap containers
func (rb *Bitmap) bmpOrBmp(c1, c2 *container) {
	a, b := c1.bmp(), c2.bmp()
	a.Or(b)
	c1.Size = uint32(a.Count())
}

// bmpOrRun performs OR between bitmap and run containers by filling whole
// word ranges at once
func (rb *Bitmap) bmpOrRun(c1, c2 *container) {
	words := c1.bmpWords()
	for j := 0; j+1 < len(c2.Data); j += 2 {
		setWordRange(words, int(c2.Data[j]), int(c2.Data[j+1]))
	}
	c1.Size = uint32(popcountWords(words))
}

// runOrArr performs OR between run and array containers
func (rb *Bitmap) runOrArr(c1, c2 *container) {
	for _, v := range c2.Data {
		c1.runSet(v)
	}
}

// runOrBmp performs OR between run and bitmap containers
func (rb *Bitmap) runOrBmp(c1, c2 *container) {
	c1.runToBmp()
	rb.bmpOrBmp(c1, c2)
}

// runOrRun performs OR between two run containers with a merge over both
// run sequences, coalescing overlapping and adjacent runs
func (rb *Bitmap) runOrRun(c1, c2 *container) {
	a, b := c1.Data, c2.Data
	out := rb.scratch[:0]
	i, j := 0, 0

	var cur run
	var open bool
	push := func(r run) {
		switch {
		case !open:
			cur, open = r, true
		case canMerge(cur, r):
			cur = mergeRuns(cur, r)
		default:
			out = append(out, cur[0], cur[1])
			cur = r
		}
	}

	for i < len(a) || j < len(b) {
		switch {
		case j >= len(b) || (i < len(a) && a[i] <= b[j]):
			push(run{a[i], a[i+1]})
			i += 2
		default:
			push(run{b[j], b[j+1]})
			j += 2
		}
	}
	if open {
		out = append(out, cur[0], cur[1])
	}

	c1.Data = append(c1.Data[:0], out...)
	rb.scratch = out
	c1.runRecount()
}
