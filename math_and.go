// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

// and performs AND with a single bitmap efficiently
func (rb *Bitmap) and(other *Bitmap) {
	switch {
	case other == nil || len(other.containers) == 0:
		rb.Clear()
		return
	case len(rb.containers) == 0:
		return
	}

	var empty []int
	for i := range rb.containers {
		at, ok := find16(other.index, rb.index[i])
		switch {
		case !ok:
			empty = append(empty, i)
		case !rb.ctrAnd(&rb.containers[i], &other.containers[at]):
			empty = append(empty, i)
		}
	}

	// Batch remove empty containers, in reverse to keep positions valid
	for i := len(empty) - 1; i >= 0; i-- {
		rb.ctrDel(empty[i])
	}
}

// ctrAnd intersects c1 with c2 in place, dispatching on the concrete pair of
// representations. Returns false when the result is empty.
func (rb *Bitmap) ctrAnd(c1, c2 *container) bool {
	c1.fork()
	switch c1.Type {
	case typeArray:
		switch c2.Type {
		case typeArray:
			rb.arrAndArr(c1, c2)
		case typeBitmap:
			rb.arrAndBmp(c1, c2)
		case typeRun:
			rb.arrAndRun(c1, c2)
		}
	case typeBitmap:
		switch c2.Type {
		case typeArray:
			rb.bmpAndArr(c1, c2)
		case typeBitmap:
			rb.bmpAndBmp(c1, c2)
		case typeRun:
			rb.bmpAndRun(c1, c2)
		}
	case typeRun:
		switch c2.Type {
		case typeArray:
			rb.runAndArr(c1, c2)
		case typeBitmap:
			rb.runAndBmp(c1, c2)
		case typeRun:
			rb.runAndRun(c1, c2)
		}
	}

	switch {
	case c1.Type == typeBitmap && c1.Size > 0 && c1.Size <= arrMaxSize:
		c1.bmpToArr()
	case c1.Type == typeRun && c1.runCount() > runMaxSize:
		c1.runToBmp()
	}
	return c1.Size > 0
}

// arrAndArr performs AND between two array containers
func (rb *Bitmap) arrAndArr(c1, c2 *container) {
	a, b := c1.Data, c2.Data
	i, j, k := 0, 0, 0
	for i < len(a) && j < len(b) {
		av, bv := a[i], b[j]
		switch {
		case av == bv:
			a[k] = av
			k++
			i++
			j++
		case av < bv:
			i++
		default: // av > bv
			j++
		}
	}

	c1.Data = a[:k]
	c1.Size = uint32(k)
}

// arrAndBmp performs AND between array and bitmap containers
func (rb *Bitmap) arrAndBmp(c1, c2 *container) {
	a, b := c1.Data, c2.bmp()
	out := a[:0]
	for _, val := range a {
		if b.Contains(uint32(val)) {
			out = append(out, val)
		}
	}

	c1.Data = out
	c1.Size = uint32(len(out))
}

// arrAndRun performs AND between array and run containers
func (rb *Bitmap) arrAndRun(c1, c2 *container) {
	a, b := c1.Data, c2.Data
	out := a[:0]
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		val := a[i]
		switch {
		case val < b[j]:
			i++
		case val > b[j+1]:
			j += 2
		default:
			out = append(out, val)
			i++
		}
	}

	c1.Data = out
	c1.Size = uint32(len(out))
}

// bmpAndArr performs AND between bitmap and array containers
func (rb *Bitmap) bmpAndArr(c1, c2 *container) {
	a, b := c1.bmp(), c2.Data
	out := rb.scratch[:0]
	for _, val := range b {
		if a.Contains(uint32(val)) {
			out = append(out, val)
		}
	}

	c1.Data = append(c1.Data[:0], out...)
	c1.Size = uint32(len(out))
	c1.Type = typeArray
	rb.scratch = out
}

// bmpAndBmp performs AND between two bitmap containers
func (rb *Bitmap) bmpAndBmp(c1, c2 *container) {
	a, b := c1.bmp(), c2.bmp()
	a.And(b)
	c1.Size = uint32(a.Count())
}

// bmpAndRun performs AND between bitmap and run containers
func (rb *Bitmap) bmpAndRun(c1, c2 *container) {
	a, b := c1.bmp(), c2.Data
	n := len(b) / 2
	if n == 0 {
		c1.Size = 0
		return
	}

	count, run := 0, 0
	a.Filter(func(x uint32) bool {
		for run < n && x > uint32(b[run*2+1]) {
			run++
		}

		if run < n && x >= uint32(b[run*2]) && x <= uint32(b[run*2+1]) {
			count++
			return true
		}
		return false
	})
	c1.Size = uint32(count)
}

// runAndArr performs AND between run and array containers
func (rb *Bitmap) runAndArr(c1, c2 *container) {
	a, b := c1.Data, c2.Data
	out := rb.scratch[:0]
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		start, end := a[i], a[i+1]
		for j < len(b) && b[j] < start {
			j++
		}
		for j < len(b) && b[j] <= end {
			out = append(out, b[j])
			j++
		}
		i += 2
	}

	c1.Data = append(c1.Data[:0], out...)
	c1.Size = uint32(len(out))
	c1.Type = typeArray
	rb.scratch = out
}

// runAndBmp performs AND between run and bitmap containers
func (rb *Bitmap) runAndBmp(c1, c2 *container) {
	c1.runToBmp()
	rb.bmpAndBmp(c1, c2)
}

// runAndRun performs AND between two run containers
func (rb *Bitmap) runAndRun(c1, c2 *container) {
	a, b := c1.Data, c2.Data
	out := rb.scratch[:0]
	size := uint32(0)
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		r1, r2 := run{a[i], a[i+1]}, run{b[j], b[j+1]}
		if r, ok := intersectRuns(r1, r2); ok {
			out = append(out, r[0], r[1])
			size += uint32(r.count())
		}

		switch {
		case r1[1] < r2[1]:
			i += 2
		case r2[1] < r1[1]:
			j += 2
		default:
			i += 2
			j += 2
		}
	}

	c1.Data = append(c1.Data[:0], out...)
	c1.Size = size
	rb.scratch = out
}
