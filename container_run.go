package roaring

// runCount returns the number of runs in the container.
func (c *container) runCount() int {
	return len(c.Data) >> 1
}

// runAt returns the i-th run.
func (c *container) runAt(i int) run {
	return run{c.Data[i*2], c.Data[i*2+1]}
}

func (c *container) setRunAt(i int, r run) {
	c.Data[i*2], c.Data[i*2+1] = r[0], r[1]
}

// runFind locates the run containing the value. When the value is not
// covered it returns the position where a new run would be inserted.
func (c *container) runFind(value uint16) (int, bool) {
	n := c.runCount()
	switch {
	case n == 0 || value < c.Data[0]:
		return 0, false
	case value > c.Data[(n-1)*2+1]:
		return n, false
	}

	// binary phase: shrink the window to a handful of runs
	lo, hi := 0, n
	for hi-lo > 4 {
		mid := (lo + hi) >> 1
		switch {
		case value < c.Data[mid*2]:
			hi = mid
		case value <= c.Data[mid*2+1]:
			return mid, true
		default:
			lo = mid + 1
		}
	}

	// linear phase inside one cache line
	for i := lo; i < hi; i++ {
		switch {
		case value < c.Data[i*2]:
			return i, false
		case value <= c.Data[i*2+1]:
			return i, true
		}
	}
	return hi, false
}

// runSet sets a value, extending or merging neighbouring runs in place.
func (c *container) runSet(value uint16) bool {
	idx, found := c.runFind(value)
	if found {
		return false
	}

	n := c.runCount()
	mergeLeft := idx > 0 && c.Data[(idx-1)*2+1]+1 == value
	mergeRight := idx < n && c.Data[idx*2]-1 == value

	switch {
	case mergeLeft && mergeRight:
		c.Data[(idx-1)*2+1] = c.Data[idx*2+1]
		c.runRemoveAt(idx)
	case mergeLeft:
		c.Data[(idx-1)*2+1] = value
	case mergeRight:
		c.Data[idx*2] = value
	default:
		c.runInsertAt(idx, value, value)
	}

	c.Size++
	return true
}

// runDel removes a value, trimming or splitting the run that holds it.
func (c *container) runDel(value uint16) bool {
	idx, found := c.runFind(value)
	if !found {
		return false
	}

	start, end := c.Data[idx*2], c.Data[idx*2+1]
	switch {
	case start == end:
		c.runRemoveAt(idx)
	case value == start:
		c.Data[idx*2] = value + 1
	case value == end:
		c.Data[idx*2+1] = value - 1
	default:
		c.Data[idx*2+1] = value - 1
		c.runInsertAt(idx+1, value+1, end)
	}

	c.Size--
	return true
}

// runHas checks if a value is covered by any run.
func (c *container) runHas(value uint16) bool {
	_, found := c.runFind(value)
	return found
}

func (c *container) runMin() uint16 {
	return c.Data[0]
}

func (c *container) runMax() uint16 {
	return c.Data[len(c.Data)-1]
}

// runRank counts the values less than or equal to the given one.
func (c *container) runRank(value uint16) int {
	rank := 0
	for i := 0; i < c.runCount(); i++ {
		r := c.runAt(i)
		switch {
		case value < r[0]:
			return rank
		case value <= r[1]:
			return rank + int(value-r[0]) + 1
		}
		rank += r.count()
	}
	return rank
}

// runSelect returns the i-th smallest value (0-based).
func (c *container) runSelect(i int) uint16 {
	for k := 0; k < c.runCount(); k++ {
		r := c.runAt(k)
		if i < r.count() {
			return r[0] + uint16(i)
		}
		i -= r.count()
	}
	return 0
}

// runInsertAt inserts a new [start, end] run at the given index.
func (c *container) runInsertAt(index int, start, end uint16) {
	n := c.runCount()
	newLen := (n + 1) * 2

	if cap(c.Data) >= newLen {
		c.Data = c.Data[:newLen]
		if index < n {
			copy(c.Data[(index+1)*2:], c.Data[index*2:n*2])
		}
	} else {
		next := make([]uint16, newLen, newLen+max(16, n))
		copy(next, c.Data[:index*2])
		if index < n {
			copy(next[(index+1)*2:], c.Data[index*2:])
		}
		c.Data = next
	}

	c.Data[index*2] = start
	c.Data[index*2+1] = end
}

// runRemoveAt removes the run at the given index.
func (c *container) runRemoveAt(index int) {
	n := c.runCount()
	if index < 0 || index >= n {
		return
	}

	copy(c.Data[index*2:], c.Data[(index+1)*2:])
	c.Data = c.Data[:(n-1)*2]
}

// runRecount recomputes the cardinality as the sum of run lengths.
func (c *container) runRecount() {
	total := 0
	for i := 0; i < c.runCount(); i++ {
		total += c.runAt(i).count()
	}
	c.Size = uint32(total)
}

// runAddRange splices the closed range [lo, hi] into the run sequence,
// absorbing every run it overlaps or touches.
func (c *container) runAddRange(lo, hi uint16) {
	nr := run{lo, hi}
	n := c.runCount()

	first, _ := c.runFind(lo)
	if first > 0 && canMerge(c.runAt(first-1), nr) {
		first--
	}

	last := first
	for last < n && canMerge(c.runAt(last), nr) {
		nr = mergeRuns(nr, c.runAt(last))
		last++
	}

	switch removed := last - first; {
	case removed == 0:
		c.runInsertAt(first, nr[0], nr[1])
	default:
		c.setRunAt(first, nr)
		if removed > 1 {
			copy(c.Data[(first+1)*2:], c.Data[last*2:])
			c.Data = c.Data[:(n-removed+1)*2]
		}
	}
	c.runRecount()
}

// runDelRange removes the closed range [lo, hi], splitting any run it
// bisects into two.
func (c *container) runDelRange(lo, hi uint16) {
	cut := run{lo, hi}
	out := make([]uint16, 0, len(c.Data)+2)
	var parts [2]run
	for i := 0; i < c.runCount(); i++ {
		for _, r := range subtractRuns(c.runAt(i), cut, parts[:0]) {
			out = append(out, r[0], r[1])
		}
	}

	c.Data = out
	c.Shared = false
	c.runRecount()
}

// runInvert replaces the content with its complement over the full 16-bit
// space, so the cardinality becomes 65536 minus the original.
func (c *container) runInvert() {
	out := make([]uint16, 0, len(c.Data)+2)
	next := 0
	for i := 0; i < c.runCount(); i++ {
		r := c.runAt(i)
		if int(r[0]) > next {
			out = append(out, uint16(next), r[0]-1)
		}
		next = int(r[1]) + 1
	}
	if next <= 65535 {
		out = append(out, uint16(next), 65535)
	}

	c.Data = out
	c.Shared = false
	c.Size = uint32(65536 - int(c.Size))
}

// runToArr converts the runs into a sorted array container.
func (c *container) runToArr() {
	values := make([]uint16, 0, c.Size)
	for i := 0; i < c.runCount(); i++ {
		r := c.runAt(i)
		for v := int(r[0]); v <= int(r[1]); v++ {
			values = append(values, uint16(v))
		}
	}

	c.Data = values
	c.Type = typeArray
	c.Shared = false
}

// runToBmp converts the runs into a bitmap container.
func (c *container) runToBmp() {
	runs := c.Data
	c.Data = make([]uint16, bmpSizeUint16)
	c.Type = typeBitmap
	c.Shared = false

	words := c.bmpWords()
	for i := 0; i+1 < len(runs); i += 2 {
		setWordRange(words, int(runs[i]), int(runs[i+1]))
	}
}
