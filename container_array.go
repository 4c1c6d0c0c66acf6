package roaring

// arrSet inserts a value into the sorted array, keeping it unique.
func (c *container) arrSet(value uint16) bool {
	at, found := find16(c.Data, value)
	if found {
		return false
	}

	c.Data = append(c.Data, 0)
	copy(c.Data[at+1:], c.Data[at:])
	c.Data[at] = value
	c.Size++
	return true
}

// arrDel removes a value from the sorted array.
func (c *container) arrDel(value uint16) bool {
	at, found := find16(c.Data, value)
	if !found {
		return false
	}

	copy(c.Data[at:], c.Data[at+1:])
	c.Data = c.Data[:len(c.Data)-1]
	c.Size--
	return true
}

// arrHas checks if a value exists in the array.
func (c *container) arrHas(value uint16) bool {
	_, found := find16(c.Data, value)
	return found
}

func (c *container) arrMin() uint16 {
	return c.Data[0]
}

func (c *container) arrMax() uint16 {
	return c.Data[len(c.Data)-1]
}

// arrRank counts the values less than or equal to the given one.
func (c *container) arrRank(value uint16) int {
	at, found := find16(c.Data, value)
	if found {
		return at + 1
	}
	return at
}

func (c *container) arrSelect(i int) uint16 {
	return c.Data[i]
}

// arrNumRuns counts the maximal stretches of consecutive values.
func (c *container) arrNumRuns() int {
	if len(c.Data) == 0 {
		return 0
	}

	runs := 1
	for i := 1; i < len(c.Data); i++ {
		if c.Data[i] != c.Data[i-1]+1 {
			runs++
		}
	}
	return runs
}

// arrDelRange removes every value within [lo, hi].
func (c *container) arrDelRange(lo, hi uint16) {
	from, _ := find16(c.Data, lo)
	to := from
	for to < len(c.Data) && c.Data[to] <= hi {
		to++
	}

	if to > from {
		c.Data = append(c.Data[:from], c.Data[to:]...)
		c.Size = uint32(len(c.Data))
	}
}

// arrToBmp promotes the array into a bitmap container.
func (c *container) arrToBmp() {
	values := c.Data
	c.Data = make([]uint16, bmpSizeUint16)
	c.Type = typeBitmap
	c.Shared = false

	words := c.bmpWords()
	for _, v := range values {
		words[v>>6] |= 1 << (v & 63)
	}
	c.Size = uint32(len(values))
}

// arrToRun converts the array into run representation, coalescing stretches
// of consecutive values into single runs.
func (c *container) arrToRun() {
	values := c.Data
	runs := make([]uint16, 0, 16)
	for i := 0; i < len(values); {
		j := i
		for j+1 < len(values) && values[j+1] == values[j]+1 {
			j++
		}
		runs = append(runs, values[i], values[j])
		i = j + 1
	}

	c.Data = runs
	c.Type = typeRun
	c.Shared = false
}
