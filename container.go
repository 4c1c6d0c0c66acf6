package roaring

const (
	arrMaxSize = 4096 // beyond this cardinality an array outgrows a bitmap
	runMaxSize = 2047 // beyond this many runs a run container outgrows a bitmap
)

type ctype byte

const (
	typeArray ctype = iota
	typeBitmap
	typeRun
)

// container holds the values of a single 16-bit chunk in one of three
// representations. Data is always a []uint16: sorted unique values for an
// array, 4096 uint16s viewed as 1024 words for a bitmap, and flattened
// [start, last] pairs for runs.
type container struct {
	Type   ctype  // Representation of the container
	Size   uint32 // Cardinality
	Shared bool   // Storage shared with another bitmap (copy-on-write)
	Data   []uint16
}

// fork makes the container sole owner of its storage. Every mutating path
// must call it before touching Data.
func (c *container) fork() {
	if c.Shared {
		c.Data = append(make([]uint16, 0, len(c.Data)), c.Data...)
		c.Shared = false
	}
}

// set sets a value and returns true if it wasn't present. The container may
// switch representation as it grows.
func (c *container) set(value uint16) bool {
	if c.contains(value) {
		return false
	}

	c.fork()
	switch c.Type {
	case typeArray:
		c.arrSet(value)
		if c.Size > arrMaxSize {
			c.arrToBmp()
		}
	case typeBitmap:
		c.bmpSet(value)
	case typeRun:
		c.runSet(value)
		if c.runCount() > runMaxSize {
			c.runToBmp()
		}
	}
	return true
}

// remove removes a value and returns true if it was present. The container
// may switch representation as it shrinks.
func (c *container) remove(value uint16) bool {
	if !c.contains(value) {
		return false
	}

	c.fork()
	switch c.Type {
	case typeArray:
		c.arrDel(value)
	case typeBitmap:
		c.bmpDel(value)
		if c.Size <= arrMaxSize {
			c.bmpToArr()
		}
	case typeRun:
		c.runDel(value)
		if c.runCount() > runMaxSize {
			c.runToBmp()
		}
	}
	return true
}

// contains checks if a value exists in the container
func (c *container) contains(value uint16) bool {
	switch c.Type {
	case typeArray:
		return c.arrHas(value)
	case typeBitmap:
		return c.bmpHas(value)
	case typeRun:
		return c.runHas(value)
	}
	return false
}

// cardinality returns the number of elements in the container
func (c *container) cardinality() int {
	return int(c.Size)
}

// isEmpty returns true if the container has no elements
func (c *container) isEmpty() bool {
	return c.Size == 0
}

// min returns the smallest value; the container must not be empty.
func (c *container) min() uint16 {
	switch c.Type {
	case typeBitmap:
		return c.bmpMin()
	case typeRun:
		return c.runMin()
	default:
		return c.arrMin()
	}
}

// max returns the largest value; the container must not be empty.
func (c *container) max() uint16 {
	switch c.Type {
	case typeBitmap:
		return c.bmpMax()
	case typeRun:
		return c.runMax()
	default:
		return c.arrMax()
	}
}

// rank counts the values less than or equal to the given one.
func (c *container) rank(value uint16) int {
	switch c.Type {
	case typeBitmap:
		return c.bmpRank(value)
	case typeRun:
		return c.runRank(value)
	default:
		return c.arrRank(value)
	}
}

// sel returns the i-th smallest value (0-based); the caller guarantees
// i < cardinality.
func (c *container) sel(i int) uint16 {
	switch c.Type {
	case typeBitmap:
		return c.bmpSelect(i)
	case typeRun:
		return c.runSelect(i)
	default:
		return c.arrSelect(i)
	}
}

// numberOfRuns counts the maximal stretches of consecutive values. The
// result is the same for all three representations of the same content.
func (c *container) numberOfRuns() int {
	switch c.Type {
	case typeBitmap:
		return c.bmpNumRuns()
	case typeRun:
		return c.runCount()
	default:
		return c.arrNumRuns()
	}
}

// sizeInBytes estimates the serialized size of the container as-is, the
// metric the representation chooser minimizes.
func (c *container) sizeInBytes() int {
	switch c.Type {
	case typeBitmap:
		return bmpSizeBytes
	case typeRun:
		return 2 + 4*c.runCount()
	default:
		return 2 * int(c.Size)
	}
}

// optimize converts the container to whichever representation serializes
// smallest for its current content. The choice depends only on content, so
// repeated calls on unchanged data settle on the same representation.
func (c *container) optimize() {
	if c.Size == 0 {
		return
	}

	sizeAsRun := 2 + 4*c.numberOfRuns()
	sizeAsArr := 2 * int(c.Size)

	best, bestSize := typeArray, sizeAsArr
	if bmpSizeBytes < bestSize {
		best, bestSize = typeBitmap, bmpSizeBytes
	}
	if sizeAsRun < bestSize {
		best = typeRun
	}
	if best == c.Type {
		return
	}

	switch {
	case c.Type == typeArray && best == typeBitmap:
		c.arrToBmp()
	case c.Type == typeArray && best == typeRun:
		c.arrToRun()
	case c.Type == typeBitmap && best == typeArray:
		c.bmpToArr()
	case c.Type == typeBitmap && best == typeRun:
		c.bmpToRun()
	case c.Type == typeRun && best == typeArray:
		c.runToArr()
	case c.Type == typeRun && best == typeBitmap:
		c.runToBmp()
	}
}
