package roaring

// Bitmap represents a roaring bitmap for uint32 values: a sorted index of
// 16-bit chunk keys with one container per key. The two slices are parallel
// and no container is ever left empty.
type Bitmap struct {
	index      []uint16
	containers []container
	scratch    []uint16
}

// New creates a new empty roaring bitmap
func New() *Bitmap {
	return &Bitmap{}
}

// From creates a roaring bitmap from the given values.
func From(values ...uint32) *Bitmap {
	rb := New()
	for _, v := range values {
		rb.Set(v)
	}
	return rb
}

// findContainer finds the container for the given chunk key.
func (rb *Bitmap) findContainer(hi uint16) (*container, bool) {
	if at, ok := find16(rb.index, hi); ok {
		return &rb.containers[at], true
	}
	return nil, false
}

// ctrAdd inserts a container for the given key at the given position,
// keeping the index sorted.
func (rb *Bitmap) ctrAdd(hi uint16, at int, c container) *container {
	rb.index = append(rb.index, 0)
	copy(rb.index[at+1:], rb.index[at:])
	rb.index[at] = hi

	rb.containers = append(rb.containers, container{})
	copy(rb.containers[at+1:], rb.containers[at:])
	rb.containers[at] = c
	return &rb.containers[at]
}

// ctrDel removes the container at the given position.
func (rb *Bitmap) ctrDel(at int) {
	copy(rb.index[at:], rb.index[at+1:])
	rb.index = rb.index[:len(rb.index)-1]

	copy(rb.containers[at:], rb.containers[at+1:])
	rb.containers = rb.containers[:len(rb.containers)-1]
}

// Set sets the bit x in the bitmap.
func (rb *Bitmap) Set(x uint32) {
	hi, lo := uint16(x>>16), uint16(x)
	at, ok := find16(rb.index, hi)

	var c *container
	if !ok {
		c = rb.ctrAdd(hi, at, container{Type: typeArray, Data: make([]uint16, 0, 8)})
	} else {
		c = &rb.containers[at]
	}
	c.set(lo)
}

// Remove removes the bit x from the bitmap.
func (rb *Bitmap) Remove(x uint32) {
	hi, lo := uint16(x>>16), uint16(x)
	at, ok := find16(rb.index, hi)
	if !ok {
		return
	}

	if c := &rb.containers[at]; c.remove(lo) && c.isEmpty() {
		rb.ctrDel(at)
	}
}

// Contains checks whether a value is contained in the bitmap or not.
func (rb *Bitmap) Contains(x uint32) bool {
	hi, lo := uint16(x>>16), uint16(x)
	c, ok := rb.findContainer(hi)
	return ok && c.contains(lo)
}

// Count returns the total number of bits set to 1 in the bitmap
func (rb *Bitmap) Count() int {
	count := 0
	for i := range rb.containers {
		count += rb.containers[i].cardinality()
	}
	return count
}

// Min returns the smallest value in the bitmap.
func (rb *Bitmap) Min() (uint32, bool) {
	if len(rb.containers) == 0 {
		return 0, false
	}
	return uint32(rb.index[0])<<16 | uint32(rb.containers[0].min()), true
}

// Max returns the largest value in the bitmap.
func (rb *Bitmap) Max() (uint32, bool) {
	last := len(rb.containers) - 1
	if last < 0 {
		return 0, false
	}
	return uint32(rb.index[last])<<16 | uint32(rb.containers[last].max()), true
}

// Clear clears the bitmap, keeping the allocated capacity.
func (rb *Bitmap) Clear() {
	rb.index = rb.index[:0]
	rb.containers = rb.containers[:0]
}

// Clone copies the bitmap into the destination (allocated when nil). The
// copies share container storage until either side mutates it.
func (rb *Bitmap) Clone(into *Bitmap) *Bitmap {
	if into == nil {
		into = New()
	}

	into.index = append(into.index[:0], rb.index...)
	into.containers = append(into.containers[:0], rb.containers...)
	for i := range rb.containers {
		rb.containers[i].Shared = true
		into.containers[i].Shared = true
	}
	return into
}

// ToArray returns the values of the bitmap in ascending order.
func (rb *Bitmap) ToArray() []uint32 {
	out := make([]uint32, 0, rb.Count())
	rb.Range(func(x uint32) {
		out = append(out, x)
	})
	return out
}

// Optimize converts every container to its most compact representation.
// This can significantly reduce memory usage, especially after bulk loads.
func (rb *Bitmap) Optimize() {
	for i := range rb.containers {
		rb.containers[i].optimize()
	}
}

// Stats describes the container composition of a bitmap.
type Stats struct {
	Containers       int
	ArrayContainers  int
	BitmapContainers int
	RunContainers    int
	Cardinality      int
}

// Stats returns the container composition of the bitmap.
func (rb *Bitmap) Stats() Stats {
	stats := Stats{Containers: len(rb.containers)}
	for i := range rb.containers {
		c := &rb.containers[i]
		stats.Cardinality += c.cardinality()
		switch c.Type {
		case typeArray:
			stats.ArrayContainers++
		case typeBitmap:
			stats.BitmapContainers++
		case typeRun:
			stats.RunContainers++
		}
	}
	return stats
}
