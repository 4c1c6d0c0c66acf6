package roaring

// Rank returns the number of values in the bitmap that are less than or
// equal to x.
func (rb *Bitmap) Rank(x uint32) int {
	hi, lo := uint16(x>>16), uint16(x)
	rank := 0
	for i := range rb.containers {
		switch {
		case rb.index[i] < hi:
			rank += rb.containers[i].cardinality()
		case rb.index[i] == hi:
			return rank + rb.containers[i].rank(lo)
		default:
			return rank
		}
	}
	return rank
}

// Select returns the i-th smallest value of the bitmap (0-based). The second
// return value is false when i is past the cardinality.
func (rb *Bitmap) Select(i int) (uint32, bool) {
	if i < 0 {
		return 0, false
	}

	for k := range rb.containers {
		n := rb.containers[k].cardinality()
		if i < n {
			return uint32(rb.index[k])<<16 | uint32(rb.containers[k].sel(i)), true
		}
		i -= n
	}
	return 0, false
}
