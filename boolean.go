package roaring

// And computes the intersection between the bitmap and the provided bitmap(s)
// and stores the result in the current bitmap.
func (rb *Bitmap) And(other *Bitmap, extra ...*Bitmap) {
	rb.and(other)
	for _, b := range extra {
		if len(rb.containers) == 0 {
			return
		}
		rb.and(b)
	}
}

// AndNot computes the difference between the bitmap and the provided bitmap(s)
// and stores the result in the current bitmap.
func (rb *Bitmap) AndNot(other *Bitmap, extra ...*Bitmap) {
	rb.andNot(other)
	for _, b := range extra {
		if len(rb.containers) == 0 {
			return
		}
		rb.andNot(b)
	}
}

// Or computes the union between the bitmap and the provided bitmap(s)
// and stores the result in the current bitmap.
func (rb *Bitmap) Or(other *Bitmap, extra ...*Bitmap) {
	rb.or(other)
	for _, b := range extra {
		rb.or(b)
	}
}

// Xor computes the symmetric difference between the bitmap and the provided
// bitmap(s) and stores the result in the current bitmap.
func (rb *Bitmap) Xor(other *Bitmap, extra ...*Bitmap) {
	rb.xor(other)
	for _, b := range extra {
		rb.xor(b)
	}
}
