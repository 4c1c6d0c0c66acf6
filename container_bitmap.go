package roaring

import (
	"math/bits"

	"github.com/kelindar/bitmap"
)

// bmp returns the dense payload as a bit vector.
func (c *container) bmp() bitmap.Bitmap {
	return asBitmap(c.Data)
}

// bmpWords returns the dense payload as raw 64-bit words.
func (c *container) bmpWords() []uint64 {
	return asBitmap(c.Data)
}

// bmpSet sets a bit, adjusting the cardinality incrementally.
func (c *container) bmpSet(value uint16) bool {
	words := c.bmpWords()
	mask := uint64(1) << (value & 63)
	if words[value>>6]&mask != 0 {
		return false
	}

	words[value>>6] |= mask
	c.Size++
	return true
}

// bmpDel clears a bit, adjusting the cardinality incrementally.
func (c *container) bmpDel(value uint16) bool {
	words := c.bmpWords()
	mask := uint64(1) << (value & 63)
	if words[value>>6]&mask == 0 {
		return false
	}

	words[value>>6] &^= mask
	c.Size--
	return true
}

// bmpHas checks if a bit is set.
func (c *container) bmpHas(value uint16) bool {
	return c.bmpWords()[value>>6]&(1<<(value&63)) != 0
}

func (c *container) bmpMin() uint16 {
	for i, w := range c.bmpWords() {
		if w != 0 {
			return uint16(i<<6 + bits.TrailingZeros64(w))
		}
	}
	return 0
}

func (c *container) bmpMax() uint16 {
	words := c.bmpWords()
	for i := len(words) - 1; i >= 0; i-- {
		if w := words[i]; w != 0 {
			return uint16(i<<6 + 63 - bits.LeadingZeros64(w))
		}
	}
	return 0
}

// bmpRank counts the bits set at positions less than or equal to value:
// full words up to the one holding value, then a partial count within it.
func (c *container) bmpRank(value uint16) int {
	words := c.bmpWords()
	rank := 0
	for i := 0; i < int(value>>6); i++ {
		rank += bits.OnesCount64(words[i])
	}

	w := words[value>>6] << (63 - value&63)
	return rank + bits.OnesCount64(w)
}

// bmpSelect returns the position of the i-th set bit (0-based).
func (c *container) bmpSelect(i int) uint16 {
	words := c.bmpWords()
	for w := range words {
		n := bits.OnesCount64(words[w])
		if i < n {
			word := words[w]
			for ; i > 0; i-- {
				word &= word - 1
			}
			return uint16(w<<6 + bits.TrailingZeros64(word))
		}
		i -= n
	}
	return 0
}

// bmpNumRuns counts the maximal runs of consecutive set bits one word at a
// time: a run ends wherever a set bit is followed by a clear one, with a
// carry term for runs crossing a word boundary.
func (c *container) bmpNumRuns() int {
	words := c.bmpWords()
	runs := 0
	next := words[0]
	for i := 0; i < len(words)-1; i++ {
		word := next
		next = words[i+1]
		runs += bits.OnesCount64(^word&(word<<1)) + int(((word>>63)&^next)&1)
	}

	word := next
	runs += bits.OnesCount64(^word & (word << 1))
	if word&(1<<63) != 0 {
		runs++
	}
	return runs
}

// bmpSetRange sets every bit within [lo, hi] and recounts.
func (c *container) bmpSetRange(lo, hi uint16) {
	words := c.bmpWords()
	setWordRange(words, int(lo), int(hi))
	c.Size = uint32(popcountWords(words))
}

// bmpDelRange clears every bit within [lo, hi] and recounts.
func (c *container) bmpDelRange(lo, hi uint16) {
	words := c.bmpWords()
	clearWordRange(words, int(lo), int(hi))
	c.Size = uint32(popcountWords(words))
}

// bmpFlipRange toggles every bit within [lo, hi] and recounts.
func (c *container) bmpFlipRange(lo, hi uint16) {
	words := c.bmpWords()
	flipWordRange(words, int(lo), int(hi))
	c.Size = uint32(popcountWords(words))
}

// bmpToArr demotes the bitmap into a sorted array container.
func (c *container) bmpToArr() {
	words := c.bmpWords()
	values := make([]uint16, 0, c.Size)
	for i, word := range words {
		for word != 0 {
			values = append(values, uint16(i<<6+bits.TrailingZeros64(word)))
			word &= word - 1
		}
	}

	c.Data = values
	c.Type = typeArray
	c.Shared = false
	c.Size = uint32(len(values))
}

// bmpToRun converts the bitmap into run representation by scanning for
// alternating stretches of set and clear bits.
func (c *container) bmpToRun() {
	words := c.bmpWords()
	runs := make([]uint16, 0, 16)
	i := nextSet(words, 0)
	for i >= 0 {
		j := nextClear(words, i)
		if j < 0 {
			runs = append(runs, uint16(i), 65535)
			break
		}

		runs = append(runs, uint16(i), uint16(j-1))
		i = nextSet(words, j)
	}

	c.Data = runs
	c.Type = typeRun
	c.Shared = false
}

// nextSet returns the position of the first set bit at or after from, or -1.
func nextSet(words []uint64, from int) int {
	if from >= len(words)<<6 {
		return -1
	}

	i := from >> 6
	w := words[i] >> (from & 63) << (from & 63)
	for {
		if w != 0 {
			return i<<6 + bits.TrailingZeros64(w)
		}
		if i++; i == len(words) {
			return -1
		}
		w = words[i]
	}
}

// nextClear returns the position of the first clear bit at or after from, or -1.
func nextClear(words []uint64, from int) int {
	if from >= len(words)<<6 {
		return -1
	}

	i := from >> 6
	w := ^words[i] >> (from & 63) << (from & 63)
	for {
		if w != 0 {
			return i<<6 + bits.TrailingZeros64(w)
		}
		if i++; i == len(words) {
			return -1
		}
		w = ^words[i]
	}
}

// setWordRange sets bits [lo, hi] across the word array.
func setWordRange(words []uint64, lo, hi int) {
	first, last := lo>>6, hi>>6
	firstMask := ^uint64(0) << (lo & 63)
	lastMask := ^uint64(0) >> (63 - (hi & 63))
	if first == last {
		words[first] |= firstMask & lastMask
		return
	}

	words[first] |= firstMask
	for i := first + 1; i < last; i++ {
		words[i] = ^uint64(0)
	}
	words[last] |= lastMask
}

// clearWordRange clears bits [lo, hi] across the word array.
func clearWordRange(words []uint64, lo, hi int) {
	first, last := lo>>6, hi>>6
	firstMask := ^uint64(0) << (lo & 63)
	lastMask := ^uint64(0) >> (63 - (hi & 63))
	if first == last {
		words[first] &^= firstMask & lastMask
		return
	}

	words[first] &^= firstMask
	for i := first + 1; i < last; i++ {
		words[i] = 0
	}
	words[last] &^= lastMask
}

// flipWordRange toggles bits [lo, hi] across the word array.
func flipWordRange(words []uint64, lo, hi int) {
	first, last := lo>>6, hi>>6
	firstMask := ^uint64(0) << (lo & 63)
	lastMask := ^uint64(0) >> (63 - (hi & 63))
	if first == last {
		words[first] ^= firstMask & lastMask
		return
	}

	words[first] ^= firstMask
	for i := first + 1; i < last; i++ {
		words[i] = ^words[i]
	}
	words[last] ^= lastMask
}

func popcountWords(words []uint64) int {
	count := 0
	for _, w := range words {
		count += bits.OnesCount64(w)
	}
	return count
}
