package roaring

import (
	"container/heap"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// FoldOr computes the union of all provided bitmaps sequentially. Nil
// bitmaps are ignored.
func FoldOr(bms ...*Bitmap) *Bitmap {
	out := New()
	for _, b := range bms {
		out.or(b)
	}
	return out
}

// FoldAnd computes the intersection of all provided bitmaps sequentially.
// A nil bitmap counts as empty, making the whole intersection empty.
func FoldAnd(bms ...*Bitmap) *Bitmap {
	if len(bms) == 0 {
		return New()
	}
	for _, b := range bms {
		if b == nil {
			return New()
		}
	}

	out := bms[0].Clone(nil)
	for _, b := range bms[1:] {
		if len(out.containers) == 0 {
			break
		}
		out.and(b)
	}
	return out
}

// ParOr computes the union of all provided bitmaps using up to the given
// number of workers. A non-positive worker count uses all CPUs.
func ParOr(workers int, bms ...*Bitmap) *Bitmap {
	bms = liveBitmaps(bms)
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	switch {
	case len(bms) == 0:
		return New()
	case len(bms) == 1:
		return bms[0].Clone(nil)
	case len(bms) == 2 || workers == 1:
		return FoldOr(bms...)
	}

	// Aggregate each partition independently, then fold the partial
	// results pairwise until one remains.
	parts := partition(bms, workers)
	partial := make([]*Bitmap, len(parts))
	var g errgroup.Group
	g.SetLimit(workers)
	for i := range parts {
		i := i
		g.Go(func() error {
			partial[i] = FoldOr(parts[i]...)
			return nil
		})
	}
	_ = g.Wait()

	for len(partial) > 1 {
		next := make([]*Bitmap, 0, (len(partial)+1)/2)
		var g errgroup.Group
		g.SetLimit(workers)
		for i := 0; i < len(partial); i += 2 {
			if i+1 == len(partial) {
				next = append(next, partial[i])
				break
			}
			a, b := partial[i], partial[i+1]
			next = append(next, a)
			g.Go(func() error {
				a.or(b)
				return nil
			})
		}
		_ = g.Wait()
		partial = next
	}
	return partial[0]
}

// ParAnd computes the intersection of all provided bitmaps using up to the
// given number of workers. A non-positive worker count uses all CPUs.
func ParAnd(workers int, bms ...*Bitmap) *Bitmap {
	if len(bms) == 0 {
		return New()
	}
	for _, b := range bms {
		if b == nil || len(b.containers) == 0 {
			return New()
		}
	}
	bms = dedupBitmaps(bms)
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if len(bms) <= 2 || workers == 1 {
		return FoldAnd(bms...)
	}

	// Intersect each partition independently. The final pass over the
	// partial results only ever shrinks, so it stays sequential.
	parts := partition(bms, workers)
	partial := make([]*Bitmap, len(parts))
	var g errgroup.Group
	g.SetLimit(workers)
	for i := range parts {
		i := i
		g.Go(func() error {
			partial[i] = FoldAnd(parts[i]...)
			return nil
		})
	}
	_ = g.Wait()

	out := partial[0]
	for _, p := range partial[1:] {
		if len(out.containers) == 0 {
			break
		}
		out.and(p)
	}
	return out
}

// ParHeapOr computes the union of all provided bitmaps with a k-way merge
// over container keys, optionally pre-reducing partitions in parallel when
// the input is much larger than the worker count.
func ParHeapOr(workers int, bms ...*Bitmap) *Bitmap {
	bms = liveBitmaps(bms)
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	switch {
	case len(bms) == 0:
		return New()
	case len(bms) == 1:
		return bms[0].Clone(nil)
	}

	if workers > 1 && len(bms) > 2*workers {
		parts := partition(bms, workers)
		partial := make([]*Bitmap, len(parts))
		var g errgroup.Group
		g.SetLimit(workers)
		for i := range parts {
			i := i
			g.Go(func() error {
				partial[i] = heapOr(parts[i])
				return nil
			})
		}
		_ = g.Wait()
		return heapOr(partial)
	}
	return heapOr(bms)
}

// liveBitmaps filters out nil and empty bitmaps and drops repeated
// pointers, so no bitmap ends up in more than one partition.
func liveBitmaps(bms []*Bitmap) []*Bitmap {
	seen := make(map[*Bitmap]struct{}, len(bms))
	out := make([]*Bitmap, 0, len(bms))
	for _, b := range bms {
		if b == nil || len(b.containers) == 0 {
			continue
		}
		if _, ok := seen[b]; ok {
			continue
		}
		seen[b] = struct{}{}
		out = append(out, b)
	}
	return out
}

// dedupBitmaps drops repeated pointers, keeping first occurrences in order.
func dedupBitmaps(bms []*Bitmap) []*Bitmap {
	seen := make(map[*Bitmap]struct{}, len(bms))
	out := make([]*Bitmap, 0, len(bms))
	for _, b := range bms {
		if _, ok := seen[b]; ok {
			continue
		}
		seen[b] = struct{}{}
		out = append(out, b)
	}
	return out
}

// partition splits the bitmaps into at most `workers` contiguous groups
// of at least two bitmaps each.
func partition(bms []*Bitmap, workers int) [][]*Bitmap {
	parts := workers
	if max := (len(bms) + 1) / 2; parts > max {
		parts = max
	}

	out := make([][]*Bitmap, 0, parts)
	size := (len(bms) + parts - 1) / parts
	for lo := 0; lo < len(bms); lo += size {
		hi := lo + size
		if hi > len(bms) {
			hi = len(bms)
		}
		out = append(out, bms[lo:hi])
	}
	return out
}

// heapOr merges the bitmaps by walking their container lists in key order
// with a min-heap of cursors, so each output container is produced once.
func heapOr(bms []*Bitmap) *Bitmap {
	out := New()
	h := make(cursorHeap, 0, len(bms))
	for _, b := range bms {
		if b != nil && len(b.containers) > 0 {
			h = append(h, cursor{bm: b})
		}
	}
	heap.Init(&h)

	for len(h) > 0 {
		cur := &h[0]
		key := cur.bm.index[cur.pos]
		src := &cur.bm.containers[cur.pos]
		src.Shared = true
		out.index = append(out.index, key)
		out.containers = append(out.containers, *src)
		h.advance()

		for len(h) > 0 && h[0].bm.index[h[0].pos] == key {
			c := &out.containers[len(out.containers)-1]
			out.ctrOr(c, &h[0].bm.containers[h[0].pos])
			h.advance()
		}
	}
	return out
}

type cursor struct {
	bm  *Bitmap
	pos int
}

type cursorHeap []cursor

func (h cursorHeap) Len() int { return len(h) }
func (h cursorHeap) Less(i, j int) bool {
	return h[i].bm.index[h[i].pos] < h[j].bm.index[h[j].pos]
}
func (h cursorHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *cursorHeap) Push(x any) { *h = append(*h, x.(cursor)) }
func (h *cursorHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// advance moves the top cursor to its next container, dropping it from the
// heap when exhausted.
func (h *cursorHeap) advance() {
	top := &(*h)[0]
	top.pos++
	if top.pos >= len(top.bm.containers) {
		heap.Pop(h)
	} else {
		heap.Fix(h, 0)
	}
}
