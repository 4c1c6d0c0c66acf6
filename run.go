package roaring

// run is a closed interval [start, last] of 16-bit values. Runs are value
// types, freely copied; a run container owns an ordered sequence of them.
type run [2]uint16

// count returns the number of values the run covers.
func (r run) count() int {
	return int(r[1]) - int(r[0]) + 1
}

// canMerge reports whether two runs overlap or are adjacent, i.e. whether
// their union is still a single run.
func canMerge(a, b run) bool {
	if b[0] < a[0] {
		a, b = b, a
	}
	return int(a[1])+1 >= int(b[0])
}

// mergeRuns combines two overlapping or adjacent runs into one. Merging
// disjoint runs is a bug in the caller, so it panics.
func mergeRuns(a, b run) run {
	if !canMerge(a, b) {
		panic("roaring: mergeRuns on disjoint runs")
	}
	if b[0] < a[0] {
		a[0] = b[0]
	}
	if b[1] > a[1] {
		a[1] = b[1]
	}
	return a
}

// intersectRuns returns the overlap of two runs, if any.
func intersectRuns(a, b run) (run, bool) {
	lo, hi := a[0], a[1]
	if b[0] > lo {
		lo = b[0]
	}
	if b[1] < hi {
		hi = b[1]
	}
	if lo > hi {
		return run{}, false
	}
	return run{lo, hi}, true
}

// subtractRuns appends what remains of a after removing every value covered
// by b: zero, one or two runs. Cutting a middle slice out splits a in two.
func subtractRuns(a, b run, into []run) []run {
	if b[1] < a[0] || b[0] > a[1] {
		return append(into, a)
	}
	if b[0] > a[0] {
		into = append(into, run{a[0], b[0] - 1})
	}
	if b[1] < a[1] {
		into = append(into, run{b[1] + 1, a[1]})
	}
	return into
}
