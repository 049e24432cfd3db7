package stats

import (
	"gonum.org/v1/gonum/floats"
)

// Range is a closed interval on one axis
type Range struct {
	Min float64
	Max float64
}

// Span returns Max - Min
func (r Range) Span() float64 {
	return r.Max - r.Min
}

// Union returns the smallest range covering both r and o
func (r Range) Union(o Range) Range {
	if o.Min < r.Min {
		r.Min = o.Min
	}
	if o.Max > r.Max {
		r.Max = o.Max
	}
	return r
}

// Contains reports whether v lies in the closed interval
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// DataRange returns the extent of v. A degenerate extent is widened by 0.5
// on each side, and an empty series yields [0, 1].
func DataRange(v []float64) Range {
	if len(v) == 0 {
		return Range{Min: 0, Max: 1}
	}
	r := Range{Min: floats.Min(v), Max: floats.Max(v)}
	if r.Min == r.Max {
		r.Min -= 0.5
		r.Max += 0.5
	}
	return r
}

// Histogram2D counts paired values on an equal-width grid. Counts[i][j] is
// the number of points in x bin i and y bin j. Bins are half-open except the
// last on each axis, which includes its right edge.
type Histogram2D struct {
	XEdges []float64
	YEdges []float64
	Counts [][]int
	Max    int
}

// NewHistogram2D bins x and y into a bins×bins grid over xr and yr. Points
// outside the ranges are ignored.
func NewHistogram2D(x, y []float64, bins int, xr, yr Range) (*Histogram2D, error) {
	if len(x) != len(y) {
		return nil, ErrLengthMismatch
	}
	if bins < 1 {
		bins = 1
	}

	h := &Histogram2D{
		XEdges: floats.Span(make([]float64, bins+1), xr.Min, xr.Max),
		YEdges: floats.Span(make([]float64, bins+1), yr.Min, yr.Max),
		Counts: make([][]int, bins),
	}
	for i := range h.Counts {
		h.Counts[i] = make([]int, bins)
	}

	for k := range x {
		i, okX := binIndex(x[k], xr, bins)
		j, okY := binIndex(y[k], yr, bins)
		if !okX || !okY {
			continue
		}
		h.Counts[i][j]++
		if h.Counts[i][j] > h.Max {
			h.Max = h.Counts[i][j]
		}
	}

	return h, nil
}

// Bins returns the grid size
func (h *Histogram2D) Bins() int {
	return len(h.Counts)
}

// Total returns the number of binned points
func (h *Histogram2D) Total() int {
	total := 0
	for _, col := range h.Counts {
		for _, c := range col {
			total += c
		}
	}
	return total
}

func binIndex(v float64, r Range, bins int) (int, bool) {
	if !r.Contains(v) || r.Span() <= 0 {
		return 0, false
	}
	i := int((v - r.Min) / r.Span() * float64(bins))
	if i >= bins {
		i = bins - 1
	}
	return i, true
}
