package core

// Interval represents a closed numeric range [Min, Max]
type Interval struct {
	Min, Max float64
}

// NewInterval creates an interval from two unordered bounds
func NewInterval(a, b float64) Interval {
	if a <= b {
		return Interval{Min: a, Max: b}
	}
	return Interval{Min: b, Max: a}
}

// UnionIntervals returns the smallest interval enclosing both inputs
func UnionIntervals(a, b Interval) Interval {
	result := a
	if b.Min < result.Min {
		result.Min = b.Min
	}
	if b.Max > result.Max {
		result.Max = b.Max
	}
	return result
}

// Expand returns a new interval with both bounds moved outward by delta/2.
// A negative delta shrinks the interval instead.
func (i Interval) Expand(delta float64) Interval {
	padding := delta / 2
	return Interval{Min: i.Min - padding, Max: i.Max + padding}
}

// Surrounds reports whether x lies strictly inside the interval
func (i Interval) Surrounds(x float64) bool {
	return i.Min < x && x < i.Max
}

// Clamp projects x onto the interval
func (i Interval) Clamp(x float64) float64 {
	if x < i.Min {
		return i.Min
	}
	if x > i.Max {
		return i.Max
	}
	return x
}

// Size returns the extent of the interval
func (i Interval) Size() float64 {
	return i.Max - i.Min
}
