package stack

import "math"

// BoundKind 区间端点的类型
type BoundKind uint8

const (
	Unbounded BoundKind = iota
	Included
	Excluded
)

// Bound is one end of a Range.
type Bound struct {
	Kind  BoundKind
	Index int
}

func NoBound() Bound { return Bound{Kind: Unbounded} }

func Inclusive(index int) Bound { return Bound{Kind: Included, Index: index} }

func Exclusive(index int) Bound { return Bound{Kind: Excluded, Index: index} }

// Range selects a contiguous run of occupied slots, 0 being the bottom.
type Range struct {
	Start Bound
	End   Bound
}

// All selects every occupied slot.
func All() Range {
	return Range{Start: NoBound(), End: NoBound()}
}

// Span selects [start, end).
func Span(start, end int) Range {
	return Range{Start: Inclusive(start), End: Exclusive(end)}
}

// SpanInclusive selects [start, end].
func SpanInclusive(start, end int) Range {
	return Range{Start: Inclusive(start), End: Inclusive(end)}
}

// From selects [start, Len()).
func From(start int) Range {
	return Range{Start: Inclusive(start), End: NoBound()}
}

// To selects [0, end).
func To(end int) Range {
	return Range{Start: NoBound(), End: Exclusive(end)}
}

// normalize 将区间转换为 [start, end)，不会 panic
func normalize(r Range, n int) (start, end int, err error) {
	switch r.Start.Kind {
	case Unbounded:
		start = 0
	case Included:
		if start, err = index(r.Start.Index, false, startIndexError); err != nil {
			return 0, 0, err
		}
	case Excluded:
		if start, err = index(r.Start.Index, true, startIndexError); err != nil {
			return 0, 0, err
		}
	default:
		return 0, 0, startIndexError(r.Start.Index)
	}

	switch r.End.Kind {
	case Unbounded:
		end = n
	case Included:
		if end, err = index(r.End.Index, true, endIndexError); err != nil {
			return 0, 0, err
		}
	case Excluded:
		if end, err = index(r.End.Index, false, endIndexError); err != nil {
			return 0, 0, err
		}
	default:
		return 0, 0, endIndexError(r.End.Index)
	}

	if start > end || end > n {
		return 0, 0, rangeError(start, end, n-1)
	}
	return start, end, nil
}

// index 校验端点值能否表示为下标，inc 表示需要加一
func index(i int, inc bool, fail func(int) error) (int, error) {
	if i < 0 {
		return 0, fail(i)
	}
	if inc {
		if i == math.MaxInt {
			return 0, fail(i)
		}
		i++
	}
	return i, nil
}
