package stack

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPeekRange(t *testing.T) {
	s, err := With(8, 0, 1, 2, 3, 4)
	require.NoError(t, err)

	tests := []struct {
		name string
		r    Range
		want []int
	}{
		{name: "all", r: All(), want: []int{0, 1, 2, 3, 4}},
		{name: "span", r: Span(1, 3), want: []int{1, 2}},
		{name: "inclusive", r: SpanInclusive(1, 3), want: []int{1, 2, 3}},
		{name: "from", r: From(3), want: []int{3, 4}},
		{name: "to", r: To(2), want: []int{0, 1}},
		{name: "exclusive start", r: Range{Start: Exclusive(0), End: NoBound()}, want: []int{1, 2, 3, 4}},
		{name: "empty span", r: Span(2, 2), want: []int{}},
		{name: "up to len", r: Span(0, 5), want: []int{0, 1, 2, 3, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := s.PeekRange(tt.r)
			require.NoError(t, err)
			require.Equal(t, tt.want, append([]int{}, v...))
			require.Equal(t, len(v), cap(v))
		})
	}
	require.Equal(t, 5, s.Len())
}

func TestPeekRangeErrors(t *testing.T) {
	s, err := With(8, 0, 1, 2)
	require.NoError(t, err)

	tests := []struct {
		name string
		r    Range
		kind Kind
	}{
		{name: "start after end", r: Span(2, 1), kind: InvalidRange},
		{name: "end past len", r: Span(0, 4), kind: InvalidRange},
		{name: "inclusive end at len", r: SpanInclusive(0, 3), kind: InvalidRange},
		{name: "start past len", r: From(4), kind: InvalidRange},
		{name: "negative start", r: From(-1), kind: InvalidStartIndex},
		{name: "negative end", r: To(-2), kind: InvalidEndIndex},
		{name: "exclusive start overflow", r: Range{Start: Exclusive(math.MaxInt), End: NoBound()}, kind: InvalidStartIndex},
		{name: "inclusive end overflow", r: SpanInclusive(0, math.MaxInt), kind: InvalidEndIndex},
		{name: "unknown bound", r: Range{Start: Bound{Kind: BoundKind(9)}}, kind: InvalidStartIndex},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := s.PeekRange(tt.r)
			require.Error(t, err)
			require.Nil(t, v)
			k, ok := KindOf(err)
			require.True(t, ok)
			require.Equal(t, tt.kind, k)
		})
	}
}

func TestRangeErrorFields(t *testing.T) {
	s, err := With(8, 0, 1, 2)
	require.NoError(t, err)

	_, err = s.PeekRange(Span(2, 1))
	require.ErrorIs(t, err, ErrInvalidRange)
	e := err.(*Error)
	require.Equal(t, 2, e.Start)
	require.Equal(t, 1, e.End)
	require.Equal(t, 2, e.Top)
	require.Equal(t, "range from 2 to 1 is invalid for stack with top 2", e.Error())

	_, err = New[int](2).PeekRange(To(1))
	require.ErrorIs(t, err, ErrInvalidRange)
	require.Equal(t, -1, err.(*Error).Top)
}

func TestPeekRangeEmptyStack(t *testing.T) {
	v, err := New[int](2).PeekRange(All())
	require.NoError(t, err)
	require.Empty(t, v)
}

func TestPeekRangeCannotGrowIntoFreeSlots(t *testing.T) {
	s, err := With(4, 1, 2)
	require.NoError(t, err)

	v, err := s.PeekRange(All())
	require.NoError(t, err)
	_ = append(v, 99)
	require.Equal(t, 0, s.data[2])
}

func TestNormalize(t *testing.T) {
	start, end, err := normalize(All(), 0)
	require.NoError(t, err)
	require.Equal(t, 0, start)
	require.Equal(t, 0, end)

	start, end, err = normalize(Range{Start: Exclusive(1), End: Inclusive(3)}, 4)
	require.NoError(t, err)
	require.Equal(t, 2, start)
	require.Equal(t, 4, end)
}

func TestErrorMessages(t *testing.T) {
	require.Equal(t, "stack overflow", ErrOverflow.Error())
	require.Equal(t, "stack underflow", ErrUnderflow.Error())
	require.Equal(t, "stack is empty", ErrEmpty.Error())
	require.Equal(t, "lower bound index -1 is out of range", startIndexError(-1).Error())
	require.Equal(t, "upper bound index 7 is out of range", endIndexError(7).Error())
	require.Equal(t, "invalid stack state: broken", invalid("broken").Error())
}

func TestParseKind(t *testing.T) {
	for k := Overflow; k <= Invalid; k++ {
		got, ok := ParseKind(k.String())
		require.True(t, ok)
		require.Equal(t, k, got)
	}
	_, ok := ParseKind("bogus")
	require.False(t, ok)
}
