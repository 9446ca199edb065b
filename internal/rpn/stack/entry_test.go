package stack

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEntry(t *testing.T) {
	e := Int(-7)
	require.Equal(t, Integer, e.Kind())
	v, ok := e.Int()
	require.True(t, ok)
	require.Equal(t, int32(-7), v)
	_, ok = e.Dec()
	require.False(t, ok)

	d := Dec(2.5)
	require.Equal(t, Decimal, d.Kind())
	_, ok = d.Int()
	require.False(t, ok)

	require.Equal(t, Placeholder, Dummy().Kind())
	require.Equal(t, Entry{}, Dummy())
}

func TestEntryString(t *testing.T) {
	tests := []struct {
		e    Entry
		want string
	}{
		{Int(42), "42"},
		{Int(-1), "-1"},
		{Dec(2.5), "2.5"},
		{Dec(3), "3.0"},
		{Dummy(), "_"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, tt.e.String())
	}
	require.Equal(t, "decimal", Decimal.String())
}
