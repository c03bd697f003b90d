package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecord_SetKeepsFirstPosition(t *testing.T) {
	rec := NewRecord(4)
	rec.Set("a", 1)
	rec.Set("b", 2)
	rec.Set("a", 3)

	require.Equal(t, 2, rec.Len())
	require.Equal(t, []string{"a", "b"}, rec.Keys())

	v, ok := rec.Get("a")
	require.True(t, ok)
	require.Equal(t, 3, v)

	_, ok = rec.Get("missing")
	require.False(t, ok)
}

func TestRecord_Range(t *testing.T) {
	rec := NewRecord(0)
	rec.Set("x", 1)
	rec.Set("y", 2)
	rec.Set("z", 3)

	var seen []string
	rec.Range(func(key string, _ any) bool {
		seen = append(seen, key)
		return key != "y"
	})
	require.Equal(t, []string{"x", "y"}, seen)
}

func TestRecord_MapAndKeysAreCopies(t *testing.T) {
	rec := NewRecord(1)
	rec.Set("k", "v")

	m := rec.Map()
	m["k"] = "changed"
	keys := rec.Keys()
	keys[0] = "changed"

	v, _ := rec.Get("k")
	require.Equal(t, "v", v)
	require.Equal(t, []string{"k"}, rec.Keys())
}
