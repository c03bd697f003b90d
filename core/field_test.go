package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValue_Resolve(t *testing.T) {
	lit := Literal(42)
	require.False(t, lit.IsLazy())
	require.Equal(t, 42, lit.Resolve())

	calls := 0
	lazy := Lazy(func() any {
		calls++
		return calls
	})
	require.True(t, lazy.IsLazy())
	require.Zero(t, calls, "producer must not run before Resolve")
	require.Equal(t, 1, lazy.Resolve())
	require.Equal(t, 2, lazy.Resolve())
}

func TestMergeFields(t *testing.T) {
	base := []Field{
		{Key: "a", Value: Literal(1)},
		{Key: "b", Value: Literal(2)},
	}

	merged := MergeFields(base,
		Field{Key: "b", Value: Literal("override")},
		Field{Key: "c", Value: Literal(3)},
	)

	require.Len(t, merged, 3)
	require.Equal(t, "a", merged[0].Key)
	require.Equal(t, "b", merged[1].Key)
	require.Equal(t, "override", merged[1].Value.Resolve())
	require.Equal(t, "c", merged[2].Key)

	// The base slice is untouched.
	require.Equal(t, 2, base[1].Value.Resolve())
}

func TestMergeFields_DuplicatesInOverrides(t *testing.T) {
	merged := MergeFields(nil,
		Field{Key: "k", Value: Literal(1)},
		Field{Key: "k", Value: Literal(2)},
	)
	require.Len(t, merged, 1)
	require.Equal(t, 2, merged[0].Value.Resolve())
}

func TestMergeFields_NoAliasing(t *testing.T) {
	base := make([]Field, 1, 8)
	base[0] = Field{Key: "a", Value: Literal(1)}

	first := MergeFields(base, Field{Key: "x", Value: Literal("first")})
	second := MergeFields(base, Field{Key: "x", Value: Literal("second")})

	require.Equal(t, "first", first[1].Value.Resolve())
	require.Equal(t, "second", second[1].Value.Resolve())
}
