package core

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCaller(t *testing.T) {
	caller := Caller(0)
	require.True(t, caller.Defined)
	require.NotZero(t, caller.Line)
	require.Contains(t, caller.Function, "TestCaller")
	require.Contains(t, caller.String(), "caller_test.go:")
}

func TestCaller_Undefined(t *testing.T) {
	require.Empty(t, CallerInfo{}.String())
	require.False(t, Caller(1000).Defined)
}

func TestCallerFromPC(t *testing.T) {
	pc, _, _, ok := runtime.Caller(0)
	require.True(t, ok)

	caller := CallerFromPC(pc)
	require.True(t, caller.Defined)
	require.Contains(t, caller.Function, "TestCallerFromPC")
	require.Contains(t, caller.String(), "caller_test.go:")

	require.False(t, CallerFromPC(0).Defined)
}
