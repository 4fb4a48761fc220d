package sysval

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewArray_RejectsNonScalarElemTag(t *testing.T) {
	_, err := NewArray(Array, nil)
	require.Error(t, err)
}

func TestNewArray_RejectsMismatchedElements(t *testing.T) {
	_, err := NewArray(Integer, []Value{NewInt(1), NewString("oops")})
	require.Error(t, err)
}

func TestNewArray_DeepCopiesElements(t *testing.T) {
	src := NewBinary([]byte{1, 2, 3})
	arr, err := NewArray(Binary, []Value{src})
	require.NoError(t, err)

	elems, ok := arr.ArrayElems()
	require.True(t, ok)
	b, ok := elems[0].Bytes()
	require.True(t, ok)
	require.Equal(t, []byte{1, 2, 3}, b)

	// Mutating the original after construction must not affect the array.
	srcBytes, _ := src.Bytes()
	srcBytes[0] = 0xff
	b2, _ := elems[0].Bytes()
	require.Equal(t, byte(1), b2[0])
}

func TestValue_Copy_Binary_IsIndependent(t *testing.T) {
	v := NewBinary([]byte{1, 2, 3})
	cp := v.Copy()
	b, _ := v.Bytes()
	b[0] = 9
	cpBytes, _ := cp.Bytes()
	require.Equal(t, byte(1), cpBytes[0])
}

func TestValue_Copy_Regex_SharesCompiledPattern(t *testing.T) {
	v, err := NewRegex("^a+$")
	require.NoError(t, err)
	cp := v.Copy()

	re1, _ := v.CompiledRegex()
	re2, _ := cp.CompiledRegex()
	require.Same(t, re1, re2)
}

func TestValue_Copy_Scalar_IsNoop(t *testing.T) {
	v := NewInt(42)
	require.Equal(t, v, v.Copy())
}

func TestNewRegex_InvalidPattern(t *testing.T) {
	_, err := NewRegex("(unterminated")
	require.Error(t, err)
}

func TestValue_ZeroValueIsNull(t *testing.T) {
	var v Value
	require.True(t, v.IsNull())
	require.Equal(t, Null, v.Tag())
}
