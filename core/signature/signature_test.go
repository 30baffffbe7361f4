package signature

import (
	"errors"
	"io"
	"reflect"
	"testing"

	"github.com/anoideaopen/reflection/core/reflecterr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct{}

func TestMatches(t *testing.T) {
	var (
		intType    = reflect.TypeOf(0)
		stringType = reflect.TypeOf("")
		anyType    = For[any]()
	)

	tests := []struct {
		name      string
		params    Signature
		candidate Signature
		expected  bool
	}{
		{
			name:      "both empty",
			params:    Signature{},
			candidate: Signature{},
			expected:  true,
		},
		{
			name:      "nil and empty are the same arity",
			params:    nil,
			candidate: Signature{},
			expected:  true,
		},
		{
			name:      "identical",
			params:    Signature{intType, stringType},
			candidate: Signature{intType, stringType},
			expected:  true,
		},
		{
			name:      "order matters",
			params:    Signature{intType, stringType},
			candidate: Signature{stringType, intType},
			expected:  false,
		},
		{
			name:      "arity matters",
			params:    Signature{intType},
			candidate: Signature{intType, intType},
			expected:  false,
		},
		{
			name:      "no leniency for interface parameters",
			params:    Signature{anyType},
			candidate: Signature{intType},
			expected:  false,
		},
		{
			name:      "no leniency for pointer and value",
			params:    Signature{reflect.TypeOf(sample{})},
			candidate: Signature{reflect.TypeOf(&sample{})},
			expected:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Matches(tt.params, tt.candidate))
		})
	}
}

func TestOf(t *testing.T) {
	sig, err := Of([]any{42, "str", &sample{}})
	require.NoError(t, err)
	assert.Equal(t, TypesOf(0, "", &sample{}), sig)

	sig, err = Of([]any{})
	require.NoError(t, err)
	assert.Empty(t, sig)

	sig, err = Of([]any{0, []int{}})
	require.NoError(t, err)
	assert.Equal(t, TypesOf(0, []int{}), sig)
}

func TestOfErrors(t *testing.T) {
	_, err := Of(nil)
	require.ErrorIs(t, err, reflecterr.ErrNullArgument)

	var re *reflecterr.Error
	require.True(t, errors.As(err, &re))
	assert.Equal(t, "parameters", re.Param)

	_, err = Of([]any{1, nil})
	require.ErrorIs(t, err, reflecterr.ErrArgumentTypeIndeterminate)
	require.True(t, errors.As(err, &re))
	assert.Equal(t, "parameters[1]", re.Member)

	var (
		typedNil *sample
		nilSlice []int
		nilMap   map[string]int
	)
	for i, arg := range []any{typedNil, nilSlice, nilMap} {
		_, err = Of([]any{1, arg})
		require.ErrorIs(t, err, reflecterr.ErrArgumentTypeIndeterminate, i)
		assert.Equal(t, "Specified argument was out of the range of valid values. (Parameter 'parameters')", err.Error())
	}
}

func TestValues(t *testing.T) {
	sig := Signature{reflect.TypeOf(0), For[io.Reader](), reflect.TypeOf(&sample{})}

	in, err := Values("Method", sig, []any{7, nil, nil})
	require.NoError(t, err)
	require.Len(t, in, 3)
	assert.Equal(t, 7, in[0].Interface())
	assert.True(t, in[1].IsNil())
	assert.True(t, in[2].IsNil())

	_, err = Values("Method", sig, []any{7})
	require.ErrorIs(t, err, reflecterr.ErrArgumentMismatch)
	assert.Equal(t, "Parameter count mismatch.", err.Error())

	_, err = Values("Method", sig, []any{"7", nil, nil})
	require.ErrorIs(t, err, reflecterr.ErrArgumentMismatch)
	assert.Equal(t, "Object of type 'string' cannot be converted to type 'int'.", err.Error())

	_, err = Values("Method", Signature{reflect.TypeOf(0)}, []any{nil})
	require.ErrorIs(t, err, reflecterr.ErrArgumentMismatch)
}

func TestSignatureString(t *testing.T) {
	assert.Equal(t, "()", Signature{}.String())
	assert.Equal(t, "(int, string)", TypesOf(0, "").String())
	assert.Equal(t, "(<nil>)", TypesOf(nil).String())
}

func TestIsNil(t *testing.T) {
	var (
		p *sample
		m map[string]int
		f func()
	)

	assert.True(t, IsNil(nil))
	assert.True(t, IsNil(p))
	assert.True(t, IsNil(m))
	assert.True(t, IsNil(f))
	assert.False(t, IsNil(0))
	assert.False(t, IsNil(sample{}))
	assert.False(t, IsNil(&sample{}))
}
