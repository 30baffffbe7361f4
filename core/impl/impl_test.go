package impl_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/anoideaopen/reflection/core/impl"
	"github.com/anoideaopen/reflection/core/reflecterr"
	"github.com/anoideaopen/reflection/mock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	intType    = reflect.TypeOf(0)
	stringType = reflect.TypeOf("")
	anyType    = reflect.TypeOf((*any)(nil)).Elem()
)

func newTester(t *testing.T, instance any) *mock.Tester {
	t.Helper()

	l, _ := mock.NewLogger(t)
	tester, err := mock.NewTester(instance, impl.WithLogger(l), impl.WithTracer(mock.NewTracing().Tracer()))
	require.NoError(t, err)

	return tester
}

func requireReflectErr(t *testing.T, err error, kind error, message string) {
	t.Helper()

	require.ErrorIs(t, err, kind)
	assert.Equal(t, message, err.Error())
}

func TestNew(t *testing.T) {
	var typedNil *mock.MethodClass

	for _, instance := range []any{nil, typedNil} {
		b, err := impl.New(instance)
		requireReflectErr(t, err, reflecterr.ErrNullArgument, "Value cannot be null. (Parameter 'impl')")
		assert.Nil(t, b)
	}

	obj := &mock.MethodClass{}
	first, err := impl.New(obj)
	require.NoError(t, err)
	second, err := impl.New(obj)
	require.NoError(t, err)

	assert.Same(t, obj, first.Instance())
	assert.Equal(t, "MethodClass", first.Type().Name())
	assert.Equal(t, "github.com/anoideaopen/reflection/mock.MethodClass", first.Type().FullName())
	assert.NotEmpty(t, first.ID())
	assert.NotEqual(t, first.ID(), second.ID())
}

func TestExecuteFunction(t *testing.T) {
	obj := &mock.FunctionClass{}
	w := newTester(t, obj)

	tests := []struct {
		name       string
		function   string
		paramTypes []reflect.Type
		args       []any
		expected   any
	}{
		{
			name:       "single result",
			function:   "Function",
			paramTypes: []reflect.Type{intType},
			args:       []any{42},
			expected:   42,
		},
		{
			name:       "two parameters",
			function:   "Concat",
			paramTypes: []reflect.Type{stringType, stringType},
			args:       []any{"foo", "bar"},
			expected:   "foobar",
		},
		{
			name:       "several results",
			function:   "Divide",
			paramTypes: []reflect.Type{intType, intType},
			args:       []any{7, 2},
			expected:   []any{3, 1},
		},
		{
			name:       "trailing error is split off",
			function:   "Parse",
			paramTypes: []reflect.Type{stringType},
			args:       []any{"abc"},
			expected:   3,
		},
		{
			name:       "nil for interface parameter",
			function:   "Describe",
			paramTypes: []reflect.Type{anyType},
			args:       []any{nil},
			expected:   "nothing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := w.ExecuteFunction(tt.function, tt.paramTypes, tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestExecuteFunctionErrors(t *testing.T) {
	w := newTester(t, &mock.FunctionClass{})

	_, err := w.ExecuteFunction("", []reflect.Type{intType}, []any{42})
	requireReflectErr(t, err, reflecterr.ErrNullArgument, "Value cannot be null. (Parameter 'functionName')")

	_, err = w.ExecuteFunction("Function", nil, []any{42})
	requireReflectErr(t, err, reflecterr.ErrNullArgument, "Value cannot be null. (Parameter 'parameterTypes')")

	_, err = w.ExecuteFunction("Function", []reflect.Type{stringType}, []any{"42"})
	requireReflectErr(t, err, reflecterr.ErrMethodNotFound,
		"Class method with given name does not exist! (Parameter 'functionName')")

	_, err = w.ExecuteFunction("Function", []reflect.Type{intType}, []any{"42"})
	requireReflectErr(t, err, reflecterr.ErrArgumentMismatch,
		"Object of type 'string' cannot be converted to type 'int'.")

	_, err = w.ExecuteFunction("Function", []reflect.Type{intType}, nil)
	require.ErrorIs(t, err, reflecterr.ErrArgumentMismatch)

	_, err = w.ExecuteFunction("Fail", []reflect.Type{}, nil)
	require.ErrorIs(t, err, reflecterr.ErrInvocation)
	require.ErrorIs(t, err, mock.ErrFailed)

	_, err = w.ExecuteFunction("Parse", []reflect.Type{stringType}, []any{""})
	require.ErrorIs(t, err, reflecterr.ErrInvocation)
	require.ErrorIs(t, err, mock.ErrFailed)

	var re *reflecterr.Error
	require.True(t, errors.As(err, &re))
	assert.Equal(t, "Parse", re.Member)
}

func TestExecuteMethodSelectsOverload(t *testing.T) {
	obj := &mock.MethodClass{}
	w := newTester(t, obj)

	require.NoError(t, w.ExecuteMethod("Method", []any{42}))
	assert.True(t, obj.CorrectMethodExecuted)
	assert.False(t, obj.WrongMethodExecuted)
	assert.Equal(t, []int{42}, obj.Received)

	require.NoError(t, w.ExecuteMethod("Method", []any{}))
	assert.True(t, obj.WrongMethodExecuted)
}

func TestExecuteMethodVariadic(t *testing.T) {
	obj := &mock.MethodClass{}
	w := newTester(t, obj)

	require.NoError(t, w.ExecuteMethod("Record", []any{[]int{1, 2, 3}}))
	assert.Equal(t, []int{1, 2, 3}, obj.Received)
}

func TestExecuteMethodErrors(t *testing.T) {
	obj := &mock.MethodClass{}
	w := newTester(t, obj)

	tests := []struct {
		name     string
		method   string
		args     []any
		kind     error
		expected string
	}{
		{
			name:     "nil parameters",
			method:   "Method",
			args:     nil,
			kind:     reflecterr.ErrNullArgument,
			expected: "Value cannot be null. (Parameter 'parameters')",
		},
		{
			name:     "empty method name",
			method:   "",
			args:     []any{42},
			kind:     reflecterr.ErrNullArgument,
			expected: "Value cannot be null. (Parameter 'methodName')",
		},
		{
			name:     "invalid method name",
			method:   "invalid",
			args:     []any{42},
			kind:     reflecterr.ErrMethodNotFound,
			expected: "Class method with given name does not exist! (Parameter 'methodName')",
		},
		{
			name:     "nil argument",
			method:   "Method",
			args:     []any{nil},
			kind:     reflecterr.ErrArgumentTypeIndeterminate,
			expected: "Specified argument was out of the range of valid values. (Parameter 'parameters')",
		},
		{
			name:     "typed nil argument",
			method:   "Record",
			args:     []any{[]int(nil)},
			kind:     reflecterr.ErrArgumentTypeIndeterminate,
			expected: "Specified argument was out of the range of valid values. (Parameter 'parameters')",
		},
		{
			name:     "no conversion between integer types",
			method:   "Method",
			args:     []any{int64(42)},
			kind:     reflecterr.ErrMethodNotFound,
			expected: "Class method with given name does not exist! (Parameter 'methodName')",
		},
		{
			name:     "unexported methods are not reachable by name",
			method:   "methodWithInt",
			args:     []any{42},
			kind:     reflecterr.ErrMethodNotFound,
			expected: "Class method with given name does not exist! (Parameter 'methodName')",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := w.ExecuteMethod(tt.method, tt.args)
			requireReflectErr(t, err, tt.kind, tt.expected)
		})
	}

	assert.False(t, obj.CorrectMethodExecuted)
	assert.False(t, obj.WrongMethodExecuted)
}

func TestExecuteMethodWithTypes(t *testing.T) {
	obj := &mock.MethodClass{}
	w := newTester(t, obj)

	require.NoError(t, w.ExecuteMethodWithTypes("Method", []reflect.Type{intType}, []any{42}))
	assert.True(t, obj.CorrectMethodExecuted)
	assert.False(t, obj.WrongMethodExecuted)

	err := w.ExecuteMethodWithTypes("", []reflect.Type{intType}, nil)
	requireReflectErr(t, err, reflecterr.ErrNullArgument, "Value cannot be null. (Parameter 'parameters')")

	err = w.ExecuteMethodWithTypes("", []reflect.Type{intType}, []any{42})
	requireReflectErr(t, err, reflecterr.ErrNullArgument, "Value cannot be null. (Parameter 'methodName')")

	err = w.ExecuteMethodWithTypes("Method", nil, []any{42})
	requireReflectErr(t, err, reflecterr.ErrNullArgument, "Value cannot be null. (Parameter 'parameterTypes')")

	err = w.ExecuteMethodWithTypes("Method", []reflect.Type{stringType}, []any{"42"})
	require.ErrorIs(t, err, reflecterr.ErrMethodNotFound)
}

func TestGetProperty(t *testing.T) {
	obj := mock.NewPropertyClass(42)
	w := newTester(t, obj)

	value, err := impl.GetProperty[int](w.Base, "Property")
	require.NoError(t, err)
	assert.Equal(t, 42, value)

	created, err := impl.GetProperty[string](w.Base, "Created")
	require.NoError(t, err)
	assert.Equal(t, "fixture", created)

	boxed, err := impl.GetProperty[any](w.Base, "Property")
	require.NoError(t, err)
	assert.Equal(t, 42, boxed)
}

func TestGetPropertyErrors(t *testing.T) {
	w := newTester(t, mock.NewPropertyClass(42))

	_, err := impl.GetProperty[int](w.Base, "")
	requireReflectErr(t, err, reflecterr.ErrNullArgument, "Value cannot be null. (Parameter 'propertyName')")

	_, err = impl.GetProperty[int](w.Base, "invalid")
	requireReflectErr(t, err, reflecterr.ErrPropertyNotFound, "Property does not exist! (Parameter 'propertyName')")

	_, err = impl.GetProperty[int](w.Base, "WriteOnlyProperty")
	requireReflectErr(t, err, reflecterr.ErrPropertyAccessorMissing,
		"Specified argument was out of the range of valid values. (Parameter 'Property get does not exist for WriteOnlyProperty!')")

	var re *reflecterr.Error
	require.True(t, errors.As(err, &re))
	assert.Equal(t, "WriteOnlyProperty", re.Member)

	value, err := impl.GetProperty[string](w.Base, "Property")
	requireReflectErr(t, err, reflecterr.ErrInvalidCast, "Specified cast is not valid.")
	assert.Empty(t, value)
}

func TestSetProperty(t *testing.T) {
	obj := mock.NewPropertyClass(13)
	w := newTester(t, obj)

	require.NoError(t, impl.SetProperty(w.Base, "Property", 42))
	assert.Equal(t, 42, obj.Property)

	require.NoError(t, impl.SetProperty(w.Base, "WriteOnlyProperty", 7))
	assert.Equal(t, 7, obj.WriteOnlyValue())
}

func TestSetPropertyErrors(t *testing.T) {
	obj := mock.NewPropertyClass(13)
	w := newTester(t, obj)

	err := impl.SetProperty(w.Base, "", 42)
	requireReflectErr(t, err, reflecterr.ErrNullArgument, "Value cannot be null. (Parameter 'propertyName')")

	err = impl.SetProperty(w.Base, "invalid", 42)
	requireReflectErr(t, err, reflecterr.ErrPropertyNotFound, "Property does not exist! (Parameter 'propertyName')")

	err = impl.SetProperty(w.Base, "Created", "now")
	requireReflectErr(t, err, reflecterr.ErrPropertyAccessorMissing,
		"Specified argument was out of the range of valid values. (Parameter 'Property set does not exist for Created!')")

	err = impl.SetProperty(w.Base, "Property", "42")
	requireReflectErr(t, err, reflecterr.ErrArgumentMismatch, "Object of type 'string' cannot be converted to type 'int'.")
	assert.Equal(t, 13, obj.Property)
}

func TestAttachEvent(t *testing.T) {
	obj := &mock.EventClass{}
	w := newTester(t, obj)

	require.NoError(t, impl.AddEvent[mock.EventArgs](w.Base, "Event", "HandleEvent"))
	assert.Equal(t, 1, obj.Subscribers())

	require.NoError(t, obj.FireEvent())
	assert.Equal(t, 1, w.EventCalled)
	assert.Same(t, obj, w.LastSender)
}

func TestDetachEvent(t *testing.T) {
	obj := &mock.EventClass{}
	w := newTester(t, obj)

	require.NoError(t, impl.AddEvent[mock.EventArgs](w.Base, "Event", "HandleEvent"))
	require.NoError(t, obj.FireEvent())
	require.Equal(t, 1, w.EventCalled)

	require.NoError(t, impl.RemoveEvent[mock.EventArgs](w.Base, "Event", "HandleEvent"))
	assert.Equal(t, 0, obj.Subscribers())

	require.NoError(t, obj.FireEvent())
	assert.Equal(t, 1, w.EventCalled)
}

func TestDeclaredHandler(t *testing.T) {
	obj := &mock.EventClass{}
	w := newTester(t, obj)

	require.NoError(t, impl.AddEvent[mock.EventArgs](w.Base, "Event", "HandleHidden"))
	require.NoError(t, obj.FireEvent())
	assert.Equal(t, 1, w.HiddenEvents())
	assert.Equal(t, 0, w.EventCalled)
}

func TestStringEvent(t *testing.T) {
	obj := &mock.StringEventClass{}
	w := newTester(t, obj)

	require.NoError(t, impl.AddEvent[string](w.Base, "Event", "HandleString"))
	require.NoError(t, impl.RemoveEvent[string](w.Base, "Event", "HandleString"))
}

func TestEventErrors(t *testing.T) {
	obj := &mock.EventClass{}
	w := newTester(t, obj)

	tests := []struct {
		name     string
		call     func() error
		kind     error
		expected string
	}{
		{
			name:     "empty event name",
			call:     func() error { return impl.AddEvent[mock.EventArgs](w.Base, "", "HandleEvent") },
			kind:     reflecterr.ErrNullArgument,
			expected: "Value cannot be null. (Parameter 'eventName')",
		},
		{
			name:     "invalid event name",
			call:     func() error { return impl.AddEvent[mock.EventArgs](w.Base, "invalid", "HandleEvent") },
			kind:     reflecterr.ErrEventNotFound,
			expected: "Invalid event name supplied! (Parameter 'eventName')",
		},
		{
			name:     "event is checked before handler name",
			call:     func() error { return impl.RemoveEvent[mock.EventArgs](w.Base, "invalid", "") },
			kind:     reflecterr.ErrEventNotFound,
			expected: "Invalid event name supplied! (Parameter 'eventName')",
		},
		{
			name:     "empty handler name",
			call:     func() error { return impl.AddEvent[mock.EventArgs](w.Base, "Event", "") },
			kind:     reflecterr.ErrNullArgument,
			expected: "Value cannot be null. (Parameter 'handlerName')",
		},
		{
			name:     "invalid handler name",
			call:     func() error { return impl.AddEvent[mock.EventArgs](w.Base, "Event", "invalid") },
			kind:     reflecterr.ErrHandlerNotFound,
			expected: "Invalid handler name supplied! (Parameter 'handlerName')",
		},
		{
			name:     "handler without sender",
			call:     func() error { return impl.RemoveEvent[mock.EventArgs](w.Base, "Event", "HandleWithoutSender") },
			kind:     reflecterr.ErrHandlerNotFound,
			expected: "Invalid handler name supplied! (Parameter 'handlerName')",
		},
		{
			name:     "handler of another payload type",
			call:     func() error { return impl.AddEvent[string](w.Base, "Event", "HandleString") },
			kind:     reflecterr.ErrHandlerTypeMismatch,
			expected: "Cannot bind to the target method because its signature is not compatible with that of the delegate type.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requireReflectErr(t, tt.call(), tt.kind, tt.expected)
		})
	}

	assert.Equal(t, 0, obj.Subscribers())
}

func TestDefaultHandlerOwner(t *testing.T) {
	l, _ := mock.NewLogger(t)
	b, err := impl.New(&mock.EventClass{}, impl.WithLogger(l))
	require.NoError(t, err)

	err = impl.AddEvent[mock.EventArgs](b, "Event", "HandleEvent")
	require.ErrorIs(t, err, reflecterr.ErrHandlerNotFound)
}

func TestReResolvesRegistry(t *testing.T) {
	l, _ := mock.NewLogger(t)
	obj := &mock.MethodClass{}
	b, err := impl.New(obj, impl.WithLogger(l))
	require.NoError(t, err)

	err = b.ExecuteMethod("Method", []any{42})
	require.ErrorIs(t, err, reflecterr.ErrMethodNotFound)

	reg, err := mock.Overloads()
	require.NoError(t, err)
	b, err = impl.New(obj, impl.WithRegistry(reg), impl.WithLogger(l))
	require.NoError(t, err)

	require.NoError(t, b.ExecuteMethod("Method", []any{42}))
	assert.True(t, obj.CorrectMethodExecuted)
}

func TestObservability(t *testing.T) {
	l, hook := mock.NewLogger(t)
	l.SetLevel(logrus.DebugLevel)
	tracing := mock.NewTracing()

	w, err := mock.NewTester(&mock.MethodClass{}, impl.WithLogger(l), impl.WithTracer(tracing.Tracer()))
	require.NoError(t, err)

	require.NoError(t, w.ExecuteMethod("Method", []any{42}))
	require.Error(t, w.ExecuteMethod("invalid", []any{42}))
	_, err = impl.GetProperty[int](w.Base, "invalid")
	require.Error(t, err)

	assert.Equal(t, []string{"execute_method Method", "execute_method invalid", "get_property invalid"}, tracing.SpanNames())

	entries := hook.AllEntries()
	require.Len(t, entries, 3)
	assert.Equal(t, "operation completed", entries[0].Message)
	assert.Equal(t, w.ID(), entries[0].Data["wrapper_id"])
	assert.Equal(t, "Method", entries[0].Data["member"])
	assert.Equal(t, "operation failed", entries[1].Message)
	assert.ErrorIs(t, entries[1].Data["error"].(error), reflecterr.ErrMethodNotFound)
}
