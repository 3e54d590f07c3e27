/*
File    : polyscript/stdlib/builtins_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package stdlib

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/polyscript/values"
)

func call(t *testing.T, name string, args ...values.Value) (values.Value, *bytes.Buffer) {
	t.Helper()
	b, ok := Lookup(name)
	require.True(t, ok, "builtin %q not registered", name)
	var buf bytes.Buffer
	return b.Callback(&buf, args...), &buf
}

func TestPrintWritesDisplayFormWithoutNewline(t *testing.T) {
	_, buf := call(t, "print", &values.String{Value: "hi"})
	assert.Equal(t, "hi", buf.String())
}

func TestClearWritesAnsiSequence(t *testing.T) {
	_, buf := call(t, "clear")
	assert.Equal(t, "\x1b[H\x1b[2J", buf.String())
}

func TestIsTypeFamily(t *testing.T) {
	result, _ := call(t, "isInteger", &values.Integer{Value: 1})
	assert.True(t, result.Truthy())

	result, _ = call(t, "isInteger", &values.String{Value: "x"})
	assert.False(t, result.Truthy())

	result, _ = call(t, "isString", &values.String{Value: "x"})
	assert.True(t, result.Truthy())

	result, _ = call(t, "isList", &values.List{})
	assert.True(t, result.Truthy())

	result, _ = call(t, "isNull", &values.Null{})
	assert.True(t, result.Truthy())
}

func TestIsFunctionCoversBuiltInsToo(t *testing.T) {
	result, _ := call(t, "isFunction", &values.BuiltIn{Name: "print"})
	assert.True(t, result.Truthy())

	result, _ = call(t, "isFunction", &values.Integer{Value: 1})
	assert.False(t, result.Truthy())
}

func TestLengthOfStringAndList(t *testing.T) {
	result, _ := call(t, "length", &values.String{Value: "abc"})
	assert.Equal(t, int64(3), result.(*values.Integer).Value)

	list := &values.List{Elements: []values.Value{&values.Integer{Value: 1}, &values.Integer{Value: 2}}}
	result, _ = call(t, "length", list)
	assert.Equal(t, int64(2), result.(*values.Integer).Value)
}

func TestLengthOfUnsupportedTypeReturnsNil(t *testing.T) {
	result, _ := call(t, "length", &values.Integer{Value: 1})
	assert.Nil(t, result)
}

func TestLookupUnknownBuiltin(t *testing.T) {
	_, ok := Lookup("doesNotExist")
	assert.False(t, ok)
}
