/*
File    : polyscript/eval/eval_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/polyscript/lexer"
	"github.com/akashmaji946/polyscript/parser"
	"github.com/akashmaji946/polyscript/values"
)

// run lexes, parses, and evaluates src against a fresh global context,
// returning the last top-level statement's result. It fails the test if
// lexing or parsing errors, mirroring what the REPL would otherwise print.
func run(t *testing.T, src string) values.Value {
	t.Helper()
	lex := lexer.NewLexer(src, "<test>")
	tokens, lexErr := lex.ConsumeTokens()
	require.NoError(t, lexErr)
	block, parseErr := parser.NewParser(tokens).Parse()
	require.Nil(t, parseErr, "%v", parseErr)

	ev := NewEvaluator(src, "<test>")
	var buf bytes.Buffer
	ev.SetWriter(&buf)
	results, outcome := ev.EvalProgram(block, ev.Global)
	require.False(t, values.IsError(outcome), "unexpected runtime error: %v", outcome)
	require.NotEmpty(t, results)
	return results[len(results)-1]
}

func TestArithmeticPrecedence(t *testing.T) {
	assert.Equal(t, int64(7), run(t, "1 + 2 * 3").(*values.Integer).Value)
	assert.Equal(t, int64(9), run(t, "(1 + 2) * 3").(*values.Integer).Value)
	assert.Equal(t, int64(512), run(t, "2 ^ 3 ^ 2").(*values.Integer).Value)
}

func TestClosures(t *testing.T) {
	src := `
fn make(n) { fn() -> n + 1 }
var f = make(10)
f()
`
	assert.Equal(t, int64(11), run(t, src).(*values.Integer).Value)
}

func TestControlFlowForLoop(t *testing.T) {
	src := `
var s = 0
for i = 1 to 5 { s = s + i }
s
`
	assert.Equal(t, int64(10), run(t, src).(*values.Integer).Value)
}

func TestEarlyReturnWithIndexAccess(t *testing.T) {
	src := `
fn find(xs, t) {
  for i = 0 to length(xs) {
    if xs.(i) == t { return i }
  }
  return -1
}
find([3,1,4,1,5], 4)
`
	assert.Equal(t, int64(2), run(t, src).(*values.Integer).Value)
}

func TestTypeErrorReportsRuntimeError(t *testing.T) {
	lex := lexer.NewLexer(`1 + "a"`, "<test>")
	tokens, lexErr := lex.ConsumeTokens()
	require.NoError(t, lexErr)
	block, parseErr := parser.NewParser(tokens).Parse()
	require.Nil(t, parseErr)

	ev := NewEvaluator(`1 + "a"`, "<test>")
	_, outcome := ev.EvalProgram(block, ev.Global)
	require.True(t, values.IsError(outcome))
}

func TestConstImmutability(t *testing.T) {
	lex := lexer.NewLexer("const x = 1\nx = 2", "<test>")
	tokens, lexErr := lex.ConsumeTokens()
	require.NoError(t, lexErr)
	block, parseErr := parser.NewParser(tokens).Parse()
	require.Nil(t, parseErr)

	ev := NewEvaluator("const x = 1\nx = 2", "<test>")
	_, outcome := ev.EvalProgram(block, ev.Global)
	require.True(t, values.IsError(outcome))
}

func TestShortCircuitAndOr(t *testing.T) {
	var buf bytes.Buffer

	src := `false and print("should not print")`
	lex := lexer.NewLexer(src, "<test>")
	tokens, _ := lex.ConsumeTokens()
	block, _ := parser.NewParser(tokens).Parse()
	ev := NewEvaluator(src, "<test>")
	ev.SetWriter(&buf)
	ev.EvalProgram(block, ev.Global)
	assert.Empty(t, buf.String())

	src2 := `true or print("should not print")`
	lex2 := lexer.NewLexer(src2, "<test>")
	tokens2, _ := lex2.ConsumeTokens()
	block2, _ := parser.NewParser(tokens2).Parse()
	ev2 := NewEvaluator(src2, "<test>")
	ev2.SetWriter(&buf)
	ev2.EvalProgram(block2, ev2.Global)
	assert.Empty(t, buf.String())
}

func TestForStepZeroIsRuntimeError(t *testing.T) {
	lex := lexer.NewLexer("for i = 0 to 10 step 0 { i }", "<test>")
	tokens, _ := lex.ConsumeTokens()
	block, _ := parser.NewParser(tokens).Parse()
	ev := NewEvaluator("", "<test>")
	_, outcome := ev.EvalProgram(block, ev.Global)
	require.True(t, values.IsError(outcome))
}

func TestForStepNegative(t *testing.T) {
	src := `
var s = 0
for i = 5 to 0 step -1 { s = s + i }
s
`
	assert.Equal(t, int64(15), run(t, src).(*values.Integer).Value)
}

func TestBuiltinLength(t *testing.T) {
	assert.Equal(t, int64(3), run(t, `length([1,2,3])`).(*values.Integer).Value)
	assert.Equal(t, int64(3), run(t, `length("abc")`).(*values.Integer).Value)
}

func TestEnumMemberAccess(t *testing.T) {
	src := `
enum Color { Red, Green, Blue }
Color.Green
`
	ev := run(t, src)
	enumVal, ok := ev.(*values.EnumValue)
	require.True(t, ok)
	assert.Equal(t, "Green", enumVal.Member)
	assert.Equal(t, 1, enumVal.Index)
}

func TestObjectWithInitAndSelf(t *testing.T) {
	src := `
object Counter {
  var count = 0
  fn init(start) { self.count = start }
  fn bump() { self.count = self.count + 1 }
}
var c = new Counter(5)
c.bump()
c.count
`
	assert.Equal(t, int64(6), run(t, src).(*values.Integer).Value)
}

func TestListOperators(t *testing.T) {
	assert.Equal(t, "[1, 2, 3]", run(t, `[1, 2] + 3`).Display())
	assert.Equal(t, "[1, 2, 1, 2]", run(t, `[1, 2] * 2`).Display())
}

func TestReplPersistsGlobalState(t *testing.T) {
	ev := NewEvaluator("", "<test>")
	var buf bytes.Buffer
	ev.SetWriter(&buf)

	for _, src := range []string{"var x = 1"} {
		lex := lexer.NewLexer(src, "<test>")
		tokens, _ := lex.ConsumeTokens()
		block, _ := parser.NewParser(tokens).Parse()
		_, outcome := ev.EvalProgram(block, ev.Global)
		require.False(t, values.IsError(outcome))
	}

	// An erroring line must not leave a partial definition behind.
	lex := lexer.NewLexer("x +", "<test>")
	tokens, _ := lex.ConsumeTokens()
	_, parseErr := parser.NewParser(tokens).Parse()
	require.NotNil(t, parseErr)

	lex2 := lexer.NewLexer("x + 2", "<test>")
	tokens2, _ := lex2.ConsumeTokens()
	block2, _ := parser.NewParser(tokens2).Parse()
	results, outcome := ev.EvalProgram(block2, ev.Global)
	require.False(t, values.IsError(outcome))
	assert.Equal(t, int64(3), results[len(results)-1].(*values.Integer).Value)
}
