/*
File    : polyscript/repl/repl_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func runSession(t *testing.T, input string) string {
	t.Helper()
	r := NewRepl()
	var out bytes.Buffer
	r.Start(strings.NewReader(input), &out)
	return out.String()
}

func TestBannerMentionsVersionAndExit(t *testing.T) {
	out := runSession(t, "")
	assert.Contains(t, out, "Polyscript")
	assert.Contains(t, out, "V0.4.0")
	assert.Contains(t, out, "use exit() to exit.")
}

func TestEmptyLinePrintsNull(t *testing.T) {
	out := runSession(t, "\n")
	assert.Contains(t, out, "null")
}

func TestExitStopsTheLoop(t *testing.T) {
	out := runSession(t, "exit()\nvar x = 1\n")
	assert.NotContains(t, out, "1")
}

func TestStatePersistsAcrossLines(t *testing.T) {
	out := runSession(t, "var x = 1\nx + 2\n")
	assert.Contains(t, out, "3")
}

func TestBadLineDoesNotClobberPriorBindings(t *testing.T) {
	out := runSession(t, "var x = 1\nx +\nx + 2\n")
	assert.Contains(t, out, "InvalidSyntaxError")
	assert.Contains(t, out, "3")
}

func TestRuntimeErrorIsReported(t *testing.T) {
	out := runSession(t, "1 + \"a\"\n")
	assert.Contains(t, out, "RuntimeError")
}
