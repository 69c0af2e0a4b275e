package templates_test

import (
	"go/format"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"testing"

	"github.com/delaneyj/toolbox/cmd/codegen/templates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTuplesIsValidGo(t *testing.T) {
	src := templates.Tuples(templates.MaxArity)

	formatted, err := format.Source([]byte(src))
	require.NoError(t, err)

	f, err := parser.ParseFile(token.NewFileSet(), "tuples.go", formatted, 0)
	require.NoError(t, err)
	assert.Equal(t, "tuples", f.Name.Name)

	out := string(formatted)
	assert.Contains(t, out, "// Code generated by codegen. DO NOT EDIT.")
	assert.Contains(t, out, "type Pair[T0, T1 any] struct {")
	assert.Contains(t, out, "func NewEnnead[T0, T1, T2, T3, T4, T5, T6, T7, T8 any](a T0, b T1, c T2, d T3, e T4, f T5, g T6, h T7, i T8)")
	assert.Contains(t, out, "func (t *Quartet[T0, T1, T2, T3]) SetD(v T3) { t.d = v }")
	assert.Contains(t, out, `return nil, outOfBounds("Octet", i, 8)`)
	assert.Contains(t, out, "return render([]any{t.a, t.b, t.c})")
}

// the checked-in tuples.go must be exactly what codegen writes
func TestTuplesMatchesCheckedInFile(t *testing.T) {
	want, err := os.ReadFile(filepath.Join("..", "..", "..", "tuples", "tuples.go"))
	require.NoError(t, err)

	got, err := format.Source([]byte(templates.Tuples(templates.MaxArity)))
	require.NoError(t, err)
	assert.Equal(t, string(want), string(got))
	assert.NotContains(t, string(got), "struct {\n\ta T0\n\n")
	assert.NotContains(t, string(got), "switch i {\n\n")
}

func TestTuplesRespectsArity(t *testing.T) {
	src := templates.Tuples(3)
	assert.Contains(t, src, "Triplet")
	assert.NotContains(t, src, "Quartet")
	assert.Equal(t, 9, templates.MaxArity)
}
