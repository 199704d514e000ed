package quirk

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gridOf(t *testing.T, steps ...func(*Grid) error) *Grid {
	t.Helper()
	g := NewGrid()
	for _, step := range steps {
		require.NoError(t, step(g))
	}
	return g
}

func appendStep(tokens []Token, placement ...int) func(*Grid) error {
	return func(g *Grid) error { return g.Append(tokens, placement) }
}

func TestEncodeEmptyGrid(t *testing.T) {
	data, err := Encode(NewGrid())
	require.NoError(t, err)
	assert.Equal(t, `{"cols":[]}`, string(data))
}

func TestEncodeCells(t *testing.T) {
	g := gridOf(t,
		appendStep([]Token{Control, Param("Rzft", "0.5")}, 0, 2),
		appendStep([]Token{Symbol("X")}, 2),
	)

	data, err := Encode(g)
	require.NoError(t, err)
	assert.Equal(t, `{"cols":[["•",1,{"id":"Rzft","arg":"0.5"}],[1,1,"X"]]}`, string(data))
}

func TestEncodeNoHTMLEscaping(t *testing.T) {
	g := gridOf(t, appendStep([]Token{Symbol("<&>")}, 0))

	data, err := Encode(g)
	require.NoError(t, err)
	assert.Equal(t, `{"cols":[["<&>"]]}`, string(data))
}

func TestEncodeNormalizesLabels(t *testing.T) {
	// "e" followed by a combining acute accent composes to U+00E9.
	g := gridOf(t, appendStep([]Token{Symbol("e\u0301")}, 0))

	data, err := Encode(g)
	require.NoError(t, err)
	assert.Equal(t, "{\"cols\":[[\"\u00e9\"]]}", string(data))
}

func TestEncodeIsCompact(t *testing.T) {
	g := gridOf(t,
		appendStep([]Token{Symbol("H")}, 0),
		appendStep([]Token{Control, Symbol("X")}, 0, 1),
	)

	data, err := Encode(g)
	require.NoError(t, err)
	assert.NotContains(t, string(data), " ")
	assert.NotContains(t, string(data), "\n")
}

func TestEncodeDecodesToGridShape(t *testing.T) {
	g := gridOf(t,
		appendStep([]Token{Symbol("H")}, 1),
		appendStep([]Token{Control, Param("Rxft", "0.25")}, 1, 3),
		appendStep([]Token{Symbol("Y")}, 0),
	)

	data, err := Encode(g)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	require.Len(t, doc, 1)

	cols, ok := doc["cols"].([]any)
	require.True(t, ok)
	grid := g.Columns()
	require.Len(t, cols, len(grid))

	for i, raw := range cols {
		cells, ok := raw.([]any)
		require.True(t, ok)
		require.Len(t, cells, len(grid[i]))
		for j, cell := range cells {
			tok := grid[i][j]
			switch {
			case tok.IsPlaceholder():
				assert.Equal(t, float64(1), cell)
			case tok.HasArg:
				assert.Equal(t, map[string]any{"id": tok.Label, "arg": tok.Arg}, cell)
			default:
				assert.Equal(t, tok.Label, cell)
			}
		}
	}
}

func TestURL(t *testing.T) {
	g := gridOf(t, appendStep([]Token{Symbol("X")}, 0))

	url, err := URL(g)
	require.NoError(t, err)
	assert.Equal(t, `https://algassert.com/quirk#circuit={"cols":[["X"]]}`, url)
	assert.True(t, strings.HasPrefix(url, BaseURL+"#"+FragmentKey+"="))
}

func TestDigest(t *testing.T) {
	a := gridOf(t, appendStep([]Token{Symbol("X")}, 0))
	b := gridOf(t, appendStep([]Token{Symbol("X")}, 0))
	c := gridOf(t, appendStep([]Token{Symbol("X")}, 1))

	da, err := Digest(a)
	require.NoError(t, err)
	db, err := Digest(b)
	require.NoError(t, err)
	dc, err := Digest(c)
	require.NoError(t, err)

	assert.Len(t, da, 64)
	assert.Equal(t, da, db)
	assert.NotEqual(t, da, dc)
}
