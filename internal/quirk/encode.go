package quirk

import (
	"bytes"
	"encoding/json"
	"fmt"

	"golang.org/x/text/unicode/norm"
)

// BaseURL is the Quirk address the circuit fragment is appended to.
const BaseURL = "https://algassert.com/quirk"

// FragmentKey is the URL fragment key carrying the circuit JSON.
const FragmentKey = "circuit"

// PlaceholderValue is the JSON value Quirk reads as an empty cell.
const PlaceholderValue = 1

// paramCell is the wire shape of a parameterized token. Field order is
// part of the wire format: id first, then arg.
type paramCell struct {
	ID  string `json:"id"`
	Arg string `json:"arg"`
}

type document struct {
	Cols [][]any `json:"cols"`
}

// wireValue returns the JSON value for one cell.
func (t Token) wireValue() any {
	if t.IsPlaceholder() {
		return PlaceholderValue
	}
	label := norm.NFC.String(t.Label)
	if !t.HasArg {
		return label
	}
	return paramCell{ID: label, Arg: t.Arg}
}

// Cols returns the grid as generic JSON values, the form that sits under
// the "cols" key.
func (g *Grid) Cols() [][]any {
	cols := make([][]any, len(g.cols))
	for i, col := range g.cols {
		cells := make([]any, len(col))
		for j, t := range col {
			cells[j] = t.wireValue()
		}
		cols[i] = cells
	}
	return cols
}

// Encode renders the grid as compact JSON: {"cols":[...]}.
// HTML escaping is disabled so the control symbol and any <, >, & in
// labels appear literally.
func Encode(g *Grid) ([]byte, error) {
	return marshalCompact(document{Cols: g.Cols()})
}

// URL renders the grid as a Quirk URL.
func URL(g *Grid) (string, error) {
	data, err := Encode(g)
	if err != nil {
		return "", err
	}
	return BaseURL + "#" + FragmentKey + "=" + string(data), nil
}

func marshalCompact(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("encoding grid: %w", err)
	}

	// json.Encoder adds a trailing newline
	return bytes.TrimSuffix(buf.Bytes(), []byte{'\n'}), nil
}
