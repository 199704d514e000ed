package quirk

// ControlSymbol is the label Quirk uses for a control qubit.
const ControlSymbol = "•"

// Token is one grid cell. The zero Token is the placeholder.
type Token struct {
	Label  string
	Arg    string
	HasArg bool
}

// Placeholder marks a row with no gate in a column.
var Placeholder = Token{}

// Control is the token emitted for each control qubit.
var Control = Token{Label: ControlSymbol}

// Symbol returns a plain gate token.
func Symbol(label string) Token {
	return Token{Label: label}
}

// Param returns a gate token carrying a parameter.
func Param(label, arg string) Token {
	return Token{Label: label, Arg: arg, HasArg: true}
}

// IsPlaceholder reports whether t is the placeholder.
func (t Token) IsPlaceholder() bool {
	return t.Label == ""
}

// Column is one time slice of the grid, indexed by qubit position.
type Column []Token

// Occupied reports whether row holds a gate token.
func (c Column) Occupied(row int) bool {
	return row < len(c) && !c[row].IsPlaceholder()
}

// at returns the cell at row, treating missing trailing rows as placeholders.
func (c Column) at(row int) Token {
	if row < len(c) {
		return c[row]
	}
	return Placeholder
}

func (c Column) clone() Column {
	out := make(Column, len(c))
	copy(out, c)
	return out
}
