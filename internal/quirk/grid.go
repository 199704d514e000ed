package quirk

// Grid is the column layout under construction. Only the last column is
// ever rewritten; earlier columns are frozen once a newer column exists.
type Grid struct {
	cols []Column
}

// NewGrid returns an empty grid.
func NewGrid() *Grid {
	return &Grid{}
}

// Len returns the number of columns.
func (g *Grid) Len() int {
	return len(g.cols)
}

// Columns returns a copy of the grid's columns in append order.
func (g *Grid) Columns() []Column {
	out := make([]Column, len(g.cols))
	for i, c := range g.cols {
		out[i] = c.clone()
	}
	return out
}

// Append places tokens at the given qubit positions and folds the
// resulting column into the grid. The new column is merged into the last
// column when no row is occupied on both sides; otherwise it becomes the
// new last column. Earlier columns are never considered.
func (g *Grid) Append(tokens []Token, placement []int) error {
	col, err := Place(tokens, placement)
	if err != nil {
		return err
	}
	g.push(col)
	return nil
}

// push folds an already-built column into the grid and reports whether it
// was merged into the previous column.
func (g *Grid) push(col Column) bool {
	if n := len(g.cols); n > 0 {
		if merged, ok := Merge(g.cols[n-1], col); ok {
			g.cols[n-1] = merged
			return true
		}
	}
	g.cols = append(g.cols, col)
	return false
}

// MaxRows bounds the height of a column.
const MaxRows = 1 << 12

// Place builds a column holding tokens[i] at row placement[i] and the
// placeholder in every other row up to the highest named row.
func Place(tokens []Token, placement []int) (Column, error) {
	if len(tokens) != len(placement) {
		return nil, newArityError(len(tokens), len(placement))
	}

	height := 0
	for _, q := range placement {
		if q < 0 {
			return nil, newPlacementError("negative qubit position %d", q)
		}
		if q >= MaxRows {
			return nil, newPlacementError("qubit position %d exceeds the %d-row limit", q, MaxRows)
		}
		if q+1 > height {
			height = q + 1
		}
	}

	col := make(Column, height)
	for i, q := range placement {
		if !col[q].IsPlaceholder() {
			return nil, newPlacementError("qubit %d named twice in one placement", q)
		}
		if tokens[i].IsPlaceholder() {
			return nil, newPlacementError("placeholder token for qubit %d", q)
		}
		col[q] = tokens[i]
	}
	return col, nil
}

// Merge combines two columns cell by cell. It reports false when some row
// holds a gate token in both columns. The shorter column is treated as
// padded with placeholders.
func Merge(last, next Column) (Column, bool) {
	height := max(len(last), len(next))
	merged := make(Column, height)
	for row := range height {
		a, b := last.at(row), next.at(row)
		switch {
		case a.IsPlaceholder():
			merged[row] = b
		case b.IsPlaceholder():
			merged[row] = a
		default:
			return nil, false
		}
	}
	return merged, true
}
