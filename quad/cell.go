package quad

// Cell is a single quad of gated storage.
type Cell struct {
	Value Quad
}

// Run overwrites the cell with value when enable is non-zero, and returns
// the cell contents.
func (cell *Cell) Run(value, enable Quad) Quad {
	if enable > ZERO {
		cell.Value = value
	}

	return cell.Value
}
