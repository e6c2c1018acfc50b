package quadrature

// Scaler maps the canonical [-1, 1] nodes/weights onto a sub-tesseroid's
// actual bounds in one axis, plus the jacobian volume factor shared by
// all three axes.
type Scaler struct {
	table Table
}

// NewScaler builds a Scaler around the given table (normally
// quadrature.Default).
func NewScaler(table Table) Scaler {
	return Scaler{table: table}
}

// Nodes returns the table's node/weight count (the quadrature order).
func (s Scaler) Nodes() int {
	return len(s.table.Nodes)
}

// Scale maps canonical node index i onto the interval [lo, hi], returning
// the scaled coordinate and the (still-canonical) weight for that node.
func (s Scaler) Scale(i int, lo, hi float64) (coord, weight float64) {
	mid := (lo + hi) / 2
	halfSpan := (hi - lo) / 2
	return mid + s.table.Nodes[i]*halfSpan, s.table.Weights[i]
}

// Jacobian returns the volume factor (dLambda*dPhi*dR)/8 applied once per
// quadrature evaluation.
func Jacobian(wSpan, nSpan, rSpan float64) float64 {
	return (wSpan * nSpan * rSpan) / 8
}
