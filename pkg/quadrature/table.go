// Package quadrature holds the process-wide Gauss-Legendre node/weight
// tables and the scaler that maps them onto a tesseroid's bounds.
package quadrature

import "fmt"

// Table is an immutable set of Gauss-Legendre nodes and weights on the
// canonical interval [-1, 1]. The engine never adapts the order; it
// adapts the domain subdivision instead (see Order2).
type Table struct {
	Nodes   []float64
	Weights []float64
}

// hard-coded node/weight pairs for low orders, to machine precision.
var tables = map[int]Table{
	1: {
		Nodes:   []float64{0.0},
		Weights: []float64{2.0},
	},
	2: {
		Nodes:   []float64{-0.5773502691896257, 0.5773502691896257},
		Weights: []float64{1.0, 1.0},
	},
	3: {
		Nodes:   []float64{-0.7745966692414834, 0.0, 0.7745966692414834},
		Weights: []float64{0.5555555555555556, 0.8888888888888888, 0.5555555555555556},
	},
	4: {
		Nodes: []float64{
			-0.8611363115940526, -0.3399810435848563,
			0.3399810435848563, 0.8611363115940526,
		},
		Weights: []float64{
			0.3478548451374538, 0.6521451548625461,
			0.6521451548625461, 0.3478548451374538,
		},
	},
	5: {
		Nodes: []float64{
			-0.9061798459386640, -0.5384693101056831, 0.0,
			0.5384693101056831, 0.9061798459386640,
		},
		Weights: []float64{
			0.2369268850561891, 0.4786286704993665, 0.5688888888888889,
			0.4786286704993665, 0.2369268850561891,
		},
	},
}

// Order2 is the canonical order used by the adaptive driver: 2 nodes per
// axis, 8 nodes per tesseroid.
const Order2 = 2

// New returns the canonical node/weight table for the given order.
func New(order int) (Table, error) {
	t, ok := tables[order]
	if !ok {
		return Table{}, fmt.Errorf("quadrature: unsupported order %d", order)
	}
	return t, nil
}

// MustNew panics if order is unsupported; used for package-level
// constants resolved once at init time.
func MustNew(order int) Table {
	t, err := New(order)
	if err != nil {
		panic(err)
	}
	return t
}

// Default is the process-wide order-2 table shared by every traversal.
var Default = MustNew(Order2)
