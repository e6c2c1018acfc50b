// Package engine is the adaptive Gauss-Legendre quadrature core: for a
// single (observation point, tesseroid) pair it decides how finely the
// tesseroid must be subdivided to meet the distance-size accuracy
// criterion, then evaluates the kernel over the product quadrature and
// accumulates the density-free contribution.
package engine

import (
	"fmt"
	"math"

	"github.com/tesserock/tesseroid/pkg/kernel"
	"github.com/tesserock/tesseroid/pkg/quadrature"
	"github.com/tesserock/tesseroid/pkg/tesseroid"
	"github.com/zerodha/logf"
)

func sinCos(x float64) (float64, float64) {
	return math.Sin(x), math.Cos(x)
}

// DefaultStackMax bounds the per-traversal LIFO subdivision stack.
const DefaultStackMax = 500

// StackOverflowError indicates adaptive refinement exceeded StackMax for
// some (point, tesseroid) pair: either the point is inside or on the
// tesseroid, or ratio is pathologically large.
type StackOverflowError struct {
	StackMax int
}

func (e *StackOverflowError) Error() string {
	return fmt.Sprintf("engine: adaptive refinement exceeded stack capacity %d", e.StackMax)
}

// Accumulate evaluates field's integrand over root, adaptively
// subdividing until every accepted sub-tesseroid satisfies the
// distance-size criterion at the given ratio, and returns the
// density-free sum. The caller is responsible for multiplying by the
// tesseroid's resolved density exactly once.
func Accumulate(p kernel.Observation, root *tesseroid.Tesseroid, fn kernel.Func, ratio float64, stackMax int, log *logf.Logger) (float64, error) {
	if stackMax <= 0 {
		stackMax = DefaultStackMax
	}

	scaler := quadrature.NewScaler(quadrature.Default)
	n := scaler.Nodes()

	stack := make([]box, 0, stackMax)
	stack = append(stack, box{W: root.W, E: root.E, S: root.S, N: root.N, Bottom: root.Bottom, Top: root.Top})

	var sum float64
	splits := 0

	for len(stack) > 0 {
		t := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if t.accepted(p, ratio) {
			sum += quadratureContribution(p, t, fn, scaler, n)
			continue
		}

		children := t.split()
		if len(stack)+len(children) > stackMax {
			if log != nil {
				log.Warn("adaptive refinement exceeded stack capacity", "stack_max", stackMax, "splits", splits)
			}
			return 0, &StackOverflowError{StackMax: stackMax}
		}
		for _, c := range children {
			stack = append(stack, c)
		}
		splits++
	}

	return sum, nil
}

// quadratureContribution evaluates the Q^3 product nodes of an accepted
// sub-tesseroid and returns their weighted, jacobian-scaled sum.
func quadratureContribution(p kernel.Observation, t box, fn kernel.Func, scaler quadrature.Scaler, n int) float64 {
	jac := quadrature.Jacobian(t.E-t.W, t.N-t.S, t.Top-t.Bottom)

	var total float64
	for i := 0; i < n; i++ {
		rNode, wr := scaler.Scale(i, t.Bottom, t.Top)
		for j := 0; j < n; j++ {
			latNode, wphi := scaler.Scale(j, t.S, t.N)
			sinLat, cosLat := sinCos(latNode)
			for k := 0; k < n; k++ {
				lonNode, wlam := scaler.Scale(k, t.W, t.E)

				node := kernel.Node{Lon: lonNode, SinLat: sinLat, CosLat: cosLat, R: rNode}
				total += wr * wphi * wlam * fn(p, node)
			}
		}
	}
	return total * jac
}
