package engine

import (
	"math"

	"github.com/tesserock/tesseroid/pkg/kernel"
)

// box is a sub-tesseroid stack element: identical bounds to a
// tesseroid.Tesseroid but carrying no density, since density is inherited
// from the root and applied once after the traversal completes.
type box struct {
	W, E, S, N, Bottom, Top float64
}

// dimensions returns the sub-tesseroid's three linear dimensions in
// metres (radial, north-south, east-west) and their maximum L.
func (b box) dimensions() (lr, lphi, llambda, l float64) {
	rc := (b.Bottom + b.Top) / 2
	phic := (b.S + b.N) / 2

	lr = b.Top - b.Bottom
	lphi = rc * (b.N - b.S)
	llambda = rc * math.Cos(phic) * (b.E - b.W)

	l = lr
	if lphi > l {
		l = lphi
	}
	if llambda > l {
		l = llambda
	}
	return lr, lphi, llambda, l
}

// distance returns the geocentric distance in metres between the
// observation point and the sub-tesseroid's centre.
func (b box) distance(p kernel.Observation) float64 {
	lonc := (b.W + b.E) / 2
	phic := (b.S + b.N) / 2
	rc := (b.Bottom + b.Top) / 2

	sinPhic, cosPhic := math.Sin(phic), math.Cos(phic)
	cosAng := p.SinLat*sinPhic + p.CosLat*cosPhic*math.Cos(lonc-p.Lon)

	d2 := p.R*p.R + rc*rc - 2*p.R*rc*cosAng
	if d2 < 0 {
		d2 = 0
	}
	return math.Sqrt(d2)
}

// accepted reports whether direct quadrature meets the geometric
// accuracy criterion for this sub-tesseroid and point: d > ratio*L.
func (b box) accepted(p kernel.Observation, ratio float64) bool {
	_, _, _, l := b.dimensions()
	d := b.distance(p)
	return d > ratio*l
}

// splitAxis returns which of the three axes currently has the largest
// linear dimension. The driver always splits all three axes at once;
// splitAxis exists to report the dominant axis for diagnostics.
func (b box) splitAxis() string {
	lr, lphi, llambda, l := b.dimensions()
	switch l {
	case lr:
		return "r"
	case lphi:
		return "phi"
	case llambda:
		return "lambda"
	default:
		return "lambda"
	}
}

// split divides b in half along all three axes, producing up to 8
// children. Every child has strictly smaller L than its parent along the
// refined axes, guaranteeing the stack drains in finite time.
func (b box) split() [8]box {
	midW := (b.W + b.E) / 2
	midS := (b.S + b.N) / 2
	midR := (b.Bottom + b.Top) / 2

	var children [8]box
	i := 0
	for _, lon := range [2][2]float64{{b.W, midW}, {midW, b.E}} {
		for _, lat := range [2][2]float64{{b.S, midS}, {midS, b.N}} {
			for _, rad := range [2][2]float64{{b.Bottom, midR}, {midR, b.Top}} {
				children[i] = box{W: lon[0], E: lon[1], S: lat[0], N: lat[1], Bottom: rad[0], Top: rad[1]}
				i++
			}
		}
	}
	return children
}
