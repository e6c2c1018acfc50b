package kernel

import "math"

// delta is the local (x=north, y=east, z=up) displacement from the
// observation point to a quadrature node, used to build the straight-line
// distance ℓ and the directional numerators of the kernel formulas.
type delta struct {
	X, Y, Z float64
}

// magnitude returns the Euclidean length of the displacement, i.e. ℓ.
func (d delta) magnitude() float64 {
	return math.Sqrt(d.X*d.X + d.Y*d.Y + d.Z*d.Z)
}
