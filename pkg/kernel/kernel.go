// Package kernel implements the ten pure integrand functions evaluated at
// a single quadrature node for a single observation point: the
// gravitational potential, the three attraction components, and the six
// gravity-gradient-tensor components of a tesseroid, in the locally
// rotated spherical frame of Grombein et al. (2013).
package kernel

import (
	"fmt"
	"math"
)

// Observation is a computation point with its trigonometric values
// precomputed once per point, as the adaptive driver requires.
type Observation struct {
	Lon    float64
	SinLat float64
	CosLat float64
	R      float64
}

// Node is a single Gauss-Legendre quadrature node already scaled into a
// sub-tesseroid's bounds.
type Node struct {
	Lon    float64
	SinLat float64
	CosLat float64
	R      float64
}

// Field identifies one of the ten quantities the engine can compute.
type Field int

const (
	V Field = iota
	Gx
	Gy
	Gz
	Gxx
	Gxy
	Gxz
	Gyy
	Gyz
	Gzz
)

// String names the field, matching the external-interface selector.
func (f Field) String() string {
	switch f {
	case V:
		return "potential"
	case Gx:
		return "gx"
	case Gy:
		return "gy"
	case Gz:
		return "gz"
	case Gxx:
		return "gxx"
	case Gxy:
		return "gxy"
	case Gxz:
		return "gxz"
	case Gyy:
		return "gyy"
	case Gyz:
		return "gyz"
	case Gzz:
		return "gzz"
	default:
		return fmt.Sprintf("unknown(%d)", int(f))
	}
}

// Func evaluates a single field's integrand at one (observation, node)
// pair. Callers resolve it once per (point, root-tesseroid) traversal and
// reuse the returned closure for every node, rather than re-dispatching
// on the field inside the innermost loop.
type Func func(p Observation, n Node) float64

// ByField returns the integrand function for a named field.
func ByField(f Field) (Func, error) {
	switch f {
	case V:
		return potential, nil
	case Gx:
		return gx, nil
	case Gy:
		return gy, nil
	case Gz:
		return gz, nil
	case Gxx:
		return diag(axisX), nil
	case Gyy:
		return diag(axisY), nil
	case Gzz:
		return diag(axisZ), nil
	case Gxy:
		return offDiag(axisX, axisY), nil
	case Gxz:
		return offDiag(axisX, axisZ), nil
	case Gyz:
		return offDiag(axisY, axisZ), nil
	default:
		return nil, fmt.Errorf("kernel: unknown field %v", f)
	}
}

// core holds the quantities shared by every field at a given
// (observation, node) pair: the local displacement, its length, and the
// mass-element volume weight kappa.
type core struct {
	d     delta
	ell   float64
	kappa float64
	ok    bool // false when ell^2 is not strictly positive
}

func evaluate(p Observation, n Node) core {
	dLon := n.Lon - p.Lon
	sinDLon, cosDLon := math.Sin(dLon), math.Cos(dLon)

	cosPsi := p.SinLat*n.SinLat + p.CosLat*n.CosLat*cosDLon
	kPhi := p.CosLat*n.SinLat - p.SinLat*n.CosLat*cosDLon

	d := delta{
		X: n.R * kPhi,
		Y: n.R * n.CosLat * sinDLon,
		Z: n.R*cosPsi - p.R,
	}

	ell2 := n.R*n.R + p.R*p.R - 2*n.R*p.R*cosPsi
	kappa := n.R * n.R * n.CosLat

	if ell2 <= 0 {
		return core{ok: false}
	}
	return core{d: d, ell: math.Sqrt(ell2), kappa: kappa, ok: true}
}

func potential(p Observation, n Node) float64 {
	c := evaluate(p, n)
	if !c.ok {
		return 0
	}
	return c.kappa / c.ell
}

func gx(p Observation, n Node) float64 {
	c := evaluate(p, n)
	if !c.ok {
		return 0
	}
	ell3 := c.ell * c.ell * c.ell
	return c.kappa * c.d.X / ell3
}

func gy(p Observation, n Node) float64 {
	c := evaluate(p, n)
	if !c.ok {
		return 0
	}
	ell3 := c.ell * c.ell * c.ell
	return c.kappa * c.d.Y / ell3
}

// gz is negated relative to gx/gy so that positive density yields
// positive gz under the z-down convention.
func gz(p Observation, n Node) float64 {
	c := evaluate(p, n)
	if !c.ok {
		return 0
	}
	ell3 := c.ell * c.ell * c.ell
	return -c.kappa * c.d.Z / ell3
}

type axis int

const (
	axisX axis = iota
	axisY
	axisZ
)

func component(d delta, a axis) float64 {
	switch a {
	case axisX:
		return d.X
	case axisY:
		return d.Y
	default:
		return d.Z
	}
}

func diag(a axis) Func {
	return func(p Observation, n Node) float64 {
		c := evaluate(p, n)
		if !c.ok {
			return 0
		}
		ell3 := c.ell * c.ell * c.ell
		ell5 := ell3 * c.ell * c.ell
		da := component(c.d, a)
		return c.kappa * (3*da*da/ell5 - 1/ell3)
	}
}

func offDiag(a, b axis) Func {
	return func(p Observation, n Node) float64 {
		c := evaluate(p, n)
		if !c.ok {
			return 0
		}
		ell3 := c.ell * c.ell * c.ell
		ell5 := ell3 * c.ell * c.ell
		da, db := component(c.d, a), component(c.d, b)
		return c.kappa * 3 * da * db / ell5
	}
}
