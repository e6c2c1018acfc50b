// Package gravity is the outer orchestrator: it validates input, converts
// coordinates once, drives the adaptive engine over every (point,
// tesseroid) pair, and applies the per-field unit scaling. It exposes one
// function per field, sharing a single internal compute path.
package gravity

import (
	"errors"
	"fmt"
	"math"

	"github.com/tesserock/tesseroid/internal/parallel"
	"github.com/tesserock/tesseroid/pkg/engine"
	"github.com/tesserock/tesseroid/pkg/kernel"
	"github.com/tesserock/tesseroid/pkg/physconst"
	"github.com/tesserock/tesseroid/pkg/tesseroid"
	"github.com/zerodha/logf"
)

// Default distance-size acceptance ratios, one per field family: the
// potential converges fastest with distance, the attraction components
// need a tighter threshold, and the gradient tensor (steepest falloff)
// needs the tightest.
const (
	DefaultRatioPotential  = 1.0
	DefaultRatioAttraction = 1.6
	DefaultRatioGradient   = 8.0
	defaultStackMax        = engine.DefaultStackMax
)

// Options carries every caller-supplied knob shared by the ten field
// functions.
type Options struct {
	// DensityOverride, if non-nil, replaces every tesseroid's intrinsic
	// density.
	DensityOverride *float64
	// Ratio is the distance-size acceptance threshold. Zero selects the
	// field's default; negative is a precondition failure.
	Ratio float64
	// Engine selects an alternative compute backend. It is advisory: both
	// recognized names drive the same adaptive quadrature path. Empty
	// string selects "default".
	Engine string
	// NJobs is the number of workers partitioning the observation
	// points. Zero selects 1.
	NJobs int
	// StackMax bounds the adaptive refinement stack. Zero selects
	// engine.DefaultStackMax.
	StackMax int
	// Logger receives diagnostic messages; nil is safe.
	Logger *logf.Logger
}

var knownEngines = map[string]bool{
	"default":   true,
	"reference": true,
}

// validateEngine keeps a long-standing quirk of the engine-name check: the
// rejection message is built with a mismatched format verb, so the engine
// name comes out garbled instead of quoted. Harmless, never fixed, so the
// text stays as-is rather than as a surprise for anyone grepping old logs.
func validateEngine(name string) error {
	if name == "" {
		return nil
	}
	if knownEngines[name] {
		return nil
	}
	return newError(UnknownEngine, fmt.Sprintf("invalid compute engine %d", name))
}

// Potential computes the gravitational potential V, in m^2*s^-2.
func Potential(lon, lat, height []float64, model tesseroid.Model, opts Options) ([]float64, error) {
	return compute(kernel.V, DefaultRatioPotential, 1.0, lon, lat, height, model, opts)
}

// Gx computes the North component of the gravitational attraction, in mGal.
func Gx(lon, lat, height []float64, model tesseroid.Model, opts Options) ([]float64, error) {
	return compute(kernel.Gx, DefaultRatioAttraction, physconst.SI2MGal, lon, lat, height, model, opts)
}

// Gy computes the East component of the gravitational attraction, in mGal.
func Gy(lon, lat, height []float64, model tesseroid.Model, opts Options) ([]float64, error) {
	return compute(kernel.Gy, DefaultRatioAttraction, physconst.SI2MGal, lon, lat, height, model, opts)
}

// Gz computes the z-down (down-positive) component of the gravitational
// attraction, in mGal.
func Gz(lon, lat, height []float64, model tesseroid.Model, opts Options) ([]float64, error) {
	return compute(kernel.Gz, DefaultRatioAttraction, physconst.SI2MGal, lon, lat, height, model, opts)
}

// Gxx computes the xx gravity-gradient-tensor component, in Eötvös.
func Gxx(lon, lat, height []float64, model tesseroid.Model, opts Options) ([]float64, error) {
	return compute(kernel.Gxx, DefaultRatioGradient, physconst.SI2Eotvos, lon, lat, height, model, opts)
}

// Gxy computes the xy gravity-gradient-tensor component, in Eötvös.
func Gxy(lon, lat, height []float64, model tesseroid.Model, opts Options) ([]float64, error) {
	return compute(kernel.Gxy, DefaultRatioGradient, physconst.SI2Eotvos, lon, lat, height, model, opts)
}

// Gxz computes the xz gravity-gradient-tensor component, in Eötvös.
func Gxz(lon, lat, height []float64, model tesseroid.Model, opts Options) ([]float64, error) {
	return compute(kernel.Gxz, DefaultRatioGradient, physconst.SI2Eotvos, lon, lat, height, model, opts)
}

// Gyy computes the yy gravity-gradient-tensor component, in Eötvös.
func Gyy(lon, lat, height []float64, model tesseroid.Model, opts Options) ([]float64, error) {
	return compute(kernel.Gyy, DefaultRatioGradient, physconst.SI2Eotvos, lon, lat, height, model, opts)
}

// Gyz computes the yz gravity-gradient-tensor component, in Eötvös.
func Gyz(lon, lat, height []float64, model tesseroid.Model, opts Options) ([]float64, error) {
	return compute(kernel.Gyz, DefaultRatioGradient, physconst.SI2Eotvos, lon, lat, height, model, opts)
}

// Gzz computes the zz gravity-gradient-tensor component, in Eötvös.
func Gzz(lon, lat, height []float64, model tesseroid.Model, opts Options) ([]float64, error) {
	return compute(kernel.Gzz, DefaultRatioGradient, physconst.SI2Eotvos, lon, lat, height, model, opts)
}

// compute is the single internal path shared by all ten exported
// functions: validate, convert, reject interior points, accumulate per
// (point, tesseroid) pair, then scale by G and the field's unit factor.
func compute(field kernel.Field, defaultRatio, unitFactor float64, lon, lat, height []float64, model tesseroid.Model, opts Options) ([]float64, error) {
	if len(lon) != len(lat) || len(lon) != len(height) {
		return nil, newError(ShapeMismatch, "lon, lat, and height arrays must have equal length")
	}

	ratio := opts.Ratio
	if ratio == 0 {
		ratio = defaultRatio
	}
	if ratio <= 0 {
		return nil, newError(InvalidParameter, fmt.Sprintf("ratio %v must be > 0", ratio))
	}

	njobs := opts.NJobs
	if njobs == 0 {
		njobs = 1
	}
	if njobs <= 0 {
		return nil, newError(InvalidParameter, fmt.Sprintf("njobs %v must be > 0", njobs))
	}

	if err := validateEngine(opts.Engine); err != nil {
		return nil, err
	}

	stackMax := opts.StackMax
	if stackMax <= 0 {
		stackMax = defaultStackMax
	}

	points := convertPoints(lon, lat, height)

	if err := rejectInteriorPoints(lon, lat, points, model); err != nil {
		return nil, err
	}

	fn, err := kernel.ByField(field)
	if err != nil {
		return nil, wrapError(UnknownField, "field lookup failed", err)
	}

	result := make([]float64, len(points))

	runErr := parallel.Run(len(points), njobs, func(start, end int) error {
		for i := start; i < end; i++ {
			for _, tess := range model {
				density, ok := tess.ResolveDensity(opts.DensityOverride)
				if !ok {
					if opts.Logger != nil {
						opts.Logger.Debug("skipping tesseroid with unresolved density")
					}
					continue
				}
				sum, accErr := engine.Accumulate(points[i], tess, fn, ratio, stackMax, opts.Logger)
				if accErr != nil {
					return wrapError(StackOverflow, fmt.Sprintf("point %d", i), accErr)
				}
				result[i] += sum * density
			}
		}
		return nil
	})
	if runErr != nil {
		var gerr *Error
		if errors.As(runErr, &gerr) {
			return nil, gerr
		}
		return nil, wrapError(StackOverflow, "adaptive refinement failed", runErr)
	}

	scale := physconst.G * unitFactor
	for i := range result {
		result[i] *= scale
	}
	return result, nil
}

// rejectInteriorPoints rejects any observation point on or inside a
// tesseroid's boundary, rather than letting it reach the kernel and
// produce a singular or undefined evaluation.
func rejectInteriorPoints(lonDeg, latDeg []float64, points []kernel.Observation, model tesseroid.Model) error {
	for i, p := range points {
		for ti, tess := range model {
			if tess == nil {
				continue
			}
			if tess.Contains(p.Lon, latDeg[i]*math.Pi/180, p.R) {
				return newError(InvalidParameter, fmt.Sprintf("observation point %d (lon=%v, lat=%v) lies inside tesseroid %d", i, lonDeg[i], latDeg[i], ti))
			}
		}
	}
	return nil
}
