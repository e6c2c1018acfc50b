package gravity_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tesserock/tesseroid/pkg/gravity"
	"github.com/tesserock/tesseroid/pkg/physconst"
	"github.com/tesserock/tesseroid/pkg/tesseroid"
)

func ptr(f float64) *float64 { return &f }

func smallModel(t *testing.T) tesseroid.Model {
	t.Helper()
	d := 2670.0
	tess, err := tesseroid.New(-0.5*math.Pi/180, 0.5*math.Pi/180, -0.5*math.Pi/180, 0.5*math.Pi/180,
		physconst.MeanEarthRadius-10000, physconst.MeanEarthRadius, &d)
	assert.NoError(t, err)
	return tesseroid.Model{tess}
}

func TestPotential_ShapeMismatch(t *testing.T) {
	model := smallModel(t)
	_, err := gravity.Potential([]float64{0, 1}, []float64{0}, []float64{0}, model, gravity.Options{})
	assert.Error(t, err)
	var gerr *gravity.Error
	assert.ErrorAs(t, err, &gerr)
	assert.Equal(t, gravity.ShapeMismatch, gerr.Kind)
}

func TestPotential_InvalidRatio(t *testing.T) {
	model := smallModel(t)
	_, err := gravity.Potential([]float64{0}, []float64{0}, []float64{250000}, model, gravity.Options{Ratio: -1})
	assert.Error(t, err)
	var gerr *gravity.Error
	assert.ErrorAs(t, err, &gerr)
	assert.Equal(t, gravity.InvalidParameter, gerr.Kind)
}

func TestPotential_InvalidNJobs(t *testing.T) {
	model := smallModel(t)
	_, err := gravity.Potential([]float64{0}, []float64{0}, []float64{250000}, model, gravity.Options{NJobs: -2})
	assert.Error(t, err)
	var gerr *gravity.Error
	assert.ErrorAs(t, err, &gerr)
	assert.Equal(t, gravity.InvalidParameter, gerr.Kind)
}

func TestPotential_UnknownEngine(t *testing.T) {
	model := smallModel(t)
	_, err := gravity.Potential([]float64{0}, []float64{0}, []float64{250000}, model, gravity.Options{Engine: "quantum"})
	assert.Error(t, err)
	var gerr *gravity.Error
	assert.ErrorAs(t, err, &gerr)
	assert.Equal(t, gravity.UnknownEngine, gerr.Kind)
}

func TestPotential_InteriorPointRejected(t *testing.T) {
	model := smallModel(t)
	// height -5000 puts r 5 km below MeanEarthRadius, inside [bottom, top].
	_, err := gravity.Potential([]float64{0}, []float64{0}, []float64{-5000}, model, gravity.Options{})
	assert.Error(t, err)
	var gerr *gravity.Error
	assert.ErrorAs(t, err, &gerr)
	assert.Equal(t, gravity.InvalidParameter, gerr.Kind)
}

func TestGz_FarFieldMatchesPointMass(t *testing.T) {
	density := 2670.0
	tess, err := tesseroid.New(-0.0005, 0.0005, -0.0005, 0.0005,
		physconst.MeanEarthRadius-1000, physconst.MeanEarthRadius, &density)
	assert.NoError(t, err)
	model := tesseroid.Model{tess}

	volume := (tess.E - tess.W) * (tess.N - tess.S) * (tess.Top - tess.Bottom) * physconst.MeanEarthRadius * physconst.MeanEarthRadius
	mass := density * volume

	height := 2000000.0
	res, err := gravity.Gz([]float64{0}, []float64{0}, []float64{height}, model, gravity.Options{Ratio: 0.1})
	assert.NoError(t, err)

	d := height + 1000 // approx distance from centre
	expectedSI := physconst.G * mass / (d * d)
	expectedMGal := expectedSI * physconst.SI2MGal

	assert.InEpsilon(t, expectedMGal, res[0], 0.05)
}

func TestSuperposition(t *testing.T) {
	d1 := 2670.0
	a, err := tesseroid.New(-0.01, 0.0, -0.005, 0.005, physconst.MeanEarthRadius-10000, physconst.MeanEarthRadius, &d1)
	assert.NoError(t, err)
	b, err := tesseroid.New(0.0, 0.01, -0.005, 0.005, physconst.MeanEarthRadius-10000, physconst.MeanEarthRadius, &d1)
	assert.NoError(t, err)

	lon, lat, height := []float64{0}, []float64{0}, []float64{250000}

	resA, err := gravity.Gz(lon, lat, height, tesseroid.Model{a}, gravity.Options{})
	assert.NoError(t, err)
	resB, err := gravity.Gz(lon, lat, height, tesseroid.Model{b}, gravity.Options{})
	assert.NoError(t, err)
	resCombined, err := gravity.Gz(lon, lat, height, tesseroid.Model{a, b}, gravity.Options{})
	assert.NoError(t, err)

	assert.InDelta(t, resA[0]+resB[0], resCombined[0], 1e-6*math.Abs(resCombined[0])+1e-12)
}

func TestLinearityInDensity(t *testing.T) {
	model := smallModel(t)
	lon, lat, height := []float64{0}, []float64{0}, []float64{250000}

	base, err := gravity.Gz(lon, lat, height, model, gravity.Options{})
	assert.NoError(t, err)

	doubled, err := gravity.Gz(lon, lat, height, model, gravity.Options{DensityOverride: ptr(2670.0 * 2)})
	assert.NoError(t, err)

	assert.InDelta(t, 2*base[0], doubled[0], 1e-6*math.Abs(base[0])+1e-12)
}

func TestLaplaceEquation(t *testing.T) {
	model := smallModel(t)
	lon, lat, height := []float64{0}, []float64{0}, []float64{250000}

	gxx, err := gravity.Gxx(lon, lat, height, model, gravity.Options{})
	assert.NoError(t, err)
	gyy, err := gravity.Gyy(lon, lat, height, model, gravity.Options{})
	assert.NoError(t, err)
	gzz, err := gravity.Gzz(lon, lat, height, model, gravity.Options{})
	assert.NoError(t, err)

	trace := gxx[0] + gyy[0] + gzz[0]
	maxAbs := math.Max(math.Abs(gxx[0]), math.Max(math.Abs(gyy[0]), math.Abs(gzz[0])))
	assert.Less(t, math.Abs(trace), 1e-3*maxAbs)
}

func TestPartitioningEquivalence(t *testing.T) {
	model := smallModel(t)
	n := 40
	lon := make([]float64, n)
	lat := make([]float64, n)
	height := make([]float64, n)
	for i := 0; i < n; i++ {
		lon[i] = float64(i%5) * 0.1
		lat[i] = float64(i%7) * 0.1
		height[i] = 250000
	}

	single, err := gravity.Gz(lon, lat, height, model, gravity.Options{NJobs: 1})
	assert.NoError(t, err)
	quad, err := gravity.Gz(lon, lat, height, model, gravity.Options{NJobs: 4})
	assert.NoError(t, err)

	assert.Equal(t, single, quad)
}

func TestModel_SkipsTesseroidWithoutDensity(t *testing.T) {
	tess, err := tesseroid.New(-0.01, 0.01, -0.01, 0.01, physconst.MeanEarthRadius-10000, physconst.MeanEarthRadius, nil)
	assert.NoError(t, err)

	res, err := gravity.Potential([]float64{0}, []float64{0}, []float64{250000}, tesseroid.Model{tess, nil}, gravity.Options{})
	assert.NoError(t, err)
	assert.Equal(t, 0.0, res[0])
}
