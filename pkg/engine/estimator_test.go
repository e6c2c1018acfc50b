package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tesserock/tesseroid/pkg/kernel"
)

func TestBox_Distance(t *testing.T) {
	b := box{W: -0.001, E: 0.001, S: -0.001, N: 0.001, Bottom: 6371000 - 1000, Top: 6371000}
	p := kernel.Observation{Lon: 0, SinLat: 0, CosLat: 1, R: 6371000 + 250000}

	d := b.distance(p)
	assert.Greater(t, d, 0.0)
	// The tesseroid centre is almost directly below p at ~250.5km.
	assert.InDelta(t, 250500, d, 2000)
}

func TestBox_SplitAxis(t *testing.T) {
	tallR := box{W: -0.001, E: 0.001, S: -0.001, N: 0.001, Bottom: 6000000, Top: 6371000}
	assert.Equal(t, "r", tallR.splitAxis())

	wideLambda := box{W: -1, E: 1, S: -0.001, N: 0.001, Bottom: 6370000, Top: 6371000}
	assert.Equal(t, "lambda", wideLambda.splitAxis())
}
