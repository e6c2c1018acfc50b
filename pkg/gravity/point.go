package gravity

import (
	"math"

	"github.com/tesserock/tesseroid/pkg/kernel"
	"github.com/tesserock/tesseroid/pkg/physconst"
)

// convertPoints converts degree/degree/metre observation arrays to the
// radian/sin/cos/radius form the engine consumes, computing sin and cos
// of latitude exactly once per point. The conversion is shared by every
// field function.
func convertPoints(lon, lat, height []float64) []kernel.Observation {
	points := make([]kernel.Observation, len(lon))
	for i := range lon {
		lonRad := lon[i] * math.Pi / 180
		latRad := lat[i] * math.Pi / 180
		points[i] = kernel.Observation{
			Lon:    lonRad,
			SinLat: math.Sin(latRad),
			CosLat: math.Cos(latRad),
			R:      physconst.MeanEarthRadius + height[i],
		}
	}
	return points
}
