package reporting

import (
	"fmt"
	"path/filepath"

	"github.com/zerodha/logf"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// GridRenderer writes computed field grids to SVG heatmaps under a single
// output directory.
type GridRenderer struct {
	assetsDir string
	log       *logf.Logger
}

// NewGridRenderer builds a GridRenderer writing under assetsDir.
func NewGridRenderer(assetsDir string, log *logf.Logger) *GridRenderer {
	return &GridRenderer{assetsDir: assetsDir, log: log}
}

// fieldGrid adapts a row-major computed field grid to plotter.GridXYZ.
type fieldGrid struct {
	lon    []float64
	lat    []float64
	values []float64 // row-major, len(lat)*len(lon)
}

func (g fieldGrid) Dims() (c, r int) { return len(g.lon), len(g.lat) }
func (g fieldGrid) X(c int) float64  { return g.lon[c] }
func (g fieldGrid) Y(r int) float64  { return g.lat[r] }
func (g fieldGrid) Z(c, r int) float64 {
	return g.values[r*len(g.lon)+c]
}

// GenerateFieldHeatmap renders a single computed field, evaluated over a
// regular lon/lat grid, as an SVG heatmap named "<field>.svg" under the
// renderer's assets directory. values must be row-major with len(lat)
// rows of len(lon) columns each.
func (r *GridRenderer) GenerateFieldHeatmap(field string, lon, lat, values []float64) error {
	if len(lon) == 0 || len(lat) == 0 {
		return fmt.Errorf("reporting: cannot render %s heatmap: empty grid", field)
	}
	if len(values) != len(lon)*len(lat) {
		return fmt.Errorf("reporting: %s grid has %d values, want %d", field, len(values), len(lon)*len(lat))
	}

	grid := fieldGrid{lon: lon, lat: lat, values: values}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s heatmap", field)
	p.X.Label.Text = "longitude (deg)"
	p.Y.Label.Text = "latitude (deg)"

	heat := plotter.NewHeatMap(grid, palette.Heat(64, 1))
	p.Add(heat)

	path := filepath.Join(r.assetsDir, field+".svg")
	if err := p.Save(6*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("reporting: failed to save %s heatmap: %w", field, err)
	}
	if r.log != nil {
		r.log.Info("generated field heatmap", "field", field, "path", path)
	}
	return nil
}
