// Command tesscalc computes a gravitational field over a regular lon/lat
// grid from a tesseroid model file and prints the result as a table,
// optionally rendering it as an SVG heatmap.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/tesserock/tesseroid/internal/config"
	"github.com/tesserock/tesseroid/internal/logger"
	"github.com/tesserock/tesseroid/internal/reporting"
	"github.com/tesserock/tesseroid/pkg/gravity"
	"github.com/tesserock/tesseroid/pkg/tesseroid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var fieldFuncs = map[string]func([]float64, []float64, []float64, tesseroid.Model, gravity.Options) ([]float64, error){
	"potential": gravity.Potential,
	"gx":        gravity.Gx,
	"gy":        gravity.Gy,
	"gz":        gravity.Gz,
	"gxx":       gravity.Gxx,
	"gxy":       gravity.Gxy,
	"gxz":       gravity.Gxz,
	"gyy":       gravity.Gyy,
	"gyz":       gravity.Gyz,
	"gzz":       gravity.Gzz,
}

func main() {
	field := flag.String("field", "gz", "field to compute: potential, gx, gy, gz, gxx, gxy, gxz, gyy, gyz, gzz")
	height := flag.Float64("height", 0, "observation height above the reference sphere, in metres")
	nlon := flag.Int("nlon", 5, "number of grid columns (longitude)")
	nlat := flag.Int("nlat", 5, "number of grid rows (latitude)")
	lonMin := flag.Float64("lon-min", -1, "grid west bound, degrees")
	lonMax := flag.Float64("lon-max", 1, "grid east bound, degrees")
	latMin := flag.Float64("lat-min", -1, "grid south bound, degrees")
	latMax := flag.Float64("lat-max", 1, "grid north bound, degrees")
	plot := flag.Bool("plot", false, "render an SVG heatmap alongside the table")
	flag.Parse()

	cfg, err := config.GetConfig()
	if err != nil {
		critLog := logger.GetLogger("error")
		critLog.Fatal("failed to load application configuration", "error", err)
	}

	lg := logger.GetLogger(cfg.Logging.Level)
	lg.Info("starting tesscalc", "version", cfg.App.Version, "field", *field)

	fn, ok := fieldFuncs[*field]
	if !ok {
		lg.Fatal("unknown field", "field", *field)
	}

	model, err := tesseroid.LoadModel(cfg.Compute.ModelFile)
	if err != nil {
		lg.Fatal("failed to load tesseroid model", "error", err)
	}

	lon, lat, heights := buildGrid(*lonMin, *lonMax, *latMin, *latMax, *nlon, *nlat, *height)

	opts := gravity.Options{
		NJobs:    cfg.Compute.NJobs,
		StackMax: cfg.Compute.StackMax,
		Logger:   lg,
	}
	switch *field {
	case "potential":
		opts.Ratio = cfg.Compute.RatioPotential
	case "gx", "gy", "gz":
		opts.Ratio = cfg.Compute.RatioAttraction
	default:
		opts.Ratio = cfg.Compute.RatioGradient
	}

	values, err := fn(lon, lat, heights, model, opts)
	if err != nil {
		lg.Fatal("computation failed", "error", err)
	}

	printTable(*field, lon, lat, values)
	printSummary(values)

	if *plot {
		renderer := reporting.NewGridRenderer(".", lg)
		if err := renderer.GenerateFieldHeatmap(*field, gridAxis(*lonMin, *lonMax, *nlon), gridAxis(*latMin, *latMax, *nlat), values); err != nil {
			lg.Error("failed to render heatmap", "error", err)
		}
	}
}

// buildGrid lays out a row-major lon/lat grid at a constant height and
// returns parallel coordinate slices ready for a pkg/gravity call.
func buildGrid(lonMin, lonMax, latMin, latMax float64, nlon, nlat int, height float64) (lon, lat, heightOut []float64) {
	lonAxis := gridAxis(lonMin, lonMax, nlon)
	latAxis := gridAxis(latMin, latMax, nlat)

	n := nlon * nlat
	lon = make([]float64, n)
	lat = make([]float64, n)
	heightOut = make([]float64, n)
	i := 0
	for _, la := range latAxis {
		for _, lo := range lonAxis {
			lon[i] = lo
			lat[i] = la
			heightOut[i] = height
			i++
		}
	}
	return lon, lat, heightOut
}

func gridAxis(min, max float64, n int) []float64 {
	if n < 2 {
		return []float64{min}
	}
	axis := make([]float64, n)
	step := (max - min) / float64(n-1)
	for i := range axis {
		axis[i] = min + step*float64(i)
	}
	return axis
}

func printTable(field string, lon, lat, values []float64) {
	titler := cases.Title(language.English)
	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Longitude", "Latitude", titler.String(field)})

	for i := range values {
		_ = table.Append([]string{
			fmt.Sprintf("%.4f", lon[i]),
			fmt.Sprintf("%.4f", lat[i]),
			fmt.Sprintf("%.6f", values[i]),
		})
	}
	_ = table.Render()
}

func printSummary(values []float64) {
	min, max := floats.Min(values), floats.Max(values)
	mean := stat.Mean(values, nil)
	fmt.Printf("min=%.6f max=%.6f mean=%.6f\n", min, max, mean)
}
