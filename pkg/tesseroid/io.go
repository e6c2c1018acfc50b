package tesseroid

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
)

// record is the on-disk JSON shape for one tesseroid: bounds in degrees and
// metres, the form a human would write by hand. Density is a pointer so
// that omitting it (a hole in the model) round-trips as nil.
type record struct {
	W       float64  `json:"w"`
	E       float64  `json:"e"`
	S       float64  `json:"s"`
	N       float64  `json:"n"`
	Bottom  float64  `json:"bottom"`
	Top     float64  `json:"top"`
	Density *float64 `json:"density,omitempty"`
}

// LoadModel reads a JSON array of tesseroid records from path and converts
// each to radians, building a Model. A record with all-zero bounds and a
// nil density is treated as an explicit hole and becomes a nil Model entry.
func LoadModel(path string) (Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tesseroid: opening model file: %w", err)
	}
	defer f.Close()
	return decodeModel(f)
}

func decodeModel(r io.Reader) (Model, error) {
	var records []record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("tesseroid: decoding model file: %w", err)
	}

	model := make(Model, len(records))
	for i, rec := range records {
		if rec.isHole() {
			model[i] = nil
			continue
		}
		t, err := New(
			rec.W*math.Pi/180, rec.E*math.Pi/180,
			rec.S*math.Pi/180, rec.N*math.Pi/180,
			rec.Bottom, rec.Top, rec.Density,
		)
		if err != nil {
			return nil, fmt.Errorf("tesseroid: record %d: %w", i, err)
		}
		model[i] = t
	}
	return model, nil
}

func (rec record) isHole() bool {
	return rec.W == 0 && rec.E == 0 && rec.S == 0 && rec.N == 0 &&
		rec.Bottom == 0 && rec.Top == 0 && rec.Density == nil
}
