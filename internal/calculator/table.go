package calculator

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v2"
)

var (
	ErrNoBands          = errors.New("band table is empty")
	ErrInvalidBand      = errors.New("invalid tax band")
	ErrFinalBandBounded = errors.New("final tax band must be unbounded")
)

// bandEntry is the YAML form of a band. A missing width marks the unbounded band.
type bandEntry struct {
	Label string   `yaml:"label"`
	Rate  float64  `yaml:"rate"`
	Width *float64 `yaml:"width,omitempty"`
}

type bandFile struct {
	Bands []bandEntry `yaml:"bands"`
}

// LoadBands parses a YAML band table and validates it.
//
//	bands:
//	  - label: First ₦800,000
//	    rate: 0
//	    width: 800000
//	  - label: Above ₦800,000
//	    rate: 0.15
func LoadBands(r io.Reader) ([]TaxBand, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read band table: %w", err)
	}

	var f bandFile
	if err := yaml.UnmarshalStrict(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse band table: %w", err)
	}

	bands := make([]TaxBand, len(f.Bands))
	for i, e := range f.Bands {
		width := Unbounded
		if e.Width != nil {
			width = *e.Width
		}
		bands[i] = TaxBand{Width: width, Rate: e.Rate, Label: e.Label}
	}

	if err := ValidateBands(bands); err != nil {
		return nil, err
	}
	return bands, nil
}

// LoadBandsFile reads a YAML band table from path.
func LoadBandsFile(path string) ([]TaxBand, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open band table: %w", err)
	}
	defer f.Close()

	return LoadBands(f)
}

// ValidateBands checks the structural rules of a band table: at least one band,
// non-negative finite widths with only the last band unbounded, and rates
// between 0 and 1. Rates are not required to be non-decreasing.
func ValidateBands(bands []TaxBand) error {
	if len(bands) == 0 {
		return ErrNoBands
	}

	last := len(bands) - 1
	for i, b := range bands {
		if math.IsNaN(b.Rate) || b.Rate < 0 || b.Rate > 1 {
			return fmt.Errorf("%w: band %d (%q) has rate %v", ErrInvalidBand, i, b.Label, b.Rate)
		}
		if math.IsNaN(b.Width) || b.Width < 0 {
			return fmt.Errorf("%w: band %d (%q) has width %v", ErrInvalidBand, i, b.Label, b.Width)
		}
		if i < last && b.IsUnbounded() {
			return fmt.Errorf("%w: band %d (%q) is unbounded but not last", ErrInvalidBand, i, b.Label)
		}
	}

	if !bands[last].IsUnbounded() {
		return ErrFinalBandBounded
	}
	return nil
}
