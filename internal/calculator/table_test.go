package calculator

import (
	"encoding/binary"
	"errors"
	"math"
	"strings"
	"testing"
)

const defaultTableYAML = `
bands:
  - label: First ₦800,000
    rate: 0
    width: 800000
  - label: Next ₦2,199,999 (Up to ₦2.99m)
    rate: 0.15
    width: 2199999
  - label: Next ₦9,000,000 (Up to ₦11.99m)
    rate: 0.18
    width: 9000000
  - label: Next ₦13,000,000 (Up to ₦24.99m)
    rate: 0.21
    width: 13000000
  - label: Next ₦25,000,000 (Up to ₦49.99m)
    rate: 0.23
    width: 25000000
  - label: Above ₦50,000,000
    rate: 0.25
`

func TestLoadBands(t *testing.T) {
	bands, err := LoadBands(strings.NewReader(defaultTableYAML))
	if err != nil {
		t.Fatalf("LoadBands failed: %v", err)
	}

	if len(bands) != len(DefaultBands) {
		t.Fatalf("got %d bands, want %d", len(bands), len(DefaultBands))
	}
	for i := range bands {
		if bands[i] != DefaultBands[i] {
			t.Errorf("band %d = %+v, want %+v", i, bands[i], DefaultBands[i])
		}
	}
}

func TestLoadBandsErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr error
	}{
		{
			name:    "empty table",
			yaml:    "bands: []",
			wantErr: ErrNoBands,
		},
		{
			name: "final band bounded",
			yaml: `
bands:
  - label: only
    rate: 0.1
    width: 1000
`,
			wantErr: ErrFinalBandBounded,
		},
		{
			name: "unbounded band in the middle",
			yaml: `
bands:
  - label: a
    rate: 0.1
  - label: b
    rate: 0.2
`,
			wantErr: ErrInvalidBand,
		},
		{
			name: "negative width",
			yaml: `
bands:
  - label: a
    rate: 0.1
    width: -5
  - label: b
    rate: 0.2
`,
			wantErr: ErrInvalidBand,
		},
		{
			name: "rate above one",
			yaml: `
bands:
  - label: a
    rate: 1.5
`,
			wantErr: ErrInvalidBand,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadBands(strings.NewReader(tt.yaml))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("LoadBands() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadBandsRejectsUnknownFields(t *testing.T) {
	_, err := LoadBands(strings.NewReader(`
bands:
  - label: a
    rate: 0.1
    limit: 10
`))
	if err == nil {
		t.Error("expected error for unknown field, got nil")
	}
}

func TestValidateBandsDefault(t *testing.T) {
	if err := ValidateBands(DefaultBands); err != nil {
		t.Errorf("DefaultBands invalid: %v", err)
	}
	if err := ValidateBands([]TaxBand{{Width: math.NaN(), Rate: 0}}); !errors.Is(err, ErrInvalidBand) {
		t.Errorf("NaN width error = %v, want ErrInvalidBand", err)
	}
}

func TestFingerprint(t *testing.T) {
	a := TaxInputs{MonthlyGrossIncome: 250000, MonthlyPensionContribution: 20000, EmploymentType: Salaried, Year: 2024}
	b := a

	if Fingerprint(a, DefaultBands) != Fingerprint(b, DefaultBands) {
		t.Error("equal inputs produced different fingerprints")
	}

	b.MonthlyNHFContribution = 1
	if Fingerprint(a, DefaultBands) == Fingerprint(b, DefaultBands) {
		t.Error("different inputs produced the same fingerprint")
	}

	other := []TaxBand{{Width: Unbounded, Rate: 0.1, Label: "flat"}}
	if Fingerprint(a, DefaultBands) == Fingerprint(a, other) {
		t.Error("different band tables produced the same fingerprint")
	}
}

// le8 is the little-endian encoding Fingerprint uses for numbers.
func le8(u uint64) string {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], u)
	return string(b[:])
}

func TestFingerprintEmploymentTypeIsDelimited(t *testing.T) {
	a := TaxInputs{EmploymentType: "T", Year: 2025}
	aBands := []TaxBand{
		{Width: 800000, Rate: 0, Label: "L"},
		{Width: Unbounded, Rate: 0.25, Label: "top band and beyond"},
	}

	// b carries a's year and first band inside its employment type, then
	// reads the remaining bytes back as a year and one band.
	label := aBands[1].Label
	b := TaxInputs{
		EmploymentType: EmploymentType("T" + le8(2025) + le8(math.Float64bits(800000)) + le8(math.Float64bits(0)) + "L\x00"),
		Year:           int(int64(math.Float64bits(Unbounded))),
	}
	bBands := []TaxBand{{
		Width: 0.25,
		Rate:  math.Float64frombits(binary.LittleEndian.Uint64([]byte(label[:8]))),
		Label: label[8:],
	}}

	if Fingerprint(a, aBands) == Fingerprint(b, bBands) {
		t.Error("employment type bytes ran into the following fields")
	}
}
