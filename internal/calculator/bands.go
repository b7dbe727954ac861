package calculator

import "math"

// Unbounded is the width of the final band. Any taxable income left after the
// finite bands falls into it.
var Unbounded = math.Inf(1)

// TaxBand is one marginal rate band. Bands are consulted in order; each one
// absorbs up to Width of the remaining taxable income at Rate.
type TaxBand struct {
	Width float64
	Rate  float64
	Label string
}

// DefaultBands is the PAYE band table applied when no other table is configured.
// Consumers that keep a table, such as service.NewEngine, take their own copy.
var DefaultBands = []TaxBand{
	{Width: 800000, Rate: 0.00, Label: "First ₦800,000"},
	{Width: 2199999, Rate: 0.15, Label: "Next ₦2,199,999 (Up to ₦2.99m)"},
	{Width: 9000000, Rate: 0.18, Label: "Next ₦9,000,000 (Up to ₦11.99m)"},
	{Width: 13000000, Rate: 0.21, Label: "Next ₦13,000,000 (Up to ₦24.99m)"},
	{Width: 25000000, Rate: 0.23, Label: "Next ₦25,000,000 (Up to ₦49.99m)"},
	{Width: Unbounded, Rate: 0.25, Label: "Above ₦50,000,000"},
}

// IsUnbounded reports whether the band has no upper width.
func (b TaxBand) IsUnbounded() bool {
	return math.IsInf(b.Width, 1)
}
