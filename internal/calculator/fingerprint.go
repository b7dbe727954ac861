package calculator

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint hashes the inputs together with the band table. Equal inputs and
// tables always hash equally, so the value can key a result cache. Strings are
// zero-terminated so they cannot absorb the fields that follow them.
func Fingerprint(inputs TaxInputs, bands []TaxBand) uint64 {
	d := xxhash.New()
	var buf [8]byte

	writeFloat := func(f float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(f))
		d.Write(buf[:])
	}

	writeFloat(inputs.MonthlyGrossIncome)
	writeFloat(inputs.OtherMonthlyIncome)
	writeFloat(inputs.MonthlyPensionContribution)
	writeFloat(inputs.MonthlyNHFContribution)
	writeFloat(inputs.MonthlyOtherDeductions)
	d.WriteString(string(inputs.EmploymentType))
	d.Write([]byte{0})
	binary.LittleEndian.PutUint64(buf[:], uint64(int64(inputs.Year)))
	d.Write(buf[:])

	for _, b := range bands {
		writeFloat(b.Width)
		writeFloat(b.Rate)
		d.WriteString(b.Label)
		d.Write([]byte{0})
	}

	return d.Sum64()
}
