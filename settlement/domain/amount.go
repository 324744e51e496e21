package domain

import (
	"math"

	"encore.dev/beta/errs"

	"encore.app/settlement/model"
)

// Hours are quantized to hundredths before any money math so the derived
// amount is reproducible from the stored (hours, rate) pair. All arithmetic
// after quantization is integer-only.

// Currency is the single settlement currency of the platform.
const Currency = "eur"

// BillableAmountCents derives the billable amount for an entry:
// hours × rate, rounded half-up to whole cents.
func BillableAmountCents(hours float64, hourlyRateCents int64) int64 {
	centiHours := int64(math.Round(hours * 100))
	return (centiHours*hourlyRateCents + 50) / 100
}

// ValidateEntryInput checks the raw logging input before anything is derived
// or persisted.
func ValidateEntryInput(category model.EntryCategory, hours float64, hourlyRateCents int64) error {
	if category != model.CategoryPlanned && category != model.CategoryAdditional {
		return &errs.Error{Code: errs.InvalidArgument, Message: "category must be planned or additional"}
	}
	if hours <= 0 {
		return &errs.Error{Code: errs.InvalidArgument, Message: "hours must be greater than zero"}
	}
	if hourlyRateCents < 0 {
		return &errs.Error{Code: errs.InvalidArgument, Message: "hourly rate must not be negative"}
	}
	// Finer than hundredths would not round-trip through the stored column.
	if math.Abs(hours*100-math.Round(hours*100)) > 1e-9 {
		return &errs.Error{Code: errs.InvalidArgument, Message: "hours must have at most two decimal places"}
	}
	return nil
}
