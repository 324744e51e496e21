package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"encore.app/settlement/model"
)

func TestBillableAmountCents(t *testing.T) {
	testCases := []struct {
		name          string
		hours         float64
		rateCents     int64
		expectedCents int64
	}{
		{
			name:          "whole_hours",
			hours:         8,
			rateCents:     5000,
			expectedCents: 40000,
		},
		{
			name:          "fractional_hours",
			hours:         1.5,
			rateCents:     5000,
			expectedCents: 7500,
		},
		{
			name:          "rounds_half_up",
			hours:         0.25,
			rateCents:     9998, // 2499.5 cents
			expectedCents: 2500,
		},
		{
			name:          "rounds_down_below_half",
			hours:         0.33,
			rateCents:     100, // 33 cents exactly
			expectedCents: 33,
		},
		{
			name:          "sub_cent_rounds_half_up",
			hours:         0.01,
			rateCents:     150, // 1.5 cents
			expectedCents: 2,
		},
		{
			name:          "zero_rate",
			hours:         10,
			rateCents:     0,
			expectedCents: 0,
		},
		{
			name:          "large_values",
			hours:         999.99,
			rateCents:     123456,
			expectedCents: 123454765, // 99999 * 123456 / 100, rounded
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := BillableAmountCents(tc.hours, tc.rateCents)
			assert.Equal(t, tc.expectedCents, got)
		})
	}
}

// The derived amount must be reproducible from the stored (hours, rate) pair:
// recomputing never gives a different answer.
func TestBillableAmountCents_Deterministic(t *testing.T) {
	for _, hours := range []float64{0.01, 0.1, 0.33, 1.25, 7.77, 40, 100.5} {
		for _, rate := range []int64{1, 99, 1500, 9999, 123456} {
			first := BillableAmountCents(hours, rate)
			for i := 0; i < 100; i++ {
				assert.Equal(t, first, BillableAmountCents(hours, rate),
					"hours=%v rate=%d", hours, rate)
			}
		}
	}
}

func TestValidateEntryInput(t *testing.T) {
	testCases := []struct {
		name          string
		category      model.EntryCategory
		hours         float64
		rateCents     int64
		expectedError string
	}{
		{
			name:      "valid_planned",
			category:  model.CategoryPlanned,
			hours:     7.5,
			rateCents: 5000,
		},
		{
			name:      "valid_additional",
			category:  model.CategoryAdditional,
			hours:     0.01,
			rateCents: 1,
		},
		{
			name:          "unknown_category",
			category:      model.EntryCategory("overtime"),
			hours:         1,
			rateCents:     100,
			expectedError: "category must be planned or additional",
		},
		{
			name:          "zero_hours",
			category:      model.CategoryPlanned,
			hours:         0,
			rateCents:     100,
			expectedError: "hours must be greater than zero",
		},
		{
			name:          "negative_hours",
			category:      model.CategoryPlanned,
			hours:         -2,
			rateCents:     100,
			expectedError: "hours must be greater than zero",
		},
		{
			name:          "negative_rate",
			category:      model.CategoryAdditional,
			hours:         1,
			rateCents:     -1,
			expectedError: "hourly rate must not be negative",
		},
		{
			name:          "too_many_decimals",
			category:      model.CategoryAdditional,
			hours:         1.005,
			rateCents:     100,
			expectedError: "at most two decimal places",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateEntryInput(tc.category, tc.hours, tc.rateCents)

			if tc.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
