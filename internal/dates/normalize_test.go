package dates

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/taxdoc-finalizer/internal/types"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Slash separated numeric triple", "08/09/2025", "08/09/2025"},
		{"Dash separated numeric triple", "08-09-2025", "08/09/2025"},
		{"Single digit month and day", "8-9-2025", "08/09/2025"},
		{"Numeric triple is read month first", "04-05-2025", "04/05/2025"},
		{"Day with month name", "08-august-2025", "08/08/2025"},
		{"Day with month abbreviation", "17-Aug-2025", "08/17/2025"},
		{"Sept abbreviation", "01-sept-2024", "09/01/2024"},
		{"Month name day comma year", "August 08, 2025", "08/08/2025"},
		{"Month name day year without comma", "August 08 2025", "08/08/2025"},
		{"Month abbreviation day year", "Dec 3, 2024", "12/03/2024"},
		{"ISO date", "2025-08-09", "08/09/2025"},
		{"ISO date single digit parts", "2025-8-9", "08/09/2025"},
		{"Already normalized is unchanged", "12/31/2024", "12/31/2024"},
		{"Sentinel passes through", "N/A", "N/A"},
		{"Empty maps to sentinel", "", "N/A"},
		{"Month out of range falls through", "13/13/2025", "13/13/2025"},
		{"Implausible numeric triple falls through", "99-99-9999", "99-99-9999"},
		{"Unknown month name falls through", "08-smarch-2025", "08-smarch-2025"},
		{"Free text is returned unchanged", "sometime last spring", "sometime last spring"},
		{"Surrounding whitespace is trimmed", "  08-august-2025  ", "08/08/2025"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"08-august-2025", "August 08, 2025", "2025-08-09", "04-05-2025"}
	for _, input := range inputs {
		once := Normalize(input)
		assert.Equal(t, once, Normalize(once), "normalizing %q twice must be stable", input)
	}
}

func TestNormalizeFallbackParser(t *testing.T) {
	// Shapes the explicit patterns miss but the flexible parser accepts.
	assert.Equal(t, "08/09/2025", Normalize("2025/08/09"))
	assert.Equal(t, "08/09/2025", Normalize("2025-08-09T10:00:00Z"))
}

func TestNormalizeFields(t *testing.T) {
	t.Run("paystub period dates", func(t *testing.T) {
		rec := &types.CanonicalRecord{
			PayPeriodStartDate: "01-august-2025",
			PayPeriodEndDate:   "August 15, 2025",
			YearToDateEarnings: "2024-01-01", // not a date field, must be untouched
		}
		NormalizeFields(rec, types.KindPaystub)

		assert.Equal(t, "08/01/2025", rec.PayPeriodStartDate)
		assert.Equal(t, "08/15/2025", rec.PayPeriodEndDate)
		assert.Equal(t, "2024-01-01", rec.YearToDateEarnings)
	})

	t.Run("1120 tax year bounds", func(t *testing.T) {
		rec := &types.CanonicalRecord{
			BeginningTaxYear: "2023-01-01",
			EndingTaxYear:    "2023-12-31",
		}
		NormalizeFields(rec, types.Kind1120)

		assert.Equal(t, "01/01/2023", rec.BeginningTaxYear)
		assert.Equal(t, "12/31/2023", rec.EndingTaxYear)
	})

	t.Run("w2 year is left alone", func(t *testing.T) {
		rec := &types.CanonicalRecord{Year: "2024-01-01"}
		NormalizeFields(rec, types.KindW2)
		assert.Equal(t, "2024-01-01", rec.Year)
	})

	t.Run("sentinel fields are skipped", func(t *testing.T) {
		rec := &types.CanonicalRecord{
			PayPeriodStartDate: types.Sentinel,
			PayPeriodEndDate:   "08-09-2025",
		}
		NormalizeFields(rec, types.KindPaystub)
		assert.Equal(t, types.Sentinel, rec.PayPeriodStartDate)
		assert.Equal(t, "08/09/2025", rec.PayPeriodEndDate)
	})
}
