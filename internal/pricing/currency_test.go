package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/currency"
)

func TestConvert(t *testing.T) {
	t.Run("should keep the amount for the same currency", func(t *testing.T) {
		for _, unit := range []currency.Unit{currency.USD, currency.EUR, currency.GBP, currency.JPY} {
			for _, amount := range []float64{0, 1, 99.99, 132.42} {
				converted, rate := Convert(unit, unit, amount)
				assert.Equal(t, amount, converted)
				assert.Equal(t, 1.0, rate)
			}
		}
	})

	t.Run("should use the directed rate", func(t *testing.T) {
		tests := []struct {
			from     currency.Unit
			to       currency.Unit
			expected float64
		}{
			{currency.USD, currency.EUR, 0.9},
			{currency.USD, currency.GBP, 0.77},
			{currency.EUR, currency.USD, 1.1},
			{currency.EUR, currency.GBP, 0.85},
			{currency.GBP, currency.USD, 1.3},
			{currency.GBP, currency.EUR, 1.17},
		}

		for _, test := range tests {
			t.Run(test.from.String()+"-"+test.to.String(), func(t *testing.T) {
				converted, rate := Convert(test.from, test.to, 100)
				assert.Equal(t, test.expected, rate)
				assert.InDelta(t, 100*test.expected, converted, 1e-9)
			})
		}
	})

	t.Run("should fall back to identity for unknown pairs", func(t *testing.T) {
		converted, rate := Convert(currency.USD, currency.JPY, 50)
		assert.Equal(t, 50.0, converted)
		assert.Equal(t, 1.0, rate)

		converted, rate = Convert(currency.CHF, currency.EUR, 50)
		assert.Equal(t, 50.0, converted)
		assert.Equal(t, 1.0, rate)
	})
}
