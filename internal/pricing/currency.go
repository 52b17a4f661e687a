package pricing

import "golang.org/x/text/currency"

type pair struct {
	from currency.Unit
	to   currency.Unit
}

// ConversionRates holds directed rates. Reverse pairs are not derived.
var ConversionRates = map[pair]float64{
	{currency.USD, currency.EUR}: 0.9,
	{currency.USD, currency.GBP}: 0.77,
	{currency.EUR, currency.USD}: 1.1,
	{currency.EUR, currency.GBP}: 0.85,
	{currency.GBP, currency.USD}: 1.3,
	{currency.GBP, currency.EUR}: 1.17,
}

// Convert returns the converted amount and the rate used. Pairs without a
// known rate convert 1:1.
func Convert(from currency.Unit, to currency.Unit, amount float64) (float64, float64) {
	if from == to {
		return amount, 1.0
	}

	rate, ok := ConversionRates[pair{from: from, to: to}]
	if !ok {
		rate = 1.0
	}

	return amount * rate, rate
}
