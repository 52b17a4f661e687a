package validation

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

const (
	DefaultLanguage = "en"

	DefaultOptionsQuota = 20
	MaxOptionsQuota     = 50

	DefaultCurrency = "EUR"

	DefaultNationality = "US"
	DefaultMarket      = "ES"

	MaxRooms            = 5
	MaxGuestsPerRoom    = 4
	MaxChildrenPerRoom  = 2
	MaxChildAge         = 5
	MinDaysBeforeStart  = 2
	MinNights           = 3
	DateLayout          = "2/1/2006"
	DefaultPassengerAge = "0"
)

var (
	AllowedLanguages = map[string]language.Tag{
		"en": language.English,
		"fr": language.French,
		"de": language.German,
		"es": language.Spanish,
	}

	AllowedCurrencies = map[string]currency.Unit{
		"EUR": currency.EUR,
		"USD": currency.USD,
		"GBP": currency.GBP,
	}

	AllowedNationalities = map[string]bool{
		"US": true,
		"GB": true,
		"CA": true,
	}
)
