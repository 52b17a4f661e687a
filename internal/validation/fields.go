package validation

import (
	"strconv"
	"strings"

	"bitbucket.org/crgw/hotel-avail/internal/schema"
	"bitbucket.org/crgw/hotel-avail/internal/tools/converting"
	"bitbucket.org/crgw/hotel-avail/internal/xmldoc"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

func trimmedText(doc *xmldoc.Document, path string) string {
	return strings.TrimSpace(converting.Unwrap(doc.ChildText(path)))
}

// Language never fails, unknown codes fall back to DefaultLanguage.
func Language(doc *xmldoc.Document) language.Tag {
	tag, ok := AllowedLanguages[trimmedText(doc, "source/languageCode")]
	if !ok {
		return AllowedLanguages[DefaultLanguage]
	}

	return tag
}

func OptionsQuota(doc *xmldoc.Document) (int, error) {
	text := converting.Unwrap(doc.ChildText("optionsQuota"))
	if !converting.IsDigits(text) {
		return DefaultOptionsQuota, nil
	}

	// only overflow can fail here, which is above the maximum as well
	quota, err := strconv.Atoi(text)
	if err != nil || quota > MaxOptionsQuota {
		return 0, ErrOptionsQuotaTooHigh
	}

	return quota, nil
}

func RequiredParameters(doc *xmldoc.Document) (schema.Credentials, error) {
	parameter := doc.Find("Configuration/Parameters/Parameter")
	if parameter == nil {
		return schema.Credentials{}, ErrMissingConfiguration
	}

	password := converting.Unwrap(parameter.Attr("password"))
	username := converting.Unwrap(parameter.Attr("username"))
	companyID := converting.Unwrap(parameter.Attr("CompanyID"))

	if password == "" || username == "" || companyID == "" {
		return schema.Credentials{}, ErrMissingRequiredParams
	}

	id, err := strconv.Atoi(strings.TrimSpace(companyID))
	if err != nil {
		return schema.Credentials{}, ErrCompanyIDNotInteger
	}

	return schema.Credentials{
		Password:  password,
		Username:  username,
		CompanyID: id,
	}, nil
}

// SearchType only checks destinations for Single searches. Unknown types are
// passed through untouched.
func SearchType(doc *xmldoc.Document) (schema.SearchType, error) {
	searchType := schema.SearchType(trimmedText(doc, "SearchType"))
	if searchType == "" {
		searchType = schema.SearchTypeMultiple
	}

	if searchType == schema.SearchTypeSingle {
		destinations := doc.Find("AvailDestinations")
		if destinations == nil || len(destinations.Children()) != 1 {
			return "", ErrSingleSearchDestinations
		}
	}

	return searchType, nil
}

// Currency never fails, unsupported codes fall back to DefaultCurrency.
func Currency(doc *xmldoc.Document) currency.Unit {
	unit, ok := AllowedCurrencies[trimmedText(doc, "Currency")]
	if !ok {
		return AllowedCurrencies[DefaultCurrency]
	}

	return unit
}

// Market derives the market from Nationality. Nationalities outside of
// AllowedNationalities degrade to DefaultMarket instead of failing.
func Market(doc *xmldoc.Document) string {
	nationality := trimmedText(doc, "Nationality")
	if nationality == "" {
		nationality = DefaultNationality
	}

	if !AllowedNationalities[nationality] {
		return DefaultMarket
	}

	return nationality
}
