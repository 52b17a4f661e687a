package schema

import (
	openapi_types "github.com/oapi-codegen/runtime/types"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

type SearchType string

const (
	SearchTypeMultiple SearchType = "Multiple"
	SearchTypeSingle   SearchType = "Single"
)

type Credentials struct {
	Password  string
	Username  string
	CompanyID int
}

type Stay struct {
	Start openapi_types.Date `json:"start"`
	End   openapi_types.Date `json:"end"`
}

// Nights is the calendar day distance between start and end.
func (s Stay) Nights() int {
	return int(s.End.Time.Sub(s.Start.Time).Hours() / 24)
}

type Passenger struct {
	Age int `json:"age"`
}

type Room struct {
	Passengers []Passenger `json:"passengers"`
	Children   int         `json:"children"`
	Adults     int         `json:"adults"`
}

// AvailRequest is an AvailRQ document that passed every rule.
type AvailRequest struct {
	TimeoutMilliseconds int
	Language            language.Tag
	OptionsQuota        int
	Credentials         Credentials
	SearchType          SearchType
	Stay                Stay
	Currency            currency.Unit
	Market              string
	Rooms               []Room
}
