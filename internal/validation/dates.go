package validation

import (
	"strings"
	"time"

	"bitbucket.org/crgw/hotel-avail/internal/schema"
	"bitbucket.org/crgw/hotel-avail/internal/xmldoc"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

func calendarDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func daysBetween(from time.Time, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

// Dates validates the stay window against today's calendar date. Blank dates
// count as missing.
func Dates(doc *xmldoc.Document, now time.Time) (schema.Stay, error) {
	startText := doc.ChildText("StartDate")
	endText := doc.ChildText("EndDate")

	if startText == nil || endText == nil ||
		strings.TrimSpace(*startText) == "" || strings.TrimSpace(*endText) == "" {
		return schema.Stay{}, ErrMissingDates
	}

	start, err := time.Parse(DateLayout, strings.TrimSpace(*startText))
	if err != nil {
		return schema.Stay{}, ErrDateFormat
	}

	end, err := time.Parse(DateLayout, strings.TrimSpace(*endText))
	if err != nil {
		return schema.Stay{}, ErrDateFormat
	}

	if daysBetween(calendarDate(now), start) < MinDaysBeforeStart {
		return schema.Stay{}, ErrStartDateTooSoon
	}

	if daysBetween(start, end) < MinNights {
		return schema.Stay{}, ErrStayTooShort
	}

	return schema.Stay{
		Start: openapi_types.Date{Time: start},
		End:   openapi_types.Date{Time: end},
	}, nil
}
