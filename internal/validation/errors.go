package validation

// ValidationError is a broken business rule. Message is returned to the caller
// verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(msg string) *ValidationError {
	return &ValidationError{
		Message: msg,
	}
}

var (
	ErrOptionsQuotaTooHigh      = newValidationError("optionsQuota cannot be greater than 50.")
	ErrMissingConfiguration     = newValidationError("Missing Configuration Parameters.")
	ErrMissingRequiredParams    = newValidationError("Missing required parameters: password, username, or CompanyID.")
	ErrCompanyIDNotInteger      = newValidationError("CompanyID must be an integer.")
	ErrSingleSearchDestinations = newValidationError("For Single search type, exactly one AvailDestination is required.")
	ErrMissingDates             = newValidationError("Missing StartDate or EndDate.")
	ErrDateFormat               = newValidationError("Dates must be in dd/mm/yyyy format.")
	ErrStartDateTooSoon         = newValidationError("StartDate must be at least 2 days after today.")
	ErrStayTooShort             = newValidationError("The stay duration must be at least 3 nights.")
	ErrTooManyRooms             = newValidationError("Exceeded maximum allowed room count.")
	ErrTooManyGuests            = newValidationError("Exceeded maximum allowed guests per room.")
	ErrInvalidAge               = newValidationError("Invalid age value in Pax element.")
	ErrTooManyChildren          = newValidationError("Exceeded maximum children per room.")
	ErrChildrenWithoutAdult     = newValidationError("Each room with children must have at least one adult.")
)
