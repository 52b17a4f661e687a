package availability

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"bitbucket.org/crgw/hotel-avail/internal/pricing"
	"bitbucket.org/crgw/hotel-avail/internal/schema"
	"bitbucket.org/crgw/hotel-avail/internal/tools/slowlog"
	"bitbucket.org/crgw/hotel-avail/internal/validation"
	"bitbucket.org/crgw/hotel-avail/internal/xmldoc"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/rs/zerolog"
)

const (
	DefaultHandshake  = "my_secret_handshake"
	InvalidXMLMessage = "Invalid XML format."
)

// HandshakeError is a failed integrity check. Message is returned to the
// caller verbatim.
type HandshakeError struct {
	Message string
}

func (e *HandshakeError) Error() string {
	return e.Message
}

var ErrHandshake = &HandshakeError{Message: "Secret handshake verification failed."}

type Option func(p *Pipeline)

// WithClock replaces time.Now, used for the stay window checks.
func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) {
		p.now = now
	}
}

func WithHandshake(handshake string) Option {
	return func(p *Pipeline) {
		p.handshake = handshake
	}
}

// Pipeline turns an AvailRQ document into a single simulated offer. It holds
// no per request state and is safe for concurrent use.
type Pipeline struct {
	now       func() time.Time
	handshake string
}

func New(options ...Option) *Pipeline {
	p := &Pipeline{
		now:       time.Now,
		handshake: DefaultHandshake,
	}

	for _, option := range options {
		option(p)
	}

	return p
}

// Validate runs every rule in order and stops at the first failure.
func (p *Pipeline) Validate(doc *xmldoc.Document) (schema.AvailRequest, error) {
	request := schema.AvailRequest{
		TimeoutMilliseconds: xmldoc.ExtractTimeout(doc),
		Language:            validation.Language(doc),
	}

	var err error

	request.OptionsQuota, err = validation.OptionsQuota(doc)
	if err != nil {
		return request, err
	}

	request.Credentials, err = validation.RequiredParameters(doc)
	if err != nil {
		return request, err
	}

	request.SearchType, err = validation.SearchType(doc)
	if err != nil {
		return request, err
	}

	request.Stay, err = validation.Dates(doc, p.now())
	if err != nil {
		return request, err
	}

	request.Currency = validation.Currency(doc)
	request.Market = validation.Market(doc)

	request.Rooms, err = validation.Rooms(doc)
	if err != nil {
		return request, err
	}

	return request, nil
}

// Evaluate parses, validates and prices text. Errors are *xmldoc.ParseError,
// *validation.ValidationError or ErrHandshake.
func (p *Pipeline) Evaluate(text string, logger *zerolog.Logger) (schema.Offers, error) {
	slowLog := slowlog.CreateLogger(logger)

	slowLog.Start("avail:parse")
	doc, err := xmldoc.Parse(text)
	slowLog.Stop("avail:parse")

	if err != nil {
		logger.Info().
			Str("label", "avail").
			Err(err).
			Msg("Rejected malformed request")
		return nil, err
	}

	slowLog.Start("avail:validate")
	request, err := p.Validate(doc)
	slowLog.Stop("avail:validate")

	if err != nil {
		logger.Info().
			Str("label", "avail").
			Str("reason", err.Error()).
			Msg("Rejected request")
		return nil, err
	}

	logger.Debug().
		Str("label", "avail").
		Int("timeoutMilliseconds", request.TimeoutMilliseconds).
		Str("language", request.Language.String()).
		Int("optionsQuota", request.OptionsQuota).
		Int("companyId", request.Credentials.CompanyID).
		Str("searchType", string(request.SearchType)).
		Str("startDate", request.Stay.Start.Format(openapi_types.DateFormat)).
		Int("nights", request.Stay.Nights()).
		Str("currency", request.Currency.String()).
		Str("market", request.Market).
		Int("rooms", len(request.Rooms)).
		Msg("Validated request")

	offer := pricing.SimulateOffer(request.Currency, request.Market)

	if p.handshake != DefaultHandshake {
		logger.Error().
			Str("label", "avail").
			Msg("Handshake mismatch")
		return nil, ErrHandshake
	}

	return schema.Offers{offer}, nil
}

// ErrorMessage is the text put into the error envelope.
func ErrorMessage(err error) string {
	var parseErr *xmldoc.ParseError
	if errors.As(err, &parseErr) {
		return InvalidXMLMessage
	}

	var validationErr *validation.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Message
	}

	return err.Error()
}

// Envelope maps an evaluation result to a status code and response body.
func Envelope(offers schema.Offers, err error) (int, any) {
	if err != nil {
		if errors.Is(err, ErrHandshake) {
			return http.StatusInternalServerError, schema.NewErrorResponse(ErrorMessage(err))
		}

		return http.StatusBadRequest, schema.NewErrorResponse(ErrorMessage(err))
	}

	return http.StatusOK, offers
}

// Process renders the envelope for text as a string. Offers are indented,
// errors are a single line with a space after the key separator.
func (p *Pipeline) Process(text string, logger *zerolog.Logger) string {
	offers, err := p.Evaluate(text, logger)
	if err != nil {
		message, _ := json.Marshal(ErrorMessage(err))
		return fmt.Sprintf(`{"error": %s}`, message)
	}

	body, _ := json.MarshalIndent(offers, "", "  ")
	return string(body)
}
