package availability

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"bitbucket.org/crgw/hotel-avail/internal/tools/caching"
	"bitbucket.org/crgw/hotel-avail/internal/tools/httperror"
	"bitbucket.org/crgw/hotel-avail/internal/tools/slowlog"
	"github.com/gin-gonic/gin"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/rs/zerolog"
)

const (
	DefaultCacheTTL     = time.Minute
	DefaultMaxBodyBytes = 1 << 20
	cacheHitHeader      = "x-avail-cache"
)

type Cache interface {
	Store(ctx context.Context, key string, value any, ttl time.Duration) error
	Fetch(ctx context.Context, key string, destination any) bool
}

type RouteOptions struct {
	Pipeline     *Pipeline
	// Cache is optional, nil evaluates every request
	Cache        Cache
	CacheTTL     time.Duration
	RateLimit    gin.HandlerFunc
	// MaxBodyBytes defaults to DefaultMaxBodyBytes
	MaxBodyBytes int64
}

type cachedEnvelope struct {
	Code int             `json:"code"`
	Body json.RawMessage `json:"body"`
}

// cacheKey is scoped to the calendar day, stay windows are relative to today.
func (o RouteOptions) cacheKey(body []byte) string {
	today := o.Pipeline.now().Format(openapi_types.DateFormat)
	return caching.Key(body, "avail", today)
}

func (o RouteOptions) fetchCached(ctx context.Context, key string, logger *zerolog.Logger) (*cachedEnvelope, bool) {
	if o.Cache == nil {
		return nil, false
	}

	var cached cachedEnvelope
	if !o.Cache.Fetch(ctx, key, &cached) {
		return nil, false
	}

	logger.Info().
		Str("label", "cache").
		Bool("hit", true).
		Str("key", key).
		Msg("Used cache response")

	return &cached, true
}

func (o RouteOptions) storeCached(ctx context.Context, key string, envelope cachedEnvelope, logger *zerolog.Logger) {
	if o.Cache == nil || envelope.Code == http.StatusInternalServerError {
		return
	}

	ttl := o.CacheTTL
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}

	err := o.Cache.Store(ctx, key, envelope, ttl)
	if err != nil {
		logger.Err(err).
			Str("label", "cache").
			Str("key", key).
			Msg("Unable to store the response")
	}
}

func RegisterRoutes(router *gin.Engine, options RouteOptions) {
	handlers := []gin.HandlerFunc{TapLogger}
	if options.RateLimit != nil {
		handlers = append([]gin.HandlerFunc{options.RateLimit}, handlers...)
	}

	router.POST("/avail",
		append(handlers, func(ctx *gin.Context) {
			logger := ctx.MustGet("logger").(*zerolog.Logger)

			slowLog := slowlog.CreateLogger(logger)
			slowLog.Start("avail:request")
			defer slowLog.Stop("avail:request")

			limit := options.MaxBodyBytes
			if limit <= 0 {
				limit = DefaultMaxBodyBytes
			}

			body, err := io.ReadAll(http.MaxBytesReader(ctx.Writer, ctx.Request.Body, limit))
			if err != nil {
				var tooLarge *http.MaxBytesError
				if errors.As(err, &tooLarge) {
					httperror.HandleError(ctx, http.StatusRequestEntityTooLarge, "Request body too large", err)
					return
				}

				httperror.HandleError(ctx, http.StatusBadRequest, "Failed to read request body", err)
				return
			}

			key := options.cacheKey(body)

			if cached, ok := options.fetchCached(ctx.Request.Context(), key, logger); ok {
				ctx.Header(cacheHitHeader, "hit")
				ctx.Data(cached.Code, gin.MIMEJSON, cached.Body)
				return
			}

			code, envelope := Envelope(options.Pipeline.Evaluate(string(body), logger))

			payload, err := json.Marshal(envelope)
			if err != nil {
				httperror.HandleError(ctx, http.StatusInternalServerError, "Failed rendering response", err)
				return
			}

			options.storeCached(ctx.Request.Context(), key, cachedEnvelope{Code: code, Body: payload}, logger)

			ctx.Data(code, gin.MIMEJSON, payload)
		})...,
	)
}
