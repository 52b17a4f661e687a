package web

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// CurrentTimeFunc Current time. Can be mocked for testing.
var CurrentTimeFunc = time.Now

func StartRequest(c *gin.Context) {
	c.Set("requestStartTime", CurrentTimeFunc())
}

func TraceLog(c *gin.Context) {
	// Finish all others and then write trace log
	c.Next()

	logger := c.MustGet("logger").(*zerolog.Logger)
	startTime := c.MustGet("requestStartTime").(time.Time)

	logger.Info().
		Str("label", "trace").
		Str("method", c.Request.Method).
		Str("url", c.Request.URL.Path).
		Int("code", c.Writer.Status()).
		Int64("bytesIn", c.Request.ContentLength).
		Int("bytesOut", c.Writer.Size()).
		Float64("duration", CurrentTimeFunc().Sub(startTime).Seconds()).
		Msg("")
}
