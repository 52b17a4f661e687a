package availability

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// TapLogger tags the request logger with the route and a fresh operation id.
func TapLogger(c *gin.Context) {
	logger := c.MustGet("logger").(*zerolog.Logger)

	requestLogger := logger.
		With().
		Str("route", c.FullPath()).
		Str("operationId", uuid.New().String()).
		Logger()

	c.Set("logger", &requestLogger)
}
