package httperror

import (
	"bitbucket.org/crgw/hotel-avail/internal/schema"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// HandleError logs err through the request logger and aborts with the error
// envelope.
func HandleError(c *gin.Context, code int, message string, err error) {
	if value, ok := c.Get("logger"); ok {
		if logger, ok := value.(*zerolog.Logger); ok {
			logger.Warn().
				Err(err).
				Int("code", code).
				Msg(message)
		}
	}

	c.AbortWithStatusJSON(code, schema.NewErrorResponse(message))
}
