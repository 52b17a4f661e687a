package web

import (
	"fmt"
	"net/http"

	"bitbucket.org/crgw/hotel-avail/internal/tools/httperror"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const unknownPanicMessage = "Unknown error, panic recovered"

func panicMessage(recovered any) string {
	switch value := recovered.(type) {
	case string:
		return value
	case error:
		return value.Error()
	default:
		return unknownPanicMessage
	}
}

// PanicRecovery answers 500 with the error envelope and writes the stack
// through the request logger.
func PanicRecovery(c *gin.Context) {
	logger := c.MustGet("logger").(*zerolog.Logger)

	gin.CustomRecoveryWithWriter(&recoveryWriter{logger: logger}, func(c *gin.Context, recovered any) {
		httperror.HandleError(c, http.StatusInternalServerError, panicMessage(recovered), fmt.Errorf("panic: %v", recovered))
	})(c)
}

type recoveryWriter struct {
	logger *zerolog.Logger
}

func (r *recoveryWriter) Write(p []byte) (n int, err error) {
	r.logger.
		Error().
		Str("label", "panic").
		Msg(string(p))

	return len(p), nil
}
