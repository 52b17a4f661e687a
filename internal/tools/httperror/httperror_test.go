package httperror

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestHandleError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	out := &bytes.Buffer{}
	log := zerolog.New(out)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("logger", &log)
	})
	router.GET("/fail", func(c *gin.Context) {
		HandleError(c, http.StatusNotFound, "Nothing here", assert.AnError)
	}, func(c *gin.Context) {
		assert.Fail(t, "Should abort the chain")
	})

	response := httptest.NewRecorder()
	request, _ := http.NewRequest(http.MethodGet, "/fail", nil)
	router.ServeHTTP(response, request)

	assert.Equal(t, http.StatusNotFound, response.Code)
	assert.JSONEq(t, `{"error":"Nothing here"}`, response.Body.String())
	assert.Contains(t, out.String(), "Nothing here")
}
