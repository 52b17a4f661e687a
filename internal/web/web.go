package web

import (
	"net/http"
	"time"

	"bitbucket.org/crgw/hotel-avail/internal/availability"
	"bitbucket.org/crgw/hotel-avail/internal/schema"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type RouterOptions struct {
	Production bool
	// OpenAPI is optional, /openapi.json answers 404 without it
	OpenAPI *openapi3.T
	Avail   availability.RouteOptions
}

func SetupRouter(log *zerolog.Logger, options RouterOptions) *gin.Engine {
	startTime := time.Now()

	if options.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.
		Use(StartRequest).
		Use(CorrelationId).
		Use(RegisterLogger(log)).
		Use(TraceLog).
		Use(PanicRecovery)

	router.GET("/status", func(c *gin.Context) {
		response := struct {
			Uptime float64 `json:"uptime"`
		}{
			Uptime: time.Since(startTime).Seconds(),
		}

		c.JSON(http.StatusOK, response)
	})

	router.GET("/openapi.json", func(c *gin.Context) {
		if options.OpenAPI == nil {
			c.JSON(http.StatusNotFound, schema.NewErrorResponse("OpenAPI document not loaded"))
			return
		}

		c.JSON(http.StatusOK, options.OpenAPI)
	})

	pprof.Register(router)

	availability.RegisterRoutes(router, options.Avail)

	return router
}
