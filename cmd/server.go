//go:build !integration

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bitbucket.org/crgw/hotel-avail/internal/availability"
	"bitbucket.org/crgw/hotel-avail/internal/config"
	"bitbucket.org/crgw/hotel-avail/internal/tools/caching"
	"bitbucket.org/crgw/hotel-avail/internal/tools/logger"
	"bitbucket.org/crgw/hotel-avail/internal/tools/ratelimit"
	"bitbucket.org/crgw/hotel-avail/internal/tools/redisfactory"
	"bitbucket.org/crgw/hotel-avail/internal/web"
	"github.com/rs/zerolog"
)

const shutdownTimeout = 10 * time.Second

func serverApp(httpServer *http.Server, logger *zerolog.Logger) int {
	shutdown := false
	done := make(chan error, 1)
	stop := make(chan os.Signal, 1)
	go func() {
		logger.
			Info().
			Msg("Listening on address " + httpServer.Addr)
		done <- httpServer.ListenAndServe()
	}()
	go func() {
		<-stop
		shutdown = true
		logger.Info().Msg("Shutting down server...")

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = httpServer.Shutdown(ctx)
	}()

	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	err := <-done
	if err != nil && !shutdown {
		logger.
			Error().
			Err(err).
			Msg("Server failed")
		return 1
	}
	return 0
}

func run() int {
	cfg, err := config.Load(".env")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	log := logger.New(cfg.LogLevel)

	redisFactory, err := redisfactory.New(cfg.ResponsesCacheRedisURI)
	if err != nil {
		log.Error().Err(err).Msg("Invalid responses cache redis uri")
		return 1
	}
	defer redisFactory.Close()

	doc, err := web.LoadOpenAPI(context.Background(), cfg.OpenAPILocation)
	if err != nil {
		log.Warn().
			Err(err).
			Str("location", cfg.OpenAPILocation).
			Msg("OpenAPI document not loaded")
	}

	avail := availability.RouteOptions{
		Pipeline: availability.New(availability.WithHandshake(cfg.Handshake)),
		CacheTTL: cfg.ResponsesCacheTTL,
	}
	if cfg.CacheEnabled() {
		avail.Cache = caching.NewRedisCache(redisFactory.ResponsesCacheClient())
	}
	if cfg.RateLimitEnabled() {
		avail.RateLimit = ratelimit.NewClientLimiter(ratelimit.Config{
			RequestsPerSecond: cfg.RateLimitRPS,
			BurstSize:         cfg.RateLimitBurst,
		}).Middleware
	}

	appRouter := web.SetupRouter(log, web.RouterOptions{
		Production: cfg.Production(),
		OpenAPI:    doc,
		Avail:      avail,
	})

	var host string
	if os.Getenv("TEST") == "true" {
		host = "localhost"
	}

	httpServer := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", host, cfg.Port),
		Handler:           appRouter,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return serverApp(httpServer, log)
}

func main() {
	os.Exit(run())
}
