package slowlog

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// DefaultThreshold is the duration after which a breakpoint is reported as slow.
const DefaultThreshold = 250 * time.Millisecond

type Logger interface {
	Start(name string)
	Stop(name string) time.Duration
}

type Option func(s *slowLogger)

func WithThreshold(threshold time.Duration) Option {
	return func(s *slowLogger) {
		s.threshold = threshold
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *slowLogger) {
		s.now = now
	}
}

type slowLogger struct {
	log       *zerolog.Logger
	threshold time.Duration
	now       func() time.Time
	started   map[string]time.Time
	sync.Mutex
}

// Start opens a breakpoint. Starting a running name restarts it.
func (s *slowLogger) Start(name string) {
	s.Lock()
	s.started[name] = s.now()
	s.Unlock()
}

// Stop closes a breakpoint and reports its duration. Unknown names yield 0
// and are not logged.
func (s *slowLogger) Stop(name string) time.Duration {
	s.Lock()
	defer s.Unlock()

	start, ok := s.started[name]
	if !ok {
		return 0
	}
	delete(s.started, name)

	duration := s.now().Sub(start)

	event := s.log.Debug()
	if s.threshold > 0 && duration >= s.threshold {
		event = s.log.Warn().Dur("threshold", s.threshold)
	}

	event.
		Float64("duration", duration.Seconds()).
		Str("breakpoint", name).
		Msg("")

	return duration
}

func CreateLogger(log *zerolog.Logger, options ...Option) *slowLogger {
	logger := log.With().Str("label", "slowlog").Logger()

	s := &slowLogger{
		log:       &logger,
		threshold: DefaultThreshold,
		now:       time.Now,
		started:   make(map[string]time.Time),
	}

	for _, option := range options {
		option(s)
	}

	return s
}
