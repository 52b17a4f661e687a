package slowlog

import (
	"bytes"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	current time.Time
}

func (f *fakeClock) now() time.Time {
	return f.current
}

func (f *fakeClock) advance(d time.Duration) {
	f.current = f.current.Add(d)
}

func TestSlowLog(t *testing.T) {
	t.Run("should measure breakpoints", func(t *testing.T) {
		tests := []struct {
			name          string
			logic         func(slowLog Logger, clock *fakeClock) []time.Duration
			expectedTimes []time.Duration
		}{
			{
				name: "single breakpoint",
				logic: func(slowLog Logger, clock *fakeClock) []time.Duration {
					slowLog.Start("parse")
					clock.advance(time.Millisecond)
					return []time.Duration{slowLog.Stop("parse")}
				},
				expectedTimes: []time.Duration{time.Millisecond},
			},
			{
				name: "nested breakpoints",
				logic: func(slowLog Logger, clock *fakeClock) []time.Duration {
					slowLog.Start("request")
					clock.advance(time.Millisecond)

					slowLog.Start("validate")
					clock.advance(time.Millisecond)
					inner := slowLog.Stop("validate")

					clock.advance(time.Millisecond)
					outer := slowLog.Stop("request")

					return []time.Duration{inner, outer}
				},
				expectedTimes: []time.Duration{time.Millisecond, 3 * time.Millisecond},
			},
			{
				name: "restarted breakpoint",
				logic: func(slowLog Logger, clock *fakeClock) []time.Duration {
					slowLog.Start("same")
					clock.advance(3 * time.Millisecond)
					slowLog.Start("same")
					clock.advance(time.Millisecond)

					return []time.Duration{slowLog.Stop("same")}
				},
				expectedTimes: []time.Duration{time.Millisecond},
			},
			{
				name: "unknown breakpoint",
				logic: func(slowLog Logger, clock *fakeClock) []time.Duration {
					return []time.Duration{slowLog.Stop("never started")}
				},
				expectedTimes: []time.Duration{0},
			},
		}

		for _, test := range tests {
			t.Run(test.name, func(t *testing.T) {
				out := &bytes.Buffer{}
				log := zerolog.New(out)
				clock := &fakeClock{current: time.Date(2025, 10, 16, 9, 0, 0, 0, time.UTC)}

				slowLog := CreateLogger(&log, WithClock(clock.now))

				times := test.logic(slowLog, clock)
				assert.Empty(t, slowLog.started)
				assert.Equal(t, test.expectedTimes, times)
			})
		}
	})

	t.Run("should log at debug below the threshold", func(t *testing.T) {
		out := &bytes.Buffer{}
		log := zerolog.New(out)
		clock := &fakeClock{current: time.Date(2025, 10, 16, 9, 0, 0, 0, time.UTC)}

		slowLog := CreateLogger(&log, WithClock(clock.now), WithThreshold(10*time.Millisecond))
		slowLog.Start("avail:parse")
		clock.advance(time.Millisecond)
		slowLog.Stop("avail:parse")

		assert.Contains(t, out.String(), `"level":"debug"`)
		assert.Contains(t, out.String(), `"label":"slowlog"`)
		assert.Contains(t, out.String(), `"breakpoint":"avail:parse"`)
	})

	t.Run("should warn at or above the threshold", func(t *testing.T) {
		out := &bytes.Buffer{}
		log := zerolog.New(out)
		clock := &fakeClock{current: time.Date(2025, 10, 16, 9, 0, 0, 0, time.UTC)}

		slowLog := CreateLogger(&log, WithClock(clock.now), WithThreshold(10*time.Millisecond))
		slowLog.Start("avail:validate")
		clock.advance(20 * time.Millisecond)
		slowLog.Stop("avail:validate")

		assert.Contains(t, out.String(), `"level":"warn"`)
		assert.Contains(t, out.String(), `"duration":0.02`)
	})

	t.Run("should never warn with a zero threshold", func(t *testing.T) {
		out := &bytes.Buffer{}
		log := zerolog.New(out)
		clock := &fakeClock{current: time.Date(2025, 10, 16, 9, 0, 0, 0, time.UTC)}

		slowLog := CreateLogger(&log, WithClock(clock.now), WithThreshold(0))
		slowLog.Start("avail:request")
		clock.advance(time.Hour)
		slowLog.Stop("avail:request")

		assert.Contains(t, out.String(), `"level":"debug"`)
	})
}
