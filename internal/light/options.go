package light

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/trafficsim/trafficlight-go/internal/clock"
	"github.com/trafficsim/trafficlight-go/internal/cycle"
)

const DefaultPollInterval = time.Millisecond

type Option func(*Light)

func WithProvider(provider cycle.Provider) Option {
	return func(l *Light) {
		l.provider = provider
	}
}

func WithClock(c clock.Clock) Option {
	return func(l *Light) {
		l.clock = c
	}
}

// WithPollInterval sets how often the cycling loop checks the elapsed time.
// It bounds the timing error of each phase flip.
func WithPollInterval(d time.Duration) Option {
	return func(l *Light) {
		if d > 0 {
			l.pollInterval = d
		}
	}
}

// WithWaitPause makes WaitForPhase pause before every receive, limiting how
// fast an observer drains notifications. Zero disables the pause.
func WithWaitPause(d time.Duration) Option {
	return func(l *Light) {
		l.waitPause = d
	}
}

func WithLogger(logger *zerolog.Logger) Option {
	return func(l *Light) {
		l.logger = *logger
	}
}
