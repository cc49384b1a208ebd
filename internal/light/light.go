// Package light implements a traffic light whose phase is toggled by a
// background loop and observed through a blocking queue.
package light

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"github.com/trafficsim/trafficlight-go/internal/clock"
	"github.com/trafficsim/trafficlight-go/internal/cycle"
	"github.com/trafficsim/trafficlight-go/internal/entity"
	"github.com/trafficsim/trafficlight-go/internal/queue"
)

var (
	ErrAlreadyStarted = errors.New("traffic light already cycling")
	ErrStopped        = errors.New("traffic light stopped")
)

type Light struct {
	id    entity.LightId
	phase atomic.Uint32
	queue *queue.BlockingQueue[entity.Phase]

	provider     cycle.Provider
	clock        clock.Clock
	pollInterval time.Duration
	waitPause    time.Duration
	logger       zerolog.Logger

	// changed is closed and replaced on every phase flip.
	notifyMu sync.Mutex
	changed  chan struct{}

	mu       sync.Mutex
	started  bool
	cancel   context.CancelFunc
	done     chan struct{}
	stopped  chan struct{}
	stopOnce sync.Once
}

// New returns a red light that is not cycling yet.
func New(id entity.LightId, opts ...Option) *Light {
	l := &Light{
		id:           id,
		queue:        queue.New[entity.Phase](),
		provider:     cycle.NewUniform(cycle.DefaultMin, cycle.DefaultMax),
		clock:        clock.Real{},
		pollInterval: DefaultPollInterval,
		logger:       zerolog.Nop(),
		changed:      make(chan struct{}),
		done:         make(chan struct{}),
		stopped:      make(chan struct{}),
	}

	for _, opt := range opts {
		opt(l)
	}

	l.logger = l.logger.With().Stringer("light", id).Logger()
	l.phase.Store(uint32(entity.PhaseRed))
	l.logger.Info().Stringer("phase", entity.PhaseRed).Msg("traffic light created")

	return l
}

func (l *Light) Id() entity.LightId {
	return l.id
}

func (l *Light) CurrentPhase() entity.Phase {
	return entity.Phase(l.phase.Load())
}

// Pending reports how many phase notifications are queued and not yet
// received by a waiter.
func (l *Light) Pending() int {
	return l.queue.Len()
}

// Start launches the cycling loop. A light cycles at most once: later calls
// return ErrAlreadyStarted, or ErrStopped once the light has been stopped.
// The loop ends when ctx is done or Stop is called.
func (l *Light) Start(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	select {
	case <-l.stopped:
		return ErrStopped
	default:
	}

	if l.started {
		return ErrAlreadyStarted
	}

	loopCtx, cancel := context.WithCancel(ctx)
	l.started = true
	l.cancel = cancel

	cycleDuration := l.provider.Next()
	l.logger.Info().Stringer("cycle", cycleDuration).Msg("traffic light cycling")

	go l.cycleThroughPhases(loopCtx, cycleDuration, l.clock.Now())

	return nil
}

// Stop ends the cycling loop and releases every blocked observer. It waits
// for the loop to exit and is safe to call more than once.
func (l *Light) Stop() {
	l.mu.Lock()
	cancel := l.cancel
	l.terminate()
	l.mu.Unlock()

	if cancel != nil {
		cancel()
		<-l.done
	}
}

// Done is closed once the light is stopped.
func (l *Light) Done() <-chan struct{} {
	return l.stopped
}

// WaitForGreen blocks until a green phase is received from the light's
// queue. Red notifications are discarded.
func (l *Light) WaitForGreen(ctx context.Context) error {
	if err := l.WaitForPhase(ctx, entity.PhaseGreen); err != nil {
		return err
	}

	l.logger.Debug().Msg("traffic light has turned green")
	return nil
}

// WaitForPhase consumes phase notifications until one equals phase.
// Notifications are delivered to a single waiter each, so concurrent waiters
// compete for them; use AwaitPhase when several observers watch one light.
func (l *Light) WaitForPhase(ctx context.Context, phase entity.Phase) error {
	for {
		select {
		case <-l.stopped:
			return ErrStopped
		default:
		}

		if l.waitPause > 0 {
			if err := l.pause(ctx); err != nil {
				return err
			}
		}

		received, err := l.queue.Receive(ctx)
		if err != nil {
			if errors.Is(err, queue.ErrClosed) {
				return ErrStopped
			}
			return err
		}

		if received == phase {
			return nil
		}
	}
}

// AwaitPhase blocks until the light shows phase. It returns immediately if
// the light already does. Unlike WaitForPhase it does not consume queued
// notifications, so any number of observers can wait at once.
func (l *Light) AwaitPhase(ctx context.Context, phase entity.Phase) error {
	for {
		// grab the channel before reading the phase so a flip in between
		// still wakes us
		changed := l.phaseChanged()
		if l.CurrentPhase() == phase {
			return nil
		}

		select {
		case <-changed:
		case <-l.stopped:
			return ErrStopped
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (l *Light) cycleThroughPhases(ctx context.Context, cycleDuration time.Duration, lastUpdate time.Time) {
	defer close(l.done)
	defer l.terminate()

	ticker := time.NewTicker(l.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-l.stopped:
			return
		case <-ticker.C:
		}

		elapsed := l.clock.Since(lastUpdate)
		if elapsed < cycleDuration {
			continue
		}
		lastUpdate = lastUpdate.Add(elapsed)

		next := l.CurrentPhase().Toggle()
		l.phase.Store(uint32(next))
		l.queue.Send(next)
		l.notify()

		l.logger.Debug().Stringer("phase", next).Msg("traffic light toggled")
	}
}

func (l *Light) terminate() {
	l.stopOnce.Do(func() {
		close(l.stopped)
		l.queue.Close()
		l.logger.Info().Msg("traffic light stopped")
	})
}

func (l *Light) notify() {
	l.notifyMu.Lock()
	defer l.notifyMu.Unlock()

	close(l.changed)
	l.changed = make(chan struct{})
}

func (l *Light) phaseChanged() <-chan struct{} {
	l.notifyMu.Lock()
	defer l.notifyMu.Unlock()

	return l.changed
}

func (l *Light) pause(ctx context.Context) error {
	timer := time.NewTimer(l.waitPause)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-l.stopped:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}
