package ctrl

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/trafficsim/trafficlight-go/internal/entity"
	"github.com/trafficsim/trafficlight-go/internal/light"
)

type ObserverController struct {
	logger zerolog.Logger
}

func NewObserverController(logger *zerolog.Logger) *ObserverController {
	return &ObserverController{
		logger: logger.With().Str("controller", "observer").Logger(),
	}
}

// Run waits for green at signal over and over, like a stream of vehicles
// queued at one light. It returns nil once the light stops or ctx is done.
func (c *ObserverController) Run(ctx context.Context, signal Signal) error {
	logger := c.observerLogger(signal)
	logger.Debug().Msg("waiting for green")

	for {
		err := signal.WaitForGreen(ctx)
		switch {
		case err == nil:
			logger.Info().Msg("traffic light has turned green")
		case errors.Is(err, light.ErrStopped), ctx.Err() != nil:
			logger.Debug().Msg("observer finished")
			return nil
		default:
			return err
		}
	}
}

// Await blocks until signal shows phase without consuming its
// notifications.
func (c *ObserverController) Await(ctx context.Context, signal Signal, phase entity.Phase) error {
	logger := c.observerLogger(signal)

	if err := signal.AwaitPhase(ctx, phase); err != nil {
		return err
	}

	logger.Info().Stringer("phase", phase).Msg("traffic light reached phase")
	return nil
}

func (c *ObserverController) observerLogger(signal Signal) zerolog.Logger {
	return c.logger.With().
		Stringer("light", signal.Id()).
		Stringer("observer", uuid.New()).
		Logger()
}
