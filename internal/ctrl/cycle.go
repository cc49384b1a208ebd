package ctrl

import (
	"context"

	"github.com/rs/zerolog"
)

type CycleController struct {
	lights LightRepository
	logger zerolog.Logger
}

func NewCycleController(lights LightRepository, logger *zerolog.Logger) *CycleController {
	return &CycleController{
		lights: lights,
		logger: logger.With().Str("controller", "cycle").Logger(),
	}
}

// Execute starts every light. Lights keep cycling until ctx is done or
// Shutdown is called.
func (c *CycleController) Execute(ctx context.Context) {
	signals, err := c.lights.List(ctx)
	if err != nil {
		c.logger.Error().Err(err).Msg("failed to list lights")
		return
	}

	for _, signal := range signals {
		if err := signal.Start(ctx); err != nil {
			c.logger.Warn().Err(err).Stringer("light", signal.Id()).Msg("failed to start light")
			continue
		}
	}
}

// Shutdown stops every light, releasing observers blocked on them.
func (c *CycleController) Shutdown(ctx context.Context) {
	signals, err := c.lights.List(ctx)
	if err != nil {
		c.logger.Error().Err(err).Msg("failed to list lights")
		return
	}

	for _, signal := range signals {
		signal.Stop()
	}

	c.logger.Info().Int("lights", len(signals)).Msg("lights stopped")
}
