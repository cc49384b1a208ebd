package ctrl

import (
	"context"

	"github.com/rs/zerolog"
)

type StatusController struct {
	lights LightRepository
	logger zerolog.Logger
}

func NewStatusController(lights LightRepository, logger *zerolog.Logger) *StatusController {
	return &StatusController{
		lights: lights,
		logger: logger.With().Str("controller", "status").Logger(),
	}
}

// Execute logs the current phase of every light.
func (c *StatusController) Execute(ctx context.Context) {
	signals, err := c.lights.List(ctx)
	if err != nil {
		c.logger.Error().Err(err).Msg("failed to list lights")
		return
	}

	for _, signal := range signals {
		c.logger.Info().
			Stringer("light", signal.Id()).
			Stringer("phase", signal.CurrentPhase()).
			Int("pending", signal.Pending()).
			Msg("traffic light status")
	}
}
