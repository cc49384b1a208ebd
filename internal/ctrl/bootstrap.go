package ctrl

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/trafficsim/trafficlight-go/internal/config"
	"github.com/trafficsim/trafficlight-go/internal/cycle"
	"github.com/trafficsim/trafficlight-go/internal/entity"
	"github.com/trafficsim/trafficlight-go/internal/light"
)

type BootstrapController struct {
	config   *config.Config
	provider cycle.Provider
	lights   LightRepository
	logger   zerolog.Logger
	lightLog zerolog.Logger
}

func NewBootstrapController(config *config.Config, provider cycle.Provider, lights LightRepository, logger *zerolog.Logger) *BootstrapController {
	return &BootstrapController{
		config:   config,
		provider: provider,
		lights:   lights,
		logger:   logger.With().Str("controller", "bootstrap").Logger(),
		lightLog: logger.With().Str("component", "light").Logger(),
	}
}

// Execute creates the configured lights. Every light shares the cycle
// provider but draws its own duration when it starts.
func (c *BootstrapController) Execute(ctx context.Context) {
	for i := 1; i <= c.config.Lights; i++ {
		id := entity.LightId(i)
		if _, err := c.lights.Find(ctx, id); err == nil {
			c.logger.Debug().Stringer("light", id).Msg("light already exists")
			continue
		}

		c.lights.Save(ctx, light.New(
			id,
			light.WithProvider(c.provider),
			light.WithPollInterval(c.config.PollInterval),
			light.WithWaitPause(c.config.WaitPause),
			light.WithLogger(&c.lightLog),
		))
	}

	c.logger.Info().Int("lights", c.config.Lights).Msg("lights created")
}
