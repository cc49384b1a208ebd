package daemon

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/trafficsim/trafficlight-go/internal/config"
	"github.com/trafficsim/trafficlight-go/internal/ctrl"
	"golang.org/x/sync/errgroup"
)

type Daemon struct {
	config       *config.Config
	lights       ctrl.LightRepository
	bootCtrl     *ctrl.BootstrapController
	cycleCtrl    *ctrl.CycleController
	observerCtrl *ctrl.ObserverController
	statusCtrl   *ctrl.StatusController
	logger       zerolog.Logger
}

func New(
	config *config.Config,
	lights ctrl.LightRepository,
	boot *ctrl.BootstrapController,
	cycle *ctrl.CycleController,
	observer *ctrl.ObserverController,
	status *ctrl.StatusController,
	logger *zerolog.Logger) *Daemon {
	return &Daemon{
		config:       config,
		lights:       lights,
		bootCtrl:     boot,
		cycleCtrl:    cycle,
		observerCtrl: observer,
		statusCtrl:   status,
		logger:       logger.With().Str("component", "daemon").Logger(),
	}
}

// Execute runs the daemon in the mode selected by the configuration.
func (d *Daemon) Execute(ctx context.Context) error {
	if d.config.Oneshot {
		return d.RunOneshot(ctx)
	}

	return d.Run(ctx)
}

func (d *Daemon) Run(ctx context.Context) error {
	daemonCtx, cancel := context.WithCancel(ctx)

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM)

	defer func() {
		signal.Stop(signalChan)
		close(signalChan)
		cancel()
	}()

	d.bootCtrl.Execute(daemonCtx)
	d.cycleCtrl.Execute(daemonCtx)

	signals, err := d.lights.List(daemonCtx)
	if err != nil {
		return err
	}

	group, groupCtx := errgroup.WithContext(daemonCtx)
	for _, s := range signals {
		for i := 0; i < d.config.Observers; i++ {
			group.Go(func() error {
				return d.observerCtrl.Run(groupCtx, s)
			})
		}
	}

	d.logger.Info().
		Int("lights", len(signals)).
		Int("observers", d.config.Observers).
		Msg("daemon started")

	var statusTick <-chan time.Time
	if d.config.StatusInterval > 0 {
		ticker := time.NewTicker(d.config.StatusInterval)
		defer ticker.Stop()
		statusTick = ticker.C
	}

	groupDone := make(chan struct{})
	go func() {
		<-groupCtx.Done()
		close(groupDone)
	}()

loop:
	for {
		select {
		case <-daemonCtx.Done():
			break loop
		case <-signalChan:
			break loop
		case <-groupDone:
			break loop
		case <-statusTick:
			d.statusCtrl.Execute(daemonCtx)
		}
	}

	d.logger.Info().Msg("shutting down")
	d.cycleCtrl.Shutdown(context.Background())

	return group.Wait()
}

// RunOneshot starts every light, waits until each one shows the configured
// oneshot phase and stops them again.
func (d *Daemon) RunOneshot(ctx context.Context) error {
	phase, err := d.config.TargetPhase()
	if err != nil {
		return err
	}

	d.logger.Info().Stringer("phase", phase).Msg("running in oneshot mode")

	d.bootCtrl.Execute(ctx)
	d.cycleCtrl.Execute(ctx)
	defer d.cycleCtrl.Shutdown(context.Background())

	signals, err := d.lights.List(ctx)
	if err != nil {
		return err
	}

	group, groupCtx := errgroup.WithContext(ctx)
	for _, s := range signals {
		group.Go(func() error {
			return d.observerCtrl.Await(groupCtx, s, phase)
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	d.statusCtrl.Execute(ctx)
	d.logger.Info().Msg("oneshot mode completed")

	return nil
}
