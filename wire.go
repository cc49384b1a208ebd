//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"
	"github.com/trafficsim/trafficlight-go/internal/config"
	"github.com/trafficsim/trafficlight-go/internal/ctrl"
	"github.com/trafficsim/trafficlight-go/internal/cycle"
	"github.com/trafficsim/trafficlight-go/internal/daemon"
	"github.com/trafficsim/trafficlight-go/internal/logger"
	"github.com/trafficsim/trafficlight-go/internal/repo"
)

func setup() (*daemon.Daemon, error) {
	wire.Build(
		config.Load,
		provideCycleConfig,
		cycle.DefaultSet,
		logger.DefaultSet,
		repo.DefaultSet,
		ctrl.DefaultSet,
		daemon.New,
	)

	return nil, nil
}

func provideCycleConfig(config *config.Config) cycle.Config {
	return config.CycleConfig()
}
