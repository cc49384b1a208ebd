package repo

import (
	"github.com/google/wire"
	"github.com/trafficsim/trafficlight-go/internal/ctrl"
)

var DefaultSet = wire.NewSet(
	NewLights,
	wire.Bind(new(ctrl.LightRepository), new(*Lights)),
)
