//go:generate mockgen -destination=./mock/mock_signal.go -package=mock_ctrl . Signal
package ctrl

import (
	"context"

	"github.com/trafficsim/trafficlight-go/internal/entity"
	"github.com/trafficsim/trafficlight-go/internal/light"
)

var _ Signal = &light.Light{}

// Signal is a traffic light as seen by the controllers.
type Signal interface {
	Id() entity.LightId
	Start(ctx context.Context) error
	Stop()
	CurrentPhase() entity.Phase
	Pending() int
	WaitForGreen(ctx context.Context) error
	AwaitPhase(ctx context.Context, phase entity.Phase) error
}
