//go:generate mockgen -destination=./mock/mock_repository.go -package=mock_ctrl . LightRepository
package ctrl

import (
	"context"

	"github.com/trafficsim/trafficlight-go/internal/entity"
)

type LightRepository interface {
	List(ctx context.Context) ([]Signal, error)
	Find(ctx context.Context, id entity.LightId) (Signal, error)
	Save(ctx context.Context, signal Signal)
}
