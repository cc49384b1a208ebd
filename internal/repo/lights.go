package repo

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/trafficsim/trafficlight-go/internal/ctrl"
	"github.com/trafficsim/trafficlight-go/internal/entity"
)

var _ ctrl.LightRepository = &Lights{}

type Lights struct {
	mutex    sync.RWMutex
	entities map[entity.LightId]ctrl.Signal
}

func NewLights() *Lights {
	return &Lights{
		entities: make(map[entity.LightId]ctrl.Signal),
	}
}

// List returns the lights ordered by id.
func (r *Lights) List(ctx context.Context) ([]ctrl.Signal, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	signals := make([]ctrl.Signal, 0, len(r.entities))
	for _, signal := range r.entities {
		signals = append(signals, signal)
	}

	slices.SortFunc(signals, func(a, b ctrl.Signal) int {
		return cmp.Compare(a.Id(), b.Id())
	})

	return signals, nil
}

func (r *Lights) Find(ctx context.Context, id entity.LightId) (ctrl.Signal, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	signal, ok := r.entities[id]
	if !ok {
		return nil, entity.ErrLightNotFound
	}

	return signal, nil
}

func (r *Lights) Save(ctx context.Context, signal ctrl.Signal) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.entities[signal.Id()] = signal
}
