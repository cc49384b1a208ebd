package repo_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/trafficsim/trafficlight-go/internal/entity"
	"github.com/trafficsim/trafficlight-go/internal/light"
	"github.com/trafficsim/trafficlight-go/internal/repo"
)

func Test_LightRepository_Find(t *testing.T) {
	l := light.New(1)
	t.Cleanup(l.Stop)

	lights := repo.NewLights()
	lights.Save(context.TODO(), l)

	tests := []struct {
		name    string
		lightId entity.LightId
		wantErr bool
	}{
		{
			name:    "find light",
			lightId: 1,
			wantErr: false,
		},
		{
			name:    "find non-existent light",
			lightId: 2,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			signal, err := lights.Find(context.TODO(), tt.lightId)
			if (err != nil) != tt.wantErr {
				t.Errorf("LightRepository.Find() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if tt.wantErr {
				if !errors.Is(err, entity.ErrLightNotFound) {
					t.Errorf("LightRepository.Find() error = %v, want %v", err, entity.ErrLightNotFound)
				}
				return
			}

			if signal.Id() != tt.lightId {
				t.Errorf("Expected light %s, got %s", tt.lightId, signal.Id())
			}
		})
	}
}

func Test_LightRepository_ListOrdered(t *testing.T) {
	lights := repo.NewLights()
	for _, id := range []entity.LightId{3, 1, 2} {
		l := light.New(id)
		t.Cleanup(l.Stop)
		lights.Save(context.TODO(), l)
	}

	signals, err := lights.List(context.TODO())
	if err != nil {
		t.Fatalf("LightRepository.List() error = %v", err)
	}

	if len(signals) != 3 {
		t.Fatalf("Expected 3 lights, got %d", len(signals))
	}

	for i, signal := range signals {
		if signal.Id() != entity.LightId(i+1) {
			t.Errorf("Expected light %d at index %d, got %s", i+1, i, signal.Id())
		}
	}
}

func Test_LightRepository_ListExtremeIds(t *testing.T) {
	ids := []entity.LightId{math.MaxInt, math.MinInt, 0}

	lights := repo.NewLights()
	for _, id := range ids {
		l := light.New(id)
		t.Cleanup(l.Stop)
		lights.Save(context.TODO(), l)
	}

	signals, err := lights.List(context.TODO())
	if err != nil {
		t.Fatalf("LightRepository.List() error = %v", err)
	}

	want := []entity.LightId{math.MinInt, 0, math.MaxInt}
	if len(signals) != len(want) {
		t.Fatalf("Expected %d lights, got %d", len(want), len(signals))
	}

	for i, signal := range signals {
		if signal.Id() != want[i] {
			t.Errorf("Expected light %s at index %d, got %s", want[i], i, signal.Id())
		}
	}
}
