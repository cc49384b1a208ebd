package ctrl_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/trafficsim/trafficlight-go/internal/config"
	"github.com/trafficsim/trafficlight-go/internal/ctrl"
	mock "github.com/trafficsim/trafficlight-go/internal/ctrl/mock"
	"github.com/trafficsim/trafficlight-go/internal/cycle"
	"github.com/trafficsim/trafficlight-go/internal/entity"
	gomock "go.uber.org/mock/gomock"
)

func TestBootstrap_CreatesLights(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockLights := mock.NewMockLightRepository(mockCtrl)
	logger := zerolog.Nop()
	cfg := &config.Config{
		Lights:       3,
		PollInterval: time.Millisecond,
	}

	var saved []ctrl.Signal
	for i := 1; i <= 3; i++ {
		mockLights.EXPECT().Find(gomock.Any(), entity.LightId(i)).Return(nil, entity.ErrLightNotFound)
	}
	mockLights.EXPECT().Save(gomock.Any(), gomock.Any()).Times(3).Do(func(_ context.Context, signal ctrl.Signal) {
		saved = append(saved, signal)
	})

	bootstrap := ctrl.NewBootstrapController(cfg, cycle.Fixed(time.Second), mockLights, &logger)
	bootstrap.Execute(context.TODO())

	if len(saved) != 3 {
		t.Fatalf("Expected 3 lights saved, got %d", len(saved))
	}

	for i, signal := range saved {
		if signal.Id() != entity.LightId(i+1) {
			t.Errorf("Expected light %d, got %s", i+1, signal.Id())
		}
		if signal.CurrentPhase() != entity.PhaseRed {
			t.Errorf("Expected new light to be red, got %s", signal.CurrentPhase())
		}
		signal.Stop()
	}
}

func TestBootstrap_SkipsExisting(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockLights := mock.NewMockLightRepository(mockCtrl)
	existing := mock.NewMockSignal(mockCtrl)
	logger := zerolog.Nop()
	cfg := &config.Config{Lights: 1}

	mockLights.EXPECT().Find(gomock.Any(), entity.LightId(1)).Return(existing, nil)

	bootstrap := ctrl.NewBootstrapController(cfg, cycle.Fixed(time.Second), mockLights, &logger)
	bootstrap.Execute(context.TODO())
}
