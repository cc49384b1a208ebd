package light_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trafficsim/trafficlight-go/internal/clock"
	"github.com/trafficsim/trafficlight-go/internal/cycle"
	"github.com/trafficsim/trafficlight-go/internal/entity"
	"github.com/trafficsim/trafficlight-go/internal/light"
)

func newManualLight(t *testing.T) (*light.Light, *clock.Manual) {
	t.Helper()

	logger := zerolog.Nop()
	clk := clock.NewManual(time.Unix(0, 0))
	l := light.New(
		1,
		light.WithProvider(cycle.Fixed(time.Second)),
		light.WithClock(clk),
		light.WithLogger(&logger),
	)
	t.Cleanup(l.Stop)

	return l, clk
}

func TestNew_StartsRed(t *testing.T) {
	l := light.New(3)
	defer l.Stop()

	assert.Equal(t, entity.LightId(3), l.Id())
	assert.Equal(t, entity.PhaseRed, l.CurrentPhase())
}

func TestPending_CountsUnreceivedNotifications(t *testing.T) {
	l, clk := newManualLight(t)
	require.NoError(t, l.Start(context.Background()))

	assert.Equal(t, 0, l.Pending())

	clk.Advance(time.Second)
	require.Eventually(t, func() bool { return l.Pending() == 1 }, time.Second, time.Millisecond)

	clk.Advance(time.Second)
	require.Eventually(t, func() bool { return l.Pending() == 2 }, time.Second, time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	require.NoError(t, l.WaitForGreen(ctx))
	assert.Equal(t, 1, l.Pending())
}

func TestStart_SingleShot(t *testing.T) {
	l, _ := newManualLight(t)

	require.NoError(t, l.Start(context.Background()))
	assert.ErrorIs(t, l.Start(context.Background()), light.ErrAlreadyStarted)

	l.Stop()
	assert.ErrorIs(t, l.Start(context.Background()), light.ErrStopped)
}

func TestStart_ContextCancelStopsLight(t *testing.T) {
	l, _ := newManualLight(t)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, l.Start(ctx))
	cancel()

	select {
	case <-l.Done():
	case <-time.After(time.Second):
		t.Fatal("light did not stop after context cancellation")
	}

	assert.ErrorIs(t, l.WaitForGreen(context.Background()), light.ErrStopped)
}

func TestWaitForGreen_IgnoresRed(t *testing.T) {
	l, clk := newManualLight(t)
	require.NoError(t, l.Start(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result := make(chan error, 1)
	go func() { result <- l.WaitForGreen(ctx) }()

	select {
	case err := <-result:
		t.Fatalf("WaitForGreen() returned %v before the light turned green", err)
	case <-time.After(30 * time.Millisecond):
	}

	clk.Advance(time.Second)

	select {
	case err := <-result:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("WaitForGreen() did not return after the light turned green")
	}
	assert.Equal(t, entity.PhaseGreen, l.CurrentPhase())

	go func() { result <- l.WaitForGreen(ctx) }()

	clk.Advance(time.Second)
	require.Eventually(t, func() bool {
		return l.CurrentPhase() == entity.PhaseRed
	}, time.Second, time.Millisecond)

	select {
	case err := <-result:
		t.Fatalf("WaitForGreen() returned %v on a red notification", err)
	case <-time.After(30 * time.Millisecond):
	}

	clk.Advance(time.Second)

	select {
	case err := <-result:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("WaitForGreen() did not return after the second green")
	}
}

func TestWaitForGreen_RealClock(t *testing.T) {
	cycleDuration := 100 * time.Millisecond
	l := light.New(1, light.WithProvider(cycle.Fixed(cycleDuration)))
	defer l.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	start := time.Now()
	require.NoError(t, l.Start(ctx))
	require.NoError(t, l.WaitForGreen(ctx))

	assert.GreaterOrEqual(t, time.Since(start), cycleDuration)
}

func TestWaitForGreen_NeverStarted(t *testing.T) {
	l, _ := newManualLight(t)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	assert.ErrorIs(t, l.WaitForGreen(ctx), context.DeadlineExceeded)
}

func TestWaitForGreen_StopReleasesWaiters(t *testing.T) {
	l, _ := newManualLight(t)
	require.NoError(t, l.Start(context.Background()))

	const waiters = 3
	errs := make(chan error, waiters)
	for i := 0; i < waiters; i++ {
		go func() { errs <- l.WaitForGreen(context.Background()) }()
	}

	time.Sleep(20 * time.Millisecond)
	l.Stop()

	for i := 0; i < waiters; i++ {
		select {
		case err := <-errs:
			assert.ErrorIs(t, err, light.ErrStopped)
		case <-time.After(time.Second):
			t.Fatal("waiter not released by Stop")
		}
	}
}

func TestWaitForPhase_Pause(t *testing.T) {
	l := light.New(
		1,
		light.WithProvider(cycle.Fixed(10*time.Millisecond)),
		light.WithWaitPause(100*time.Millisecond),
	)
	defer l.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, l.Start(ctx))

	start := time.Now()
	require.NoError(t, l.WaitForPhase(ctx, entity.PhaseRed))
	assert.GreaterOrEqual(t, time.Since(start), 100*time.Millisecond)
}

func TestAwaitPhase_AllObserversWake(t *testing.T) {
	l, clk := newManualLight(t)
	require.NoError(t, l.Start(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, l.AwaitPhase(ctx, entity.PhaseRed), "light is already red")

	const observers = 5
	var wg sync.WaitGroup
	errs := make(chan error, observers)
	for i := 0; i < observers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- l.AwaitPhase(ctx, entity.PhaseGreen)
		}()
	}

	time.Sleep(20 * time.Millisecond)
	assert.Empty(t, errs, "observers woke before the light turned green")

	clk.Advance(time.Second)
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}

	// the green notification is still queued for a point-to-point waiter
	require.NoError(t, l.WaitForGreen(ctx))
}

func TestAwaitPhase_Stop(t *testing.T) {
	l, _ := newManualLight(t)

	result := make(chan error, 1)
	go func() { result <- l.AwaitPhase(context.Background(), entity.PhaseGreen) }()

	time.Sleep(10 * time.Millisecond)
	l.Stop()

	select {
	case err := <-result:
		assert.ErrorIs(t, err, light.ErrStopped)
	case <-time.After(time.Second):
		t.Fatal("AwaitPhase() not released by Stop")
	}
}
