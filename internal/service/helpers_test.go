package service

import (
	"context"
	"sync"
	"testing"

	"github.com/alexanderramin/disasterops/internal/scheduler"
	"github.com/alexanderramin/disasterops/internal/store"
	"github.com/alexanderramin/disasterops/internal/testutil"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recordingObserver) last(t *testing.T) UseCaseEvent {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	require.NotEmpty(t, r.events)
	return r.events[len(r.events)-1]
}

func newSampleOps(t *testing.T) (OpsService, *store.Store, *recordingObserver) {
	t.Helper()
	snap, err := store.NewSnapshot(testutil.SamplePortfolio())
	require.NoError(t, err)
	st := store.New(snap)
	obs := &recordingObserver{}
	return NewOpsService(st, scheduler.DefaultWeek(), obs), st, obs
}
