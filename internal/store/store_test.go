package store

import (
	"sync"
	"testing"

	"github.com/alexanderramin/disasterops/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestStore_PublishesNewSnapshot(t *testing.T) {
	initial := sampleSnapshot(t)
	s := New(initial)

	snap, changed := s.AddToSchedule("2", domain.Monday)
	assert.True(t, changed)
	assert.Same(t, snap, s.Snapshot())
	assert.NotSame(t, initial, s.Snapshot())
	assert.Equal(t, uint64(2), s.Snapshot().Version())
}

func TestStore_NoopKeepsSnapshot(t *testing.T) {
	initial := sampleSnapshot(t)
	s := New(initial)

	_, changed := s.AddToSchedule("missing", domain.Monday)
	assert.False(t, changed)
	_, changed = s.RemoveFromSchedule("2", domain.Monday)
	assert.False(t, changed)
	assert.Same(t, initial, s.Snapshot())
}

func TestStore_ConcurrentWritersSerialize(t *testing.T) {
	s := New(sampleSnapshot(t))

	var wg sync.WaitGroup
	for _, day := range domain.Weekdays {
		wg.Add(1)
		go func(d domain.Weekday) {
			defer wg.Done()
			s.AddToSchedule("2", d)
		}(day)
	}
	// readers run alongside writers against whatever snapshot is current
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Snapshot().Projects()
		}()
	}
	wg.Wait()

	p, ok := s.Snapshot().Get("2")
	assert.True(t, ok)
	assert.ElementsMatch(t, domain.Weekdays, p.ScheduledDays)
	assert.Equal(t, uint64(1+len(domain.Weekdays)), s.Snapshot().Version())
}
