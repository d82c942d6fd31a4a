// Package store holds the project collection as a sequence of immutable
// snapshots. Schedule changes never modify a snapshot in place; they produce
// the next one.
package store

import (
	"errors"
	"fmt"
	"slices"

	"github.com/alexanderramin/disasterops/internal/domain"
)

// ErrDuplicateID is returned when two records in a snapshot share an id.
var ErrDuplicateID = errors.New("duplicate project id")

// Snapshot is an immutable, ordered view of every project at one point in time.
// Version increases by one for every snapshot derived through a mutation.
type Snapshot struct {
	version  uint64
	projects []domain.Project
	index    map[string]int
}

// NewSnapshot validates projects and builds the initial snapshot (version 1).
// Input order is preserved. The slice is copied, so later changes by the
// caller are not observed.
func NewSnapshot(projects []domain.Project) (*Snapshot, error) {
	var errs []error
	index := make(map[string]int, len(projects))
	for i := range projects {
		if err := projects[i].Validate(); err != nil {
			errs = append(errs, err)
			continue
		}
		if _, dup := index[projects[i].ID]; dup {
			errs = append(errs, fmt.Errorf("%w: %q", ErrDuplicateID, projects[i].ID))
			continue
		}
		index[projects[i].ID] = i
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	owned := make([]domain.Project, len(projects))
	for i, p := range projects {
		owned[i] = p.WithScheduledDays(p.ScheduledDays)
	}
	return &Snapshot{version: 1, projects: owned, index: index}, nil
}

// Version identifies the snapshot. Callers caching derived views can key on it.
func (s *Snapshot) Version() uint64 { return s.version }

func (s *Snapshot) Len() int { return len(s.projects) }

// Projects returns the projects in input order. The returned slice is a copy;
// the records share read-only Issues and ScheduledDays storage.
func (s *Snapshot) Projects() []domain.Project {
	return slices.Clone(s.projects)
}

// Get returns the project with the given id.
func (s *Snapshot) Get(id string) (domain.Project, bool) {
	i, ok := s.index[id]
	if !ok {
		return domain.Project{}, false
	}
	return s.projects[i], true
}

// replace returns the successor snapshot with the record at index i swapped for p.
func (s *Snapshot) replace(i int, p domain.Project) *Snapshot {
	next := slices.Clone(s.projects)
	next[i] = p
	return &Snapshot{version: s.version + 1, projects: next, index: s.index}
}

// AddToSchedule returns a snapshot in which the project has day among its
// scheduled days. If the day is already present, the id is unknown, or day is
// not a working day, s itself is returned.
func AddToSchedule(s *Snapshot, id string, day domain.Weekday) *Snapshot {
	i, ok := s.index[id]
	if !ok || !day.Valid() {
		return s
	}
	p := s.projects[i]
	if p.IsScheduledOn(day) {
		return s
	}
	days := make([]domain.Weekday, 0, len(p.ScheduledDays)+1)
	days = append(days, p.ScheduledDays...)
	days = append(days, day)
	return s.replace(i, p.WithScheduledDays(days))
}

// RemoveFromSchedule returns a snapshot in which day is no longer among the
// project's scheduled days. If it was not there, or the id is unknown, s
// itself is returned.
func RemoveFromSchedule(s *Snapshot, id string, day domain.Weekday) *Snapshot {
	i, ok := s.index[id]
	if !ok {
		return s
	}
	p := s.projects[i]
	if !p.IsScheduledOn(day) {
		return s
	}
	days := make([]domain.Weekday, 0, len(p.ScheduledDays))
	for _, d := range p.ScheduledDays {
		if d != day {
			days = append(days, d)
		}
	}
	return s.replace(i, p.WithScheduledDays(days))
}
