// Package sorter orders projects by a single named field.
//
// Ordering rules:
//   - text fields compare lexicographically, money and counts numerically,
//     priority and status by their declared rank, due dates chronologically;
//   - a value is missing when the key is not a known field or the field is
//     unset (zero due date). Missing values are equal to each other and sort
//     after every present value in ascending order;
//   - descending order negates the ascending comparison, so it is the exact
//     reverse for distinct values while equal values keep their input order.
package sorter

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/disasterops/internal/domain"
	"github.com/shopspring/decimal"
)

// ErrUnknownKey is returned by ParseKey for names that are not sortable fields.
var ErrUnknownKey = errors.New("unknown sort key")

type Key string

const (
	KeyID                Key = "id"
	KeyCustomer          Key = "customer"
	KeyJobType           Key = "jobType"
	KeyStatus            Key = "status"
	KeyPriority          Key = "priority"
	KeyRevenue           Key = "revenue"
	KeyDeposit           Key = "deposit"
	KeyBalanceDue        Key = "balanceDue"
	KeyBudgetedMargin    Key = "budgetedMargin"
	KeyActualMargin      Key = "actualMargin"
	KeyBudgetedLabor     Key = "budgetedLabor"
	KeyActualLabor       Key = "actualLabor"
	KeyBudgetedMaterials Key = "budgetedMaterials"
	KeyActualMaterials   Key = "actualMaterials"
	KeyDuration          Key = "duration"
	KeyCrewSize          Key = "crewSize"
	KeyDueDate           Key = "dueDate"
)

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

func (d Direction) sign() int {
	if d == Desc {
		return -1
	}
	return 1
}

// Config is a sort selection. An empty Key means input order.
type Config struct {
	Key       Key
	Direction Direction
}

type field struct {
	present func(p *domain.Project) bool // nil: always present
	compare func(a, b *domain.Project) int
}

func money(get func(p *domain.Project) decimal.Decimal) field {
	return field{compare: func(a, b *domain.Project) int { return get(a).Cmp(get(b)) }}
}

func count(get func(p *domain.Project) int) field {
	return field{compare: func(a, b *domain.Project) int { return get(a) - get(b) }}
}

func text(get func(p *domain.Project) string) field {
	return field{compare: func(a, b *domain.Project) int { return strings.Compare(get(a), get(b)) }}
}

var fields = map[Key]field{
	KeyID:                text(func(p *domain.Project) string { return p.ID }),
	KeyCustomer:          text(func(p *domain.Project) string { return p.Customer }),
	KeyJobType:           text(func(p *domain.Project) string { return string(p.JobType) }),
	KeyStatus:            count(func(p *domain.Project) int { return p.Status.Rank() }),
	KeyPriority:          count(func(p *domain.Project) int { return p.Priority.Rank() }),
	KeyRevenue:           money(func(p *domain.Project) decimal.Decimal { return p.Revenue }),
	KeyDeposit:           money(func(p *domain.Project) decimal.Decimal { return p.Deposit }),
	KeyBalanceDue:        money(func(p *domain.Project) decimal.Decimal { return p.BalanceDue }),
	KeyBudgetedMargin:    money(func(p *domain.Project) decimal.Decimal { return p.BudgetedMargin }),
	KeyActualMargin:      money(func(p *domain.Project) decimal.Decimal { return p.ActualMargin() }),
	KeyBudgetedLabor:     money(func(p *domain.Project) decimal.Decimal { return p.BudgetedLabor }),
	KeyActualLabor:       money(func(p *domain.Project) decimal.Decimal { return p.ActualLabor }),
	KeyBudgetedMaterials: money(func(p *domain.Project) decimal.Decimal { return p.BudgetedMaterials }),
	KeyActualMaterials:   money(func(p *domain.Project) decimal.Decimal { return p.ActualMaterials }),
	KeyDuration:          count(func(p *domain.Project) int { return p.Duration }),
	KeyCrewSize:          count(func(p *domain.Project) int { return p.CrewSize }),
	KeyDueDate: {
		present: func(p *domain.Project) bool { return !p.DueDate.IsZero() },
		compare: func(a, b *domain.Project) int { return a.DueDate.Compare(b.DueDate) },
	},
}

// compareAsc is the ascending comparison for key, including the missing-value rule.
func compareAsc(a, b *domain.Project, key Key) int {
	f, ok := fields[key]
	if !ok {
		return 0
	}
	if f.present != nil {
		pa, pb := f.present(a), f.present(b)
		switch {
		case !pa && !pb:
			return 0
		case !pa:
			return 1
		case !pb:
			return -1
		}
	}
	return f.compare(a, b)
}

// Sort returns a new slice of projects ordered by key and direction. The input
// slice is not modified.
func Sort(projects []domain.Project, key Key, dir Direction) []domain.Project {
	sorted := make([]domain.Project, len(projects))
	copy(sorted, projects)

	sign := dir.sign()
	sort.SliceStable(sorted, func(i, j int) bool {
		return sign*compareAsc(&sorted[i], &sorted[j], key) < 0
	})
	return sorted
}

// Apply sorts by cfg. An empty key returns a copy in input order.
func Apply(projects []domain.Project, cfg Config) []domain.Project {
	return Sort(projects, cfg.Key, cfg.Direction)
}

// Toggle returns the selection after a column header is chosen: the same key
// while ascending flips to descending; anything else starts ascending.
func Toggle(cfg Config, key Key) Config {
	if cfg.Key == key && cfg.Direction != Desc {
		return Config{Key: key, Direction: Desc}
	}
	return Config{Key: key, Direction: Asc}
}

// Keys lists every sortable key.
func Keys() []Key {
	keys := make([]Key, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func normalizeKey(s string) string {
	return strings.ToLower(strings.NewReplacer("_", "", "-", "").Replace(strings.TrimSpace(s)))
}

// ParseKey resolves a user-supplied name such as "balance_due" or
// "balanceDue" to a Key.
func ParseKey(s string) (Key, error) {
	want := normalizeKey(s)
	for k := range fields {
		if normalizeKey(string(k)) == want {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKey, s)
}

// ParseDirection accepts "asc" or "desc" (case-insensitive); empty means asc.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "asc":
		return Asc, nil
	case "desc":
		return Desc, nil
	default:
		return "", fmt.Errorf("invalid sort direction %q (expected asc or desc)", s)
	}
}
