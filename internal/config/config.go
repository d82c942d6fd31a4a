package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"time"

	"github.com/caarlos0/env/v11"
)

const dateLayout = "2006-01-02"

// Config holds process-wide settings resolved from the environment.
// CLI flags override DBPath, File, WeekOf and NoColor after Load.
type Config struct {
	// DBPath is the SQLite seed database.
	DBPath string `env:"DISASTEROPS_DB"`
	// File is a JSON or YAML snapshot; when set it is used instead of the database.
	File string `env:"DISASTEROPS_FILE"`
	// WeekOf pins the schedule week; the zero Date uses the stored week or the default labels.
	WeekOf      Date    `env:"DISASTEROPS_WEEK_OF"`
	LogUseCases bool    `env:"DISASTEROPS_LOG_USECASES"`
	NoColor     Present `env:"NO_COLOR"`
}

// Date is a calendar day written as YYYY-MM-DD.
type Date struct {
	time.Time
}

// ParseDate reads a YYYY-MM-DD date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", s)
	}
	return Date{Time: t}, nil
}

func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Ptr returns the date, or nil when unset.
func (d Date) Ptr() *time.Time {
	if d.IsZero() {
		return nil
	}
	t := d.Time
	return &t
}

// Present is true whenever its variable holds any non-empty value, the
// NO_COLOR convention.
type Present bool

func (p *Present) UnmarshalText(text []byte) error {
	*p = len(text) > 0
	return nil
}

// DefaultDBPath returns the database location under ~/.disasterops.
func DefaultDBPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".disasterops", "disasterops.db"), nil
}

var parsers = map[reflect.Type]env.ParserFunc{
	reflect.TypeOf(Date{}): func(v string) (any, error) {
		return ParseDate(v)
	},
	reflect.TypeOf(Present(false)): func(v string) (any, error) {
		return Present(v != ""), nil
	},
}

// Load reads configuration from environment variables. The database path
// falls back to DefaultDBPath when DISASTEROPS_DB is unset.
func Load() (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{FuncMap: parsers}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.DBPath == "" {
		path, err := DefaultDBPath()
		if err != nil {
			return Config{}, err
		}
		cfg.DBPath = path
	}
	return cfg, nil
}
