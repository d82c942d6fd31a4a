package importer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// SnapshotFile is the top-level structure of a JSON or YAML portfolio file.
type SnapshotFile struct {
	WeekOf   string          `json:"week_of,omitempty" yaml:"week_of,omitempty"`
	Projects []ProjectImport `json:"projects" yaml:"projects"`
}

// ProjectImport defines one project record in the import file.
type ProjectImport struct {
	ID                string   `json:"id,omitempty" yaml:"id,omitempty"`
	Customer          string   `json:"customer" yaml:"customer"`
	JobType           string   `json:"job_type" yaml:"job_type"`
	Status            string   `json:"status" yaml:"status"`
	Priority          string   `json:"priority" yaml:"priority"`
	Revenue           Amount   `json:"revenue" yaml:"revenue"`
	Deposit           Amount   `json:"deposit,omitempty" yaml:"deposit,omitempty"`
	BalanceDue        Amount   `json:"balance_due,omitempty" yaml:"balance_due,omitempty"`
	BudgetedMargin    Amount   `json:"budgeted_margin" yaml:"budgeted_margin"`
	BudgetedLabor     Amount   `json:"budgeted_labor" yaml:"budgeted_labor"`
	ActualLabor       Amount   `json:"actual_labor,omitempty" yaml:"actual_labor,omitempty"`
	BudgetedMaterials Amount   `json:"budgeted_materials" yaml:"budgeted_materials"`
	ActualMaterials   Amount   `json:"actual_materials,omitempty" yaml:"actual_materials,omitempty"`
	ScheduledDays     []string `json:"scheduled_days,omitempty" yaml:"scheduled_days,omitempty"`
	Duration          int      `json:"duration" yaml:"duration"`
	CrewSize          int      `json:"crew_size" yaml:"crew_size"`
	Overdue           bool     `json:"overdue,omitempty" yaml:"overdue,omitempty"`
	DueDate           string   `json:"due_date,omitempty" yaml:"due_date,omitempty"`
	Issues            []string `json:"issues,omitempty" yaml:"issues,omitempty"`
}

// Amount is a currency or fraction value written either as a number or a
// string. It keeps the literal text so no precision is lost before decimal parsing.
type Amount string

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Amount(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("amount must be a number or string: %w", err)
	}
	*a = Amount(n.String())
	return nil
}

func (a *Amount) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: amount must be a scalar", node.Line)
	}
	if node.Tag == "!!null" {
		*a = ""
		return nil
	}
	*a = Amount(strings.TrimSpace(node.Value))
	return nil
}

// LoadSnapshotFile reads and parses a portfolio file. The format is chosen by
// extension: .json, or .yaml/.yml.
func LoadSnapshotFile(path string) (*SnapshotFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseSnapshot(data, filepath.Ext(path))
}

// ParseSnapshot decodes data according to ext (".json", ".yaml" or ".yml").
func ParseSnapshot(data []byte, ext string) (*SnapshotFile, error) {
	var file SnapshotFile
	switch strings.ToLower(ext) {
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&file); err != nil {
			return nil, fmt.Errorf("parsing snapshot file: %w", err)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&file); err != nil {
			return nil, fmt.Errorf("parsing snapshot file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported snapshot file extension %q (expected .json, .yaml or .yml)", ext)
	}
	return &file, nil
}
