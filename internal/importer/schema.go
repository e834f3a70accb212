package importer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ImportSchema is the top-level structure of a portfolio import file. The
// same shape is accepted as JSON or YAML.
type ImportSchema struct {
	Drivers   []DriverImport   `json:"drivers" yaml:"drivers"`
	Projects  []ProjectImport  `json:"projects" yaml:"projects"`
	Resources []ResourceImport `json:"resources" yaml:"resources"`
	Tasks     []TaskImport     `json:"tasks" yaml:"tasks"`
}

type DriverImport struct {
	ID     string `json:"id" yaml:"id"`
	Name   string `json:"name" yaml:"name"`
	Weight *int   `json:"weight,omitempty" yaml:"weight,omitempty"`
}

// ProjectImport lists scores as a driver ID -> score map, the way they are
// written by hand.
type ProjectImport struct {
	ID          string         `json:"id" yaml:"id"`
	Name        string         `json:"name" yaml:"name"`
	Description string         `json:"description,omitempty" yaml:"description,omitempty"`
	Budget      float64        `json:"budget" yaml:"budget"`
	Risk        float64        `json:"risk" yaml:"risk"`
	StartWeek   int            `json:"start_week" yaml:"start_week"`
	Duration    int            `json:"duration" yaml:"duration"`
	Scores      map[string]int `json:"scores,omitempty" yaml:"scores,omitempty"`
}

type ResourceImport struct {
	ID       string  `json:"id" yaml:"id"`
	Name     string  `json:"name" yaml:"name"`
	Capacity float64 `json:"capacity" yaml:"capacity"`
}

type TaskImport struct {
	ID             string  `json:"id" yaml:"id"`
	ProjectID      string  `json:"project_id" yaml:"project_id"`
	Name           string  `json:"name" yaml:"name"`
	EstimatedHours float64 `json:"estimated_hours" yaml:"estimated_hours"`
	ResourceID     string  `json:"resource_id,omitempty" yaml:"resource_id,omitempty"`
	StartWeek      int     `json:"start_week" yaml:"start_week"`
	Duration       int     `json:"duration" yaml:"duration"`
}

// Format names an import file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the encoding from the file extension; anything that
// is not .yaml or .yml is read as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// LoadImportSchema reads and parses a portfolio import file.
func LoadImportSchema(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseImportSchema(data, FormatFromPath(path))
}

// ParseImportSchema decodes an import document. Unknown fields are rejected
// so typos surface instead of silently dropping data.
func ParseImportSchema(data []byte, format Format) (*ImportSchema, error) {
	var schema ImportSchema
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&schema); err != nil {
			return nil, fmt.Errorf("parsing import file: %w", err)
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&schema); err != nil {
			return nil, fmt.Errorf("parsing import file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported import format %q", format)
	}
	return &schema, nil
}

// EncodeImportSchema writes schema in a form ParseImportSchema reads back.
func EncodeImportSchema(w io.Writer, schema *ImportSchema, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(schema); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(schema); err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported export format %q", format)
	}
}
