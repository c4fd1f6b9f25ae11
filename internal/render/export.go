package render

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/Sumatoshi-tech/pathfang/internal/ingest"
	"github.com/Sumatoshi-tech/pathfang/internal/stats"
)

// Export is the machine-readable form of an ingest run.
type Export struct {
	Source string       `yaml:"source" json:"source"`
	Paths  int          `yaml:"paths"  json:"paths"`
	Hits   int          `yaml:"hits"   json:"hits"`
	Misses int          `yaml:"misses" json:"misses"`
	Pool   stats.Report `yaml:"pool"   json:"pool"`
}

// NewExport assembles the export payload from a run and its statistics.
func NewExport(result *ingest.Result, report stats.Report) Export {
	return Export{
		Source: result.Source,
		Paths:  result.Paths,
		Hits:   result.Hits,
		Misses: result.Misses,
		Pool:   report,
	}
}

// YAML writes the export as YAML.
func YAML(w io.Writer, export Export) error {
	encoder := yaml.NewEncoder(w)
	defer encoder.Close()

	err := encoder.Encode(export)
	if err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}

	return nil
}

// JSON writes the export as indented JSON.
func JSON(w io.Writer, export Export) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(export)
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}

	return nil
}
