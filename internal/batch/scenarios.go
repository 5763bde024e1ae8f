package batch

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lowaak/bike-calculator/internal/config"
)

// Scenario is one named calculation in a batch file
type Scenario struct {
	Name     string
	Settings config.Settings
}

type scenarioFile struct {
	Scenarios []yaml.Node `yaml:"scenarios"`
}

// LoadScenarios reads a YAML batch file. Each entry overrides base with the
// keys it sets, using the same names as the command line flags:
//
//	scenarios:
//	  - name: flat-tt
//	    position: tt
//	    power: 250
func LoadScenarios(path string, base config.Settings) ([]Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenarios: %w", err)
	}
	return ParseScenarios(bytes.NewReader(raw), base)
}

// ParseScenarios decodes a batch document from r
func ParseScenarios(r io.Reader, base config.Settings) ([]Scenario, error) {
	var file scenarioFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("scenario file is empty")
		}
		return nil, fmt.Errorf("failed to parse scenarios: %w", err)
	}
	if len(file.Scenarios) == 0 {
		return nil, fmt.Errorf("scenario file has no scenarios")
	}

	scenarios := make([]Scenario, 0, len(file.Scenarios))
	for i := range file.Scenarios {
		node := &file.Scenarios[i]

		var named struct {
			Name string `yaml:"name"`
		}
		if err := node.Decode(&named); err != nil {
			return nil, fmt.Errorf("scenario %d (line %d): %w", i+1, node.Line, err)
		}
		if named.Name == "" {
			named.Name = fmt.Sprintf("scenario-%d", i+1)
		}

		settings := base
		if err := node.Decode(&settings); err != nil {
			return nil, fmt.Errorf("scenario %q (line %d): %w", named.Name, node.Line, err)
		}
		scenarios = append(scenarios, Scenario{Name: named.Name, Settings: settings})
	}
	return scenarios, nil
}
