package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/roach88/quirkurl/internal/quirk"
)

// Scenario defines one conversion check.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Circuit is a path to a circuit file in any format compiler.Load
	// accepts. LoadScenario resolves it relative to the scenario file.
	Circuit string `yaml:"circuit,omitempty"`

	// Inline is a YAML circuit document, used instead of Circuit.
	Inline string `yaml:"inline,omitempty"`

	// Expect describes the outcome.
	Expect Expect `yaml:"expect"`
}

// Expect lists what a conversion must produce. URL and Cols may be given
// together; Error excludes both.
type Expect struct {
	URL   string `yaml:"url,omitempty"`
	Cols  any    `yaml:"cols,omitempty"`
	Error string `yaml:"error,omitempty"`
}

// knownErrorCodes are the codes a scenario may expect.
var knownErrorCodes = map[string]bool{
	string(quirk.ErrCodeUnsupportedGate):  true,
	string(quirk.ErrCodeArityMismatch):    true,
	string(quirk.ErrCodeInvalidPlacement): true,
	string(quirk.ErrCodeNotCircuit):       true,
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	scenario, err := ParseScenario(data)
	if err != nil {
		return nil, err
	}

	if scenario.Circuit != "" && !filepath.IsAbs(scenario.Circuit) {
		scenario.Circuit = filepath.Join(filepath.Dir(path), scenario.Circuit)
	}
	if scenario.Circuit != "" {
		if _, err := os.Stat(scenario.Circuit); err != nil {
			return nil, fmt.Errorf("invalid scenario: circuit file not found: %s", scenario.Circuit)
		}
	}

	return scenario, nil
}

// ParseScenario parses scenario YAML. Circuit paths are left as written.
func ParseScenario(data []byte) (*Scenario, error) {
	// Strict decoding catches typos like "expects:" vs "expect:"
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &scenario, nil
}

// LoadDir loads every .yaml and .yml scenario in dir, sorted by file name.
// A filter, if non-empty, is a glob matched against the file name without
// its extension.
func LoadDir(dir, filter string) ([]*Scenario, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario dir: %w", err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := filepath.Ext(e.Name())
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		if filter != "" {
			matched, err := filepath.Match(filter, strings.TrimSuffix(e.Name(), ext))
			if err != nil {
				return nil, fmt.Errorf("invalid filter pattern: %w", err)
			}
			if !matched {
				continue
			}
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)

	scenarios := make([]*Scenario, 0, len(paths))
	for _, p := range paths {
		s, err := LoadScenario(p)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filepath.Base(p), err)
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}

// validateScenario checks that required fields are present and consistent.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	switch {
	case s.Circuit == "" && s.Inline == "":
		return fmt.Errorf("one of circuit or inline is required")
	case s.Circuit != "" && s.Inline != "":
		return fmt.Errorf("circuit and inline are mutually exclusive")
	}

	e := s.Expect
	if e.URL == "" && e.Cols == nil && e.Error == "" {
		return fmt.Errorf("expect: one of url, cols or error is required")
	}
	if e.Error != "" {
		if e.URL != "" || e.Cols != nil {
			return fmt.Errorf("expect: error excludes url and cols")
		}
		if !knownErrorCodes[e.Error] {
			return fmt.Errorf("expect: unknown error code %q", e.Error)
		}
	}
	if e.Cols != nil {
		if _, ok := e.Cols.([]any); !ok {
			return fmt.Errorf("expect: cols must be a list of columns")
		}
	}
	return nil
}
