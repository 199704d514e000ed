package compiler

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/roach88/quirkurl/internal/circuit"
)

// Extensions lists the file extensions Load understands.
var Extensions = []string{".cue", ".yaml", ".yml", ".json", ".qasm"}

// Load reads the circuits in path, choosing the front end by extension.
// A directory is loaded as one CUE instance.
func Load(path string) ([]*circuit.Circuit, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("loading circuit: %w", err)
	}
	if info.IsDir() {
		return LoadCUE(path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".cue":
		return LoadCUE(path)
	case ".yaml", ".yml", ".json":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading circuit: %w", err)
		}
		circuits, err := ParseYAML(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		nameFromPath(circuits, path)
		return circuits, nil
	case ".qasm":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading circuit: %w", err)
		}
		c, err := ParseQASM(string(data))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		nameFromPath([]*circuit.Circuit{c}, path)
		return []*circuit.Circuit{c}, nil
	default:
		return nil, fmt.Errorf("unsupported circuit file %q: want one of %v", path, Extensions)
	}
}

// nameFromPath names unnamed circuits after the file they came from.
func nameFromPath(circuits []*circuit.Circuit, path string) {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	for i, c := range circuits {
		if c.Name != "" {
			continue
		}
		if len(circuits) == 1 {
			c.Name = base
		} else {
			c.Name = fmt.Sprintf("%s-%d", base, i+1)
		}
	}
}
