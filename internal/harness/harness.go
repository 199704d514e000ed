package harness

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/roach88/quirkurl/internal/circuit"
	"github.com/roach88/quirkurl/internal/compiler"
	"github.com/roach88/quirkurl/internal/quirk"
)

// Harness runs scenarios through a quirk.Converter.
type Harness struct {
	converter *quirk.Converter
	logger    *slog.Logger
}

// New returns a Harness that logs to logger. A nil logger discards.
func New(logger *slog.Logger) *Harness {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Harness{
		converter: quirk.NewConverter(logger),
		logger:    logger,
	}
}

// Run executes a scenario with a silent Harness.
func Run(scenario *Scenario) (*Result, error) {
	return New(nil).Run(scenario)
}

// Run loads the scenario's circuit, converts it and checks the outcome.
//
// A conversion failure is an outcome, recorded in Result.ErrorCode.
// The returned error is reserved for scenarios that cannot be run at all:
// unreadable or malformed circuit sources.
func (h *Harness) Run(scenario *Scenario) (*Result, error) {
	result := NewResult(scenario.Name)
	h.logger.Debug("running scenario", "scenario", scenario.Name)

	src, err := loadCircuit(scenario)
	switch {
	case compiler.IsNoCircuit(err):
		result.ErrorCode = string(quirk.ErrCodeNotCircuit)
	case err != nil:
		return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
	default:
		if err := h.convert(src, result); err != nil {
			return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
		}
	}

	checkExpect(scenario.Expect, result)

	h.logger.Info("scenario finished", "scenario", scenario.Name, "pass", result.Pass)
	return result, nil
}

// convert fills result from a conversion of src.
func (h *Harness) convert(src *circuit.Circuit, result *Result) error {
	g, err := h.converter.Layout(src)
	if err != nil {
		var qerr *quirk.Error
		if !errors.As(err, &qerr) {
			return err
		}
		result.ErrorCode = string(qerr.Code)
		return nil
	}

	if result.URL, err = quirk.URL(g); err != nil {
		return err
	}
	if result.Digest, err = quirk.Digest(g); err != nil {
		return err
	}
	result.Cols = g.Cols()
	return nil
}

func loadCircuit(s *Scenario) (*circuit.Circuit, error) {
	var (
		circuits []*circuit.Circuit
		err      error
	)
	if s.Inline != "" {
		circuits, err = compiler.ParseYAML([]byte(s.Inline))
	} else {
		circuits, err = compiler.Load(s.Circuit)
	}
	if err != nil {
		return nil, err
	}
	if len(circuits) != 1 {
		return nil, fmt.Errorf("circuit source holds %d circuits, want 1", len(circuits))
	}
	return circuits[0], nil
}
