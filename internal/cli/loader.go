package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"cuelang.org/go/cue/token"

	"github.com/roach88/quirkurl/internal/circuit"
	"github.com/roach88/quirkurl/internal/compiler"
	"github.com/roach88/quirkurl/internal/quirk"
)

// Error code constants shared by every command. Conversion failures use
// the quirk.ErrorCode values instead.
const (
	ErrCodeGeneric     = "E001" // Generic/unknown error
	ErrCodeLoadFailed  = "E004" // Source could not be parsed
	ErrCodeNotFound    = "E005" // Path not found
	ErrCodeWriteFailed = "E007" // File write error
	ErrCodeUnsupported = "E008" // Unknown circuit file extension
	ErrCodeStore       = "E009" // History database error
)

// LoadError represents an error that occurred while loading circuits.
type LoadError struct {
	Code    string
	Message string
	Pos     token.Pos // CUE position if available
	Line    int       // YAML/QASM line if available
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Code, e.Message)
	}
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s: %s", e.Line, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// exitCode is ExitFailure for a source that parsed but held no circuit and
// ExitCommandError for everything else.
func (e *LoadError) exitCode() int {
	if e.Code == string(quirk.ErrCodeNotCircuit) {
		return ExitFailure
	}
	return ExitCommandError
}

// LoadCircuits loads every circuit in path and maps failures to CLI error
// codes.
func LoadCircuits(path string) ([]*circuit.Circuit, *LoadError) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("circuit source not found: %s", path)}
	}
	if err != nil {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("error accessing %s: %v", path, err)}
	}
	if !info.IsDir() {
		ext := strings.ToLower(filepath.Ext(path))
		if !slices.Contains(compiler.Extensions, ext) {
			return nil, &LoadError{
				Code:    ErrCodeUnsupported,
				Message: fmt.Sprintf("unsupported circuit file %q: want one of %v", filepath.Base(path), compiler.Extensions),
			}
		}
	}

	circuits, err := compiler.Load(path)
	if err != nil {
		return nil, convertCompileError(err)
	}
	return circuits, nil
}

// convertCompileError converts a compiler error to a LoadError with position info.
func convertCompileError(err error) *LoadError {
	var compileErr *compiler.CompileError
	if errors.As(err, &compileErr) {
		code := ErrCodeLoadFailed
		if compileErr.Field == compiler.FieldNoCircuit {
			code = string(quirk.ErrCodeNotCircuit)
		}
		return &LoadError{
			Code:    code,
			Message: compileErr.Field + ": " + compileErr.Message,
			Pos:     compileErr.Pos,
			Line:    compileErr.Line,
		}
	}
	return &LoadError{Code: ErrCodeGeneric, Message: err.Error()}
}
