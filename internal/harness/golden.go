package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"
)

// RunWithGolden executes a scenario and compares its outcome against a
// golden file at testdata/golden/{scenario.Name}.golden.
//
// The golden content is the URL for a successful conversion and
// "error: CODE" for a failed one. To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns error if the scenario cannot be run. Test failure (via goldie)
// occurs if the outcome doesn't match the golden file.
func RunWithGolden(t *testing.T, scenario *Scenario) (*Result, error) {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return nil, err
	}

	AssertGolden(t, scenario.Name, result)
	return result, nil
}

// AssertGolden compares an existing result against its golden file
// without re-running the scenario.
func AssertGolden(t *testing.T, name string, result *Result) {
	t.Helper()

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, GoldenBytes(result))
}

// GoldenBytes is the golden file content for result.
func GoldenBytes(result *Result) []byte {
	if result.ErrorCode != "" {
		return []byte("error: " + result.ErrorCode)
	}
	return []byte(result.URL)
}
