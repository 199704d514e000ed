package harness

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// checkExpect compares result against e and records every mismatch.
func checkExpect(e Expect, result *Result) {
	if e.Error != "" {
		switch result.ErrorCode {
		case e.Error:
		case "":
			result.AddError(fmt.Sprintf("expected error %s, conversion succeeded", e.Error))
		default:
			result.AddError(fmt.Sprintf("expected error %s, got %s", e.Error, result.ErrorCode))
		}
		return
	}

	if result.ErrorCode != "" {
		result.AddError(fmt.Sprintf("unexpected error %s", result.ErrorCode))
		return
	}

	if e.URL != "" && e.URL != result.URL {
		result.AddError(fmt.Sprintf("url mismatch:\n  want %s\n  got  %s", e.URL, result.URL))
	}

	if e.Cols != nil {
		if err := checkCols(e.Cols, result.Cols); err != nil {
			result.AddError(err.Error())
		}
	}
}

// checkCols compares columns as JSON values, so YAML integers and the
// encoder's placeholder compare equal, as do YAML maps and parameter cells.
func checkCols(want any, got [][]any) error {
	w, err := asJSONValue(want)
	if err != nil {
		return fmt.Errorf("expected cols: %w", err)
	}
	g, err := asJSONValue(got)
	if err != nil {
		return fmt.Errorf("produced cols: %w", err)
	}
	if !reflect.DeepEqual(w, g) {
		return fmt.Errorf("cols mismatch:\n  want %s\n  got  %s", mustJSON(w), mustJSON(g))
	}
	return nil
}

func asJSONValue(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func mustJSON(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}
