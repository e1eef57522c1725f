package extract

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// Field extracts a single value from a JSON response body using a JSONPath expression.
//
// Policy:
// - If body is not JSON -> error.
// - Missing, null or empty values -> error; callers treat them as absent.
// - Scalars are stringified; objects and multi-element arrays are re-encoded as JSON.
func Field(body []byte, expr string) (string, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return "", fmt.Errorf("empty jsonpath expression")
	}

	doc, err := parseJSON(body)
	if err != nil {
		return "", fmt.Errorf("extract (%s): response body is not valid JSON: %w", expr, err)
	}

	val, err := jsonpath.Get(expr, doc)
	if err != nil {
		return "", fmt.Errorf("extract (%s): jsonpath error: %w", expr, err)
	}

	if isEmptyValue(val) {
		return "", fmt.Errorf("extract (%s): no value found", expr)
	}

	s, err := toString(val)
	if err != nil {
		return "", fmt.Errorf("extract (%s): cannot convert value to string: %w", expr, err)
	}
	return s, nil
}

func parseJSON(body []byte) (any, error) {
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func isEmptyValue(v any) bool {
	if v == nil {
		return true
	}
	switch t := v.(type) {
	case string:
		return t == ""
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	default:
		return false
	}
}

func toString(v any) (string, error) {
	// jsonpath returns a slice for wildcard/filter expressions
	if arr, ok := v.([]any); ok {
		if len(arr) == 0 {
			return "", fmt.Errorf("empty array")
		}
		if len(arr) == 1 {
			return toString(arr[0])
		}
		b, err := json.Marshal(arr)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	switch t := v.(type) {
	case string:
		return t, nil
	case float64, bool, int, int64, uint64:
		return fmt.Sprint(t), nil
	case map[string]any:
		b, err := json.Marshal(t)
		if err != nil {
			return "", err
		}
		return string(b), nil
	default:
		return fmt.Sprint(t), nil
	}
}
