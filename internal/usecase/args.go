package usecase

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// argString reads a present, non-null argument as text.
func argString(args map[string]any, key string) (string, bool) {
	v, ok := args[key]
	if !ok || v == nil {
		return "", false
	}
	switch s := v.(type) {
	case string:
		return s, true
	case fmt.Stringer:
		return s.String(), true
	default:
		return fmt.Sprintf("%v", v), true
	}
}

// argInt reads a present, non-null argument as a whole number. Oracle
// arguments arrive as float64, HTTP ones sometimes as json.Number or text.
func argInt(args map[string]any, key string) (int64, bool, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return 0, false, nil
	}
	switch n := v.(type) {
	case int:
		return int64(n), true, nil
	case int32:
		return int64(n), true, nil
	case int64:
		return n, true, nil
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) || math.IsNaN(n) {
			return 0, true, fmt.Errorf("%s is not a whole number", key)
		}
		return int64(n), true, nil
	case json.Number:
		i, err := n.Int64()
		return i, true, err
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		return i, true, err
	default:
		return 0, true, fmt.Errorf("%s has unsupported type %T", key, v)
	}
}
