// validation.go
package loopsettings

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// normalizeValue checks that value is a bool, number or string and converts
// numbers to float64.
func normalizeValue(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case bool, string:
		return v, nil
	case float64:
		return checkFinite(v)
	case float32:
		return checkFinite(float64(v))
	case int:
		return float64(v), nil
	case int8:
		return float64(v), nil
	case int16:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint:
		return float64(v), nil
	case uint8:
		return float64(v), nil
	case uint16:
		return float64(v), nil
	case uint32:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", ErrInvalidValue, v)
		}
		return checkFinite(f)
	case nil:
		return nil, fmt.Errorf("%w: value is null", ErrInvalidValue)
	default:
		return nil, fmt.Errorf("%w: unsupported type %T", ErrInvalidValue, value)
	}
}

func checkFinite(f float64) (interface{}, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("%w: number must be finite", ErrInvalidValue)
	}
	return f, nil
}

// normalizeRecord validates every entry of a partial record.
func normalizeRecord(partial Record) (Record, error) {
	out := make(Record, len(partial))
	for key, value := range partial {
		if key == "" {
			return nil, ErrInvalidKey
		}
		v, err := normalizeValue(value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		out[key] = v
	}
	return out, nil
}

// decodeObject parses a JSON object. Null entries are dropped so that
// defaults fill them; a top-level null decodes to an empty map.
func decodeObject(text string) (map[string]interface{}, error) {
	var raw map[string]interface{}
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, err
	}
	for key, value := range raw {
		if value == nil {
			delete(raw, key)
		}
	}
	return raw, nil
}

// decodeRecord parses a JSON object into a Record, rejecting the whole text
// when any entry is not a bool, number or string.
func decodeRecord(text string) (Record, error) {
	raw, err := decodeObject(text)
	if err != nil {
		return nil, err
	}
	return normalizeRecord(raw)
}

// decodePersisted parses a JSON object into a Record, skipping entries that
// cannot be normalized instead of failing. Skipped keys are returned sorted.
func decodePersisted(text string) (Record, []string, error) {
	raw, err := decodeObject(text)
	if err != nil {
		return nil, nil, err
	}

	out := make(Record, len(raw))
	var skipped []string
	for key, value := range raw {
		v, err := normalizeValue(value)
		if key == "" || err != nil {
			skipped = append(skipped, key)
			continue
		}
		out[key] = v
	}
	sort.Strings(skipped)
	return out, skipped, nil
}

// truthy reports whether v would pass a plain boolean test in the UI layer:
// nil, false, 0 and "" are falsy, everything else is truthy.
func truthy(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case float64:
		return t != 0 && !math.IsNaN(t)
	case string:
		return t != ""
	default:
		return true
	}
}

// numberValue reads v as a number. Numeric strings are accepted.
func numberValue(v interface{}) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
