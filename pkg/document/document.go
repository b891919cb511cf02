package document

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Document is a JSON-like data tree keyed by string. After Normalize the
// values are nil, bool, float64, string, []any, or map[string]any.
type Document map[string]any

// Normalize converts arbitrary caller data into a Document. Maps and slices
// are walked recursively; every other Go value passes through an
// encoding/json round trip, so struct fields follow their json tags and all
// numbers arrive as float64. Nil input, or input that cannot be marshalled,
// yields an empty Document. Normalize never fails.
func Normalize(data any) Document {
	switch v := data.(type) {
	case nil:
		return Document{}
	case Document:
		return Document(normalizeMap(map[string]any(v)))
	case map[string]any:
		return Document(normalizeMap(v))
	default:
		m, err := jsonToMap(v)
		if err != nil {
			return Document{}
		}
		return Document(m)
	}
}

func normalizeMap(in map[string]any) map[string]any {
	out := make(map[string]any, len(in))
	for key, value := range in {
		out[key] = normalizeValue(value)
	}
	return out
}

func normalizeSlice(in []any) []any {
	out := make([]any, 0, len(in))
	for _, value := range in {
		out = append(out, normalizeValue(value))
	}
	return out
}

func normalizeValue(value any) any {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case bool, string, float64:
		return v
	case map[string]any:
		return normalizeMap(v)
	case []any:
		return normalizeSlice(v)
	default:
		raw, err := jsonToAny(v)
		if err != nil {
			return nil
		}
		return raw
	}
}

func jsonToMap(v any) (map[string]any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	out := map[string]any{}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func jsonToAny(v any) (any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Resolve walks a dot-separated key path through the document, one segment
// at a time. Mappings resolve by key; sequences resolve when the segment is
// the canonical decimal form of an in-range index (so "items.0" reads the
// first element, while "items.00" does not). The boolean reports whether the
// path exists: a stored null resolves to (nil, true), a missing path to
// (nil, false).
func (d Document) Resolve(path string) (any, bool) {
	if path == "" {
		return nil, false
	}

	var current any = map[string]any(d)
	for _, segment := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]any:
			next, ok := node[segment]
			if !ok {
				return nil, false
			}
			current = next
		case map[string]string:
			next, ok := node[segment]
			if !ok {
				return nil, false
			}
			current = next
		case []any:
			idx, ok := sequenceIndex(segment)
			if !ok || idx >= len(node) {
				return nil, false
			}
			current = node[idx]
		default:
			return nil, false
		}
	}
	return current, true
}

// sequenceIndex accepts only the canonical decimal rendering of an index:
// digits without sign or leading zeros, matching how a sequence exposes its
// elements under string keys.
func sequenceIndex(segment string) (int, bool) {
	if segment == "" {
		return 0, false
	}
	if len(segment) > 1 && segment[0] == '0' {
		return 0, false
	}
	for i := 0; i < len(segment); i++ {
		if segment[i] < '0' || segment[i] > '9' {
			return 0, false
		}
	}
	idx, err := strconv.Atoi(segment)
	if err != nil {
		return 0, false
	}
	return idx, true
}

// DisplayString renders a resolved value as substitution text. Nil renders
// empty, booleans render as "true"/"false", numbers render in plain decimal
// form (integral floats without a fraction or exponent), strings pass
// through, and mappings or sequences render as compact JSON.
func DisplayString(value any) string {
	if value == nil {
		return ""
	}
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case map[string]any, []any:
		b, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(b)
	default:
		return fmt.Sprint(value)
	}
}
