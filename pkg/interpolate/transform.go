package interpolate

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/goliatone/go-msgfmt/pkg/document"
)

// transformKind enumerates the closed set of transformations. Dispatch is an
// exhaustive switch so adding a kind forces every site to take a position.
type transformKind int

const (
	transformDefault transformKind = iota
	transformDate
	transformReplace
)

func lookupTransform(name string) (transformKind, bool) {
	switch name {
	case "default":
		return transformDefault, true
	case "date":
		return transformDate, true
	case "replace":
		return transformReplace, true
	default:
		return 0, false
	}
}

// apply runs one transformation. value and found carry the resolved first
// argument; args are the remaining positional arguments. An error marks the
// placeholder as failed, the caller renders it as ErrorText.
func apply(kind transformKind, value any, found bool, args []arg) (string, error) {
	switch kind {
	case transformDefault:
		return applyDefault(value, found, args)
	case transformDate:
		return applyDate(value, found)
	case transformReplace:
		return applyReplace(value, args)
	default:
		return "", fmt.Errorf("interpolate: unhandled transformation kind %d", kind)
	}
}

// applyDefault substitutes a fallback for missing or null values. The
// fallback is required and must be string-shaped; extra arguments are
// ignored.
func applyDefault(value any, found bool, args []arg) (string, error) {
	if len(args) == 0 {
		return "", errors.New("interpolate: default requires a fallback argument")
	}
	if args[0].kind != argString {
		return "", errors.New("interpolate: default fallback must be a string")
	}
	if !found || value == nil {
		return args[0].text, nil
	}
	return document.DisplayString(value), nil
}

// millisThreshold splits epoch numbers: values below it are seconds, values
// at or above it are milliseconds.
const millisThreshold = 1e11

// shortDateLayout is month/day/year without zero padding, matching the host
// short-date convention the engine's output follows.
const shortDateLayout = "1/2/2006"

// dateLayouts are tried in order when the resolved value is a string.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
}

// applyDate renders an epoch number or a calendar string as a short date in
// local time. Missing, null, and empty-string values render empty; anything
// unparseable is a failure.
func applyDate(value any, found bool) (string, error) {
	if !found || value == nil {
		return "", nil
	}

	if n, ok := numericValue(value); ok {
		ts, err := epochTime(n)
		if err != nil {
			return "", err
		}
		return ts.Format(shortDateLayout), nil
	}

	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("interpolate: date cannot format %T value", value)
	}
	if s == "" {
		return "", nil
	}
	for _, layout := range dateLayouts {
		if ts, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			// inputs carrying their own zone shift to the host's before the
			// calendar date is taken
			return ts.Local().Format(shortDateLayout), nil
		}
	}
	return "", fmt.Errorf("interpolate: unparseable date %q", s)
}

func numericValue(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

func epochTime(n float64) (time.Time, error) {
	if math.IsNaN(n) || math.IsInf(n, 0) || math.Abs(n) >= math.MaxInt64 {
		return time.Time{}, fmt.Errorf("interpolate: epoch value %v is not a real instant", n)
	}
	if n < millisThreshold {
		// split so fractional seconds survive; time.Unix normalizes the
		// nanosecond part whatever its sign
		sec, frac := math.Modf(n)
		return time.Unix(int64(sec), int64(frac*float64(time.Second))), nil
	}
	return time.UnixMilli(int64(n)), nil
}

// applyReplace rewrites the value's display text through ordered
// [search, replacement] pairs, each applied as a global literal replacement
// over the previous pair's output. Pairs with an empty search, and arguments
// that are not two-element lists, are skipped.
func applyReplace(value any, args []arg) (string, error) {
	text := document.DisplayString(value)
	for _, pair := range args {
		if pair.kind != argList || len(pair.items) != 2 {
			continue
		}
		search, replacement := pair.items[0], pair.items[1]
		if search == "" {
			continue
		}
		text = strings.ReplaceAll(text, search, replacement)
	}
	return text, nil
}
