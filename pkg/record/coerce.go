package record

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// toString trims a raw value. Empty results are absent.
func toString(v any) *string {
	var s string
	switch t := v.(type) {
	case nil:
		return nil
	case string:
		s = t
	case []byte:
		s = string(t)
	case float64:
		if t == 0 {
			return nil
		}
		s = strconv.FormatFloat(t, 'f', -1, 64)
	case int64:
		if t == 0 {
			return nil
		}
		s = strconv.FormatInt(t, 10)
	default:
		s = fmt.Sprintf("%v", t)
	}
	s = strings.TrimSpace(strings.ReplaceAll(s, "\n", " "))
	if s == "" {
		return nil
	}
	return &s
}

// toInt converts a raw value to an integer. Values that cannot be
// converted, and zero, are absent.
func toInt(v any) *int {
	var i int
	switch t := v.(type) {
	case nil:
		return nil
	case int:
		i = t
	case int32:
		i = int(t)
	case int64:
		i = int(t)
	case float64:
		if t != math.Trunc(t) {
			return nil
		}
		i = int(t)
	case string, []byte:
		s := toString(t)
		if s == nil {
			return nil
		}
		f, err := strconv.ParseFloat(*s, 64)
		if err != nil || f != math.Trunc(f) {
			return nil
		}
		i = int(f)
	default:
		return nil
	}
	if i == 0 {
		return nil
	}
	return &i
}

// toFloat converts a raw value to a float. Values that cannot be
// converted, zero and NaN are absent.
func toFloat(v any) *float64 {
	var f float64
	switch t := v.(type) {
	case nil:
		return nil
	case float64:
		f = t
	case float32:
		f = float64(t)
	case int:
		f = float64(t)
	case int64:
		f = float64(t)
	case string, []byte:
		s := toString(t)
		if s == nil {
			return nil
		}
		var err error
		f, err = strconv.ParseFloat(strings.ReplaceAll(*s, ",", "."), 64)
		if err != nil {
			return nil
		}
	default:
		return nil
	}
	if f == 0 || math.IsNaN(f) {
		return nil
	}
	return &f
}
