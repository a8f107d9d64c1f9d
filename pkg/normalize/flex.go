package normalize

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// flexInt decodes an integer that ESPN may send as a number, a numeric string,
// or an object carrying one of value, number, type or id. It never fails:
// anything unrecognized leaves Valid false.
type flexInt struct {
	Value int
	Valid bool
}

var flexIntKeys = []string{"value", "number", "type", "id", "displayValue"}

func (f *flexInt) UnmarshalJSON(data []byte) error {
	*f = flexInt{}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil
	}
	f.Value, f.Valid = intFrom(v, true)
	return nil
}

func (f flexInt) Or(fallback flexInt) flexInt {
	if f.Valid {
		return f
	}
	return fallback
}

func intFrom(v any, descend bool) (int, bool) {
	switch t := v.(type) {
	case float64:
		// NaN fails both comparisons; infinities and huge values fall outside int.
		if !(t >= math.MinInt && t < math.MaxInt) {
			return 0, false
		}
		return int(t), true
	case string:
		s := strings.TrimSpace(t)
		if n, err := strconv.Atoi(s); err == nil {
			return n, true
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return intFrom(f, false)
		}
	case map[string]any:
		if !descend {
			return 0, false
		}
		for _, key := range flexIntKeys {
			if inner, ok := t[key]; ok {
				if n, ok := intFrom(inner, false); ok {
					return n, true
				}
			}
		}
	}
	return 0, false
}

// flexString decodes identifiers that ESPN sends as either strings or numbers.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	*f = ""
	data = bytes.TrimSpace(data)
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = flexString(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*f = flexString(n.String())
	}
	return nil
}

func (f flexString) String() string {
	return string(f)
}
