package dashboard

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Value is a cell or card value: either a number or a string.
type Value struct {
	text   string
	number float64
	isNum  bool
}

// Row maps a field name to its value.
type Row map[string]Value

// Number wraps a numeric value.
func Number(v float64) Value {
	return Value{number: v, isNum: true}
}

// Int wraps an integer value.
func Int(v int) Value {
	return Number(float64(v))
}

// Text wraps a string value.
func Text(v string) Value {
	return Value{text: v}
}

// IsNumber reports whether the value holds a number.
func (v Value) IsNumber() bool {
	return v.isNum
}

// Float returns the numeric value and whether it is numeric.
func (v Value) Float() (float64, bool) {
	return v.number, v.isNum
}

// String renders the raw value without any display rule.
func (v Value) String() string {
	if v.isNum {
		return strconv.FormatFloat(v.number, 'f', -1, 64)
	}
	return v.text
}

// Interface returns the underlying float64 or string.
func (v Value) Interface() any {
	if v.isNum {
		return v.number
	}
	return v.text
}

// MarshalJSON keeps numbers as JSON numbers.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}

// UnmarshalJSON accepts a JSON number or string.
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = Text(s)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("dashboard: value must be a number or string: %w", err)
	}
	*v = Number(f)
	return nil
}

// MarshalYAML keeps numbers as YAML numbers.
func (v Value) MarshalYAML() (any, error) {
	return v.Interface(), nil
}

// UnmarshalYAML accepts a scalar node; quoted scalars stay strings.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("dashboard: line %d: value must be a scalar", node.Line)
	}
	switch node.Tag {
	case "!!int":
		n, err := strconv.ParseInt(node.Value, 0, 64)
		if err != nil {
			return fmt.Errorf("dashboard: line %d: parse integer %q: %w", node.Line, node.Value, err)
		}
		*v = Number(float64(n))
	case "!!float":
		f, err := strconv.ParseFloat(node.Value, 64)
		if err != nil {
			return fmt.Errorf("dashboard: line %d: parse number %q: %w", node.Line, node.Value, err)
		}
		*v = Number(f)
	default:
		*v = Text(node.Value)
	}
	return nil
}

func valueFromAny(raw any) (Value, bool) {
	switch val := raw.(type) {
	case Value:
		return val, true
	case float64:
		return Number(val), true
	case float32:
		return Number(float64(val)), true
	case int:
		return Int(val), true
	case int64:
		return Number(float64(val)), true
	case json.Number:
		if f, err := val.Float64(); err == nil {
			return Number(f), true
		}
		return Text(val.String()), true
	case string:
		return Text(val), true
	default:
		return Value{}, false
	}
}

// RowOf builds a Row from plain Go values (numbers and strings).
// Unsupported types are skipped.
func RowOf(fields map[string]any) Row {
	row := make(Row, len(fields))
	for key, raw := range fields {
		if v, ok := valueFromAny(raw); ok {
			row[key] = v
		}
	}
	return row
}
