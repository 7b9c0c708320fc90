package hostfn

import (
	"encoding/json"
	"fmt"

	"github.com/iancoleman/orderedmap"
)

const (
	typeProperty  = "type"
	valueProperty = "value"

	// VoidLabel labels parameters that declare no type.
	VoidLabel = "Void"
)

// Parameter is a host function parameter as recorded on the ledger: a small JSON object whose
// property order is preserved. Invoke parameters carry "type" and a base64 "value"; create
// parameters carry "type" and one property holding an already readable value.
type Parameter struct {
	props *orderedmap.OrderedMap
}

// NewRawParameter returns an invoke style parameter.
func NewRawParameter(typ, value string) Parameter {
	props := orderedmap.New()
	props.Set(typeProperty, typ)
	props.Set(valueProperty, value)

	return Parameter{props: props}
}

// NewFieldParameter returns a create style parameter holding key: value next to its type.
func NewFieldParameter(typ, key string, value any) Parameter {
	props := orderedmap.New()
	props.Set(typeProperty, typ)
	props.Set(key, value)

	return Parameter{props: props}
}

// Type returns the declared type tag, or "" when absent.
func (p Parameter) Type() string {
	return p.stringProp(typeProperty)
}

// Value returns the raw encoded value, or "" when absent.
func (p Parameter) Value() string {
	return p.stringProp(valueProperty)
}

// Field returns the first property other than "type" and its value in display form.
func (p Parameter) Field() (string, string, bool) {
	if p.props == nil {
		return "", "", false
	}
	for _, key := range p.props.Keys() {
		if key == typeProperty {
			continue
		}
		v, _ := p.props.Get(key)

		return key, displayValue(v), true
	}

	return "", "", false
}

func (p Parameter) stringProp(key string) string {
	if p.props == nil {
		return ""
	}
	v, ok := p.props.Get(key)
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}

	return displayValue(v)
}

// MarshalJSON implements json.Marshaler.
func (p Parameter) MarshalJSON() ([]byte, error) {
	if p.props == nil {
		return []byte("{}"), nil
	}

	return json.Marshal(p.props)
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *Parameter) UnmarshalJSON(data []byte) error {
	props := orderedmap.New()
	if err := json.Unmarshal(data, props); err != nil {
		return fmt.Errorf("parameter must be a JSON object: %w", err)
	}
	p.props = props

	return nil
}

// displayValue prints strings as they are and any other JSON value in compact JSON.
func displayValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprintf("%v", val)
		}

		return string(b)
	}
}
