package hostfn

import (
	"fmt"

	"github.com/smartcontractkit/soroban-hostfn-renderer/chain/stellar/scval"
)

// RenderedParameter is a parameter in display form.
type RenderedParameter struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// DecodeError reports a parameter whose value could not be decoded.
type DecodeError struct {
	Index int
	Type  string
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("parameter %d (%s): %v", e.Index, e.Type, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Normalizer decodes invoke parameters into display form.
type Normalizer struct {
	renderer *scval.Renderer
}

// NewNormalizer returns a Normalizer rendering values with r. A nil r uses the default
// scval renderer.
func NewNormalizer(r *scval.Renderer) *Normalizer {
	if r == nil {
		r = scval.NewRenderer(scval.RendererOptions{})
	}

	return &Normalizer{renderer: r}
}

// Normalize decodes every parameter in order. A value that has no display form, renders empty
// or is a numeric zero is kept in its encoded form. The first value that fails to decode aborts
// with a *DecodeError.
func (n *Normalizer) Normalize(params []Parameter) ([]RenderedParameter, error) {
	out := make([]RenderedParameter, 0, len(params))
	for i, p := range params {
		rp, err := n.normalizeOne(p)
		if err != nil {
			return nil, &DecodeError{Index: i, Type: p.Type(), Err: err}
		}
		out = append(out, rp)
	}

	return out, nil
}

func (n *Normalizer) normalizeOne(p Parameter) (RenderedParameter, error) {
	typ, raw := p.Type(), p.Value()

	v, err := scval.Decode(raw)
	if err != nil {
		return RenderedParameter{}, err
	}

	kind := scval.ParseKind(typ)
	value, ok := n.renderer.Render(kind, v)
	if !ok || isBlank(kind, value) {
		value = raw
	}

	return RenderedParameter{Key: labelFor(typ), Value: value}, nil
}

// isBlank reports whether a rendered value carries nothing worth showing. Numeric zero counts
// as blank, like the empty string.
func isBlank(kind scval.Kind, value string) bool {
	return value == "" || (kind.IsNumeric() && value == "0")
}

func labelFor(typ string) string {
	if typ == "" {
		return VoidLabel
	}

	return typ
}
