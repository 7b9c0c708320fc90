package renderer

import (
	"github.com/samber/lo"

	"github.com/smartcontractkit/soroban-hostfn-renderer/chain/stellar/hostfn"
)

// DisplayParameter is a rendered parameter shortened for display. Title keeps the full value.
type DisplayParameter struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
	Title string `json:"title" yaml:"title"`
}

// Truncated reports whether Value was shortened.
func (p DisplayParameter) Truncated() bool {
	return p.Value != p.Title
}

// Display is the presentation model shared by all renderers.
type Display struct {
	Type       string             `json:"type" yaml:"type"`
	Headline   string             `json:"headline" yaml:"headline"`
	Parameters []DisplayParameter `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	// Listed is false for calls whose summary is the headline alone.
	Listed bool `json:"-" yaml:"-"`
}

// Truncate shortens s to at most maxLength runes, omission included.
func Truncate(s string, maxLength int, omission string) string {
	runes := []rune(s)
	if len(runes) <= maxLength {
		return s
	}

	end := maxLength - len([]rune(omission))
	if end < 0 {
		end = 0
	}

	return string(runes[:end]) + omission
}

// newDisplay builds the presentation model of s.
func newDisplay(s hostfn.Summary, opts Options, msgs messages) (Display, error) {
	headline, err := msgs.headline(s)
	if err != nil {
		return Display{}, err
	}

	return Display{
		Type:     s.Type.String(),
		Headline: headline,
		Listed:   s.Branch.HasParameters(),
		Parameters: lo.Map(s.Parameters, func(p hostfn.RenderedParameter, _ int) DisplayParameter {
			return DisplayParameter{
				Key:   p.Key,
				Value: Truncate(p.Value, opts.MaxLength, opts.Omission),
				Title: p.Value,
			}
		}),
	}, nil
}
