// Package scval renders Soroban ScVal values as display strings.
//
// A value is rendered according to the type tag it was declared with, not the arm it was
// decoded into: a tag outside the supported set, or a tag that disagrees with the payload,
// yields no rendering and callers fall back to the raw encoded form.
package scval

import (
	"encoding/hex"

	"github.com/stellar/go-stellar-sdk/xdr"
)

// RendererOptions configures a Renderer.
type RendererOptions struct {
	// NumberFormat prints integer values. Defaults to NumberFormatFloat.
	NumberFormat NumberFormat
}

// Renderer maps declared kinds and decoded values to display strings. The zero value is ready
// to use and safe for concurrent use.
type Renderer struct {
	numberFormat NumberFormat
}

// NewRenderer returns a Renderer configured with opts.
func NewRenderer(opts RendererOptions) *Renderer {
	return &Renderer{numberFormat: opts.NumberFormat}
}

// Render is a shorthand for the default Renderer.
func Render(kind Kind, v xdr.ScVal) (string, bool) {
	return (&Renderer{}).Render(kind, v)
}

// Render returns the display string of v declared as kind. The second return value is false
// when the kind has no display form or v does not carry the declared arm.
func (r *Renderer) Render(kind Kind, v xdr.ScVal) (string, bool) {
	switch kind {
	case KindVoid:
		return "", true
	case KindBytes:
		b, ok := v.GetBytes()
		if !ok {
			return "", false
		}

		return hex.EncodeToString(b), true
	case KindStr:
		s, ok := v.GetStr()
		if !ok {
			return "", false
		}

		return string(s), true
	case KindSym:
		s, ok := v.GetSym()
		if !ok {
			return "", false
		}

		return string(s), true
	case KindAddress:
		addr, ok := v.GetAddress()
		if !ok {
			return "", false
		}
		s, err := addr.String()
		if err != nil {
			return "", false
		}

		return s, true
	case KindU32, KindI32, KindU64, KindI64, KindU128, KindI128, KindI256:
		d, ok := toDecimal(kind, v)
		if !ok {
			return "", false
		}

		return r.formatNumber()(d), true
	case KindMap:
		// Map entries need a structured display form; until one exists they are shown raw.
		return "", false
	case KindUnknown:
		return "", false
	}

	return "", false
}

func (r *Renderer) formatNumber() NumberFormat {
	if r == nil || r.numberFormat == nil {
		return NumberFormatFloat
	}

	return r.numberFormat
}
