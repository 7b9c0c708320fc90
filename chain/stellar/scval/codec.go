package scval

import (
	"errors"
	"fmt"

	"github.com/stellar/go-stellar-sdk/xdr"
)

// ErrDecode is returned when a parameter payload is not a base64 encoded ScVal.
var ErrDecode = errors.New("invalid ScVal encoding")

// Decode parses a base64 XDR encoded ScVal.
func Decode(b64 string) (xdr.ScVal, error) {
	var v xdr.ScVal
	if err := xdr.SafeUnmarshalBase64(b64, &v); err != nil {
		return xdr.ScVal{}, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return v, nil
}

// Encode returns the base64 XDR encoding of v.
func Encode(v xdr.ScVal) (string, error) {
	return xdr.MarshalBase64(v)
}
