package scval

import (
	"fmt"
	"math"
	"math/big"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/stellar/go-stellar-sdk/xdr"
)

// NumberFormat turns the exact integer value of a numeric ScVal into its display string.
// Every numeric kind goes through exactly one NumberFormat, so the precision policy can be
// swapped without touching Render's callers.
type NumberFormat func(d decimal.Decimal) string

// NumberFormatFloat coerces the value to a float64 before printing it, the way ledger
// explorers built on double-precision numbers display it. Values above 2^53 lose precision.
func NumberFormatFloat(d decimal.Decimal) string {
	return formatFloat(d.InexactFloat64())
}

// NumberFormatExact prints every digit of the value.
func NumberFormatExact(d decimal.Decimal) string {
	return d.String()
}

// ParseNumberFormat resolves a configured format name ("float" or "exact").
func ParseNumberFormat(name string) (NumberFormat, error) {
	switch name {
	case "", "float":
		return NumberFormatFloat, nil
	case "exact":
		return NumberFormatExact, nil
	default:
		return nil, fmt.Errorf("unknown number format %q", name)
	}
}

// formatFloat prints f using the shortest digits that round-trip, switching to exponent
// notation at 1e21 like a double-precision number's default string form.
func formatFloat(f float64) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	if math.Abs(f) < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	return strconv.FormatFloat(f, 'g', -1, 64)
}

// toDecimal assembles the integer carried by a numeric ScVal. The kind must agree with the
// value's arm.
func toDecimal(kind Kind, v xdr.ScVal) (decimal.Decimal, bool) {
	switch kind {
	case KindU32:
		n, ok := v.GetU32()
		if !ok {
			return decimal.Decimal{}, false
		}

		return decimal.NewFromInt(int64(n)), true
	case KindI32:
		n, ok := v.GetI32()
		if !ok {
			return decimal.Decimal{}, false
		}

		return decimal.NewFromInt(int64(n)), true
	case KindU64:
		n, ok := v.GetU64()
		if !ok {
			return decimal.Decimal{}, false
		}

		return decimal.NewFromBigInt(new(big.Int).SetUint64(uint64(n)), 0), true
	case KindI64:
		n, ok := v.GetI64()
		if !ok {
			return decimal.Decimal{}, false
		}

		return decimal.NewFromInt(int64(n)), true
	case KindU128:
		parts, ok := v.GetU128()
		if !ok {
			return decimal.Decimal{}, false
		}

		return decimal.NewFromBigInt(joinWords(false, uint64(parts.Hi), uint64(parts.Lo)), 0), true
	case KindI128:
		parts, ok := v.GetI128()
		if !ok {
			return decimal.Decimal{}, false
		}

		return decimal.NewFromBigInt(joinWords(true, uint64(parts.Hi), uint64(parts.Lo)), 0), true
	case KindI256:
		parts, ok := v.GetI256()
		if !ok {
			return decimal.Decimal{}, false
		}
		n := joinWords(true, uint64(parts.HiHi), uint64(parts.HiLo), uint64(parts.LoHi), uint64(parts.LoLo))

		return decimal.NewFromBigInt(n, 0), true
	case KindUnknown, KindVoid, KindBytes, KindStr, KindAddress, KindSym, KindMap:
		return decimal.Decimal{}, false
	}

	return decimal.Decimal{}, false
}

// joinWords builds a big-endian two's complement integer out of 64-bit words, most
// significant first.
func joinWords(signed bool, words ...uint64) *big.Int {
	n := new(big.Int)
	for _, w := range words {
		n.Lsh(n, 64)
		n.Or(n, new(big.Int).SetUint64(w))
	}
	if signed && len(words) > 0 && words[0]>>63 == 1 {
		n.Sub(n, new(big.Int).Lsh(big.NewInt(1), uint(64*len(words))))
	}

	return n
}
