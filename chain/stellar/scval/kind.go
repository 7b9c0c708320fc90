package scval

// Kind identifies which variant of an ScVal a parameter declares. The set is closed: any tag
// that is not listed maps to KindUnknown.
type Kind int

const (
	KindUnknown Kind = iota
	KindVoid
	KindBytes
	KindStr
	KindAddress
	KindSym
	KindU32
	KindI32
	KindU64
	KindI64
	KindU128
	KindI128
	KindI256
	// KindMap is recognized but has no display form yet.
	KindMap
)

var kindTags = map[Kind]string{
	KindVoid:    "Void",
	KindBytes:   "Bytes",
	KindStr:     "Str",
	KindAddress: "Address",
	KindSym:     "Sym",
	KindU32:     "U32",
	KindI32:     "I32",
	KindU64:     "U64",
	KindI64:     "I64",
	KindU128:    "U128",
	KindI128:    "I128",
	KindI256:    "I256",
	KindMap:     "Map",
}

var tagKinds = func() map[string]Kind {
	m := make(map[string]Kind, len(kindTags)+1)
	for k, tag := range kindTags {
		m[tag] = k
	}
	// Some encoders emit an empty discriminant for void values.
	m[""] = KindVoid

	return m
}()

// ParseKind maps a type tag as it appears in operation records to a Kind.
func ParseKind(tag string) Kind {
	if k, ok := tagKinds[tag]; ok {
		return k
	}

	return KindUnknown
}

// String returns the canonical tag of the kind, or "Unknown".
func (k Kind) String() string {
	if tag, ok := kindTags[k]; ok {
		return tag
	}

	return "Unknown"
}

// IsNumeric reports whether the kind carries an integer payload.
func (k Kind) IsNumeric() bool {
	switch k {
	case KindU32, KindI32, KindU64, KindI64, KindU128, KindI128, KindI256:
		return true
	case KindUnknown, KindVoid, KindBytes, KindStr, KindAddress, KindSym, KindMap:
		return false
	}

	return false
}
