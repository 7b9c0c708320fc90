package hostfn

import (
	"testing"

	"github.com/stellar/go-stellar-sdk/xdr"
	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/soroban-hostfn-renderer/chain/stellar/scval"
)

func encode(t *testing.T, v xdr.ScVal) string {
	t.Helper()

	s, err := scval.Encode(v)
	require.NoError(t, err)

	return s
}

func encodeStr(t *testing.T, s string) string {
	t.Helper()

	v := xdr.ScString(s)

	return encode(t, xdr.ScVal{Type: xdr.ScValTypeScvString, Str: &v})
}

func encodeSym(t *testing.T, s string) string {
	t.Helper()

	v := xdr.ScSymbol(s)

	return encode(t, xdr.ScVal{Type: xdr.ScValTypeScvSymbol, Sym: &v})
}

func encodeU64(t *testing.T, n uint64) string {
	t.Helper()

	v := xdr.Uint64(n)

	return encode(t, xdr.ScVal{Type: xdr.ScValTypeScvU64, U64: &v})
}

func encodeBytes(t *testing.T, b []byte) string {
	t.Helper()

	v := xdr.ScBytes(b)

	return encode(t, xdr.ScVal{Type: xdr.ScValTypeScvBytes, Bytes: &v})
}
