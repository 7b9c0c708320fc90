package renderer

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/soroban-hostfn-renderer/chain/stellar/hostfn"
)

func TestTruncate(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("a", 64)

	tests := []struct {
		name     string
		in       string
		max      int
		omission string
		want     string
	}{
		{name: "short", in: "hello", max: 40, omission: "...", want: "hello"},
		{name: "exactly max", in: strings.Repeat("b", 40), max: 40, omission: "...", want: strings.Repeat("b", 40)},
		{name: "one over", in: strings.Repeat("c", 41), max: 40, omission: "...", want: strings.Repeat("c", 37) + "..."},
		{name: "long", in: long, max: 40, omission: "...", want: strings.Repeat("a", 37) + "..."},
		{name: "unicode omission", in: long, max: 10, omission: "…", want: strings.Repeat("a", 9) + "…"},
		{name: "multibyte input", in: strings.Repeat("é", 12), max: 10, omission: "...", want: strings.Repeat("é", 7) + "..."},
		{name: "empty", in: "", max: 40, omission: "...", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Truncate(tt.in, tt.max, tt.omission)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, utf8.RuneCountInString(got), tt.max)
		})
	}
}

func TestNewDisplay_KeepsFullValueAsTitle(t *testing.T) {
	t.Parallel()

	full := "CDLZFC3SYJYDZT7K67VZ75HPJVIEUVNIXF47ZG2FB2RMQQVU2HHGCYSC0123456789"
	msgs, err := newMessages(nil)
	require.NoError(t, err)

	d, err := newDisplay(hostfn.Summary{
		Type:   hostfn.FunctionTypeInvokeContract,
		Branch: hostfn.BranchInvokeContract,
		Parameters: []hostfn.RenderedParameter{
			{Key: "Address", Value: full},
			{Key: "Sym", Value: "short"},
		},
	}, DefaultOptions(), msgs)
	require.NoError(t, err)

	require.Len(t, d.Parameters, 2)
	assert.True(t, d.Listed)
	assert.Equal(t, "Invoke contract (invoke_contract)", d.Headline)

	assert.Equal(t, full, d.Parameters[0].Title)
	assert.Equal(t, full[:37]+"...", d.Parameters[0].Value)
	assert.True(t, d.Parameters[0].Truncated())

	assert.Equal(t, "short", d.Parameters[1].Value)
	assert.False(t, d.Parameters[1].Truncated())
}

func TestMessages(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		msgs, err := newMessages(nil)
		require.NoError(t, err)

		got, err := msgs.headline(hostfn.Summary{Type: hostfn.FunctionTypeUploadWasm, Branch: hostfn.BranchUploadWasm})
		require.NoError(t, err)
		assert.Equal(t, "Upload contract code (upload_wasm)", got)

		got, err = msgs.headline(hostfn.Summary{Type: "extend_footprint_ttl", Branch: hostfn.BranchOther})
		require.NoError(t, err)
		assert.Equal(t, "extend_footprint_ttl", got)
	})

	t.Run("override", func(t *testing.T) {
		t.Parallel()

		msgs, err := newMessages(map[string]string{MessageCreateContract: "Nuevo contrato [{{.Type}}]"})
		require.NoError(t, err)

		got, err := msgs.headline(hostfn.Summary{Type: hostfn.FunctionTypeCreateContract, Branch: hostfn.BranchCreateContract})
		require.NoError(t, err)
		assert.Equal(t, "Nuevo contrato [create_contract]", got)
	})

	t.Run("unknown id", func(t *testing.T) {
		t.Parallel()

		_, err := newMessages(map[string]string{"operation.unknown": "x"})
		require.ErrorContains(t, err, "unknown message id")
	})

	t.Run("bad template", func(t *testing.T) {
		t.Parallel()

		_, err := newMessages(map[string]string{MessageInvokeContract: "{{.Type"})
		require.ErrorContains(t, err, "parse message")
	})

	t.Run("missing field", func(t *testing.T) {
		t.Parallel()

		msgs, err := newMessages(map[string]string{MessageInvokeContract: "{{.Contract}}"})
		require.NoError(t, err)

		_, err = msgs.headline(hostfn.Summary{Type: hostfn.FunctionTypeInvokeContract, Branch: hostfn.BranchInvokeContract})
		require.ErrorContains(t, err, "format message")
	})
}

func TestOptions_Validate(t *testing.T) {
	t.Parallel()

	require.NoError(t, DefaultOptions().validate())
	require.ErrorContains(t, Options{MaxLength: 0}.validate(), "must be positive")
	require.ErrorContains(t, Options{MaxLength: 3, Omission: "..."}.validate(), "shorter than max length")
}
