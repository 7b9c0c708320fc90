package renderer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/soroban-hostfn-renderer/chain/stellar/hostfn"
)

var (
	invokeSummary = hostfn.Summary{
		Type:   hostfn.FunctionTypeInvokeContract,
		Branch: hostfn.BranchInvokeContract,
		Parameters: []hostfn.RenderedParameter{
			{Key: "Sym", Value: "transfer"},
			{Key: "Bytes", Value: strings.Repeat("ab", 32)},
		},
	}
	uploadSummary = hostfn.Summary{Type: hostfn.FunctionTypeUploadWasm, Branch: hostfn.BranchUploadWasm}
	otherSummary  = hostfn.Summary{Type: "extend_footprint_ttl", Branch: hostfn.BranchOther}
)

func render(t *testing.T, r Renderer, s hostfn.Summary) string {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, s))

	return buf.String()
}

func TestTextRenderer(t *testing.T) {
	t.Parallel()

	r, err := NewTextRenderer(DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, IDText, r.ID())

	tests := []struct {
		name    string
		summary hostfn.Summary
		want    string
	}{
		{
			name:    "invoke",
			summary: invokeSummary,
			want: "Invoke contract (invoke_contract):\n" +
				"    (Sym) transfer\n" +
				"    (Bytes) " + strings.Repeat("ab", 18) + "a...\n",
		},
		{
			name: "create",
			summary: hostfn.Summary{
				Type:       hostfn.FunctionTypeCreateContract,
				Branch:     hostfn.BranchCreateContract,
				Parameters: []hostfn.RenderedParameter{{Key: "sym", Value: "hello"}},
			},
			want: "Create contract (create_contract):\n    (sym) hello\n",
		},
		{
			name:    "invoke without parameters",
			summary: hostfn.Summary{Type: hostfn.FunctionTypeInvokeContract, Branch: hostfn.BranchInvokeContract},
			want:    "Invoke contract (invoke_contract):\n",
		},
		{
			name:    "upload",
			summary: uploadSummary,
			want:    "Upload contract code (upload_wasm)\n",
		},
		{
			name:    "unknown type",
			summary: otherSummary,
			want:    "extend_footprint_ttl\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, render(t, r, tt.summary))
		})
	}
}

func TestHTMLRenderer(t *testing.T) {
	t.Parallel()

	r, err := NewHTMLRenderer(DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, IDHTML, r.ID())

	t.Run("invoke keeps full value as title", func(t *testing.T) {
		t.Parallel()

		got := render(t, r, invokeSummary)
		assert.True(t, strings.HasPrefix(got, "<span>Invoke contract (invoke_contract):<br />\n"))
		assert.Contains(t, got, `<span title="transfer">transfer</span>`)
		assert.Contains(t, got, `<span title="`+strings.Repeat("ab", 32)+`">`+strings.Repeat("ab", 18)+`a...</span>`)
		assert.Contains(t, got, "&nbsp;&nbsp;&nbsp;&nbsp;  (Bytes) ")
		assert.True(t, strings.HasSuffix(got, "</span>\n"))
	})

	t.Run("values are escaped", func(t *testing.T) {
		t.Parallel()

		got := render(t, r, hostfn.Summary{
			Type:       hostfn.FunctionTypeCreateContract,
			Branch:     hostfn.BranchCreateContract,
			Parameters: []hostfn.RenderedParameter{{Key: "str", Value: `<b>"x"</b>`}},
		})
		assert.NotContains(t, got, "<b>")
		assert.Contains(t, got, "&lt;b&gt;")
	})

	t.Run("unknown type", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "<span>extend_footprint_ttl</span>\n", render(t, r, otherSummary))
	})
}

func TestTableRenderer(t *testing.T) {
	t.Parallel()

	r, err := NewTableRenderer(DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, IDTable, r.ID())

	got := render(t, r, invokeSummary)
	lines := strings.Split(got, "\n")
	assert.Equal(t, "Invoke contract (invoke_contract)", lines[0])
	assert.Contains(t, got, "Key")
	assert.Contains(t, got, "Value")
	assert.Contains(t, got, "transfer")
	assert.Contains(t, got, strings.Repeat("ab", 18)+"a...")
	assert.NotContains(t, got, strings.Repeat("ab", 32))

	assert.Equal(t, "Upload contract code (upload_wasm)\n", render(t, r, uploadSummary))
	assert.Equal(t, "extend_footprint_ttl\n", render(t, r, otherSummary))
}

func TestYAMLRenderer(t *testing.T) {
	t.Parallel()

	r, err := NewYAMLRenderer(DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, IDYAML, r.ID())

	var got Display
	require.NoError(t, yaml.Unmarshal([]byte(render(t, r, invokeSummary)), &got))

	assert.Equal(t, "invoke_contract", got.Type)
	assert.Equal(t, "Invoke contract (invoke_contract)", got.Headline)
	require.Len(t, got.Parameters, 2)
	assert.Equal(t, DisplayParameter{Key: "Sym", Value: "transfer", Title: "transfer"}, got.Parameters[0])
	assert.Equal(t, strings.Repeat("ab", 32), got.Parameters[1].Title)
	assert.Equal(t, strings.Repeat("ab", 18)+"a...", got.Parameters[1].Value)
}

func TestRenderer_CustomOptions(t *testing.T) {
	t.Parallel()

	r, err := NewTextRenderer(Options{
		MaxLength: 8,
		Omission:  "~",
		Messages:  map[string]string{MessageInvokeContract: "call"},
	})
	require.NoError(t, err)

	assert.Equal(t, "call:\n    (Sym) transfer\n    (Bytes) abababa~\n", render(t, r, invokeSummary))
}

func TestRenderer_InvalidOptions(t *testing.T) {
	t.Parallel()

	_, err := NewTextRenderer(Options{})
	require.Error(t, err)
	_, err = NewHTMLRenderer(Options{MaxLength: 40, Messages: map[string]string{"nope": ""}})
	require.Error(t, err)
	_, err = NewTableRenderer(Options{MaxLength: -1})
	require.Error(t, err)
	_, err = NewYAMLRenderer(Options{MaxLength: 1, Omission: "..."})
	require.Error(t, err)
}
