package renderer

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/soroban-hostfn-renderer/chain/stellar/hostfn"
)

// Mock renderer for testing
type mockRenderer struct {
	id string
}

func (m *mockRenderer) ID() string {
	return m.id
}

func (m *mockRenderer) Render(w io.Writer, _ hostfn.Summary) error {
	_, err := w.Write([]byte("mock output"))
	return err
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	t.Run("Register and Get renderer", func(t *testing.T) {
		t.Parallel()

		registry := NewRegistry()
		renderer := &mockRenderer{id: "test-renderer"}

		err := registry.Register(renderer)
		require.NoError(t, err)

		retrieved, ok := registry.Get("test-renderer")
		assert.True(t, ok)
		assert.Equal(t, renderer, retrieved)
	})

	t.Run("Register nil renderer returns error", func(t *testing.T) {
		t.Parallel()

		err := NewRegistry().Register(nil)
		require.ErrorContains(t, err, "nil renderer")
	})

	t.Run("empty id is rejected", func(t *testing.T) {
		t.Parallel()

		err := NewRegistry().Register(&mockRenderer{id: ""})
		require.ErrorContains(t, err, "empty id")
	})

	t.Run("Register duplicate ID returns error", func(t *testing.T) {
		t.Parallel()

		registry := NewRegistry()
		require.NoError(t, registry.Register(&mockRenderer{id: "duplicate"}))

		err := registry.Register(&mockRenderer{id: "duplicate"})
		require.ErrorContains(t, err, "already has a renderer")
	})

	t.Run("Get missing renderer", func(t *testing.T) {
		t.Parallel()

		_, ok := NewRegistry().Get("missing")
		assert.False(t, ok)
	})
}

func TestNewDefaultRegistry(t *testing.T) {
	t.Parallel()

	registry, err := NewDefaultRegistry(DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []string{IDHTML, IDTable, IDText, IDYAML}, registry.List())

	_, err = NewDefaultRegistry(Options{})
	require.Error(t, err)
}
