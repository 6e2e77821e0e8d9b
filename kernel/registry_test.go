package kernel

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//
// -----------------------------------------------------------------------------
// NewMapBuilder / Provide
// -----------------------------------------------------------------------------

// TestNewMapBuilder_Empty verifies NewMapBuilder initializes a non-nil builder with an empty map.
func TestNewMapBuilder_Empty(t *testing.T) {
	t.Parallel()

	b := NewMapBuilder()
	require.NotNil(t, b)
	require.NotNil(t, b.items)
	assert.Len(t, b.items, 0)
}

// TestProvide_ChainsAndStores verifies Provide stores values and returns the same builder for chaining.
func TestProvide_ChainsAndStores(t *testing.T) {
	t.Parallel()

	b := NewMapBuilder()
	ret := b.Provide("a", 1).Provide(2, "x")
	require.Same(t, b, ret)

	gotA, okA := b.Get("a")
	require.True(t, okA)
	assert.Equal(t, 1, gotA)

	gotB, okB := b.Get(2)
	require.True(t, okB)
	assert.Equal(t, "x", gotB)
}

// TestProvide_NonComparableKeyPanics verifies Provide rejects keys that cannot index a map.
func TestProvide_NonComparableKeyPanics(t *testing.T) {
	t.Parallel()

	b := NewMapBuilder()
	require.PanicsWithError(t, "kernel: map builder key of type []int is not comparable", func() {
		b.Provide([]int{1}, "v")
	})
}

//
// -----------------------------------------------------------------------------
// Get
// -----------------------------------------------------------------------------

// TestGet_Missing verifies Get returns (nil,false) for missing or non-comparable keys.
func TestGet_Missing(t *testing.T) {
	t.Parallel()

	b := NewMapBuilder()

	got, ok := b.Get("missing")
	assert.False(t, ok)
	assert.Nil(t, got)

	got, ok = b.Get(map[string]int{})
	assert.False(t, ok)
	assert.Nil(t, got)
}

//
// -----------------------------------------------------------------------------
// Create
// -----------------------------------------------------------------------------

// TestCreate_Present verifies Create returns the stored specimen.
func TestCreate_Present(t *testing.T) {
	t.Parallel()

	b := NewMapBuilder().Provide("k", "v")

	val, err := b.Create("k", nil)
	require.NoError(t, err)
	assert.Equal(t, "v", val)
}

// TestCreate_MissingReturnsNoSpecimen verifies unknown requests produce NoSpecimen carrying the request.
func TestCreate_MissingReturnsNoSpecimen(t *testing.T) {
	t.Parallel()

	b := NewMapBuilder()

	val, err := b.Create("missing", nil)
	require.NoError(t, err)
	assert.Equal(t, NoSpecimen{Request: "missing"}, val)

	req := []string{"not", "comparable"}
	val, err = b.Create(req, nil)
	require.NoError(t, err)
	assert.Equal(t, NoSpecimen{Request: req}, val)
}

// TestCreate_IgnoresContext verifies the context does not change the result.
func TestCreate_IgnoresContext(t *testing.T) {
	t.Parallel()

	b := NewMapBuilder().Provide("k", 42)
	ctx, err := NewBuilderContext(b)
	require.NoError(t, err)

	val1, err1 := b.Create("k", nil)
	val2, err2 := b.Create("k", ctx)

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, 42, val1)
	assert.Equal(t, val1, val2)
}

// TestCreate_RecoversFromPanic verifies Create converts internal panics into errors.
// We trigger a panic via a nil receiver, which panics when accessing b.items.
func TestCreate_RecoversFromPanic(t *testing.T) {
	t.Parallel()

	var b *MapBuilder
	val, err := b.Create("k", nil)

	require.Error(t, err)
	assert.Nil(t, val)
	assert.True(t, errors.Is(err, ErrBuilderPanic), "expected ErrBuilderPanic wrapping, got: %v", err)
	assert.Contains(t, err.Error(), "kernel: panic during Create")
}

//
// -----------------------------------------------------------------------------
// MustGet
// -----------------------------------------------------------------------------

// TestMustGet_Present verifies MustGet returns the stored value.
func TestMustGet_Present(t *testing.T) {
	t.Parallel()

	b := NewMapBuilder().Provide("k", "v")
	assert.Equal(t, "v", b.MustGet("k"))
}

// TestMustGet_Missing verifies MustGet panics with a helpful message when key is missing.
func TestMustGet_Missing(t *testing.T) {
	t.Parallel()

	b := NewMapBuilder()
	require.PanicsWithError(t, `kernel: map builder missing key missing`, func() {
		_ = b.MustGet("missing")
	})
}
