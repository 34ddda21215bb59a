package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"type-catalog/internal/catalog"
	"type-catalog/internal/registry"
)

func TestRoot(t *testing.T) {
	t.Parallel()

	reg := registry.NewCLR()

	root, err := catalog.Root(reg)
	require.NoError(t, err)
	assert.Equal(t, catalog.RootType{CanonicalName: registry.CLRObject, DisplayName: "object"}, root)

	h, ok := reg.Lookup(root.CanonicalName)
	require.True(t, ok)

	_, ok = reg.Parent(h)
	assert.False(t, ok, "root type has no parent")

	h, _ = reg.Lookup(registry.CLRString)
	parent, ok := reg.Parent(h)
	require.True(t, ok)
	assert.Equal(t, registry.CLRObject, reg.CanonicalName(parent))
}

func TestRoot_Missing(t *testing.T) {
	t.Parallel()

	_, err := catalog.Root(int32Like())
	require.ErrorIs(t, err, catalog.ErrNoRootType)

	_, err = catalog.Root(brokenRegistry{})
	require.ErrorIs(t, err, catalog.ErrNoRootType)
}
