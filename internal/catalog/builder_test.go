package catalog_test

import (
	"errors"
	"math/big"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"type-catalog/internal/catalog"
	"type-catalog/internal/diagnostic"
	"type-catalog/internal/registry"
	"type-catalog/primitive"
)

// brokenRegistry fails every query.
type brokenRegistry struct {
	err error
}

func (r brokenRegistry) PrimitiveTypes() ([]registry.Handle, error) { return nil, r.err }
func (r brokenRegistry) Constant(registry.Handle, string) (string, error) { return "", r.err }
func (r brokenRegistry) CanonicalName(registry.Handle) string { return "" }
func (r brokenRegistry) DisplayAlias(registry.Handle) string { return "" }

func int32Like() *registry.Static {
	return registry.NewStatic(registry.Entry{
		Canonical: "Int32Like",
		Primitive: true,
		Constants: map[string]string{"MinValue": "-2147483648", "MaxValue": "2147483647"},
	})
}

func TestBuild_CLR(t *testing.T) {
	t.Parallel()

	c, err := catalog.Build(registry.NewCLR())
	require.NoError(t, err)

	// 8 integer, 3 floating point, 1 boolean and 1 character kind
	assert.Equal(t, 13, c.Len())
	assert.Len(t, c.ByCategory(primitive.CategoryInteger), 8)
	assert.Len(t, c.ByCategory(primitive.CategoryFloatingPoint), 4, "boolean is tagged floating point")
	assert.Len(t, c.ByCategory(primitive.CategoryCharacter), 1)
	assert.Empty(t, c.ByCategory(primitive.CategoryBoolean))

	_, ok := c.Lookup("System.IntPtr")
	assert.False(t, ok)

	d, ok := c.Lookup("System.Int32")
	require.True(t, ok)
	assert.Equal(t, "int", d.DisplayName())
	assert.Equal(t, "-2147483648", d.MinValue())
	assert.Equal(t, "2147483647", d.MaxValue())

	spew.Dump(c.All())
}

func TestBuild_Idempotent(t *testing.T) {
	t.Parallel()

	reg := registry.NewCLR()

	first, err := catalog.Build(reg)
	require.NoError(t, err)

	second, err := catalog.Build(reg)
	require.NoError(t, err)

	assert.Equal(t, first.All(), second.All())
}

func TestBuild_IntegerBounds(t *testing.T) {
	t.Parallel()

	c, err := catalog.Build(registry.NewCLR())
	require.NoError(t, err)

	for _, d := range c.ByCategory(primitive.CategoryInteger) {
		lower, ok := new(big.Int).SetString(d.MinValue(), 10)
		require.True(t, ok, d.CanonicalName())

		upper, ok := new(big.Int).SetString(d.MaxValue(), 10)
		require.True(t, ok, d.CanonicalName())

		assert.Negative(t, lower.Cmp(upper), "%s: %s >= %s", d.CanonicalName(), lower, upper)
	}
}

func TestBuild_Boolean(t *testing.T) {
	t.Parallel()

	t.Run("as declared", func(t *testing.T) {
		t.Parallel()

		c, err := catalog.Build(registry.NewCLR())
		require.NoError(t, err)

		d, ok := c.Lookup("System.Boolean")
		require.True(t, ok)
		assert.Equal(t, "False", d.MinValue())
		assert.Equal(t, "True", d.MaxValue())
		assert.Equal(t, primitive.CategoryFloatingPoint, d.Category())
	})

	t.Run("corrected", func(t *testing.T) {
		t.Parallel()

		c, err := catalog.Build(registry.NewCLR(), catalog.WithCorrectedBoolean())
		require.NoError(t, err)

		d, ok := c.Lookup("System.Boolean")
		require.True(t, ok)
		assert.Equal(t, "False", d.MinValue())
		assert.Equal(t, "True", d.MaxValue())
		assert.Equal(t, primitive.CategoryBoolean, d.Category())
		assert.Len(t, c.ByCategory(primitive.CategoryFloatingPoint), 3)
	})
}

func TestBuild_Int32Like(t *testing.T) {
	t.Parallel()

	c, err := catalog.Build(int32Like(), catalog.WithClassifier(primitive.Classifier{"Int32Like": primitive.KindInt32}))
	require.NoError(t, err)
	require.Equal(t, 1, c.Len())

	d := c.At(0)
	assert.Equal(t, primitive.CategoryInteger, d.Category())
	assert.Equal(t, "Int32Like", d.DisplayName())
	assert.Equal(t, "Int32Like", d.CanonicalName())
	assert.Equal(t, "-2147483648", d.MinValue())
	assert.Equal(t, "2147483647", d.MaxValue())

	assert.Equal(t, []string{
		"Name Or Alias: Int32Like",
		"Type: Int32Like",
		"Min Value: -2147483648",
		"Max Value: 2147483647",
		"",
	}, splitLines(d.String()))
}

func TestBuild_SkipsUnclassified(t *testing.T) {
	t.Parallel()

	var diags diagnostic.Diagnostics

	// the default classifier does not know Int32Like
	c, err := catalog.Build(int32Like(), catalog.WithDiagnostics(&diags))
	require.NoError(t, err)
	assert.Zero(t, c.Len())

	assert.True(t, diags.IsValid())
	require.Len(t, diags.Infos, 1)
	assert.Equal(t, diagnostic.CodeUnclassifiedType, diags.Infos[0].Code)
	assert.Equal(t, "Int32Like", diags.Infos[0].TypeName)
}

func TestBuild_MissingConstant(t *testing.T) {
	t.Parallel()

	reg := registry.NewStatic(
		registry.Entry{Canonical: "System.SByte", Primitive: true, Constants: map[string]string{"MinValue": "-128", "MaxValue": "127"}},
		registry.Entry{Canonical: "System.Boolean", Primitive: true, Constants: map[string]string{"MinValue": "0", "MaxValue": "1"}},
	)

	var diags diagnostic.Diagnostics

	c, err := catalog.Build(reg, catalog.WithDiagnostics(&diags))
	require.ErrorIs(t, err, catalog.ErrMissingConstant)
	assert.Nil(t, c, "no partial catalog")

	var mce *catalog.MissingConstantError
	require.ErrorAs(t, err, &mce)
	assert.Equal(t, "System.Boolean", mce.TypeName)
	assert.Equal(t, primitive.ConstFalseString, mce.Constant)

	assert.True(t, diags.HasErrors())
	assert.Equal(t, diagnostic.CodeMissingConstant, diags.Errors[0].Code)
}

func TestBuild_MissingConstantFromForeignRegistry(t *testing.T) {
	t.Parallel()

	err := &catalog.MissingConstantError{TypeName: "T", Constant: "MaxValue", Err: errors.New("boom")}
	assert.ErrorIs(t, err, catalog.ErrMissingConstant)
	assert.Equal(t, "type T does not declare constant MaxValue: boom", err.Error())
}

func TestBuild_Duplicate(t *testing.T) {
	t.Parallel()

	entry := registry.Entry{Canonical: "System.Char", Primitive: true, Constants: map[string]string{"MinValue": "a", "MaxValue": "z"}}

	c, err := catalog.Build(registry.NewStatic(entry, entry))
	require.ErrorIs(t, err, catalog.ErrDuplicateType)
	assert.Nil(t, c)
}

func TestBuild_RegistryUnavailable(t *testing.T) {
	t.Parallel()

	t.Run("nil registry", func(t *testing.T) {
		t.Parallel()

		_, err := catalog.Build(nil)
		require.ErrorIs(t, err, catalog.ErrRegistryUnavailable)
	})

	t.Run("nil static registry", func(t *testing.T) {
		t.Parallel()

		var reg *registry.Static
		_, err := catalog.Build(reg)
		require.ErrorIs(t, err, catalog.ErrRegistryUnavailable)
	})

	t.Run("failing registry", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("assembly not found")

		var diags diagnostic.Diagnostics
		_, err := catalog.Build(brokenRegistry{err: cause}, catalog.WithDiagnostics(&diags))
		require.ErrorIs(t, err, catalog.ErrRegistryUnavailable)
		require.ErrorIs(t, err, cause)
		assert.Equal(t, diagnostic.CodeRegistry, diags.Errors[0].Code)
	})
}

func TestNew_Invariants(t *testing.T) {
	t.Parallel()

	_, err := catalog.New(catalog.NewDescriptor("x", "X", "0", "1", 0))
	require.ErrorIs(t, err, catalog.ErrInvalidCategory)

	d := catalog.NewDescriptor("x", "X", "0", "1", primitive.CategoryInteger)
	_, err = catalog.New(d, d)
	require.ErrorIs(t, err, catalog.ErrDuplicateType)

	c, err := catalog.New(d)
	require.NoError(t, err)

	all := c.All()
	all[0] = catalog.Descriptor{}
	assert.Equal(t, d, c.At(0), "All returns a copy")
}
