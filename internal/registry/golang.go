package registry

import (
	"context"
	"errors"
	"fmt"
	"go/constant"
	"go/types"
	"strconv"

	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from the bounds package.
const LoadMode = packages.NeedName | packages.NeedTypes

// GoRoot is the canonical name of the type every Go type satisfies.
const GoRoot = "any"

// boundsPackage declares the limits of the sized numeric types.
const boundsPackage = "math"

// goBasicKinds lists the predeclared basic types in declaration order.
var goBasicKinds = []types.BasicKind{
	types.Bool,
	types.Int,
	types.Int8,
	types.Int16,
	types.Int32,
	types.Int64,
	types.Uint,
	types.Uint8,
	types.Uint16,
	types.Uint32,
	types.Uint64,
	types.Uintptr,
	types.Float32,
	types.Float64,
	types.Complex64,
	types.Complex128,
	types.String,
}

// goBounds holds the math constants for the lower and upper bound of each sized kind.
// An empty lower bound means the zero value is the minimum.
var goBounds = map[types.BasicKind][2]string{
	types.Int:     {"MinInt", "MaxInt"},
	types.Int8:    {"MinInt8", "MaxInt8"},
	types.Int16:   {"MinInt16", "MaxInt16"},
	types.Int32:   {"MinInt32", "MaxInt32"},
	types.Int64:   {"MinInt64", "MaxInt64"},
	types.Uint:    {"", "MaxUint"},
	types.Uint8:   {"", "MaxUint8"},
	types.Uint16:  {"", "MaxUint16"},
	types.Uint32:  {"", "MaxUint32"},
	types.Uint64:  {"", "MaxUint64"},
	types.Float32: {"", "MaxFloat32"},
	types.Float64: {"", "MaxFloat64"},
}

var goAliases = map[string]string{
	"uint8": "byte",
	"int32": "rune",
}

// LoadGo builds a registry over the predeclared basic types of Go.
// Bounds are read from the constants of package math, loaded through go/packages.
func LoadGo(ctx context.Context) (*Static, error) {
	cfg := &packages.Config{
		Context: ctx,
		Mode:    LoadMode,
	}

	pkgs, err := packages.Load(cfg, boundsPackage)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load packages: %w", ErrUnavailable, err)
	}

	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: package errors: %w", ErrUnavailable, errors.Join(errs...))
	}

	if len(pkgs) != 1 || pkgs[0].Types == nil {
		return nil, fmt.Errorf("%w: package %s has no type information", ErrUnavailable, boundsPackage)
	}

	return newGo(pkgs[0].Types.Scope()), nil
}

// newGo creates the registry from the scope of the bounds package.
func newGo(scope *types.Scope) *Static {
	entries := make([]Entry, 0, len(goBasicKinds)+1)

	for _, kind := range goBasicKinds {
		basic := types.Typ[kind]

		entries = append(entries, Entry{
			Canonical:    basic.Name(),
			Alias:        goAliases[basic.Name()],
			Primitive:    true,
			PointerSized: kind == types.Int || kind == types.Uint || kind == types.Uintptr,
			Constants:    goConstants(scope, basic),
		})
	}

	entries = append(entries, Entry{Canonical: GoRoot, Alias: "interface{}", Class: true})

	return NewStatic(entries...)
}

// goConstants derives the named constants of a basic type.
// Constants missing from scope are left out, so lookups report them as missing.
func goConstants(scope *types.Scope, basic *types.Basic) map[string]string {
	res := map[string]string{}
	info := basic.Info()

	switch {
	case info&types.IsBoolean != 0:
		res["FalseString"] = strconv.FormatBool(false)
		res["TrueString"] = strconv.FormatBool(true)

	case info&types.IsInteger != 0:
		names, ok := goBounds[basic.Kind()]
		if !ok {
			break
		}

		if names[0] == "" {
			res["MinValue"] = "0"
		} else if v, ok := lookupConst(scope, names[0]); ok {
			res["MinValue"] = v.ExactString()
		}

		if v, ok := lookupConst(scope, names[1]); ok {
			res["MaxValue"] = v.ExactString()
		}

	case info&types.IsFloat != 0:
		names, ok := goBounds[basic.Kind()]
		if !ok {
			break
		}

		v, ok := lookupConst(scope, names[1])
		if !ok {
			break
		}

		bits := 64
		if basic.Kind() == types.Float32 {
			bits = 32
		}

		f, _ := constant.Float64Val(v)
		res["MaxValue"] = strconv.FormatFloat(f, 'g', -1, bits)
		res["MinValue"] = strconv.FormatFloat(-f, 'g', -1, bits)
	}

	return res
}

func lookupConst(scope *types.Scope, name string) (constant.Value, bool) {
	c, ok := scope.Lookup(name).(*types.Const)
	if !ok {
		return nil, false
	}

	return c.Val(), true
}
