package registry

import "maps"

// CLR type names.
const (
	CLRObject = "System.Object"
	CLRString = "System.String"
	CLRValue  = "System.ValueType"
)

const (
	clrCharMin = "\x00"
	clrCharMax = "\uffff"
)

var clrEntries []Entry

func init() {
	bounds := func(lower, upper string) map[string]string {
		return map[string]string{"MinValue": lower, "MaxValue": upper}
	}

	primitive := func(canonical, alias string, constants map[string]string) Entry {
		return Entry{Canonical: canonical, Alias: alias, Primitive: true, Constants: constants}
	}

	// ordered the way the core library defines them
	clrEntries = []Entry{
		primitive("System.Boolean", "bool", map[string]string{"FalseString": "False", "TrueString": "True"}),
		primitive("System.Byte", "byte", bounds("0", "255")),
		primitive("System.Char", "char", bounds(clrCharMin, clrCharMax)),
		// decimal is not primitive to the runtime itself, but it is listed as a primitive floating point type here
		primitive("System.Decimal", "decimal", bounds("-79228162514264337593543950335", "79228162514264337593543950335")),
		primitive("System.Double", "double", bounds("-1.7976931348623157E+308", "1.7976931348623157E+308")),
		primitive("System.Int16", "short", bounds("-32768", "32767")),
		primitive("System.Int32", "int", bounds("-2147483648", "2147483647")),
		primitive("System.Int64", "long", bounds("-9223372036854775808", "9223372036854775807")),
		{
			Canonical:    "System.IntPtr",
			Alias:        "System.IntPtr",
			Primitive:    true,
			PointerSized: true,
			Constants:    bounds("-9223372036854775808", "9223372036854775807"),
		},
		{Canonical: CLRObject, Alias: "object", Class: true},
		primitive("System.SByte", "sbyte", bounds("-128", "127")),
		primitive("System.Single", "float", bounds("-3.4028235E+38", "3.4028235E+38")),
		{Canonical: CLRString, Alias: "string", Class: true, Parent: CLRObject},
		primitive("System.UInt16", "ushort", bounds("0", "65535")),
		primitive("System.UInt32", "uint", bounds("0", "4294967295")),
		primitive("System.UInt64", "ulong", bounds("0", "18446744073709551615")),
		{
			Canonical:    "System.UIntPtr",
			Alias:        "System.UIntPtr",
			Primitive:    true,
			PointerSized: true,
			Constants:    bounds("0", "18446744073709551615"),
		},
		{Canonical: CLRValue, Alias: "System.ValueType", Class: true, Parent: CLRObject},
	}
}

// NewCLR returns a registry over the types of the common language runtime core library.
func NewCLR() *Static {
	entries := make([]Entry, len(clrEntries))
	for i, e := range clrEntries {
		e.Constants = maps.Clone(e.Constants)
		entries[i] = e
	}

	return NewStatic(entries...)
}
