package primitive

//go:generate go tool stringer -type=CategoryEnum -output=category_string.go

// CategoryEnum is the closed set of categories a primitive kind belongs to.
// Categories are mutually exclusive, so values are plain enumerators rather than bit flags.
type CategoryEnum int

const (
	_ CategoryEnum = iota // zero value is an invalid category

	CategoryInteger       // signed and unsigned integers of fixed width
	CategoryFloatingPoint // binary and decimal floating point numbers
	CategoryCharacter     // single text characters
	CategoryBoolean       // true/false values

	CategoryTotal = int(iota)
)

func (c CategoryEnum) IsValid() bool {
	return c > 0 && int(c) < CategoryTotal
}

// Name returns the short lower-case name used in reports and exports.
func (c CategoryEnum) Name() string {
	switch c {
	case CategoryInteger:
		return "integer"
	case CategoryFloatingPoint:
		return "floating-point"
	case CategoryCharacter:
		return "character"
	case CategoryBoolean:
		return "boolean"
	default:
		return "unknown"
	}
}

// ParseCategory is the inverse of Name.
func ParseCategory(name string) (CategoryEnum, bool) {
	for c := CategoryEnum(1); int(c) < CategoryTotal; c++ {
		if c.Name() == name {
			return c, true
		}
	}

	return 0, false
}
