package primitive

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
	KindDecimal
	KindBool
	KindChar

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

func (k KindEnum) IsValid() bool {
	return k > 0 && int(k) < KindTotal
}

func (k KindEnum) IsNumber() bool {
	return k.IsInteger() || k.IsFloat()
}

func (k KindEnum) IsInteger() bool {
	switch k {
	default:
		return false
	case KindInt8, KindInt16, KindInt32, KindInt64,
		KindUint8, KindUint16, KindUint32, KindUint64:
		return true
	}
}

func (k KindEnum) IsFloat() bool {
	switch k {
	default:
		return false
	case KindFloat32, KindFloat64, KindDecimal:
		return true
	}
}

func (k KindEnum) IsSigned() bool {
	switch k {
	default:
		return false
	case KindInt8, KindInt16, KindInt32, KindInt64,
		KindFloat32, KindFloat64, KindDecimal:
		return true
	}
}

func (k KindEnum) IsUnsigned() bool {
	switch k {
	default:
		return false
	case KindUint8, KindUint16, KindUint32, KindUint64:
		return true
	}
}

func (k KindEnum) Bits() int {
	switch k {
	default:
		panic("only numeric and character kinds have meaningful bits amount, but requested for: " + k.String())
	case KindInt8, KindUint8:
		return 8
	case KindInt16, KindUint16, KindChar:
		return 16
	case KindInt32, KindUint32, KindFloat32:
		return 32
	case KindInt64, KindUint64, KindFloat64:
		return 64
	case KindDecimal:
		return 128
	}
}

// Category returns the natural category of the kind.
// Every valid kind belongs to exactly one category.
func (k KindEnum) Category() CategoryEnum {
	switch k {
	default:
		return 0
	case KindInt8, KindInt16, KindInt32, KindInt64,
		KindUint8, KindUint16, KindUint32, KindUint64:
		return CategoryInteger
	case KindFloat32, KindFloat64, KindDecimal:
		return CategoryFloatingPoint
	case KindChar:
		return CategoryCharacter
	case KindBool:
		return CategoryBoolean
	}
}

// BoundConstants returns the names of the constants that hold the lower and
// upper bound of the kind. Booleans expose their literal spellings instead.
func (k KindEnum) BoundConstants() (lower, upper string) {
	if k == KindBool {
		return ConstFalseString, ConstTrueString
	}

	return ConstMinValue, ConstMaxValue
}

const (
	ConstMinValue    = "MinValue"
	ConstMaxValue    = "MaxValue"
	ConstFalseString = "FalseString"
	ConstTrueString  = "TrueString"
)
