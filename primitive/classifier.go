package primitive

import "maps"

// Classifier maps canonical type names onto kinds.
// Names missing from the classifier are not primitives of interest.
type Classifier map[string]KindEnum

// Classify returns the kind for the canonical name, if it is known.
func (c Classifier) Classify(canonicalName string) (KindEnum, bool) {
	kind, ok := c[canonicalName]
	if !ok || !kind.IsValid() {
		return 0, false
	}

	return kind, true
}

// With returns a copy of the classifier extended by other.
// Entries of other win on conflicts.
func (c Classifier) With(other Classifier) Classifier {
	res := make(Classifier, len(c)+len(other))
	maps.Copy(res, c)
	maps.Copy(res, other)

	return res
}

// CLR returns the classifier for canonical names of the common language runtime core library.
func CLR() Classifier {
	return Classifier{
		"System.SByte":   KindInt8,
		"System.Int16":   KindInt16,
		"System.Int32":   KindInt32,
		"System.Int64":   KindInt64,
		"System.Byte":    KindUint8,
		"System.UInt16":  KindUint16,
		"System.UInt32":  KindUint32,
		"System.UInt64":  KindUint64,
		"System.Single":  KindFloat32,
		"System.Double":  KindFloat64,
		"System.Decimal": KindDecimal,
		"System.Boolean": KindBool,
		"System.Char":    KindChar,
	}
}

// Go returns the classifier for the predeclared basic types of Go.
// Go has neither a decimal nor a distinct character type, rune being an alias of int32.
func Go() Classifier {
	return Classifier{
		"int8":    KindInt8,
		"int16":   KindInt16,
		"int32":   KindInt32,
		"int64":   KindInt64,
		"uint8":   KindUint8,
		"uint16":  KindUint16,
		"uint32":  KindUint32,
		"uint64":  KindUint64,
		"float32": KindFloat32,
		"float64": KindFloat64,
		"bool":    KindBool,
	}
}
