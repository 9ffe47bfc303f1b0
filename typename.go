package lagraph

// TypeName returns the engine-facing type name for one of this module's
// built-in element domains (§4.A), mirroring the names Matrix-Market
// %%GraphBLAS extension lines (§4.B, §6) and the engine's own type
// introspection use.
func TypeName[T Element]() string {
	var zero T
	switch any(zero).(type) {
	case bool:
		return "bool"
	case int8:
		return "int8"
	case int16:
		return "int16"
	case int32:
		return "int32"
	case int64:
		return "int64"
	case uint8:
		return "uint8"
	case uint16:
		return "uint16"
	case uint32:
		return "uint32"
	case uint64:
		return "uint64"
	case float32:
		return "float"
	case float64:
		return "double"
	default:
		return "user-defined"
	}
}

// TypeFromName is the inverse of TypeName; an unrecognised name fails with
// InvalidValue (§4.A).
func TypeFromName(name string) (kind string, err error) {
	switch name {
	case "bool", "int8", "int16", "int32", "int64",
		"uint8", "uint16", "uint32", "uint64",
		"float", "double", "user-defined":
		return name, nil
	default:
		return "", newError(InvalidValue, "lagraph.TypeFromName", "unknown type name %q", name)
	}
}
