package codegen

import (
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-config-gen/models"
)

// ValueType is the generated scalar type of a leaf value.
type ValueType string

const (
	TypeBool    ValueType = "bool"
	TypeInt     ValueType = "int"
	TypeLong    ValueType = "long"
	TypeDecimal ValueType = "decimal"
	TypeString  ValueType = "string"
)

// ArrayOf returns the array type with elements of t.
func (t ValueType) ArrayOf() ValueType {
	return t + "[]"
}

// InferValueType classifies a scalar node. Numbers take the smallest of
// int, long and decimal that holds the literal exactly, tried in that order;
// fractions and exponents always yield decimal.
func InferValueType(n *models.Node) (ValueType, error) {
	if n == nil {
		return "", fmt.Errorf("%w: missing value", ErrUnsupportedValueKind)
	}

	switch n.Kind {
	case models.KindBool:
		return TypeBool, nil
	case models.KindString:
		return TypeString, nil
	case models.KindNumber:
		if _, err := strconv.ParseInt(n.Number, 10, 32); err == nil {
			return TypeInt, nil
		}
		if _, err := strconv.ParseInt(n.Number, 10, 64); err == nil {
			return TypeLong, nil
		}
		return TypeDecimal, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedValueKind, n.Kind)
	}
}

// InferArrayItemType returns the element type of a scalar array, judged by
// its first element only. The second result is false when the array is empty
// or starts with null, an object or an array; such arrays are not typed.
func InferArrayItemType(n *models.Node) (ValueType, bool, error) {
	if n == nil || n.Kind != models.KindArray {
		return "", false, fmt.Errorf("%w: expected array", ErrUnsupportedValueKind)
	}
	if len(n.Items) == 0 || !n.Items[0].IsScalar() {
		return "", false, nil
	}

	t, err := InferValueType(n.Items[0])
	if err != nil {
		return "", false, err
	}
	return t, true, nil
}
