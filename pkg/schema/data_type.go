package schema

import (
	"fmt"
	"strings"
)

// DataType is the resolved primitive type tag for a variable's values.
type DataType string

const (
	DataTypeString  DataType = "string"
	DataTypeInt8    DataType = "int8"
	DataTypeUint8   DataType = "uint8"
	DataTypeInt16   DataType = "int16"
	DataTypeUint16  DataType = "uint16"
	DataTypeInt32   DataType = "int32"
	DataTypeInt64   DataType = "int64"
	DataTypeUint64  DataType = "uint64"
	DataTypeFloat32 DataType = "float32"
	DataTypeFloat64 DataType = "float64"
)

// dataTypeTable maps the type names permitted in a dataset definition document
// to resolved tags. Entry order is the order names are listed in error
// messages.
var dataTypeTable = []struct {
	name     string
	dataType DataType
}{
	{"string", DataTypeString},
	{"char", DataTypeString},
	{"byte", DataTypeInt8},
	{"ubyte", DataTypeUint8},
	{"short", DataTypeInt16},
	{"ushort", DataTypeUint16},
	{"long", DataTypeInt64},
	{"ulong", DataTypeUint64},
	{"int", DataTypeInt32},
	{"float", DataTypeFloat32},
	{"double", DataTypeFloat64},
}

// ParseDataType resolves a type name from a dataset definition document to its
// primitive type tag.
func ParseDataType(name string) (DataType, error) {
	for _, entry := range dataTypeTable {
		if entry.name == name {
			return entry.dataType, nil
		}
	}

	valid := make([]string, 0, len(dataTypeTable))
	for _, entry := range dataTypeTable {
		valid = append(valid, entry.name)
	}
	return "", fmt.Errorf("%q is not a standard data type, the data type must be one of: %s", name, strings.Join(valid, ", "))
}
