package auroradataapi

import (
	"math/big"
	"reflect"
	"strings"
	"time"
)

// columnType is the resolved semantic type of a result column.
type columnType int

const (
	typeString columnType = iota
	typeInt
	typeFloat
	typeBool
	typeBinary
	typeDate
	typeTime
	typeTimestamp
	typeDecimal
	typeJSON
	typeNetwork
	typeMoney
	typeUUID
)

// pgTypeMap resolves the engine-reported column type name, lowercased, to a
// semantic type. Unknown names resolve to typeString.
var pgTypeMap = map[string]columnType{
	"int":       typeInt,
	"int2":      typeInt,
	"int4":      typeInt,
	"int8":      typeInt,
	"serial2":   typeInt,
	"serial4":   typeInt,
	"serial8":   typeInt,
	"float4":    typeFloat,
	"float8":    typeFloat,
	"bool":      typeBool,
	"varbit":    typeBinary,
	"bytea":     typeBinary,
	"char":      typeString,
	"varchar":   typeString,
	"text":      typeString,
	"cidr":      typeNetwork,
	"inet":      typeNetwork,
	"date":      typeDate,
	"time":      typeTime,
	"timestamp": typeTimestamp,
	"json":      typeJSON,
	"jsonb":     typeJSON,
	"money":     typeMoney,
	"numeric":   typeDecimal,
	"decimal":   typeDecimal,
	"uuid":      typeUUID,
}

func columnTypeOf(typeName string) columnType {
	if ct, ok := pgTypeMap[strings.ToLower(typeName)]; ok {
		return ct
	}
	return typeString
}

// scanType returns the Go type produced for the column, for
// database/sql column type introspection.
func (ct columnType) scanType() reflect.Type {
	switch ct {
	case typeInt:
		return reflect.TypeOf(int64(0))
	case typeFloat:
		return reflect.TypeOf(float64(0))
	case typeBool:
		return reflect.TypeOf(true)
	case typeBinary:
		return reflect.TypeOf([]byte{})
	case typeDate:
		return reflect.TypeOf(Date{})
	case typeTime:
		return reflect.TypeOf(TimeOfDay{})
	case typeTimestamp:
		return reflect.TypeOf(time.Time{})
	case typeDecimal:
		return reflect.TypeOf(&big.Float{})
	}
	return reflect.TypeOf("")
}

// ColumnDescription describes one result column: its name, the engine's
// reported type name and the resolved semantic type.
type ColumnDescription struct {
	Name         string
	DatabaseType string
	typeCode     columnType
}
