package auroradataapi

import (
	"fmt"
	"math/big"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rdsdata/types"
)

// Date is a calendar date. Binding one sends its text form with a DATE type
// hint; DATE columns decode back into it.
type Date struct {
	time.Time
}

// TimeOfDay is a wall-clock time of day. Binding one sends its text form with
// a TIME type hint; TIME columns decode back into it.
type TimeOfDay struct {
	time.Time
}

const (
	dateFormat = "2006-01-02"
	// trailing fractional digits are trimmed by time.Format when zero
	timeFormat      = "15:04:05.999999"
	timestampFormat = "2006-01-02 15:04:05.999999"
)

// timestampLayouts are tried in order when re-parsing a TIMESTAMP column's
// textual value.
var timestampLayouts = []string{
	timestampFormat,
	"2006-01-02T15:04:05.999999",
	time.RFC3339Nano,
}

var timeLayouts = []string{
	timeFormat,
	"15:04:05.999999999",
}

// prepareParam encodes one named host value into its wire representation.
// Values outside the tagged wire set are coerced to their string form; date,
// time, timestamp and decimal values additionally carry a type hint so the
// engine parses them with the intended semantics.
func prepareParam(name string, value interface{}) types.SqlParameter {
	param := types.SqlParameter{Name: aws.String(name)}
	switch v := value.(type) {
	case nil:
		param.Value = &types.FieldMemberIsNull{Value: true}
	case bool:
		param.Value = &types.FieldMemberBooleanValue{Value: v}
	case int:
		param.Value = &types.FieldMemberLongValue{Value: int64(v)}
	case int8:
		param.Value = &types.FieldMemberLongValue{Value: int64(v)}
	case int16:
		param.Value = &types.FieldMemberLongValue{Value: int64(v)}
	case int32:
		param.Value = &types.FieldMemberLongValue{Value: int64(v)}
	case int64:
		param.Value = &types.FieldMemberLongValue{Value: v}
	case uint:
		param.Value = &types.FieldMemberLongValue{Value: int64(v)}
	case uint8:
		param.Value = &types.FieldMemberLongValue{Value: int64(v)}
	case uint16:
		param.Value = &types.FieldMemberLongValue{Value: int64(v)}
	case uint32:
		param.Value = &types.FieldMemberLongValue{Value: int64(v)}
	case float32:
		param.Value = &types.FieldMemberDoubleValue{Value: float64(v)}
	case float64:
		param.Value = &types.FieldMemberDoubleValue{Value: v}
	case string:
		param.Value = &types.FieldMemberStringValue{Value: v}
	case []byte:
		param.Value = &types.FieldMemberBlobValue{Value: v}
	case Date:
		param.Value = &types.FieldMemberStringValue{Value: v.Format(dateFormat)}
		param.TypeHint = types.TypeHintDate
	case TimeOfDay:
		param.Value = &types.FieldMemberStringValue{Value: v.Format(timeFormat)}
		param.TypeHint = types.TypeHintTime
	case time.Time:
		param.Value = &types.FieldMemberStringValue{Value: v.Format(timestampFormat)}
		param.TypeHint = types.TypeHintTimestamp
	case *big.Float:
		param.Value = &types.FieldMemberStringValue{Value: v.Text('f', -1)}
		param.TypeHint = types.TypeHintDecimal
	default:
		param.Value = &types.FieldMemberStringValue{Value: fmt.Sprint(v)}
	}
	return param
}

// renderValue decodes one wire field into a host value, re-parsing textual
// scalars according to the column's semantic type.
func renderValue(field types.Field, ct columnType) (interface{}, error) {
	switch v := field.(type) {
	case *types.FieldMemberIsNull:
		return nil, nil
	case *types.FieldMemberBooleanValue:
		return v.Value, nil
	case *types.FieldMemberLongValue:
		return v.Value, nil
	case *types.FieldMemberDoubleValue:
		return v.Value, nil
	case *types.FieldMemberBlobValue:
		return v.Value, nil
	case *types.FieldMemberStringValue:
		return renderString(v.Value, ct)
	case *types.FieldMemberArrayValue:
		return renderArrayValue(v.Value)
	}
	return nil, &AuroraError{
		Kind:    KindDataError,
		Message: fmt.Sprintf("unexpected wire value of type %T", field),
	}
}

// renderArrayValue decodes element by element when a nested homogeneous array
// is present, and otherwise degrades to the typed list the wrapper encloses.
func renderArrayValue(av types.ArrayValue) (interface{}, error) {
	switch v := av.(type) {
	case *types.ArrayValueMemberArrayValues:
		out := make([]interface{}, len(v.Value))
		for i, nested := range v.Value {
			rendered, err := renderArrayValue(nested)
			if err != nil {
				return nil, err
			}
			out[i] = rendered
		}
		return out, nil
	case *types.ArrayValueMemberBooleanValues:
		return v.Value, nil
	case *types.ArrayValueMemberLongValues:
		return v.Value, nil
	case *types.ArrayValueMemberDoubleValues:
		return v.Value, nil
	case *types.ArrayValueMemberStringValues:
		return v.Value, nil
	}
	return nil, &AuroraError{
		Kind:    KindDataError,
		Message: fmt.Sprintf("unexpected array value of type %T", av),
	}
}

func renderString(s string, ct columnType) (interface{}, error) {
	switch ct {
	case typeDate:
		t, err := time.Parse(dateFormat, s)
		if err != nil {
			return nil, dataError("DATE", s)
		}
		return Date{t}, nil
	case typeTime:
		for _, layout := range timeLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return TimeOfDay{t}, nil
			}
		}
		return nil, dataError("TIME", s)
	case typeTimestamp:
		for _, layout := range timestampLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, nil
			}
		}
		return nil, dataError("TIMESTAMP", s)
	case typeDecimal:
		d, ok := new(big.Float).SetString(s)
		if !ok {
			return nil, dataError("DECIMAL", s)
		}
		return d, nil
	}
	return s, nil
}

func dataError(typeName, raw string) *AuroraError {
	return &AuroraError{
		Kind:    KindDataError,
		Message: fmt.Sprintf("cannot decode %q as %s", raw, typeName),
	}
}
