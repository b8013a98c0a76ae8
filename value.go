package uritemplate

import (
	"encoding/json"
	"errors"
	"reflect"
	"strconv"
	"time"
)

// Stringable is an interface that can be implemented by values passed to the
// Expand methods to control how the value is represented
type Stringable interface {
	String() string
}

var errUnknownValueType = errors.New("unknown value type")

// encodeValue is the value collaborator - turning each supported value type
// into the string form substituted into templates
func encodeValue(v interface{}) (string, error) {
	switch av := v.(type) {
	case nil:
		return "", errUnknownValueType
	case string:
		return av, nil
	case bool:
		return strconv.FormatBool(av), nil
	case int:
		return strconv.Itoa(av), nil
	case int8, int16, int32, int64:
		return strconv.FormatInt(reflect.ValueOf(v).Int(), 10), nil
	case uint, uint8, uint16, uint32, uint64:
		return strconv.FormatUint(reflect.ValueOf(v).Uint(), 10), nil
	case float32:
		return strconv.FormatFloat(float64(av), 'g', -1, 32), nil
	case float64:
		return strconv.FormatFloat(av, 'g', -1, 64), nil
	case time.Time:
		return av.Format(time.RFC3339), nil
	case *time.Time:
		if av == nil {
			return "", errUnknownValueType
		}
		return av.Format(time.RFC3339), nil
	case Stringable:
		return av.String(), nil
	case func() string:
		return av(), nil
	}
	return encodeFallbackValue(v)
}

// anything else - a no-arg func returning string, or a value that marshals
// to JSON (with string results unquoted)
func encodeFallbackValue(v interface{}) (string, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Func {
		ft := rv.Type()
		if ft.NumIn() != 0 || ft.NumOut() != 1 || ft.Out(0).Kind() != reflect.String {
			return "", errUnknownValueType
		}
		return rv.Call(nil)[0].String(), nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return "", errUnknownValueType
	}
	str := string(data)
	if len(str) > 1 && str[0] == '"' && str[len(str)-1] == '"' {
		str = str[1 : len(str)-1]
	}
	return str, nil
}

func encodeValues(values []interface{}) ([]string, error) {
	result := make([]string, len(values))
	for i, v := range values {
		str, err := encodeValue(v)
		if err != nil {
			return nil, err
		}
		result[i] = str
	}
	return result, nil
}
