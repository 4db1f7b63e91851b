package usecase

import (
	"math"
	"reflect"
	"regexp"
	"strings"

	domainerrors "hbnb/internal/domain/errors"
	"hbnb/internal/errors"

	"github.com/go-viper/mapstructure/v2"
)

// Fields is a field-name to value mapping as decoded from a JSON object.
type Fields map[string]any

// decodeFieldName picks the first quoted name out of a mapstructure error.
var decodeFieldName = regexp.MustCompile(`'([^']+)'`)

// DecodeFields copies fields into out, a pointer to one of the input structs,
// matching keys against json tags. Keys out has no field for are dropped;
// absent and null keys leave pointer fields nil. A non-integral number for an
// integer field, or a value of the wrong type, is a ValidationError.
func DecodeFields(fields Fields, out any) error {
	if err := checkIntegers(fields, out); err != nil {
		return err
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Result:  out,
	})
	if err != nil {
		return errors.Wrap(err, "mapstructure.NewDecoder")
	}

	if err := decoder.Decode(map[string]any(fields)); err != nil {
		field := "body"
		if m := decodeFieldName.FindStringSubmatch(err.Error()); m != nil {
			field = m[1]
		}

		return domainerrors.NewValidationError(field, "type", field+" has the wrong type")
	}

	return nil
}

// checkIntegers rejects float values with a fractional part for int fields of
// out, which mapstructure would otherwise truncate.
func checkIntegers(fields Fields, out any) error {
	t := reflect.TypeOf(out)
	if t == nil || t.Kind() != reflect.Pointer || t.Elem().Kind() != reflect.Struct {
		return errors.Errorf("decode target must be a pointer to a struct, got %T", out)
	}
	t = t.Elem()

	for i := range t.NumField() {
		field := t.Field(i)
		kind := field.Type.Kind()
		if kind == reflect.Pointer {
			kind = field.Type.Elem().Kind()
		}
		if kind != reflect.Int {
			continue
		}

		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		value, ok := fields[name].(float64)
		if ok && value != math.Trunc(value) {
			return domainerrors.NewValidationError(name, "integer", name+" must be an integer")
		}
	}

	return nil
}
