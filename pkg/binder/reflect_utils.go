package binder

import (
	"fmt"
	"mime"
	"net/http"
	"reflect"
	"strconv"
	"strings"
)

// mediaType returns the request media type without parameters.
func mediaType(r *http.Request) string {
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		return ""
	}
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return strings.TrimSpace(strings.SplitN(ct, ";", 2)[0])
	}
	return mt
}

// parseFieldTag returns the parameter name for field under tag. Fields without
// the tag use their Go name; "-" skips the field.
func parseFieldTag(field reflect.StructField, tag string) (string, bool) {
	v, ok := field.Tag.Lookup(tag)
	if !ok {
		return "", true
	}
	name, _, _ := strings.Cut(v, ",")
	if name == "-" {
		return "", true
	}
	if name == "" {
		name = field.Name
	}
	return name, false
}

// bindToStruct copies values into the tagged fields of the struct v points to.
func bindToStruct(v any, tag string, values map[string][]string, kind error) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("%w: target must be a non-nil pointer", kind)
	}
	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return fmt.Errorf("%w: target must be a pointer to struct", kind)
	}

	rt := rv.Type()
	for i := range rv.NumField() {
		field := rv.Field(i)
		fieldType := rt.Field(i)
		if !field.CanSet() {
			continue
		}

		name, skip := parseFieldTag(fieldType, tag)
		if skip {
			continue
		}
		vals, ok := values[name]
		if !ok || len(vals) == 0 {
			continue
		}
		if err := setFieldValue(field, fieldType.Type, vals); err != nil {
			return fmt.Errorf("%w: field %s: %v", kind, name, err)
		}
	}
	return nil
}

// setFieldValue supports strings, integers, booleans, pointers to those and
// string slices.
func setFieldValue(field reflect.Value, typ reflect.Type, vals []string) error {
	if typ.Kind() == reflect.Pointer {
		ptr := reflect.New(typ.Elem())
		if err := setFieldValue(ptr.Elem(), typ.Elem(), vals); err != nil {
			return err
		}
		field.Set(ptr)
		return nil
	}

	if typ.Kind() == reflect.Slice && typ.Elem().Kind() == reflect.String {
		field.Set(reflect.ValueOf(append([]string(nil), vals...)).Convert(typ))
		return nil
	}

	raw := vals[0]
	switch typ.Kind() {
	case reflect.String:
		field.SetString(raw)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, typ.Bits())
		if err != nil {
			return err
		}
		field.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(raw, 10, typ.Bits())
		if err != nil {
			return err
		}
		field.SetUint(n)
	case reflect.Bool:
		if raw == "on" {
			field.SetBool(true)
			return nil
		}
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return err
		}
		field.SetBool(b)
	default:
		return fmt.Errorf("unsupported type %s", typ)
	}
	return nil
}
