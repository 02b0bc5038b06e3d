package binder

import (
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"reflect"
	"strings"
)

// Form creates a binder for application/x-www-form-urlencoded bodies.
//
// Fields are matched by the `form:"name"` tag; untagged fields use the
// lowercased field name and `form:"-"` skips a field. Only string and
// []string fields are supported.
//
// Requests with another content type yield ErrBinderNotApplicable.
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if mediaType(r) != "application/x-www-form-urlencoded" {
			return ErrBinderNotApplicable
		}

		body, err := readBody(r)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
		}

		values, err := url.ParseQuery(string(body))
		if err != nil {
			return fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
		}

		return bindToStruct(v, "form", values, ErrFailedToParseForm)
	}
}

// bindToStruct copies values into the tagged string fields of the struct pointed to by v.
func bindToStruct(v any, tagName string, values url.Values, bindErr error) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("%w: target must be a non-nil pointer", bindErr)
	}

	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return fmt.Errorf("%w: target must be a pointer to struct", bindErr)
	}

	rt := rv.Type()
	for i := range rv.NumField() {
		field := rv.Field(i)
		fieldType := rt.Field(i)
		if !field.CanSet() {
			continue
		}

		name, skip := parseFieldTag(fieldType, tagName)
		if skip {
			continue
		}

		fieldValues, ok := values[name]
		if !ok || len(fieldValues) == 0 {
			continue
		}

		switch {
		case field.Kind() == reflect.String:
			field.SetString(fieldValues[0])
		case field.Kind() == reflect.Slice && fieldType.Type.Elem().Kind() == reflect.String:
			field.Set(reflect.ValueOf(append([]string(nil), fieldValues...)).Convert(fieldType.Type))
		default:
			return fmt.Errorf("%w: field %s: unsupported type %s", bindErr, fieldType.Name, fieldType.Type)
		}
	}

	return nil
}

// parseFieldTag returns the parameter name for field and whether it is skipped.
func parseFieldTag(field reflect.StructField, tagName string) (string, bool) {
	tag := field.Tag.Get(tagName)
	if tag == "" {
		return strings.ToLower(field.Name), false
	}
	if tag == "-" {
		return "", true
	}
	name, _, _ := strings.Cut(tag, ",")
	return name, false
}

// mediaType returns the request media type without parameters, lowercased.
func mediaType(r *http.Request) string {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return ""
	}
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	return mt
}
