package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func init() {
	// Report fields by their JSON names so errors match the request body
	validate.RegisterTagNameFunc(jsonName)
}

// ValidationError is returned when a payload does not match the schema
type ValidationError struct {
	Fields []string
	Reason string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("invalid payload: missing or invalid fields: %s", strings.Join(e.Fields, ", "))
	}
	return "invalid payload: " + e.Reason
}

// Validate checks v against its struct tags
func Validate(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &ValidationError{Reason: err.Error()}
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		// Namespace is prefixed with the root type name, e.g. Content.hero.badge
		ns := fe.Namespace()
		if i := strings.IndexByte(ns, '.'); i >= 0 {
			ns = ns[i+1:]
		}
		fields = append(fields, ns)
	}
	return &ValidationError{Fields: fields}
}

// Decode reads exactly one JSON document from r into v, rejecting unknown
// fields, then checks that every required key is present and validates it.
// A body over the reader's limit is returned as *http.MaxBytesError.
func Decode(r io.Reader, v interface{}) error {
	data, err := io.ReadAll(r)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return err
		}
		return &ValidationError{Reason: err.Error()}
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return &ValidationError{Reason: "empty body"}
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		return &ValidationError{Reason: err.Error()}
	}
	if dec.More() {
		return &ValidationError{Reason: "unexpected data after JSON document"}
	}

	return check(data, v)
}

// Unmarshal is the lenient counterpart of Decode for documents read back
// from storage: unknown keys are ignored, required keys are not.
func Unmarshal(data []byte, v interface{}) error {
	if err := json.Unmarshal(data, v); err != nil {
		return &ValidationError{Reason: err.Error()}
	}
	return check(data, v)
}

func check(data []byte, v interface{}) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return &ValidationError{Reason: err.Error()}
	}
	if _, ok := raw.(map[string]interface{}); !ok {
		return &ValidationError{Reason: "expected a JSON object"}
	}

	if missing := missingFields(raw, reflect.TypeOf(v), ""); len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}

	return Validate(v)
}

// missingFields lists the non-pointer fields of t whose keys are absent or
// null in raw. Pointer fields are optional but checked when present.
func missingFields(raw interface{}, t reflect.Type, path string) []string {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.Struct:
		obj, ok := raw.(map[string]interface{})
		if !ok {
			// Type mismatches are reported by the JSON decoder; null list items are not
			if raw == nil && path != "" {
				return []string{path}
			}
			return nil
		}

		var missing []string
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			name := jsonName(f)
			if name == "" || !f.IsExported() {
				continue
			}
			fieldPath := name
			if path != "" {
				fieldPath = path + "." + name
			}

			val, ok := obj[name]
			if !ok || val == nil {
				if f.Type.Kind() != reflect.Ptr {
					missing = append(missing, fieldPath)
				}
				continue
			}
			missing = append(missing, missingFields(val, f.Type, fieldPath)...)
		}
		return missing

	case reflect.Slice:
		items, ok := raw.([]interface{})
		if !ok {
			return nil
		}

		var missing []string
		for i, item := range items {
			missing = append(missing, missingFields(item, t.Elem(), fmt.Sprintf("%s[%d]", path, i))...)
		}
		return missing
	}

	return nil
}

func jsonName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}
