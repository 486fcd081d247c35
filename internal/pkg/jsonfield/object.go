// Package jsonfield decodes JSON objects whose members may arrive under
// alternative key names.
//
// A backend that mixes storage-native keys ("_id") with explicit ones ("id")
// is described once per shape as a table of Bindings; each Binding lists its
// candidate keys in priority order:
//
//	obj.Bind(
//		jsonfield.Field(&u.ID, "id", "_id"),
//		jsonfield.Field(&u.Email, "email"),
//	)
package jsonfield

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Object is a decoded JSON object keyed by member name.
type Object map[string]json.RawMessage

// Binding copies one logical field out of an Object.
type Binding func(Object) error

var null = []byte("null")

// Parse decodes data as a JSON object.
func Parse(data []byte) (Object, error) {
	var obj Object
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, fmt.Errorf("jsonfield: expected object, got null")
	}
	return obj, nil
}

// Lookup returns the value of the first candidate key that is present and not
// null.
func (o Object) Lookup(keys ...string) (json.RawMessage, bool) {
	for _, k := range keys {
		raw, ok := o[k]
		if !ok || bytes.Equal(bytes.TrimSpace(raw), null) {
			continue
		}
		return raw, true
	}
	return nil, false
}

// Bind applies bindings in order and stops at the first failure.
func (o Object) Bind(bindings ...Binding) error {
	for _, b := range bindings {
		if err := b(o); err != nil {
			return err
		}
	}
	return nil
}

// Field binds the first present candidate key into dst. When none of the keys
// carries a value dst is set to nil. A value of the wrong type is an error.
func Field[T any](dst **T, keys ...string) Binding {
	return func(o Object) error {
		*dst = nil
		for _, k := range keys {
			raw, ok := o.Lookup(k)
			if !ok {
				continue
			}
			v := new(T)
			if err := json.Unmarshal(raw, v); err != nil {
				return fmt.Errorf("field %q: %w", k, err)
			}
			*dst = v
			return nil
		}
		return nil
	}
}

// Slice binds a JSON array; absence leaves dst nil.
func Slice[T any](dst *[]T, keys ...string) Binding {
	return func(o Object) error {
		*dst = nil
		raw, ok := o.Lookup(keys...)
		if !ok {
			return nil
		}
		var v []T
		if err := json.Unmarshal(raw, &v); err != nil {
			return fmt.Errorf("field %q: %w", firstPresent(o, keys), err)
		}
		*dst = v
		return nil
	}
}

func firstPresent(o Object, keys []string) string {
	for _, k := range keys {
		if _, ok := o.Lookup(k); ok {
			return k
		}
	}
	return ""
}
