// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package formstate

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"
	"sync"

	"github.com/go-viper/mapstructure/v2"
)

// defaultAmbientTag is the struct tag used to name struct fields of an ambient state.
const defaultAmbientTag = "json"

// fieldMapKey identifies a cached struct field map.
type fieldMapKey struct {
	typ reflect.Type
	tag string
}

// fieldMapCache caches struct field lookups: fieldMapKey -> map[string][]int.
var fieldMapCache sync.Map

// Lookup returns the value named field in an ambient state.
//
// The ambient state may be nil, a map with string keys, or a struct (or pointer
// to struct) whose fields are named by their json tag, falling back to the Go
// field name. Fields of untagged embedded structs are promoted like
// encoding/json does. The second result is false if the field is absent, sits
// behind a nil embedded pointer, or the state cannot be read.
//
// Example:
//
//	v, ok := formstate.Lookup(map[string]any{"age": 42}, "age") // 42, true
func Lookup(state any, field string) (any, bool) {
	v, ok, _ := lookup(state, field, defaultAmbientTag)
	return v, ok
}

// lookup reads field from state. The error is non-nil only when the kind of
// state cannot hold named fields.
func lookup(state any, field, tag string) (any, bool, error) {
	switch s := state.(type) {
	case nil:
		return nil, false, nil
	case map[string]any:
		v, ok := s[field]
		return v, ok, nil
	}

	rv := reflect.ValueOf(state)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false, nil
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false, fmt.Errorf("%w: map key type %s", ErrUnsupportedAmbient, rv.Type().Key())
		}
		mv := rv.MapIndex(reflect.ValueOf(field).Convert(rv.Type().Key()))
		if !mv.IsValid() {
			return nil, false, nil
		}
		return mv.Interface(), true, nil

	case reflect.Struct:
		index, ok := structFieldMap(rv.Type(), tag)[field]
		if !ok {
			return nil, false, nil
		}
		fv, err := rv.FieldByIndexErr(index)
		if err != nil {
			// nil embedded pointer
			return nil, false, nil
		}
		return fv.Interface(), true, nil

	default:
		return nil, false, fmt.Errorf("%w: %s", ErrUnsupportedAmbient, rv.Kind())
	}
}

// structFieldMap returns the index paths of the exported fields of t keyed by
// their tag name. Fields of embedded structs without a tag name are promoted
// as in encoding/json: a shallower field wins over a deeper one, and among
// fields at the same depth the first declared wins.
func structFieldMap(t reflect.Type, tag string) map[string][]int {
	key := fieldMapKey{typ: t, tag: tag}
	if cached, ok := fieldMapCache.Load(key); ok {
		if fm, fmOk := cached.(map[string][]int); fmOk {
			return fm
		}
	}

	fm := make(map[string][]int, t.NumField())
	collectFields(t, tag, nil, fm, map[reflect.Type]bool{t: true})

	actual, _ := fieldMapCache.LoadOrStore(key, fm)
	if result, ok := actual.(map[string][]int); ok {
		return result
	}

	return fm
}

// collectFields adds the fields of t, found under the index path parent, to fm.
// visiting holds the struct types on the current embedding chain.
func collectFields(t reflect.Type, tag string, parent []int, fm map[string][]int, visiting map[reflect.Type]bool) {
	for i := range t.NumField() {
		f := t.Field(i)
		name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
		if name == "-" {
			continue
		}
		index := append(slices.Clone(parent), i)

		if f.Anonymous && name == "" {
			ft := f.Type
			if ft.Kind() == reflect.Pointer {
				if !f.IsExported() {
					continue
				}
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct {
				if !visiting[ft] {
					visiting[ft] = true
					collectFields(ft, tag, index, fm, visiting)
					delete(visiting, ft)
				}
				continue
			}
		}

		if !f.IsExported() {
			continue
		}
		if name == "" {
			name = f.Name
		}
		if prev, ok := fm[name]; ok && len(prev) <= len(index) {
			continue
		}
		fm[name] = index
	}
}

// withValue returns state with field set to value.
// Only map[string]any states can be extended; the input map is copied, never
// modified. Other states are returned as is.
func withValue(state any, field string, value any) any {
	switch s := state.(type) {
	case nil:
		return map[string]any{field: value}
	case map[string]any:
		out := make(map[string]any, len(s)+1)
		maps.Copy(out, s)
		out[field] = value
		return out
	default:
		return state
	}
}

// DecodeAmbient decodes an ambient state into a value of type T.
// It lets predicates work with a typed view of map-shaped ambient state.
// Field names are matched by json tag, and compatible scalar types are
// converted (for example "42" into an int).
//
// Example:
//
//	type Profile struct {
//	    Dingo bool `json:"dingo"`
//	}
//
//	rule := formstate.NewRule("Must be dingo.", func(value, state any) bool {
//	    p, err := formstate.DecodeAmbient[Profile](state)
//	    if err != nil || !p.Dingo {
//	        return true
//	    }
//	    return value == "dingo"
//	})
func DecodeAmbient[T any](state any) (T, error) {
	var out T
	if state == nil {
		return out, nil
	}
	if v, ok := state.(T); ok {
		return v, nil
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          defaultAmbientTag,
		WeaklyTypedInput: true,
		Result:           &out,
	})
	if err != nil {
		return out, fmt.Errorf("create ambient decoder: %w", err)
	}
	if err := dec.Decode(state); err != nil {
		return out, fmt.Errorf("decode ambient state: %w", err)
	}

	return out, nil
}
