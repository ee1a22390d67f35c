package types

import (
	"bytes"
	"encoding/json"
	"time"
)

// FieldKind selects the transform applied to one declared field during
// hydration. The hydrator itself carries no per-schema branching; each
// object kind contributes a Plan and the hydrator consumes it generically.
type FieldKind int

const (
	// FieldPlain passes the raw value through; typed getters decode it.
	FieldPlain FieldKind = iota
	// FieldObject recursively hydrates a nested object.
	FieldObject
	// FieldObjectList hydrates an ordered collection of nested objects.
	FieldObjectList
	// FieldTime normalizes epoch seconds against the context timezone.
	FieldTime
)

// HydrateFunc hydrates one nested object from its raw JSON form. Every
// object kind exposes one, which is what lets the hydrator delegate
// uniformly to nested kinds.
type HydrateFunc func(data json.RawMessage, ctx *Context) (Value, error)

// Field declares how one key of a raw payload is consumed.
type Field struct {
	Key    string
	Kind   FieldKind
	Nested HydrateFunc // FieldObject and FieldObjectList only
}

// Plan is the declared field layout of one object kind.
type Plan struct {
	Object string
	Fields []Field
}

// declaredKeys returns the set of keys the plan consumes.
func (p Plan) declaredKeys() map[string]struct{} {
	out := make(map[string]struct{}, len(p.Fields))
	for _, f := range p.Fields {
		out[f.Key] = struct{}{}
	}
	return out
}

// Fields is the transformed view of one raw JSON object: nested objects
// and collections already hydrated, timestamps already normalized, plain
// fields decoded on demand through the typed getters.
type Fields struct {
	object   string
	raw      map[string]json.RawMessage
	objects  map[string]Value
	lists    map[string][]Value
	times    map[string]*time.Time
	declared map[string]struct{}
}

var jsonNull = []byte("null")

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(raw, jsonNull)
}

// Hydrate applies a plan to a raw JSON object. A nil or null payload
// yields (nil, nil): an absent object is not an error. The input bytes are
// re-parsed into a fresh map, so caller-owned data is never mutated. A
// failure on any nested field aborts the whole hydration; no partially
// hydrated view is ever returned.
func Hydrate(data json.RawMessage, ctx *Context, plan Plan) (*Fields, error) {
	if isNull(data) {
		return nil, nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, schemaErr(plan.Object, "", "payload is not a JSON object")
	}

	f := &Fields{
		object:   plan.Object,
		raw:      raw,
		objects:  map[string]Value{},
		lists:    map[string][]Value{},
		times:    map[string]*time.Time{},
		declared: make(map[string]struct{}, len(plan.Fields)),
	}

	for _, fd := range plan.Fields {
		f.declared[fd.Key] = struct{}{}
		switch fd.Kind {
		case FieldObject:
			v, err := fd.Nested(raw[fd.Key], ctx)
			if err != nil {
				return nil, err
			}
			if v != nil {
				f.objects[fd.Key] = v
			}
		case FieldObjectList:
			vs, err := hydrateList(raw[fd.Key], ctx, plan.Object, fd)
			if err != nil {
				return nil, err
			}
			f.lists[fd.Key] = vs
		case FieldTime:
			sec, err := decodeField[int64](f, fd.Key)
			if err != nil {
				return nil, schemaErr(plan.Object, fd.Key, "expected unix timestamp")
			}
			f.times[fd.Key] = FromUnix(sec, ctx.Timezone())
		}
	}

	return f, nil
}

// hydrateList turns an optional raw array into an ordered collection of
// hydrated objects. An absent or null array reads as empty; null elements
// are skipped.
func hydrateList(data json.RawMessage, ctx *Context, object string, fd Field) ([]Value, error) {
	if isNull(data) {
		return []Value{}, nil
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		return nil, schemaErr(object, fd.Key, "expected array")
	}
	out := make([]Value, 0, len(elems))
	for _, e := range elems {
		v, err := fd.Nested(e, ctx)
		if err != nil {
			return nil, err
		}
		if v != nil {
			out = append(out, v)
		}
	}
	return out, nil
}

// decodeField decodes a plain field into T. Absent and null both read as
// nil; a value of the wrong JSON type is an error.
func decodeField[T any](f *Fields, key string) (*T, error) {
	raw, ok := f.raw[key]
	if !ok || isNull(raw) {
		return nil, nil
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// Object returns a hydrated nested object, or nil when absent.
func (f *Fields) Object(key string) Value { return f.objects[key] }

// List returns a hydrated nested collection; absent reads as empty.
func (f *Fields) List(key string) []Value { return f.lists[key] }

// Time returns a normalized timestamp field, or nil when absent.
func (f *Fields) Time(key string) *time.Time { return f.times[key] }

// OptString returns an optional string field.
func (f *Fields) OptString(key string) (*string, error) {
	v, err := decodeField[string](f, key)
	if err != nil {
		return nil, schemaErr(f.object, key, "expected string")
	}
	return v, nil
}

// OptInt returns an optional integer field.
func (f *Fields) OptInt(key string) (*int, error) {
	v, err := decodeField[int](f, key)
	if err != nil {
		return nil, schemaErr(f.object, key, "expected integer")
	}
	return v, nil
}

// OptInt64 returns an optional 64-bit integer field.
func (f *Fields) OptInt64(key string) (*int64, error) {
	v, err := decodeField[int64](f, key)
	if err != nil {
		return nil, schemaErr(f.object, key, "expected integer")
	}
	return v, nil
}

// OptBool returns an optional boolean field.
func (f *Fields) OptBool(key string) (*bool, error) {
	v, err := decodeField[bool](f, key)
	if err != nil {
		return nil, schemaErr(f.object, key, "expected boolean")
	}
	return v, nil
}

// StringList returns a plain string array field; absent reads as empty.
func (f *Fields) StringList(key string) ([]string, error) {
	v, err := decodeField[[]string](f, key)
	if err != nil {
		return nil, schemaErr(f.object, key, "expected array of strings")
	}
	if v == nil {
		return []string{}, nil
	}
	return CoerceList(*v), nil
}

// Unknown returns the raw values of keys the plan does not declare.
func (f *Fields) Unknown() map[string]json.RawMessage {
	var out map[string]json.RawMessage
	for k, v := range f.raw {
		if _, ok := f.declared[k]; ok {
			continue
		}
		if out == nil {
			out = map[string]json.RawMessage{}
		}
		out[k] = v
	}
	return out
}
