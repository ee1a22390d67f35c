package types

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
	"io"
	"time"
)

// Value is implemented by every API object. Objects are immutable once
// built: the only mutation path is the builder that produced them.
type Value interface {
	// Kind names the object kind; equality never crosses kinds.
	Kind() string
	// IdentityAttrs returns the declared identity tuple. ok is false when
	// the kind declares no identity attributes, in which case equality
	// falls back to reference identity.
	IdentityAttrs() (attrs []any, ok bool)
	// UnknownFields returns the raw JSON values of keys that were present
	// in the payload but are not part of the declared schema.
	UnknownFields() map[string]json.RawMessage
}

// Object is the base embedded in every API object. It retains fields the
// schema does not declare and carries the identity tuple used for equality
// and hashing.
type Object struct {
	kind    string
	id      []any
	hasID   bool
	unknown map[string]json.RawMessage
}

func newObject(kind string) Object {
	return Object{kind: kind}
}

// Kind returns the object kind name.
func (o *Object) Kind() string { return o.kind }

// IdentityAttrs returns the identity tuple declared at build time.
func (o *Object) IdentityAttrs() ([]any, bool) {
	return o.id, o.hasID
}

// UnknownFields returns a copy of the retained unrecognized fields. The
// copy keeps callers from mutating frozen state through the map.
func (o *Object) UnknownFields() map[string]json.RawMessage {
	if len(o.unknown) == 0 {
		return nil
	}
	out := make(map[string]json.RawMessage, len(o.unknown))
	for k, v := range o.unknown {
		out[k] = v
	}
	return out
}

// setIdentity declares the identity tuple. Builders call it as the last
// step before handing the value out.
func (o *Object) setIdentity(attrs ...any) {
	o.id = attrs
	o.hasID = true
}

// captureUnknown stores the sub-mapping of raw keys not in declared. A nil
// raw map yields no retained fields.
func (o *Object) captureUnknown(raw map[string]json.RawMessage, declared map[string]struct{}) {
	for k, v := range raw {
		if _, ok := declared[k]; ok {
			continue
		}
		if o.unknown == nil {
			o.unknown = map[string]json.RawMessage{}
		}
		o.unknown[k] = v
	}
}

// declaredSet builds a set for constant-time declared-key checks.
func declaredSet(keys ...string) map[string]struct{} {
	out := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		out[k] = struct{}{}
	}
	return out
}

// Equal reports whether two values are equal. Values of different kinds
// are never equal; values of the same kind compare their identity tuples
// elementwise, nested objects via Equal and timestamps via time.Equal.
// Kinds with no identity tuple compare by reference.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind() != b.Kind() {
		return false
	}
	aAttrs, aOK := a.IdentityAttrs()
	bAttrs, bOK := b.IdentityAttrs()
	if !aOK || !bOK {
		return a == b
	}
	return attrsEqual(aAttrs, bAttrs)
}

func attrsEqual(a, b []any) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !attrEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

func attrEqual(a, b any) bool {
	switch av := a.(type) {
	case nil:
		return b == nil
	case Value:
		bv, ok := b.(Value)
		return ok && Equal(av, bv)
	case time.Time:
		bv, ok := b.(time.Time)
		return ok && av.Equal(bv)
	case []any:
		bv, ok := b.([]any)
		return ok && attrsEqual(av, bv)
	default:
		return a == b
	}
}

// Hash derives a deterministic hash from the identity tuple, so values
// that compare equal hash equally and can key maps or sets. Values with no
// identity tuple hash by reference.
func Hash(v Value) uint64 {
	h := fnv.New64a()
	hashValue(h, v)
	return h.Sum64()
}

func hashValue(h io.Writer, v Value) {
	if v == nil {
		fmt.Fprint(h, "<nil>")
		return
	}
	fmt.Fprint(h, v.Kind())
	attrs, ok := v.IdentityAttrs()
	if !ok {
		fmt.Fprintf(h, "%p", v)
		return
	}
	hashAttrs(h, attrs)
}

func hashAttrs(h io.Writer, attrs []any) {
	fmt.Fprintf(h, "(%d:", len(attrs))
	for _, a := range attrs {
		hashAttr(h, a)
		fmt.Fprint(h, ",")
	}
	fmt.Fprint(h, ")")
}

func hashAttr(h io.Writer, a any) {
	switch av := a.(type) {
	case nil:
		fmt.Fprint(h, "<nil>")
	case Value:
		hashValue(h, av)
	case time.Time:
		fmt.Fprint(h, av.Unix())
	case []any:
		hashAttrs(h, av)
	default:
		fmt.Fprintf(h, "%T=%v", a, a)
	}
}

// identityList converts a typed object slice into an identity attribute,
// so ordered collections take part in tuple comparison elementwise.
func identityList[T Value](xs []T) []any {
	out := make([]any, len(xs))
	for i, x := range xs {
		out[i] = Value(x)
	}
	return out
}

// marshalWithUnknown merges retained unknown fields back into the typed
// wire view. Declared fields win on key collisions, so round-tripping a
// payload never loses unrecognized data and never duplicates declared
// data.
func marshalWithUnknown(typed any, unknown map[string]json.RawMessage) ([]byte, error) {
	out := make(map[string]json.RawMessage, len(unknown))
	for k, v := range unknown {
		out[k] = v
	}

	typedBytes, err := json.Marshal(typed)
	if err != nil {
		return nil, err
	}
	var declared map[string]json.RawMessage
	if err := json.Unmarshal(typedBytes, &declared); err != nil {
		return nil, err
	}
	for k, v := range declared {
		out[k] = v
	}

	return json.Marshal(out)
}
