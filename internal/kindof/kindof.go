// Package kindof classifies arbitrary values the way corestore's error
// messages need to: distinguishing a "plain" record (a bare
// map[string]any with no named type behind it — Go's closest equivalent
// to a JavaScript object literal) from everything else a caller might
// mistakenly hand to Dispatch or Subscribe.
//
// The approach is grounded on the teacher's reflect-driven validation in
// graph/state.go (StateSchema.Validate walks reflect.TypeOf and checks
// Kind()/AssignableTo rather than a type switch), adapted here from
// "does this value fit a declared field type" to "what kind of value is
// this, for an error message".
package kindof

import (
	"reflect"
	"time"
)

// Kind names a coarse category of value, used to build error messages
// that name the offending argument's shape.
type Kind string

const (
	KindNil           Kind = "nil"
	KindBool          Kind = "bool"
	KindNumber        Kind = "number"
	KindString        Kind = "string"
	KindFunc          Kind = "func"
	KindPlainRecord   Kind = "plain record"
	KindNonPlain      Kind = "non-plain record"
	KindSliceOrArray  Kind = "slice/array"
	KindDate          Kind = "date"
	KindError         Kind = "error"
	KindChan          Kind = "chan"
	KindPointer       Kind = "pointer"
)

// PlainRecord is the shape corestore treats as a "plain object": a
// map keyed by string with no named type of its own. Actions and
// preloaded CombinedState values must satisfy this shape at the base
// dispatch boundary (spec.md §3, §4.1).
type PlainRecord = map[string]any

// IsPlain reports whether v is a plain record: its dynamic type is an
// unnamed map whose keys are of string kind and whose values are of an
// interface type (map[string]any being the usual case), not some named
// map type or struct masquerading as one.
//
// Go has no prototype chain, so "terminates one hop above the root" has
// no literal analogue; the faithful translation of the JS test — "a
// literal record value with no class identity" — is "an unnamed
// map[string]interface{}". A named type (`type Action map[string]any`)
// or a struct both carry identity beyond the literal shape and are
// rejected, matching the spirit of spec.md §4.1 and §9's
// cross-language guidance.
func IsPlain(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map {
		return false
	}
	t := rv.Type()
	if t.Name() != "" {
		// A named map type carries identity beyond the literal shape.
		return false
	}
	return t.Key().Kind() == reflect.String && t.Elem().Kind() == reflect.Interface
}

// Of classifies v into a Kind for use in error messages.
func Of(v any) Kind {
	if v == nil {
		return KindNil
	}
	switch v.(type) {
	case error:
		return KindError
	case time.Time:
		return KindDate
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return KindBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return KindNumber
	case reflect.String:
		return KindString
	case reflect.Func:
		return KindFunc
	case reflect.Slice, reflect.Array:
		return KindSliceOrArray
	case reflect.Chan:
		return KindChan
	case reflect.Ptr:
		return KindPointer
	case reflect.Map:
		if IsPlain(v) {
			return KindPlainRecord
		}
		return KindNonPlain
	case reflect.Struct:
		return KindNonPlain
	default:
		return KindNonPlain
	}
}
