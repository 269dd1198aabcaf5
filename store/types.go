package store

import "github.com/corestore-go/corestore/internal/kindof"

// Action is a plain record whose type is read with TypeOf. Every layer of
// a middleware chain takes and forwards this same map type; the base
// dispatch additionally rejects a nil Action and one without a "type"
// entry (spec.md §3).
//
// corestore represents an action the same way Redux does at the wire
// level: a map keyed by string, with a mandatory "type" entry. Using
// kindof.PlainRecord (an alias for map[string]any) instead of a Go struct
// keeps the arbitrary-extra-fields contract from spec.md §3 intact
// without reflection-based field discovery.
type Action = kindof.PlainRecord

// ActionTypeKey is the reserved field name carrying an Action's type.
const ActionTypeKey = "type"

// TypeOf returns the value stored under ActionTypeKey, or nil if absent.
func TypeOf(a Action) any {
	if a == nil {
		return nil
	}
	return a[ActionTypeKey]
}

// Reducer maps (previousState, action) to nextState. It must never
// return nil, must return its initial state when state is nil, and must
// return the same reference when it ignores an action (spec.md §3).
type Reducer func(state any, action Action) any

// Listener is a nullary callback invoked after a committed dispatch.
type Listener func()

// Unsubscribe removes the listener it was returned for. It is
// idempotent: calling it more than once is a no-op (spec.md §3,
// Invariant list; §8 item 8). Calling it while a dispatch is in
// progress is a re-entrancy violation, reported through its error
// return (spec.md §4.5, §5, §7 item 2).
type Unsubscribe func() error

// DispatchFunc is the shape of Store.Dispatch, factored out so
// middleware and the trampoline in middleware.go can close over it.
type DispatchFunc func(action Action) (Action, error)

// CombinedState is the composite state produced by CombineReducers: a
// record whose keys each map to one slice reducer's output. The alias
// carries no runtime tag (spec.md §3) — branding is a type-system
// artifact only, and Go has no mechanism to add one to a map type
// without changing its underlying shape.
type CombinedState = map[string]any
