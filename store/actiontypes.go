package store

import "github.com/google/uuid"

// Reserved action-type namespace. User-defined action types must not
// begin with this prefix (spec.md §4.2); it mirrors the teacher's own
// convention of prefixing reserved StateKey* constants, scoped here to
// action types instead of state keys.
const reservedNamespace = "@@corestore/"

// ActionTypeInit is dispatched exactly once, at the end of store
// construction, so every reducer produces its initial slice
// (spec.md §3 invariant 5, §4.6).
const ActionTypeInit = reservedNamespace + "INIT"

// ActionTypeReplace is dispatched exactly once after ReplaceReducer, so
// the newly installed reducer can seed any slice the old one didn't
// know about (spec.md §3 invariant 4, §4.5).
const ActionTypeReplace = reservedNamespace + "REPLACE"

// ProbeUnknownAction returns a freshly randomized action type in the
// reserved namespace. combine_reducers.go dispatches it at construction
// to verify each slice reducer returns defined state for action types it
// does not recognize (spec.md §4.2, §4.4).
//
// Grounded on event/event.go's use of uuid.New().String() to mint a
// fresh identifier per call.
func ProbeUnknownAction() string {
	return reservedNamespace + "PROBE_UNKNOWN_ACTION." + uuid.New().String()
}
