package store

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/corestore-go/corestore/internal/kindof"
	"github.com/corestore-go/corestore/log"
)

// DevMode gates CombineReducers' non-fatal development warnings
// (spec.md §7 item 6): unexpected state keys, or a slice name with no
// surviving reducer. Defaults to true; set false in production to skip
// the warning checks at run time.
var DevMode = true

// ReducerMap maps a state slice's name to the reducer owning it
// (spec.md §4.4).
type ReducerMap map[string]Reducer

// CombineReducers folds reducers — one per named state slice — into a
// single Reducer over a CombinedState (spec.md §4.4). It performs
// startup shape assertions immediately; a failure there is captured and
// rethrown on every call to the returned reducer until CombineReducers
// is called again with a corrected map (spec.md §7 item 4).
func CombineReducers(reducers ReducerMap) Reducer {
	finalReducers := make(ReducerMap, len(reducers))
	names := make([]string, 0, len(reducers))
	for name, r := range reducers {
		if r == nil {
			if DevMode {
				log.Warnw("combineReducers: ignoring non-function reducer", "key", name)
			}
			continue
		}
		finalReducers[name] = r
		names = append(names, name)
	}
	sort.Strings(names) // deterministic iteration order across calls

	shapeErr := assertReducerShape(finalReducers, names)

	unexpectedKeyCache := make(map[string]bool)

	return func(state any, action Action) any {
		if shapeErr != nil {
			panic(shapeErr)
		}

		combined, _ := state.(CombinedState)
		if state == nil {
			combined = CombinedState{}
		} else if combined == nil && !kindof.IsPlain(state) {
			if DevMode {
				log.Warnw("combineReducers: state is not a plain object",
					"kind", kindof.Of(state))
			}
			combined = CombinedState{}
		}

		if DevMode && len(finalReducers) == 0 {
			log.Warnw("combineReducers: store has no valid reducers; make sure the argument passed to CombineReducers has a reducer under every key")
		}

		isReplace := TypeOf(action) == ActionTypeReplace
		if DevMode && !isReplace {
			warnOnUnexpectedStateKeys(combined, finalReducers, unexpectedKeyCache, action)
		}

		nextState := make(CombinedState, len(names))
		hasChanged := false
		for _, name := range names {
			reducer := finalReducers[name]
			previousStateForKey := combined[name]
			nextStateForKey := reducer(previousStateForKey, action)
			if nextStateForKey == nil {
				panic(fmt.Errorf("%w: key %q, action type %v", ErrReducerReturnedUndefined, name, TypeOf(action)))
			}
			nextState[name] = nextStateForKey
			hasChanged = hasChanged || !identical(nextStateForKey, previousStateForKey)
		}
		hasChanged = hasChanged || len(names) != len(combined)

		if hasChanged {
			return nextState
		}
		return state
	}
}

// assertReducerShape verifies, for every slice reducer, that feeding it
// undefined state with INIT and with a freshly randomized PROBE action
// both yield defined state (spec.md §4.4 step 2, §7 item 4).
func assertReducerShape(reducers ReducerMap, names []string) error {
	for _, name := range names {
		reducer := reducers[name]

		initialState := reducer(nil, Action{ActionTypeKey: ActionTypeInit})
		if initialState == nil {
			return fmt.Errorf("%w: reducer %q returned undefined during initialization; if the state passed to the reducer is undefined, you must explicitly return the initial state", ErrReducerReturnedUndefined, name)
		}

		probeType := ProbeUnknownAction()
		if reducer(nil, Action{ActionTypeKey: probeType}) == nil {
			return fmt.Errorf("%w: reducer %q returned undefined when probed with a random action type; to ignore an action, you must explicitly return the previous state, not undefined", ErrReducerReturnedUndefined, name)
		}
	}
	return nil
}

// identical reports whether a and b are the same value for the purposes
// of change detection (spec.md §4.4 step 4: "a slice whose reducer
// returned a new reference counts as changed"). A plain == suffices for
// comparable kinds, but a slice reducer may itself be a nested
// CombineReducers output, i.e. a map — and Go panics if == is evaluated
// between two uncomparable dynamic values hidden behind interface{}, so
// those kinds fall back to identity of their underlying data pointer,
// matching JavaScript's reference equality on objects.
func identical(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	switch va.Kind() {
	case reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		if vb.Kind() != va.Kind() {
			return false
		}
		return va.Pointer() == vb.Pointer()
	default:
		if !va.Comparable() || !vb.Comparable() {
			return false
		}
		return a == b
	}
}

// warnOnUnexpectedStateKeys warns once per unexpected key present in an
// incoming preloaded/persisted state that has no corresponding reducer.
func warnOnUnexpectedStateKeys(state CombinedState, reducers ReducerMap, cache map[string]bool, action Action) {
	unexpectedKeys := make([]string, 0)
	for key := range state {
		if _, ok := reducers[key]; !ok && !cache[key] {
			cache[key] = true
			unexpectedKeys = append(unexpectedKeys, key)
		}
	}
	if len(unexpectedKeys) == 0 {
		return
	}
	sort.Strings(unexpectedKeys)
	log.Warnw("combineReducers: unexpected state keys will be ignored",
		"keys", unexpectedKeys, "action.type", TypeOf(action))
}
