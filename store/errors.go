package store

import "errors"

// Sentinel errors, one flat var block per package, exactly as the
// teacher's graph/errors.go does it. Call sites wrap these with
// fmt.Errorf("%w: ...") to attach the offending value's kind or name.
var (
	// ErrNotAFunction is returned by Subscribe when the listener is nil
	// (spec.md §7 item 1). A nil reducer or enhancer has its own error
	// below.
	ErrNotAFunction = errors.New("corestore: expected a function")

	// ErrNonPlainAction is returned when Dispatch is called with a value
	// that is not a plain record (spec.md §3, §7 item 1).
	ErrNonPlainAction = errors.New("corestore: actions must be plain objects; use middleware for other dispatch argument types")

	// ErrUndefinedActionType is returned when an action's "type" field is
	// absent or nil (spec.md §3, §7 item 1).
	ErrUndefinedActionType = errors.New("corestore: actions may not have an undefined \"type\" property")

	// ErrAlreadyDispatching is returned when Dispatch, GetState, Subscribe,
	// or the returned Unsubscribe is invoked while a dispatch is already in
	// progress (spec.md §7 item 2).
	ErrAlreadyDispatching = errors.New("corestore: may not call this while the reducer is executing; reducers must be pure and may not dispatch actions")

	// ErrEnhancerStacking is returned when the store creator receives more
	// than one function-typed positional argument where only one enhancer
	// slot exists (spec.md §7 item 3).
	ErrEnhancerStacking = errors.New("corestore: it looks like you are passing several store enhancers to NewStore; this is not supported, instead compose them together into a single function")

	// ErrEnhancerNotFunction is returned when an enhancer argument is
	// present but not a function (spec.md §4.6 step 3).
	ErrEnhancerNotFunction = errors.New("corestore: expected the enhancer to be a function")

	// ErrReducerNotFunction is returned when the reducer argument to
	// NewStore is not a function (spec.md §4.6 step 5).
	ErrReducerNotFunction = errors.New("corestore: expected the root reducer to be a function")

	// ErrReducerReturnedUndefined reports a reducer that returned nil. The
	// reducer built by CombineReducers panics with it: on every call when
	// a slice reducer returned nil for INIT or a PROBE action at
	// construction, and for the current action when a slice reducer
	// returns nil for it (spec.md §7 item 4). Dispatch returns it when the
	// root reducer returns nil.
	ErrReducerReturnedUndefined = errors.New("corestore: reducer returned undefined during initialization; if the state passed to the reducer is undefined, you must explicitly return the initial state")

	// ErrMiddlewareDispatchDuringSetup is returned from the setup-phase
	// dispatch stub installed by ApplyMiddleware, when a middleware tries
	// to dispatch before the chain finishes composing (spec.md §7 item 5).
	ErrMiddlewareDispatchDuringSetup = errors.New("corestore: dispatching while constructing your middleware is not allowed; other middleware would not be applied to this dispatch")

	// ErrObserverNotRecord is returned by the observable bridge when
	// Subscribe receives a non-record observer (spec.md §4.5, §7 item 1).
	ErrObserverNotRecord = errors.New("corestore: expected the observer to be a record")
)
