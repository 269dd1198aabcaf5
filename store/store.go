// Package store implements corestore's store protocol: a single
// in-process holder of application state, mutated only through Dispatch,
// observed through Subscribe, and constructible through composable
// Enhancers (see middleware.go for the middleware Enhancer).
//
// The package keeps every concern — the store core, the reducer
// combiner, the middleware enhancer, the composer, and the observable
// bridge — together as a small family of files in one package, the way
// the teacher's graph package keeps state.go, checkpoint.go, callbacks.go
// and executor.go together rather than splitting each concern into its
// own importable unit.
package store

import (
	"context"
	"fmt"
	"reflect"
	"runtime"

	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"

	"github.com/corestore-go/corestore/telemetry/trace"
)

// subscription wraps a Listener so Subscribe/Unsubscribe can remove it by
// identity even though Go funcs are not comparable.
type subscription struct {
	listener Listener
}

// Store is the aggregate described in spec.md §3: current state, current
// reducer, current/pending listener lists, a dispatching flag, and the
// bound operations. DevMode gates the development-only warnings emitted
// by CombineReducers (spec.md §7 item 6); it defaults to true, mirroring
// the teacher's general preference for verbose-by-default diagnostics in
// library code.
type Store struct {
	currentReducer Reducer
	currentState   any

	currentListeners []*subscription
	nextListeners    []*subscription
	listenersCopied  bool

	isDispatching bool

	// dispatch is the (possibly middleware-augmented) function Dispatch
	// forwards to. It starts out equal to baseDispatch and may be
	// replaced wholesale by an Enhancer such as ApplyMiddleware.
	dispatch DispatchFunc
}

// NewStore is corestore's store factory (spec.md §4.6, the exported
// createStore). Argument normalization follows spec.md §4.6 exactly,
// adapted to Go's lack of implicit arity shifting: at most one Enhancer
// may be supplied (compose several with ComposeEnhancers first), and a
// function-shaped preloadedState is always rejected rather than silently
// treated as an enhancer (SPEC_FULL.md §9, Open Question resolution).
func NewStore(reducer Reducer, preloadedState any, enhancers ...Enhancer) (*Store, error) {
	if len(enhancers) > 1 {
		return nil, fmt.Errorf("%w: got %d enhancers, compose them with ComposeEnhancers first", ErrEnhancerStacking, len(enhancers))
	}
	if isFuncShaped(preloadedState) {
		return nil, fmt.Errorf("%w: preloadedState looks like a function; corestore does not coerce it into an enhancer, pass the enhancer as the third argument instead", ErrEnhancerStacking)
	}

	if len(enhancers) == 1 {
		enhancer := enhancers[0]
		if enhancer == nil {
			return nil, fmt.Errorf("%w", ErrEnhancerNotFunction)
		}
		return enhancer(createBaseStore)(reducer, preloadedState)
	}

	if reducer == nil {
		return nil, fmt.Errorf("%w", ErrReducerNotFunction)
	}
	return createBaseStore(reducer, preloadedState)
}

// createBaseStore builds an un-enhanced store and performs the INIT
// bootstrap dispatch (spec.md §3 invariant 5, §4.6). It satisfies
// StoreCreator so Enhancers can delegate to it.
func createBaseStore(reducer Reducer, preloadedState any) (*Store, error) {
	if reducer == nil {
		return nil, fmt.Errorf("%w", ErrReducerNotFunction)
	}
	st := &Store{
		currentReducer: reducer,
		currentState:   preloadedState,
	}
	st.dispatch = st.baseDispatch

	if _, err := st.Dispatch(Action{ActionTypeKey: ActionTypeInit}); err != nil {
		return nil, err
	}
	return st, nil
}

// isFuncShaped reports whether preloadedState was handed a function value
// of any signature — Reducer, Enhancer, Middleware, or a bare closure.
// Such a value is always ambiguous in the sense spec.md §9 describes, so
// NewStore rejects it outright rather than guessing which slot it belongs
// in.
func isFuncShaped(v any) bool {
	return funcShapedByReflection(v)
}

// GetState returns the current state reference (no defensive copy,
// spec.md §4.5). Forbidden while a dispatch's reducer is executing.
func (st *Store) GetState() (any, error) {
	if st.isDispatching {
		return nil, fmt.Errorf("%w: you may not call store.GetState() while the reducer is executing; the reducer has already received the state as an argument", ErrAlreadyDispatching)
	}
	return st.currentState, nil
}

// Subscribe registers listener to be called after every committed
// dispatch, in registration order. It returns an idempotent Unsubscribe.
// Both Subscribe and the returned Unsubscribe take effect starting with
// the next dispatch, never the one in progress (spec.md §4.5, §5).
func (st *Store) Subscribe(listener Listener) (Unsubscribe, error) {
	if listener == nil {
		return nil, fmt.Errorf("%w: expected the listener to be a function", ErrNotAFunction)
	}
	if st.isDispatching {
		return nil, fmt.Errorf("%w: you may not call store.Subscribe() while the reducer is executing", ErrAlreadyDispatching)
	}

	st.ensureNextListenersCopied()
	sub := &subscription{listener: listener}
	st.nextListeners = append(st.nextListeners, sub)

	isSubscribed := true
	return func() error {
		if st.isDispatching {
			return fmt.Errorf("%w: you may not unsubscribe from a store listener while the reducer is executing", ErrAlreadyDispatching)
		}
		if !isSubscribed {
			return nil
		}
		isSubscribed = false

		st.ensureNextListenersCopied()
		for i, candidate := range st.nextListeners {
			if candidate == sub {
				st.nextListeners = append(st.nextListeners[:i], st.nextListeners[i+1:]...)
				break
			}
		}
		return nil
	}, nil
}

// ensureNextListenersCopied performs the copy-on-write described in
// spec.md §9: nextListeners only diverges from currentListeners once a
// mutation actually happens, and only once per dispatch "generation".
func (st *Store) ensureNextListenersCopied() {
	if st.listenersCopied {
		return
	}
	st.nextListeners = append([]*subscription(nil), st.currentListeners...)
	st.listenersCopied = true
}

// Dispatch is the sole way to trigger a state change (spec.md §4.5). It
// forwards to whatever dispatch function is currently installed — the
// base dispatch, or a middleware-augmented one — and wraps the call in a
// tracing span (SPEC_FULL.md §2.2, §4.5).
func (st *Store) Dispatch(action Action) (Action, error) {
	_, span := trace.Tracer.Start(context.Background(), "corestore.dispatch",
		oteltrace.WithAttributes(
			attribute.String("action.type", fmt.Sprint(TypeOf(action))),
			attribute.String("store.reducer", reducerName(st.currentReducer)),
		))
	defer span.End()

	result, err := st.dispatch(action)
	if err != nil {
		span.RecordError(err)
	}
	return result, err
}

// reducerName resolves the currently installed root reducer's function
// name for the dispatch span's store.reducer attribute. Anonymous
// reducers (e.g. a closure returned by CombineReducers) report their
// compiler-assigned name rather than a blank value.
func reducerName(r Reducer) string {
	if r == nil {
		return "<nil>"
	}
	if fn := runtime.FuncForPC(reflect.ValueOf(r).Pointer()); fn != nil {
		return fn.Name()
	}
	return "<unknown>"
}

// baseDispatch is the innermost dispatch: it validates the action,
// invokes the reducer, commits state, and notifies listeners. It is
// always the tail of any middleware chain (spec.md §4.5, §4.7).
func (st *Store) baseDispatch(action Action) (Action, error) {
	switch {
	case action == nil:
		return nil, fmt.Errorf("%w", ErrNonPlainAction)
	case st.isDispatching:
		return nil, fmt.Errorf("%w: reducers may not dispatch actions", ErrAlreadyDispatching)
	}
	if _, hasType := action[ActionTypeKey]; !hasType || action[ActionTypeKey] == nil {
		return nil, fmt.Errorf("%w", ErrUndefinedActionType)
	}

	var nextState any
	st.isDispatching = true
	func() {
		defer func() { st.isDispatching = false }()
		nextState = st.currentReducer(st.currentState, action)
	}()

	if nextState == nil {
		return nil, fmt.Errorf("%w: action type %v", ErrReducerReturnedUndefined, action[ActionTypeKey])
	}
	st.currentState = nextState

	listeners := st.nextListeners
	st.currentListeners = listeners
	st.listenersCopied = false
	for _, sub := range listeners {
		sub.listener()
	}

	return action, nil
}

// ReplaceReducer swaps the store's current reducer and immediately
// dispatches a REPLACE action so the new composition can seed any
// previously absent slices (spec.md §3 invariant 4, §4.5).
func (st *Store) ReplaceReducer(next Reducer) error {
	if next == nil {
		return fmt.Errorf("%w", ErrReducerNotFunction)
	}
	st.currentReducer = next
	_, err := st.Dispatch(Action{ActionTypeKey: ActionTypeReplace})
	return err
}

