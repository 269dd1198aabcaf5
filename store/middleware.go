package store

import "fmt"

// MiddlewareAPI is the restricted view of the store each middleware
// layer receives during setup: GetState plus a Dispatch that always
// forwards to the fully composed chain, not to whatever Dispatch
// happened to be bound at setup time (spec.md §4.7, §9 "Middleware API
// trampoline").
type MiddlewareAPI struct {
	GetState func() (any, error)
	Dispatch DispatchFunc
}

// NextDispatch is what a middleware layer calls to forward (possibly
// transformed) control to the next layer inward; the innermost NextDispatch
// is the store's base dispatch.
type NextDispatch = DispatchFunc

// Middleware is a curried interceptor: api ↦ next ↦ action ↦ result
// (spec.md §4.7). Each layer may short-circuit, transform, delay, or
// forward to next.
type Middleware func(api MiddlewareAPI) func(next NextDispatch) NextDispatch

// Enhancer wraps a StoreCreator to produce a new one, e.g. to install
// middleware (spec.md §4.6 step 4, §4.7).
type Enhancer func(creator StoreCreator) StoreCreator

// StoreCreator matches NewStore's signature without the enhancer
// parameter, so an Enhancer can delegate to the base creator and wrap the
// result.
type StoreCreator func(reducer Reducer, preloadedState any) (*Store, error)

// ApplyMiddleware composes the given middlewares into a single store
// Enhancer. Middlewares run left-to-right on the way in (outer first);
// whatever each passes to next continues inward, and return values unwind
// in the reverse order (spec.md §4.7 "Ordering").
func ApplyMiddleware(middlewares ...Middleware) Enhancer {
	return func(createStore StoreCreator) StoreCreator {
		return func(reducer Reducer, preloadedState any) (*Store, error) {
			st, err := createStore(reducer, preloadedState)
			if err != nil {
				return nil, err
			}

			// The dispatch forwarded through MiddlewareAPI is a mutable
			// cell: middleware may capture api.Dispatch during setup, but
			// by the time it is actually called the cell has been
			// repointed at the fully composed chain (spec.md §9).
			var chained DispatchFunc
			trampoline := func(action Action) (Action, error) {
				return chained(action)
			}

			api := MiddlewareAPI{
				GetState: st.GetState,
				Dispatch: trampoline,
			}

			// Trap middleware that dispatch during their own setup, before
			// the chain is installed (spec.md §4.7 step 3, §7 item 5).
			// The trap is remembered, so construction fails even when the
			// middleware ignores the error its early dispatch returned.
			var setupErr error
			chained = func(Action) (Action, error) {
				setupErr = fmt.Errorf("%w", ErrMiddlewareDispatchDuringSetup)
				return nil, setupErr
			}

			layers := make([]func(NextDispatch) NextDispatch, len(middlewares))
			for i, mw := range middlewares {
				layers[i] = mw(api)
			}

			composed := Compose(layers...)(st.dispatch)
			if setupErr != nil {
				return nil, setupErr
			}
			chained = composed
			st.dispatch = chained
			return st, nil
		}
	}
}
