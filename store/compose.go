package store

// Func1 is a unary function of the kind Compose operates on when callers
// don't need a more specific type. Compose itself is generic (see below);
// this alias just names the common "any to any" instantiation.
type Func1 = func(any) any

// Compose returns the right-to-left composition of fns:
// Compose(f, g, h)(x) == f(g(h(x))).
//
// Edge cases per spec.md §4.3: zero functions returns the identity
// function; one function is returned unwrapped (not folded through an
// extra closure frame), so a single-middleware chain incurs no additional
// indirection. Compose is generic so the same composition algorithm
// serves both plain Func1 chains and the typed dispatch-layer chain
// ApplyMiddleware builds (spec.md §2: "supplies the middleware chain
// builder") — no second implementation of the fold is needed.
func Compose[T any](fns ...func(T) T) func(T) T {
	switch len(fns) {
	case 0:
		return func(x T) T { return x }
	case 1:
		return fns[0]
	default:
		last := fns[len(fns)-1]
		rest := fns[:len(fns)-1]
		return func(x T) T {
			result := last(x)
			for i := len(rest) - 1; i >= 0; i-- {
				result = rest[i](result)
			}
			return result
		}
	}
}

// ComposeEnhancers combines several Enhancers into one, so NewStore's
// single-enhancer slot (spec.md §4.6 step 1, §7 item 3) can still host a
// stack of enhancers when the caller wants one.
func ComposeEnhancers(enhancers ...Enhancer) Enhancer {
	layers := make([]func(StoreCreator) StoreCreator, len(enhancers))
	for i, e := range enhancers {
		layers[i] = e
	}
	return Compose(layers...)
}
