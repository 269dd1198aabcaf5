package store

// ActionCreator builds an Action from arbitrary arguments. Modeled as a
// generic func(...any) Action matching spec.md §6's "wraps each action
// creator so that calling it invokes dispatch with the produced action".
type ActionCreator = func(args ...any) Action

// BoundActionCreator is an ActionCreator whose result is already routed
// through a DispatchFunc.
type BoundActionCreator = func(args ...any) (Action, error)

// BindActionCreator wraps a single action creator so that calling it both
// builds the action and dispatches it, mirroring the generic
// function-wrapping idiom the teacher uses to turn a raw func(I) O into a
// callable unit (tool/function/function_tool.go's FunctionTool[I, O]),
// adapted here from "wrap one function" to "wrap one function with a
// dispatch side effect".
func BindActionCreator(creator ActionCreator, dispatch DispatchFunc) BoundActionCreator {
	return func(args ...any) (Action, error) {
		return dispatch(creator(args...))
	}
}

// BindActionCreators wraps every entry in creators so that calling it
// dispatches the action it builds (spec.md §6). Given a map it returns a
// map of the same shape; callers that only have a single action creator
// should call BindActionCreator directly instead, matching spec.md §6's
// "given a single function, returns a single function".
func BindActionCreators(creators map[string]ActionCreator, dispatch DispatchFunc) map[string]BoundActionCreator {
	bound := make(map[string]BoundActionCreator, len(creators))
	for name, creator := range creators {
		bound[name] = BindActionCreator(creator, dispatch)
	}
	return bound
}
