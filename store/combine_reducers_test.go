package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombineReducersInitialState(t *testing.T) {
	reducer := CombineReducers(ReducerMap{"a": counterReducer, "b": toggleReducer})
	got := reducer(nil, Action{ActionTypeKey: ActionTypeInit})
	assert.Equal(t, CombinedState{"a": 0, "b": false}, got)
}

func TestCombineReducersIgnoresNilReducer(t *testing.T) {
	reducer := CombineReducers(ReducerMap{"a": counterReducer, "b": nil})
	got := reducer(nil, Action{ActionTypeKey: ActionTypeInit})
	assert.Equal(t, CombinedState{"a": 0}, got)
}

func TestCombineReducersShapeAssertionPanics(t *testing.T) {
	badReducer := func(state any, action Action) any {
		if TypeOf(action) == ActionTypeInit {
			return nil
		}
		return state
	}
	reducer := CombineReducers(ReducerMap{"bad": badReducer})

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.ErrorIs(t, err, ErrReducerReturnedUndefined)
	}()
	reducer(nil, Action{ActionTypeKey: "anything"})
}

func TestCombineReducersRethrowsShapeErrorOnEveryCall(t *testing.T) {
	badReducer := func(state any, action Action) any { return nil }
	reducer := CombineReducers(ReducerMap{"bad": badReducer})

	assert.Panics(t, func() { reducer(nil, Action{ActionTypeKey: "one"}) })
	assert.Panics(t, func() { reducer(nil, Action{ActionTypeKey: "two"}) })
}

func TestCombineReducersNonPlainStateResetsToEmpty(t *testing.T) {
	reducer := CombineReducers(ReducerMap{"a": counterReducer})
	got := reducer(42, Action{ActionTypeKey: "whatever"})
	assert.Equal(t, CombinedState{"a": 0}, got)
}

func TestCombineReducersReturnsSameStateWhenNothingChanges(t *testing.T) {
	reducer := CombineReducers(ReducerMap{"a": counterReducer, "b": toggleReducer})
	st, err := NewStore(reducer, nil)
	require.NoError(t, err)

	before, _ := st.GetState()
	_, err = st.Dispatch(Action{"type": "nothing-matches"})
	require.NoError(t, err)
	after, _ := st.GetState()

	beforeMap := before.(CombinedState)
	afterMap := after.(CombinedState)
	beforeMap["probe"] = "x"
	assert.Equal(t, "x", afterMap["probe"])
	delete(beforeMap, "probe")
}

func TestCombineReducersChangedSliceProducesNewState(t *testing.T) {
	reducer := CombineReducers(ReducerMap{"a": counterReducer, "b": toggleReducer})
	before := reducer(nil, Action{ActionTypeKey: ActionTypeInit}).(CombinedState)
	after := reducer(before, Action{"type": "+"}).(CombinedState)

	assert.NotEqual(t, before["a"], after["a"])
	assert.Equal(t, before["b"], after["b"])
}

func TestNestedCombineReducersChangeDetection(t *testing.T) {
	inner := CombineReducers(ReducerMap{"a": counterReducer})
	outer := CombineReducers(ReducerMap{"inner": inner, "b": toggleReducer})

	before := outer(nil, Action{ActionTypeKey: ActionTypeInit}).(CombinedState)
	afterNoop := outer(before, Action{"type": "nothing"}).(CombinedState)
	assert.Equal(t, before["inner"], afterNoop["inner"])

	afterChange := outer(before, Action{"type": "+"}).(CombinedState)
	assert.NotEqual(t, before["inner"], afterChange["inner"])
}
