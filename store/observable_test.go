package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObservablePushesCurrentStateImmediately(t *testing.T) {
	st, err := NewStore(counterReducer, nil)
	require.NoError(t, err)

	var seen []any
	sub, err := st.Observable().Subscribe(Observer{
		"next": func(v any) { seen = append(seen, v) },
	})
	require.NoError(t, err)
	defer sub.Unsubscribe()

	assert.Equal(t, []any{0}, seen)
}

func TestObservablePushesOnEveryCommit(t *testing.T) {
	st, err := NewStore(counterReducer, nil)
	require.NoError(t, err)

	var seen []any
	sub, err := st.Observable().Subscribe(Observer{
		"next": func(v any) { seen = append(seen, v) },
	})
	require.NoError(t, err)
	defer sub.Unsubscribe()

	_, err = st.Dispatch(Action{"type": "+"})
	require.NoError(t, err)
	_, err = st.Dispatch(Action{"type": "+"})
	require.NoError(t, err)

	assert.Equal(t, []any{0, 1, 2}, seen)
}

func TestObservableUnsubscribeStopsDelivery(t *testing.T) {
	st, err := NewStore(counterReducer, nil)
	require.NoError(t, err)

	var seen []any
	sub, err := st.Observable().Subscribe(Observer{
		"next": func(v any) { seen = append(seen, v) },
	})
	require.NoError(t, err)

	sub.Unsubscribe()
	_, err = st.Dispatch(Action{"type": "+"})
	require.NoError(t, err)

	assert.Equal(t, []any{0}, seen)
}

func TestObservableRejectsNonRecord(t *testing.T) {
	st, err := NewStore(counterReducer, nil)
	require.NoError(t, err)

	_, err = st.Observable().Subscribe(nil)
	assert.ErrorIs(t, err, ErrObserverNotRecord)
}

func TestObservableSelfReference(t *testing.T) {
	st, err := NewStore(counterReducer, nil)
	require.NoError(t, err)

	obs := st.Observable()
	assert.Same(t, obs, obs.Self())
}
