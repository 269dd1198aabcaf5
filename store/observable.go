package store

import "github.com/corestore-go/corestore/internal/kindof"

// Observer is the minimal push-stream consumer the observable bridge
// accepts: a record with an optional "next" entry holding a func(any)
// (spec.md §4.5 last bullet, §9 "Observable self-reference").
type Observer = kindof.PlainRecord

// Subscription is what Observable's Subscribe method returns.
type Subscription struct {
	Unsubscribe Unsubscribe
}

// Observable adapts Store.Subscribe into the minimal push-stream
// protocol: Subscribe(observer) → Subscription{Unsubscribe}. Its Self
// method is the self-reference accessor and returns the same value, for
// interop with reactive libraries that expect it (spec.md §9).
type Observable struct {
	store *Store
}

// Observable returns the store's observable bridge.
func (st *Store) Observable() *Observable {
	return &Observable{store: st}
}

// Subscribe validates observer, immediately pushes the current state
// through observer's "next" entry if present, then registers a listener
// that does the same on every subsequent commit.
func (o *Observable) Subscribe(observer Observer) (*Subscription, error) {
	if observer == nil || !kindof.IsPlain(any(observer)) {
		return nil, ErrObserverNotRecord
	}

	observeState := func() {
		next, ok := observer["next"].(func(any))
		if !ok {
			return
		}
		state, err := o.store.GetState()
		if err != nil {
			return
		}
		next(state)
	}

	observeState()
	unsub, err := o.store.Subscribe(observeState)
	if err != nil {
		return nil, err
	}
	return &Subscription{Unsubscribe: unsub}, nil
}

// ObservableSymbol is the self-reference accessor name the observable
// proposal reserves (spec.md §6, §9). Nothing in this package looks it
// up; in Go the accessor is the Self method, which returns o unchanged.
const ObservableSymbol = "@@observable"

// Self implements the observable self-reference protocol.
func (o *Observable) Self() *Observable { return o }
