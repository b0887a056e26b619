package client

import (
	"context"
	"sync"
)

// LoadState is the tri-state load status of the mirror cache.
type LoadState string

const (
	// StatePending marks a load in flight.
	StatePending LoadState = "pending"
	// StateReady marks a successfully loaded cache.
	StateReady LoadState = "ready"
	// StateError marks a failed load; the previous cache is kept.
	StateError LoadState = "error"
)

// Mirror keeps a local copy of the caller's lists. Every mutation calls the
// remote API first and, on success, applies the equivalent patch to the cache
// instead of re-fetching the whole collection. A failed remote call leaves
// the cache untouched and returns the error to the caller.
//
// The mirror serves a single UI session; the mutex only guards against
// incidental cross-goroutine use.
type Mirror struct {
	api API

	mu      sync.Mutex
	lists   []List
	state   LoadState
	loadErr error
}

// NewMirror creates a mirror over the given API in the pending state.
func NewMirror(api API) *Mirror {
	return &Mirror{
		api:   api,
		state: StatePending,
	}
}

// State returns the current load state and the last load error, if any.
func (m *Mirror) State() (LoadState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state, m.loadErr
}

// Lists returns a snapshot of the cached lists.
func (m *Mirror) Lists() []List {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]List(nil), m.lists...)
}

// Load refreshes the cache from the remote API. On failure the previous
// cache is kept and the error is recorded and returned, so the UI can offer
// a retry.
func (m *Mirror) Load(ctx context.Context, archived bool) error {
	m.mu.Lock()
	m.state = StatePending
	m.loadErr = nil
	m.mu.Unlock()

	lists, err := m.api.ListLists(ctx, archived)
	m.mu.Lock()
	defer m.mu.Unlock()
	if err != nil {
		m.state = StateError
		m.loadErr = err
		return err
	}
	m.lists = lists
	m.state = StateReady
	return nil
}

// CreateList creates a list remotely and appends it to the cache.
func (m *Mirror) CreateList(ctx context.Context, name string) (*List, error) {
	list, err := m.api.CreateList(ctx, name)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lists = append(m.lists, *list)
	return list, nil
}

// RenameList renames a list remotely and patches the cached entry.
func (m *Mirror) RenameList(ctx context.Context, id, name string) error {
	updated, err := m.api.UpdateList(ctx, id, name)
	if err != nil {
		return err
	}
	m.replace(*updated)
	return nil
}

// DeleteList deletes a list remotely and drops it from the cache.
func (m *Mirror) DeleteList(ctx context.Context, id string) error {
	if err := m.api.DeleteList(ctx, id); err != nil {
		return err
	}
	m.remove(id)
	return nil
}

// ArchiveList flips the archived flag remotely and patches the cached entry.
func (m *Mirror) ArchiveList(ctx context.Context, id string, archived bool) error {
	updated, err := m.api.ArchiveList(ctx, id, archived)
	if err != nil {
		return err
	}
	m.replace(*updated)
	return nil
}

// AddMember adds a member remotely and patches the cached member set.
func (m *Mirror) AddMember(ctx context.Context, listID, userID string) error {
	if err := m.api.AddMember(ctx, listID, userID); err != nil {
		return err
	}
	m.patch(listID, func(list *List) {
		list.Members = append(list.Members, userID)
	})
	return nil
}

// RemoveMember removes a member remotely and patches the cached member set.
func (m *Mirror) RemoveMember(ctx context.Context, listID, userID string) error {
	if err := m.api.RemoveMember(ctx, listID, userID); err != nil {
		return err
	}
	m.patch(listID, func(list *List) {
		list.Members = filterStrings(list.Members, userID)
	})
	return nil
}

// Leave removes the session user from the list remotely and drops the list
// from the cache; a reload restores it for owners, who keep access.
func (m *Mirror) Leave(ctx context.Context, listID string) error {
	if err := m.api.Leave(ctx, listID); err != nil {
		return err
	}
	m.remove(listID)
	return nil
}

// AddItem appends an item remotely and patches the cached list.
func (m *Mirror) AddItem(ctx context.Context, listID, name string) (*Item, error) {
	item, err := m.api.AddItem(ctx, listID, name)
	if err != nil {
		return nil, err
	}
	m.patch(listID, func(list *List) {
		list.Items = append(list.Items, *item)
	})
	return item, nil
}

// RemoveItem deletes an item remotely and patches the cached list.
func (m *Mirror) RemoveItem(ctx context.Context, listID, itemID string) error {
	if err := m.api.RemoveItem(ctx, listID, itemID); err != nil {
		return err
	}
	m.patch(listID, func(list *List) {
		items := make([]Item, 0, len(list.Items))
		for _, item := range list.Items {
			if item.ID != itemID {
				items = append(items, item)
			}
		}
		list.Items = items
	})
	return nil
}

// ResolveItem toggles an item remotely and patches the cached list.
func (m *Mirror) ResolveItem(ctx context.Context, listID, itemID string, resolved bool) error {
	updated, err := m.api.ResolveItem(ctx, listID, itemID, resolved)
	if err != nil {
		return err
	}
	m.patch(listID, func(list *List) {
		for i := range list.Items {
			if list.Items[i].ID == itemID {
				list.Items[i] = *updated
				return
			}
		}
	})
	return nil
}

func (m *Mirror) replace(updated List) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.lists {
		if m.lists[i].ID == updated.ID {
			m.lists[i] = updated
			return
		}
	}
}

func (m *Mirror) remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	lists := make([]List, 0, len(m.lists))
	for _, list := range m.lists {
		if list.ID != id {
			lists = append(lists, list)
		}
	}
	m.lists = lists
}

func (m *Mirror) patch(id string, fn func(*List)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.lists {
		if m.lists[i].ID == id {
			fn(&m.lists[i])
			return
		}
	}
}

func filterStrings(values []string, drop string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != drop {
			out = append(out, v)
		}
	}
	return out
}
