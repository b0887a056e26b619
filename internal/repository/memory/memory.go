// Package memory implements the repository as an in-memory map. It backs
// tests and demo runs behind the same interface as the Postgres store.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"shopping-list-manager/internal/entities"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Memory stores list aggregates in a map guarded by one RWMutex. The single
// lock serializes read-modify-write cycles per aggregate, which is all the
// atomicity the repository contract asks for.
type Memory struct {
	log *zap.SugaredLogger

	mu    sync.RWMutex
	lists map[string]*entities.ShoppingList
	// order tracks creation sequence; timestamps alone can tie within a test run.
	order map[string]int
	seq   int
}

// New creates an empty in-memory repository.
func New(log *zap.SugaredLogger) *Memory {
	return &Memory{
		log:   log.Named("repo.memory"),
		lists: make(map[string]*entities.ShoppingList),
		order: make(map[string]int),
	}
}

// OnStart is a no-op for the in-memory backend.
func (m *Memory) OnStart(_ context.Context) error { return nil }

// OnStop is a no-op for the in-memory backend.
func (m *Memory) OnStop(_ context.Context) error { return nil }

// Create inserts a new list owned by ownerID.
func (m *Memory) Create(_ context.Context, name, ownerID string) (*entities.ShoppingList, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now().UTC()
	list := &entities.ShoppingList{
		ID:        uuid.NewString(),
		Name:      name,
		OwnerID:   ownerID,
		Members:   []string{ownerID},
		Items:     []entities.Item{},
		CreatedAt: &now,
		UpdatedAt: &now,
	}
	m.lists[list.ID] = list
	m.seq++
	m.order[list.ID] = m.seq
	return copyList(list), nil
}

// GetByID fetches a list aggregate by id.
func (m *Memory) GetByID(_ context.Context, id string) (*entities.ShoppingList, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	list, ok := m.lists[id]
	if !ok {
		return nil, entities.ErrListNotFound
	}
	return copyList(list), nil
}

// ListFor returns lists where the caller is owner or member, filtered by the
// archived flag, newest-created first.
func (m *Memory) ListFor(_ context.Context, callerID string, archived bool) ([]entities.ShoppingList, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	lists := make([]entities.ShoppingList, 0)
	for _, list := range m.lists {
		if list.Archived != archived {
			continue
		}
		if list.OwnerID != callerID && !containsString(list.Members, callerID) {
			continue
		}
		lists = append(lists, *copyList(list))
	}

	sort.Slice(lists, func(i, j int) bool {
		return m.order[lists[i].ID] > m.order[lists[j].ID]
	})
	return lists, nil
}

// Rename updates the list name.
func (m *Memory) Rename(_ context.Context, id, name string) (*entities.ShoppingList, error) {
	return m.mutate(id, func(list *entities.ShoppingList) error {
		list.Name = name
		return nil
	})
}

// Delete removes the list and, with it, all embedded items.
func (m *Memory) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.lists[id]; !ok {
		return entities.ErrListNotFound
	}
	delete(m.lists, id)
	delete(m.order, id)
	return nil
}

// SetArchived flips the archived flag.
func (m *Memory) SetArchived(_ context.Context, id string, archived bool) (*entities.ShoppingList, error) {
	return m.mutate(id, func(list *entities.ShoppingList) error {
		list.Archived = archived
		return nil
	})
}

// AddMember appends a member, rejecting duplicates.
func (m *Memory) AddMember(_ context.Context, id, userID string) error {
	_, err := m.mutate(id, func(list *entities.ShoppingList) error {
		if containsString(list.Members, userID) {
			return entities.ErrAlreadyMember
		}
		list.Members = append(list.Members, userID)
		return nil
	})
	return err
}

// RemoveMember drops a member from the list.
func (m *Memory) RemoveMember(_ context.Context, id, userID string) error {
	_, err := m.mutate(id, func(list *entities.ShoppingList) error {
		for i, member := range list.Members {
			if member == userID {
				list.Members = append(list.Members[:i], list.Members[i+1:]...)
				return nil
			}
		}
		return entities.ErrNotAMember
	})
	return err
}

// AddItem appends an item to the end of the list.
func (m *Memory) AddItem(_ context.Context, id string, item entities.Item) (*entities.Item, error) {
	created := entities.Item{
		ID:          uuid.NewString(),
		Name:        item.Name,
		Description: item.Description,
		Quantity:    item.Quantity,
	}
	_, err := m.mutate(id, func(list *entities.ShoppingList) error {
		list.Items = append(list.Items, created)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// RemoveItem drops an item from the list.
func (m *Memory) RemoveItem(_ context.Context, id, itemID string) error {
	_, err := m.mutate(id, func(list *entities.ShoppingList) error {
		for i, it := range list.Items {
			if it.ID == itemID {
				list.Items = append(list.Items[:i], list.Items[i+1:]...)
				return nil
			}
		}
		return entities.ErrItemNotFound
	})
	return err
}

// SetItemResolved updates the resolved flag of a single item.
func (m *Memory) SetItemResolved(_ context.Context, id, itemID string, resolved bool) (*entities.Item, error) {
	var updated entities.Item
	_, err := m.mutate(id, func(list *entities.ShoppingList) error {
		for i := range list.Items {
			if list.Items[i].ID == itemID {
				list.Items[i].Resolved = resolved
				updated = list.Items[i]
				return nil
			}
		}
		return entities.ErrItemNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (m *Memory) mutate(id string, fn func(*entities.ShoppingList) error) (*entities.ShoppingList, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	list, ok := m.lists[id]
	if !ok {
		return nil, entities.ErrListNotFound
	}
	if err := fn(list); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	list.UpdatedAt = &now
	return copyList(list), nil
}

func containsString(list []string, target string) bool {
	for _, v := range list {
		if v == target {
			return true
		}
	}
	return false
}

// copyList returns a deep copy so callers never share slices with the store.
func copyList(src *entities.ShoppingList) *entities.ShoppingList {
	dst := *src
	dst.Members = append([]string(nil), src.Members...)
	dst.Items = append([]entities.Item(nil), src.Items...)
	if src.CreatedAt != nil {
		createdAt := *src.CreatedAt
		dst.CreatedAt = &createdAt
	}
	if src.UpdatedAt != nil {
		updatedAt := *src.UpdatedAt
		dst.UpdatedAt = &updatedAt
	}
	return &dst
}
