package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shopping-list-manager/internal/entities"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	insertListQuery = `
INSERT INTO shopping_lists(id, name, owner_id, members, items, archived)
VALUES ($1, $2, $3, $4, $5, false)
RETURNING created_at, updated_at`
	selectListQuery = `
SELECT id, name, owner_id, members, items, archived, created_at, updated_at
FROM shopping_lists WHERE id=$1`
	selectListForUpdateQuery = `
SELECT id, name, owner_id, members, items, archived, created_at, updated_at
FROM shopping_lists WHERE id=$1 FOR UPDATE`
	selectListsForCallerQuery = `
SELECT id, name, owner_id, members, items, archived, created_at, updated_at
FROM shopping_lists
WHERE archived=$2 AND (owner_id=$1 OR members @> to_jsonb($1::text))
ORDER BY created_at DESC`
	updateListQuery = `
UPDATE shopping_lists
SET name=$2, members=$3, items=$4, archived=$5, updated_at=NOW()
WHERE id=$1
RETURNING updated_at`
	deleteListQuery = `DELETE FROM shopping_lists WHERE id=$1`
)

// Create inserts a new list owned by ownerID. The owner is seeded as the
// first member, matching the access rule that owners always have access.
func (p *Postgres) Create(ctx context.Context, name, ownerID string) (*entities.ShoppingList, error) {
	list := &entities.ShoppingList{
		ID:      uuid.NewString(),
		Name:    name,
		OwnerID: ownerID,
		Members: []string{ownerID},
		Items:   []entities.Item{},
	}

	var createdAt, updatedAt time.Time
	err := p.db.QueryRow(ctx, insertListQuery, list.ID, list.Name, list.OwnerID, list.Members, list.Items).
		Scan(&createdAt, &updatedAt)
	if err != nil {
		p.log.Errorw("failed to insert shopping list", "error", err, "owner_id", ownerID)
		return nil, fmt.Errorf("insert list: %w", err)
	}
	list.CreatedAt = &createdAt
	list.UpdatedAt = &updatedAt

	p.log.Infow("shopping list created", "list_id", list.ID, "owner_id", ownerID)
	return list, nil
}

// GetByID fetches a list aggregate by id.
func (p *Postgres) GetByID(ctx context.Context, id string) (*entities.ShoppingList, error) {
	list, err := scanList(p.db.QueryRow(ctx, selectListQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrListNotFound
		}
		return nil, fmt.Errorf("get list: %w", err)
	}
	return list, nil
}

// ListFor returns lists where the caller is owner or member, filtered by the
// archived flag, newest-created first.
func (p *Postgres) ListFor(ctx context.Context, callerID string, archived bool) ([]entities.ShoppingList, error) {
	rows, err := p.db.Query(ctx, selectListsForCallerQuery, callerID, archived)
	if err != nil {
		return nil, fmt.Errorf("list lists: %w", err)
	}
	defer rows.Close()

	lists := make([]entities.ShoppingList, 0)
	for rows.Next() {
		list, err := scanList(rows)
		if err != nil {
			p.log.Errorw("failed to scan shopping list", "error", err, "caller_id", callerID)
			return nil, fmt.Errorf("scan list: %w", err)
		}
		lists = append(lists, *list)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate lists: %w", err)
	}

	return lists, nil
}

// Rename updates the list name.
func (p *Postgres) Rename(ctx context.Context, id, name string) (*entities.ShoppingList, error) {
	return p.mutate(ctx, id, func(list *entities.ShoppingList) error {
		list.Name = name
		return nil
	})
}

// Delete removes the list row; embedded items go with it.
func (p *Postgres) Delete(ctx context.Context, id string) error {
	tag, err := p.db.Exec(ctx, deleteListQuery, id)
	if err != nil {
		return fmt.Errorf("delete list: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrListNotFound
	}
	p.log.Infow("shopping list deleted", "list_id", id)
	return nil
}

// SetArchived flips the archived flag.
func (p *Postgres) SetArchived(ctx context.Context, id string, archived bool) (*entities.ShoppingList, error) {
	return p.mutate(ctx, id, func(list *entities.ShoppingList) error {
		list.Archived = archived
		return nil
	})
}

// AddMember appends a member; adding an existing member is rejected so the
// member set never accumulates duplicates.
func (p *Postgres) AddMember(ctx context.Context, id, userID string) error {
	_, err := p.mutate(ctx, id, func(list *entities.ShoppingList) error {
		for _, m := range list.Members {
			if m == userID {
				return entities.ErrAlreadyMember
			}
		}
		list.Members = append(list.Members, userID)
		return nil
	})
	if err != nil {
		return err
	}
	p.log.Infow("member added", "list_id", id, "user_id", userID)
	return nil
}

// RemoveMember drops a member from the list.
func (p *Postgres) RemoveMember(ctx context.Context, id, userID string) error {
	_, err := p.mutate(ctx, id, func(list *entities.ShoppingList) error {
		for i, m := range list.Members {
			if m == userID {
				list.Members = append(list.Members[:i], list.Members[i+1:]...)
				return nil
			}
		}
		return entities.ErrNotAMember
	})
	if err != nil {
		return err
	}
	p.log.Infow("member removed", "list_id", id, "user_id", userID)
	return nil
}

// AddItem appends an item to the end of the list.
func (p *Postgres) AddItem(ctx context.Context, id string, item entities.Item) (*entities.Item, error) {
	created := entities.Item{
		ID:          uuid.NewString(),
		Name:        item.Name,
		Description: item.Description,
		Quantity:    item.Quantity,
	}
	_, err := p.mutate(ctx, id, func(list *entities.ShoppingList) error {
		list.Items = append(list.Items, created)
		return nil
	})
	if err != nil {
		return nil, err
	}
	p.log.Infow("item added", "list_id", id, "item_id", created.ID)
	return &created, nil
}

// RemoveItem drops an item from the list.
func (p *Postgres) RemoveItem(ctx context.Context, id, itemID string) error {
	_, err := p.mutate(ctx, id, func(list *entities.ShoppingList) error {
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
func (p *Postgres) SetItemResolved(ctx context.Context, id, itemID string, resolved bool) (*entities.Item, error) {
	var updated entities.Item
	_, err := p.mutate(ctx, id, func(list *entities.ShoppingList) error {
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

// mutate loads the aggregate under a row lock, applies fn and writes the whole
// row back. The row lock serializes concurrent mutations of the same list.
func (p *Postgres) mutate(ctx context.Context, id string, fn func(*entities.ShoppingList) error) (*entities.ShoppingList, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	list, err := scanList(tx.QueryRow(ctx, selectListForUpdateQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrListNotFound
		}
		return nil, fmt.Errorf("lock list: %w", err)
	}

	if err := fn(list); err != nil {
		return nil, err
	}

	var updatedAt time.Time
	err = tx.QueryRow(ctx, updateListQuery, list.ID, list.Name, list.Members, list.Items, list.Archived).
		Scan(&updatedAt)
	if err != nil {
		p.log.Errorw("failed to update shopping list", "error", err, "list_id", id)
		return nil, fmt.Errorf("update list: %w", err)
	}
	list.UpdatedAt = &updatedAt

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return list, nil
}

func scanList(row pgx.Row) (*entities.ShoppingList, error) {
	var list entities.ShoppingList
	var createdAt, updatedAt time.Time
	err := row.Scan(&list.ID, &list.Name, &list.OwnerID, &list.Members, &list.Items,
		&list.Archived, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	list.CreatedAt = &createdAt
	list.UpdatedAt = &updatedAt
	return &list, nil
}
