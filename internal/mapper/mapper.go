// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"shopping-list-manager/internal/dto"
	"shopping-list-manager/internal/entities"
)

// ToDTOItem maps entities.Item to transport model.
func ToDTOItem(item entities.Item) dto.Item {
	return dto.Item{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Quantity:    item.Quantity,
		Resolved:    item.Resolved,
	}
}

// ToDTOList maps entities.ShoppingList to transport model.
func ToDTOList(list entities.ShoppingList) dto.ShoppingList {
	items := make([]dto.Item, 0, len(list.Items))
	for _, item := range list.Items {
		items = append(items, ToDTOItem(item))
	}

	members := make([]string, 0, len(list.Members))
	members = append(members, list.Members...)

	return dto.ShoppingList{
		ID:        list.ID,
		Name:      list.Name,
		OwnerID:   list.OwnerID,
		Members:   members,
		Items:     items,
		Archived:  list.Archived,
		CreatedAt: list.CreatedAt,
		UpdatedAt: list.UpdatedAt,
	}
}

// ToDTOListPage maps a slice of lists to the single-page list envelope.
func ToDTOListPage(lists []entities.ShoppingList) dto.ListPage {
	itemList := make([]dto.ShoppingList, 0, len(lists))
	for _, list := range lists {
		itemList = append(itemList, ToDTOList(list))
	}
	return dto.ListPage{
		ItemList: itemList,
		PageInfo: dto.PageInfo{
			PageIndex: 0,
			PageSize:  len(itemList),
			Total:     len(itemList),
		},
	}
}
