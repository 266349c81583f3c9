package models

type ShoppingItem struct {
	ID          int    `json:"id"`
	ItemName    string `json:"itemName"`
	Quantity    int    `json:"quantity"`
	Unit        string `json:"unit"`
	IsPurchased bool   `json:"isPurchased"`
}

func (s ShoppingItem) WithID(id int) ShoppingItem {
	s.ID = id
	return s
}

func (s ShoppingItem) Clone() ShoppingItem { return s }

type CreateShoppingItemRequest struct {
	ItemName    string `json:"itemName" validate:"required"`
	Quantity    *int   `json:"quantity" validate:"required,min=0"`
	Unit        string `json:"unit" validate:"required"`
	IsPurchased *bool  `json:"isPurchased"`
}

// ShoppingItem builds the entity to insert. isPurchased defaults to false.
func (r CreateShoppingItemRequest) ShoppingItem() ShoppingItem {
	item := ShoppingItem{
		ItemName: r.ItemName,
		Unit:     r.Unit,
	}
	if r.Quantity != nil {
		item.Quantity = *r.Quantity
	}
	if r.IsPurchased != nil {
		item.IsPurchased = *r.IsPurchased
	}
	return item
}

type UpdateShoppingItemRequest struct {
	ItemName    *string `json:"itemName,omitempty" validate:"omitempty,min=1"`
	Quantity    *int    `json:"quantity,omitempty" validate:"omitempty,min=0"`
	Unit        *string `json:"unit,omitempty" validate:"omitempty,min=1"`
	IsPurchased *bool   `json:"isPurchased,omitempty"`
}

// Apply overwrites only the fields present in the request.
func (r UpdateShoppingItemRequest) Apply(item ShoppingItem) ShoppingItem {
	if r.ItemName != nil {
		item.ItemName = *r.ItemName
	}
	if r.Quantity != nil {
		item.Quantity = *r.Quantity
	}
	if r.Unit != nil {
		item.Unit = *r.Unit
	}
	if r.IsPurchased != nil {
		item.IsPurchased = *r.IsPurchased
	}
	return item
}
