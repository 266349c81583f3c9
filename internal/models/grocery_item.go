package models

import (
	"fmt"
	"time"
)

// dateLayouts are tried in order when parsing an expiry date.
var dateLayouts = []string{
	time.DateOnly,
	time.RFC3339,
	time.RFC3339Nano,
}

// ParseDate accepts a calendar date (2006-01-02) or an RFC 3339 timestamp.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}

type GroceryItem struct {
	ID         int        `json:"id"`
	Name       string     `json:"name"`
	Quantity   int        `json:"quantity"`
	Unit       string     `json:"unit"`
	ExpiryDate *time.Time `json:"expiryDate,omitempty"`
}

func (g GroceryItem) WithID(id int) GroceryItem {
	g.ID = id
	return g
}

func (g GroceryItem) Clone() GroceryItem {
	if g.ExpiryDate != nil {
		t := *g.ExpiryDate
		g.ExpiryDate = &t
	}
	return g
}

type CreateGroceryItemRequest struct {
	Name       string  `json:"name" validate:"required"`
	Quantity   *int    `json:"quantity" validate:"required,min=0"`
	Unit       string  `json:"unit" validate:"required"`
	ExpiryDate *string `json:"expiryDate" validate:"omitempty,isodate"`
}

// GroceryItem builds the entity to insert. The request must already be valid.
func (r CreateGroceryItemRequest) GroceryItem() GroceryItem {
	item := GroceryItem{
		Name: r.Name,
		Unit: r.Unit,
	}
	if r.Quantity != nil {
		item.Quantity = *r.Quantity
	}
	if r.ExpiryDate != nil {
		if t, err := ParseDate(*r.ExpiryDate); err == nil {
			item.ExpiryDate = &t
		}
	}
	return item
}

type UpdateGroceryItemRequest struct {
	Name       *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Quantity   *int    `json:"quantity,omitempty" validate:"omitempty,min=0"`
	Unit       *string `json:"unit,omitempty" validate:"omitempty,min=1"`
	ExpiryDate *string `json:"expiryDate,omitempty" validate:"omitempty,isodate"`
}

// Apply overwrites only the fields present in the request. A JSON null is
// indistinguishable from an absent field and leaves the value untouched.
func (r UpdateGroceryItemRequest) Apply(item GroceryItem) GroceryItem {
	if r.Name != nil {
		item.Name = *r.Name
	}
	if r.Quantity != nil {
		item.Quantity = *r.Quantity
	}
	if r.Unit != nil {
		item.Unit = *r.Unit
	}
	if r.ExpiryDate != nil {
		if t, err := ParseDate(*r.ExpiryDate); err == nil {
			item.ExpiryDate = &t
		}
	}
	return item
}
