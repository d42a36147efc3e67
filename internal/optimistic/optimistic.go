// Package optimistic predicts the post-mutation cart shape so the UI can
// render instantly. Predictions are advisory: the authoritative cart is
// whatever the next vendor round trip returns, and the UI reconciles to it
// once the corresponding mutation resolves.
package optimistic

import (
	"strconv"

	"zonos-storefront/internal/domain"
)

type ActionType string

const (
	ActionAddItem    ActionType = "ADD_ITEM"
	ActionUpdateItem ActionType = "UPDATE_ITEM"
)

type UpdateType string

const (
	UpdatePlus   UpdateType = "plus"
	UpdateMinus  UpdateType = "minus"
	UpdateDelete UpdateType = "delete"
)

// Action is one reducer input. UPDATE_ITEM matches by SKU and applies
// UpdateType; ADD_ITEM needs the product and variant to synthesize a line
// item that has not been persisted yet.
type Action struct {
	Type       ActionType      `json:"type"`
	SKU        string          `json:"sku,omitempty"`
	UpdateType UpdateType      `json:"updateType,omitempty"`
	Product    *domain.Product `json:"product,omitempty"`
	Variant    *domain.Variant `json:"variant,omitempty"`
}

// Reduce is a pure function over the cart snapshot. A nil state reduces
// from an empty cart, and an empty resulting item list still yields a valid
// cart shape with zero totals rather than an absent cart.
func Reduce(state *domain.Cart, action Action) domain.Cart {
	current := EmptyCart()
	if state != nil {
		current = *state
	}

	switch action.Type {
	case ActionUpdateItem:
		items := make([]domain.CartItem, 0, len(current.Items))
		for _, item := range current.Items {
			if item.SKU != action.SKU {
				items = append(items, item)
				continue
			}
			if updated, keep := updateItem(item, action.UpdateType); keep {
				items = append(items, updated)
			}
		}
		current.Items = items
		recompute(&current)
	case ActionAddItem:
		if action.Variant == nil || action.Product == nil {
			return current
		}
		updated := createOrUpdateItem(current.Items, *action.Variant, *action.Product)
		items := make([]domain.CartItem, len(current.Items))
		copy(items, current.Items)
		replaced := false
		for i := range items {
			if items[i].SKU == action.Variant.ID {
				items[i] = updated
				replaced = true
				break
			}
		}
		if !replaced {
			items = append(items, updated)
		}
		current.Items = items
		recompute(&current)
	}
	return current
}

// EmptyCart is the zero-total cart shape shown before any server cart
// exists.
func EmptyCart() domain.Cart {
	return domain.Cart{
		Items:       []domain.CartItem{},
		Adjustments: []domain.Adjustment{},
		Metadata:    []domain.KeyValue{},
		CheckoutURL: "/checkout",
		Cost: domain.CartCost{
			SubtotalAmount: domain.Money{Amount: "0.00", CurrencyCode: "USD"},
			TotalAmount:    domain.Money{Amount: "0.00", CurrencyCode: "USD"},
		},
	}
}

func updateItem(item domain.CartItem, updateType UpdateType) (domain.CartItem, bool) {
	if updateType == UpdateDelete {
		return item, false
	}
	quantity := item.Quantity + 1
	if updateType == UpdateMinus {
		quantity = item.Quantity - 1
	}
	if quantity <= 0 {
		return item, false
	}
	item.Quantity = quantity
	return item, true
}

// createOrUpdateItem preserves the existing item's id, description, image
// and metadata on increment; a brand-new item gets no id since the vendor
// has not assigned one yet.
func createOrUpdateItem(items []domain.CartItem, variant domain.Variant, product domain.Product) domain.CartItem {
	var existing *domain.CartItem
	for i := range items {
		if items[i].SKU == variant.ID {
			existing = &items[i]
			break
		}
	}

	amount, _ := strconv.ParseFloat(variant.Price.Amount, 64)
	attributes := make([]domain.ItemAttribute, 0, len(variant.SelectedOptions))
	for _, opt := range variant.SelectedOptions {
		attributes = append(attributes, domain.ItemAttribute{Key: opt.Name, Value: opt.Value})
	}

	item := domain.CartItem{
		Quantity:     1,
		Amount:       amount,
		CurrencyCode: variant.Price.CurrencyCode,
		SKU:          variant.ID,
		ProductID:    product.ID,
		Name:         product.Title,
		Description:  product.Description,
		ImageURL:     product.FeaturedImage.URL,
		Attributes:   attributes,
		Metadata:     []domain.KeyValue{{Key: "handle", Value: product.Handle}},
	}
	if existing != nil {
		item.Quantity = existing.Quantity + 1
		item.ID = existing.ID
		item.Name = existing.Name
		item.Description = existing.Description
		item.ImageURL = existing.ImageURL
		item.Restriction = existing.Restriction
		if len(existing.Metadata) > 0 {
			item.Metadata = existing.Metadata
		}
	}
	return item
}

func recompute(cart *domain.Cart) {
	var subtotal float64
	quantity := 0
	for _, item := range cart.Items {
		subtotal += item.Amount * float64(item.Quantity)
		quantity += item.Quantity
	}
	total := subtotal
	for _, adj := range cart.Adjustments {
		total += adj.Amount
	}
	currency := "USD"
	if len(cart.Items) > 0 && cart.Items[0].CurrencyCode != "" {
		currency = cart.Items[0].CurrencyCode
	}
	cart.TotalQuantity = quantity
	cart.Cost = domain.CartCost{
		SubtotalAmount: domain.Money{Amount: format(subtotal), CurrencyCode: currency},
		TotalAmount:    domain.Money{Amount: format(total), CurrencyCode: currency},
	}
}

func format(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
