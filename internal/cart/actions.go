package cart

import (
	"context"

	"github.com/sirupsen/logrus"

	"zonos-storefront/internal/domain"
)

// TagCart keys cached cart reads; mutation actions invalidate it so the
// next read refetches from the vendor.
const TagCart = "cart"

// User-facing action results. Empty string means success; these strings are
// rendered inline next to the triggering control.
const (
	msgErrorAddingItem    = "Error adding item to cart"
	msgErrorFetchingCart  = "Error fetching cart"
	msgErrorRemovingItem  = "Error removing item from cart"
	msgErrorUpdatingItem  = "Error updating item quantity"
	msgItemNotFoundInCart = "Item not found in cart"
)

// Invalidator drops cached responses under a tag.
type Invalidator interface {
	Invalidate(tag string)
}

type cartAPI interface {
	CreateCart(ctx context.Context) (*domain.Cart, error)
	GetCart(ctx context.Context, ids IDStore) (*domain.Cart, error)
	AddToCart(ctx context.Context, ids IDStore, sku string, quantity int) (*domain.Cart, error)
	RemoveFromCart(ctx context.Context, ids IDStore, itemIDs []string) (*domain.Cart, error)
	UpdateCart(ctx context.Context, cart *domain.Cart, newItems []domain.CartItem) (*domain.Cart, error)
}

// Actions are the request-scoped cart mutations invoked from storefront
// forms. Each is a single-shot call: success returns "", a recoverable
// business error returns a descriptive string, and anything thrown below is
// collapsed to a generic string after a debug log. Nothing retries; a call
// that failed leaves no partial vendor state, so re-invoking is safe.
type Actions struct {
	svc    cartAPI
	cache  Invalidator
	logger logrus.FieldLogger
}

func NewActions(svc cartAPI, cache Invalidator, logger logrus.FieldLogger) *Actions {
	return &Actions{svc: svc, cache: cache, logger: logger}
}

// AddItem rejects a missing SKU before any network call.
func (a *Actions) AddItem(ctx context.Context, ids IDStore, sku string, quantity int) string {
	if sku == "" {
		return msgErrorAddingItem
	}
	if _, err := a.svc.AddToCart(ctx, ids, sku, quantity); err != nil {
		a.logger.WithError(err).Debug("add item to cart")
		return msgErrorAddingItem
	}
	a.cache.Invalidate(TagCart)
	return ""
}

// RemoveItem locates the line item by its vendor-assigned id.
func (a *Actions) RemoveItem(ctx context.Context, ids IDStore, itemID string) string {
	cart, err := a.svc.GetCart(ctx, ids)
	if err != nil {
		a.logger.WithError(err).Debug("fetch cart for removal")
		return msgErrorRemovingItem
	}
	if cart == nil {
		return msgErrorFetchingCart
	}
	for _, item := range cart.Items {
		if item.ID == itemID && item.ID != "" {
			if _, err := a.svc.RemoveFromCart(ctx, ids, []string{item.ID}); err != nil {
				a.logger.WithError(err).Debug("remove item from cart")
				return msgErrorRemovingItem
			}
			a.cache.Invalidate(TagCart)
			return ""
		}
	}
	return msgItemNotFoundInCart
}

// UpdateItemQuantity locates the line item by SKU, not id: a quantity of
// zero removes, an existing item updates, and a missing item with a
// positive quantity is added.
func (a *Actions) UpdateItemQuantity(ctx context.Context, ids IDStore, sku string, quantity int) string {
	cart, err := a.svc.GetCart(ctx, ids)
	if err != nil {
		a.logger.WithError(err).Error("fetch cart for quantity update")
		return msgErrorUpdatingItem
	}
	if cart == nil {
		return msgErrorFetchingCart
	}

	var found *domain.CartItem
	for i := range cart.Items {
		if cart.Items[i].SKU == sku {
			found = &cart.Items[i]
			break
		}
	}

	switch {
	case found != nil && found.ID != "":
		if quantity == 0 {
			_, err = a.svc.RemoveFromCart(ctx, ids, []string{found.ID})
		} else {
			updated := *found
			updated.Quantity = quantity
			_, err = a.svc.UpdateCart(ctx, cart, []domain.CartItem{updated})
		}
	case quantity > 0:
		_, err = a.svc.AddToCart(ctx, ids, sku, quantity)
	}
	if err != nil {
		a.logger.WithError(err).Error("update item quantity")
		return msgErrorUpdatingItem
	}

	a.cache.Invalidate(TagCart)
	return ""
}

// RedirectToCheckout ensures a cart exists, creating one and setting the
// cookie if needed, and returns the checkout path to navigate to.
func (a *Actions) RedirectToCheckout(ctx context.Context, ids IDStore) (string, error) {
	cart, err := a.svc.GetCart(ctx, ids)
	if err != nil {
		return "", err
	}
	if cart == nil {
		if _, err := a.CreateCartAndSetCookie(ctx, ids); err != nil {
			return "", err
		}
	}
	return "/checkout", nil
}

// CreateCartAndSetCookie creates a vendor cart, stores its id in the
// long-lived cookie and returns the id for immediate use (the checkout
// widget needs a cart id before the cookie round-trips).
func (a *Actions) CreateCartAndSetCookie(ctx context.Context, ids IDStore) (string, error) {
	cart, err := a.svc.CreateCart(ctx)
	if err != nil {
		return "", err
	}
	ids.Set(cart.ID)
	return cart.ID, nil
}
