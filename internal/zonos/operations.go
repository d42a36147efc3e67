package zonos

import (
	"net/http"
	"net/url"

	"zonos-storefront/internal/domain"
)

// The vendor exposes exactly three cart operations. Each gets its own
// descriptor with a fixed method and path binding and its own
// request/response shape instead of a generic endpoint-template call-site.
type operation struct {
	name   string
	method string
	path   string
}

var (
	opCartCreate = operation{name: "cart.create", method: http.MethodPost, path: "/api/commerce/cart/create"}
	opCartUpdate = operation{name: "cart.update", method: http.MethodPut, path: "/api/commerce/cart/update"}
)

// opCartByID binds its single path parameter explicitly.
func opCartByID(id string) operation {
	return operation{name: "cart.byId", method: http.MethodGet, path: "/api/commerce/cart/" + url.PathEscape(id)}
}

// CartItemInput is an itemsAdd entry. It never carries an id: the vendor
// assigns ids, and update semantics treat re-added items as replacements.
type CartItemInput struct {
	Amount       float64                `json:"amount"`
	Attributes   []domain.ItemAttribute `json:"attributes,omitempty"`
	CurrencyCode string                 `json:"currencyCode"`
	Description  string                 `json:"description,omitempty"`
	ImageURL     string                 `json:"imageUrl,omitempty"`
	Metadata     []domain.KeyValue      `json:"metadata,omitempty"`
	Name         string                 `json:"name,omitempty"`
	ProductID    string                 `json:"productId,omitempty"`
	Quantity     int                    `json:"quantity"`
	SKU          string                 `json:"sku,omitempty"`
}

type CreateCartRequest struct {
	Items       []CartItemInput     `json:"items"`
	Adjustments []domain.Adjustment `json:"adjustments"`
	Metadata    []domain.KeyValue   `json:"metadata,omitempty"`
}

type UpdateCartRequest struct {
	ID          string              `json:"id"`
	Adjustments []domain.Adjustment `json:"adjustments,omitempty"`
	ItemsAdd    []CartItemInput     `json:"itemsAdd,omitempty"`
	ItemsRemove []string            `json:"itemsRemove,omitempty"`
	Metadata    []domain.KeyValue   `json:"metadata,omitempty"`
}

// CartResponse is the raw vendor cart. Derived totals are not part of it;
// the cart service computes them on reshape.
type CartResponse struct {
	ID          string              `json:"id"`
	Items       []domain.CartItem   `json:"items"`
	Adjustments []domain.Adjustment `json:"adjustments"`
	Metadata    []domain.KeyValue   `json:"metadata"`
}
