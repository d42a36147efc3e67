package domain

// Adjustment types accepted by the vendor cart API.
const (
	AdjustmentCartTotal  = "CART_TOTAL"
	AdjustmentItem       = "ITEM"
	AdjustmentOrderTotal = "ORDER_TOTAL"
	AdjustmentPromoCode  = "PROMO_CODE"
	AdjustmentShipping   = "SHIPPING"
)

type Cart struct {
	ID            string       `json:"id"`
	Items         []CartItem   `json:"items"`
	Adjustments   []Adjustment `json:"adjustments"`
	Metadata      []KeyValue   `json:"metadata"`
	TotalQuantity int          `json:"totalQuantity"`
	Cost          CartCost     `json:"cost"`
	CheckoutURL   string       `json:"checkoutUrl"`
}

type CartItem struct {
	ID           string          `json:"id,omitempty"`
	SKU          string          `json:"sku,omitempty"`
	ProductID    string          `json:"productId,omitempty"`
	Quantity     int             `json:"quantity"`
	Amount       float64         `json:"amount"`
	CurrencyCode string          `json:"currencyCode"`
	Name         string          `json:"name,omitempty"`
	Description  string          `json:"description,omitempty"`
	ImageURL     string          `json:"imageUrl,omitempty"`
	Attributes   []ItemAttribute `json:"attributes,omitempty"`
	Metadata     []KeyValue      `json:"metadata,omitempty"`
	Restriction  *Restriction    `json:"restriction,omitempty"`
}

type Adjustment struct {
	Amount       float64 `json:"amount"`
	CurrencyCode string  `json:"currencyCode"`
	Description  string  `json:"description,omitempty"`
	ProductID    string  `json:"productId,omitempty"`
	SKU          string  `json:"sku,omitempty"`
	Type         string  `json:"type"`
}

// ItemAttribute is a variant option pair, e.g. Size=M.
type ItemAttribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type KeyValue struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Restriction is a vendor-imposed block on a line item (e.g. a compliance hold).
type Restriction struct {
	Action string `json:"action"`
	Reason string `json:"reason"`
}

type Money struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currencyCode"`
}

// CartCost carries the derived totals. Both amounts are recomputed from the
// item and adjustment lists on every read and never stored independently.
type CartCost struct {
	SubtotalAmount Money `json:"subtotalAmount"`
	TotalAmount    Money `json:"totalAmount"`
}
