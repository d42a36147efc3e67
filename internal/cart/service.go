package cart

import (
	"context"
	"errors"
	"strconv"

	"zonos-storefront/internal/domain"
	"zonos-storefront/internal/zonos"
)

// IDStore holds the cart identifier for the current request, backed by the
// cartId cookie at the HTTP layer.
type IDStore interface {
	Get() string
	Set(id string)
}

type vendorClient interface {
	CreateCart(ctx context.Context, req zonos.CreateCartRequest) (*zonos.CartResponse, error)
	UpdateCart(ctx context.Context, req zonos.UpdateCartRequest) (*zonos.CartResponse, error)
	CartByID(ctx context.Context, id string) (*zonos.CartResponse, error)
}

type skuResolver interface {
	ProductBySKU(ctx context.Context, sku string) (*domain.Product, *domain.Variant, error)
}

// Service wraps the vendor cart API with catalog-aware cart operations.
// Every call is a single vendor round trip; the vendor owns the cart state.
type Service struct {
	client  vendorClient
	catalog skuResolver
}

func NewService(client vendorClient, catalog skuResolver) *Service {
	return &Service{client: client, catalog: catalog}
}

func (s *Service) CreateCart(ctx context.Context) (*domain.Cart, error) {
	res, err := s.client.CreateCart(ctx, zonos.CreateCartRequest{
		Items:       []zonos.CartItemInput{},
		Adjustments: []domain.Adjustment{},
	})
	if err != nil {
		return nil, err
	}
	return reshape(res), nil
}

// GetCart returns the cart referenced by the id store, or nil when no cart
// id is present. A vendor error on fetch propagates unmodified.
func (s *Service) GetCart(ctx context.Context, ids IDStore) (*domain.Cart, error) {
	cartID := ids.Get()
	if cartID == "" {
		return nil, nil
	}
	res, err := s.client.CartByID(ctx, cartID)
	if err != nil {
		return nil, err
	}
	return reshape(res), nil
}

// AddToCart resolves the SKU against the catalog, merges quantities with any
// existing line item for that SKU, and pushes the full intended item list.
// The vendor update contract is replace-style: itemsRemove clears every
// existing id and itemsAdd re-sends every surviving item.
func (s *Service) AddToCart(ctx context.Context, ids IDStore, sku string, quantity int) (*domain.Cart, error) {
	product, variant, err := s.catalog.ProductBySKU(ctx, sku)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errors.New("product not found")
		}
		return nil, err
	}

	cart, err := s.GetCart(ctx, ids)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		cart, err = s.CreateCart(ctx)
		if err != nil {
			return nil, err
		}
	}

	var added *zonos.CartItemInput
	for _, item := range cart.Items {
		if item.SKU == sku {
			in := itemInput(item)
			in.Quantity = item.Quantity + quantity
			added = &in
			break
		}
	}
	if added == nil {
		amount, _ := strconv.ParseFloat(variant.Price.Amount, 64)
		attributes := make([]domain.ItemAttribute, 0, len(variant.SelectedOptions))
		for _, opt := range variant.SelectedOptions {
			attributes = append(attributes, domain.ItemAttribute{Key: opt.Name, Value: opt.Value})
		}
		added = &zonos.CartItemInput{
			Quantity:     quantity,
			Amount:       amount,
			CurrencyCode: variant.Price.CurrencyCode,
			Description:  product.Description,
			SKU:          variant.ID,
			ProductID:    product.ID,
			ImageURL:     product.FeaturedImage.URL,
			Name:         product.Title,
			Attributes:   attributes,
			Metadata:     []domain.KeyValue{{Key: "handle", Value: product.Handle}},
		}
	}

	itemsAdd := make([]zonos.CartItemInput, 0, len(cart.Items)+1)
	itemsRemove := make([]string, 0, len(cart.Items))
	for _, item := range cart.Items {
		if item.SKU != sku {
			itemsAdd = append(itemsAdd, itemInput(item))
		}
		itemsRemove = append(itemsRemove, item.ID)
	}
	itemsAdd = append(itemsAdd, *added)

	res, err := s.client.UpdateCart(ctx, zonos.UpdateCartRequest{
		ID:          cart.ID,
		ItemsAdd:    itemsAdd,
		ItemsRemove: itemsRemove,
	})
	if err != nil {
		return nil, err
	}
	return reshape(res), nil
}

// RemoveFromCart reads the cart id from the store directly rather than
// taking a cart argument.
func (s *Service) RemoveFromCart(ctx context.Context, ids IDStore, itemIDs []string) (*domain.Cart, error) {
	res, err := s.client.UpdateCart(ctx, zonos.UpdateCartRequest{
		ID:          ids.Get(),
		ItemsRemove: itemIDs,
	})
	if err != nil {
		return nil, err
	}
	return reshape(res), nil
}

// UpdateCart replaces the given items on the vendor cart: matching ids in
// itemsRemove with re-sent itemsAdd entries act as a per-item replace.
// Existing adjustments are re-sent verbatim so the vendor keeps them.
func (s *Service) UpdateCart(ctx context.Context, cart *domain.Cart, newItems []domain.CartItem) (*domain.Cart, error) {
	itemsAdd := make([]zonos.CartItemInput, 0, len(newItems))
	itemsRemove := make([]string, 0, len(newItems))
	for _, item := range newItems {
		itemsAdd = append(itemsAdd, itemInput(item))
		itemsRemove = append(itemsRemove, item.ID)
	}
	res, err := s.client.UpdateCart(ctx, zonos.UpdateCartRequest{
		ID:          cart.ID,
		Adjustments: cart.Adjustments,
		ItemsAdd:    itemsAdd,
		ItemsRemove: itemsRemove,
	})
	if err != nil {
		return nil, err
	}
	return reshape(res), nil
}

func itemInput(item domain.CartItem) zonos.CartItemInput {
	return zonos.CartItemInput{
		Amount:       item.Amount,
		Attributes:   item.Attributes,
		CurrencyCode: item.CurrencyCode,
		Description:  item.Description,
		ImageURL:     item.ImageURL,
		Metadata:     item.Metadata,
		Name:         item.Name,
		ProductID:    item.ProductID,
		Quantity:     item.Quantity,
		SKU:          item.SKU,
	}
}

// reshape derives totalQuantity and cost from the vendor response. The
// derived fields always equal this recomputation; they are never stored.
func reshape(res *zonos.CartResponse) *domain.Cart {
	items := res.Items
	if items == nil {
		items = []domain.CartItem{}
	}
	adjustments := res.Adjustments
	if adjustments == nil {
		adjustments = []domain.Adjustment{}
	}
	metadata := res.Metadata
	if metadata == nil {
		metadata = []domain.KeyValue{}
	}

	var subtotal float64
	totalQuantity := 0
	for _, item := range items {
		subtotal += item.Amount * float64(item.Quantity)
		totalQuantity += item.Quantity
	}
	total := subtotal
	for _, adj := range adjustments {
		total += adj.Amount
	}
	currency := "USD"
	if len(items) > 0 && items[0].CurrencyCode != "" {
		currency = items[0].CurrencyCode
	}

	return &domain.Cart{
		ID:            res.ID,
		Items:         items,
		Adjustments:   adjustments,
		Metadata:      metadata,
		TotalQuantity: totalQuantity,
		CheckoutURL:   "/checkout",
		Cost: domain.CartCost{
			SubtotalAmount: domain.Money{Amount: formatAmount(subtotal), CurrencyCode: currency},
			TotalAmount:    domain.Money{Amount: formatAmount(total), CurrencyCode: currency},
		},
	}
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
