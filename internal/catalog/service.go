package catalog

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"zonos-storefront/internal/domain"
)

// Sort keys accepted by product listings.
const (
	SortPrice       = "PRICE"
	SortCreatedAt   = "CREATED_AT"
	SortUpdatedAt   = "UPDATED_AT"
	SortBestSelling = "BEST_SELLING"
)

const hiddenCollectionPrefix = "hidden-"

type Service struct {
	repo Repository
}

func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Products lists products matching an optional search query over title,
// description and tags, sorted by sortKey.
func (s *Service) Products(ctx context.Context, query, sortKey string, reverse bool) ([]domain.Product, error) {
	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	if q := strings.TrimSpace(strings.ToLower(query)); q != "" {
		var matched []domain.Product
		for _, p := range products {
			if productMatches(p, q) {
				matched = append(matched, p)
			}
		}
		products = matched
	}
	sortProducts(products, sortKey, reverse)
	return products, nil
}

func (s *Service) Product(ctx context.Context, handle string) (*domain.Product, error) {
	return s.repo.GetProductByHandle(ctx, handle)
}

// ProductBySKU finds the product and variant whose variant id matches the
// given SKU. Cart line items are keyed by this id.
func (s *Service) ProductBySKU(ctx context.Context, sku string) (*domain.Product, *domain.Variant, error) {
	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, nil, err
	}
	for i := range products {
		for j := range products[i].Variants {
			if products[i].Variants[j].ID == sku {
				return &products[i], &products[i].Variants[j], nil
			}
		}
	}
	return nil, nil, domain.ErrNotFound
}

// Collections lists storefront-visible collections. Hidden collections
// (handles prefixed "hidden-") back homepage sections and are excluded.
func (s *Service) Collections(ctx context.Context) ([]domain.Collection, error) {
	collections, err := s.repo.ListCollections(ctx)
	if err != nil {
		return nil, err
	}
	visible := make([]domain.Collection, 0, len(collections))
	for _, c := range collections {
		if strings.HasPrefix(c.Handle, hiddenCollectionPrefix) {
			continue
		}
		visible = append(visible, c)
	}
	return visible, nil
}

func (s *Service) Collection(ctx context.Context, handle string) (*domain.Collection, error) {
	return s.repo.GetCollectionByHandle(ctx, handle)
}

// CollectionProducts resolves a collection's product ids against the
// product list, preserving sort order.
func (s *Service) CollectionProducts(ctx context.Context, handle, sortKey string, reverse bool) ([]domain.Product, error) {
	collection, err := s.repo.GetCollectionByHandle(ctx, handle)
	if err != nil {
		return nil, err
	}
	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	var result []domain.Product
	for _, id := range collection.ProductIDs {
		if p, ok := byID[id]; ok {
			result = append(result, p)
		}
	}
	sortProducts(result, sortKey, reverse)
	return result, nil
}

// Recommendations returns other products sharing a collection with the
// given product, falling back to the rest of the catalog.
func (s *Service) Recommendations(ctx context.Context, handle string) ([]domain.Product, error) {
	product, err := s.repo.GetProductByHandle(ctx, handle)
	if err != nil {
		return nil, err
	}
	collections, err := s.repo.ListCollections(ctx)
	if err != nil {
		return nil, err
	}
	related := map[string]bool{}
	for _, c := range collections {
		if !containsID(c.ProductIDs, product.ID) {
			continue
		}
		for _, id := range c.ProductIDs {
			if id != product.ID {
				related[id] = true
			}
		}
	}
	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	var result []domain.Product
	for _, p := range products {
		if related[p.ID] {
			result = append(result, p)
		}
	}
	if len(result) == 0 {
		for _, p := range products {
			if p.ID != product.ID {
				result = append(result, p)
			}
		}
	}
	return result, nil
}

func (s *Service) Menu(ctx context.Context, handle string) ([]domain.MenuItem, error) {
	return s.repo.GetMenu(ctx, handle)
}

func (s *Service) Pages(ctx context.Context) ([]domain.Page, error) {
	return s.repo.ListPages(ctx)
}

func (s *Service) Page(ctx context.Context, handle string) (*domain.Page, error) {
	return s.repo.GetPageByHandle(ctx, handle)
}

func productMatches(p domain.Product, q string) bool {
	if strings.Contains(strings.ToLower(p.Title), q) || strings.Contains(strings.ToLower(p.Description), q) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

func sortProducts(products []domain.Product, sortKey string, reverse bool) {
	switch sortKey {
	case SortPrice:
		sort.SliceStable(products, func(i, j int) bool {
			return maxPrice(products[i]) < maxPrice(products[j])
		})
	case SortCreatedAt, SortUpdatedAt:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].UpdatedAt.Before(products[j].UpdatedAt)
		})
	case SortBestSelling, "":
		// Fixture order stands in for sales data.
	}
	if reverse {
		for i, j := 0, len(products)-1; i < j; i, j = i+1, j-1 {
			products[i], products[j] = products[j], products[i]
		}
	}
}

func maxPrice(p domain.Product) float64 {
	v, _ := strconv.ParseFloat(p.PriceRange.MaxVariantPrice.Amount, 64)
	return v
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
