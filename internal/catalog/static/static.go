// Package static is the fixture-backed catalog used when no catalog
// database is configured. Content mirrors what a real catalog service
// would return, with stable ids so carts built against it stay valid.
package static

import (
	"context"
	"time"

	"zonos-storefront/internal/domain"
)

type Repository struct {
	products    []domain.Product
	collections []domain.Collection
	menus       map[string][]domain.MenuItem
	pages       []domain.Page
}

func New() *Repository {
	return &Repository{
		products:    Products(),
		collections: Collections(),
		menus:       Menus(),
		pages:       Pages(),
	}
}

func (r *Repository) ListProducts(_ context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *Repository) GetProductByHandle(_ context.Context, handle string) (*domain.Product, error) {
	for i := range r.products {
		if r.products[i].Handle == handle {
			p := r.products[i]
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *Repository) ListCollections(_ context.Context) ([]domain.Collection, error) {
	out := make([]domain.Collection, len(r.collections))
	copy(out, r.collections)
	return out, nil
}

func (r *Repository) GetCollectionByHandle(_ context.Context, handle string) (*domain.Collection, error) {
	for i := range r.collections {
		if r.collections[i].Handle == handle {
			c := r.collections[i]
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *Repository) GetMenu(_ context.Context, handle string) ([]domain.MenuItem, error) {
	menu, ok := r.menus[handle]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := make([]domain.MenuItem, len(menu))
	copy(out, menu)
	return out, nil
}

func (r *Repository) ListPages(_ context.Context) ([]domain.Page, error) {
	out := make([]domain.Page, len(r.pages))
	copy(out, r.pages)
	return out, nil
}

func (r *Repository) GetPageByHandle(_ context.Context, handle string) (*domain.Page, error) {
	for i := range r.pages {
		if r.pages[i].Handle == handle {
			p := r.pages[i]
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func usd(amount string) domain.Money {
	return domain.Money{Amount: amount, CurrencyCode: "USD"}
}

func fixtureTime(day int) time.Time {
	return time.Date(2025, time.March, day, 12, 0, 0, 0, time.UTC)
}

// Products returns the stub catalog. Variant ids double as cart SKUs.
func Products() []domain.Product {
	return []domain.Product{
		{
			ID:               "product-1",
			Handle:           "classic-t-shirt",
			AvailableForSale: true,
			Title:            "Classic T-Shirt",
			Description:      "Comfortable cotton t-shirt for everyday wear.",
			DescriptionHTML:  "<p>Comfortable cotton t-shirt for everyday wear.</p>",
			Options: []domain.ProductOption{
				{ID: "option-1-1", Name: "Size", Values: []string{"S", "M", "L"}},
				{ID: "option-1-2", Name: "Color", Values: []string{"Black", "White"}},
			},
			PriceRange: domain.PriceRange{MinVariantPrice: usd("29.99"), MaxVariantPrice: usd("29.99")},
			Variants: []domain.Variant{
				{
					ID: "variant-1-1", Title: "S / Black", AvailableForSale: true,
					SelectedOptions: []domain.SelectedOption{{Name: "Size", Value: "S"}, {Name: "Color", Value: "Black"}},
					Price:           usd("29.99"),
				},
				{
					ID: "variant-1-2", Title: "M / Black", AvailableForSale: true,
					SelectedOptions: []domain.SelectedOption{{Name: "Size", Value: "M"}, {Name: "Color", Value: "Black"}},
					Price:           usd("29.99"),
				},
				{
					ID: "variant-1-3", Title: "M / White", AvailableForSale: true,
					SelectedOptions: []domain.SelectedOption{{Name: "Size", Value: "M"}, {Name: "Color", Value: "White"}},
					Price:           usd("29.99"),
				},
			},
			FeaturedImage: domain.Image{URL: "https://placehold.co/600x800/png?text=T-Shirt", AltText: "Classic T-Shirt", Width: 600, Height: 800},
			Images: []domain.Image{
				{URL: "https://placehold.co/600x800/png?text=T-Shirt", AltText: "Classic T-Shirt", Width: 600, Height: 800},
				{URL: "https://placehold.co/600x800/png?text=T-Shirt-White", AltText: "Classic White T-Shirt", Width: 600, Height: 800},
			},
			SEO:       domain.SEO{Title: "Classic T-Shirt", Description: "Comfortable cotton t-shirt for everyday wear."},
			Tags:      []string{"apparel", "tops"},
			UpdatedAt: fixtureTime(1),
		},
		{
			ID:               "product-2",
			Handle:           "slim-fit-jeans",
			AvailableForSale: true,
			Title:            "Slim Fit Jeans",
			Description:      "Stretch denim jeans with a modern slim cut.",
			DescriptionHTML:  "<p>Stretch denim jeans with a modern slim cut.</p>",
			Options: []domain.ProductOption{
				{ID: "option-2-1", Name: "Waist", Values: []string{"30", "32", "34"}},
			},
			PriceRange: domain.PriceRange{MinVariantPrice: usd("79.99"), MaxVariantPrice: usd("79.99")},
			Variants: []domain.Variant{
				{
					ID: "variant-2-1", Title: "30", AvailableForSale: true,
					SelectedOptions: []domain.SelectedOption{{Name: "Waist", Value: "30"}},
					Price:           usd("79.99"),
				},
				{
					ID: "variant-2-2", Title: "32", AvailableForSale: true,
					SelectedOptions: []domain.SelectedOption{{Name: "Waist", Value: "32"}},
					Price:           usd("79.99"),
				},
			},
			FeaturedImage: domain.Image{URL: "https://placehold.co/600x800/png?text=Jeans", AltText: "Slim Fit Jeans", Width: 600, Height: 800},
			Images: []domain.Image{
				{URL: "https://placehold.co/600x800/png?text=Jeans", AltText: "Slim Fit Jeans", Width: 600, Height: 800},
			},
			SEO:       domain.SEO{Title: "Slim Fit Jeans", Description: "Stretch denim jeans with a modern slim cut."},
			Tags:      []string{"apparel", "bottoms"},
			UpdatedAt: fixtureTime(5),
		},
		{
			ID:               "product-3",
			Handle:           "canvas-tote-bag",
			AvailableForSale: true,
			Title:            "Canvas Tote Bag",
			Description:      "Heavy-duty canvas tote with interior pocket.",
			DescriptionHTML:  "<p>Heavy-duty canvas tote with interior pocket.</p>",
			Options: []domain.ProductOption{
				{ID: "option-3-1", Name: "Color", Values: []string{"Natural", "Navy"}},
			},
			PriceRange: domain.PriceRange{MinVariantPrice: usd("19.99"), MaxVariantPrice: usd("24.99")},
			Variants: []domain.Variant{
				{
					ID: "variant-3-1", Title: "Natural", AvailableForSale: true,
					SelectedOptions: []domain.SelectedOption{{Name: "Color", Value: "Natural"}},
					Price:           usd("19.99"),
				},
				{
					ID: "variant-3-2", Title: "Navy", AvailableForSale: true,
					SelectedOptions: []domain.SelectedOption{{Name: "Color", Value: "Navy"}},
					Price:           usd("24.99"),
				},
			},
			FeaturedImage: domain.Image{URL: "https://placehold.co/600x600/png?text=Tote", AltText: "Canvas Tote Bag", Width: 600, Height: 600},
			Images: []domain.Image{
				{URL: "https://placehold.co/600x600/png?text=Tote", AltText: "Canvas Tote Bag", Width: 600, Height: 600},
			},
			SEO:       domain.SEO{Title: "Canvas Tote Bag", Description: "Heavy-duty canvas tote with interior pocket."},
			Tags:      []string{"accessories", "bags"},
			UpdatedAt: fixtureTime(9),
		},
	}
}

func Collections() []domain.Collection {
	return []domain.Collection{
		{
			Handle:      "featured",
			Title:       "Featured",
			Description: "Our current picks.",
			SEO:         domain.SEO{Title: "Featured", Description: "Our current picks."},
			Path:        "/search/featured",
			ProductIDs:  []string{"product-1", "product-2", "product-3"},
			UpdatedAt:   fixtureTime(10),
		},
		{
			Handle:      "apparel",
			Title:       "Apparel",
			Description: "Shirts, jeans and more.",
			SEO:         domain.SEO{Title: "Apparel", Description: "Shirts, jeans and more."},
			Path:        "/search/apparel",
			ProductIDs:  []string{"product-1", "product-2"},
			UpdatedAt:   fixtureTime(10),
		},
		// Hidden collections back homepage sections and stay out of listings.
		{
			Handle:     "hidden-homepage-featured-items",
			Title:      "Homepage featured items",
			Path:       "/search/hidden-homepage-featured-items",
			ProductIDs: []string{"product-1", "product-2", "product-3"},
			UpdatedAt:  fixtureTime(10),
		},
		{
			Handle:     "hidden-homepage-carousel",
			Title:      "Homepage carousel",
			Path:       "/search/hidden-homepage-carousel",
			ProductIDs: []string{"product-3", "product-1"},
			UpdatedAt:  fixtureTime(10),
		},
	}
}

func Menus() map[string][]domain.MenuItem {
	return map[string][]domain.MenuItem{
		"main-menu": {
			{Title: "All", Path: "/search"},
			{Title: "Apparel", Path: "/search/apparel"},
			{Title: "Featured", Path: "/search/featured"},
		},
		"footer-menu": {
			{Title: "About", Path: "/about"},
			{Title: "Shipping & Returns", Path: "/shipping-returns"},
		},
	}
}

func Pages() []domain.Page {
	return []domain.Page{
		{
			ID:          "page-1",
			Title:       "About",
			Handle:      "about",
			Body:        "This store is a demo storefront for cross-border checkout.",
			BodySummary: "About this store.",
			SEO:         domain.SEO{Title: "About"},
			CreatedAt:   fixtureTime(1),
			UpdatedAt:   fixtureTime(1),
		},
		{
			ID:          "page-2",
			Title:       "Shipping & Returns",
			Handle:      "shipping-returns",
			Body:        "Duties and taxes are calculated at checkout by our cross-border partner.",
			BodySummary: "Shipping and returns policy.",
			SEO:         domain.SEO{Title: "Shipping & Returns"},
			CreatedAt:   fixtureTime(1),
			UpdatedAt:   fixtureTime(1),
		},
	}
}
