package catalog

import (
	"context"
	"errors"
	"testing"

	"zonos-storefront/internal/catalog/static"
	"zonos-storefront/internal/domain"
)

func testService() *Service {
	return New(static.New())
}

func TestProductsSearchMatchesTitleAndTags(t *testing.T) {
	svc := testService()
	got, err := svc.Products(context.Background(), "jeans", "", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Handle != "slim-fit-jeans" {
		t.Fatalf("unexpected search result %+v", got)
	}

	got, err = svc.Products(context.Background(), "apparel", "", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected tag search to match 2 products, got %d", len(got))
	}
}

func TestProductsSortByPrice(t *testing.T) {
	svc := testService()
	got, err := svc.Products(context.Background(), "", SortPrice, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 products, got %d", len(got))
	}
	if got[0].Handle != "canvas-tote-bag" || got[2].Handle != "slim-fit-jeans" {
		t.Fatalf("unexpected price order: %s, %s, %s", got[0].Handle, got[1].Handle, got[2].Handle)
	}

	reversed, err := svc.Products(context.Background(), "", SortPrice, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reversed[0].Handle != "slim-fit-jeans" {
		t.Fatalf("expected reverse order, got %s first", reversed[0].Handle)
	}
}

func TestProductBySKU(t *testing.T) {
	svc := testService()
	product, variant, err := svc.ProductBySKU(context.Background(), "variant-1-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if product.Handle != "classic-t-shirt" || variant.Title != "S / Black" {
		t.Fatalf("unexpected resolution %s / %s", product.Handle, variant.Title)
	}

	_, _, err = svc.ProductBySKU(context.Background(), "variant-404")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestCollectionsExcludeHidden(t *testing.T) {
	svc := testService()
	got, err := svc.Collections(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, c := range got {
		if c.Handle == "hidden-homepage-carousel" || c.Handle == "hidden-homepage-featured-items" {
			t.Fatalf("hidden collection leaked: %s", c.Handle)
		}
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 visible collections, got %d", len(got))
	}
}

func TestCollectionProductsPreserveCollectionOrder(t *testing.T) {
	svc := testService()
	got, err := svc.CollectionProducts(context.Background(), "hidden-homepage-carousel", "", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "product-3" || got[1].ID != "product-1" {
		t.Fatalf("unexpected order %+v", got)
	}
}

func TestCollectionProductsUnknownCollection(t *testing.T) {
	svc := testService()
	_, err := svc.CollectionProducts(context.Background(), "nope", "", false)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestRecommendationsShareACollection(t *testing.T) {
	svc := testService()
	got, err := svc.Recommendations(context.Background(), "slim-fit-jeans")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) == 0 {
		t.Fatalf("expected recommendations")
	}
	for _, p := range got {
		if p.Handle == "slim-fit-jeans" {
			t.Fatalf("product recommended itself")
		}
	}
}

func TestMenuLookup(t *testing.T) {
	svc := testService()
	menu, err := svc.Menu(context.Background(), "main-menu")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(menu) == 0 {
		t.Fatalf("expected menu items")
	}

	_, err = svc.Menu(context.Background(), "no-such-menu")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestPageLookup(t *testing.T) {
	svc := testService()
	page, err := svc.Page(context.Background(), "about")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Title != "About" {
		t.Fatalf("unexpected page %+v", page)
	}
}
