package catalog

import (
	"context"

	"zonos-storefront/internal/domain"
)

// Repository is the catalog data source. The storefront ships with a static
// fixture implementation; deployments with a catalog mirror use the Postgres
// one in internal/repository/product.
type Repository interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProductByHandle(ctx context.Context, handle string) (*domain.Product, error)
	ListCollections(ctx context.Context) ([]domain.Collection, error)
	GetCollectionByHandle(ctx context.Context, handle string) (*domain.Collection, error)
	GetMenu(ctx context.Context, handle string) ([]domain.MenuItem, error)
	ListPages(ctx context.Context) ([]domain.Page, error)
	GetPageByHandle(ctx context.Context, handle string) (*domain.Page, error)
}
