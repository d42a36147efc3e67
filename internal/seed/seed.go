package seed

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"zonos-storefront/internal/catalog/static"
	"zonos-storefront/internal/domain"
)

// Apply inserts the demo catalog for manual testing. It is idempotent via ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	repo := static.New()

	products, err := repo.ListProducts(ctx)
	if err != nil {
		return fmt.Errorf("list products: %w", err)
	}
	for _, p := range products {
		if err := upsertDocument(ctx, pool, "products", p.Handle, p); err != nil {
			return fmt.Errorf("upsert product %s: %w", p.Handle, err)
		}
	}

	collections, err := repo.ListCollections(ctx)
	if err != nil {
		return fmt.Errorf("list collections: %w", err)
	}
	for _, c := range collections {
		if err := upsertCollection(ctx, pool, c); err != nil {
			return fmt.Errorf("upsert collection %s: %w", c.Handle, err)
		}
	}

	for _, handle := range []string{"main-menu", "footer-menu"} {
		menu, err := repo.GetMenu(ctx, handle)
		if err != nil {
			return fmt.Errorf("get menu %s: %w", handle, err)
		}
		if err := upsertMenu(ctx, pool, handle, menu); err != nil {
			return fmt.Errorf("upsert menu %s: %w", handle, err)
		}
	}

	pages, err := repo.ListPages(ctx)
	if err != nil {
		return fmt.Errorf("list pages: %w", err)
	}
	for _, p := range pages {
		if err := upsertDocument(ctx, pool, "pages", p.Handle, p); err != nil {
			return fmt.Errorf("upsert page %s: %w", p.Handle, err)
		}
	}

	return nil
}

func upsertDocument(ctx context.Context, pool *pgxpool.Pool, table, handle string, doc any) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	q := fmt.Sprintf(`
INSERT INTO %s (handle, document, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (handle) DO UPDATE SET document = EXCLUDED.document, updated_at = now()
`, table)
	_, err = pool.Exec(ctx, q, handle, payload)
	return err
}

func upsertCollection(ctx context.Context, pool *pgxpool.Pool, c domain.Collection) error {
	payload, err := json.Marshal(c)
	if err != nil {
		return err
	}
	const q = `
INSERT INTO collections (handle, document, product_ids, updated_at)
VALUES ($1, $2, $3, now())
ON CONFLICT (handle) DO UPDATE SET
    document = EXCLUDED.document,
    product_ids = EXCLUDED.product_ids,
    updated_at = now()
`
	_, err = pool.Exec(ctx, q, c.Handle, payload, c.ProductIDs)
	return err
}

func upsertMenu(ctx context.Context, pool *pgxpool.Pool, handle string, items []domain.MenuItem) error {
	payload, err := json.Marshal(items)
	if err != nil {
		return err
	}
	const q = `
INSERT INTO menus (handle, items, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (handle) DO UPDATE SET items = EXCLUDED.items, updated_at = now()
`
	_, err = pool.Exec(ctx, q, handle, payload)
	return err
}
