// Package product is the Postgres-backed catalog repository, used when a
// catalog mirror database is configured. Catalog documents are stored as
// JSONB: the storefront only ever reads them whole.
package product

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"zonos-storefront/internal/domain"
)

type PostgresRepository struct {
	pool   *pgxpool.Pool
	logger logrus.FieldLogger
}

func NewPostgres(pool *pgxpool.Pool, logger logrus.FieldLogger) *PostgresRepository {
	return &PostgresRepository{pool: pool, logger: logger}
}

func (r *PostgresRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	const q = `SELECT document FROM products ORDER BY updated_at, handle`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, errors.Wrap(err, "list products")
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, errors.Wrap(err, "scan product")
		}
		var p domain.Product
		if err := json.Unmarshal(doc, &p); err != nil {
			return nil, errors.Wrap(err, "decode product document")
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "list products rows")
	}
	r.logger.WithField("count", len(result)).Debug("catalog: listed products")
	return result, nil
}

func (r *PostgresRepository) GetProductByHandle(ctx context.Context, handle string) (*domain.Product, error) {
	const q = `SELECT document FROM products WHERE handle = $1`
	var doc []byte
	if err := r.pool.QueryRow(ctx, q, handle).Scan(&doc); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, errors.Wrapf(err, "get product %s", handle)
	}
	var p domain.Product
	if err := json.Unmarshal(doc, &p); err != nil {
		return nil, errors.Wrapf(err, "decode product %s", handle)
	}
	return &p, nil
}

func (r *PostgresRepository) ListCollections(ctx context.Context) ([]domain.Collection, error) {
	const q = `SELECT document, product_ids FROM collections ORDER BY handle`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, errors.Wrap(err, "list collections")
	}
	defer rows.Close()

	var result []domain.Collection
	for rows.Next() {
		c, err := scanCollection(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "list collections rows")
	}
	return result, nil
}

func (r *PostgresRepository) GetCollectionByHandle(ctx context.Context, handle string) (*domain.Collection, error) {
	const q = `SELECT document, product_ids FROM collections WHERE handle = $1`
	c, err := scanCollection(r.pool.QueryRow(ctx, q, handle))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, errors.Wrapf(err, "get collection %s", handle)
	}
	return c, nil
}

func (r *PostgresRepository) GetMenu(ctx context.Context, handle string) ([]domain.MenuItem, error) {
	const q = `SELECT items FROM menus WHERE handle = $1`
	var doc []byte
	if err := r.pool.QueryRow(ctx, q, handle).Scan(&doc); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, errors.Wrapf(err, "get menu %s", handle)
	}
	var items []domain.MenuItem
	if err := json.Unmarshal(doc, &items); err != nil {
		return nil, errors.Wrapf(err, "decode menu %s", handle)
	}
	return items, nil
}

func (r *PostgresRepository) ListPages(ctx context.Context) ([]domain.Page, error) {
	const q = `SELECT document FROM pages ORDER BY handle`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, errors.Wrap(err, "list pages")
	}
	defer rows.Close()

	var result []domain.Page
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, errors.Wrap(err, "scan page")
		}
		var p domain.Page
		if err := json.Unmarshal(doc, &p); err != nil {
			return nil, errors.Wrap(err, "decode page document")
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "list pages rows")
	}
	return result, nil
}

func (r *PostgresRepository) GetPageByHandle(ctx context.Context, handle string) (*domain.Page, error) {
	const q = `SELECT document FROM pages WHERE handle = $1`
	var doc []byte
	if err := r.pool.QueryRow(ctx, q, handle).Scan(&doc); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, errors.Wrapf(err, "get page %s", handle)
	}
	var p domain.Page
	if err := json.Unmarshal(doc, &p); err != nil {
		return nil, errors.Wrapf(err, "decode page %s", handle)
	}
	return &p, nil
}

func scanCollection(row pgx.Row) (*domain.Collection, error) {
	var doc []byte
	var productIDs []string
	if err := row.Scan(&doc, &productIDs); err != nil {
		return nil, err
	}
	var c domain.Collection
	if err := json.Unmarshal(doc, &c); err != nil {
		return nil, errors.Wrap(err, "decode collection document")
	}
	c.ProductIDs = productIDs
	return &c, nil
}
