package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createProduct = `
INSERT INTO products (name, description, price)
VALUES ($1, $2, $3)
RETURNING id, name, description, price, created_at
`

type CreateProductParams struct {
	Name        string         `json:"name"`
	Description pgtype.Text    `json:"description"`
	Price       pgtype.Numeric `json:"price"`
}

func (q *Queries) CreateProduct(ctx context.Context, arg CreateProductParams) (Product, error) {
	row := q.db.QueryRow(ctx, createProduct, arg.Name, arg.Description, arg.Price)
	var p Product
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.CreatedAt)
	return p, err
}

const listProducts = `
SELECT id, name, description, price, created_at FROM products
ORDER BY created_at
`

func (q *Queries) ListProducts(ctx context.Context) ([]Product, error) {
	rows, err := q.db.Query(ctx, listProducts)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

const getProductsByIDs = `
SELECT id, name, description, price, created_at FROM products
WHERE id = ANY($1::uuid[])
`

// GetProductsByIDs returns the products that exist for the given ids. Ids
// without a matching product are simply absent from the result; callers that
// need completeness must compare against what they asked for.
func (q *Queries) GetProductsByIDs(ctx context.Context, ids []pgtype.UUID) ([]Product, error) {
	rows, err := q.db.Query(ctx, getProductsByIDs, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}
