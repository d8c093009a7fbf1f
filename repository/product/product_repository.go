package product

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/inventory-service/model"
	"github.com/muhammadheryan/inventory-service/repository/dialect"
)

type SQL struct {
	conn *sqlx.DB

	insertQuery       string
	listQuery         string
	getQuery          string
	updatePriceQuery  string
	updateAmountQuery string
	deleteQuery       string
}

type ProductRepository interface {
	Insert(ctx context.Context, data *model.Product) error
	List(ctx context.Context) ([]model.Product, error)
	GetByEAN13(ctx context.Context, ean13 string) (*model.Product, error)
	UpdatePrice(ctx context.Context, ean13 string, price float64) (bool, error)
	UpdateAmount(ctx context.Context, ean13 string, amount int64) (bool, error)
	Delete(ctx context.Context, ean13 string) (bool, error)
}

func NewProductRepository(conn *sqlx.DB) ProductRepository {
	return &SQL{
		conn:              conn,
		insertQuery:       conn.Rebind(insertProductQuery),
		listQuery:         conn.Rebind(listProductsQuery),
		getQuery:          conn.Rebind(getProductQuery),
		updatePriceQuery:  conn.Rebind(updatePriceQuery),
		updateAmountQuery: conn.Rebind(updateAmountQuery),
		deleteQuery:       conn.Rebind(deleteProductQuery),
	}
}

const (
	insertProductQuery = `INSERT INTO products (ean13, name, price, amount) VALUES (?, ?, ?, ?)`
	listProductsQuery  = `SELECT ean13, name, price, amount FROM products`
	getProductQuery    = `SELECT ean13, name, price, amount FROM products WHERE ean13 = ?`
	updatePriceQuery   = `UPDATE products SET price = ? WHERE ean13 = ?`
	updateAmountQuery  = `UPDATE products SET amount = ? WHERE ean13 = ?`
	deleteProductQuery = `DELETE FROM products WHERE ean13 = ?`
)

// Insert returns dialect.ErrUniqueViolation when the ean13 is already taken.
func (s *SQL) Insert(ctx context.Context, data *model.Product) error {
	_, err := s.conn.ExecContext(ctx, s.insertQuery, data.EAN13, data.Name, data.Price, data.Amount)
	return dialect.Translate(err)
}

func (s *SQL) List(ctx context.Context) ([]model.Product, error) {
	rows, err := s.conn.QueryxContext(ctx, s.listQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Product, 0)
	for rows.Next() {
		var it model.Product
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}

	return items, rows.Err()
}

// GetByEAN13 returns nil without error when no product has that key.
func (s *SQL) GetByEAN13(ctx context.Context, ean13 string) (*model.Product, error) {
	var entity model.Product
	if err := s.conn.QueryRowxContext(ctx, s.getQuery, ean13).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) UpdatePrice(ctx context.Context, ean13 string, price float64) (bool, error) {
	return s.execAffecting(ctx, s.updatePriceQuery, price, ean13)
}

func (s *SQL) UpdateAmount(ctx context.Context, ean13 string, amount int64) (bool, error) {
	return s.execAffecting(ctx, s.updateAmountQuery, amount, ean13)
}

func (s *SQL) Delete(ctx context.Context, ean13 string) (bool, error) {
	return s.execAffecting(ctx, s.deleteQuery, ean13)
}

// execAffecting runs a mutation and reports whether at least one row changed.
func (s *SQL) execAffecting(ctx context.Context, query string, args ...any) (bool, error) {
	result, err := s.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
