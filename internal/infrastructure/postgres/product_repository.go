package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/invorya/inventario-api/internal/domain"
	"github.com/invorya/inventario-api/internal/domain/entity"
	"github.com/invorya/inventario-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (usable con pool o tx). Description y Supplier vacíos se guardan como
// NULL y vuelven como cadena vacía.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, name, COALESCE(description, ''), category, stock_quantity, unit_price, COALESCE(supplier, ''), created_at, updated_at`

// Create persiste un producto nuevo. El ID lo asigna la secuencia de la tabla.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (name, description, category, stock_quantity, unit_price, supplier, created_at, updated_at)
		VALUES ($1, NULLIF($2, ''), $3, $4, $5, NULLIF($6, ''), $7, $8)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		product.Name, product.Description, product.Category,
		product.StockQuantity, product.UnitPrice, product.Supplier,
		product.CreatedAt, product.UpdatedAt,
	).Scan(&product.ID)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.Category, &p.StockQuantity,
		&p.UnitPrice, &p.Supplier, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// Update reemplaza los campos mutables del producto. created_at no se toca.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, description = NULLIF($3, ''), category = $4,
		    stock_quantity = $5, unit_price = $6, supplier = NULLIF($7, ''), updated_at = $8
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.Description, product.Category,
		product.StockQuantity, product.UnitPrice, product.Supplier, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un producto por ID (borrado duro). ID inexistente es ErrNotFound.
func (r *ProductRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List resuelve la consulta de listado. La cláusula WHERE se arma con
// placeholders $n; el ORDER BY interpola q.Sort y q.Direction, que ya
// vienen acotados a la lista blanca por NewProductQuery (nunca llega aquí
// un valor sin sanear).
func (r *ProductRepo) List(ctx context.Context, q repository.ProductQuery) (*repository.ProductPage, error) {
	where := ""
	var args []any
	argID := 1

	if q.Search != "" {
		where += fmt.Sprintf(
			" AND (name ILIKE $%d OR description ILIKE $%d OR category ILIKE $%d OR supplier ILIKE $%d)",
			argID, argID, argID, argID)
		args = append(args, "%"+q.Search+"%")
		argID++
	}
	if q.Category != "" {
		where += fmt.Sprintf(" AND category = $%d", argID)
		args = append(args, q.Category)
		argID++
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM products WHERE TRUE` + where
	if err := r.q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count products: %w", err)
	}

	baseQuery := `SELECT ` + productColumns + ` FROM products WHERE TRUE` + where
	baseQuery += fmt.Sprintf(" ORDER BY %s %s, id ASC", q.Sort, q.Direction)
	baseQuery += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argID, argID+1)
	args = append(args, repository.PerPage, q.Offset())

	rows, err := r.q.Query(ctx, baseQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var items []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Category, &p.StockQuantity,
			&p.UnitPrice, &p.Supplier, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		items = append(items, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	return &repository.ProductPage{
		Items:       items,
		CurrentPage: q.Page,
		LastPage:    repository.LastPage(total),
		PerPage:     repository.PerPage,
		Total:       total,
	}, nil
}

// Stats calcula los agregados globales sobre toda la tabla, sin filtros.
// Usa COALESCE para devolver cero sobre un inventario vacío.
func (r *ProductRepo) Stats(ctx context.Context) (*repository.InventoryStats, error) {
	const query = `
	SELECT
	    COUNT(*)                                                            AS total_products,
	    COALESCE(ROUND(SUM(stock_quantity * unit_price), 2), 0)             AS total_value,
	    COUNT(*) FILTER (WHERE stock_quantity <= $1)                        AS low_stock_count,
	    COUNT(*) FILTER (WHERE stock_quantity = 0)                          AS out_of_stock_count
	FROM products`
	var s repository.InventoryStats
	err := r.q.QueryRow(ctx, query, entity.LowStockThreshold).Scan(
		&s.TotalProducts, &s.TotalValue, &s.LowStockCount, &s.OutOfStockCount,
	)
	if err != nil {
		return nil, fmt.Errorf("inventory stats: %w", err)
	}
	return &s, nil
}

// Categories devuelve las categorías distintas, ordenadas lexicográficamente.
func (r *ProductRepo) Categories(ctx context.Context) ([]string, error) {
	rows, err := r.q.Query(ctx, `SELECT DISTINCT category FROM products ORDER BY category`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}
