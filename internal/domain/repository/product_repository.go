package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/invorya/inventario-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// List es de solo lectura y recibe la especificación de consulta ya
// normalizada (ver ProductQuery); Stats y Categories operan siempre sobre
// la tabla completa, sin importar filtros activos.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, q ProductQuery) (*ProductPage, error)
	Stats(ctx context.Context) (*InventoryStats, error)
	Categories(ctx context.Context) ([]string, error)
}

// ProductPage página de resultados con sus metadatos.
type ProductPage struct {
	Items       []*entity.Product
	CurrentPage int
	LastPage    int
	PerPage     int
	Total       int
}

// InventoryStats agregados globales del inventario, calculados en el
// momento de la llamada (sin caché).
type InventoryStats struct {
	TotalProducts   int
	TotalValue      decimal.Decimal // Σ stock_quantity × unit_price, 2 decimales
	LowStockCount   int
	OutOfStockCount int
}
