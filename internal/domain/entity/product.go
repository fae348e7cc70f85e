package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// LowStockThreshold umbral inclusivo de stock bajo (0..10).
const LowStockThreshold = 10

// Product representa un registro de inventario. Es la única entidad del
// dominio: Category y Supplier son texto libre, no referencias.
// Description y Supplier son opcionales (cadena vacía = ausente).
type Product struct {
	ID            int64
	Name          string
	Description   string
	Category      string
	StockQuantity int
	UnitPrice     decimal.Decimal // precio unitario, 2 decimales
	Supplier      string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Value devuelve el valor del registro (cantidad × precio unitario).
func (p *Product) Value() decimal.Decimal {
	return decimal.NewFromInt(int64(p.StockQuantity)).Mul(p.UnitPrice)
}

// IsLowStock indica si el stock está en el umbral bajo. Un producto
// agotado también cuenta como stock bajo.
func (p *Product) IsLowStock() bool {
	return p.StockQuantity <= LowStockThreshold
}

// IsOutOfStock indica si el producto está agotado.
func (p *Product) IsOutOfStock() bool {
	return p.StockQuantity == 0
}
