package dto

import "github.com/shopspring/decimal"

// ListProductsRequest parámetros crudos del listado, tal como llegan por
// query string. Se normalizan en el caso de uso antes de tocar el
// repositorio (lista blanca de sort, página mínima 1).
type ListProductsRequest struct {
	Search    string `query:"search"`
	Category  string `query:"category"`
	Sort      string `query:"sort"`
	Direction string `query:"direction"`
	Page      int    `query:"page"`
}

// StatisticsResponse agregados globales del inventario. Independientes de
// los filtros activos del listado.
type StatisticsResponse struct {
	TotalProducts   int             `json:"totalProducts"`
	TotalValue      decimal.Decimal `json:"totalValue"`
	LowStockCount   int             `json:"lowStockCount"`
	OutOfStockCount int             `json:"outOfStockCount"`
}

// FiltersResponse eco de los filtros efectivos (ya con defaults aplicados),
// para que el cliente pueda repetir la misma consulta de forma idempotente.
type FiltersResponse struct {
	Search    string `json:"search"`
	Category  string `json:"category"`
	Sort      string `json:"sort"`
	Direction string `json:"direction"`
}

// InventoryResponse payload completo del listado: página filtrada +
// categorías para el selector + estadísticas globales + filtros efectivos.
type InventoryResponse struct {
	Products   ProductPageResponse `json:"products"`
	Categories []string            `json:"categories"`
	Statistics StatisticsResponse  `json:"statistics"`
	Filters    FiltersResponse     `json:"filters"`
}
