package usecase

import (
	"context"

	"github.com/invorya/inventario-api/internal/application/dto"
	"github.com/invorya/inventario-api/internal/domain/entity"
	"github.com/invorya/inventario-api/internal/domain/repository"
)

// ReportGenerator puerto de generación del reporte de inventario (PDF).
type ReportGenerator interface {
	InventoryReport(ctx context.Context, stats *repository.InventoryStats, products []*entity.Product) ([]byte, error)
}

// InventoryUseCase orquesta el listado: una página filtrada/ordenada de
// productos, las categorías disponibles y las estadísticas globales se
// combinan en un único payload. Solo lectura.
type InventoryUseCase struct {
	repo   repository.ProductRepository
	report ReportGenerator
}

// NewInventoryUseCase construye el caso de uso. report puede ser nil si el
// reporte PDF no está habilitado.
func NewInventoryUseCase(repo repository.ProductRepository, report ReportGenerator) *InventoryUseCase {
	return &InventoryUseCase{repo: repo, report: report}
}

// List resuelve el listado completo. Los parámetros crudos se normalizan
// primero (lista blanca de sort, dirección, página mínima); los filtros del
// payload reflejan los valores efectivos, de modo que repetir la misma
// petición devuelve la misma página. Nunca falla por entrada malformada.
func (uc *InventoryUseCase) List(ctx context.Context, in dto.ListProductsRequest) (*dto.InventoryResponse, error) {
	q := repository.NewProductQuery(in.Search, in.Category, in.Sort, in.Direction, in.Page)

	page, err := uc.repo.List(ctx, q)
	if err != nil {
		return nil, err
	}
	stats, err := uc.repo.Stats(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := uc.repo.Categories(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]dto.ProductResponse, 0, len(page.Items))
	for _, p := range page.Items {
		items = append(items, *toProductResponse(p))
	}
	return &dto.InventoryResponse{
		Products: dto.ProductPageResponse{
			Data: items,
			Meta: dto.PageMeta{
				CurrentPage: page.CurrentPage,
				LastPage:    page.LastPage,
				PerPage:     page.PerPage,
				Total:       page.Total,
			},
		},
		Categories: categories,
		Statistics: dto.StatisticsResponse{
			TotalProducts:   stats.TotalProducts,
			TotalValue:      stats.TotalValue,
			LowStockCount:   stats.LowStockCount,
			OutOfStockCount: stats.OutOfStockCount,
		},
		Filters: dto.FiltersResponse{
			Search:    q.Search,
			Category:  q.Category,
			Sort:      string(q.Sort),
			Direction: string(q.Direction),
		},
	}, nil
}

// Report genera el reporte PDF del inventario completo (estadísticas +
// todos los productos ordenados por nombre).
func (uc *InventoryUseCase) Report(ctx context.Context) ([]byte, error) {
	stats, err := uc.repo.Stats(ctx)
	if err != nil {
		return nil, err
	}
	var products []*entity.Product
	q := repository.NewProductQuery("", "", "", "", 1)
	for {
		page, err := uc.repo.List(ctx, q)
		if err != nil {
			return nil, err
		}
		products = append(products, page.Items...)
		if q.Page >= page.LastPage {
			break
		}
		q.Page++
	}
	return uc.report.InventoryReport(ctx, stats, products)
}
