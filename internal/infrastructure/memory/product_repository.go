// Package memory implementa ProductRepository sobre un mapa en memoria.
// Replica la semántica del adaptador PostgreSQL (búsqueda por subcadena
// case-insensitive, filtro exacto por categoría, orden por lista blanca,
// paginación fija) y sirve como fake para los tests y para desarrollo sin
// base de datos.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/invorya/inventario-api/internal/domain"
	"github.com/invorya/inventario-api/internal/domain/entity"
	"github.com/invorya/inventario-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo repositorio de productos en memoria, seguro para uso
// concurrente. Los IDs se asignan desde un contador interno.
type ProductRepo struct {
	mu     sync.RWMutex
	items  map[int64]*entity.Product
	nextID int64
}

// NewProductRepository construye el repositorio vacío.
func NewProductRepository() *ProductRepo {
	return &ProductRepo{items: make(map[int64]*entity.Product), nextID: 1}
}

// Create asigna ID y guarda una copia del producto.
func (r *ProductRepo) Create(_ context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	product.ID = r.nextID
	r.nextID++
	cp := *product
	r.items[cp.ID] = &cp
	return nil
}

// GetByID devuelve una copia del producto o ErrNotFound.
func (r *ProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

// Update reemplaza el registro existente.
func (r *ProductRepo) Update(_ context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[product.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *product
	r.items[cp.ID] = &cp
	return nil
}

// Delete elimina el registro; eliminar un ID inexistente es ErrNotFound.
func (r *ProductRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

// List aplica búsqueda, filtro, orden y paginación sobre el contenido
// actual. Una página más allá del final devuelve datos vacíos con
// metadatos correctos, nunca un error.
func (r *ProductRepo) List(_ context.Context, q repository.ProductQuery) (*repository.ProductPage, error) {
	r.mu.RLock()
	matched := make([]*entity.Product, 0, len(r.items))
	for _, p := range r.items {
		if !matchesSearch(p, q.Search) {
			continue
		}
		if q.Category != "" && p.Category != q.Category {
			continue
		}
		cp := *p
		matched = append(matched, &cp)
	}
	r.mu.RUnlock()

	sortProducts(matched, q.Sort, q.Direction)

	total := len(matched)
	start := q.Offset()
	if start > total {
		start = total
	}
	end := start + repository.PerPage
	if end > total {
		end = total
	}

	return &repository.ProductPage{
		Items:       matched[start:end],
		CurrentPage: q.Page,
		LastPage:    repository.LastPage(total),
		PerPage:     repository.PerPage,
		Total:       total,
	}, nil
}

// Stats agregados globales sobre todos los registros, sin filtros.
func (r *ProductRepo) Stats(_ context.Context) (*repository.InventoryStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stats := &repository.InventoryStats{TotalValue: decimal.Zero}
	for _, p := range r.items {
		stats.TotalProducts++
		stats.TotalValue = stats.TotalValue.Add(p.Value())
		if p.IsLowStock() {
			stats.LowStockCount++
		}
		if p.IsOutOfStock() {
			stats.OutOfStockCount++
		}
	}
	stats.TotalValue = stats.TotalValue.Round(2)
	return stats, nil
}

// Categories conjunto de categorías distintas, ordenado lexicográficamente.
func (r *ProductRepo) Categories(_ context.Context) ([]string, error) {
	r.mu.RLock()
	seen := make(map[string]struct{})
	for _, p := range r.items {
		seen[p.Category] = struct{}{}
	}
	r.mu.RUnlock()

	categories := make([]string, 0, len(seen))
	for c := range seen {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	return categories, nil
}

// matchesSearch subcadena case-insensitive sobre name, description,
// category y supplier (OR).
func matchesSearch(p *entity.Product, term string) bool {
	if term == "" {
		return true
	}
	needle := strings.ToLower(term)
	for _, field := range []string{p.Name, p.Description, p.Category, p.Supplier} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

func sortProducts(items []*entity.Product, field repository.SortField, dir repository.SortDirection) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		c := compareField(a, b, field)
		if c == 0 {
			// Desempate por ID ascendente, igual que el adaptador SQL.
			return a.ID < b.ID
		}
		if dir == repository.SortDesc {
			return c > 0
		}
		return c < 0
	})
}

func compareField(a, b *entity.Product, field repository.SortField) int {
	switch field {
	case repository.SortByCategory:
		return strings.Compare(a.Category, b.Category)
	case repository.SortByStockQuantity:
		return a.StockQuantity - b.StockQuantity
	case repository.SortByUnitPrice:
		return a.UnitPrice.Cmp(b.UnitPrice)
	case repository.SortByCreatedAt:
		return a.CreatedAt.Compare(b.CreatedAt)
	default: // SortByName
		return strings.Compare(a.Name, b.Name)
	}
}
