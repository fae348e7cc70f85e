package repository

// PerPage tamaño de página fijo del listado.
const PerPage = 10

// SortField campo de ordenamiento permitido. El valor cero no existe:
// ParseSortField siempre devuelve un miembro de la lista blanca.
type SortField string

// Lista blanca de campos ordenables. Cualquier otro valor que llegue por
// query string se descarta y se usa SortByName; los valores nunca se
// interpolan sin pasar por ParseSortField (defensa contra inyección).
const (
	SortByName          SortField = "name"
	SortByCategory      SortField = "category"
	SortByStockQuantity SortField = "stock_quantity"
	SortByUnitPrice     SortField = "unit_price"
	SortByCreatedAt     SortField = "created_at"
)

// SortDirection dirección de ordenamiento.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// ProductQuery especificación inmutable de una consulta de listado:
// filtros opcionales + orden + página, ya normalizados. Se construye con
// NewProductQuery a partir de los parámetros crudos de la petición.
type ProductQuery struct {
	Search    string        // subcadena, case-insensitive, sobre name/description/category/supplier
	Category  string        // igualdad exacta, case-sensitive; se compone con Search vía AND
	Sort      SortField     // siempre de la lista blanca
	Direction SortDirection // asc | desc
	Page      int           // ≥ 1
}

// NewProductQuery normaliza los parámetros crudos de la petición en una
// especificación válida. Es una función total: nunca falla, los valores no
// reconocidos degradan al default.
func NewProductQuery(search, category, sort, direction string, page int) ProductQuery {
	return ProductQuery{
		Search:    search,
		Category:  category,
		Sort:      ParseSortField(sort),
		Direction: ParseSortDirection(direction),
		Page:      clampPage(page),
	}
}

// ParseSortField mapea una cadena arbitraria a un campo de la lista blanca.
// Valores no reconocidos (incluido vacío) caen en SortByName.
func ParseSortField(s string) SortField {
	switch SortField(s) {
	case SortByName, SortByCategory, SortByStockQuantity, SortByUnitPrice, SortByCreatedAt:
		return SortField(s)
	default:
		return SortByName
	}
}

// ParseSortDirection mapea una cadena arbitraria a asc/desc, default asc.
func ParseSortDirection(s string) SortDirection {
	if SortDirection(s) == SortDesc {
		return SortDesc
	}
	return SortAsc
}

func clampPage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// LastPage calcula la última página para un total dado (mínimo 1, para que
// un listado vacío siga reportando current_page=1/last_page=1).
func LastPage(total int) int {
	if total <= 0 {
		return 1
	}
	return (total + PerPage - 1) / PerPage
}

// Offset desplazamiento en filas de la página pedida.
func (q ProductQuery) Offset() int {
	return (q.Page - 1) * PerPage
}
