package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/invorya/inventario-api/internal/application/dto"
	"github.com/invorya/inventario-api/internal/application/usecase"
)

// InventoryHandler maneja el listado de inventario y el reporte PDF.
type InventoryHandler struct {
	uc *usecase.InventoryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *usecase.InventoryUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// List godoc
// @Summary      Listar inventario (búsqueda, filtro, orden, paginación y estadísticas)
// @Tags         inventory
// @Produce      json
// @Param        search     query  string  false  "Subcadena sobre name/description/category/supplier"
// @Param        category   query  string  false  "Igualdad exacta de categoría"
// @Param        sort       query  string  false  "name|category|stock_quantity|unit_price|created_at"  default(name)
// @Param        direction  query  string  false  "asc|desc"  default(asc)
// @Param        page       query  int     false  "Página (mínimo 1)"  default(1)
// @Success      200  {object}  dto.InventoryResponse
// @Router       /api/products [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	// La entrada malformada nunca es un error aquí: QueryInt degrada los
	// no numéricos al default y el caso de uso normaliza el resto.
	in := dto.ListProductsRequest{
		Search:    c.Query("search"),
		Category:  c.Query("category"),
		Sort:      c.Query("sort"),
		Direction: c.Query("direction"),
		Page:      c.QueryInt("page", 1),
	}
	out, err := h.uc.List(c.Context(), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Report godoc
// @Summary      Descargar reporte de inventario en PDF
// @Tags         inventory
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventory/report [get]
func (h *InventoryHandler) Report(c *fiber.Ctx) error {
	pdf, err := h.uc.Report(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="inventario.pdf"`)
	return c.Send(pdf)
}
