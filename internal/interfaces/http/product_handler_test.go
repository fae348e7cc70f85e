package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorya/inventario-api/internal/application/dto"
	"github.com/invorya/inventario-api/internal/application/usecase"
	"github.com/invorya/inventario-api/internal/infrastructure/memory"
	apihttp "github.com/invorya/inventario-api/internal/interfaces/http"
)

func newTestApp() *fiber.App {
	repo := memory.NewProductRepository()
	app := fiber.New()
	apihttp.Router(app, apihttp.RouterDeps{
		ProductUC:   usecase.NewProductUseCase(repo),
		InventoryUC: usecase.NewInventoryUseCase(repo, nil),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *nethttp.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *nethttp.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func validBody() map[string]any {
	return map[string]any{
		"name":           "iPhone 15",
		"description":    "Smartphone",
		"category":       "Electronics",
		"stock_quantity": 10,
		"unit_price":     "999.99",
		"supplier":       "Tech Solutions Inc.",
	}
}

func TestCreate_Retorna201ConProducto(t *testing.T) {
	app := newTestApp()

	resp := doJSON(t, app, fiber.MethodPost, "/api/products", validBody())
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	out := decode[dto.ProductResponse](t, resp)
	assert.Positive(t, out.ID)
	assert.Equal(t, "iPhone 15", out.Name)
	assert.Equal(t, "999.99", out.UnitPrice.StringFixed(2))
}

func TestCreate_Retorna422ConErroresPorCampo(t *testing.T) {
	app := newTestApp()

	resp := doJSON(t, app, fiber.MethodPost, "/api/products", map[string]any{
		"name":           "",
		"category":       "",
		"stock_quantity": -1,
		"unit_price":     "-10",
	})
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	out := decode[dto.ValidationErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION", out.Code)
	for _, field := range []string{"name", "category", "stock_quantity", "unit_price"} {
		assert.Contains(t, out.Errors, field)
	}

	// Nada quedó persistido.
	list := decode[dto.InventoryResponse](t, doJSON(t, app, fiber.MethodGet, "/api/products", nil))
	assert.Zero(t, list.Statistics.TotalProducts)
}

func TestShow_NoExistenteYMalformado(t *testing.T) {
	app := newTestApp()

	resp := doJSON(t, app, fiber.MethodGet, "/api/products/999", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	// Un id no numérico es un recurso inexistente, no un error de validación.
	resp = doJSON(t, app, fiber.MethodGet, "/api/products/abc", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestUpdate_Reemplaza(t *testing.T) {
	app := newTestApp()

	created := decode[dto.ProductResponse](t, doJSON(t, app, fiber.MethodPost, "/api/products", validBody()))

	body := validBody()
	body["name"] = "iPhone 15 Pro"
	body["stock_quantity"] = 3
	resp := doJSON(t, app, fiber.MethodPut, fmt.Sprintf("/api/products/%d", created.ID), body)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	out := decode[dto.ProductResponse](t, resp)
	assert.Equal(t, "iPhone 15 Pro", out.Name)
	assert.Equal(t, 3, out.StockQuantity)
}

func TestDelete_204YLuego404(t *testing.T) {
	app := newTestApp()

	created := decode[dto.ProductResponse](t, doJSON(t, app, fiber.MethodPost, "/api/products", validBody()))
	path := fmt.Sprintf("/api/products/%d", created.ID)

	resp := doJSON(t, app, fiber.MethodDelete, path, nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodDelete, path, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodGet, path, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

// El listado nunca falla por entrada malformada: sort/direction/page
// inválidos degradan a sus defaults y el payload los refleja.
func TestList_EntradaMalformadaDegrada(t *testing.T) {
	app := newTestApp()
	doJSON(t, app, fiber.MethodPost, "/api/products", validBody())

	resp := doJSON(t, app, fiber.MethodGet,
		"/api/products?sort=evil;--&direction=up&page=banana", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	out := decode[dto.InventoryResponse](t, resp)
	assert.Equal(t, "name", out.Filters.Sort)
	assert.Equal(t, "asc", out.Filters.Direction)
	assert.Equal(t, 1, out.Products.Meta.CurrentPage)
	assert.Len(t, out.Products.Data, 1)
}

// Búsqueda multi-campo por query string, con eco del término usado.
func TestList_Busqueda(t *testing.T) {
	app := newTestApp()
	doJSON(t, app, fiber.MethodPost, "/api/products", validBody())

	other := validBody()
	other["name"] = "Funda universal"
	other["description"] = "iPhone accessories"
	other["category"] = "Accessories"
	doJSON(t, app, fiber.MethodPost, "/api/products", other)

	third := validBody()
	third["name"] = "Samsung Galaxy"
	third["description"] = "Smartphone"
	doJSON(t, app, fiber.MethodPost, "/api/products", third)

	resp := doJSON(t, app, fiber.MethodGet, "/api/products?search=iPhone", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	out := decode[dto.InventoryResponse](t, resp)
	assert.Equal(t, "iPhone", out.Filters.Search)
	assert.Equal(t, 2, out.Products.Meta.Total)
	assert.Equal(t, 3, out.Statistics.TotalProducts, "las estadísticas ignoran la búsqueda")
}
