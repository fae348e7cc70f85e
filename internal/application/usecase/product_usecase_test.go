package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorya/inventario-api/internal/application/dto"
	"github.com/invorya/inventario-api/internal/application/usecase"
	"github.com/invorya/inventario-api/internal/domain"
	"github.com/invorya/inventario-api/internal/infrastructure/memory"
)

func validRequest() dto.ProductRequest {
	return dto.ProductRequest{
		Name:          "Teclado mecánico",
		Description:   "Switches rojos",
		Category:      "Electronics",
		StockQuantity: 12,
		UnitPrice:     decimal.RequireFromString("89.90"),
		Supplier:      "Tech Solutions Inc.",
	}
}

// Round-trip: crear y luego consultar por el ID asignado devuelve
// exactamente los mismos campos más id/timestamps generados.
func TestProductUseCase_Create_RoundTrip(t *testing.T) {
	repo := memory.NewProductRepository()
	uc := usecase.NewProductUseCase(repo)

	created, err := uc.Create(context.Background(), validRequest())
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Positive(t, created.ID, "el sistema debe asignar un ID")
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	fetched, err := uc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, "Teclado mecánico", fetched.Name)
	assert.Equal(t, "Switches rojos", fetched.Description)
	assert.Equal(t, "Electronics", fetched.Category)
	assert.Equal(t, 12, fetched.StockQuantity)
	assert.True(t, fetched.UnitPrice.Equal(decimal.RequireFromString("89.90")))
	assert.Equal(t, "Tech Solutions Inc.", fetched.Supplier)
}

// Todos los campos inválidos a la vez: los cuatro aparecen en el detalle y
// no se persiste nada (todo-o-nada).
func TestProductUseCase_Create_ValidacionCuatroCampos(t *testing.T) {
	repo := memory.NewProductRepository()
	uc := usecase.NewProductUseCase(repo)

	_, err := uc.Create(context.Background(), dto.ProductRequest{
		Name:          "",
		Category:      "",
		StockQuantity: -1,
		UnitPrice:     decimal.NewFromInt(-10),
	})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "name")
	assert.Contains(t, verr.Fields, "category")
	assert.Contains(t, verr.Fields, "stock_quantity")
	assert.Contains(t, verr.Fields, "unit_price")
	assert.Len(t, verr.Fields, 4)

	stats, err := repo.Stats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.TotalProducts, "una validación fallida no debe escribir nada")
}

// Cero es válido: stock agotado y precio 0.00 cumplen los constraints >= 0.
func TestProductUseCase_Create_CeroEsValido(t *testing.T) {
	uc := usecase.NewProductUseCase(memory.NewProductRepository())

	in := validRequest()
	in.StockQuantity = 0
	in.UnitPrice = decimal.Zero

	out, err := uc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, 0, out.StockQuantity)
	assert.True(t, out.UnitPrice.IsZero())
}

func TestProductUseCase_GetByID_NoExistente(t *testing.T) {
	uc := usecase.NewProductUseCase(memory.NewProductRepository())
	_, err := uc.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Update es un reemplazo completo: los campos nombrados se sustituyen y
// updated_at se refresca. created_at no cambia.
func TestProductUseCase_Update_ReemplazaCampos(t *testing.T) {
	uc := usecase.NewProductUseCase(memory.NewProductRepository())

	created, err := uc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	in := validRequest()
	in.Name = "Teclado actualizado"
	in.StockQuantity = 25
	in.UnitPrice = decimal.RequireFromString("149.99")
	updated, err := uc.Update(context.Background(), created.ID, in)
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Teclado actualizado", updated.Name)
	assert.Equal(t, 25, updated.StockQuantity)
	assert.True(t, updated.UnitPrice.Equal(decimal.RequireFromString("149.99")))
	assert.Equal(t, created.CreatedAt, updated.CreatedAt, "created_at es inmutable")
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt), "updated_at debe refrescarse")
}

// Contrato elegido para los opcionales: la ausencia explícita limpia el
// campo. Actualizar sin description ni supplier los deja vacíos.
func TestProductUseCase_Update_LimpiaOpcionalesOmitidos(t *testing.T) {
	uc := usecase.NewProductUseCase(memory.NewProductRepository())

	created, err := uc.Create(context.Background(), validRequest())
	require.NoError(t, err)
	require.NotEmpty(t, created.Description)
	require.NotEmpty(t, created.Supplier)

	in := validRequest()
	in.Description = ""
	in.Supplier = ""
	updated, err := uc.Update(context.Background(), created.ID, in)
	require.NoError(t, err)

	assert.Empty(t, updated.Description)
	assert.Empty(t, updated.Supplier)
}

func TestProductUseCase_Update_ValidaAntesDeBuscar(t *testing.T) {
	uc := usecase.NewProductUseCase(memory.NewProductRepository())

	// ID inexistente con cuerpo inválido: gana la validación (422), que
	// nunca se confunde con el 404.
	_, err := uc.Update(context.Background(), 999, dto.ProductRequest{})
	var verr *domain.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestProductUseCase_Update_NoExistente(t *testing.T) {
	uc := usecase.NewProductUseCase(memory.NewProductRepository())
	_, err := uc.Update(context.Background(), 999, validRequest())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductUseCase_Delete_NoExistente(t *testing.T) {
	uc := usecase.NewProductUseCase(memory.NewProductRepository())
	err := uc.Delete(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrNotFound, "borrar un ID inexistente no es un éxito silencioso")
}

func TestProductUseCase_Delete_LuegoGet(t *testing.T) {
	uc := usecase.NewProductUseCase(memory.NewProductRepository())

	created, err := uc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), created.ID))
	_, err = uc.GetByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// El precio se normaliza a 2 decimales al persistir.
func TestProductUseCase_Create_RedondeaPrecio(t *testing.T) {
	uc := usecase.NewProductUseCase(memory.NewProductRepository())

	in := validRequest()
	in.UnitPrice = decimal.RequireFromString("10.999")
	out, err := uc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "11.00", out.UnitPrice.StringFixed(2))
}
