package usecase

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/invorya/inventario-api/internal/application/dto"
	"github.com/invorya/inventario-api/internal/domain"
	"github.com/invorya/inventario-api/internal/domain/entity"
	"github.com/invorya/inventario-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. Cada operación toca
// exactamente un registro; la validación es todo-o-nada (si falla, no se
// persiste nada).
type ProductUseCase struct {
	repo     repository.ProductRepository
	validate *validator.Validate
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, validate: newProductValidator()}
}

// newProductValidator configura validator/v10: los errores se reportan con
// el nombre json del campo y decimal.Decimal se valida como float64 para
// que gte=0 aplique también a unit_price.
func newProductValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// Create valida y persiste un producto nuevo. El ID y los timestamps los
// asigna el sistema.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.ProductRequest) (*dto.ProductResponse, error) {
	if err := uc.check(in); err != nil {
		return nil, err
	}
	now := time.Now()
	product := &entity.Product{
		Name:          in.Name,
		Description:   in.Description,
		Category:      in.Category,
		StockQuantity: in.StockQuantity,
		UnitPrice:     in.UnitPrice.Round(2),
		Supplier:      in.Supplier,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID. Devuelve domain.ErrNotFound si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update reemplaza por completo los campos del producto. Los opcionales
// (description, supplier) omitidos en la petición quedan vacíos: la
// ausencia explícita limpia el campo. Refresca updated_at; created_at es
// inmutable.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.ProductRequest) (*dto.ProductResponse, error) {
	if err := uc.check(in); err != nil {
		return nil, err
	}
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	product.Name = in.Name
	product.Description = in.Description
	product.Category = in.Category
	product.StockQuantity = in.StockQuantity
	product.UnitPrice = in.UnitPrice.Round(2)
	product.Supplier = in.Supplier
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto por ID (borrado duro). Eliminar un ID
// inexistente devuelve domain.ErrNotFound, no un éxito silencioso.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

// check ejecuta la validación de campos y la traduce a un
// domain.ValidationError con mensaje por campo.
func (uc *ProductUseCase) check(in dto.ProductRequest) error {
	err := uc.validate.Struct(in)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return domain.ErrInvalidInput
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			fields[fe.Field()] = fmt.Sprintf("%s es requerido", fe.Field())
		case "gte":
			fields[fe.Field()] = fmt.Sprintf("%s debe ser mayor o igual a %s", fe.Field(), fe.Param())
		default:
			fields[fe.Field()] = fmt.Sprintf("%s no es válido", fe.Field())
		}
	}
	return &domain.ValidationError{Fields: fields}
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Category:      p.Category,
		StockQuantity: p.StockQuantity,
		UnitPrice:     p.UnitPrice,
		Supplier:      p.Supplier,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
