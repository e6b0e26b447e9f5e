package products

import (
	"context"
	"fmt"
	"net/url"

	"github.com/tu-usuario/vendus-gateway/internal/application/dto"
	"github.com/tu-usuario/vendus-gateway/internal/domain"
	"github.com/tu-usuario/vendus-gateway/internal/domain/entity"
)

// ProductGateway puerto hacia /products del sistema de documentos.
type ProductGateway interface {
	ListProducts(ctx context.Context, filters url.Values) ([]entity.Product, error)
	GetProduct(ctx context.Context, id int64) (*entity.Product, error)
}

// ProductUseCase proxy read-only del catálogo.
type ProductUseCase struct {
	gateway ProductGateway
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(gateway ProductGateway) *ProductUseCase {
	return &ProductUseCase{gateway: gateway}
}

// List lista productos normalizados.
func (uc *ProductUseCase) List(ctx context.Context, filters url.Values) ([]dto.ProductResponse, error) {
	list, err := uc.gateway.ListProducts(ctx, filters)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductResponse(&p))
	}
	return out, nil
}

// GetByID detalle de un producto.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: id de producto inválido", domain.ErrInvalidInput)
	}
	p, err := uc.gateway.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	resp := toProductResponse(p)
	return &resp, nil
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:              p.ID,
		Reference:       p.Reference,
		Title:           p.Title,
		GrossPrice:      p.GrossPrice,
		SupplyPrice:     p.SupplyPrice,
		PriceWithoutTax: p.PriceWithoutTax,
		Stock:           p.Stock,
		ImageURL:        p.ImageURL,
	}
}
