package clients

import (
	"context"
	"net/url"

	"github.com/tu-usuario/vendus-gateway/internal/application/dto"
	"github.com/tu-usuario/vendus-gateway/internal/domain/entity"
)

// ClientGateway puerto hacia /clients del sistema de documentos.
// List con filtros que no casan nada devuelve lista vacía (el adaptador
// traduce el 404 "no data" del upstream), nunca error.
type ClientGateway interface {
	List(ctx context.Context, filters url.Values) ([]entity.Customer, error)
	GetByID(ctx context.Context, id int64) (*entity.Customer, error)
	Create(ctx context.Context, payload dto.CreateClientPayload) (*entity.Customer, error)
}
