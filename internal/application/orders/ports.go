package orders

import (
	"context"
	"net/url"

	"github.com/tu-usuario/vendus-gateway/internal/application/dto"
	"github.com/tu-usuario/vendus-gateway/internal/domain/entity"
)

// DocumentGateway puerto hacia /documents del sistema de documentos.
// ListDocuments traduce el 404 "no data" del upstream a lista vacía.
// GetDocument devuelve (nil, nil) si el documento no existe.
type DocumentGateway interface {
	ListDocuments(ctx context.Context, filters url.Values) ([]entity.Document, error)
	GetDocument(ctx context.Context, id int64, filters url.Values) (*entity.Document, error)
	CreateDocument(ctx context.Context, payload dto.VendusOrderPayload) (*entity.Document, error)
}
