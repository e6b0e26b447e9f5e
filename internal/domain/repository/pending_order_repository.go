package repository

import (
	"context"
	"time"

	"github.com/tu-usuario/vendus-gateway/internal/domain/entity"
)

// PendingOrderRepository define el puerto de persistencia para la cola de
// encomiendas pendientes (account store).
//
// MarkAccepted y MarkRejected son actualizaciones condicionales atómicas sobre
// status = PENDING y devuelven el número de filas afectadas. 0 filas significa
// que el registro ya no estaba en PENDING (o no existe): el caller debe tratarlo
// como conflicto, nunca como éxito silencioso.
type PendingOrderRepository interface {
	Create(ctx context.Context, order *entity.PendingOrder) error
	GetByID(ctx context.Context, id string) (*entity.PendingOrder, error)
	// ListByStatus devuelve los registros en el estado dado, más recientes primero.
	ListByStatus(ctx context.Context, status string) ([]*entity.PendingOrder, error)
	MarkAccepted(ctx context.Context, id, actor string, documentID int64, at time.Time) (int64, error)
	MarkRejected(ctx context.Context, id, actor, reason string, at time.Time) (int64, error)
}
