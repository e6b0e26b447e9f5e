package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/vendus-gateway/internal/domain/entity"
	"github.com/tu-usuario/vendus-gateway/internal/domain/repository"
)

var _ repository.PendingOrderRepository = (*PendingOrderRepo)(nil)

// PendingOrderRepo implementación de PendingOrderRepository (usable con pool o tx).
type PendingOrderRepo struct {
	q Querier
}

// NewPendingOrderRepository construye el adaptador.
func NewPendingOrderRepository(q Querier) *PendingOrderRepo {
	return &PendingOrderRepo{q: q}
}

const pendingOrderColumns = `
	id, status, payload, client_name, client_email, created_at,
	accepted_at, COALESCE(accepted_by, ''), vendus_document_id,
	rejected_at, COALESCE(rejected_by, ''), COALESCE(reject_reason, '')`

// Create persiste una encomienda nueva en PENDING.
func (r *PendingOrderRepo) Create(ctx context.Context, order *entity.PendingOrder) error {
	query := `
		INSERT INTO pending_orders (id, status, payload, client_name, client_email, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		order.ID, order.Status, order.Payload, order.ClientName, order.ClientEmail, order.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert pending_order: %w", err)
	}
	return nil
}

// GetByID obtiene una encomienda por ID; (nil, nil) si no existe.
func (r *PendingOrderRepo) GetByID(ctx context.Context, id string) (*entity.PendingOrder, error) {
	query := `SELECT ` + pendingOrderColumns + ` FROM pending_orders WHERE id = $1`
	p, err := scanPendingOrder(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pending_order: %w", err)
	}
	return p, nil
}

// ListByStatus lista encomiendas en el estado dado, más recientes primero.
func (r *PendingOrderRepo) ListByStatus(ctx context.Context, status string) ([]*entity.PendingOrder, error) {
	query := `SELECT ` + pendingOrderColumns + `
		FROM pending_orders WHERE status = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query, status)
	if err != nil {
		return nil, fmt.Errorf("list pending_orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.PendingOrder
	for rows.Next() {
		p, err := scanPendingOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan pending_order: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// MarkAccepted transición PENDING -> ACCEPTED como UPDATE condicional atómico.
// Devuelve filas afectadas: 0 significa que el registro no estaba en PENDING.
func (r *PendingOrderRepo) MarkAccepted(ctx context.Context, id, actor string, documentID int64, at time.Time) (int64, error) {
	query := `
		UPDATE pending_orders
		SET status = $2, accepted_at = $3, accepted_by = $4, vendus_document_id = $5
		WHERE id = $1 AND status = $6`
	ct, err := r.q.Exec(ctx, query, id, entity.StatusAccepted, at, actor, documentID, entity.StatusPending)
	if err != nil {
		return 0, fmt.Errorf("mark accepted: %w", err)
	}
	return ct.RowsAffected(), nil
}

// MarkRejected transición PENDING -> REJECTED como UPDATE condicional atómico.
func (r *PendingOrderRepo) MarkRejected(ctx context.Context, id, actor, reason string, at time.Time) (int64, error) {
	query := `
		UPDATE pending_orders
		SET status = $2, rejected_at = $3, rejected_by = $4, reject_reason = $5
		WHERE id = $1 AND status = $6`
	ct, err := r.q.Exec(ctx, query, id, entity.StatusRejected, at, actor, reason, entity.StatusPending)
	if err != nil {
		return 0, fmt.Errorf("mark rejected: %w", err)
	}
	return ct.RowsAffected(), nil
}

func scanPendingOrder(row pgx.Row) (*entity.PendingOrder, error) {
	var p entity.PendingOrder
	err := row.Scan(
		&p.ID, &p.Status, &p.Payload, &p.ClientName, &p.ClientEmail, &p.CreatedAt,
		&p.AcceptedAt, &p.AcceptedBy, &p.VendusDocumentID,
		&p.RejectedAt, &p.RejectedBy, &p.RejectReason,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
