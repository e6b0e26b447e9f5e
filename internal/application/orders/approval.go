package orders

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/vendus-gateway/internal/application/dto"
	"github.com/tu-usuario/vendus-gateway/internal/domain"
	"github.com/tu-usuario/vendus-gateway/internal/domain/entity"
	"github.com/tu-usuario/vendus-gateway/internal/domain/repository"
	"github.com/tu-usuario/vendus-gateway/pkg/logger"
)

// ApprovalUseCase máquina de estados de aceptación de encomiendas:
// PENDING -> ACCEPTED | REJECTED, sin salida de los estados terminales.
// Solo Accept toca el Upstream Gateway; un registro REJECTED o PENDING nunca
// corresponde a un documento creado por este pipeline.
type ApprovalUseCase struct {
	repo    repository.PendingOrderRepository
	gateway DocumentGateway
	log     *logger.Logger
}

// NewApprovalUseCase construye el coordinador.
func NewApprovalUseCase(repo repository.PendingOrderRepository, gateway DocumentGateway, log *logger.Logger) *ApprovalUseCase {
	return &ApprovalUseCase{repo: repo, gateway: gateway, log: log}
}

// Submit valida la forma mínima del draft y lo persiste en PENDING.
// No llama al upstream; la validación completa se difiere a Accept.
func (uc *ApprovalUseCase) Submit(ctx context.Context, draft dto.DraftOrder) (*dto.PendingOrderResponse, error) {
	if err := ValidateDraftShape(&draft); err != nil {
		return nil, err
	}
	payload, err := json.Marshal(draft)
	if err != nil {
		return nil, fmt.Errorf("serializar draft: %w", err)
	}
	p := &entity.PendingOrder{
		ID:        uuid.New().String(),
		Status:    entity.StatusPending,
		Payload:   payload,
		CreatedAt: time.Now().UTC(),
	}
	if draft.Client != nil {
		p.ClientName = draft.Client.Name
		p.ClientEmail = draft.Client.Email
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("guardar encomienda pendiente: %w", err)
	}
	uc.log.Info().Str("pending_id", p.ID).Int64("register_id", draft.RegisterID).Msg("encomienda encolada")
	return toPendingResponse(p), nil
}

// ListPending devuelve los registros PENDING, más recientes primero.
func (uc *ApprovalUseCase) ListPending(ctx context.Context) ([]*dto.PendingOrderResponse, error) {
	list, err := uc.repo.ListByStatus(ctx, entity.StatusPending)
	if err != nil {
		return nil, fmt.Errorf("listar pendientes: %w", err)
	}
	out := make([]*dto.PendingOrderResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toPendingResponse(p))
	}
	return out, nil
}

// Accept promociona una encomienda PENDING: crea el documento en Vendus y
// marca el registro ACCEPTED con el id resultante. El guard de estado es la
// actualización condicional del store (0 filas = conflicto), no la lectura
// previa. Si el upstream falla el registro queda PENDING y accept puede
// reintentarse sin riesgo.
func (uc *ApprovalUseCase) Accept(ctx context.Context, id, actor string) (*dto.OrderDetail, error) {
	if actor == "" {
		return nil, fmt.Errorf("%w: el campo 'actor' es obligatorio", domain.ErrInvalidInput)
	}
	p, err := uc.loadPending(ctx, id)
	if err != nil {
		return nil, err
	}

	var draft dto.DraftOrder
	if err := json.Unmarshal(p.Payload, &draft); err != nil {
		return nil, fmt.Errorf("payload almacenado corrupto: %w", err)
	}
	clientID, err := ValidateDraft(&draft)
	if err != nil {
		return nil, err
	}

	doc, err := uc.gateway.CreateDocument(ctx, BuildDocumentPayload(&draft, clientID))
	if err != nil {
		return nil, err
	}
	if doc == nil || doc.ID == 0 {
		return nil, &domain.UpstreamError{Status: 502, Message: "respuesta inválida de Vendus al crear el documento"}
	}

	now := time.Now().UTC()
	n, err := uc.repo.MarkAccepted(ctx, id, actor, doc.ID, now)
	if err != nil {
		// El documento ya existe en Vendus pero el registro sigue PENDING:
		// riesgo at-least-once conocido, queda trazado para reconciliación manual.
		uc.log.Error().Err(err).Str("pending_id", id).Int64("vendus_document_id", doc.ID).
			Msg("documento creado pero el registro pendiente no pudo marcarse ACCEPTED")
		return nil, fmt.Errorf("actualizar encomienda aceptada (documento %d ya creado): %w", doc.ID, err)
	}
	if n == 0 {
		uc.log.Warn().Str("pending_id", id).Int64("vendus_document_id", doc.ID).
			Msg("accept concurrente: el registro dejó de estar PENDING tras crear el documento")
		return nil, uc.conflictWithCurrentStatus(ctx, id)
	}

	uc.log.Info().Str("pending_id", id).Str("actor", actor).Int64("vendus_document_id", doc.ID).
		Msg("encomienda aceptada")
	det := NormalizeDetail(doc)
	return &det, nil
}

// Reject marca el registro REJECTED con el motivo. Nunca llama al upstream.
func (uc *ApprovalUseCase) Reject(ctx context.Context, id, actor, reason string) (*dto.PendingOrderResponse, error) {
	if actor == "" {
		return nil, fmt.Errorf("%w: el campo 'actor' es obligatorio", domain.ErrInvalidInput)
	}
	p, err := uc.loadPending(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	n, err := uc.repo.MarkRejected(ctx, id, actor, reason, now)
	if err != nil {
		return nil, fmt.Errorf("actualizar encomienda rechazada: %w", err)
	}
	if n == 0 {
		return nil, uc.conflictWithCurrentStatus(ctx, id)
	}

	uc.log.Info().Str("pending_id", id).Str("actor", actor).Msg("encomienda rechazada")
	p.Status = entity.StatusRejected
	p.RejectedAt = &now
	p.RejectedBy = actor
	p.RejectReason = reason
	return toPendingResponse(p), nil
}

// loadPending carga el registro y aplica el guard de lectura. El guard
// definitivo es el UPDATE condicional; esta comprobación solo evita llamar al
// upstream cuando el estado ya es terminal.
func (uc *ApprovalUseCase) loadPending(ctx context.Context, id string) (*entity.PendingOrder, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("leer encomienda pendiente: %w", err)
	}
	if p == nil {
		return nil, fmt.Errorf("%w: encomienda pendiente %s", domain.ErrNotFound, id)
	}
	if p.Status != entity.StatusPending {
		return nil, conflictErr(p.Status)
	}
	return p, nil
}

// conflictWithCurrentStatus relee el registro para componer el mensaje de
// conflicto con el estado que ganó la carrera.
func (uc *ApprovalUseCase) conflictWithCurrentStatus(ctx context.Context, id string) error {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil || p == nil {
		return conflictErr("en estado desconocido")
	}
	return conflictErr(p.Status)
}

func conflictErr(status string) error {
	return fmt.Errorf("%w: la encomienda ya está %s", domain.ErrConflict, status)
}

func toPendingResponse(p *entity.PendingOrder) *dto.PendingOrderResponse {
	return &dto.PendingOrderResponse{
		ID:               p.ID,
		Status:           p.Status,
		Payload:          p.Payload,
		ClientName:       p.ClientName,
		ClientEmail:      p.ClientEmail,
		CreatedAt:        p.CreatedAt,
		AcceptedAt:       p.AcceptedAt,
		AcceptedBy:       p.AcceptedBy,
		VendusDocumentID: p.VendusDocumentID,
		RejectedAt:       p.RejectedAt,
		RejectedBy:       p.RejectedBy,
		RejectReason:     p.RejectReason,
	}
}
