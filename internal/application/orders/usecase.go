package orders

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/tu-usuario/vendus-gateway/internal/application/dto"
	"github.com/tu-usuario/vendus-gateway/internal/domain"
	"github.com/tu-usuario/vendus-gateway/internal/domain/entity"
	"github.com/tu-usuario/vendus-gateway/pkg/logger"
)

// Límites del fan-out de la vista enriquecida: un fetch de detalle por fila,
// acotado en concurrencia y con timeout por llamada.
const (
	enrichMaxConcurrency = 8
	enrichCallTimeout    = 5 * time.Second
)

// OrdersUseCase consultas read-only de encomiendas (documents type=EC).
type OrdersUseCase struct {
	gateway DocumentGateway
	log     *logger.Logger
}

// NewOrdersUseCase construye el caso de uso.
func NewOrdersUseCase(gateway DocumentGateway, log *logger.Logger) *OrdersUseCase {
	return &OrdersUseCase{gateway: gateway, log: log}
}

// List lista encomiendas normalizadas; fuerza siempre type=EC. Con enriched
// se backfillean por fila los campos que el listado del upstream omite,
// leyendo el detalle de cada documento. El fallo de un detalle degrada esa
// fila a los placeholders del listado, nunca tumba el lote.
func (uc *OrdersUseCase) List(ctx context.Context, filters url.Values, enriched bool) ([]dto.OrderSummary, error) {
	if filters == nil {
		filters = url.Values{}
	}
	filters.Set("type", entity.TypeOrder)

	docs, err := uc.gateway.ListDocuments(ctx, filters)
	if err != nil {
		return nil, err
	}
	summaries := make([]dto.OrderSummary, len(docs))
	for i := range docs {
		summaries[i] = NormalizeSummary(&docs[i])
	}
	if !enriched || len(docs) == 0 {
		return summaries, nil
	}

	sem := make(chan struct{}, enrichMaxConcurrency)
	var wg sync.WaitGroup
	for i := range docs {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()

			callCtx, cancel := context.WithTimeout(ctx, enrichCallTimeout)
			defer cancel()

			det, err := uc.gateway.GetDocument(callCtx, docs[i].ID, nil)
			if err != nil || det == nil {
				uc.log.Warn().Err(err).Int64("document_id", docs[i].ID).
					Msg("detalle no disponible, la fila queda sin enriquecer")
				return
			}
			backfillSummary(&summaries[i], det)
		}(i)
	}
	wg.Wait()
	return summaries, nil
}

// GetByID detalle normalizado de una encomienda. filters permite pasar al
// upstream parámetros de salida (copies, output, ...).
func (uc *OrdersUseCase) GetByID(ctx context.Context, id int64, filters url.Values) (*dto.OrderDetail, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: id de documento inválido", domain.ErrInvalidInput)
	}
	doc, err := uc.gateway.GetDocument(ctx, id, filters)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.ErrNotFound
	}
	det := NormalizeDetail(doc)
	return &det, nil
}
