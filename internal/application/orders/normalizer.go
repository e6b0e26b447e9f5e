package orders

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/vendus-gateway/internal/application/dto"
	"github.com/tu-usuario/vendus-gateway/internal/domain"
	"github.com/tu-usuario/vendus-gateway/internal/domain/entity"
)

// walkInClientName label de cliente genérico cuando el documento no trae uno.
const walkInClientName = "Consumidor Final"

// ValidateDraftShape validación mínima al encolar: register_id, client_id
// resoluble e items no vacíos. El resto se valida al aceptar.
func ValidateDraftShape(d *dto.DraftOrder) error {
	if d.RegisterID == 0 {
		return fmt.Errorf("%w: el campo 'register_id' es obligatorio", domain.ErrInvalidInput)
	}
	if len(d.Items) == 0 {
		return fmt.Errorf("%w: el campo 'items' es obligatorio y no puede estar vacío", domain.ErrInvalidInput)
	}
	if d.ResolvedClientID() == 0 {
		return fmt.Errorf("%w: el campo 'client_id' es obligatorio", domain.ErrInvalidInput)
	}
	return nil
}

// ValidateDraft validación completa del esquema antes de crear el documento.
// Devuelve el client_id resuelto.
func ValidateDraft(d *dto.DraftOrder) (int64, error) {
	if err := ValidateDraftShape(d); err != nil {
		return 0, err
	}
	for i, it := range d.Items {
		if !it.Qty.GreaterThan(decimal.Zero) {
			return 0, fmt.Errorf("%w: items[%d] necesita qty > 0", domain.ErrInvalidInput, i)
		}
		if it.ID == nil && it.Reference == "" {
			return 0, fmt.Errorf("%w: items[%d] necesita 'id' o 'reference'", domain.ErrInvalidInput, i)
		}
	}
	return d.ResolvedClientID(), nil
}

// BuildDocumentPayload mapea el draft validado al esquema de creación de
// documentos con type fijo de encomienda. Mapeo sparse: los opcionales
// ausentes no aparecen en el payload saliente.
func BuildDocumentPayload(d *dto.DraftOrder, clientID int64) dto.VendusOrderPayload {
	items := make([]dto.VendusOrderItem, 0, len(d.Items))
	for _, it := range d.Items {
		items = append(items, dto.VendusOrderItem{
			Qty:       it.Qty,
			ID:        it.ID,
			Reference: it.Reference,
			Price:     it.Price,
			Discount:  it.Discount,
			TaxID:     it.TaxID,
			Notes:     it.Notes,
		})
	}
	return dto.VendusOrderPayload{
		Type:              entity.TypeOrder,
		RegisterID:        d.RegisterID,
		ClientID:          clientID,
		Items:             items,
		Date:              d.Date,
		DateDue:           d.DateDue,
		DateSupply:        d.DateSupply,
		Notes:             d.Notes,
		ExternalReference: d.ExternalReference,
		Mode:              d.Mode,
		StockOperation:    d.StockOperation,
	}
}

// NormalizeSummary aplana un documento a fila de listado. El client_id puede
// venir plano o embebido según el shape que devolvió el upstream; el nombre
// ausente cae al label de consumidor final.
func NormalizeSummary(doc *entity.Document) dto.OrderSummary {
	s := dto.OrderSummary{
		ID:                doc.ID,
		Number:            doc.Number,
		Date:              doc.Date,
		Type:              doc.Type,
		Subtype:           doc.Subtype,
		Status:            doc.Status,
		AmountGross:       doc.AmountGross,
		AmountNet:         doc.AmountNet,
		StoreID:           doc.StoreID,
		RegisterID:        doc.RegisterID,
		ExternalReference: doc.ExternalReference,
		ClientID:          doc.ClientID,
		ClientName:        walkInClientName,
	}
	if doc.Client != nil {
		if s.ClientID == nil && doc.Client.ID != 0 {
			id := doc.Client.ID
			s.ClientID = &id
		}
		if doc.Client.Name != "" {
			s.ClientName = doc.Client.Name
		}
		s.ClientEmail = doc.Client.Email
	}
	return s
}

// NormalizeDetail igual que NormalizeSummary pero conservando las líneas.
func NormalizeDetail(doc *entity.Document) dto.OrderDetail {
	det := dto.OrderDetail{OrderSummary: NormalizeSummary(doc)}
	if len(doc.Items) > 0 {
		det.Items = make([]dto.OrderItemResponse, 0, len(doc.Items))
		for _, it := range doc.Items {
			det.Items = append(det.Items, dto.OrderItemResponse{
				ID:        it.ID,
				Reference: it.Reference,
				Title:     it.Title,
				Qty:       it.Qty,
				Price:     it.Price,
				Discount:  it.Discount,
			})
		}
	}
	return det
}

// backfillSummary completa una fila con los campos de cliente (y los importes
// que el listado omitió) leídos del documento de detalle.
func backfillSummary(s *dto.OrderSummary, det *entity.Document) {
	if det.ClientID != nil {
		s.ClientID = det.ClientID
	}
	if det.Client != nil {
		if s.ClientID == nil && det.Client.ID != 0 {
			id := det.Client.ID
			s.ClientID = &id
		}
		if det.Client.Name != "" {
			s.ClientName = det.Client.Name
		}
		if det.Client.Email != "" {
			s.ClientEmail = det.Client.Email
		}
	}
	if s.AmountGross == nil {
		s.AmountGross = det.AmountGross
	}
	if s.AmountNet == nil {
		s.AmountNet = det.AmountNet
	}
}
