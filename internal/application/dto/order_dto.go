package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// DraftOrderItem línea de una encomienda entrante. Debe traer qty > 0 y al
// menos uno de id (catálogo) o reference.
type DraftOrderItem struct {
	Qty       decimal.Decimal  `json:"qty"`
	ID        *int64           `json:"id,omitempty"`
	Reference string           `json:"reference,omitempty"`
	Price     *decimal.Decimal `json:"price,omitempty"`
	Discount  *decimal.Decimal `json:"discount,omitempty"`
	TaxID     *int64           `json:"tax_id,omitempty"`
	Notes     string           `json:"notes,omitempty"`
}

// DraftClient cliente embebido en el draft (alternativa a client_id).
type DraftClient struct {
	ID         *int64 `json:"id,omitempty"`
	FiscalID   string `json:"fiscal_id,omitempty"`
	Name       string `json:"name,omitempty"`
	Address    string `json:"address,omitempty"`
	PostalCode string `json:"postalcode,omitempty"`
	City       string `json:"city,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Mobile     string `json:"mobile,omitempty"`
	Email      string `json:"email,omitempty"`
	Country    string `json:"country,omitempty"`
	SendEmail  string `json:"send_email,omitempty"` // yes | no
}

// DraftOrder encomienda entrante del storefront/robot. Se guarda tal cual en
// la cola de pendientes; la validación completa se hace al aceptar.
type DraftOrder struct {
	RegisterID        int64            `json:"register_id"`
	ClientID          *int64           `json:"client_id,omitempty"`
	Client            *DraftClient     `json:"client,omitempty"`
	Items             []DraftOrderItem `json:"items"`
	Date              string           `json:"date,omitempty"`
	DateDue           string           `json:"date_due,omitempty"`
	DateSupply        string           `json:"date_supply,omitempty"`
	Notes             string           `json:"notes,omitempty"`
	ExternalReference string           `json:"external_reference,omitempty"`
	Mode              string           `json:"mode,omitempty"`            // normal | tests
	StockOperation    string           `json:"stock_operation,omitempty"` // out | none
}

// ResolvedClientID devuelve el client_id directo o el del cliente embebido;
// 0 si no hay ninguno.
func (d *DraftOrder) ResolvedClientID() int64 {
	if d.ClientID != nil {
		return *d.ClientID
	}
	if d.Client != nil && d.Client.ID != nil {
		return *d.Client.ID
	}
	return 0
}

// VendusOrderItem línea en el payload de creación de documentos. Mapeo
// sparse: los opcionales ausentes no viajan con valores por defecto.
type VendusOrderItem struct {
	Qty       decimal.Decimal  `json:"qty"`
	ID        *int64           `json:"id,omitempty"`
	Reference string           `json:"reference,omitempty"`
	Price     *decimal.Decimal `json:"price,omitempty"`
	Discount  *decimal.Decimal `json:"discount,omitempty"`
	TaxID     *int64           `json:"tax_id,omitempty"`
	Notes     string           `json:"notes,omitempty"`
}

// VendusOrderPayload payload de POST /documents con type fijo de encomienda.
type VendusOrderPayload struct {
	Type              string            `json:"type"`
	RegisterID        int64             `json:"register_id"`
	ClientID          int64             `json:"client_id"`
	Items             []VendusOrderItem `json:"items"`
	Date              string            `json:"date,omitempty"`
	DateDue           string            `json:"date_due,omitempty"`
	DateSupply        string            `json:"date_supply,omitempty"`
	Notes             string            `json:"notes,omitempty"`
	ExternalReference string            `json:"external_reference,omitempty"`
	Mode              string            `json:"mode,omitempty"`
	StockOperation    string            `json:"stock_operation,omitempty"`
}

// PendingOrderResponse vista de un registro de la cola de pendientes.
type PendingOrderResponse struct {
	ID               string          `json:"id"`
	Status           string          `json:"status"`
	Payload          json.RawMessage `json:"payload"`
	ClientName       string          `json:"client_name"`
	ClientEmail      string          `json:"client_email"`
	CreatedAt        time.Time       `json:"created_at"`
	AcceptedAt       *time.Time      `json:"accepted_at,omitempty"`
	AcceptedBy       string          `json:"accepted_by,omitempty"`
	VendusDocumentID *int64          `json:"vendus_document_id,omitempty"`
	RejectedAt       *time.Time      `json:"rejected_at,omitempty"`
	RejectedBy       string          `json:"rejected_by,omitempty"`
	RejectReason     string          `json:"reject_reason,omitempty"`
}

// AcceptOrderRequest cuerpo de accept: identidad del operador.
type AcceptOrderRequest struct {
	Actor string `json:"actor"`
}

// RejectOrderRequest cuerpo de reject: operador y motivo opcional.
type RejectOrderRequest struct {
	Actor  string `json:"actor"`
	Reason string `json:"reason,omitempty"`
}

// OrderSummary fila normalizada de un listado de encomiendas. Los numéricos
// ausentes quedan en null y los textos en cadena vacía, como espera el robot.
type OrderSummary struct {
	ID                int64            `json:"id"`
	Number            string           `json:"number"`
	Date              string           `json:"date"`
	Type              string           `json:"type"`
	Subtype           string           `json:"subtype"`
	Status            string           `json:"status"`
	AmountGross       *decimal.Decimal `json:"amount_gross"`
	AmountNet         *decimal.Decimal `json:"amount_net"`
	StoreID           *int64           `json:"store_id"`
	RegisterID        *int64           `json:"register_id"`
	ExternalReference string           `json:"external_reference"`
	ClientID          *int64           `json:"client_id"`
	ClientName        string           `json:"client_name"`
	ClientEmail       string           `json:"client_email"`
}

// OrderItemResponse línea de un detalle de encomienda.
type OrderItemResponse struct {
	ID        int64            `json:"id"`
	Reference string           `json:"reference"`
	Title     string           `json:"title"`
	Qty       decimal.Decimal  `json:"qty"`
	Price     *decimal.Decimal `json:"price,omitempty"`
	Discount  *decimal.Decimal `json:"discount,omitempty"`
}

// OrderDetail detalle normalizado de una encomienda.
type OrderDetail struct {
	OrderSummary
	Items []OrderItemResponse `json:"items,omitempty"`
}
