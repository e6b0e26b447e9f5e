package entity

import "github.com/shopspring/decimal"

// TypeOrder es el type de los documentos de encomienda en Vendus.
const TypeOrder = "EC"

// DocumentClient cliente embebido en un documento Vendus. Las respuestas de
// list a veces traen solo client_id plano; las de detalle traen este objeto.
type DocumentClient struct {
	ID    int64
	Name  string
	Email string
}

// DocumentItem línea de un documento Vendus.
type DocumentItem struct {
	ID        int64
	Reference string
	Title     string
	Qty       decimal.Decimal
	Price     *decimal.Decimal
	Discount  *decimal.Decimal
}

// Document es un documento (encomienda/factura) en Vendus. Solo el Upstream
// Gateway los crea, y únicamente a partir de una PendingOrder aceptada.
type Document struct {
	ID                int64
	Type              string
	Subtype           string
	Number            string
	Date              string
	Status            string
	AmountGross       *decimal.Decimal
	AmountNet         *decimal.Decimal
	StoreID           *int64
	RegisterID        *int64
	ExternalReference string
	ClientID          *int64
	Client            *DocumentClient
	Items             []DocumentItem
}
