package entity

import (
	"encoding/json"
	"time"
)

// Estados del ciclo de vida de una encomienda pendiente.
// PENDING es el estado inicial; ACCEPTED y REJECTED son terminales.
const (
	StatusPending  = "PENDING"
	StatusAccepted = "ACCEPTED"
	StatusRejected = "REJECTED"
)

// PendingOrder es una encomienda en espera de decisión humana. Se crea en
// PENDING al recibir el draft, muta exactamente una vez (accept o reject) y
// nunca se borra (rastro de auditoría).
type PendingOrder struct {
	ID      string
	Status  string
	Payload json.RawMessage // DraftOrder original, opaco para el store

	// Denormalizados para la vista del operador.
	ClientName  string
	ClientEmail string

	CreatedAt time.Time

	// Campos de transición: accept rellena los tres primeros, reject los otros.
	AcceptedAt       *time.Time
	AcceptedBy       string
	VendusDocumentID *int64

	RejectedAt   *time.Time
	RejectedBy   string
	RejectReason string
}
