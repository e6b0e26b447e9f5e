package dto

// ResolveClientRequest datos de contacto para crear-o-encontrar un cliente.
// Nombres de campo en el wire como los usa el storefront original.
type ResolveClientRequest struct {
	Nome     string `json:"nome"`
	Email    string `json:"email,omitempty"`
	Telefone string `json:"telefone,omitempty"`
	NIF      string `json:"nif,omitempty"`
}

// ResolveClientResponse resultado de la resolución idempotente.
type ResolveClientResponse struct {
	ClientID int64 `json:"clientId"`
	Created  bool  `json:"created"`
}

// ClientResponse cliente normalizado para consumidores (sin campos null).
type ClientResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	FiscalID string `json:"fiscal_id"`
}

// CreateClientPayload payload sparse de POST /clients en Vendus: los campos
// ausentes se omiten (el upstream trata "" distinto de ausente) y los
// defaults fijos van siempre.
type CreateClientPayload struct {
	Name         string `json:"name"`
	FiscalID     string `json:"fiscal_id,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Email        string `json:"email,omitempty"`
	Country      string `json:"country,omitempty"`
	SendEmail    string `json:"send_email,omitempty"`
	IRSRetention string `json:"irs_retention,omitempty"`
	PaymentDays  *int   `json:"payment_days,omitempty"`
}
