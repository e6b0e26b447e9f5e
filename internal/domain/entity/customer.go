package entity

// Customer representa un cliente en Vendus. El id lo asigna el upstream y es
// inmutable; este sistema nunca borra clientes.
type Customer struct {
	ID       int64
	Name     string
	Email    string
	Phone    string
	FiscalID string // NIF portugués; clave de dedup cuando no está vacío
}
