package entity

import "time"

// CustomerAccount vincula una cuenta de acceso del storefront con su cliente
// Vendus. Vive en el account store, no en el upstream.
type CustomerAccount struct {
	ID             string
	Email          string
	PasswordHash   string
	VendusClientID int64
	CreatedAt      time.Time
}
