package entity

import "github.com/shopspring/decimal"

// Product es un producto del catálogo Vendus (solo lectura para este gateway).
type Product struct {
	ID              int64
	Reference       string
	Title           string
	GrossPrice      *decimal.Decimal
	SupplyPrice     *decimal.Decimal
	PriceWithoutTax *decimal.Decimal
	Stock           *decimal.Decimal
	ImageURL        string
}
