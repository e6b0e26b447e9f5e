package dto

import "github.com/shopspring/decimal"

// ProductResponse producto normalizado del catálogo Vendus.
type ProductResponse struct {
	ID              int64            `json:"id"`
	Reference       string           `json:"reference"`
	Title           string           `json:"title"`
	GrossPrice      *decimal.Decimal `json:"gross_price"`
	SupplyPrice     *decimal.Decimal `json:"supply_price"`
	PriceWithoutTax *decimal.Decimal `json:"price_without_tax"`
	Stock           *decimal.Decimal `json:"stock"`
	ImageURL        string           `json:"imageUrl"`
}
