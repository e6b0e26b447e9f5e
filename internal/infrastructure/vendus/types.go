package vendus

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/vendus-gateway/internal/domain/entity"
)

// vendusSiteURL base para completar rutas relativas de imágenes.
const vendusSiteURL = "https://www.vendus.pt"

// ── Shapes del wire de Vendus ────────────────────────────────────────────────

type clientRecord struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	FiscalID string `json:"fiscal_id"`
}

func (r clientRecord) toEntity() entity.Customer {
	return entity.Customer{
		ID:       r.ID,
		Name:     r.Name,
		Email:    r.Email,
		Phone:    r.Phone,
		FiscalID: r.FiscalID,
	}
}

type embeddedClient struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type documentItem struct {
	ID        int64            `json:"id"`
	Reference string           `json:"reference"`
	Title     string           `json:"title"`
	Qty       decimal.Decimal  `json:"qty"`
	Price     *decimal.Decimal `json:"price"`
	Discount  *decimal.Decimal `json:"discount"`
}

// documentRecord documento tal como lo devuelve Vendus. Los importes pueden
// venir como número o como string; decimal.Decimal acepta ambos.
type documentRecord struct {
	ID                int64            `json:"id"`
	Type              string           `json:"type"`
	Subtype           string           `json:"subtype"`
	Number            string           `json:"number"`
	Date              string           `json:"date"`
	Status            string           `json:"status"`
	AmountGross       *decimal.Decimal `json:"amount_gross"`
	AmountNet         *decimal.Decimal `json:"amount_net"`
	StoreID           *int64           `json:"store_id"`
	RegisterID        *int64           `json:"register_id"`
	ExternalReference string           `json:"external_reference"`
	ClientID          *int64           `json:"client_id"`
	Client            *embeddedClient  `json:"client"`
	Items             []documentItem   `json:"items"`
}

func (r documentRecord) toEntity() entity.Document {
	doc := entity.Document{
		ID:                r.ID,
		Type:              r.Type,
		Subtype:           r.Subtype,
		Number:            r.Number,
		Date:              r.Date,
		Status:            r.Status,
		AmountGross:       r.AmountGross,
		AmountNet:         r.AmountNet,
		StoreID:           r.StoreID,
		RegisterID:        r.RegisterID,
		ExternalReference: r.ExternalReference,
		ClientID:          r.ClientID,
	}
	if r.Client != nil {
		doc.Client = &entity.DocumentClient{
			ID:    r.Client.ID,
			Name:  r.Client.Name,
			Email: r.Client.Email,
		}
	}
	if len(r.Items) > 0 {
		doc.Items = make([]entity.DocumentItem, 0, len(r.Items))
		for _, it := range r.Items {
			doc.Items = append(doc.Items, entity.DocumentItem{
				ID:        it.ID,
				Reference: it.Reference,
				Title:     it.Title,
				Qty:       it.Qty,
				Price:     it.Price,
				Discount:  it.Discount,
			})
		}
	}
	return doc
}

type productImages struct {
	XS string `json:"xs"`
	M  string `json:"m"`
}

type productVariant struct {
	Images *productImages `json:"images"`
}

type productRecord struct {
	ID              int64            `json:"id"`
	Reference       string           `json:"reference"`
	Title           string           `json:"title"`
	GrossPrice      *decimal.Decimal `json:"gross_price"`
	SupplyPrice     *decimal.Decimal `json:"supply_price"`
	PriceWithoutTax *decimal.Decimal `json:"price_without_tax"`
	Stock           *decimal.Decimal `json:"stock"`

	Images   *productImages   `json:"images"`
	Variants []productVariant `json:"variants"`

	// Campos legacy de imagen que algunas cuentas todavía devuelven.
	ImageURL string `json:"image_url"`
	Image    string `json:"image"`
	PhotoURL string `json:"photo_url"`
	Photo    string `json:"photo"`
}

func (r productRecord) toEntity() entity.Product {
	return entity.Product{
		ID:              r.ID,
		Reference:       r.Reference,
		Title:           r.Title,
		GrossPrice:      r.GrossPrice,
		SupplyPrice:     r.SupplyPrice,
		PriceWithoutTax: r.PriceWithoutTax,
		Stock:           r.Stock,
		ImageURL:        r.pickImageURL(),
	}
}

// pickImageURL prioriza images.m|xs, luego la primera variante, luego los
// campos legacy; siempre devuelve URL absoluta.
func (r productRecord) pickImageURL() string {
	if r.Images != nil {
		if s := firstNonEmpty(r.Images.M, r.Images.XS); s != "" {
			return toFullVendusURL(s)
		}
	}
	if len(r.Variants) > 0 && r.Variants[0].Images != nil {
		if s := firstNonEmpty(r.Variants[0].Images.M, r.Variants[0].Images.XS); s != "" {
			return toFullVendusURL(s)
		}
	}
	return toFullVendusURL(firstNonEmpty(r.ImageURL, r.PhotoURL, r.Image, r.Photo))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

func toFullVendusURL(path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if strings.HasPrefix(path, "/") {
		return vendusSiteURL + path
	}
	return vendusSiteURL + "/" + path
}
