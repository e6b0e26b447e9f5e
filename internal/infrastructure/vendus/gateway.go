package vendus

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/tu-usuario/vendus-gateway/internal/application/clients"
	"github.com/tu-usuario/vendus-gateway/internal/application/dto"
	"github.com/tu-usuario/vendus-gateway/internal/application/orders"
	"github.com/tu-usuario/vendus-gateway/internal/application/products"
	"github.com/tu-usuario/vendus-gateway/internal/domain/entity"
)

// El cliente implementa los puertos de las tres áreas.
var (
	_ clients.ClientGateway   = (*Client)(nil)
	_ orders.DocumentGateway  = (*Client)(nil)
	_ products.ProductGateway = (*Client)(nil)
)

// ── /clients ─────────────────────────────────────────────────────────────────

// List busca clientes. Un 404 "no data" es lista vacía.
func (c *Client) List(ctx context.Context, filters url.Values) ([]entity.Customer, error) {
	raw, err := c.fetch(ctx, http.MethodGet, "/clients/", filters, nil)
	if err != nil {
		if err = emptyOnNoData(err); err != nil {
			return nil, err
		}
		return []entity.Customer{}, nil
	}
	var records []clientRecord
	if raw == nil || json.Unmarshal(raw, &records) != nil {
		// Respuesta no-array: mismo tratamiento que lista vacía.
		return []entity.Customer{}, nil
	}
	out := make([]entity.Customer, 0, len(records))
	for _, r := range records {
		out = append(out, r.toEntity())
	}
	return out, nil
}

// GetByID devuelve el cliente o (nil, nil) si no existe.
func (c *Client) GetByID(ctx context.Context, id int64) (*entity.Customer, error) {
	raw, err := c.fetch(ctx, http.MethodGet, fmt.Sprintf("/clients/%d/", id), nil, nil)
	if err != nil {
		if gone, err := nilOnNotFound(err); gone || err != nil {
			return nil, err
		}
	}
	if raw == nil {
		return nil, nil
	}
	var r clientRecord
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, fmt.Errorf("vendus: deserializar cliente: %w", err)
	}
	cust := r.toEntity()
	return &cust, nil
}

// Create da de alta un cliente. Devuelve (nil, nil) si el upstream respondió
// éxito sin cuerpo usable; el caller decide si eso viola el protocolo.
func (c *Client) Create(ctx context.Context, payload dto.CreateClientPayload) (*entity.Customer, error) {
	raw, err := c.fetch(ctx, http.MethodPost, "/clients/", nil, payload)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	var r clientRecord
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, fmt.Errorf("vendus: deserializar cliente creado: %w", err)
	}
	cust := r.toEntity()
	return &cust, nil
}

// ── /documents ───────────────────────────────────────────────────────────────

// ListDocuments lista documentos con los filtros dados.
func (c *Client) ListDocuments(ctx context.Context, filters url.Values) ([]entity.Document, error) {
	raw, err := c.fetch(ctx, http.MethodGet, "/documents", filters, nil)
	if err != nil {
		if err = emptyOnNoData(err); err != nil {
			return nil, err
		}
		return []entity.Document{}, nil
	}
	var records []documentRecord
	if raw == nil || json.Unmarshal(raw, &records) != nil {
		return []entity.Document{}, nil
	}
	out := make([]entity.Document, 0, len(records))
	for _, r := range records {
		out = append(out, r.toEntity())
	}
	return out, nil
}

// GetDocument devuelve el documento o (nil, nil) si no existe.
func (c *Client) GetDocument(ctx context.Context, id int64, filters url.Values) (*entity.Document, error) {
	raw, err := c.fetch(ctx, http.MethodGet, fmt.Sprintf("/documents/%d", id), filters, nil)
	if err != nil {
		if gone, err := nilOnNotFound(err); gone || err != nil {
			return nil, err
		}
	}
	if raw == nil {
		return nil, nil
	}
	var r documentRecord
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, fmt.Errorf("vendus: deserializar documento: %w", err)
	}
	doc := r.toEntity()
	return &doc, nil
}

// CreateDocument crea un documento (encomienda). Devuelve (nil, nil) si el
// upstream respondió éxito sin cuerpo usable.
func (c *Client) CreateDocument(ctx context.Context, payload dto.VendusOrderPayload) (*entity.Document, error) {
	raw, err := c.fetch(ctx, http.MethodPost, "/documents", nil, payload)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	var r documentRecord
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, fmt.Errorf("vendus: deserializar documento creado: %w", err)
	}
	doc := r.toEntity()
	return &doc, nil
}

// ── /products ────────────────────────────────────────────────────────────────

// ListProducts lista el catálogo.
func (c *Client) ListProducts(ctx context.Context, filters url.Values) ([]entity.Product, error) {
	raw, err := c.fetch(ctx, http.MethodGet, "/products/", filters, nil)
	if err != nil {
		if err = emptyOnNoData(err); err != nil {
			return nil, err
		}
		return []entity.Product{}, nil
	}
	var records []productRecord
	if raw == nil || json.Unmarshal(raw, &records) != nil {
		return []entity.Product{}, nil
	}
	out := make([]entity.Product, 0, len(records))
	for _, r := range records {
		out = append(out, r.toEntity())
	}
	return out, nil
}

// GetProduct devuelve el producto o (nil, nil) si no existe.
func (c *Client) GetProduct(ctx context.Context, id int64) (*entity.Product, error) {
	raw, err := c.fetch(ctx, http.MethodGet, fmt.Sprintf("/products/%d/", id), nil, nil)
	if err != nil {
		if gone, err := nilOnNotFound(err); gone || err != nil {
			return nil, err
		}
	}
	if raw == nil {
		return nil, nil
	}
	var r productRecord
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, fmt.Errorf("vendus: deserializar producto: %w", err)
	}
	p := r.toEntity()
	return &p, nil
}
