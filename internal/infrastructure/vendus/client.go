// Package vendus implementa el Upstream Gateway hacia la API de Vendus.
// Toda llamada va autenticada con Basic auth (api_key como user, password
// vacía). Los fallos no se reintentan aquí: se normalizan a
// domain.UpstreamError y decide el caller.
package vendus

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tu-usuario/vendus-gateway/internal/domain"
)

// codeNoData código que Vendus devuelve con 404 cuando una búsqueda no casa
// ninguna fila. Se traduce a resultado vacío, no a error.
const codeNoData = "A004"

const maxResponseBytes = 4 << 20

// Client cliente HTTP autenticado del sistema de documentos. Se construye una
// vez en el arranque y se inyecta en los casos de uso.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// New construye el cliente. El timeout de transporte acota todas las
// llamadas; los callers pueden acotar más con su propio contexto.
func New(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// fetch ejecuta una llamada y devuelve el JSON crudo. Un status no exitoso se
// traduce a *domain.UpstreamError con el código/mensaje del upstream cuando el
// cuerpo es parseable. Un cuerpo de éxito vacío o malformado devuelve nil sin
// error (hay endpoints que responden 200 sin cuerpo).
func (c *Client) fetch(ctx context.Context, method, path string, query url.Values, body any) (json.RawMessage, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("vendus: serializar payload: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, fmt.Errorf("vendus: crear request: %w", err)
	}
	req.SetBasicAuth(c.apiKey, "")
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("vendus: timeout o cancelación: %w", ctx.Err())
		}
		return nil, fmt.Errorf("vendus: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("vendus: leer respuesta: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newUpstreamError(resp.StatusCode, raw)
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || !json.Valid(raw) {
		return nil, nil
	}
	return raw, nil
}

// errorEnvelope shape de error de la API de Vendus.
type errorEnvelope struct {
	Errors []struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"errors"`
}

func newUpstreamError(status int, raw []byte) *domain.UpstreamError {
	ue := &domain.UpstreamError{Status: status, Message: "Vendus API error"}
	if json.Valid(raw) {
		ue.Details = json.RawMessage(raw)
		var env errorEnvelope
		if err := json.Unmarshal(raw, &env); err == nil && len(env.Errors) > 0 {
			ue.Code = env.Errors[0].Code
			if env.Errors[0].Message != "" {
				ue.Message = env.Errors[0].Message
			}
		}
	} else if len(raw) > 0 {
		msg := string(raw)
		if len(msg) > 512 {
			msg = msg[:512]
		}
		ue.Message = msg
	}
	return ue
}

// emptyOnNoData absorbe el 404 "no data" de las búsquedas.
func emptyOnNoData(err error) error {
	if ue := domain.AsUpstreamError(err); ue != nil && ue.Status == http.StatusNotFound && ue.Code == codeNoData {
		return nil
	}
	return err
}

// nilOnNotFound convierte cualquier 404 de un recurso puntual en ausencia.
func nilOnNotFound(err error) (bool, error) {
	if ue := domain.AsUpstreamError(err); ue != nil && ue.Status == http.StatusNotFound {
		return true, nil
	}
	return false, err
}
