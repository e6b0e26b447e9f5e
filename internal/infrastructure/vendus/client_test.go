package vendus_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/vendus-gateway/internal/application/dto"
	"github.com/tu-usuario/vendus-gateway/internal/domain"
	"github.com/tu-usuario/vendus-gateway/internal/infrastructure/vendus"
)

const testAPIKey = "vendus-api-key-de-test"

// Toda llamada viaja con Basic auth: api_key como usuario y password vacía.
func TestClient_BasicAuth(t *testing.T) {
	var gotUser, gotPass string
	var gotOK bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser, gotPass, gotOK = r.BasicAuth()
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := vendus.New(srv.URL, testAPIKey)
	_, err := c.List(context.Background(), nil)
	require.NoError(t, err)

	require.True(t, gotOK, "la petición debe llevar Basic auth")
	assert.Equal(t, testAPIKey, gotUser)
	assert.Empty(t, gotPass)
}

// El 404 "no data" de una búsqueda es lista vacía, no error.
func TestList_NoDataEsListaVacia(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"errors":[{"code":"A004","message":"No data"}]}`))
	}))
	defer srv.Close()

	c := vendus.New(srv.URL, testAPIKey)
	list, err := c.List(context.Background(), url.Values{"fiscal_id": {"123456789"}})
	require.NoError(t, err)
	assert.Empty(t, list)
}

// Cualquier otro error se normaliza a UpstreamError con código y mensaje.
func TestFetch_ErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"errors":[{"code":"A001","message":"Invalid register"}]}`))
	}))
	defer srv.Close()

	c := vendus.New(srv.URL, testAPIKey)
	_, err := c.CreateDocument(context.Background(), dto.VendusOrderPayload{Type: "EC"})
	require.Error(t, err)

	ue := domain.AsUpstreamError(err)
	require.NotNil(t, ue)
	assert.Equal(t, http.StatusBadRequest, ue.Status)
	assert.Equal(t, "A001", ue.Code)
	assert.Equal(t, "Invalid register", ue.Message)
	assert.NotEmpty(t, ue.Details, "el cuerpo crudo debe conservarse para diagnóstico")
}

// Un 404 sobre un recurso puntual es ausencia, no error.
func TestGetDocument_NotFoundEsAusencia(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"errors":[{"code":"A004","message":"No data"}]}`))
	}))
	defer srv.Close()

	c := vendus.New(srv.URL, testAPIKey)
	doc, err := c.GetDocument(context.Background(), 999, nil)
	require.NoError(t, err)
	assert.Nil(t, doc)
}

// Hay endpoints que responden 200 sin cuerpo; eso es (nil, nil), no pánico.
func TestCreate_CuerpoVacioEsNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := vendus.New(srv.URL, testAPIKey)
	created, err := c.Create(context.Background(), dto.CreateClientPayload{Name: "Ana"})
	require.NoError(t, err)
	assert.Nil(t, created)
}

// Vendus devuelve importes a veces como número y a veces como string.
func TestGetDocument_ImportesComoString(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/documents/55", r.URL.Path)
		w.Write([]byte(`{
			"id": 55,
			"type": "EC",
			"number": "EC 01/55",
			"amount_gross": "25.50",
			"amount_net": 20.73,
			"client": {"id": 42, "name": "Maria Sousa"},
			"items": [{"id": 11, "reference": "SKU1", "qty": "2", "price": "12.75"}]
		}`))
	}))
	defer srv.Close()

	c := vendus.New(srv.URL, testAPIKey)
	doc, err := c.GetDocument(context.Background(), 55, nil)
	require.NoError(t, err)
	require.NotNil(t, doc)

	assert.Equal(t, int64(55), doc.ID)
	require.NotNil(t, doc.AmountGross)
	assert.Equal(t, "25.5", doc.AmountGross.String())
	require.NotNil(t, doc.AmountNet)
	assert.Equal(t, "20.73", doc.AmountNet.String())
	require.NotNil(t, doc.Client)
	assert.Equal(t, "Maria Sousa", doc.Client.Name)
	require.Len(t, doc.Items, 1)
	assert.Equal(t, "2", doc.Items[0].Qty.String())
}

// Una respuesta de listado que no es array se trata como lista vacía.
func TestListDocuments_RespuestaNoArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"unexpected":"shape"}`))
	}))
	defer srv.Close()

	c := vendus.New(srv.URL, testAPIKey)
	docs, err := c.ListDocuments(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, docs)
}
