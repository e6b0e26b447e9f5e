package orders_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/vendus-gateway/internal/application/dto"
	"github.com/tu-usuario/vendus-gateway/internal/application/orders"
	"github.com/tu-usuario/vendus-gateway/internal/domain"
	"github.com/tu-usuario/vendus-gateway/internal/domain/entity"
)

func decimalFromInt(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func decimalPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestValidateDraft_Errores(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*dto.DraftOrder)
	}{
		{"sin register_id", func(d *dto.DraftOrder) { d.RegisterID = 0 }},
		{"sin items", func(d *dto.DraftOrder) { d.Items = nil }},
		{"sin client_id", func(d *dto.DraftOrder) { d.ClientID = nil }},
		{"qty cero", func(d *dto.DraftOrder) { d.Items[0].Qty = decimal.Zero }},
		{"qty negativa", func(d *dto.DraftOrder) { d.Items[0].Qty = decimalFromInt(-1) }},
		{"linea sin id ni reference", func(d *dto.DraftOrder) { d.Items[0].Reference = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			draft := validDraft()
			tc.mutate(&draft)
			_, err := orders.ValidateDraft(&draft)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestValidateDraft_ClienteEmbebido(t *testing.T) {
	draft := validDraft()
	draft.ClientID = nil
	draft.Client = &dto.DraftClient{ID: int64Ptr(42)}

	clientID, err := orders.ValidateDraft(&draft)
	require.NoError(t, err)
	assert.Equal(t, int64(42), clientID)
}

// El payload saliente es sparse: los opcionales ausentes no aparecen como
// claves, ni siquiera con valor cero.
func TestBuildDocumentPayload_EsSparse(t *testing.T) {
	draft := validDraft()
	payload := orders.BuildDocumentPayload(&draft, 42)

	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	body := string(raw)

	assert.Contains(t, body, `"type":"EC"`)
	assert.Contains(t, body, `"register_id":7`)
	assert.Contains(t, body, `"client_id":42`)
	assert.Contains(t, body, `"reference":"SKU1"`)

	for _, absent := range []string{`"price"`, `"discount"`, `"tax_id"`, `"notes"`, `"date"`, `"date_due"`, `"date_supply"`, `"external_reference"`, `"mode"`, `"stock_operation"`} {
		assert.NotContains(t, body, absent, "el opcional ausente no debe viajar")
	}
}

func TestBuildDocumentPayload_ConservaOpcionales(t *testing.T) {
	draft := validDraft()
	draft.Date = "2026-08-29"
	draft.Mode = "tests"
	draft.Items[0].Price = decimalPtr("12.50")

	payload := orders.BuildDocumentPayload(&draft, 42)

	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	body := string(raw)
	assert.Contains(t, body, `"date":"2026-08-29"`)
	assert.Contains(t, body, `"mode":"tests"`)
	assert.Contains(t, body, `"price":"12.5"`)
}

func TestNormalizeSummary_ConsumidorFinal(t *testing.T) {
	doc := entity.Document{ID: 1, Number: "EC 01/1", Type: entity.TypeOrder}

	s := orders.NormalizeSummary(&doc)

	assert.Equal(t, "Consumidor Final", s.ClientName)
	assert.Empty(t, s.ClientEmail)
	assert.Nil(t, s.ClientID)
}

func TestNormalizeSummary_ClienteEmbebido(t *testing.T) {
	doc := entity.Document{
		ID:     2,
		Client: &entity.DocumentClient{ID: 42, Name: "Maria Sousa", Email: "maria@example.pt"},
	}

	s := orders.NormalizeSummary(&doc)

	require.NotNil(t, s.ClientID)
	assert.Equal(t, int64(42), *s.ClientID)
	assert.Equal(t, "Maria Sousa", s.ClientName)
	assert.Equal(t, "maria@example.pt", s.ClientEmail)
}

func TestNormalizeDetail_ConLineas(t *testing.T) {
	doc := entity.Document{
		ID:          3,
		AmountGross: decimalPtr("25.00"),
		Items: []entity.DocumentItem{
			{ID: 11, Reference: "SKU1", Title: "Bacalhau", Qty: decimalFromInt(2), Price: decimalPtr("12.50")},
		},
	}

	det := orders.NormalizeDetail(&doc)

	require.Len(t, det.Items, 1)
	assert.Equal(t, "SKU1", det.Items[0].Reference)
	assert.True(t, det.Items[0].Qty.Equal(decimalFromInt(2)))
	require.NotNil(t, det.AmountGross)
	assert.True(t, det.AmountGross.Equal(decimal.RequireFromString("25.00")))
}
