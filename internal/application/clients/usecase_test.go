package clients_test

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/vendus-gateway/internal/application/clients"
	"github.com/tu-usuario/vendus-gateway/internal/application/dto"
	"github.com/tu-usuario/vendus-gateway/internal/domain"
	"github.com/tu-usuario/vendus-gateway/internal/domain/entity"
	"github.com/tu-usuario/vendus-gateway/pkg/logger"
)

// fakeClientGateway gateway en memoria para los tests del caso de uso.
type fakeClientGateway struct {
	existing    []entity.Customer
	createID    int64
	createNil   bool
	createErr   error
	lastFilters url.Values
	lastPayload dto.CreateClientPayload
	createCalls int
}

func (f *fakeClientGateway) List(_ context.Context, filters url.Values) ([]entity.Customer, error) {
	f.lastFilters = filters
	return f.existing, nil
}

func (f *fakeClientGateway) GetByID(_ context.Context, id int64) (*entity.Customer, error) {
	for i := range f.existing {
		if f.existing[i].ID == id {
			return &f.existing[i], nil
		}
	}
	return nil, nil
}

func (f *fakeClientGateway) Create(_ context.Context, payload dto.CreateClientPayload) (*entity.Customer, error) {
	f.createCalls++
	f.lastPayload = payload
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createNil {
		return nil, nil
	}
	return &entity.Customer{
		ID:       f.createID,
		Name:     payload.Name,
		Email:    payload.Email,
		Phone:    payload.Phone,
		FiscalID: payload.FiscalID,
	}, nil
}

func newClientUC(gw *fakeClientGateway) *clients.ClientUseCase {
	return clients.NewClientUseCase(gw, logger.Nop())
}

// Un cliente que ya existe con el mismo NIF no debe crearse de nuevo.
func TestResolve_ClienteExistentePorNIF(t *testing.T) {
	gw := &fakeClientGateway{
		existing: []entity.Customer{{ID: 321, Name: "Maria Sousa", FiscalID: "123456789"}},
	}
	uc := newClientUC(gw)

	r, err := uc.Resolve(context.Background(), dto.ResolveClientRequest{
		Nome: "Maria Sousa",
		NIF:  "123456789",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(321), r.ClientID)
	assert.False(t, r.Created, "no debe reportar creación para un cliente existente")
	assert.Equal(t, 0, gw.createCalls, "el gateway no debe recibir ningún alta")
	assert.Equal(t, "123456789", gw.lastFilters.Get("fiscal_id"),
		"con nif la búsqueda debe ir por filtro exacto fiscal_id")
}

// Sin NIF la búsqueda va por teléfono y gana el candidato cuyo phone coincide.
func TestResolve_ClienteExistentePorTelefone(t *testing.T) {
	gw := &fakeClientGateway{
		existing: []entity.Customer{
			{ID: 10, Name: "Otro", Phone: "911111111"},
			{ID: 77, Name: "João Pires", Phone: "912345678"},
		},
	}
	uc := newClientUC(gw)

	r, err := uc.Resolve(context.Background(), dto.ResolveClientRequest{
		Nome:     "João Pires",
		Telefone: "912345678",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(77), r.ClientID)
	assert.False(t, r.Created)
	assert.Equal(t, "912345678", gw.lastFilters.Get("q"))
}

// Sin coincidencias se crea el cliente con payload sparse y defaults fijos.
func TestResolve_CreaConNIFValido(t *testing.T) {
	gw := &fakeClientGateway{createID: 900}
	uc := newClientUC(gw)

	r, err := uc.Resolve(context.Background(), dto.ResolveClientRequest{
		Nome:     "Ana Costa",
		Email:    "ana@example.pt",
		Telefone: "913333333",
		NIF:      "123456789",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(900), r.ClientID)
	assert.True(t, r.Created)
	require.Equal(t, 1, gw.createCalls)

	p := gw.lastPayload
	assert.Equal(t, "Ana Costa", p.Name)
	assert.Equal(t, "123456789", p.FiscalID)
	assert.Equal(t, "913333333", p.Phone)
	assert.Equal(t, "ana@example.pt", p.Email)
	assert.Equal(t, "PT", p.Country)
	assert.Equal(t, "no", p.SendEmail)
	assert.Equal(t, "no", p.IRSRetention)
	require.NotNil(t, p.PaymentDays)
	assert.Equal(t, 0, *p.PaymentDays)
}

// Un NIF que no pasa el checksum se omite del alta pero el alta sigue adelante.
func TestResolve_NIFInvalidoSeOmiteDelAlta(t *testing.T) {
	gw := &fakeClientGateway{createID: 901}
	uc := newClientUC(gw)

	r, err := uc.Resolve(context.Background(), dto.ResolveClientRequest{
		Nome:     "Rui Gomes",
		Telefone: "914444444",
		NIF:      "123456780",
	})
	require.NoError(t, err)

	assert.True(t, r.Created)
	assert.Equal(t, "123456780", gw.lastFilters.Get("fiscal_id"),
		"la búsqueda usa el nif tal cual llegó")
	assert.Empty(t, gw.lastPayload.FiscalID, "el nif inválido no debe viajar en el alta")
	assert.Equal(t, "914444444", gw.lastPayload.Phone)
}

func TestResolve_ValidaEntrada(t *testing.T) {
	uc := newClientUC(&fakeClientGateway{})

	_, err := uc.Resolve(context.Background(), dto.ResolveClientRequest{Telefone: "911"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin nome debe fallar")

	_, err = uc.Resolve(context.Background(), dto.ResolveClientRequest{Nome: "Ana"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin telefone ni nif debe fallar")
}

// Éxito del upstream sin cuerpo usable: protocolo roto, error 502.
func TestResolve_RespuestaInvalidaAlCrear(t *testing.T) {
	gw := &fakeClientGateway{createNil: true}
	uc := newClientUC(gw)

	_, err := uc.Resolve(context.Background(), dto.ResolveClientRequest{
		Nome:     "Ana",
		Telefone: "915555555",
	})
	require.Error(t, err)

	ue := domain.AsUpstreamError(err)
	require.NotNil(t, ue, "debe normalizarse a UpstreamError")
	assert.Equal(t, 502, ue.Status)
}

func TestGetByID_NoExiste(t *testing.T) {
	uc := newClientUC(&fakeClientGateway{})

	_, err := uc.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
