package clients

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/tu-usuario/vendus-gateway/internal/application/dto"
	"github.com/tu-usuario/vendus-gateway/internal/domain"
	"github.com/tu-usuario/vendus-gateway/internal/domain/entity"
	"github.com/tu-usuario/vendus-gateway/internal/domain/fiscal"
	"github.com/tu-usuario/vendus-gateway/pkg/logger"
)

// Defaults fijos que Vendus espera en el alta de clientes.
const (
	defaultCountry = "PT"
	sendEmailNo    = "no"
	irsRetentionNo = "no"
)

// Vencimiento inmediato.
var paymentDueNow = 0

// ClientUseCase resolución idempotente de clientes y proxy de consulta.
type ClientUseCase struct {
	gateway ClientGateway
	log     *logger.Logger
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(gateway ClientGateway, log *logger.Logger) *ClientUseCase {
	return &ClientUseCase{gateway: gateway, log: log}
}

// Resolve encuentra o crea el cliente en Vendus sin duplicar.
//
// Dedup: con nif busca por filtro exacto fiscal_id; si no, búsqueda libre con
// el teléfono. Gana el primer candidato cuyo phone o fiscal_id coincide con la
// entrada, en el orden en que el upstream los devuelva. Si nadie coincide se
// crea el cliente con payload sparse; un NIF que no pasa el checksum se omite
// del alta en lugar de rechazar la petición (degrada a "sin NIF").
func (uc *ClientUseCase) Resolve(ctx context.Context, in dto.ResolveClientRequest) (*dto.ResolveClientResponse, error) {
	nome := strings.TrimSpace(in.Nome)
	email := strings.TrimSpace(in.Email)
	telefone := strings.TrimSpace(in.Telefone)
	nif := strings.TrimSpace(in.NIF)

	if nome == "" {
		return nil, fmt.Errorf("%w: el campo 'nome' es obligatorio", domain.ErrInvalidInput)
	}
	if telefone == "" && nif == "" {
		return nil, fmt.Errorf("%w: se requiere 'telefone' o 'nif'", domain.ErrInvalidInput)
	}

	var candidates []entity.Customer
	var err error
	if nif != "" {
		candidates, err = uc.gateway.List(ctx, url.Values{"fiscal_id": {nif}})
	} else {
		candidates, err = uc.gateway.List(ctx, url.Values{"q": {telefone}})
	}
	if err != nil {
		return nil, err
	}

	for _, c := range candidates {
		if (telefone != "" && c.Phone == telefone) || (nif != "" && c.FiscalID == nif) {
			return &dto.ResolveClientResponse{ClientID: c.ID, Created: false}, nil
		}
	}

	payload := dto.CreateClientPayload{
		Name:         nome,
		Country:      defaultCountry,
		SendEmail:    sendEmailNo,
		IRSRetention: irsRetentionNo,
		PaymentDays:  &paymentDueNow,
	}
	if nif != "" {
		if fiscal.ValidNIF(nif) {
			payload.FiscalID = nif
		} else {
			uc.log.Warn().Str("nif", nif).Msg("NIF con checksum inválido, se omite del alta")
		}
	}
	if telefone != "" {
		payload.Phone = telefone
	}
	if email != "" {
		payload.Email = email
	}

	created, err := uc.gateway.Create(ctx, payload)
	if err != nil {
		return nil, err
	}
	if created == nil || created.ID == 0 {
		// El upstream aceptó pero no devolvió nada usable.
		return nil, &domain.UpstreamError{Status: 502, Message: "respuesta inválida de Vendus al crear cliente"}
	}
	return &dto.ResolveClientResponse{ClientID: created.ID, Created: true}, nil
}

// List proxy de listado con filtros ya filtrados por el handler.
func (uc *ClientUseCase) List(ctx context.Context, filters url.Values) ([]dto.ClientResponse, error) {
	list, err := uc.gateway.List(ctx, filters)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClientResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toClientResponse(&c))
	}
	return out, nil
}

// GetByID detalle de un cliente.
func (uc *ClientUseCase) GetByID(ctx context.Context, id int64) (*dto.ClientResponse, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: id de cliente inválido", domain.ErrInvalidInput)
	}
	c, err := uc.gateway.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	resp := toClientResponse(c)
	return &resp, nil
}

func toClientResponse(c *entity.Customer) dto.ClientResponse {
	return dto.ClientResponse{
		ID:       c.ID,
		Name:     c.Name,
		Email:    c.Email,
		Phone:    c.Phone,
		FiscalID: c.FiscalID,
	}
}
