package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/vendus-gateway/internal/application/clients"
	"github.com/tu-usuario/vendus-gateway/internal/application/dto"
	"github.com/tu-usuario/vendus-gateway/internal/domain"
	"github.com/tu-usuario/vendus-gateway/internal/domain/entity"
	"github.com/tu-usuario/vendus-gateway/internal/domain/repository"
	"github.com/tu-usuario/vendus-gateway/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase registro y login de cuentas del storefront. El registro
// resuelve primero el cliente en Vendus (sin duplicar) y luego crea la
// cuenta local enlazada a ese vendus_client_id.
type AuthUseCase struct {
	accounts repository.AccountRepository
	clients  *clients.ClientUseCase
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(accounts repository.AccountRepository, clientsUC *clients.ClientUseCase, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{accounts: accounts, clients: clientsUC, jwtCfg: jwtCfg}
}

// Register crea/encuentra el cliente Vendus y da de alta la cuenta local.
// El nif es obligatorio aquí: sin él Vendus no acepta el alta del cliente.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.RegisterResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if in.Nome == "" {
		return nil, fmt.Errorf("%w: el campo 'nome' es obligatorio", domain.ErrInvalidInput)
	}
	if email == "" {
		return nil, fmt.Errorf("%w: el campo 'email' es obligatorio", domain.ErrInvalidInput)
	}
	if in.NIF == "" {
		return nil, fmt.Errorf("%w: el campo 'nif' es obligatorio para crear clientes en Vendus", domain.ErrInvalidInput)
	}
	if len(in.Password) < 8 {
		return nil, fmt.Errorf("%w: la password debe tener al menos 8 caracteres", domain.ErrInvalidInput)
	}

	existing, err := uc.accounts.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	r, err := uc.clients.Resolve(ctx, dto.ResolveClientRequest{
		Nome:     in.Nome,
		Email:    email,
		Telefone: in.Telefone,
		NIF:      in.NIF,
	})
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	account := &entity.CustomerAccount{
		ID:             uuid.New().String(),
		Email:          email,
		PasswordHash:   string(hash),
		VendusClientID: r.ClientID,
		CreatedAt:      time.Now().UTC(),
	}
	if err := uc.accounts.Create(ctx, account); err != nil {
		return nil, err
	}
	return &dto.RegisterResponse{
		CreatedClient:  r.Created,
		VendusClientID: r.ClientID,
		UserID:         account.ID,
	}, nil
}

// Login verifica credenciales y devuelve un JWT con el vendus_client_id.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	account, err := uc.accounts.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, account.ID, account.VendusClientID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		AccessToken: token,
		Account:     toAccountResponse(account),
	}, nil
}

// Me devuelve la cuenta asociada al user id del token.
func (uc *AuthUseCase) Me(ctx context.Context, userID string) (*dto.AccountResponse, error) {
	account, err := uc.accounts.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, fmt.Errorf("%w: cuenta no asociada", domain.ErrNotFound)
	}
	resp := toAccountResponse(account)
	return &resp, nil
}

func toAccountResponse(a *entity.CustomerAccount) dto.AccountResponse {
	return dto.AccountResponse{
		UserID:         a.ID,
		Email:          a.Email,
		VendusClientID: a.VendusClientID,
		CreatedAt:      a.CreatedAt,
	}
}
