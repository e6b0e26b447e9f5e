package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/vendus-gateway/internal/domain"
	"github.com/tu-usuario/vendus-gateway/internal/domain/entity"
	"github.com/tu-usuario/vendus-gateway/internal/domain/repository"
)

var _ repository.AccountRepository = (*AccountRepo)(nil)

// AccountRepo implementación de AccountRepository (tabla customer_accounts).
type AccountRepo struct {
	q Querier
}

// NewAccountRepository construye el adaptador.
func NewAccountRepository(q Querier) *AccountRepo {
	return &AccountRepo{q: q}
}

// Create persiste una cuenta nueva. Email único.
func (r *AccountRepo) Create(ctx context.Context, account *entity.CustomerAccount) error {
	query := `
		INSERT INTO customer_accounts (id, email, password_hash, vendus_client_id, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query,
		account.ID, account.Email, account.PasswordHash, account.VendusClientID, account.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert customer_account: %w", err)
	}
	return nil
}

// GetByID obtiene una cuenta por ID; (nil, nil) si no existe.
func (r *AccountRepo) GetByID(ctx context.Context, id string) (*entity.CustomerAccount, error) {
	query := `
		SELECT id, email, password_hash, vendus_client_id, created_at
		FROM customer_accounts WHERE id = $1`
	return r.get(ctx, query, id)
}

// GetByEmail obtiene una cuenta por email; (nil, nil) si no existe.
func (r *AccountRepo) GetByEmail(ctx context.Context, email string) (*entity.CustomerAccount, error) {
	query := `
		SELECT id, email, password_hash, vendus_client_id, created_at
		FROM customer_accounts WHERE email = $1`
	return r.get(ctx, query, email)
}

func (r *AccountRepo) get(ctx context.Context, query string, arg any) (*entity.CustomerAccount, error) {
	var a entity.CustomerAccount
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&a.ID, &a.Email, &a.PasswordHash, &a.VendusClientID, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer_account: %w", err)
	}
	return &a, nil
}
