package repository

import (
	"context"

	"github.com/tu-usuario/vendus-gateway/internal/domain/entity"
)

// AccountRepository define el puerto de persistencia para las cuentas de
// clientes del storefront (account store).
type AccountRepository interface {
	Create(ctx context.Context, account *entity.CustomerAccount) error
	GetByID(ctx context.Context, id string) (*entity.CustomerAccount, error)
	GetByEmail(ctx context.Context, email string) (*entity.CustomerAccount, error)
}
