package usecase

import (
	"context"

	"github.com/tu-usuario/identity-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con repos atados a ella.
// Si fn devuelve error, nada se persiste (rollback total del agregado).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		userRepo repository.UserRepository,
		personRepo repository.PersonRepository,
		roleRepo repository.RoleRepository,
	) error) error
}
