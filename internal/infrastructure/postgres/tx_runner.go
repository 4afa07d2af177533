package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/identity-api/internal/application/seed"
	"github.com/tu-usuario/identity-api/internal/application/usecase"
	"github.com/tu-usuario/identity-api/internal/domain/repository"
)

// Ensure TxRunner implements usecase.TxRunner and seed.TxRunner.
var _ usecase.TxRunner = (*TxRunner)(nil)
var _ seed.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
// Cualquier error de fn o de la tx deja el agregado sin escrituras parciales.
func (r *TxRunner) Run(ctx context.Context, fn func(
	userRepo repository.UserRepository,
	personRepo repository.PersonRepository,
	roleRepo repository.RoleRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	userRepo := NewUserRepository(tx)
	personRepo := NewPersonRepository(tx)
	roleRepo := NewRoleRepository(tx)

	if err := fn(userRepo, personRepo, roleRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
