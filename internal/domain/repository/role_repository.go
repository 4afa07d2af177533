package repository

import "github.com/tu-usuario/identity-api/internal/domain/entity"

// RoleRepository define el puerto de persistencia para Role (DIP).
type RoleRepository interface {
	// Create persiste el rol y asigna su ID.
	Create(role *entity.Role) error
	// GetByID devuelve nil, nil si no existe.
	GetByID(id int64) (*entity.Role, error)
	// GetByName devuelve nil, nil si no existe. Name es único.
	GetByName(name string) (*entity.Role, error)
	List() ([]*entity.Role, error)
}
