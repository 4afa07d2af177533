package repository

import "github.com/tu-usuario/identity-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// GetByID, GetByUsername y List devuelven el agregado resuelto (Person + Roles).
type UserRepository interface {
	// Create persiste el usuario (requiere PersonID) y asigna su ID.
	Create(user *entity.User) error
	// GetByID devuelve nil, nil si no existe.
	GetByID(id int64) (*entity.User, error)
	// GetByUsername devuelve nil, nil si no existe. Username es único.
	GetByUsername(username string) (*entity.User, error)
	List() ([]*entity.User, error)
	// Update sobreescribe username, avatar y status. Nunca toca password_hash.
	Update(user *entity.User) error
	// HasRole reporta si existe el registro de unión (userID, roleID).
	HasRole(userID, roleID int64) (bool, error)
	// AddRole inserta el registro de unión. El par es único a nivel de esquema.
	AddRole(userID, roleID int64) error
	// ReplaceRoles sustituye el conjunto completo de roles del usuario.
	ReplaceRoles(userID int64, roleIDs []int64) error
}
