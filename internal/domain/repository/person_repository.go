package repository

import "github.com/tu-usuario/identity-api/internal/domain/entity"

// PersonRepository define el puerto de persistencia para Person (DIP).
type PersonRepository interface {
	// Create persiste la persona y asigna su ID.
	Create(person *entity.Person) error
	// GetByID devuelve nil, nil si no existe.
	GetByID(id int64) (*entity.Person, error)
	// GetByCURP devuelve nil, nil si no existe. La CURP es única.
	GetByCURP(curp string) (*entity.Person, error)
	// Update sobreescribe todos los campos de la persona.
	Update(person *entity.Person) error
}
