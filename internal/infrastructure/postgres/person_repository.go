package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/identity-api/internal/domain"
	"github.com/tu-usuario/identity-api/internal/domain/entity"
	"github.com/tu-usuario/identity-api/internal/domain/repository"
)

var _ repository.PersonRepository = (*PersonRepo)(nil)

// PersonRepo implementación de PersonRepository (usable con pool o tx).
type PersonRepo struct {
	q Querier
}

// NewPersonRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPersonRepository(q Querier) *PersonRepo {
	return &PersonRepo{q: q}
}

// Create persiste una nueva persona y asigna su ID.
func (r *PersonRepo) Create(person *entity.Person) error {
	query := `
		INSERT INTO people (name, surname, lastname, birth_date, curp)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		person.Name, person.Surname, person.Lastname, person.BirthDate, person.CURP,
	).Scan(&person.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert person: %w", err)
	}
	return nil
}

// GetByID obtiene una persona por ID.
func (r *PersonRepo) GetByID(id int64) (*entity.Person, error) {
	query := `SELECT id, name, surname, lastname, birth_date, curp FROM people WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get person by id")
}

// GetByCURP obtiene una persona por su CURP única.
func (r *PersonRepo) GetByCURP(curp string) (*entity.Person, error) {
	query := `SELECT id, name, surname, lastname, birth_date, curp FROM people WHERE curp = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, curp), "get person by curp")
}

func (r *PersonRepo) scanOne(row pgx.Row, op string) (*entity.Person, error) {
	var p entity.Person
	err := row.Scan(&p.ID, &p.Name, &p.Surname, &p.Lastname, &p.BirthDate, &p.CURP)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}

// Update sobreescribe todos los campos de la persona.
func (r *PersonRepo) Update(person *entity.Person) error {
	query := `
		UPDATE people SET name = $2, surname = $3, lastname = $4, birth_date = $5, curp = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		person.ID, person.Name, person.Surname, person.Lastname, person.BirthDate, person.CURP,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update person: %w", err)
	}
	return nil
}
