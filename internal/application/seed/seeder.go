// Package seed siembra los roles, personas y cuentas base al arrancar el proceso.
// La operación es idempotente: puede correr en cada arranque contra el mismo store
// sin duplicar registros. Todo el sembrado ocurre dentro de UNA transacción; un
// fallo de persistencia lo aborta completo sin escrituras parciales.
package seed

import (
	"context"
	"time"

	"github.com/tu-usuario/identity-api/internal/domain/entity"
	"github.com/tu-usuario/identity-api/internal/domain/repository"
	"github.com/tu-usuario/identity-api/pkg/curp"
	"github.com/tu-usuario/identity-api/pkg/logger"
	"github.com/tu-usuario/identity-api/pkg/password"
)

// TxRunner ejecuta fn dentro de una transacción con repos atados a ella.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		userRepo repository.UserRepository,
		personRepo repository.PersonRepository,
		roleRepo repository.RoleRepository,
	) error) error
}

// account triple fija (persona, credencial, rol) a garantizar en el arranque.
type account struct {
	username string
	password string // texto plano; se hashea justo antes de ensureUser
	roleName string
	person   entity.Person
}

var defaultRoles = []string{entity.RoleAdmin, entity.RoleUser, entity.RoleClient}

var defaultAccounts = []account{
	{
		username: "admin",
		password: "admin",
		roleName: entity.RoleAdmin,
		person: entity.Person{
			Name:      "mike",
			Surname:   "moreno",
			BirthDate: date(1998, time.January, 19),
			CURP:      "MOVM980119HM",
		},
	},
	{
		username: "user",
		password: "user",
		roleName: entity.RoleUser,
		person: entity.Person{
			Name:      "Luis Angel",
			Surname:   "Meza",
			Lastname:  ptr("Adan"),
			BirthDate: date(2000, time.November, 8),
			CURP:      "MEAL001108DLAHMSA3",
		},
	},
	{
		username: "client",
		password: "client",
		roleName: entity.RoleClient,
		person: entity.Person{
			Name:      "Felipe",
			Surname:   "Diaz",
			BirthDate: date(1995, time.February, 2),
			CURP:      "GHOPAD3828INBE0",
		},
	},
}

// Seeder garantiza los datos base. No es seguro ejecutarlo desde dos procesos a la
// vez por sí solo: la garantía real contra duplicados son las constraints únicas
// del esquema; el chequeo leer-luego-insertar es solo el camino rápido.
type Seeder struct {
	tx  TxRunner
	log *logger.Logger
}

// NewSeeder construye el bootstrapper.
func NewSeeder(tx TxRunner, log *logger.Logger) *Seeder {
	return &Seeder{tx: tx, log: log}
}

// Run ejecuta el sembrado completo dentro de una transacción.
func (s *Seeder) Run(ctx context.Context) error {
	return s.tx.Run(ctx, func(users repository.UserRepository, people repository.PersonRepository, roles repository.RoleRepository) error {
		// 1. Roles base, en orden estable.
		for _, name := range defaultRoles {
			if _, err := s.ensureRole(roles, entity.Role{Name: name}); err != nil {
				return err
			}
		}

		// 2. Triples (persona, usuario, rol) fijas.
		for _, acc := range defaultAccounts {
			person, err := s.ensurePerson(people, acc.person)
			if err != nil {
				return err
			}

			// El hash se calcula ANTES del chequeo de existencia: en un re-sembrado
			// se computa y se descarta. La operación sigue siendo idempotente.
			hash, err := password.Hash(acc.password)
			if err != nil {
				return err
			}
			user, err := s.ensureUser(users, entity.User{
				Username:     acc.username,
				PasswordHash: hash,
				Status:       true,
				PersonID:     person.ID,
			})
			if err != nil {
				return err
			}

			role, err := s.ensureRole(roles, entity.Role{Name: acc.roleName})
			if err != nil {
				return err
			}
			if err := s.ensureUserRole(users, user.ID, role.ID); err != nil {
				return err
			}
		}
		return nil
	})
}

// ensureRole devuelve el rol existente por nombre o persiste el candidato.
func (s *Seeder) ensureRole(roles repository.RoleRepository, candidate entity.Role) (*entity.Role, error) {
	found, err := roles.GetByName(candidate.Name)
	if err != nil {
		return nil, err
	}
	if found != nil {
		return found, nil
	}
	if err := roles.Create(&candidate); err != nil {
		return nil, err
	}
	s.log.Info().Str("role", candidate.Name).Msg("rol sembrado")
	return &candidate, nil
}

// ensurePerson devuelve la persona existente por CURP o persiste el candidato.
func (s *Seeder) ensurePerson(people repository.PersonRepository, candidate entity.Person) (*entity.Person, error) {
	candidate.CURP = curp.Normalize(candidate.CURP)
	if !curp.IsValid(candidate.CURP) {
		s.log.Warn().Str("curp", candidate.CURP).Msg("CURP sembrada no cumple el formato oficial")
	}
	found, err := people.GetByCURP(candidate.CURP)
	if err != nil {
		return nil, err
	}
	if found != nil {
		return found, nil
	}
	if err := people.Create(&candidate); err != nil {
		return nil, err
	}
	return &candidate, nil
}

// ensureUser devuelve el usuario existente por username o persiste el candidato
// (cuyo password ya viene como hash final).
func (s *Seeder) ensureUser(users repository.UserRepository, candidate entity.User) (*entity.User, error) {
	found, err := users.GetByUsername(candidate.Username)
	if err != nil {
		return nil, err
	}
	if found != nil {
		return found, nil
	}
	if err := users.Create(&candidate); err != nil {
		return nil, err
	}
	s.log.Info().Str("username", candidate.Username).Msg("usuario sembrado")
	return &candidate, nil
}

// ensureUserRole inserta el registro de unión solo si el par no existe.
func (s *Seeder) ensureUserRole(users repository.UserRepository, userID, roleID int64) error {
	exists, err := users.HasRole(userID, roleID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return users.AddRole(userID, roleID)
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func ptr(s string) *string { return &s }
