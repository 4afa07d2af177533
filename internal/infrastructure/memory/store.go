// Package memory implementa los puertos de persistencia sobre mapas en memoria.
// Se usa en tests unitarios para ejercitar sembrado y casos de uso sin PostgreSQL.
// Emula las constraints únicas del esquema (username, curp, roles.name y el par
// user_role); no emula rollback: un callback que falla no debe haber escrito antes
// nada que el test vaya a observar.
package memory

import (
	"context"
	"sync"

	"github.com/tu-usuario/identity-api/internal/domain"
	"github.com/tu-usuario/identity-api/internal/domain/entity"
	"github.com/tu-usuario/identity-api/internal/domain/repository"
)

// Store contiene las tablas en memoria y reparte vistas de repositorio sobre ellas.
type Store struct {
	mu sync.Mutex

	people    map[int64]entity.Person
	roles     map[int64]entity.Role
	users     map[int64]entity.User
	userRoles map[[2]int64]bool

	nextPersonID int64
	nextRoleID   int64
	nextUserID   int64
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{
		people:    make(map[int64]entity.Person),
		roles:     make(map[int64]entity.Role),
		users:     make(map[int64]entity.User),
		userRoles: make(map[[2]int64]bool),
	}
}

// Run cumple los contratos TxRunner de seed y usecase: entrega repos atados al store.
func (s *Store) Run(ctx context.Context, fn func(
	userRepo repository.UserRepository,
	personRepo repository.PersonRepository,
	roleRepo repository.RoleRepository,
) error) error {
	return fn(&userRepo{s: s}, &personRepo{s: s}, &roleRepo{s: s})
}

// Users, People, Roles y UserRoles exponen los repos directamente para preparar
// y verificar estado en tests.
func (s *Store) Users() repository.UserRepository    { return &userRepo{s: s} }
func (s *Store) People() repository.PersonRepository { return &personRepo{s: s} }
func (s *Store) Roles() repository.RoleRepository    { return &roleRepo{s: s} }

// Counts devuelve los conteos de filas (people, roles, users, user_roles).
func (s *Store) Counts() (people, roles, users, userRoles int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.people), len(s.roles), len(s.users), len(s.userRoles)
}

// ── RoleRepository ────────────────────────────────────────────────────────────

type roleRepo struct{ s *Store }

var _ repository.RoleRepository = (*roleRepo)(nil)

func (r *roleRepo) Create(role *entity.Role) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.roles {
		if existing.Name == role.Name {
			return domain.ErrDuplicate
		}
	}
	r.s.nextRoleID++
	role.ID = r.s.nextRoleID
	r.s.roles[role.ID] = *role
	return nil
}

func (r *roleRepo) GetByID(id int64) (*entity.Role, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if role, ok := r.s.roles[id]; ok {
		return &role, nil
	}
	return nil, nil
}

func (r *roleRepo) GetByName(name string) (*entity.Role, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, role := range r.s.roles {
		if role.Name == name {
			role := role
			return &role, nil
		}
	}
	return nil, nil
}

func (r *roleRepo) List() ([]*entity.Role, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list := make([]*entity.Role, 0, len(r.s.roles))
	for id := int64(1); id <= r.s.nextRoleID; id++ {
		if role, ok := r.s.roles[id]; ok {
			role := role
			list = append(list, &role)
		}
	}
	return list, nil
}

// ── PersonRepository ──────────────────────────────────────────────────────────

type personRepo struct{ s *Store }

var _ repository.PersonRepository = (*personRepo)(nil)

func (r *personRepo) Create(person *entity.Person) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.people {
		if existing.CURP == person.CURP {
			return domain.ErrDuplicate
		}
	}
	r.s.nextPersonID++
	person.ID = r.s.nextPersonID
	r.s.people[person.ID] = *person
	return nil
}

func (r *personRepo) GetByID(id int64) (*entity.Person, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if p, ok := r.s.people[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (r *personRepo) GetByCURP(curp string) (*entity.Person, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.people {
		if p.CURP == curp {
			p := p
			return &p, nil
		}
	}
	return nil, nil
}

func (r *personRepo) Update(person *entity.Person) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.people[person.ID]; !ok {
		return domain.ErrPersonMissing
	}
	for id, existing := range r.s.people {
		if id != person.ID && existing.CURP == person.CURP {
			return domain.ErrDuplicate
		}
	}
	r.s.people[person.ID] = *person
	return nil
}

// ── UserRepository ────────────────────────────────────────────────────────────

type userRepo struct{ s *Store }

var _ repository.UserRepository = (*userRepo)(nil)

func (r *userRepo) Create(user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.users {
		if existing.Username == user.Username {
			return domain.ErrDuplicate
		}
	}
	r.s.nextUserID++
	user.ID = r.s.nextUserID
	stored := *user
	stored.Person = nil
	stored.Roles = nil
	r.s.users[stored.ID] = stored
	return nil
}

func (r *userRepo) GetByID(id int64) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if u, ok := r.s.users[id]; ok {
		return r.resolve(u), nil
	}
	return nil, nil
}

func (r *userRepo) GetByUsername(username string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Username == username {
			return r.resolve(u), nil
		}
	}
	return nil, nil
}

func (r *userRepo) List() ([]*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list := make([]*entity.User, 0, len(r.s.users))
	for id := int64(1); id <= r.s.nextUserID; id++ {
		if u, ok := r.s.users[id]; ok {
			list = append(list, r.resolve(u))
		}
	}
	return list, nil
}

// resolve arma el agregado (persona + roles) de una copia del usuario. Llamar con lock.
func (r *userRepo) resolve(u entity.User) *entity.User {
	if p, ok := r.s.people[u.PersonID]; ok {
		p := p
		u.Person = &p
	}
	u.Roles = nil
	for roleID := int64(1); roleID <= r.s.nextRoleID; roleID++ {
		if r.s.userRoles[[2]int64{u.ID, roleID}] {
			u.Roles = append(u.Roles, r.s.roles[roleID])
		}
	}
	return &u
}

func (r *userRepo) Update(user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored, ok := r.s.users[user.ID]
	if !ok {
		return domain.ErrUserNotFound
	}
	for id, existing := range r.s.users {
		if id != user.ID && existing.Username == user.Username {
			return domain.ErrDuplicate
		}
	}
	stored.Username = user.Username
	stored.Avatar = user.Avatar
	stored.Status = user.Status
	// password_hash intencionalmente no se toca, como en el adaptador real
	r.s.users[user.ID] = stored
	return nil
}

func (r *userRepo) HasRole(userID, roleID int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.userRoles[[2]int64{userID, roleID}], nil
}

func (r *userRepo) AddRole(userID, roleID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	key := [2]int64{userID, roleID}
	if r.s.userRoles[key] {
		return domain.ErrDuplicate
	}
	if _, ok := r.s.roles[roleID]; !ok {
		return domain.ErrRoleNotFound
	}
	r.s.userRoles[key] = true
	return nil
}

func (r *userRepo) ReplaceRoles(userID int64, roleIDs []int64) error {
	r.s.mu.Lock()
	for key := range r.s.userRoles {
		if key[0] == userID {
			delete(r.s.userRoles, key)
		}
	}
	r.s.mu.Unlock()
	for _, roleID := range roleIDs {
		if err := r.AddRole(userID, roleID); err != nil {
			return err
		}
	}
	return nil
}
