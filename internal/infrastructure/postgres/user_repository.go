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

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación de UserRepository (usable con pool o tx).
// Las lecturas devuelven el agregado completo: usuario + persona + roles.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userColumns = `u.id, u.username, u.password_hash, u.status, u.avatar, u.person_id,
		p.id, p.name, p.surname, p.lastname, p.birth_date, p.curp`

// Create persiste un nuevo usuario (requiere PersonID) y asigna su ID.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (username, password_hash, status, avatar, person_id)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		user.Username, user.PasswordHash, user.Status, user.Avatar, user.PersonID,
	).Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID con su persona y roles.
func (r *UserRepo) GetByID(id int64) (*entity.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users u JOIN people p ON p.id = u.person_id
		WHERE u.id = $1`
	return r.queryOne(query, id)
}

// GetByUsername obtiene un usuario por su username único, con persona y roles.
func (r *UserRepo) GetByUsername(username string) (*entity.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users u JOIN people p ON p.id = u.person_id
		WHERE u.username = $1`
	return r.queryOne(query, username)
}

func (r *UserRepo) queryOne(query string, arg any) (*entity.User, error) {
	u, err := scanUser(r.q.QueryRow(context.Background(), query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	if err := r.loadRoles(u); err != nil {
		return nil, err
	}
	return u, nil
}

// List devuelve todos los usuarios con persona y roles (sin paginación, por contrato).
func (r *UserRepo) List() ([]*entity.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users u JOIN people p ON p.id = u.person_id
		ORDER BY u.id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, u := range list {
		if err := r.loadRoles(u); err != nil {
			return nil, err
		}
	}
	return list, nil
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	var p entity.Person
	err := row.Scan(
		&u.ID, &u.Username, &u.PasswordHash, &u.Status, &u.Avatar, &u.PersonID,
		&p.ID, &p.Name, &p.Surname, &p.Lastname, &p.BirthDate, &p.CURP,
	)
	if err != nil {
		return nil, err
	}
	u.Person = &p
	return &u, nil
}

func (r *UserRepo) loadRoles(u *entity.User) error {
	query := `
		SELECT r.id, r.name FROM roles r
		JOIN user_roles ur ON ur.role_id = r.id
		WHERE ur.user_id = $1 ORDER BY r.id`
	rows, err := r.q.Query(context.Background(), query, u.ID)
	if err != nil {
		return fmt.Errorf("load roles: %w", err)
	}
	defer rows.Close()
	u.Roles = nil
	for rows.Next() {
		var role entity.Role
		if err := rows.Scan(&role.ID, &role.Name); err != nil {
			return fmt.Errorf("scan role: %w", err)
		}
		u.Roles = append(u.Roles, role)
	}
	return rows.Err()
}

// Update sobreescribe username, avatar y status. El hash de password nunca se toca aquí.
func (r *UserRepo) Update(user *entity.User) error {
	query := `UPDATE users SET username = $2, avatar = $3, status = $4 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, user.ID, user.Username, user.Avatar, user.Status)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// HasRole reporta si existe el registro de unión (userID, roleID).
func (r *UserRepo) HasRole(userID, roleID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM user_roles WHERE user_id = $1 AND role_id = $2)`
	var exists bool
	if err := r.q.QueryRow(context.Background(), query, userID, roleID).Scan(&exists); err != nil {
		return false, fmt.Errorf("has role: %w", err)
	}
	return exists, nil
}

// AddRole inserta el registro de unión (userID, roleID).
func (r *UserRepo) AddRole(userID, roleID int64) error {
	query := `INSERT INTO user_roles (user_id, role_id) VALUES ($1, $2)`
	if _, err := r.q.Exec(context.Background(), query, userID, roleID); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("add user role: %w", err)
	}
	return nil
}

// ReplaceRoles sustituye el conjunto completo de roles del usuario.
func (r *UserRepo) ReplaceRoles(userID int64, roleIDs []int64) error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM user_roles WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("clear user roles: %w", err)
	}
	for _, roleID := range roleIDs {
		if err := r.AddRole(userID, roleID); err != nil {
			return err
		}
	}
	return nil
}
