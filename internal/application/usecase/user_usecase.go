package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/identity-api/internal/application/dto"
	"github.com/tu-usuario/identity-api/internal/domain"
	"github.com/tu-usuario/identity-api/internal/domain/entity"
	"github.com/tu-usuario/identity-api/internal/domain/repository"
	"github.com/tu-usuario/identity-api/pkg/curp"
)

// Options opciones del servicio de usuarios.
// StrictPersonUpdate: true = un PUT sin datos de persona (o sobre un usuario sin
// persona) falla con ErrPersonMissing en vez de omitir la actualización en silencio.
type Options struct {
	StrictPersonUpdate bool
}

// UserUseCase aplica las reglas de negocio sobre el agregado User ↔ Person ↔ Roles.
// Cada operación pública corre completa dentro de una transacción.
type UserUseCase struct {
	tx   TxRunner
	opts Options
}

// NewUserUseCase construye el caso de uso con el runner transaccional.
func NewUserUseCase(tx TxRunner, opts Options) *UserUseCase {
	return &UserUseCase{tx: tx, opts: opts}
}

// ListAll devuelve todos los usuarios con su agregado resuelto, sin paginación.
func (uc *UserUseCase) ListAll(ctx context.Context) ([]dto.UserResponse, error) {
	var out []dto.UserResponse
	err := uc.tx.Run(ctx, func(users repository.UserRepository, _ repository.PersonRepository, _ repository.RoleRepository) error {
		list, err := users.List()
		if err != nil {
			return err
		}
		out = make([]dto.UserResponse, 0, len(list))
		for _, u := range list {
			out = append(out, *toUserResponse(u))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID devuelve un usuario por ID o ErrUserNotFound.
func (uc *UserUseCase) GetByID(ctx context.Context, id int64) (*dto.UserResponse, error) {
	var out *dto.UserResponse
	err := uc.tx.Run(ctx, func(users repository.UserRepository, _ repository.PersonRepository, _ repository.RoleRepository) error {
		u, err := users.GetByID(id)
		if err != nil {
			return err
		}
		if u == nil {
			return domain.ErrUserNotFound
		}
		out = toUserResponse(u)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ToggleStatus invierte el booleano status y persiste; no toca ningún otro campo.
func (uc *UserUseCase) ToggleStatus(ctx context.Context, id int64) (*dto.UserResponse, error) {
	var out *dto.UserResponse
	err := uc.tx.Run(ctx, func(users repository.UserRepository, _ repository.PersonRepository, _ repository.RoleRepository) error {
		u, err := users.GetByID(id)
		if err != nil {
			return err
		}
		if u == nil {
			return domain.ErrUserNotFound
		}
		u.Status = !u.Status
		if err := users.Update(u); err != nil {
			return err
		}
		out = toUserResponse(u)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Update aplica el parche sobre el agregado: username, avatar y el conjunto de
// roles se reemplazan por completo; la persona se actualiza campo a campo solo si
// tanto el usuario como el parche traen persona. El password nunca se modifica.
// Devuelve el agregado persistido y resuelto.
func (uc *UserUseCase) Update(ctx context.Context, id int64, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	var out *dto.UserResponse
	err := uc.tx.Run(ctx, func(users repository.UserRepository, people repository.PersonRepository, roles repository.RoleRepository) error {
		u, err := users.GetByID(id)
		if err != nil {
			return err
		}
		if u == nil {
			return domain.ErrUserNotFound
		}

		// Resolver el conjunto de roles del parche antes de escribir nada.
		roleIDs, err := resolveRoles(roles, in.Roles)
		if err != nil {
			return err
		}

		u.Username = in.Username
		u.Avatar = in.Avatar

		if u.Person != nil && in.Person != nil {
			if err := applyPersonPatch(u.Person, in.Person); err != nil {
				return err
			}
			if err := people.Update(u.Person); err != nil {
				return err
			}
		} else if uc.opts.StrictPersonUpdate {
			return domain.ErrPersonMissing
		}
		// Con StrictPersonUpdate apagado este es un no-op silencioso: la persona
		// queda intacta y no se reporta error.

		if err := users.Update(u); err != nil {
			return err
		}
		if err := users.ReplaceRoles(u.ID, roleIDs); err != nil {
			return err
		}

		// Releer para devolver el agregado tal como quedó persistido.
		persisted, err := users.GetByID(id)
		if err != nil {
			return err
		}
		out = toUserResponse(persisted)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// resolveRoles traduce los roles del parche a IDs existentes: por id, o por name
// cuando el id es cero. Un rol inexistente corta la operación con ErrRoleNotFound.
func resolveRoles(roles repository.RoleRepository, payload []dto.RolePayload) ([]int64, error) {
	ids := make([]int64, 0, len(payload))
	for _, rp := range payload {
		var (
			role *entity.Role
			err  error
		)
		if rp.ID > 0 {
			role, err = roles.GetByID(rp.ID)
		} else {
			role, err = roles.GetByName(rp.Name)
		}
		if err != nil {
			return nil, err
		}
		if role == nil {
			return nil, domain.ErrRoleNotFound
		}
		ids = append(ids, role.ID)
	}
	return ids, nil
}

func applyPersonPatch(p *entity.Person, in *dto.PersonPayload) error {
	birthDate, err := time.Parse(dto.BirthDateLayout, in.BirthDate)
	if err != nil {
		return fmt.Errorf("%w: birthDate debe ser YYYY-MM-DD", domain.ErrInvalidInput)
	}
	p.Name = in.Name
	p.Surname = in.Surname
	p.Lastname = in.Lastname
	p.BirthDate = birthDate
	p.CURP = curp.Normalize(in.CURP)
	return nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	resp := &dto.UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Status:   u.Status,
		Avatar:   u.Avatar,
		Roles:    make([]dto.RolePayload, 0, len(u.Roles)),
	}
	for _, r := range u.Roles {
		resp.Roles = append(resp.Roles, dto.RolePayload{ID: r.ID, Name: r.Name})
	}
	if u.Person != nil {
		resp.Person = &dto.PersonResponse{
			ID:        u.Person.ID,
			Name:      u.Person.Name,
			Surname:   u.Person.Surname,
			Lastname:  u.Person.Lastname,
			BirthDate: u.Person.BirthDate.Format(dto.BirthDateLayout),
			CURP:      u.Person.CURP,
		}
	}
	return resp
}
