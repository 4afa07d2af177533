package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/identity-api/internal/application/dto"
	"github.com/tu-usuario/identity-api/internal/application/seed"
	"github.com/tu-usuario/identity-api/internal/application/usecase"
	"github.com/tu-usuario/identity-api/internal/domain"
	"github.com/tu-usuario/identity-api/internal/infrastructure/memory"
	"github.com/tu-usuario/identity-api/pkg/logger"
)

// seededStore devuelve un store en memoria con los datos base ya sembrados.
func seededStore(t *testing.T) *memory.Store {
	t.Helper()
	store := memory.NewStore()
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	require.NoError(t, seed.NewSeeder(store, log).Run(context.Background()))
	return store
}

func newUC(store *memory.Store, opts usecase.Options) *usecase.UserUseCase {
	return usecase.NewUserUseCase(store, opts)
}

func TestListAll_DespuesDelSembrado(t *testing.T) {
	uc := newUC(seededStore(t), usecase.Options{})

	out, err := uc.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 3)

	usernames := []string{out[0].Username, out[1].Username, out[2].Username}
	assert.Equal(t, []string{"admin", "user", "client"}, usernames)
	for _, u := range out {
		require.NotNil(t, u.Person, "el listado resuelve el agregado completo")
		require.Len(t, u.Roles, 1)
	}
}

func TestGetByID(t *testing.T) {
	uc := newUC(seededStore(t), usecase.Options{})

	out, err := uc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "admin", out.Username)
	require.NotNil(t, out.Person)
	assert.Equal(t, "MOVM980119HM", out.Person.CURP)
}

func TestGetByID_NoExiste(t *testing.T) {
	uc := newUC(seededStore(t), usecase.Options{})

	_, err := uc.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestToggleStatus_DobleInversion(t *testing.T) {
	uc := newUC(seededStore(t), usecase.Options{})
	ctx := context.Background()

	first, err := uc.ToggleStatus(ctx, 1)
	require.NoError(t, err)
	assert.False(t, first.Status, "el sembrado deja status=true; el primer toggle lo apaga")

	got, err := uc.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.False(t, got.Status, "una lectura posterior refleja el valor invertido")

	second, err := uc.ToggleStatus(ctx, 1)
	require.NoError(t, err)
	assert.True(t, second.Status, "el segundo toggle regresa al valor original")
}

func TestToggleStatus_NoTocaOtrosCampos(t *testing.T) {
	store := seededStore(t)
	uc := newUC(store, usecase.Options{})
	ctx := context.Background()

	before, err := store.Users().GetByID(1)
	require.NoError(t, err)

	_, err = uc.ToggleStatus(ctx, 1)
	require.NoError(t, err)

	after, err := store.Users().GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, before.Username, after.Username)
	assert.Equal(t, before.PasswordHash, after.PasswordHash)
	assert.Equal(t, before.Person.CURP, after.Person.CURP)
}

func TestToggleStatus_NoExiste(t *testing.T) {
	store := seededStore(t)
	uc := newUC(store, usecase.Options{})

	_, err := uc.ToggleStatus(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, _, users, _ := store.Counts()
	assert.Equal(t, 3, users, "un id inexistente no muta el store")
}

func TestUpdate_ReemplazaRolesPorCompleto(t *testing.T) {
	store := seededStore(t)
	uc := newUC(store, usecase.Options{})
	ctx := context.Background()

	// admin tiene ADMIN_ROLE; además le agregamos CLIENT_ROLE fuera del parche.
	require.NoError(t, store.Users().AddRole(1, 3))

	out, err := uc.Update(ctx, 1, dto.UpdateUserRequest{
		Username: "admin",
		Roles: []dto.RolePayload{
			{Name: "ADMIN_ROLE"},
			{Name: "USER_ROLE"},
		},
	})
	require.NoError(t, err)

	require.Len(t, out.Roles, 2)
	names := []string{out.Roles[0].Name, out.Roles[1].Name}
	assert.Contains(t, names, "ADMIN_ROLE")
	assert.Contains(t, names, "USER_ROLE")
	assert.NotContains(t, names, "CLIENT_ROLE",
		"un rol previo fuera del parche deja de estar asociado")
}

func TestUpdate_RolesPorID(t *testing.T) {
	uc := newUC(seededStore(t), usecase.Options{})

	out, err := uc.Update(context.Background(), 2, dto.UpdateUserRequest{
		Username: "user",
		Roles:    []dto.RolePayload{{ID: 1}},
	})
	require.NoError(t, err)
	require.Len(t, out.Roles, 1)
	assert.Equal(t, "ADMIN_ROLE", out.Roles[0].Name)
}

func TestUpdate_RolInexistente(t *testing.T) {
	store := seededStore(t)
	uc := newUC(store, usecase.Options{})

	_, err := uc.Update(context.Background(), 1, dto.UpdateUserRequest{
		Username: "admin",
		Roles:    []dto.RolePayload{{Name: "SUPER_ROLE"}},
	})
	assert.ErrorIs(t, err, domain.ErrRoleNotFound)

	// El usuario conserva su rol original.
	u, err := store.Users().GetByID(1)
	require.NoError(t, err)
	require.Len(t, u.Roles, 1)
	assert.Equal(t, "ADMIN_ROLE", u.Roles[0].Name)
}

func TestUpdate_SinPersonaEnParche_NoTocaLaPersona(t *testing.T) {
	store := seededStore(t)
	uc := newUC(store, usecase.Options{})

	before, err := store.Users().GetByID(1)
	require.NoError(t, err)

	out, err := uc.Update(context.Background(), 1, dto.UpdateUserRequest{
		Username: "administrador",
		Roles:    []dto.RolePayload{{Name: "ADMIN_ROLE"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "administrador", out.Username)

	after, err := store.Users().GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, before.Person.CURP, after.Person.CURP, "la persona queda intacta")
	assert.Equal(t, before.Person.Name, after.Person.Name)
	assert.Equal(t, before.Person.BirthDate, after.Person.BirthDate)
}

func TestUpdate_ConPersonaEnParche_ActualizaCampoACampo(t *testing.T) {
	store := seededStore(t)
	uc := newUC(store, usecase.Options{})

	lastname := "Olvera"
	out, err := uc.Update(context.Background(), 1, dto.UpdateUserRequest{
		Username: "admin",
		Roles:    []dto.RolePayload{{Name: "ADMIN_ROLE"}},
		Person: &dto.PersonPayload{
			Name:      "Miguel",
			Surname:   "Moreno",
			Lastname:  &lastname,
			BirthDate: "1998-01-19",
			CURP:      "movm980119hm", // se normaliza a mayúsculas
		},
	})
	require.NoError(t, err)

	require.NotNil(t, out.Person)
	assert.Equal(t, "Miguel", out.Person.Name)
	assert.Equal(t, "MOVM980119HM", out.Person.CURP)
	require.NotNil(t, out.Person.Lastname)
	assert.Equal(t, "Olvera", *out.Person.Lastname)

	// El cambio es visible en el store, no solo en la respuesta.
	u, err := store.Users().GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, "Miguel", u.Person.Name)
}

func TestUpdate_BirthDateInvalida(t *testing.T) {
	uc := newUC(seededStore(t), usecase.Options{})

	_, err := uc.Update(context.Background(), 1, dto.UpdateUserRequest{
		Username: "admin",
		Roles:    []dto.RolePayload{{Name: "ADMIN_ROLE"}},
		Person: &dto.PersonPayload{
			Name:      "Miguel",
			Surname:   "Moreno",
			BirthDate: "19/01/1998",
			CURP:      "MOVM980119HM",
		},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdate_ModoEstricto_FallaSinPersona(t *testing.T) {
	uc := newUC(seededStore(t), usecase.Options{StrictPersonUpdate: true})

	_, err := uc.Update(context.Background(), 1, dto.UpdateUserRequest{
		Username: "admin",
		Roles:    []dto.RolePayload{{Name: "ADMIN_ROLE"}},
	})
	assert.ErrorIs(t, err, domain.ErrPersonMissing)
}

func TestUpdate_NuncaModificaPassword(t *testing.T) {
	store := seededStore(t)
	uc := newUC(store, usecase.Options{})

	before, err := store.Users().GetByID(1)
	require.NoError(t, err)

	_, err = uc.Update(context.Background(), 1, dto.UpdateUserRequest{
		Username: "otro",
		Roles:    []dto.RolePayload{{Name: "USER_ROLE"}},
	})
	require.NoError(t, err)

	after, err := store.Users().GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, before.PasswordHash, after.PasswordHash)
}

func TestUpdate_NoExiste(t *testing.T) {
	uc := newUC(seededStore(t), usecase.Options{})

	_, err := uc.Update(context.Background(), 999, dto.UpdateUserRequest{Username: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
