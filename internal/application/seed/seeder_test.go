package seed_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/identity-api/internal/application/seed"
	"github.com/tu-usuario/identity-api/internal/infrastructure/memory"
	"github.com/tu-usuario/identity-api/pkg/logger"
	"github.com/tu-usuario/identity-api/pkg/password"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "test", Level: "error"})
}

func TestSeeder_StoreVacio(t *testing.T) {
	store := memory.NewStore()
	seeder := seed.NewSeeder(store, testLogger())

	require.NoError(t, seeder.Run(context.Background()))

	people, roles, users, userRoles := store.Counts()
	assert.Equal(t, 3, people, "tres personas sembradas")
	assert.Equal(t, 3, roles, "tres roles sembrados")
	assert.Equal(t, 3, users, "tres usuarios sembrados")
	assert.Equal(t, 3, userRoles, "una asignación de rol por usuario")

	// Roles en orden estable de creación.
	roleList, err := store.Roles().List()
	require.NoError(t, err)
	require.Len(t, roleList, 3)
	assert.Equal(t, "ADMIN_ROLE", roleList[0].Name)
	assert.Equal(t, "USER_ROLE", roleList[1].Name)
	assert.Equal(t, "CLIENT_ROLE", roleList[2].Name)
}

func TestSeeder_Idempotencia(t *testing.T) {
	store := memory.NewStore()
	seeder := seed.NewSeeder(store, testLogger())

	require.NoError(t, seeder.Run(context.Background()))
	p1, r1, u1, ur1 := store.Counts()

	// Segunda corrida contra el mismo store: conteos idénticos, sin duplicados.
	require.NoError(t, seeder.Run(context.Background()))
	p2, r2, u2, ur2 := store.Counts()

	assert.Equal(t, p1, p2, "re-sembrar no duplica personas")
	assert.Equal(t, r1, r2, "re-sembrar no duplica roles")
	assert.Equal(t, u1, u2, "re-sembrar no duplica usuarios")
	assert.Equal(t, ur1, ur2, "re-sembrar no duplica asignaciones de rol")
}

func TestSeeder_CuentasBase(t *testing.T) {
	store := memory.NewStore()
	seeder := seed.NewSeeder(store, testLogger())
	require.NoError(t, seeder.Run(context.Background()))

	cases := []struct {
		username string
		role     string
		curp     string
	}{
		{"admin", "ADMIN_ROLE", "MOVM980119HM"},
		{"user", "USER_ROLE", "MEAL001108DLAHMSA3"},
		{"client", "CLIENT_ROLE", "GHOPAD3828INBE0"},
	}
	for _, tc := range cases {
		t.Run(tc.username, func(t *testing.T) {
			u, err := store.Users().GetByUsername(tc.username)
			require.NoError(t, err)
			require.NotNil(t, u, "la cuenta %s debe existir", tc.username)

			assert.True(t, u.Status, "las cuentas sembradas nacen activas")
			require.NotNil(t, u.Person, "cada usuario tiene exactamente una persona")
			assert.Equal(t, tc.curp, u.Person.CURP)
			require.Len(t, u.Roles, 1)
			assert.Equal(t, tc.role, u.Roles[0].Name)

			// La credencial sembrada verifica contra el hash persistido.
			assert.True(t, password.Verify(tc.username, u.PasswordHash))
		})
	}
}

func TestSeeder_StoreParcial(t *testing.T) {
	// Un store con parte de los datos (solo la primera corrida parcial simulada
	// sembrando una vez y nada más) completa lo faltante sin tocar lo existente.
	store := memory.NewStore()
	seeder := seed.NewSeeder(store, testLogger())
	require.NoError(t, seeder.Run(context.Background()))

	admin, err := store.Users().GetByUsername("admin")
	require.NoError(t, err)
	originalHash := admin.PasswordHash

	require.NoError(t, seeder.Run(context.Background()))

	again, err := store.Users().GetByUsername("admin")
	require.NoError(t, err)
	assert.Equal(t, originalHash, again.PasswordHash,
		"el hash recalculado en el re-sembrado se descarta si la cuenta ya existe")
	assert.Equal(t, admin.ID, again.ID)
}
