package password_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/identity-api/pkg/password"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := password.Hash("admin")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.NotEqual(t, "admin", hash, "el hash no debe ser el texto plano")
	assert.True(t, password.Verify("admin", hash))
	assert.False(t, password.Verify("otra-clave", hash))
}

func TestHash_MismaClaveProduceHashesDistintos(t *testing.T) {
	// bcrypt usa salt aleatorio: dos hashes de la misma clave difieren pero ambos verifican.
	h1, err := password.Hash("user")
	require.NoError(t, err)
	h2, err := password.Hash("user")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
	assert.True(t, password.Verify("user", h1))
	assert.True(t, password.Verify("user", h2))
}

func TestVerify_HashInvalido(t *testing.T) {
	assert.False(t, password.Verify("admin", "no-es-un-hash-bcrypt"))
}
