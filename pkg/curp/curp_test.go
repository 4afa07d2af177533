package curp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/identity-api/pkg/curp"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"minusculas", "movm980119hm", "MOVM980119HM"},
		{"espacios", "  MEAL001108DLAHMSA3 ", "MEAL001108DLAHMSA3"},
		{"acentos", "peña980119hm", "PENA980119HM"},
		{"ya canonica", "GHOPAD3828INBE0", "GHOPAD3828INBE0"},
		{"vacia", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, curp.Normalize(tc.in))
		})
	}
}

func TestIsValid(t *testing.T) {
	assert.True(t, curp.IsValid("MEAL001108HDFLNS03"))
	assert.True(t, curp.IsValid("MOVM980119MMCRRK08"))

	// Las CURP de las cuentas sembradas no cumplen el formato oficial; IsValid solo
	// se usa para advertir, nunca para rechazar.
	assert.False(t, curp.IsValid("MOVM980119HM"))
	assert.False(t, curp.IsValid("GHOPAD3828INBE0"))
	assert.False(t, curp.IsValid(""))
	assert.False(t, curp.IsValid("meal001108hdflns03"), "solo mayúsculas tras Normalize")
}
