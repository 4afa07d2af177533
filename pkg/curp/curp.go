// Package curp utilidades para la CURP (Clave Única de Registro de Población),
// la llave natural de Person.
package curp

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Formato oficial: 4 letras, 6 dígitos de fecha, sexo H/M, 5 letras de entidad y
// consonantes, homoclave alfanumérica y dígito verificador.
var curpPattern = regexp.MustCompile(`^[A-Z]{4}\d{6}[HM][A-Z]{5}[A-Z0-9]\d$`)

// quita marcas diacríticas (NFD + remover combining marks)
var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize deja una CURP en forma canónica: sin espacios, sin acentos y en mayúsculas.
// No valida el formato; usar IsValid para eso.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if out, _, err := transform.String(stripAccents, s); err == nil {
		s = out
	}
	return strings.ToUpper(s)
}

// IsValid reporta si la cadena (ya normalizada) cumple el formato oficial de 18 caracteres.
func IsValid(s string) bool {
	return curpPattern.MatchString(s)
}
