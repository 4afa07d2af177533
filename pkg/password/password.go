// Package password encapsula el hasheo de contraseñas con bcrypt.
// El resto del sistema solo conoce el contrato Hash/Verify; el hash es opaco.
package password

import "golang.org/x/crypto/bcrypt"

// Hash genera el hash bcrypt de una contraseña en texto plano.
func Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify compara una contraseña en texto plano contra un hash almacenado.
func Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
