package entity

// User cuenta del sistema. Es la raíz del agregado User ↔ Person ↔ Roles:
// exactamente una Person asociada (User posee la FK) y un conjunto de roles
// vía la tabla de unión user_roles.
type User struct {
	ID           int64
	Username     string
	PasswordHash string // bcrypt, nunca en texto plano después de persistir
	Status       bool   // true = activo
	Avatar       *string
	PersonID     int64
	Person       *Person // cargado al resolver el agregado
	Roles        []Role  // cargados al resolver el agregado
}
