package entity

// Roles sembrados por defecto.
const (
	RoleAdmin  = "ADMIN_ROLE"
	RoleUser   = "USER_ROLE"
	RoleClient = "CLIENT_ROLE"
)

// Role grupo de permisos con nombre único, compartido por muchos usuarios.
type Role struct {
	ID   int64
	Name string
}
