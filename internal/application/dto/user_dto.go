package dto

// Formato de fecha de nacimiento en la API (date-only).
const BirthDateLayout = "2006-01-02"

// RolePayload rol dentro de una petición o respuesta de usuario.
// En peticiones se resuelve por id; si id es cero, por name.
type RolePayload struct {
	ID   int64  `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

// PersonPayload datos de persona dentro de un PUT de usuario.
type PersonPayload struct {
	Name      string  `json:"name"`
	Surname   string  `json:"surname"`
	Lastname  *string `json:"lastname,omitempty"`
	BirthDate string  `json:"birthDate"` // YYYY-MM-DD
	CURP      string  `json:"curp"`
}

// PersonResponse salida de la persona asociada a un usuario.
type PersonResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Surname   string  `json:"surname"`
	Lastname  *string `json:"lastname,omitempty"`
	BirthDate string  `json:"birthDate"`
	CURP      string  `json:"curp"`
}

// UserResponse salida de un usuario con su agregado resuelto (sin password).
type UserResponse struct {
	ID       int64           `json:"id"`
	Username string          `json:"username"`
	Status   bool            `json:"status"`
	Avatar   *string         `json:"avatar,omitempty"`
	Person   *PersonResponse `json:"person"`
	Roles    []RolePayload   `json:"roles"`
}

// UpdateUserRequest cuerpo del PUT /api/user/{id}. Username, avatar y roles
// reemplazan por completo los valores actuales; person se aplica campo a campo
// solo si el usuario ya tiene persona asociada. El password nunca se modifica aquí.
type UpdateUserRequest struct {
	Username string         `json:"username"`
	Avatar   *string        `json:"avatar,omitempty"`
	Person   *PersonPayload `json:"person,omitempty"`
	Roles    []RolePayload  `json:"roles"`
}
