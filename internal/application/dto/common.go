package dto

// ApiResponse es el sobre de TODAS las respuestas del recurso user:
// {data, status, error, message?}. Status lleva el nombre del estado HTTP
// ("OK", "BAD_REQUEST"); los clientes existentes dependen de esa forma exacta.
type ApiResponse struct {
	Data    any    `json:"data,omitempty"`
	Status  string `json:"status"`
	Error   bool   `json:"error"`
	Message string `json:"message,omitempty"`
}

// OK construye el sobre de éxito (HTTP 200).
func OK(data any) ApiResponse {
	return ApiResponse{Data: data, Status: "OK"}
}

// Fail construye el sobre de error con el nombre de estado y mensaje dados.
func Fail(status, message string) ApiResponse {
	return ApiResponse{Status: status, Error: true, Message: message}
}
