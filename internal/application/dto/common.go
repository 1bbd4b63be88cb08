package dto

// SuccessResponse envelope de éxito: {"success": true, "data": ...}.
// Es el contrato de wire de toda la API; los handlers nunca devuelven el dato pelado.
type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

// ErrorResponse envelope de error: {"success": false, "error": "<mensaje>"}.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// OK envuelve data en el envelope de éxito.
func OK(data interface{}) SuccessResponse {
	return SuccessResponse{Success: true, Data: data}
}

// Fail construye el envelope de error con el mensaje dado.
func Fail(message string) ErrorResponse {
	return ErrorResponse{Success: false, Error: message}
}
