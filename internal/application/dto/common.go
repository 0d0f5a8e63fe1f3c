package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RowFailureDTO fila de importación que no pudo convertirse en factura.
// Fila es 1-based (sin contar el encabezado).
type RowFailureDTO struct {
	Fila   int    `json:"fila"`
	Motivo string `json:"motivo"`
}

// ImportErrorResponse error de importación con detalle por fila.
type ImportErrorResponse struct {
	Code     string          `json:"code"`
	Message  string          `json:"message"`
	Errores  []RowFailureDTO `json:"errores"`
	Creadas  int             `json:"creadas"`
	Fallidas int             `json:"fallidas"`
}
