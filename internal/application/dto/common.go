package dto

// ErrorResponse cuerpo de error HTTP: código numérico + mensaje localizado
// según el header `hl` de la petición.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OKResponse respuesta de operaciones sin cuerpo propio (borrados, ajustes).
type OKResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// DeleteBatchRequest borrado lógico en lote por IDs.
type DeleteBatchRequest struct {
	IDs []string `json:"ids" validate:"required,min=1"`
}
