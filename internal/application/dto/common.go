package dto

// ErrorResponse cuerpo de error HTTP. Details lleva el diagnóstico del
// upstream cuando el fallo viene de Vendus.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}
