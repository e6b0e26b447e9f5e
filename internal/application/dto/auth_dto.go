package dto

import "time"

// RegisterRequest alta de cuenta: crea/encuentra el cliente Vendus y la
// cuenta local enlazada.
type RegisterRequest struct {
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	Telefone string `json:"telefone,omitempty"`
	NIF      string `json:"nif"`
	Password string `json:"password"`
}

// RegisterResponse resultado del alta.
type RegisterResponse struct {
	CreatedClient  bool   `json:"created_client"`
	VendusClientID int64  `json:"vendus_client_id"`
	UserID         string `json:"user_id"`
}

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AccountResponse cuenta vinculada, sin hash.
type AccountResponse struct {
	UserID         string    `json:"user_id"`
	Email          string    `json:"email"`
	VendusClientID int64     `json:"vendus_client_id"`
	CreatedAt      time.Time `json:"created_at"`
}

// LoginResponse token de acceso y cuenta.
type LoginResponse struct {
	AccessToken string          `json:"access_token"`
	Account     AccountResponse `json:"account"`
}
