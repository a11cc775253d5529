package user

import "smartpark/models"

// AuthResponse is returned after a successful registration or login.
type AuthResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// RegistrationData is the payload for creating an account.
type RegistrationData struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

// UserService defines account and profile operations.
type UserService interface {
	Register(req RegistrationData) (*AuthResponse, error)
	Authenticate(email, password string) (*AuthResponse, error)
	GetByID(id string) (*models.User, error)
	UpdateDetails(id, carPlate, ecocashNumber string) error
	UpdateFCMToken(id, token string) error
}
