package domain

import (
	"errors"
	"time"
)

// Account models a registered user of the tracker.
type Account struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	IsAdmin      bool      `json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
}

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrAccountExists = errors.New("account already exists")
var ErrAccountNotFound = errors.New("account not found")
var ErrTooManyAttempts = errors.New("too many login attempts")
var ErrForbidden = errors.New("access forbidden")
