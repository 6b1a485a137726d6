package models

import "github.com/hitec/nhplus/internal/validation"

// User is an account allowed to log into the back office. Email is the login
// key; PasswordHash is an encoded salted hash, never the plain password.
type User struct {
	ID           int64
	Email        string `validate:"required,email"`
	PasswordHash string `validate:"required"`
	Status       int    `validate:"oneof=0 1"`
}

func (u *User) Validate() error {
	return validation.Struct(u)
}
