package dto

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// SignupForm carries the signup fields after the username has been
// sanitized.
type SignupForm struct {
	Username string `validate:"required,max=500"`
	Password string `validate:"required,min=6"`
}

func (f *SignupForm) Validate() error {
	return validate.Struct(f)
}

type LoginForm struct {
	Username string `validate:"required,max=500"`
	Password string `validate:"required"`
}

func (f *LoginForm) Validate() error {
	return validate.Struct(f)
}
