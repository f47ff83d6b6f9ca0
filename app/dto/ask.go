package dto

import "time"

type AskRequest struct {
	Question string `json:"question" validate:"required"`
}

func (r *AskRequest) Validate() error {
	return validate.Struct(r)
}

type AskResponse struct {
	Success  bool   `json:"success"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type UserResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}
