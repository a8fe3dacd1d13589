package dto

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// Validate checks the struct tags of a request payload.
func Validate(payload interface{}) error {
	return validate.Struct(payload)
}

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}
