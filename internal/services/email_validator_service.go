package services

import "context"

type EmailValidator interface {
	Validate(ctx context.Context, email string) error
}

// LocalValidator accepts every syntactically valid email; the format check
// already happened in AuthService.
type LocalValidator struct{}

func NewLocalValidator() *LocalValidator {
	return &LocalValidator{}
}

func (LocalValidator) Validate(ctx context.Context, email string) error {
	return nil
}
