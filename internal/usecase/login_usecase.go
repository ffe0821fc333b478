package usecase

import "context"

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// LoginUsecase is the login orchestrator of the auth service.
type LoginUsecase interface {
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
