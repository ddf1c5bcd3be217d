package usecase

import (
	"context"

	"mentor-match/internal/pkg/jwt"
	"mentor-match/internal/repository"
	ucauth "mentor-match/internal/usecase/auth"
)

type AuthUsecase interface {
	Signup(ctx context.Context, in ucauth.SignupInput) error
	Login(ctx context.Context, in ucauth.LoginInput) (string, error)
}

type Auth struct {
	svc *ucauth.Service
}

func NewAuthUsecase(users repository.UserRepository, tokens jwt.Service) *Auth {
	return &Auth{svc: ucauth.NewService(users, tokens)}
}

func (a *Auth) Signup(ctx context.Context, in ucauth.SignupInput) error {
	return a.svc.Signup(ctx, in)
}

func (a *Auth) Login(ctx context.Context, in ucauth.LoginInput) (string, error) {
	return a.svc.Login(ctx, in)
}
