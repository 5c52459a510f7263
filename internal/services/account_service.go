package services

import (
	"context"
	"fmt"

	"gigcampus/internal/models/request_models"
	"gigcampus/internal/repositories"
	"gigcampus/pkg/utils"
)

type AccountService interface {
	AdminLogin(ctx context.Context, req request_models.AdminLoginRequest) (string, error)
}

// accountService covers the one credential flow this backend owns: admin
// sign-in. Everyone else authenticates through the identity provider and
// arrives with a bearer token.
type accountService struct {
	users repositories.UserRepository
}

func NewAccountService(users repositories.UserRepository) AccountService {
	return &accountService{users: users}
}

func (s *accountService) AdminLogin(ctx context.Context, req request_models.AdminLoginRequest) (string, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return "", fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if user == nil || user.Role != "admin" {
		return "", utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(user.PasswordHash, req.Password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(user.ID, user.Role)
	if err != nil {
		return "", utils.ErrInvalidCredentials
	}

	return token, nil
}
