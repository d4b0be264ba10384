package services

import (
	"context"
	"errors"
	"time"

	"posyandu-backend/internal/models"
	"posyandu-backend/internal/repository"
	"posyandu-backend/pkg/utils"
)

type AdminStore interface {
	AdminByEmail(ctx context.Context, email string) (*models.Admin, error)
}

type AuthService struct {
	store  AdminStore
	secret string
	ttl    time.Duration
}

func NewAuthService(store AdminStore, secret string, ttl time.Duration) *AuthService {
	return &AuthService{store: store, secret: secret, ttl: ttl}
}

// Login mencocokkan email & password admin lalu menerbitkan JWT
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.Admin, error) {
	admin, err := s.store.AdminByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !utils.CheckPassword(password, admin.PasswordHash) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(s.secret, admin.ID, s.ttl)
	if err != nil {
		return "", nil, err
	}
	return token, admin, nil
}
