package repository

import (
	"context"

	"posyandu-backend/internal/models"
)

func (s *Store) AdminByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var a models.Admin
	if err := s.conn(ctx).Where("email = ?", email).First(&a).Error; err != nil {
		return nil, mapErr(err)
	}
	return &a, nil
}
