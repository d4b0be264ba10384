package repository

import (
	"context"

	"posyandu-backend/internal/models"
)

func (s *Store) ChildrenByGuardian(ctx context.Context, guardianID uint64) ([]models.Child, error) {
	var children []models.Child
	if err := s.conn(ctx).Where("id_orangtua = ?", guardianID).Find(&children).Error; err != nil {
		return nil, err
	}
	return children, nil
}

func (s *Store) ChildrenByAdmin(ctx context.Context, adminID uint64) ([]models.Child, error) {
	var children []models.Child
	if err := s.conn(ctx).Where("admin_id = ?", adminID).Find(&children).Error; err != nil {
		return nil, err
	}
	return children, nil
}

func (s *Store) DeleteChild(ctx context.Context, id uint64) error {
	return s.conn(ctx).Where("id = ?", id).Delete(&models.Child{}).Error
}
