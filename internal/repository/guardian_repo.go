package repository

import (
	"context"

	"posyandu-backend/internal/models"
)

func (s *Store) ListGuardians(ctx context.Context) ([]models.Guardian, error) {
	var guardians []models.Guardian
	if err := s.conn(ctx).Order("id").Find(&guardians).Error; err != nil {
		return nil, err
	}
	return guardians, nil
}

func (s *Store) GetGuardian(ctx context.Context, id uint64) (*models.Guardian, error) {
	var g models.Guardian
	if err := s.conn(ctx).Where("id = ?", id).First(&g).Error; err != nil {
		return nil, mapErr(err)
	}
	return &g, nil
}

// UpdateGuardian menulis semua kolom form, termasuk foto NULL
func (s *Store) UpdateGuardian(ctx context.Context, id uint64, u models.GuardianUpdate) error {
	var foto interface{}
	if u.Foto != nil {
		foto = *u.Foto
	}

	res := s.conn(ctx).Model(&models.Guardian{}).Where("id = ?", id).Updates(map[string]interface{}{
		"nama":          u.Nama,
		"nik":           u.NIK,
		"foto":          foto,
		"alamat":        u.Alamat,
		"usia":          u.Usia,
		"jenis_kelamin": u.JenisKelamin,
		"nomor_telepon": u.NomorTelepon,
	})
	return res.Error
}

func (s *Store) DeleteGuardian(ctx context.Context, id uint64) error {
	return s.conn(ctx).Where("id = ?", id).Delete(&models.Guardian{}).Error
}

func (s *Store) CountGuardiansByAdmin(ctx context.Context, adminID uint64) (int64, error) {
	var n int64
	err := s.conn(ctx).Model(&models.Guardian{}).Where("admin_id = ?", adminID).Count(&n).Error
	return n, err
}
