package repository

import (
	"context"

	"posyandu-backend/internal/models"
)

// ActivitiesByChildren: riwayat imunisasi terbaru lebih dulu
func (s *Store) ActivitiesByChildren(ctx context.Context, childIDs []uint64) ([]models.VisitRecord, error) {
	if len(childIDs) == 0 {
		return nil, nil
	}
	var records []models.VisitRecord
	err := s.conn(ctx).
		Select("id", "id_anak", "aktivitas_imunisasi", "status_imunisasi", "dibuat_pada").
		Where("id_anak IN ?", childIDs).
		Order("dibuat_pada desc").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// GrowthByChildren: hanya kolom pengukuran, urutan apa adanya dari DB
func (s *Store) GrowthByChildren(ctx context.Context, childIDs []uint64) ([]models.VisitRecord, error) {
	if len(childIDs) == 0 {
		return nil, nil
	}
	var records []models.VisitRecord
	err := s.conn(ctx).
		Select("tanggal_kunjungan", "tinggi_badan", "berat_badan").
		Where("id_anak IN ?", childIDs).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
