// Package repository adalah akses tabel orangtua, anak, rekam_medis_posyandu dan admin via gorm.
package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

// Store membungkus *gorm.DB. Tidak ada transaksi dan tidak ada cascade di sini:
// urutan langkah multi-step ditentukan service.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) conn(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx)
}

func mapErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
