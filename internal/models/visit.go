package models

import "time"

// VisitRecord merepresentasikan tabel 'rekam_medis_posyandu' (satu kunjungan anak)
type VisitRecord struct {
	ID                 uint64    `gorm:"primaryKey" json:"id"`
	ChildID            uint64    `gorm:"column:id_anak;index;not null" json:"id_anak"`
	TanggalKunjungan   time.Time `gorm:"type:date" json:"tanggal_kunjungan"`
	TinggiBadan        *float64  `json:"tinggi_badan"` // cm, bisa NULL
	BeratBadan         *float64  `json:"berat_badan"`  // kg, bisa NULL
	AktivitasImunisasi *string   `gorm:"size:100" json:"aktivitas_imunisasi"`
	StatusImunisasi    *string   `gorm:"size:50" json:"status_imunisasi"`
	DibuatPada         time.Time `gorm:"autoCreateTime" json:"dibuat_pada"`
}

func (VisitRecord) TableName() string { return "rekam_medis_posyandu" }
