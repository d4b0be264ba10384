package models

import "time"

// Child merepresentasikan tabel 'anak'
type Child struct {
	ID           uint64     `gorm:"primaryKey" json:"id"`
	Nama         string     `gorm:"size:100;not null" json:"nama"`
	NIK          string     `gorm:"column:nik;size:16" json:"nik"`
	TanggalLahir *time.Time `gorm:"type:date" json:"tanggal_lahir"`
	JenisKelamin string     `gorm:"size:20" json:"jenis_kelamin"`
	Foto         *string    `gorm:"size:255" json:"foto"`
	GuardianID   uint64     `gorm:"column:id_orangtua;index;not null" json:"id_orangtua"`
	AdminID      uint64     `gorm:"index" json:"admin_id"`
}

func (Child) TableName() string { return "anak" }
