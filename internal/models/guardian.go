package models

// Guardian merepresentasikan tabel 'orangtua' (anggota posyandu)
type Guardian struct {
	ID           uint64  `gorm:"primaryKey" json:"id"`
	Nama         string  `gorm:"size:100;not null" json:"nama"`
	NIK          string  `gorm:"column:nik;size:16;not null" json:"nik"`
	Foto         *string `gorm:"size:255" json:"foto"` // NULL kalau belum ada foto
	Alamat       string  `gorm:"type:text" json:"alamat"`
	Usia         int     `json:"usia"`
	JenisKelamin string  `gorm:"size:20" json:"jenis_kelamin"`
	NomorTelepon string  `gorm:"size:20" json:"nomor_telepon"`
	AdminID      uint64  `gorm:"index" json:"admin_id"`

	Children []Child `gorm:"foreignKey:GuardianID" json:"anak,omitempty"`
}

func (Guardian) TableName() string { return "orangtua" }

// UpdateGuardianInput menangkap isian form edit anggota.
// Usia sengaja string karena datang mentah dari form.
type UpdateGuardianInput struct {
	Nama         string   `form:"nama" json:"nama" validate:"required"`
	NIK          string   `form:"nik" json:"nik" validate:"required,number,len=16"`
	Alamat       string   `form:"alamat" json:"alamat" validate:"required"`
	Usia         string   `form:"usia" json:"usia" validate:"required,numeric,positive"`
	JenisKelamin string   `form:"jenis_kelamin" json:"jenis_kelamin" validate:"required,oneof=Laki-laki Perempuan"`
	NomorTelepon string   `form:"nomor_telepon" json:"nomor_telepon" validate:"required,number,min=11"`
	HapusFoto    Checkbox `form:"hapus_foto" json:"hapus_foto"`
}

// GuardianUpdate adalah kolom yang dipersist saat update anggota
type GuardianUpdate struct {
	Nama         string
	NIK          string
	Foto         *string
	Alamat       string
	Usia         int
	JenisKelamin string
	NomorTelepon string
}
