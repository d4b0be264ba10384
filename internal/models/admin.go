package models

// Admin adalah pengelola posyandu. ID-nya jadi batas scope data (admin_id).
type Admin struct {
	ID           uint64 `gorm:"primaryKey" json:"id"`
	Nama         string `gorm:"size:100;not null" json:"nama"`
	Email        string `gorm:"uniqueIndex;size:100;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"` // jangan pernah dikirim ke frontend
}

func (Admin) TableName() string { return "admin" }

// Struct untuk menangkap Input Login
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
