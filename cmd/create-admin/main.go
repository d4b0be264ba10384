// create-admin membuat akun admin posyandu baru.
//
//	go run ./cmd/create-admin -nama "Bidan Sari" -email sari@posyandu.id -password rahasia123
package main

import (
	"flag"
	"log"

	"posyandu-backend/internal/config"
	"posyandu-backend/internal/logger"
	"posyandu-backend/internal/models"
	"posyandu-backend/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	nama := flag.String("nama", "", "nama admin")
	email := flag.String("email", "", "email login admin")
	password := flag.String("password", "", "password (minimal 8 karakter)")
	flag.Parse()

	if *nama == "" || *email == "" || *password == "" {
		flag.Usage()
		log.Fatal("nama, email dan password wajib diisi")
	}

	config.LoadEnv()
	cfg := config.Load()

	zl, err := logger.New(cfg.LogLevel, "console", "create-admin")
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer zl.Sync()

	hash, err := utils.HashPassword(*password)
	if err != nil {
		zl.Fatal("hash password", zap.Error(err))
	}

	db, err := config.ConnectDB(cfg, zl)
	if err != nil {
		zl.Fatal("database connection failed", zap.Error(err))
	}

	admin := models.Admin{Nama: *nama, Email: *email, PasswordHash: hash}
	if err := db.Create(&admin).Error; err != nil {
		zl.Fatal("create admin", zap.Error(err))
	}
	zl.Info("admin dibuat", zap.Uint64("id", admin.ID), zap.String("email", admin.Email))
}
