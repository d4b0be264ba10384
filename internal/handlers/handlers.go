// Package handlers berisi handler HTTP gin untuk dashboard, data anggota dan login admin.
package handlers

import (
	"context"
	"io"

	"posyandu-backend/internal/models"
	"posyandu-backend/internal/services"
)

type DashboardProvider interface {
	Summary(ctx context.Context, adminID uint64, year *int) (*services.DashboardSummary, error)
}

type MemberManager interface {
	List(ctx context.Context, search string) ([]models.Guardian, error)
	Get(ctx context.Context, id uint64) (*models.Guardian, error)
	Delete(ctx context.Context, adminID, id uint64) error
	Update(ctx context.Context, adminID, id uint64, in models.UpdateGuardianInput, photo *services.PhotoFile) (*models.Guardian, error)
	Export(ctx context.Context, search string, w io.Writer) error
}

type Authenticator interface {
	Login(ctx context.Context, email, password string) (string, *models.Admin, error)
}
