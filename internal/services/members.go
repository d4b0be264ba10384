package services

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"

	"posyandu-backend/internal/models"
	"posyandu-backend/internal/repository"
	"posyandu-backend/internal/storage"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// MemberStore adalah operasi tabel yang dipakai daftar, hapus dan edit anggota
type MemberStore interface {
	ListGuardians(ctx context.Context) ([]models.Guardian, error)
	GetGuardian(ctx context.Context, id uint64) (*models.Guardian, error)
	UpdateGuardian(ctx context.Context, id uint64, u models.GuardianUpdate) error
	DeleteGuardian(ctx context.Context, id uint64) error
	ChildrenByGuardian(ctx context.Context, guardianID uint64) ([]models.Child, error)
	DeleteChild(ctx context.Context, id uint64) error
}

// PhotoFile adalah file foto baru yang dipilih di form edit
type PhotoFile struct {
	Filename string
	Size     int64
	Body     io.Reader
}

type MemberService struct {
	store         MemberStore
	objects       storage.ObjectStore
	log           *zap.Logger
	validate      *validator.Validate
	maxPhotoBytes int64
}

func NewMemberService(store MemberStore, objects storage.ObjectStore, log *zap.Logger, maxPhotoBytes int64) *MemberService {
	if maxPhotoBytes <= 0 {
		maxPhotoBytes = 1 << 20
	}
	return &MemberService{
		store:         store,
		objects:       objects,
		log:           log.Named("members"),
		validate:      newValidator(),
		maxPhotoBytes: maxPhotoBytes,
	}
}

// List mengambil semua anggota, difilter nama atau NIK (case-insensitive)
func (s *MemberService) List(ctx context.Context, search string) ([]models.Guardian, error) {
	guardians, err := s.store.ListGuardians(ctx)
	if err != nil {
		s.log.Error("fetch members", zap.Error(err))
		return nil, err
	}

	term := strings.ToLower(search)
	out := make([]models.Guardian, 0, len(guardians))
	for _, g := range guardians {
		if term == "" ||
			strings.Contains(strings.ToLower(g.Nama), term) ||
			strings.Contains(strings.ToLower(g.NIK), term) {
			out = append(out, g)
		}
	}
	return out, nil
}

func (s *MemberService) Get(ctx context.Context, id uint64) (*models.Guardian, error) {
	g, err := s.store.GetGuardian(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("fetch member", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}
	return g, nil
}

// owned mengambil anggota milik adminID; anggota admin lain ditolak
func (s *MemberService) owned(ctx context.Context, adminID, id uint64) (*models.Guardian, error) {
	g, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if g.AdminID != adminID {
		s.log.Warn("member outside admin scope", zap.Uint64("id", id), zap.Uint64("admin_id", adminID))
		return nil, ErrForbidden
	}
	return g, nil
}

// Delete menghapus anggota beserta anak dan foto-fotonya, berurutan.
// Langkah yang gagal menghentikan proses; langkah sebelumnya tidak dikembalikan.
func (s *MemberService) Delete(ctx context.Context, adminID, id uint64) error {
	guardian, err := s.owned(ctx, adminID, id)
	if err != nil {
		return err
	}

	children, err := s.store.ChildrenByGuardian(ctx, id)
	if err != nil {
		return s.fail("Gagal mengambil data anak", id, err)
	}

	if err := s.store.DeleteGuardian(ctx, id); err != nil {
		return s.fail("Gagal menghapus data anggota", id, err)
	}

	if !storage.IsPlaceholder(guardian.Foto) {
		if err := s.objects.Remove(ctx, storage.GuardianPhotoPath(*guardian.Foto)); err != nil {
			return s.fail("Gagal menghapus foto orang tua", id, err)
		}
	}

	for _, child := range children {
		if !storage.IsPlaceholder(child.Foto) {
			if err := s.objects.Remove(ctx, storage.ChildPhotoPath(*child.Foto)); err != nil {
				return s.fail("Gagal menghapus foto anak", id, err)
			}
		}
		if err := s.store.DeleteChild(ctx, child.ID); err != nil {
			return s.fail("Gagal menghapus data anak", id, err)
		}
	}

	s.log.Info("member deleted", zap.Uint64("id", id), zap.Int("children", len(children)))
	return nil
}

// Update memvalidasi form, mengganti/menghapus foto bila diminta, lalu menyimpan baris.
// photo nil berarti tidak ada file baru.
func (s *MemberService) Update(ctx context.Context, adminID, id uint64, in models.UpdateGuardianInput, photo *PhotoFile) (*models.Guardian, error) {
	fields := fieldErrors(s.validate.Struct(in))
	if photo != nil && photo.Size > s.maxPhotoBytes {
		fields["foto"] = photoTooLarge
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	current, err := s.owned(ctx, adminID, id)
	if err != nil {
		return nil, err
	}

	foto := current.Foto
	var uploaded string
	switch {
	case photo != nil:
		data, err := io.ReadAll(io.LimitReader(photo.Body, s.maxPhotoBytes+1))
		if err != nil {
			return nil, stepErr("Gagal membaca gambar", err)
		}
		if int64(len(data)) > s.maxPhotoBytes {
			return nil, &ValidationError{Fields: map[string]string{"foto": photoTooLarge}}
		}

		path := storage.NewGuardianPhotoPath()
		contentType := mimetype.Detect(data).String()
		if err := s.objects.Upload(ctx, path, bytes.NewReader(data), contentType); err != nil {
			s.log.Error("upload image", zap.String("path", path), zap.Error(err))
			return nil, stepErr("Gagal mengupload gambar", err)
		}
		uploaded = path
		s.removeOldPhoto(ctx, current.Foto)

		url := s.objects.PublicURL(path)
		foto = &url
	case bool(in.HapusFoto):
		s.removeOldPhoto(ctx, current.Foto)
		foto = nil
	}

	usia := parseUsia(in.Usia)
	update := models.GuardianUpdate{
		Nama:         in.Nama,
		NIK:          in.NIK,
		Foto:         foto,
		Alamat:       in.Alamat,
		Usia:         usia,
		JenisKelamin: in.JenisKelamin,
		NomorTelepon: in.NomorTelepon,
	}
	if err := s.store.UpdateGuardian(ctx, id, update); err != nil {
		s.log.Error("update member", zap.Uint64("id", id), zap.Error(err))
		if uploaded != "" {
			// foto baru belum direferensikan baris manapun
			if rmErr := s.objects.Remove(ctx, uploaded); rmErr != nil {
				s.log.Warn("remove orphaned upload", zap.String("path", uploaded), zap.Error(rmErr))
			}
		}
		return nil, stepErr("Gagal memperbarui data", err)
	}

	updated := *current
	updated.Nama = update.Nama
	updated.NIK = update.NIK
	updated.Foto = update.Foto
	updated.Alamat = update.Alamat
	updated.Usia = update.Usia
	updated.JenisKelamin = update.JenisKelamin
	updated.NomorTelepon = update.NomorTelepon
	return &updated, nil
}

// removeOldPhoto hanya mencatat kegagalan; update baris tetap jalan
func (s *MemberService) removeOldPhoto(ctx context.Context, ref *string) {
	if storage.IsPlaceholder(ref) {
		return
	}
	path := storage.GuardianPhotoPath(*ref)
	if err := s.objects.Remove(ctx, path); err != nil {
		s.log.Warn("delete old image", zap.String("path", path), zap.Error(err))
	}
}

func (s *MemberService) fail(msg string, id uint64, err error) error {
	s.log.Error(msg, zap.Uint64("id", id), zap.Error(err))
	return stepErr(msg, err)
}
