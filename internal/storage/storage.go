// Package storage menyimpan foto profil anggota dan anak di object store.
package storage

import (
	"context"
	"io"
	"strings"

	"github.com/google/uuid"
)

const (
	GuardianPhotoDir = "profile-ortu"
	ChildPhotoDir    = "profile-anak"

	// DefaultAvatar hanya dipakai di sisi tampilan, tidak pernah dipersist
	DefaultAvatar = "/assets/icons/avatar.png"
)

// ObjectStore adalah kapabilitas penyimpanan objek biner yang dipakai service
type ObjectStore interface {
	Upload(ctx context.Context, objectPath string, body io.Reader, contentType string) error
	Remove(ctx context.Context, objectPaths ...string) error
	PublicURL(objectPath string) string
}

// IsPlaceholder true kalau referensi foto kosong atau avatar default
func IsPlaceholder(ref *string) bool {
	if ref == nil {
		return true
	}
	s := strings.TrimSpace(*ref)
	return s == "" || s == DefaultAvatar
}

// GuardianPhotoPath menurunkan path objek dari URL foto orang tua
func GuardianPhotoPath(ref string) string {
	return GuardianPhotoDir + "/" + objectName(ref)
}

// ChildPhotoPath menurunkan path objek dari URL foto anak
func ChildPhotoPath(ref string) string {
	return ChildPhotoDir + "/" + objectName(ref)
}

// NewGuardianPhotoPath membuat path acak untuk upload foto orang tua
func NewGuardianPhotoPath() string {
	return GuardianPhotoDir + "/" + uuid.NewString()
}

// objectName = segmen terakhir URL
func objectName(ref string) string {
	if i := strings.LastIndex(ref, "/"); i >= 0 {
		return ref[i+1:]
	}
	return ref
}

func publicURL(base, objectPath string) string {
	if objectPath == "" {
		return ""
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(objectPath, "/")
}
