package services

import "errors"

var (
	ErrNotFound           = errors.New("data tidak ditemukan")
	ErrInvalidCredentials = errors.New("email atau password salah")
	ErrForbidden          = errors.New("data di luar scope admin")
)

// ValidationError berisi pesan per field, dikirim apa adanya ke form
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validasi gagal"
}

// StepError menandai langkah mana dari proses multi-step yang gagal.
// Langkah sebelumnya tidak di-rollback.
type StepError struct {
	Message string
	Err     error
}

func (e *StepError) Error() string {
	return e.Message + ": " + e.Err.Error()
}

func (e *StepError) Unwrap() error {
	return e.Err
}

func stepErr(msg string, err error) error {
	return &StepError{Message: msg, Err: err}
}
