package services

import (
	"errors"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// pesan per field lalu per tag validator
var validationMessages = map[string]map[string]string{
	"nama": {
		"required": "Nama harus diisi!",
	},
	"nik": {
		"required": "NIK harus diisi!",
		"number":   "NIK harus berisi 16 angka!",
		"len":      "NIK harus berisi 16 angka!",
	},
	"alamat": {
		"required": "Alamat harus diisi!",
	},
	"usia": {
		"required": "Usia harus diisi!",
		"numeric":  "Usia harus berupa angka!",
		"positive": "Usia harus lebih dari 0!",
	},
	"jenis_kelamin": {
		"required": "Jenis kelamin harus dipilih!",
		"oneof":    "Jenis kelamin harus dipilih!",
	},
	"nomor_telepon": {
		"required": "Nomor telepon harus diisi!",
		"number":   "Nomor telepon harus berisi angka saja!",
		"min":      "Nomor telepon harus lebih dari 10 angka!",
	},
}

const photoTooLarge = "Ukuran gambar harus di bawah 1MB!"

// parseUsia: usia pecahan dibulatkan ke atas supaya nilai positif tidak tersimpan 0
func parseUsia(s string) int {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return int(math.Ceil(f))
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("positive", func(fl validator.FieldLevel) bool {
		n, err := strconv.ParseFloat(fl.Field().String(), 64)
		return err == nil && n > 0
	})
	return v
}

// fieldErrors menerjemahkan hasil validator ke map field -> pesan
func fieldErrors(err error) map[string]string {
	out := make(map[string]string)
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return out
	}
	for _, fe := range ve {
		msg, ok := validationMessages[fe.Field()][fe.Tag()]
		if !ok {
			msg = fe.Field() + " tidak valid"
		}
		out[fe.Field()] = msg
	}
	return out
}
