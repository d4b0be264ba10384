package utils

import (
	"errors"
	"strconv"
)

var ErrInvalidID = errors.New("id harus berupa angka positif")

// ParseID membaca ID dari path parameter. ID 0 tidak pernah dipakai tabel manapun.
func ParseID(raw string) (uint64, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}
