package utils

import (
	"github.com/gin-gonic/gin"
)

// Format response standar biar frontend enak bacanya
type Response struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    interface{}       `json:"data,omitempty"`   // omitempty: kalau null, ga usah dimunculin
	Errors  map[string]string `json:"errors,omitempty"` // pesan validasi per field
}

func APIResponse(c *gin.Context, code int, success bool, message string, data interface{}) {
	c.JSON(code, Response{
		Success: success,
		Message: message,
		Data:    data,
	})
}

// ValidationResponse dipakai kalau form gagal validasi (400)
func ValidationResponse(c *gin.Context, code int, message string, errors map[string]string) {
	c.JSON(code, Response{
		Success: false,
		Message: message,
		Errors:  errors,
	})
}
