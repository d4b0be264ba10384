package middleware

import (
	"net/http"
	"strings"

	"posyandu-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

const AdminIDKey = "adminID"

// AuthMiddleware memeriksa Bearer token dan menyimpan adminID ke context
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.APIResponse(c, http.StatusUnauthorized, false, "Token tidak ditemukan", nil)
			c.Abort()
			return
		}

		// Format harus "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.APIResponse(c, http.StatusUnauthorized, false, "Format token salah", nil)
			c.Abort()
			return
		}

		adminID, err := utils.ValidateToken(secret, parts[1])
		if err != nil {
			utils.APIResponse(c, http.StatusUnauthorized, false, "Token tidak valid", nil)
			c.Abort()
			return
		}

		c.Set(AdminIDKey, adminID)
		c.Next()
	}
}

// AdminScope: admin hanya boleh melihat data di scope-nya sendiri (:param == admin_id token)
func AdminScope(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		adminID := c.GetUint64(AdminIDKey)
		scope, err := utils.ParseID(c.Param(param))
		if adminID == 0 || err != nil || scope != adminID {
			utils.APIResponse(c, http.StatusForbidden, false, "Akses Ditolak", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
