package handlers

import (
	"errors"
	"net/http"

	"posyandu-backend/internal/models"
	"posyandu-backend/internal/services"
	"posyandu-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth Authenticator
}

func NewAuthHandler(auth Authenticator) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login admin posyandu
func (h *AuthHandler) Login(c *gin.Context) {
	var input models.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Input tidak valid", nil)
		return
	}

	token, admin, err := h.auth.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.APIResponse(c, http.StatusUnauthorized, false, "Email atau Password salah", nil)
			return
		}
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal login", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Login Berhasil", gin.H{
		"token": token,
		"admin": gin.H{
			"id":    admin.ID,
			"nama":  admin.Nama,
			"email": admin.Email,
		},
	})
}
