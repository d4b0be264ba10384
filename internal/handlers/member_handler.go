package handlers

import (
	"bytes"
	"errors"
	"net/http"

	"posyandu-backend/internal/middleware"
	"posyandu-backend/internal/models"
	"posyandu-backend/internal/services"
	"posyandu-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type MemberHandler struct {
	members MemberManager
}

func NewMemberHandler(members MemberManager) *MemberHandler {
	return &MemberHandler{members: members}
}

// GetMembers daftar anggota, ?q= untuk cari berdasarkan NIK atau nama
func (h *MemberHandler) GetMembers(c *gin.Context) {
	members, err := h.members.List(c.Request.Context(), c.Query("q"))
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal mengambil data anggota!", nil)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Daftar Anggota", members)
}

// GetMember data satu anggota untuk form edit
func (h *MemberHandler) GetMember(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "ID anggota tidak valid", nil)
		return
	}

	member, err := h.members.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err, "Gagal mengambil data anggota!")
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Data Anggota", member)
}

// UpdateMember menerima multipart form: field anggota, file "foto" (opsional), "hapus_foto"
func (h *MemberHandler) UpdateMember(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "ID anggota tidak valid", nil)
		return
	}

	var input models.UpdateGuardianInput
	if err := c.ShouldBind(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Input tidak valid", err.Error())
		return
	}

	var photo *services.PhotoFile
	if fh, err := c.FormFile("foto"); err == nil {
		f, err := fh.Open()
		if err != nil {
			utils.APIResponse(c, http.StatusBadRequest, false, "Gagal membaca gambar", nil)
			return
		}
		defer f.Close()
		photo = &services.PhotoFile{Filename: fh.Filename, Size: fh.Size, Body: f}
	}

	member, err := h.members.Update(c.Request.Context(), c.GetUint64(middleware.AdminIDKey), id, input, photo)
	if err != nil {
		h.writeError(c, err, "Gagal memperbarui data!")
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Data berhasil diperbarui!", member)
}

// DeleteMember menghapus anggota beserta anak dan foto-fotonya
func (h *MemberHandler) DeleteMember(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "ID anggota tidak valid", nil)
		return
	}

	if err := h.members.Delete(c.Request.Context(), c.GetUint64(middleware.AdminIDKey), id); err != nil {
		h.writeError(c, err, "Gagal menghapus data anggota")
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Data anggota berhasil dihapus!", nil)
}

// ExportMembers mengunduh daftar anggota dalam format Excel
func (h *MemberHandler) ExportMembers(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.members.Export(c.Request.Context(), c.Query("q"), &buf); err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal membuat file export", nil)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="data-anggota.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func (h *MemberHandler) writeError(c *gin.Context, err error, fallback string) {
	var validationErr *services.ValidationError
	var stepErr *services.StepError

	switch {
	case errors.As(err, &validationErr):
		utils.ValidationResponse(c, http.StatusBadRequest, "Periksa kembali isian form", validationErr.Fields)
	case errors.Is(err, services.ErrForbidden):
		utils.APIResponse(c, http.StatusForbidden, false, "Akses Ditolak", nil)
	case errors.Is(err, services.ErrNotFound):
		utils.APIResponse(c, http.StatusNotFound, false, "Data anggota tidak ditemukan", nil)
	case errors.As(err, &stepErr):
		utils.APIResponse(c, http.StatusInternalServerError, false, stepErr.Message, nil)
	default:
		utils.APIResponse(c, http.StatusInternalServerError, false, fallback, nil)
	}
}
