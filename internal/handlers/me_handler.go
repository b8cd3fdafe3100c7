package handlers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/HenriqueMND/agendamento-app/internal/httperr"
	"github.com/HenriqueMND/agendamento-app/internal/imaging"
	"github.com/HenriqueMND/agendamento-app/internal/models"
	"github.com/HenriqueMND/agendamento-app/internal/storage"
)

const maxAvatarBytes = 5 << 20

type MeHandler struct {
	db      *gorm.DB
	avatars *storage.AvatarStore
}

func NewMeHandler(db *gorm.DB, avatars *storage.AvatarStore) *MeHandler {
	return &MeHandler{db: db, avatars: avatars}
}

type UpdateMeRequest struct {
	Name string `json:"name" binding:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
}

func (h *MeHandler) GetMe(c *gin.Context) {
	var user models.User
	if err := h.db.First(&user, "id = ?", ownerID(c)).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "Usuário não encontrado.")
		return
	}

	c.JSON(http.StatusOK, userPayload(&user))
}

func (h *MeHandler) UpdateMe(c *gin.Context) {
	var req UpdateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if err := h.db.Model(&models.User{}).
		Where("id = ?", ownerID(c)).
		Update("name", req.Name).Error; err != nil {
		httperr.Internal(c, "failed_to_update_user", "Erro ao atualizar perfil.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Nome atualizado."})
}

func (h *MeHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var user models.User
	if err := h.db.First(&user, "id = ?", ownerID(c)).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "Usuário não encontrado.")
		return
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(user.PasswordHash),
		[]byte(req.CurrentPassword),
	); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Senha atual incorreta.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Erro ao alterar senha.")
		return
	}

	if err := h.db.Model(&user).
		Update("password_hash", string(hashed)).Error; err != nil {
		httperr.Internal(c, "failed_to_update_password", "Erro ao alterar senha.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Senha atualizada."})
}

// UploadAvatar recebe a imagem em multipart, normaliza para webp e grava
// no bucket; a URL pública vai para o perfil do usuário.
func (h *MeHandler) UploadAvatar(c *gin.Context) {
	file, err := c.FormFile("photo")
	if err != nil {
		httperr.BadRequest(c, "missing_photo", "Envie o arquivo no campo 'photo'.")
		return
	}
	if file.Size > maxAvatarBytes {
		httperr.BadRequest(c, "photo_too_large", "Imagem acima de 5MB.")
		return
	}

	src, err := file.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_photo", "Erro ao ler a imagem.")
		return
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, maxAvatarBytes+1))
	if err != nil {
		httperr.Internal(c, "failed_to_read_photo", "Erro ao ler a imagem.")
		return
	}

	encoded, err := imaging.ToAvatarWebP(data)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Imagem inválida. Use JPEG ou PNG.")
		return
	}

	userID := ownerID(c)
	key := fmt.Sprintf("%s/avatar.webp", userID)

	url, err := h.avatars.Put(c.Request.Context(), key, encoded, imaging.ContentType)
	if err != nil {
		httperr.Internal(c, "failed_to_upload_photo", "Erro ao enviar a imagem.")
		return
	}

	if err := h.db.Model(&models.User{}).
		Where("id = ?", userID).
		Update("photo_url", url).Error; err != nil {
		httperr.Internal(c, "failed_to_update_user", "Erro ao salvar a foto de perfil.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"photo_url": url})
}
