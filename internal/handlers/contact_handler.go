package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/HenriqueMND/agendamento-app/internal/audit"
	"github.com/HenriqueMND/agendamento-app/internal/httperr"
	"github.com/HenriqueMND/agendamento-app/internal/httpresp"
	"github.com/HenriqueMND/agendamento-app/internal/models"
)

type ContactHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewContactHandler(db *gorm.DB, audit *audit.Dispatcher) *ContactHandler {
	return &ContactHandler{db: db, audit: audit}
}

type ContactRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
}

func (h *ContactHandler) List(c *gin.Context) {
	var contacts []models.Contact
	if err := h.db.
		Where("user_id = ?", ownerID(c)).
		Order("name ASC").
		Find(&contacts).Error; err != nil {
		httperr.Internal(c, "failed_to_list_contacts", "Erro ao listar contatos.")
		return
	}

	httpresp.List(c, contacts)
}

func (h *ContactHandler) Create(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Preencha nome e telefone.")
		return
	}

	contact := models.Contact{
		UserID: ownerID(c),
		Name:   req.Name,
		Phone:  req.Phone,
	}

	if err := h.db.Create(&contact).Error; err != nil {
		httperr.Internal(c, "failed_to_create_contact", "Erro ao salvar contato.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   contact.UserID,
		Action:   "contact_created",
		Entity:   "contact",
		EntityID: contact.ID,
	})

	httpresp.Created(c, contact)
}

func (h *ContactHandler) Update(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Preencha nome e telefone.")
		return
	}

	res := h.db.Model(&models.Contact{}).
		Where("id = ? AND user_id = ?", c.Param("id"), ownerID(c)).
		Updates(map[string]any{
			"name":  req.Name,
			"phone": req.Phone,
		})

	if res.Error != nil {
		httperr.Internal(c, "failed_to_update_contact", "Erro ao atualizar contato.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "contact_not_found", "Contato não encontrado.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Contato atualizado."})
}

// Delete remove só o contato. Agendamentos que o referenciam continuam
// existindo com o vínculo pendurado; a leitura trata a falta dele.
func (h *ContactHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	res := h.db.
		Where("id = ? AND user_id = ?", id, ownerID(c)).
		Delete(&models.Contact{})

	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_contact", "Erro ao apagar contato.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "contact_not_found", "Contato não encontrado.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   ownerID(c),
		Action:   "contact_deleted",
		Entity:   "contact",
		EntityID: id,
	})

	c.JSON(http.StatusOK, gin.H{"message": "Contato apagado."})
}
