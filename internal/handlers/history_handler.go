package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/HenriqueMND/agendamento-app/internal/domain/schedule"
	"github.com/HenriqueMND/agendamento-app/internal/httperr"
	"github.com/HenriqueMND/agendamento-app/internal/httpresp"
	"github.com/HenriqueMND/agendamento-app/internal/models"
	ucSchedule "github.com/HenriqueMND/agendamento-app/internal/usecase/schedule"
)

type HistoryHandler struct {
	db            *gorm.DB
	historyViewUC *ucSchedule.HistoryView
}

func NewHistoryHandler(db *gorm.DB, historyViewUC *ucSchedule.HistoryView) *HistoryHandler {
	return &HistoryHandler{db: db, historyViewUC: historyViewUC}
}

// List é a tela de histórico: atendimentos já ocorridos, com busca por
// nome e período opcional.
func (h *HistoryHandler) List(c *gin.Context) {
	filter := domain.HistoryFilter{
		SearchText: c.Query("search"),
		StartDate:  c.Query("start_date"),
		EndDate:    c.Query("end_date"),
	}

	items, err := h.historyViewUC.Execute(c.Request.Context(), ownerID(c), filter)
	if err != nil {
		writeScheduleError(c, err)
		return
	}

	httpresp.List(c, items)
}

// ListConfirmed lista os registros movidos pelo fluxo de confirmação.
func (h *HistoryHandler) ListConfirmed(c *gin.Context) {
	var entries []models.HistoryEntry
	if err := h.db.
		Where("user_id = ?", ownerID(c)).
		Order("date DESC, time DESC").
		Find(&entries).Error; err != nil {
		httperr.Internal(c, "failed_to_list_history", "Erro ao listar histórico.")
		return
	}

	httpresp.List(c, entries)
}
