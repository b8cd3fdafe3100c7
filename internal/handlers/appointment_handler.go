package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/HenriqueMND/agendamento-app/internal/audit"
	domain "github.com/HenriqueMND/agendamento-app/internal/domain/schedule"
	"github.com/HenriqueMND/agendamento-app/internal/httperr"
	"github.com/HenriqueMND/agendamento-app/internal/httpresp"
	"github.com/HenriqueMND/agendamento-app/internal/models"
	"github.com/HenriqueMND/agendamento-app/internal/timezone"
	ucSchedule "github.com/HenriqueMND/agendamento-app/internal/usecase/schedule"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher

	dayViewUC  *ucSchedule.DayView
	weekViewUC *ucSchedule.WeekView
	confirmUC  *ucSchedule.ConfirmAppointment
	cancelUC   *ucSchedule.CancelAppointment
}

func NewAppointmentHandler(
	db *gorm.DB,
	audit *audit.Dispatcher,
	dayViewUC *ucSchedule.DayView,
	weekViewUC *ucSchedule.WeekView,
	confirmUC *ucSchedule.ConfirmAppointment,
	cancelUC *ucSchedule.CancelAppointment,
) *AppointmentHandler {
	return &AppointmentHandler{
		db:         db,
		audit:      audit,
		dayViewUC:  dayViewUC,
		weekViewUC: weekViewUC,
		confirmUC:  confirmUC,
		cancelUC:   cancelUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type AppointmentRequest struct {
	ClientName string  `json:"client_name" binding:"required"`
	Date       string  `json:"date" binding:"required"`
	Time       string  `json:"time" binding:"required"`
	ContactID  *string `json:"contact_id"`
}

func (h *AppointmentHandler) validate(c *gin.Context, req *AppointmentRequest) bool {
	if _, err := domain.ParseDate(req.Date); err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida. Use AAAA-MM-DD.")
		return false
	}
	if !domain.ValidTime(req.Time) {
		httperr.BadRequest(c, "invalid_time", "Horário inválido. Use HH:MM.")
		return false
	}

	if req.ContactID != nil && *req.ContactID != "" {
		var contact models.Contact
		if err := h.db.
			Where("id = ? AND user_id = ?", *req.ContactID, ownerID(c)).
			First(&contact).Error; err != nil {
			httperr.BadRequest(c, "contact_not_found", "Contato não encontrado.")
			return false
		}
	}

	return true
}

// ======================================================
// CREATE / UPDATE / GET
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Preencha todos os campos.")
		return
	}

	if !h.validate(c, &req) {
		return
	}

	ap := models.Appointment{
		UserID:     ownerID(c),
		ClientName: req.ClientName,
		Date:       req.Date,
		Time:       req.Time,
		ContactID:  req.ContactID,
	}

	if err := h.db.Create(&ap).Error; err != nil {
		httperr.Internal(c, "failed_to_create_appointment", "Erro ao criar agendamento.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   ap.UserID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: ap.ID,
	})

	httpresp.Created(c, ap)
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	var req AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Preencha todos os campos.")
		return
	}

	if !h.validate(c, &req) {
		return
	}

	res := h.db.Model(&models.Appointment{}).
		Where("id = ? AND user_id = ?", c.Param("id"), ownerID(c)).
		Updates(map[string]any{
			"client_name": req.ClientName,
			"date":        req.Date,
			"time":        req.Time,
			"contact_id":  req.ContactID,
		})

	if res.Error != nil {
		httperr.Internal(c, "failed_to_update_appointment", "Erro ao atualizar agendamento.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "appointment_not_found", "Atendimento não encontrado.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Agendamento atualizado."})
}

// Get devolve o atendimento e, quando há vínculo, o contato. Contato
// apagado não é erro: o atendimento volta sem o detalhe.
func (h *AppointmentHandler) Get(c *gin.Context) {
	var ap models.Appointment
	if err := h.db.
		Where("id = ? AND user_id = ?", c.Param("id"), ownerID(c)).
		First(&ap).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "appointment_not_found", "Atendimento não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_load_appointment", "Erro ao carregar atendimento.")
		return
	}

	var contact *models.Contact
	if ap.ContactID != nil && *ap.ContactID != "" {
		var ct models.Contact
		if err := h.db.
			Where("id = ? AND user_id = ?", *ap.ContactID, ap.UserID).
			First(&ct).Error; err == nil {
			contact = &ct
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"appointment": ap,
		"contact":     contact,
	})
}

// ======================================================
// DAY / WEEK VIEW
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = domain.FormatDate(timezone.Now())
	}

	items, err := h.dayViewUC.Execute(c.Request.Context(), ownerID(c), date)
	if err != nil {
		writeScheduleError(c, err)
		return
	}

	httpresp.List(c, items)
}

func (h *AppointmentHandler) ListWeek(c *gin.Context) {
	weekStart := c.Query("week_start")
	if weekStart == "" {
		now := timezone.Now()
		weekStart = domain.FormatDate(now.AddDate(0, 0, -int(now.Weekday())))
	}

	week, err := h.weekViewUC.Execute(c.Request.Context(), ownerID(c), weekStart)
	if err != nil {
		writeScheduleError(c, err)
		return
	}

	httpresp.OK(c, week)
}

// ======================================================
// CONFIRM / CANCEL
// ======================================================

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	entry, err := h.confirmUC.Execute(c.Request.Context(), ownerID(c), c.Param("id"))
	if err != nil {
		writeScheduleError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	if err := h.cancelUC.Execute(c.Request.Context(), ownerID(c), c.Param("id")); err != nil {
		writeScheduleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Atendimento cancelado."})
}
