package schedule

import (
	"context"
	"time"

	"github.com/HenriqueMND/agendamento-app/internal/audit"
	domain "github.com/HenriqueMND/agendamento-app/internal/domain/schedule"
	"github.com/HenriqueMND/agendamento-app/internal/models"
	"github.com/HenriqueMND/agendamento-app/internal/timezone"
)

type ConfirmAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewConfirmAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ConfirmAppointment {
	return &ConfirmAppointment{
		repo:  repo,
		audit: audit,
		now:   timezone.Now,
	}
}

// Execute confirma o atendimento: copia para o histórico e remove o
// original. São duas escritas sem transação entre elas; se a segunda
// falhar o atendimento fica duplicado e o chamador recebe
// partial_confirm em vez de sucesso ou falha simples.
func (uc *ConfirmAppointment) Execute(
	ctx context.Context,
	ownerID string,
	appointmentID string,
) (*models.HistoryEntry, error) {

	if ownerID == "" {
		return nil, domain.ErrUnauthenticated()
	}

	ap, err := uc.repo.GetAppointment(ctx, ownerID, appointmentID)
	if err != nil {
		return nil, err
	}

	entry := &models.HistoryEntry{
		ID:          ap.ID,
		UserID:      ap.UserID,
		ClientName:  ap.ClientName,
		Date:        ap.Date,
		Time:        ap.Time,
		ContactID:   ap.ContactID,
		ConfirmedAt: uc.now(),
	}

	if err := uc.repo.InsertHistoryEntry(ctx, entry); err != nil {
		return nil, err
	}

	if err := uc.repo.DeleteAppointment(ctx, ownerID, ap.ID); err != nil {
		return entry, domain.ErrPartialConfirm()
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   ownerID,
		Action:   "appointment_confirmed",
		Entity:   "appointment",
		EntityID: ap.ID,
	})

	return entry, nil
}
