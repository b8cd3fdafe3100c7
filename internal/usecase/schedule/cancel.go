package schedule

import (
	"context"

	"github.com/HenriqueMND/agendamento-app/internal/audit"
	domain "github.com/HenriqueMND/agendamento-app/internal/domain/schedule"
)

type CancelAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute remove o atendimento sem registrar histórico. Repetir o
// cancelamento de um id já removido devolve not found.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	ownerID string,
	appointmentID string,
) error {

	if ownerID == "" {
		return domain.ErrUnauthenticated()
	}

	if err := uc.repo.DeleteAppointment(ctx, ownerID, appointmentID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   ownerID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: appointmentID,
	})

	return nil
}
