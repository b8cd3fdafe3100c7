package schedule

import (
	"context"

	domain "github.com/HenriqueMND/agendamento-app/internal/domain/schedule"
	"github.com/HenriqueMND/agendamento-app/internal/httperr"
	"github.com/HenriqueMND/agendamento-app/internal/models"
)

type DayView struct {
	repo domain.Repository
}

func NewDayView(
	repo domain.Repository,
) *DayView {
	return &DayView{
		repo: repo,
	}
}

func (uc *DayView) Execute(
	ctx context.Context,
	ownerID string,
	date string,
) ([]models.Appointment, error) {

	if ownerID == "" {
		return nil, domain.ErrUnauthenticated()
	}

	if _, err := domain.ParseDate(date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	items, err := uc.repo.ListAppointmentsByDate(ctx, ownerID, date)
	if err != nil {
		return nil, err
	}

	domain.SortAsc(items)
	return items, nil
}
