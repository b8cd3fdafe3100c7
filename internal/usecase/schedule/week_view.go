package schedule

import (
	"context"

	domain "github.com/HenriqueMND/agendamento-app/internal/domain/schedule"
	"github.com/HenriqueMND/agendamento-app/internal/dto"
	"github.com/HenriqueMND/agendamento-app/internal/httperr"
)

type WeekView struct {
	repo domain.Repository
}

func NewWeekView(
	repo domain.Repository,
) *WeekView {
	return &WeekView{
		repo: repo,
	}
}

// Execute carrega a janela [weekStart, weekStart+6] e monta os seis dias
// exibidos (weekStart+1 até weekStart+6), agrupados por data.
func (uc *WeekView) Execute(
	ctx context.Context,
	ownerID string,
	weekStart string,
) (*dto.WeekViewDTO, error) {

	if ownerID == "" {
		return nil, domain.ErrUnauthenticated()
	}

	if _, err := domain.ParseDate(weekStart); err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	weekEnd, err := domain.WeekEnd(weekStart)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	items, err := uc.repo.ListAppointmentsBetween(ctx, ownerID, weekStart, weekEnd)
	if err != nil {
		return nil, err
	}

	domain.SortAsc(items)

	days, err := domain.WeekDays(weekStart)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	buckets := domain.BucketByDate(items)

	// A janela consultada cobre os sete dias, mas só os seis exibidos
	// entram no resultado: atendimentos no próprio weekStart ficam fora.
	out := &dto.WeekViewDTO{
		WeekStart: weekStart,
		Days:      make([]dto.WeekDayDTO, 0, len(days)),
	}
	for _, day := range days {
		out.Days = append(out.Days, dto.WeekDayDTO{
			Date:         day,
			Appointments: buckets[day],
		})
		out.Appointments = append(out.Appointments, buckets[day]...)
	}

	return out, nil
}
