package schedule

import (
	"context"
	"time"

	domain "github.com/HenriqueMND/agendamento-app/internal/domain/schedule"
	"github.com/HenriqueMND/agendamento-app/internal/httperr"
	"github.com/HenriqueMND/agendamento-app/internal/models"
	"github.com/HenriqueMND/agendamento-app/internal/timezone"
)

type HistoryView struct {
	repo domain.Repository
	now  func() time.Time
}

func NewHistoryView(
	repo domain.Repository,
) *HistoryView {
	return &HistoryView{
		repo: repo,
		now:  timezone.Now,
	}
}

// Execute lista atendimentos já ocorridos: data até hoje, limites
// opcionais de período, corte do mesmo dia pelo horário atual e busca
// por nome. Ordem (data, horário) decrescente.
func (uc *HistoryView) Execute(
	ctx context.Context,
	ownerID string,
	filter domain.HistoryFilter,
) ([]models.Appointment, error) {

	if ownerID == "" {
		return nil, domain.ErrUnauthenticated()
	}

	for _, d := range []string{filter.StartDate, filter.EndDate} {
		if d == "" {
			continue
		}
		if _, err := domain.ParseDate(d); err != nil {
			return nil, httperr.ErrBusiness("invalid_date")
		}
	}

	now := uc.now()
	today := domain.FormatDate(now)

	to := today
	if filter.EndDate != "" && filter.EndDate < today {
		to = filter.EndDate
	}

	items, err := uc.repo.ListAppointmentsDesc(ctx, ownerID, filter.StartDate, to)
	if err != nil {
		return nil, err
	}

	items = domain.ApplyHistoryCutoff(items, now)
	items = domain.FilterSearch(items, filter.SearchText)
	domain.SortDesc(items)

	return items, nil
}
