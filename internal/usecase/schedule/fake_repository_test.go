package schedule

import (
	"context"

	domain "github.com/HenriqueMND/agendamento-app/internal/domain/schedule"
	"github.com/HenriqueMND/agendamento-app/internal/models"
)

// fakeRepo simula o armazenamento: cada chamada filtra pelo dono, cada
// escrita é atômica por si e falhas podem ser injetadas por operação.
type fakeRepo struct {
	appointments map[string]models.Appointment
	history      map[string]models.HistoryEntry

	failList          bool
	failInsertHistory bool
	failDelete        bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		appointments: make(map[string]models.Appointment),
		history:      make(map[string]models.HistoryEntry),
	}
}

func (f *fakeRepo) add(ap models.Appointment) {
	f.appointments[ap.ID] = ap
}

func (f *fakeRepo) GetAppointment(
	ctx context.Context,
	ownerID string,
	id string,
) (*models.Appointment, error) {
	ap, ok := f.appointments[id]
	if !ok || ap.UserID != ownerID {
		return nil, domain.ErrNotFound()
	}
	out := ap
	return &out, nil
}

func (f *fakeRepo) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	f.appointments[ap.ID] = *ap
	return nil
}

func (f *fakeRepo) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	cur, ok := f.appointments[ap.ID]
	if !ok || cur.UserID != ap.UserID {
		return domain.ErrNotFound()
	}
	f.appointments[ap.ID] = *ap
	return nil
}

func (f *fakeRepo) DeleteAppointment(
	ctx context.Context,
	ownerID string,
	id string,
) error {
	if f.failDelete {
		return domain.ErrStoreUnavailable()
	}
	ap, ok := f.appointments[id]
	if !ok || ap.UserID != ownerID {
		return domain.ErrNotFound()
	}
	delete(f.appointments, id)
	return nil
}

func (f *fakeRepo) ListAppointmentsByDate(
	ctx context.Context,
	ownerID string,
	date string,
) ([]models.Appointment, error) {
	if f.failList {
		return nil, domain.ErrStoreUnavailable()
	}
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.UserID == ownerID && ap.Date == date {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListAppointmentsBetween(
	ctx context.Context,
	ownerID string,
	startDate string,
	endDate string,
) ([]models.Appointment, error) {
	if f.failList {
		return nil, domain.ErrStoreUnavailable()
	}
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.UserID == ownerID && ap.Date >= startDate && ap.Date <= endDate {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListAppointmentsDesc(
	ctx context.Context,
	ownerID string,
	fromDate string,
	toDate string,
) ([]models.Appointment, error) {
	if f.failList {
		return nil, domain.ErrStoreUnavailable()
	}
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.UserID != ownerID {
			continue
		}
		if fromDate != "" && ap.Date < fromDate {
			continue
		}
		if toDate != "" && ap.Date > toDate {
			continue
		}
		out = append(out, ap)
	}
	return out, nil
}

func (f *fakeRepo) InsertHistoryEntry(
	ctx context.Context,
	entry *models.HistoryEntry,
) error {
	if f.failInsertHistory {
		return domain.ErrStoreUnavailable()
	}
	f.history[entry.ID] = *entry
	return nil
}

func (f *fakeRepo) ListHistoryEntries(
	ctx context.Context,
	ownerID string,
) ([]models.HistoryEntry, error) {
	var out []models.HistoryEntry
	for _, e := range f.history {
		if e.UserID == ownerID {
			out = append(out, e)
		}
	}
	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

// noopSink descarta eventos de auditoria nos testes.
type noopSink struct{}

func (noopSink) Log(userID, action, entity, entityID string, metadata any) error {
	return nil
}
