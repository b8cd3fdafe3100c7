package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/HenriqueMND/agendamento-app/internal/domain/schedule"
	"github.com/HenriqueMND/agendamento-app/internal/models"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

// translate reduz os erros do gorm aos dois casos que a agenda distingue:
// registro ausente (ou de outro dono, indistinguível de propósito) e
// falha do armazenamento.
func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound()
	}
	return domain.ErrStoreUnavailable()
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *ScheduleGormRepository) GetAppointment(
	ctx context.Context,
	ownerID string,
	id string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&ap).Error; err != nil {
		return nil, translate(err)
	}

	return &ap, nil
}

func (r *ScheduleGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	if err := r.db.WithContext(ctx).Create(ap).Error; err != nil {
		return domain.ErrStoreUnavailable()
	}
	return nil
}

func (r *ScheduleGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ? AND user_id = ?", ap.ID, ap.UserID).
		Updates(map[string]any{
			"client_name": ap.ClientName,
			"date":        ap.Date,
			"time":        ap.Time,
			"contact_id":  ap.ContactID,
		})

	if res.Error != nil {
		return domain.ErrStoreUnavailable()
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound()
	}
	return nil
}

func (r *ScheduleGormRepository) DeleteAppointment(
	ctx context.Context,
	ownerID string,
	id string,
) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&models.Appointment{})

	if res.Error != nil {
		return domain.ErrStoreUnavailable()
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound()
	}
	return nil
}

// --------------------------------------------------
// Listagens
// --------------------------------------------------

func (r *ScheduleGormRepository) ListAppointmentsByDate(
	ctx context.Context,
	ownerID string,
	date string,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", ownerID, date).
		Order("time ASC").
		Find(&aps).Error; err != nil {
		return nil, domain.ErrStoreUnavailable()
	}

	return aps, nil
}

func (r *ScheduleGormRepository) ListAppointmentsBetween(
	ctx context.Context,
	ownerID string,
	startDate string,
	endDate string,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where(
			"user_id = ? AND date >= ? AND date <= ?",
			ownerID, startDate, endDate,
		).
		Order("date ASC, time ASC").
		Find(&aps).Error; err != nil {
		return nil, domain.ErrStoreUnavailable()
	}

	return aps, nil
}

func (r *ScheduleGormRepository) ListAppointmentsDesc(
	ctx context.Context,
	ownerID string,
	fromDate string,
	toDate string,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).Where("user_id = ?", ownerID)
	if fromDate != "" {
		q = q.Where("date >= ?", fromDate)
	}
	if toDate != "" {
		q = q.Where("date <= ?", toDate)
	}

	var aps []models.Appointment
	if err := q.Order("date DESC, time DESC").Find(&aps).Error; err != nil {
		return nil, domain.ErrStoreUnavailable()
	}

	return aps, nil
}

// --------------------------------------------------
// History
// --------------------------------------------------

func (r *ScheduleGormRepository) InsertHistoryEntry(
	ctx context.Context,
	entry *models.HistoryEntry,
) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return domain.ErrStoreUnavailable()
	}
	return nil
}

func (r *ScheduleGormRepository) ListHistoryEntries(
	ctx context.Context,
	ownerID string,
) ([]models.HistoryEntry, error) {

	var entries []models.HistoryEntry
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("date DESC, time DESC").
		Find(&entries).Error; err != nil {
		return nil, domain.ErrStoreUnavailable()
	}

	return entries, nil
}

// Compile-time check
var _ domain.Repository = (*ScheduleGormRepository)(nil)
