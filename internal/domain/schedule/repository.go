package schedule

import (
	"context"

	"github.com/HenriqueMND/agendamento-app/internal/models"
)

// Repository é o contrato mínimo da agenda sobre o armazenamento.
// Toda operação recebe o ownerID e só enxerga linhas daquele dono.
// Cada chamada é atômica por si; não há transação entre duas chamadas.
type Repository interface {
	// -------- Appointment --------
	GetAppointment(
		ctx context.Context,
		ownerID string,
		id string,
	) (*models.Appointment, error)

	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// DeleteAppointment remove a linha do dono. Sem linha correspondente,
	// devolve not found, nunca sucesso silencioso.
	DeleteAppointment(
		ctx context.Context,
		ownerID string,
		id string,
	) error

	// -------- Listagens --------
	ListAppointmentsByDate(
		ctx context.Context,
		ownerID string,
		date string,
	) ([]models.Appointment, error)

	ListAppointmentsBetween(
		ctx context.Context,
		ownerID string,
		startDate string,
		endDate string,
	) ([]models.Appointment, error)

	// ListAppointmentsDesc lista em (data, horário) decrescente dentro
	// dos limites; fromDate ou toDate vazios deixam o lado aberto.
	ListAppointmentsDesc(
		ctx context.Context,
		ownerID string,
		fromDate string,
		toDate string,
	) ([]models.Appointment, error)

	// -------- History --------
	InsertHistoryEntry(
		ctx context.Context,
		entry *models.HistoryEntry,
	) error

	ListHistoryEntries(
		ctx context.Context,
		ownerID string,
	) ([]models.HistoryEntry, error)
}
