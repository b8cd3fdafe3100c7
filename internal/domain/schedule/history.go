package schedule

import (
	"time"

	"github.com/HenriqueMND/agendamento-app/internal/models"
)

// ===============================
// Corte do histórico
// ===============================

// HistoryFilter são os filtros opcionais da tela de histórico.
type HistoryFilter struct {
	SearchText string
	StartDate  string
	EndDate    string
}

// ApplyHistoryCutoff remove do conjunto "data <= hoje" os atendimentos de
// hoje cujo horário ainda não passou. Um atendimento de hoje às 11:00
// não é histórico às 10:00, mesmo com a data já incluída pelo corte
// por data.
func ApplyHistoryCutoff(items []models.Appointment, now time.Time) []models.Appointment {
	today := FormatDate(now)

	out := make([]models.Appointment, 0, len(items))
	for _, ap := range items {
		if ap.Date == today && !BeforeInstant(ap.Date, ap.Time, now) {
			continue
		}
		out = append(out, ap)
	}
	return out
}
