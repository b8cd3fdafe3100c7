package models

import "time"

// HistoryEntry é o registro terminal de um atendimento confirmado.
// Mesma forma de Appointment; escrito apenas pelo fluxo de confirmação,
// que copia o atendimento para cá e depois remove o original.
type HistoryEntry struct {
	ID     string `gorm:"type:uuid;primaryKey" json:"id"`
	UserID string `gorm:"type:uuid;index;not null" json:"user_id"`

	ClientName string `gorm:"size:100;not null" json:"client_name"`
	Date       string `gorm:"size:10;not null;index" json:"date"`
	Time       string `gorm:"size:5;not null" json:"time"`

	ContactID *string `gorm:"type:uuid" json:"contact_id"`

	ConfirmedAt time.Time `json:"confirmed_at"`
	CreatedAt   time.Time `json:"created_at"`
}
