package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Appointment é um atendimento futuro do usuário.
//
// Date e Time são armazenados como texto ("2006-01-02" / "15:04") no fuso
// local do dono, exatamente como exibidos. Data e hora juntas ordenam a
// agenda, mas não são únicas: dois atendimentos podem dividir o mesmo
// horário.
type Appointment struct {
	ID     string `gorm:"type:uuid;primaryKey" json:"id"`
	UserID string `gorm:"type:uuid;index;not null" json:"user_id"`

	ClientName string `gorm:"size:100;not null" json:"client_name"`
	Date       string `gorm:"size:10;not null;index" json:"date"`
	Time       string `gorm:"size:5;not null" json:"time"`

	ContactID *string `gorm:"type:uuid" json:"contact_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
