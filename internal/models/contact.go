package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Contato do usuário, sem login próprio. Agendamentos podem referenciá-lo,
// mas a exclusão do contato não remove os agendamentos.
type Contact struct {
	ID     string `gorm:"type:uuid;primaryKey" json:"id"`
	UserID string `gorm:"type:uuid;index;not null" json:"user_id"`

	Name     string `gorm:"size:100;not null" json:"name"`
	Phone    string `gorm:"size:20;not null" json:"phone"`
	PhotoURL string `gorm:"size:500" json:"photo_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Contact) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
