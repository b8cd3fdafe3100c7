package dto

import "github.com/HenriqueMND/agendamento-app/internal/models"

type WeekDayDTO struct {
	Date         string               `json:"date"`
	Appointments []models.Appointment `json:"appointments"`
}

type WeekViewDTO struct {
	WeekStart    string               `json:"week_start"`
	Appointments []models.Appointment `json:"appointments"`
	Days         []WeekDayDTO         `json:"days"`
}
