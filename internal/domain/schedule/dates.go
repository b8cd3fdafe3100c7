package schedule

import "time"

// ===============================
// Datas e horários da agenda
// ===============================

// Datas circulam como "2006-01-02" e horários como "15:04", no fuso do
// dono do registro. Os dois formatos ordenam lexicograficamente, então as
// comparações abaixo são comparações de string.

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

func ValidTime(s string) bool {
	_, err := time.Parse(TimeLayout, s)
	return err == nil
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

func AddDays(date string, days int) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, days).Format(DateLayout), nil
}

// WeekEnd devolve o último dia da janela semanal: weekStart + 6 dias.
func WeekEnd(weekStart string) (string, error) {
	return AddDays(weekStart, 6)
}

// WeekDays devolve os dias exibidos na semana: weekStart+1 até weekStart+6.
// O primeiro dia da semana fica de fora porque o salão não abre nesse dia.
func WeekDays(weekStart string) ([]string, error) {
	days := make([]string, 0, 6)
	for i := 1; i <= 6; i++ {
		d, err := AddDays(weekStart, i)
		if err != nil {
			return nil, err
		}
		days = append(days, d)
	}
	return days, nil
}

// BeforeInstant informa se o par data+horário é estritamente anterior a now.
func BeforeInstant(date, timeOfDay string, now time.Time) bool {
	at, err := time.ParseInLocation(
		DateLayout+" "+TimeLayout,
		date+" "+timeOfDay,
		now.Location(),
	)
	if err != nil {
		return false
	}
	return at.Before(now)
}
