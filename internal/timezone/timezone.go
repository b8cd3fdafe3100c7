package timezone

import "time"

// O app roda no fuso do salão; as datas e horários em texto da agenda são
// sempre interpretados aqui.
const DefaultTimezone = "America/Sao_Paulo"

func Location() *time.Location {
	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.Local
	}
	return loc
}

func Now() time.Time {
	return time.Now().In(Location())
}
