package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HenriqueMND/agendamento-app/internal/models"
)

func ap(date, timeOfDay, name string) models.Appointment {
	return models.Appointment{
		ClientName: name,
		Date:       date,
		Time:       timeOfDay,
	}
}

func times(items []models.Appointment) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Time)
	}
	return out
}

func TestSortAscOrdersByTimeWithinSameDate(t *testing.T) {
	items := []models.Appointment{
		ap("2024-03-10", "09:00", "a"),
		ap("2024-03-10", "08:30", "b"),
		ap("2024-03-10", "14:00", "c"),
	}

	SortAsc(items)

	assert.Equal(t, []string{"08:30", "09:00", "14:00"}, times(items))
}

func TestSortAscUsesDateFirst(t *testing.T) {
	items := []models.Appointment{
		ap("2024-03-11", "07:00", "a"),
		ap("2024-03-10", "23:00", "b"),
	}

	SortAsc(items)

	assert.Equal(t, "2024-03-10", items[0].Date)
	assert.Equal(t, "2024-03-11", items[1].Date)
}

func TestSortDescReversesDateAndTime(t *testing.T) {
	items := []models.Appointment{
		ap("2024-03-10", "08:00", "a"),
		ap("2024-03-11", "09:00", "b"),
		ap("2024-03-11", "07:00", "c"),
	}

	SortDesc(items)

	assert.Equal(t, "b", items[0].ClientName)
	assert.Equal(t, "c", items[1].ClientName)
	assert.Equal(t, "a", items[2].ClientName)
}

func TestWeekDaysSkipFirstDay(t *testing.T) {
	// 2024-01-07 é domingo; o dia fechado fica fora dos dias exibidos.
	days, err := WeekDays("2024-01-07")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"2024-01-08",
		"2024-01-09",
		"2024-01-10",
		"2024-01-11",
		"2024-01-12",
		"2024-01-13",
	}, days)
	assert.NotContains(t, days, "2024-01-07")
}

func TestWeekEnd(t *testing.T) {
	end, err := WeekEnd("2024-01-07")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-13", end)
}

func TestWeekDaysInvalidDate(t *testing.T) {
	_, err := WeekDays("07/01/2024")
	assert.Error(t, err)
}

func TestBucketByDateGroupsPreservingOrder(t *testing.T) {
	items := []models.Appointment{
		ap("2024-01-08", "08:00", "a"),
		ap("2024-01-09", "10:00", "b"),
		ap("2024-01-08", "09:00", "c"),
	}

	buckets := BucketByDate(items)

	require.Len(t, buckets, 2)
	assert.Equal(t, []string{"08:00", "09:00"}, times(buckets["2024-01-08"]))
	assert.Equal(t, []string{"10:00"}, times(buckets["2024-01-09"]))
}

func TestMatchesSearch(t *testing.T) {
	cases := []struct {
		name   string
		search string
		want   bool
	}{
		{"Ana Souza", "ana", true},
		{"Mariana Lima", "ana", true},
		{"Pedro", "ana", false},
		{"Pedro", "", true},
		{"Pedro", "   ", true},
		{"ANA", "Ana", true},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, MatchesSearch(tc.name, tc.search),
			"name=%q search=%q", tc.name, tc.search)
	}
}

func TestFilterSearch(t *testing.T) {
	items := []models.Appointment{
		ap("2024-03-01", "08:00", "Ana Souza"),
		ap("2024-03-01", "09:00", "Mariana Lima"),
		ap("2024-03-01", "10:00", "Pedro"),
	}

	got := FilterSearch(items, "  ana ")
	require.Len(t, got, 2)
	assert.Equal(t, "Ana Souza", got[0].ClientName)
	assert.Equal(t, "Mariana Lima", got[1].ClientName)

	assert.Len(t, FilterSearch(items, ""), 3)
}

func TestApplyHistoryCutoffSameDay(t *testing.T) {
	now := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)

	items := []models.Appointment{
		ap("2024-03-05", "09:00", "passado"),
		ap("2024-03-05", "11:00", "futuro"),
		ap("2024-03-04", "23:00", "ontem"),
	}

	got := ApplyHistoryCutoff(items, now)

	require.Len(t, got, 2)
	assert.Equal(t, "passado", got[0].ClientName)
	assert.Equal(t, "ontem", got[1].ClientName)
}

func TestApplyHistoryCutoffExactInstantIsExcluded(t *testing.T) {
	now := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)

	got := ApplyHistoryCutoff([]models.Appointment{
		ap("2024-03-05", "10:00", "agora"),
	}, now)

	assert.Empty(t, got)
}

func TestBeforeInstant(t *testing.T) {
	now := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)

	assert.True(t, BeforeInstant("2024-03-05", "09:59", now))
	assert.False(t, BeforeInstant("2024-03-05", "10:00", now))
	assert.False(t, BeforeInstant("2024-03-05", "10:01", now))
	assert.False(t, BeforeInstant("banana", "10:00", now))
}

func TestAddDays(t *testing.T) {
	d, err := AddDays("2024-02-28", 2)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", d)

	_, err = AddDays("", 1)
	assert.Error(t, err)
}

func TestValidTime(t *testing.T) {
	assert.True(t, ValidTime("08:30"))
	assert.False(t, ValidTime("25:00"))
	assert.False(t, ValidTime("8h30"))
}
