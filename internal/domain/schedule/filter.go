package schedule

import (
	"sort"
	"strings"

	"github.com/HenriqueMND/agendamento-app/internal/models"
)

// ===============================
// Ordenação e filtros
// ===============================

// Funções puras sobre fatias já carregadas. Cada tela consome a mesma
// regra de ordenação: data primeiro, horário como desempate.

func less(a, b models.Appointment) bool {
	if a.Date != b.Date {
		return a.Date < b.Date
	}
	return a.Time < b.Time
}

// SortAsc ordena por (data, horário) crescente. Visões de dia e semana.
func SortAsc(items []models.Appointment) {
	sort.SliceStable(items, func(i, j int) bool {
		return less(items[i], items[j])
	})
}

// SortDesc ordena por (data, horário) decrescente. Visão de histórico.
func SortDesc(items []models.Appointment) {
	sort.SliceStable(items, func(i, j int) bool {
		return less(items[j], items[i])
	})
}

// BucketByDate agrupa por igualdade de data, preservando a ordem de
// entrada dentro de cada dia.
func BucketByDate(items []models.Appointment) map[string][]models.Appointment {
	buckets := make(map[string][]models.Appointment)
	for _, ap := range items {
		buckets[ap.Date] = append(buckets[ap.Date], ap)
	}
	return buckets
}

// MatchesSearch compara o nome do cliente com o texto buscado, sem
// diferenciar maiúsculas. Busca vazia (ou só espaços) aceita tudo.
func MatchesSearch(clientName, searchText string) bool {
	needle := strings.ToLower(strings.TrimSpace(searchText))
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(clientName), needle)
}

// FilterSearch devolve apenas os itens cujo nome contém o texto buscado.
func FilterSearch(items []models.Appointment, searchText string) []models.Appointment {
	if strings.TrimSpace(searchText) == "" {
		return items
	}
	out := make([]models.Appointment, 0, len(items))
	for _, ap := range items {
		if MatchesSearch(ap.ClientName, searchText) {
			out = append(out, ap)
		}
	}
	return out
}
