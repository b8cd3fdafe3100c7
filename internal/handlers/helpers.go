package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/HenriqueMND/agendamento-app/internal/domain/schedule"
	"github.com/HenriqueMND/agendamento-app/internal/httperr"
	"github.com/HenriqueMND/agendamento-app/internal/middleware"
)

func ownerID(c *gin.Context) string {
	return c.MustGet(middleware.ContextUserID).(string)
}

// writeScheduleError traduz os códigos de negócio da agenda para HTTP.
// partial_confirm vira 409: o histórico foi gravado mas o atendimento
// original continua na agenda, e o cliente precisa mostrar isso.
func writeScheduleError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, domain.CodeUnauthenticated):
		httperr.Unauthorized(c, domain.CodeUnauthenticated, "Usuário não autenticado.")

	case httperr.IsBusiness(err, domain.CodeNotFound):
		httperr.NotFound(c, domain.CodeNotFound, "Atendimento não encontrado.")

	case httperr.IsBusiness(err, domain.CodePartialConfirm):
		httperr.Write(
			c,
			http.StatusConflict,
			domain.CodePartialConfirm,
			"Atendimento movido para o histórico, mas não foi removido da agenda. Ele pode aparecer duplicado.",
		)

	case httperr.IsBusiness(err, domain.CodeStoreUnavailable):
		httperr.Write(
			c,
			http.StatusServiceUnavailable,
			domain.CodeStoreUnavailable,
			"Banco de dados indisponível. Tente novamente.",
		)

	case httperr.IsBusiness(err, "invalid_date"):
		httperr.BadRequest(c, "invalid_date", "Data inválida.")

	default:
		httperr.Internal(c, "internal_error", "Erro interno.")
	}
}
