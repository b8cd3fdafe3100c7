package schedule

import "github.com/HenriqueMND/agendamento-app/internal/httperr"

// ===============================
// Resultados de negócio
// ===============================

// Um registro de outro dono responde igual a um registro inexistente:
// ambos viram CodeNotFound. CodePartialConfirm marca a confirmação que
// gravou o histórico mas não removeu o atendimento original.
const (
	CodeUnauthenticated  = "unauthenticated"
	CodeNotFound         = "appointment_not_found"
	CodeStoreUnavailable = "store_unavailable"
	CodePartialConfirm   = "partial_confirm"
)

func ErrUnauthenticated() error {
	return httperr.ErrBusiness(CodeUnauthenticated)
}

func ErrNotFound() error {
	return httperr.ErrBusiness(CodeNotFound)
}

func ErrStoreUnavailable() error {
	return httperr.ErrBusiness(CodeStoreUnavailable)
}

func ErrPartialConfirm() error {
	return httperr.ErrBusiness(CodePartialConfirm)
}
