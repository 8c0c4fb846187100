package adaptor

import (
	"io"

	"movie-reservation/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Reservation *ReservationHandler
}

func NewHandler(service *usecase.Service, out io.Writer, log *zap.Logger) *Handler {
	return &Handler{
		Reservation: NewReservationHandler(service.Reservation, out, log),
	}
}
