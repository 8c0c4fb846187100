package adaptor

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"movie-reservation/internal/data/entity"
	"movie-reservation/internal/data/repository"
	"movie-reservation/internal/dto/request"
	"movie-reservation/internal/usecase"

	"go.uber.org/zap"
)

// ReservationHandler renders the reservation facade onto the console. It is
// strictly a caller of the service: all booking rules live below it.
type ReservationHandler struct {
	service usecase.ReservationService
	out     io.Writer
	log     *zap.Logger
}

func NewReservationHandler(service usecase.ReservationService, out io.Writer, log *zap.Logger) *ReservationHandler {
	return &ReservationHandler{
		service: service,
		out:     out,
		log:     log.With(zap.String("handler", "reservation")),
	}
}

// ViewMovies prints every movie with its showtimes, catalog order.
func (h *ReservationHandler) ViewMovies(ctx context.Context) {
	movies := h.service.ListMovies(ctx)

	fmt.Fprintln(h.out, "\nAvailable Movies:")
	if len(movies) == 0 {
		fmt.Fprintln(h.out, "No movies available.")
		return
	}

	for _, movie := range movies {
		fmt.Fprintf(h.out, "%s - %s (%s)\n", movie.Code, movie.Title, movie.Genre)
		for _, showtime := range h.service.ListShowtimes(ctx, movie.Code) {
			h.printShowtime(showtime)
		}
		fmt.Fprintln(h.out)
	}
}

// MakeReservation walks the prompt sequence for a single booking attempt.
// Any invalid answer ends the attempt and returns to the menu.
func (h *ReservationHandler) MakeReservation(ctx context.Context, in *bufio.Reader) {
	fmt.Fprintln(h.out, "\nEnter the Movie Code from the available movies:")
	code, ok := h.readLine(in)
	if !ok {
		return
	}

	selected := h.findMovie(ctx, code)
	if selected == nil {
		fmt.Fprintln(h.out, "Invalid Movie Code. Please try again.")
		return
	}
	fmt.Fprintf(h.out, "You selected: %s\n", selected.Title)

	showtimes := h.service.ListShowtimes(ctx, selected.Code)
	if len(showtimes) == 0 {
		fmt.Fprintln(h.out, "No available showtimes for this movie.")
		return
	}

	fmt.Fprintln(h.out, "\nAvailable Showtimes:")
	for _, showtime := range showtimes {
		h.printShowtime(showtime)
	}

	fmt.Fprintln(h.out, "\nEnter the showtime (e.g., 4/1/2025 Morning):")
	showtimeKey, ok := h.readLine(in)
	if !ok {
		return
	}

	fmt.Fprintln(h.out, "Enter the number of tickets to book (1-10):")
	quantityInput, ok := h.readLine(in)
	if !ok {
		return
	}
	quantity, err := strconv.Atoi(quantityInput)
	if err != nil {
		fmt.Fprintln(h.out, "Please enter a valid number.")
		return
	}

	resp, err := h.service.BookTickets(ctx, &request.BookTicketsRequest{
		MovieCode: selected.Code,
		Showtime:  showtimeKey,
		Quantity:  quantity,
	})
	if err != nil {
		h.renderBookingError(err)
		return
	}

	fmt.Fprintf(h.out, "Successfully booked %d tickets for %s, %s.\n",
		resp.Quantity, resp.MovieTitle, resp.Showtime)
	fmt.Fprintf(h.out, "Order %s - total $%.2f, %d seats remaining.\n",
		resp.OrderID, float64(resp.Quantity)*resp.PricePerTicket, resp.AvailableSeats)
}

func (h *ReservationHandler) findMovie(ctx context.Context, code string) *entity.Movie {
	normalized := strings.ToUpper(code)
	for _, movie := range h.service.ListMovies(ctx) {
		if movie.Code == normalized {
			return movie
		}
	}
	return nil
}

func (h *ReservationHandler) printShowtime(showtime *entity.Showtime) {
	fmt.Fprintf(h.out, "%s - %d/%d seats available ($%.2f)\n",
		showtime.NaturalKey(), showtime.AvailableSeats(), showtime.TotalSeats, showtime.Price)
}

func (h *ReservationHandler) readLine(in *bufio.Reader) (string, bool) {
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	return strings.TrimSpace(line), true
}

func (h *ReservationHandler) renderBookingError(err error) {
	var overbooked *repository.OverbookingError
	switch {
	case errors.As(err, &overbooked):
		fmt.Fprintf(h.out, "Cannot book %d tickets. Only %d seats remaining.\n",
			overbooked.Requested, overbooked.Available)
	case errors.Is(err, usecase.ErrUnknownShowtime):
		fmt.Fprintln(h.out, "Invalid showtime. Please try again.")
	case errors.Is(err, usecase.ErrInvalidQuantity):
		fmt.Fprintf(h.out, "Cannot book that many tickets: %v.\n", err)
	case errors.Is(err, usecase.ErrUnknownMovie):
		fmt.Fprintln(h.out, "Invalid Movie Code. Please try again.")
	default:
		h.log.Error("Booking failed", zap.Error(err))
		fmt.Fprintf(h.out, "Booking failed: %v\n", err)
	}
}
