package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"movie-reservation/internal/data/entity"
	"movie-reservation/internal/data/repository"
	"movie-reservation/internal/dto/request"
	"movie-reservation/internal/dto/response"
	"movie-reservation/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrUnknownMovie    = errors.New("unknown movie code")
	ErrUnknownShowtime = errors.New("unknown showtime")
	ErrInvalidQuantity = errors.New("invalid ticket quantity")
)

// ReservationService is the only surface front ends call. Booking failures
// are ordinary error values; *repository.OverbookingError passes through
// unchanged so callers can read the remaining/requested counts.
type ReservationService interface {
	ListMovies(ctx context.Context) []*entity.Movie
	ListShowtimes(ctx context.Context, movieCode string) []*entity.Showtime
	FindShowtime(ctx context.Context, movieCode, showtimeKey string) (*entity.Showtime, error)
	BookTickets(ctx context.Context, req *request.BookTicketsRequest) (*response.BookingResponse, error)
}

type reservationService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewReservationService(repo *repository.Repository, config *utils.Config, log *zap.Logger) ReservationService {
	return &reservationService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "reservation")),
	}
}

// ListMovies returns every movie in catalog order.
func (s *reservationService) ListMovies(ctx context.Context) []*entity.Movie {
	return s.repo.Movie.FindAll()
}

// ListShowtimes returns a movie's showtimes in ledger order. An unknown code
// or a movie without showtimes yields an empty slice, not an error.
func (s *reservationService) ListShowtimes(ctx context.Context, movieCode string) []*entity.Showtime {
	return s.repo.Showtime.FindByMovie(movieCode)
}

// FindShowtime matches a caller-supplied "M/d/yyyy TimeOfDay" key against a
// movie's showtimes, case-insensitively. The first ledger-order match wins.
func (s *reservationService) FindShowtime(ctx context.Context, movieCode, showtimeKey string) (*entity.Showtime, error) {
	key := strings.TrimSpace(showtimeKey)
	for _, showtime := range s.repo.Showtime.FindByMovie(movieCode) {
		if strings.EqualFold(showtime.NaturalKey(), key) {
			return showtime, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownShowtime, showtimeKey)
}

func (s *reservationService) BookTickets(ctx context.Context, req *request.BookTicketsRequest) (*response.BookingResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Book tickets validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	movie := s.repo.Movie.FindByCode(req.MovieCode)
	if movie == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMovie, req.MovieCode)
	}

	showtime, err := s.FindShowtime(ctx, movie.Code, req.Showtime)
	if err != nil {
		return nil, err
	}

	minTickets := s.config.Booking.MinTickets
	maxTickets := s.config.Booking.MaxTickets
	if req.Quantity < minTickets || req.Quantity > maxTickets {
		return nil, fmt.Errorf("%w: %d (must be between %d and %d)",
			ErrInvalidQuantity, req.Quantity, minTickets, maxTickets)
	}

	if err := s.repo.Showtime.Book(showtime, req.Quantity); err != nil {
		return nil, err
	}

	resp := &response.BookingResponse{
		BookingID:      uuid.New().String(),
		OrderID:        utils.GenerateOrderID(),
		MovieCode:      movie.Code,
		MovieTitle:     movie.Title,
		Showtime:       showtime.NaturalKey(),
		Quantity:       req.Quantity,
		PricePerTicket: showtime.Price,
		AvailableSeats: showtime.AvailableSeats(),
		CreatedAt:      time.Now(),
	}

	s.log.Info("Tickets booked",
		zap.String("order_id", resp.OrderID),
		zap.String("movie", resp.MovieCode),
		zap.String("showtime", resp.Showtime),
		zap.Int("quantity", resp.Quantity),
		zap.Int("remaining", resp.AvailableSeats),
	)

	return resp, nil
}
