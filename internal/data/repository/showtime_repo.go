package repository

import (
	"strings"
	"sync"

	"movie-reservation/internal/data/entity"

	"go.uber.org/zap"
)

type ShowtimeRepository interface {
	Append(showtime *entity.Showtime)
	FindAll() []*entity.Showtime
	FindByMovie(code string) []*entity.Showtime

	// Book increments the booked-seat count of a showtime by quantity, or
	// returns *OverbookingError without touching it.
	Book(showtime *entity.Showtime, quantity int) error
}

type showtimeRepository struct {
	mu        sync.Mutex
	showtimes []*entity.Showtime
	log       *zap.Logger
}

func NewShowtimeRepository(log *zap.Logger) ShowtimeRepository {
	return &showtimeRepository{
		log: log.With(zap.String("repository", "showtime")),
	}
}

// Append adds a showtime to the end of the ledger. Insertion order is the
// display order, so it is never re-sorted.
func (r *showtimeRepository) Append(showtime *entity.Showtime) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.showtimes = append(r.showtimes, showtime)
}

func (r *showtimeRepository) FindAll() []*entity.Showtime {
	r.mu.Lock()
	defer r.mu.Unlock()

	showtimes := make([]*entity.Showtime, len(r.showtimes))
	copy(showtimes, r.showtimes)
	return showtimes
}

func (r *showtimeRepository) FindByMovie(code string) []*entity.Showtime {
	r.mu.Lock()
	defer r.mu.Unlock()

	normalized := strings.ToUpper(code)
	var matches []*entity.Showtime
	for _, showtime := range r.showtimes {
		if showtime.Movie.Code == normalized {
			matches = append(matches, showtime)
		}
	}
	return matches
}

func (r *showtimeRepository) Book(showtime *entity.Showtime, quantity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Capacity check and increment happen under one lock so two concurrent
	// callers cannot both pass the check against the same pre-increment count.
	if showtime.BookedSeats+quantity > showtime.TotalSeats {
		overbooked := &OverbookingError{
			Available: showtime.AvailableSeats(),
			Requested: quantity,
		}
		r.log.Warn("Booking rejected",
			zap.String("movie", showtime.Movie.Code),
			zap.String("showtime", showtime.NaturalKey()),
			zap.Int("available", overbooked.Available),
			zap.Int("requested", overbooked.Requested),
		)
		return overbooked
	}

	showtime.BookedSeats += quantity

	r.log.Info("Seats booked",
		zap.String("movie", showtime.Movie.Code),
		zap.String("showtime", showtime.NaturalKey()),
		zap.Int("quantity", quantity),
		zap.Int("remaining", showtime.AvailableSeats()),
	)

	return nil
}
