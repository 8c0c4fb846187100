package repository

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"movie-reservation/internal/data/entity"
)

func newShowtime(total, available int) *entity.Showtime {
	movie := entity.NewMovie("AAA", "Inception", "English", "Sci-Fi")
	date := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	return entity.NewShowtime(movie, date, entity.TimeOfDayEvening, total, available, 12.50)
}

func TestShowtimeRepository_BookDecrementsAvailability(t *testing.T) {
	repo := NewShowtimeRepository(zap.NewNop())
	showtime := newShowtime(50, 10)
	repo.Append(showtime)

	require.NoError(t, repo.Book(showtime, 4))
	assert.Equal(t, 44, showtime.BookedSeats)
	assert.Equal(t, 6, showtime.AvailableSeats())
}

func TestShowtimeRepository_BookExactRemainingSeats(t *testing.T) {
	repo := NewShowtimeRepository(zap.NewNop())
	showtime := newShowtime(50, 10)
	repo.Append(showtime)

	require.NoError(t, repo.Book(showtime, 10))
	assert.Equal(t, 0, showtime.AvailableSeats())
}

func TestShowtimeRepository_OverbookingLeavesRecordUntouched(t *testing.T) {
	repo := NewShowtimeRepository(zap.NewNop())
	showtime := newShowtime(50, 10)
	repo.Append(showtime)

	err := repo.Book(showtime, 11)

	var overbooked *OverbookingError
	require.ErrorAs(t, err, &overbooked)
	assert.Equal(t, 10, overbooked.Available)
	assert.Equal(t, 11, overbooked.Requested)

	// no partial booking
	assert.Equal(t, 40, showtime.BookedSeats)
	assert.Equal(t, 10, showtime.AvailableSeats())
}

func TestShowtimeRepository_BookedNeverExceedsTotal(t *testing.T) {
	repo := NewShowtimeRepository(zap.NewNop())
	showtime := newShowtime(10, 10)
	repo.Append(showtime)

	for i := 0; i < 20; i++ {
		repo.Book(showtime, 3)
		assert.GreaterOrEqual(t, showtime.BookedSeats, 0)
		assert.LessOrEqual(t, showtime.BookedSeats, showtime.TotalSeats)
	}
}

func TestShowtimeRepository_ConcurrentBookingNeverOversells(t *testing.T) {
	repo := NewShowtimeRepository(zap.NewNop())
	showtime := newShowtime(100, 100)
	repo.Append(showtime)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			repo.Book(showtime, 3)
		}()
	}
	wg.Wait()

	// 33 bookings of 3 seats fit in 100; the remaining 17 must all fail
	assert.Equal(t, 99, showtime.BookedSeats)
}

func TestShowtimeRepository_FindByMovie(t *testing.T) {
	repo := NewShowtimeRepository(zap.NewNop())
	inception := entity.NewMovie("AAA", "Inception", "English", "Sci-Fi")
	arrival := entity.NewMovie("BBB", "Arrival", "English", "Sci-Fi")
	date := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	first := entity.NewShowtime(inception, date, entity.TimeOfDayMorning, 100, 100, 12.50)
	second := entity.NewShowtime(arrival, date, entity.TimeOfDayMorning, 80, 80, 10.00)
	third := entity.NewShowtime(inception, date, entity.TimeOfDayEvening, 50, 10, 12.50)
	repo.Append(first)
	repo.Append(second)
	repo.Append(third)

	matches := repo.FindByMovie("aaa")
	require.Len(t, matches, 2)
	assert.Same(t, first, matches[0])
	assert.Same(t, third, matches[1])

	assert.Empty(t, repo.FindByMovie("ZZZ"))
}
