package repository

import (
	"go.uber.org/zap"
)

// Repository groups the in-memory stores seeded once from the catalog file.
type Repository struct {
	Movie    MovieRepository
	Showtime ShowtimeRepository
}

func NewRepository(log *zap.Logger) *Repository {
	return &Repository{
		Movie:    NewMovieRepository(log),
		Showtime: NewShowtimeRepository(log),
	}
}
