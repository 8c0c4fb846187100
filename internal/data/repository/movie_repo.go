package repository

import (
	"strings"

	"movie-reservation/internal/data/entity"

	"go.uber.org/zap"
)

type MovieRepository interface {
	// Resolve returns the identity registered under code, creating it on
	// first sight. Metadata on repeat occurrences is ignored.
	Resolve(code, title, language, genre string) *entity.Movie
	FindByCode(code string) *entity.Movie
	FindAll() []*entity.Movie
}

type movieRepository struct {
	byCode map[string]*entity.Movie
	order  []*entity.Movie
	log    *zap.Logger
}

func NewMovieRepository(log *zap.Logger) MovieRepository {
	return &movieRepository{
		byCode: make(map[string]*entity.Movie),
		log:    log.With(zap.String("repository", "movie")),
	}
}

func (r *movieRepository) Resolve(code, title, language, genre string) *entity.Movie {
	normalized := strings.ToUpper(code)
	if movie, ok := r.byCode[normalized]; ok {
		// First occurrence wins: the catalog's per-row metadata is assumed
		// consistent for a given code and is not re-checked here.
		return movie
	}

	movie := entity.NewMovie(code, title, language, genre)
	r.byCode[normalized] = movie
	r.order = append(r.order, movie)

	r.log.Debug("Movie registered",
		zap.String("code", movie.Code),
		zap.String("title", movie.Title),
	)

	return movie
}

func (r *movieRepository) FindByCode(code string) *entity.Movie {
	return r.byCode[strings.ToUpper(code)]
}

// FindAll returns every movie in registration order.
func (r *movieRepository) FindAll() []*entity.Movie {
	movies := make([]*entity.Movie, len(r.order))
	copy(movies, r.order)
	return movies
}
