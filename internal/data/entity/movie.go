package entity

import "strings"

// Movie is the canonical identity of a film in the catalog. Exactly one
// instance exists per normalized code; every showtime of that film shares it.
type Movie struct {
	Code     string
	Title    string
	Language string
	Genre    string
}

func NewMovie(code, title, language, genre string) *Movie {
	return &Movie{
		Code:     strings.ToUpper(code),
		Title:    title,
		Language: language,
		Genre:    genre,
	}
}
