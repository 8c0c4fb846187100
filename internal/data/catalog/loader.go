package catalog

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"movie-reservation/internal/data/entity"
	"movie-reservation/internal/data/repository"

	"go.uber.org/zap"
)

// headerMarker identifies an optional header row in the catalog file.
const headerMarker = "Movie Code"

// Loader reads a catalog file and populates the movie registry and showtime
// ledger. One Loader pass per fresh Repository: loading the same file twice
// duplicates ledger entries.
type Loader struct {
	repo      *repository.Repository
	delimiter string
	log       *zap.Logger
}

func NewLoader(repo *repository.Repository, delimiter string, log *zap.Logger) *Loader {
	return &Loader{
		repo:      repo,
		delimiter: delimiter,
		log:       log.With(zap.String("component", "catalog_loader")),
	}
}

// LoadResult summarizes one pass over a catalog file.
type LoadResult struct {
	RowsRead int
	Loaded   int
	Skipped  int
	Failures []*ParseError
}

// Load reads the catalog line by line. A row that fails to parse is logged
// and skipped; the load as a whole only fails when the file itself cannot
// be read, in which case the repository is left untouched.
func (l *Loader) Load(path string) (*LoadResult, error) {
	file, err := os.Open(path)
	if err != nil {
		l.log.Error("Failed to open catalog",
			zap.String("path", path),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %s", ErrCatalogUnavailable, path)
	}
	defer file.Close()

	result := &LoadResult{}
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	row := 0
	for scanner.Scan() {
		row++
		line := scanner.Text()

		if row == 1 && strings.Contains(line, headerMarker) {
			continue
		}
		result.RowsRead++

		record, err := ParseRecord(line, l.delimiter)
		if err != nil {
			parseErr := &ParseError{Row: row, Line: line, Reason: err}
			result.Skipped++
			result.Failures = append(result.Failures, parseErr)
			l.log.Warn("Skipping catalog row",
				zap.Int("row", row),
				zap.Error(err),
			)
			continue
		}

		movie := l.repo.Movie.Resolve(record.Code, record.Title, record.Language, record.Genre)
		showtime := entity.NewShowtime(movie, record.Date, record.TimeOfDay,
			record.TotalSeats, record.AvailableSeats, record.Price)

		// Duplicate keys still load, but only the first is reachable through
		// natural-key lookup.
		key := movie.Code + " " + showtime.NaturalKey()
		if seen[key] {
			l.log.Warn("Duplicate showtime key",
				zap.Int("row", row),
				zap.String("key", key),
			)
		}
		seen[key] = true

		l.repo.Showtime.Append(showtime)
		result.Loaded++
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}

	l.log.Info("Catalog loaded",
		zap.String("path", path),
		zap.Int("rows", result.RowsRead),
		zap.Int("loaded", result.Loaded),
		zap.Int("skipped", result.Skipped),
	)

	return result, nil
}
