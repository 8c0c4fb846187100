package catalog

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"movie-reservation/internal/data/entity"
)

// minFields is the column count a catalog row must carry:
// code|title|date|time|total|available|price|language|genre
const minFields = 9

// Record is one validated catalog row, not yet bound to the registry.
type Record struct {
	Code           string
	Title          string
	Date           time.Time
	TimeOfDay      entity.TimeOfDay
	TotalSeats     int
	AvailableSeats int
	Price          float64
	Language       string
	Genre          string
}

// ParseRecord splits and validates a single catalog line. Pure function: no
// state is touched on either outcome.
func ParseRecord(line, delimiter string) (*Record, error) {
	parts := strings.Split(line, delimiter)
	if len(parts) < minFields {
		return nil, fmt.Errorf("%w: expected %d fields, got %d", ErrMalformedRow, minFields, len(parts))
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	date, err := time.Parse(entity.DateLayout, parts[2])
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, parts[2])
	}

	timeOfDay, err := entity.ParseTimeOfDay(parts[3])
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimeSlot, parts[3])
	}

	totalSeats, err := strconv.Atoi(parts[4])
	if err != nil {
		return nil, fmt.Errorf("%w: total seats %q", ErrInvalidNumber, parts[4])
	}

	availableSeats, err := strconv.Atoi(parts[5])
	if err != nil {
		return nil, fmt.Errorf("%w: available seats %q", ErrInvalidNumber, parts[5])
	}

	price, err := strconv.ParseFloat(parts[6], 64)
	if err != nil {
		return nil, fmt.Errorf("%w: price %q", ErrInvalidNumber, parts[6])
	}

	// A row advertising more free seats than the hall holds would start the
	// showtime with a negative booked count. Rejected here rather than
	// surfacing later as a broken ledger entry.
	if totalSeats < 0 || availableSeats < 0 || availableSeats > totalSeats {
		return nil, fmt.Errorf("%w: %d available of %d total seats", ErrInvalidNumber, availableSeats, totalSeats)
	}
	if price < 0 {
		return nil, fmt.Errorf("%w: negative price %.2f", ErrInvalidNumber, price)
	}

	return &Record{
		Code:           parts[0],
		Title:          parts[1],
		Date:           date,
		TimeOfDay:      timeOfDay,
		TotalSeats:     totalSeats,
		AvailableSeats: availableSeats,
		Price:          price,
		Language:       parts[7],
		Genre:          parts[8],
	}, nil
}
