package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DateLayout is the date format used by the catalog file and by natural
// showtime keys (M/d/yyyy).
const DateLayout = "1/2/2006"

type TimeOfDay string

const (
	TimeOfDayMorning   TimeOfDay = "Morning"
	TimeOfDayAfternoon TimeOfDay = "Afternoon"
	TimeOfDayEvening   TimeOfDay = "Evening"
)

// ParseTimeOfDay maps a catalog label onto a TimeOfDay, case-insensitively.
// The set is closed; any other label is a data error.
func ParseTimeOfDay(label string) (TimeOfDay, error) {
	switch strings.ToUpper(strings.TrimSpace(label)) {
	case "MORNING":
		return TimeOfDayMorning, nil
	case "AFTERNOON":
		return TimeOfDayAfternoon, nil
	case "EVENING":
		return TimeOfDayEvening, nil
	default:
		return "", fmt.Errorf("invalid time of day: %q", label)
	}
}

// Showtime is one bookable screening. TotalSeats and Price are fixed at
// creation; BookedSeats is mutated only through the showtime repository.
type Showtime struct {
	ID          uuid.UUID
	Movie       *Movie
	Date        time.Time
	TimeOfDay   TimeOfDay
	TotalSeats  int
	BookedSeats int
	Price       float64
}

func NewShowtime(movie *Movie, date time.Time, timeOfDay TimeOfDay, totalSeats, availableSeats int, price float64) *Showtime {
	return &Showtime{
		ID:          uuid.New(),
		Movie:       movie,
		Date:        date,
		TimeOfDay:   timeOfDay,
		TotalSeats:  totalSeats,
		BookedSeats: totalSeats - availableSeats,
		Price:       price,
	}
}

// NaturalKey is the stable caller-facing lookup key for a showtime,
// e.g. "4/1/2025 Evening".
func (s *Showtime) NaturalKey() string {
	return s.Date.Format(DateLayout) + " " + string(s.TimeOfDay)
}

func (s *Showtime) AvailableSeats() int {
	return s.TotalSeats - s.BookedSeats
}
