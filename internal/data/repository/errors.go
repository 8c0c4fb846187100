package repository

import "fmt"

// OverbookingError reports a booking attempt that would exceed a showtime's
// capacity. The showtime is left unchanged when it is returned.
type OverbookingError struct {
	Available int
	Requested int
}

func (e *OverbookingError) Error() string {
	return fmt.Sprintf("cannot book %d tickets, only %d seats remaining", e.Requested, e.Available)
}
