package response

import "time"

// BookingResponse reports a successful booking. PricePerTicket is the unit
// price; total-price math is left to the caller presenting the booking.
type BookingResponse struct {
	BookingID      string    `json:"booking_id"`
	OrderID        string    `json:"order_id"`
	MovieCode      string    `json:"movie_code"`
	MovieTitle     string    `json:"movie_title"`
	Showtime       string    `json:"showtime"`
	Quantity       int       `json:"quantity"`
	PricePerTicket float64   `json:"price_per_ticket"`
	AvailableSeats int       `json:"available_seats"`
	CreatedAt      time.Time `json:"created_at"`
}
