package request

// BookTicketsRequest carries one booking attempt. Showtime is the natural
// key in "M/d/yyyy TimeOfDay" form, e.g. "4/1/2025 Evening". Quantity bounds
// are a service-level policy, so the field carries no validate tag.
type BookTicketsRequest struct {
	MovieCode string `json:"movie_code" validate:"required"`
	Showtime  string `json:"showtime" validate:"required"`
	Quantity  int    `json:"quantity"`
}
