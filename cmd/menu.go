package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"movie-reservation/internal/adaptor"
)

// RunMenu drives the interactive console loop until the user exits or the
// input stream ends.
func RunMenu(handler *adaptor.Handler, in io.Reader, out io.Writer) {
	reader := bufio.NewReader(in)
	ctx := context.Background()

	fmt.Fprintln(out, "Welcome to the Movie Ticket Reservation System!")

	for {
		fmt.Fprintln(out, "\nMain Menu:")
		fmt.Fprintln(out, "1. View Movies and Showtimes")
		fmt.Fprintln(out, "2. Make a Reservation")
		fmt.Fprintln(out, "3. Exit")
		fmt.Fprint(out, "Enter your choice: ")

		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}

		switch strings.TrimSpace(line) {
		case "1":
			handler.Reservation.ViewMovies(ctx)
		case "2":
			handler.Reservation.MakeReservation(ctx, reader)
		case "3":
			fmt.Fprintln(out, "Thank you for using our system!")
			return
		default:
			fmt.Fprintln(out, "Invalid choice. Please try again.")
		}

		if err != nil {
			return
		}
	}
}
