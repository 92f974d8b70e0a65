package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/Domenick1991/flightdesk/internal/catalog"
	"github.com/Domenick1991/flightdesk/internal/domain"
	"github.com/Domenick1991/flightdesk/internal/service/booking"
	"github.com/Domenick1991/flightdesk/internal/ticket"
)

// CLI is the interactive menu surface. It holds no state of its own: every
// operation goes through the catalog or the booking service.
type CLI struct {
	in            *bufio.Scanner
	out           io.Writer
	catalog       *catalog.Catalog
	bookings      booking.BookingUseCase
	tickets       *ticket.Writer
	adminPassword string
}

func New(in io.Reader, out io.Writer, cat *catalog.Catalog, bookings booking.BookingUseCase, tickets *ticket.Writer, adminPassword string) *CLI {
	return &CLI{
		in:            bufio.NewScanner(in),
		out:           out,
		catalog:       cat,
		bookings:      bookings,
		tickets:       tickets,
		adminPassword: adminPassword,
	}
}

// Run drives the main menu until the user exits or input ends.
func (c *CLI) Run(ctx context.Context) {
	for {
		c.title("FLIGHTDESK RESERVATIONS")
		fmt.Fprintln(c.out, "1. Login as User")
		fmt.Fprintln(c.out, "2. Login as Admin")
		fmt.Fprintln(c.out, "3. Exit")

		choice, ok := c.prompt("\nSelect an option: ")
		if !ok {
			return
		}
		switch choice {
		case "1":
			c.userDashboard(ctx)
		case "2":
			c.adminLogin(ctx)
		case "3":
			fmt.Fprintln(c.out, "\nThank you for using FlightDesk!")
			return
		default:
			fmt.Fprintln(c.out, "\nInvalid option. Please try again.")
		}
	}
}

func (c *CLI) title(heading string) {
	fmt.Fprintf(c.out, "\n========================================================\n")
	fmt.Fprintf(c.out, "  %s\n", heading)
	fmt.Fprintf(c.out, "========================================================\n\n")
}

// prompt reads one trimmed line; ok is false when input is exhausted.
func (c *CLI) prompt(label string) (string, bool) {
	fmt.Fprint(c.out, label)
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

func (c *CLI) promptInt(label string) (int, bool) {
	raw, ok := c.prompt(label)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		fmt.Fprintln(c.out, "\nInvalid number.")
		return 0, false
	}
	return n, true
}

func (c *CLI) promptFloat(label string) (float64, bool) {
	raw, ok := c.prompt(label)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		fmt.Fprintln(c.out, "\nInvalid number.")
		return 0, false
	}
	return f, true
}

func (c *CLI) confirm(label string) bool {
	answer, ok := c.prompt(label)
	return ok && strings.EqualFold(answer, "y")
}

func (c *CLI) printFlightTable(flights []*domain.Flight) {
	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Flight#\tSource\tDestination\tDate\tTime\tPrice\tStatus")
	for _, f := range flights {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%.2f\t%s\n", f.Number, f.Source, f.Destination, f.Date, f.SourceTime, f.BasePrice, f.Status)
	}
	w.Flush()
}

func (c *CLI) printSeatMap(f *domain.Flight) {
	fmt.Fprintf(c.out, "\nSEAT MAP - Flight %s\n", f.Number)

	fmt.Fprintln(c.out, "\nBUSINESS CLASS:")
	fmt.Fprintln(c.out, "---------------------------")
	c.printSeatBlock(f, domain.SeatClassBusiness, 5)

	fmt.Fprintln(c.out, "\nECONOMY CLASS:")
	fmt.Fprintln(c.out, "---------------------------")
	c.printSeatBlock(f, domain.SeatClassEconomy, 6)

	fmt.Fprintln(c.out, "\nLegend: [ ] - Available  [X] - Booked")
}

func (c *CLI) printSeatBlock(f *domain.Flight, class domain.SeatClass, perRow int) {
	n := 0
	for _, seat := range f.Seats {
		if seat.Class != class {
			continue
		}
		marker := " "
		if seat.Booked {
			marker = "X"
		}
		fmt.Fprintf(c.out, "[%s] %2d\t", marker, seat.Number)
		n++
		if n%perRow == 0 {
			fmt.Fprintln(c.out)
		}
	}
	if n%perRow != 0 {
		fmt.Fprintln(c.out)
	}
}
