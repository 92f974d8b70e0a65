package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/Domenick1991/flightdesk/internal/domain"
	"github.com/Domenick1991/flightdesk/internal/service/booking"
)

func (c *CLI) userDashboard(ctx context.Context) {
	for {
		c.title("USER DASHBOARD")
		fmt.Fprintln(c.out, "1. Book Flight Ticket")
		fmt.Fprintln(c.out, "2. View Flight Schedule")
		fmt.Fprintln(c.out, "3. Cancel Ticket")
		fmt.Fprintln(c.out, "4. View Booking History")
		fmt.Fprintln(c.out, "5. Reprint Ticket")
		fmt.Fprintln(c.out, "6. Log Out")

		choice, ok := c.prompt("\nSelect an option: ")
		if !ok {
			return
		}
		switch choice {
		case "1":
			c.bookTicket(ctx)
		case "2":
			c.viewSchedule()
		case "3":
			c.cancelTicket(ctx)
		case "4":
			c.viewHistory()
		case "5":
			c.reprintTicket()
		case "6":
			return
		default:
			fmt.Fprintln(c.out, "\nInvalid option. Please try again.")
		}
	}
}

func (c *CLI) bookTicket(ctx context.Context) {
	c.title("BOOK FLIGHT TICKET")

	source, ok := c.prompt("Enter Source: ")
	if !ok {
		return
	}
	destination, ok := c.prompt("Enter Destination: ")
	if !ok {
		return
	}

	matches := c.bookings.SearchRoute(source, destination)
	if len(matches) == 0 {
		fmt.Fprintln(c.out, "\nNo flights found for the specified route.")
		return
	}

	fmt.Fprintln(c.out, "\nAvailable Flights:")
	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "No.\tFlight#\tDate\tTime\tPrice\tStatus")
	for i, f := range matches {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%.2f\t%s\n", i+1, f.Number, f.Date, f.SourceTime, f.BasePrice, f.Status)
	}
	w.Flush()

	selection, ok := c.promptInt(fmt.Sprintf("\nEnter flight to book (1-%d): ", len(matches)))
	if !ok {
		return
	}
	if selection < 1 || selection > len(matches) {
		fmt.Fprintln(c.out, "\nInvalid selection!")
		return
	}
	flight := matches[selection-1]

	c.printSeatMap(flight)

	seatNumber, ok := c.promptInt("\nEnter seat number to book: ")
	if !ok {
		return
	}
	quote, err := c.bookings.Quote(flight.Number, seatNumber)
	switch {
	case errors.Is(err, domain.ErrSeatNotFound):
		fmt.Fprintln(c.out, "\nInvalid seat number!")
		return
	case errors.Is(err, domain.ErrSeatUnavailable):
		fmt.Fprintln(c.out, "\nThis seat is already booked. Please select another seat.")
		return
	case err != nil:
		fmt.Fprintf(c.out, "\nError: %v\n", err)
		return
	}

	fmt.Fprintln(c.out, "\nEnter passenger details:")
	name, ok := c.prompt("Name: ")
	if !ok {
		return
	}
	email, ok := c.prompt("Email: ")
	if !ok {
		return
	}
	phone, ok := c.prompt("Phone: ")
	if !ok {
		return
	}

	fmt.Fprintln(c.out, "\nBooking Summary:")
	fmt.Fprintf(c.out, "Flight: %s\n", flight.Number)
	fmt.Fprintf(c.out, "Route: %s to %s\n", flight.Source, flight.Destination)
	fmt.Fprintf(c.out, "Date: %s\n", flight.Date)
	fmt.Fprintf(c.out, "Time: %s\n", flight.SourceTime)
	fmt.Fprintf(c.out, "Seat: %d (%s)\n", seatNumber, quote.ClassLabel)
	fmt.Fprintf(c.out, "Price: Rs. %.2f\n", quote.Price)

	if !c.confirm("\nConfirm booking? (Y/N): ") {
		fmt.Fprintln(c.out, "\nBooking canceled.")
		return
	}

	conf, err := c.bookings.Book(ctx, booking.BookingInput{
		FlightNumber: flight.Number,
		SeatNumber:   seatNumber,
		Name:         name,
		Email:        email,
		Phone:        phone,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateBooking) {
			fmt.Fprintln(c.out, "\nDuplicate booking detected! You have already booked a ticket on this flight.")
		} else {
			fmt.Fprintf(c.out, "\nBooking failed: %v\n", err)
		}
		return
	}

	path, err := c.tickets.Write(conf.Flight, conf.Passenger)
	if err != nil {
		fmt.Fprintf(c.out, "\nError: could not generate ticket file: %v\n", err)
	} else {
		fmt.Fprintf(c.out, "\nTicket saved as %s\n", path)
	}
	fmt.Fprintln(c.out, "\nBooking successful!")
}

func (c *CLI) viewSchedule() {
	c.title("FLIGHT SCHEDULE")

	fmt.Fprintln(c.out, "Search Filters (leave blank to show all):")
	source, ok := c.prompt("Source: ")
	if !ok {
		return
	}
	destination, ok := c.prompt("Destination: ")
	if !ok {
		return
	}
	date, ok := c.prompt("Date (DD/MM/YYYY): ")
	if !ok {
		return
	}
	priceRaw, ok := c.prompt("Max Price (leave blank for no limit): ")
	if !ok {
		return
	}
	maxPrice := -1.0
	if priceRaw != "" {
		parsed, err := strconv.ParseFloat(priceRaw, 64)
		if err != nil {
			fmt.Fprintln(c.out, "\nInvalid price.")
			return
		}
		maxPrice = parsed
	}

	matches := c.bookings.Schedule(booking.ScheduleFilter{
		Source:       source,
		Destination:  destination,
		Date:         date,
		MaxBasePrice: maxPrice,
	})
	if len(matches) == 0 {
		fmt.Fprintln(c.out, "\nNo flights match your search criteria.")
		return
	}

	fmt.Fprintln(c.out, "\nMatching Flights:")
	c.printFlightTable(matches)
}

func (c *CLI) cancelTicket(ctx context.Context) {
	c.title("CANCEL TICKET")

	ticketNumber, ok := c.prompt("Enter Ticket Number: ")
	if !ok {
		return
	}

	record, err := c.bookings.FindTicket(ticketNumber)
	if err != nil {
		fmt.Fprintln(c.out, "\nTicket not found!")
		return
	}

	fmt.Fprintln(c.out, "\nTicket Details:")
	fmt.Fprintf(c.out, "Passenger: %s\n", record.Passenger.Name)
	fmt.Fprintf(c.out, "Flight: %s (%s to %s)\n", record.Flight.Number, record.Flight.Source, record.Flight.Destination)
	fmt.Fprintf(c.out, "Date: %s\n", record.Flight.Date)
	fmt.Fprintf(c.out, "Seat: %d\n", record.Passenger.SeatNumber)

	if !c.confirm("\nAre you sure you want to cancel this ticket? (Y/N): ") {
		fmt.Fprintln(c.out, "\nCancellation aborted.")
		return
	}

	if _, err := c.bookings.Cancel(ctx, ticketNumber); err != nil {
		fmt.Fprintf(c.out, "\nCancellation failed: %v\n", err)
		return
	}
	fmt.Fprintln(c.out, "\nTicket canceled successfully!")
}

func (c *CLI) viewHistory() {
	c.title("VIEW BOOKING HISTORY")

	phone, ok := c.prompt("Enter Phone Number: ")
	if !ok {
		return
	}

	entries, err := c.bookings.History(phone)
	if err != nil {
		fmt.Fprintln(c.out, "\nNo booking history found for this phone number.")
		return
	}

	fmt.Fprintf(c.out, "\nBooking History for %s:\n", phone)
	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Ticket#\tFlight#\tRoute\tDate\tStatus")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", e.TicketNumber, e.FlightNumber, e.Route, e.Date, e.Status)
	}
	w.Flush()
}

func (c *CLI) reprintTicket() {
	c.title("REPRINT TICKET")

	ticketNumber, ok := c.prompt("Enter Ticket Number: ")
	if !ok {
		return
	}

	record, err := c.bookings.FindTicket(ticketNumber)
	if err != nil {
		fmt.Fprintln(c.out, "\nTicket not found!")
		return
	}

	path, err := c.tickets.Write(record.Flight, record.Passenger)
	if err != nil {
		fmt.Fprintf(c.out, "\nError: could not generate ticket file: %v\n", err)
		return
	}
	fmt.Fprintf(c.out, "\nTicket has been reprinted as %s\n", path)
}
