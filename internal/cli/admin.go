package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/Domenick1991/flightdesk/internal/catalog"
	"github.com/Domenick1991/flightdesk/internal/domain"
)

func (c *CLI) adminLogin(ctx context.Context) {
	c.title("ADMIN LOGIN")

	password, ok := c.prompt("Enter Password: ")
	if !ok {
		return
	}
	if password != c.adminPassword {
		fmt.Fprintln(c.out, "\nAccess Denied! Incorrect Password.")
		return
	}
	c.adminDashboard(ctx)
}

func (c *CLI) adminDashboard(ctx context.Context) {
	for {
		c.title("ADMIN DASHBOARD")
		fmt.Fprintln(c.out, "1. Add Flight")
		fmt.Fprintln(c.out, "2. View All Flights")
		fmt.Fprintln(c.out, "3. Modify Flight")
		fmt.Fprintln(c.out, "4. Delete Flight")
		fmt.Fprintln(c.out, "5. Update Flight Status")
		fmt.Fprintln(c.out, "6. View Bookings")
		fmt.Fprintln(c.out, "7. Log Out")

		choice, ok := c.prompt("\nSelect an option: ")
		if !ok {
			return
		}
		switch choice {
		case "1":
			c.addFlight(ctx)
		case "2":
			c.viewAllFlights()
		case "3":
			c.modifyFlight(ctx)
		case "4":
			c.deleteFlight(ctx)
		case "5":
			c.updateFlightStatus(ctx)
		case "6":
			c.viewBookings()
		case "7":
			return
		default:
			fmt.Fprintln(c.out, "\nInvalid option. Please try again.")
		}
	}
}

func (c *CLI) addFlight(ctx context.Context) {
	c.title("ADD NEW FLIGHT")

	var spec catalog.FlightSpec
	var ok bool

	if spec.Number, ok = c.prompt("Enter Flight Number: "); !ok {
		return
	}
	if _, err := c.catalog.FindFlight(spec.Number); err == nil {
		fmt.Fprintln(c.out, "\nError: Flight with this number already exists!")
		return
	}
	if spec.Source, ok = c.prompt("Enter Source: "); !ok {
		return
	}
	if spec.Destination, ok = c.prompt("Enter Destination: "); !ok {
		return
	}
	if spec.SourceTime, ok = c.prompt("Enter Source Time (HH:MM): "); !ok {
		return
	}
	if spec.DestinationTime, ok = c.prompt("Enter Destination Time (HH:MM): "); !ok {
		return
	}
	if spec.Date, ok = c.prompt("Enter Date (DD/MM/YYYY): "); !ok {
		return
	}
	if spec.BasePrice, ok = c.promptFloat("Enter Base Price: "); !ok {
		return
	}
	if spec.Via, ok = c.prompt("Enter Via (If any, otherwise leave blank): "); !ok {
		return
	}
	if spec.Stops, ok = c.promptInt("Enter Number of Stops: "); !ok {
		return
	}

	if _, err := c.catalog.AddFlight(ctx, spec); err != nil {
		fmt.Fprintf(c.out, "\nError: %v\n", err)
		return
	}
	fmt.Fprintln(c.out, "\nFlight added successfully!")
}

func (c *CLI) viewAllFlights() {
	c.title("ALL FLIGHTS")

	flights := c.catalog.Flights()
	if len(flights) == 0 {
		fmt.Fprintln(c.out, "No flights available.")
		return
	}
	c.printFlightTable(flights)
}

func (c *CLI) modifyFlight(ctx context.Context) {
	c.title("MODIFY FLIGHT")

	number, ok := c.prompt("Enter Flight Number to modify: ")
	if !ok {
		return
	}
	flight, err := c.catalog.FindFlight(number)
	if err != nil {
		fmt.Fprintln(c.out, "\nFlight not found!")
		return
	}

	fmt.Fprintln(c.out, "\nCurrent details:")
	fmt.Fprintf(c.out, "Source: %s\n", flight.Source)
	fmt.Fprintf(c.out, "Destination: %s\n", flight.Destination)
	fmt.Fprintf(c.out, "Source Time: %s\n", flight.SourceTime)
	fmt.Fprintf(c.out, "Destination Time: %s\n", flight.DestinationTime)
	fmt.Fprintf(c.out, "Date: %s\n", flight.Date)
	fmt.Fprintf(c.out, "Base Price: %.2f\n", flight.BasePrice)
	fmt.Fprintf(c.out, "Via: %s\n", flight.Via)
	fmt.Fprintf(c.out, "Stops: %d\n", flight.Stops)

	fmt.Fprintln(c.out, "\nEnter new details (press Enter to keep current):")

	var upd catalog.FlightUpdate
	read := func(label string, dst **string) bool {
		input, ok := c.prompt(label)
		if !ok {
			return false
		}
		if input != "" {
			*dst = &input
		}
		return true
	}

	if !read("Source: ", &upd.Source) {
		return
	}
	if !read("Destination: ", &upd.Destination) {
		return
	}
	if !read("Source Time (HH:MM): ", &upd.SourceTime) {
		return
	}
	if !read("Destination Time (HH:MM): ", &upd.DestinationTime) {
		return
	}
	if !read("Date (DD/MM/YYYY): ", &upd.Date) {
		return
	}

	priceRaw, ok := c.prompt("Base Price: ")
	if !ok {
		return
	}
	if priceRaw != "" {
		price, err := strconv.ParseFloat(priceRaw, 64)
		if err != nil {
			fmt.Fprintln(c.out, "\nInvalid price.")
			return
		}
		upd.BasePrice = &price
	}

	if !read("Via: ", &upd.Via) {
		return
	}

	stopsRaw, ok := c.prompt("Stops: ")
	if !ok {
		return
	}
	if stopsRaw != "" {
		stops, err := strconv.Atoi(stopsRaw)
		if err != nil {
			fmt.Fprintln(c.out, "\nInvalid number of stops.")
			return
		}
		upd.Stops = &stops
	}

	if err := c.catalog.ModifyFlight(ctx, number, upd); err != nil {
		fmt.Fprintf(c.out, "\nError: %v\n", err)
		return
	}
	fmt.Fprintln(c.out, "\nFlight details modified successfully!")
}

func (c *CLI) deleteFlight(ctx context.Context) {
	c.title("DELETE FLIGHT")

	number, ok := c.prompt("Enter Flight Number to delete: ")
	if !ok {
		return
	}

	err := c.catalog.DeleteFlight(ctx, number, false)
	if errors.Is(err, domain.ErrHasPassengers) {
		if !c.confirm("\nWarning: This flight has booked passengers. Are you sure you want to delete? (Y/N): ") {
			fmt.Fprintln(c.out, "\nDeletion canceled.")
			return
		}
		err = c.catalog.DeleteFlight(ctx, number, true)
	}
	if err != nil {
		fmt.Fprintln(c.out, "\nFlight not found!")
		return
	}
	fmt.Fprintln(c.out, "\nFlight deleted successfully!")
}

func (c *CLI) updateFlightStatus(ctx context.Context) {
	c.title("UPDATE FLIGHT STATUS")

	number, ok := c.prompt("Enter Flight Number: ")
	if !ok {
		return
	}
	flight, err := c.catalog.FindFlight(number)
	if err != nil {
		fmt.Fprintln(c.out, "\nFlight not found!")
		return
	}

	fmt.Fprintf(c.out, "\nCurrent Status: %s\n", flight.Status)
	fmt.Fprintln(c.out, "\nSelect new status:")
	fmt.Fprintln(c.out, "1. On Time")
	fmt.Fprintln(c.out, "2. Delayed")
	fmt.Fprintln(c.out, "3. Canceled")

	choice, ok := c.prompt("Enter choice: ")
	if !ok {
		return
	}

	var status domain.FlightStatus
	switch choice {
	case "1":
		status = domain.StatusOnTime
	case "2":
		status = domain.StatusDelayed
	case "3":
		status = domain.StatusCanceled
	default:
		fmt.Fprintln(c.out, "\nInvalid choice. Status not updated.")
		return
	}

	if err := c.catalog.UpdateStatus(ctx, number, status); err != nil {
		fmt.Fprintf(c.out, "\nError: %v\n", err)
		return
	}
	fmt.Fprintln(c.out, "\nFlight status updated successfully!")
}

func (c *CLI) viewBookings() {
	c.title("VIEW BOOKINGS")

	number, ok := c.prompt("Enter Flight Number (or 'all' to view all bookings): ")
	if !ok {
		return
	}

	if number == "all" {
		hasBookings := false
		for _, f := range c.catalog.Flights() {
			if len(f.Passengers) == 0 {
				continue
			}
			hasBookings = true
			c.printFlightBookings(f)
		}
		if !hasBookings {
			fmt.Fprintln(c.out, "\nNo bookings found across all flights.")
		}
		return
	}

	flight, err := c.catalog.FindFlight(number)
	if err != nil {
		fmt.Fprintln(c.out, "\nFlight not found!")
		return
	}
	if len(flight.Passengers) == 0 {
		fmt.Fprintln(c.out, "\nNo bookings found for this flight.")
		return
	}
	c.printFlightBookings(flight)
}

func (c *CLI) printFlightBookings(f *domain.Flight) {
	fmt.Fprintf(c.out, "\nFlight: %s (%s to %s)\n", f.Number, f.Source, f.Destination)
	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Name\tPhone\tSeat\tTicket#")
	for _, p := range f.Passengers {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", p.Name, p.Phone, p.SeatNumber, p.TicketNumber)
	}
	w.Flush()
}
