package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Domenick1991/flightdesk/internal/catalog"
	"github.com/Domenick1991/flightdesk/internal/domain"
	"github.com/Domenick1991/flightdesk/internal/repository"
	"github.com/Domenick1991/flightdesk/internal/service/booking"
	"github.com/Domenick1991/flightdesk/internal/ticket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCLI(t *testing.T, script string) (*CLI, *bytes.Buffer, *catalog.Catalog) {
	t.Helper()
	dir := t.TempDir()
	store := repository.NewFileStore(filepath.Join(dir, "flights.txt"), filepath.Join(dir, "bookingHistory.txt"), nil)
	cat, err := catalog.Load(context.Background(), store, nil)
	require.NoError(t, err)

	svc := booking.NewBookingService(cat, nil, booking.WithTicketNumberFunc(func() string { return "TKTTEST123" }))
	tickets := ticket.NewWriter(filepath.Join(dir, "tickets"))

	out := &bytes.Buffer{}
	c := New(strings.NewReader(script), out, cat, svc, tickets, "sai123")
	return c, out, cat
}

// Scripts one full session: admin adds a flight, a user books seat 5, views
// history and cancels the ticket.
func TestCLI_FullSession(t *testing.T) {
	script := strings.Join([]string{
		"2",             // main: admin login
		"sai123",        // password
		"1",             // admin: add flight
		"AI101",         // flight number
		"San Francisco", // source
		"Honolulu",      // destination
		"08:00",         // source time
		"11:30",         // destination time
		"12/10/2025",    // date
		"1000",          // base price
		"",              // via
		"0",             // stops
		"7",             // admin: log out
		"1",             // main: user login
		"1",             // user: book ticket
		"San Francisco",
		"Honolulu",
		"1", // first matching flight
		"5", // seat number
		"Alice",
		"a@x.com",
		"555-0001",
		"Y",          // confirm booking
		"4",          // user: booking history
		"555-0001",   // phone
		"3",          // user: cancel ticket
		"TKTTEST123", // ticket number
		"Y",          // confirm cancellation
		"6",          // user: log out
		"3",          // main: exit
	}, "\n") + "\n"

	c, out, cat := newTestCLI(t, script)
	c.Run(context.Background())
	output := out.String()

	assert.Contains(t, output, "Flight added successfully!")
	assert.Contains(t, output, "Price: Rs. 1012.50")
	assert.Contains(t, output, "Booking successful!")
	assert.Contains(t, output, "ticket_TKTTEST123.txt")
	assert.Contains(t, output, "TKTTEST123")
	assert.Contains(t, output, "Ticket canceled successfully!")

	flight, err := cat.FindFlight("AI101")
	require.NoError(t, err)
	assert.True(t, flight.IsSeatAvailable(5))
	assert.Empty(t, flight.Passengers)

	_, err = cat.History("555-0001")
	assert.ErrorIs(t, err, domain.ErrHistoryNotFound)
}

func TestCLI_AdminWrongPassword(t *testing.T) {
	script := "2\nwrong\n3\n"
	c, out, _ := newTestCLI(t, script)
	c.Run(context.Background())

	assert.Contains(t, out.String(), "Access Denied! Incorrect Password.")
	assert.NotContains(t, out.String(), "ADMIN DASHBOARD")
}

func TestCLI_BookAlreadyBookedSeat(t *testing.T) {
	script := strings.Join([]string{
		"1", // user login
		"1", // book
		"San Francisco",
		"Honolulu",
		"1",
		"5", // seat already booked below
		"6", // log out
		"3", // exit
	}, "\n") + "\n"

	c, out, cat := newTestCLI(t, script)
	ctx := context.Background()

	_, err := cat.AddFlight(ctx, catalog.FlightSpec{
		Number: "AI101", Source: "San Francisco", Destination: "Honolulu",
		SourceTime: "08:00", DestinationTime: "11:30", Date: "12/10/2025", BasePrice: 1000,
	})
	require.NoError(t, err)
	flight, err := cat.FindFlight("AI101")
	require.NoError(t, err)
	cat.RecordBooking(ctx, flight, domain.Passenger{Name: "Bob", Phone: "555-0002", SeatNumber: 5, TicketNumber: "TKT1"})

	c.Run(ctx)
	assert.Contains(t, out.String(), "This seat is already booked. Please select another seat.")
	assert.Len(t, flight.Passengers, 1)
}
