package repository

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Domenick1991/flightdesk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (CatalogStore, string, string) {
	t.Helper()
	dir := t.TempDir()
	flightsPath := filepath.Join(dir, "flights.txt")
	historyPath := filepath.Join(dir, "bookingHistory.txt")
	return NewFileStore(flightsPath, historyPath, nil), flightsPath, historyPath
}

func TestFileStore_LoadMissingFiles(t *testing.T) {
	store, _, _ := newTestStore(t)

	snap, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, snap.Flights)
	assert.Empty(t, snap.History)
}

func TestFileStore_RoundTrip(t *testing.T) {
	store, _, _ := newTestStore(t)
	ctx := context.Background()

	flight := domain.NewFlight("AI101", "San Francisco", "Honolulu", "08:00", "11:30", "12/10/2025", 1000, "Los Angeles", 1, domain.DefaultCabinPlan())
	flight.Status = domain.StatusDelayed
	flight.MarkSeatBooked(5)
	flight.Passengers = append(flight.Passengers, domain.Passenger{
		Name:         "Alice",
		Email:        "a@x.com",
		Phone:        "555-0001",
		SeatNumber:   5,
		TicketNumber: "TKT0A1B2C3D4E",
	})

	second := domain.NewFlight("AI202", "Honolulu", "Maui", "14:00", "14:45", "13/10/2025", 750.5, "", 0, domain.DefaultCabinPlan())

	snap := NewSnapshot()
	snap.Flights = []*domain.Flight{flight, second}
	snap.History["555-0001"] = []string{"TKT0A1B2C3D4E"}
	snap.History["555-0002"] = []string{}

	require.NoError(t, store.Save(ctx, snap))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded.Flights, 2)
	assert.Equal(t, *flight, *loaded.Flights[0])
	assert.Equal(t, *second, *loaded.Flights[1])
	assert.Equal(t, snap.History, loaded.History)
}

func TestFileStore_RoundTripIsStable(t *testing.T) {
	store, flightsPath, historyPath := newTestStore(t)
	ctx := context.Background()

	snap := NewSnapshot()
	snap.Flights = []*domain.Flight{domain.NewFlight("AI101", "San Francisco", "Honolulu", "08:00", "11:30", "12/10/2025", 1012.5, "", 0, domain.DefaultCabinPlan())}
	snap.History["555-0001"] = []string{"TKTAA", "TKTBB"}

	require.NoError(t, store.Save(ctx, snap))
	first, err := os.ReadFile(flightsPath)
	require.NoError(t, err)
	firstHistory, err := os.ReadFile(historyPath)
	require.NoError(t, err)

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, loaded))

	second, err := os.ReadFile(flightsPath)
	require.NoError(t, err)
	secondHistory, err := os.ReadFile(historyPath)
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
	assert.Equal(t, string(firstHistory), string(secondHistory))
}

func TestFileStore_FlightFileFormat(t *testing.T) {
	store, flightsPath, historyPath := newTestStore(t)
	ctx := context.Background()

	plan := domain.CabinPlan{EconomySeats: 1, EconomyBasePrice: 100, BusinessSeats: 1, BusinessBasePrice: 250}
	flight := domain.NewFlight("AI1", "A", "B", "08:00", "09:00", "01/01/2025", 100, "C", 1, plan)
	flight.MarkSeatBooked(2)
	flight.Passengers = append(flight.Passengers, domain.Passenger{Name: "Bob", Email: "b@x.com", Phone: "555", SeatNumber: 2, TicketNumber: "TKT42"})

	snap := NewSnapshot()
	snap.Flights = []*domain.Flight{flight}
	snap.History["555"] = []string{"TKT42"}
	require.NoError(t, store.Save(ctx, snap))

	data, err := os.ReadFile(flightsPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "AI1|A|B|08:00|09:00|01/01/2025|100|C|1|0", lines[0])
	assert.Equal(t, "1,0,0,100;2,1,1,250;", lines[1])
	assert.Equal(t, "Bob,b@x.com,555,2,TKT42;", lines[2])

	history, err := os.ReadFile(historyPath)
	require.NoError(t, err)
	assert.Equal(t, "555|TKT42,\n", string(history))
}

func TestFileStore_ToleratesTrailingSeparators(t *testing.T) {
	store, flightsPath, historyPath := newTestStore(t)

	writeFile(t, flightsPath,
		"AI1|A|B|08:00|09:00|01/01/2025|100||0|0\n"+
			"1,0,0,100;;2,0,1,250;\n"+
			"\n")
	writeFile(t, historyPath, "555|TKT1,TKT2,\n")

	snap, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, snap.Flights, 1)
	assert.Len(t, snap.Flights[0].Seats, 2)
	assert.Empty(t, snap.Flights[0].Passengers)
	assert.Equal(t, []string{"TKT1", "TKT2"}, snap.History["555"])
}

func TestFileStore_SkipsMalformedRecord(t *testing.T) {
	store, flightsPath, _ := newTestStore(t)

	// First record has a non-numeric status; the second must still load.
	writeFile(t, flightsPath,
		"AI1|A|B|08:00|09:00|01/01/2025|100||0|bogus\n"+
			"1,0,0,100;\n"+
			"\n"+
			"AI2|B|C|10:00|11:00|01/01/2025|200||0|0\n"+
			"1,0,0,200;\n"+
			"\n")

	snap, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, snap.Flights, 1)
	assert.Equal(t, "AI2", snap.Flights[0].Number)
}

func TestFileStore_TruncatedRecord(t *testing.T) {
	store, flightsPath, _ := newTestStore(t)

	writeFile(t, flightsPath, "AI1|A|B|08:00|09:00|01/01/2025|100||0|0\n1,0,0,100;\n")

	_, err := store.Load(context.Background())
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 1, parseErr.Line)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}
