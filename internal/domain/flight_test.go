package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestFlight() *Flight {
	return NewFlight("AI101", "San Francisco", "Honolulu", "08:00", "11:30", "12/10/2025", 1000, "", 0, DefaultCabinPlan())
}

func TestNewSeatMap(t *testing.T) {
	seats := NewSeatMap(DefaultCabinPlan())
	assert.Len(t, seats, 40)

	for i, seat := range seats {
		assert.Equal(t, i+1, seat.Number)
		assert.False(t, seat.Booked)
		if seat.Number <= 30 {
			assert.Equal(t, SeatClassEconomy, seat.Class)
			assert.Equal(t, 1000.0, seat.BasePrice)
		} else {
			assert.Equal(t, SeatClassBusiness, seat.Class)
			assert.Equal(t, 2500.0, seat.BasePrice)
		}
	}
}

func TestFlight_SeatPrice_EmptyFlight(t *testing.T) {
	f := newTestFlight()

	price, err := f.SeatPrice(5, DefaultOccupancySurcharge)
	assert.NoError(t, err)
	assert.Equal(t, 1000.0, price)

	price, err = f.SeatPrice(35, DefaultOccupancySurcharge)
	assert.NoError(t, err)
	assert.Equal(t, 2500.0, price)
}

func TestFlight_SeatPrice_RisesWithOccupancy(t *testing.T) {
	f := newTestFlight()
	f.MarkSeatBooked(1)

	price, err := f.SeatPrice(5, DefaultOccupancySurcharge)
	assert.NoError(t, err)
	assert.InDelta(t, 1000*(1+0.5*(1.0/40)), price, 1e-9)
}

func TestFlight_SeatPrice_MonotoneInOccupancy(t *testing.T) {
	f := newTestFlight()

	prev, err := f.SeatPrice(20, DefaultOccupancySurcharge)
	assert.NoError(t, err)

	// Booking any seat must never decrease the price of another seat.
	for n := 1; n <= 10; n++ {
		f.MarkSeatBooked(n)
		price, err := f.SeatPrice(20, DefaultOccupancySurcharge)
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, price, prev)
		prev = price
	}
}

func TestFlight_BookingPrice_CountsItself(t *testing.T) {
	f := newTestFlight()

	price, err := f.BookingPrice(5, DefaultOccupancySurcharge)
	assert.NoError(t, err)
	assert.InDelta(t, 1000*(1+0.5*(1.0/40)), price, 1e-9)

	// An already booked seat is not counted twice.
	f.MarkSeatBooked(5)
	price, err = f.BookingPrice(5, DefaultOccupancySurcharge)
	assert.NoError(t, err)
	assert.InDelta(t, 1000*(1+0.5*(1.0/40)), price, 1e-9)

	_, err = f.BookingPrice(99, DefaultOccupancySurcharge)
	assert.ErrorIs(t, err, ErrSeatNotFound)
}

func TestFlight_SeatPrice_UnknownSeat(t *testing.T) {
	f := newTestFlight()

	price, err := f.SeatPrice(99, DefaultOccupancySurcharge)
	assert.ErrorIs(t, err, ErrSeatNotFound)
	assert.Equal(t, f.BasePrice, price)
}

func TestFlight_SeatAvailability(t *testing.T) {
	f := newTestFlight()

	assert.True(t, f.IsSeatAvailable(5))
	f.MarkSeatBooked(5)
	assert.False(t, f.IsSeatAvailable(5))
	assert.False(t, f.IsSeatAvailable(99))

	// Idempotent flips, no-op on unknown seats.
	f.MarkSeatBooked(5)
	f.MarkSeatBooked(99)
	assert.Equal(t, 1, f.BookedSeats())

	f.MarkSeatAvailable(5)
	f.MarkSeatAvailable(5)
	assert.True(t, f.IsSeatAvailable(5))
	assert.Equal(t, 0, f.BookedSeats())
}

func TestFlight_SeatClassLabel(t *testing.T) {
	f := newTestFlight()

	assert.Equal(t, "Economy", f.SeatClassLabel(1))
	assert.Equal(t, "Economy", f.SeatClassLabel(30))
	assert.Equal(t, "Business", f.SeatClassLabel(31))
	assert.Equal(t, "Unknown", f.SeatClassLabel(41))
}

func TestFlight_HasPassenger(t *testing.T) {
	f := newTestFlight()
	f.Passengers = append(f.Passengers, Passenger{Name: "Alice", Phone: "555-0001", SeatNumber: 5, TicketNumber: "TKT1"})

	assert.True(t, f.HasPassenger("Alice", "555-0001"))
	assert.False(t, f.HasPassenger("Alice", "555-0002"))
	assert.False(t, f.HasPassenger("Bob", "555-0001"))
}

func TestStatusFromCode(t *testing.T) {
	for code, want := range map[int]FlightStatus{0: StatusOnTime, 1: StatusDelayed, 2: StatusCanceled} {
		got, err := StatusFromCode(code)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := StatusFromCode(3)
	assert.Error(t, err)
}
