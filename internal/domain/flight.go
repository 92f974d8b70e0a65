package domain

import "fmt"

type FlightStatus int

const (
	StatusOnTime FlightStatus = iota
	StatusDelayed
	StatusCanceled
)

func (s FlightStatus) String() string {
	switch s {
	case StatusOnTime:
		return "On Time"
	case StatusDelayed:
		return "Delayed"
	case StatusCanceled:
		return "Canceled"
	default:
		return "Unknown"
	}
}

// Code returns the integer code used by the flight store file.
func (s FlightStatus) Code() int {
	return int(s)
}

func StatusFromCode(code int) (FlightStatus, error) {
	switch code {
	case 0:
		return StatusOnTime, nil
	case 1:
		return StatusDelayed, nil
	case 2:
		return StatusCanceled, nil
	default:
		return 0, fmt.Errorf("unknown flight status code %d", code)
	}
}

// DefaultOccupancySurcharge is the fraction by which a fully booked flight
// raises every seat price above its base.
const DefaultOccupancySurcharge = 0.5

// Flight is a scheduled route instance. Times and the date are stored as
// opaque strings; no validation is applied to them. A flight exclusively owns
// its seats and passengers.
type Flight struct {
	Number          string
	Source          string
	Destination     string
	SourceTime      string
	DestinationTime string
	Date            string
	BasePrice       float64
	Via             string
	Stops           int
	Status          FlightStatus
	Seats           []Seat
	Passengers      []Passenger
}

func NewFlight(number, source, destination, sourceTime, destinationTime, date string, basePrice float64, via string, stops int, plan CabinPlan) *Flight {
	return &Flight{
		Number:          number,
		Source:          source,
		Destination:     destination,
		SourceTime:      sourceTime,
		DestinationTime: destinationTime,
		Date:            date,
		BasePrice:       basePrice,
		Via:             via,
		Stops:           stops,
		Status:          StatusOnTime,
		Seats:           NewSeatMap(plan),
	}
}

func (f *Flight) FindSeat(seatNumber int) (*Seat, bool) {
	for i := range f.Seats {
		if f.Seats[i].Number == seatNumber {
			return &f.Seats[i], true
		}
	}
	return nil, false
}

func (f *Flight) BookedSeats() int {
	booked := 0
	for i := range f.Seats {
		if f.Seats[i].Booked {
			booked++
		}
	}
	return booked
}

// OccupancyRate is the booked fraction of the full seat inventory.
func (f *Flight) OccupancyRate() float64 {
	if len(f.Seats) == 0 {
		return 0
	}
	return float64(f.BookedSeats()) / float64(len(f.Seats))
}

// SeatPrice returns the dynamic price of a seat:
// basePrice * (1 + surcharge * occupancyRate), computed over the full
// inventory at call time. On an unknown seat number it returns the flight's
// flat base price as a fallback value together with ErrSeatNotFound; callers
// that pre-validate the seat number never see the error.
func (f *Flight) SeatPrice(seatNumber int, surcharge float64) (float64, error) {
	factor := 1 + surcharge*f.OccupancyRate()
	seat, ok := f.FindSeat(seatNumber)
	if !ok {
		return f.BasePrice, ErrSeatNotFound
	}
	return seat.BasePrice * factor, nil
}

// BookingPrice prices a prospective booking of the seat. Unlike SeatPrice,
// the occupancy rate counts the seat being purchased, so the first passenger
// on an empty 40-seat flight already pays base * (1 + surcharge * 1/40).
func (f *Flight) BookingPrice(seatNumber int, surcharge float64) (float64, error) {
	seat, ok := f.FindSeat(seatNumber)
	if !ok {
		return f.BasePrice, ErrSeatNotFound
	}
	booked := f.BookedSeats()
	if !seat.Booked {
		booked++
	}
	occupancy := float64(booked) / float64(len(f.Seats))
	return seat.BasePrice * (1 + surcharge*occupancy), nil
}

func (f *Flight) IsSeatAvailable(seatNumber int) bool {
	seat, ok := f.FindSeat(seatNumber)
	return ok && !seat.Booked
}

// MarkSeatBooked flips the seat to booked. Unknown seat numbers are a no-op;
// callers validate first.
func (f *Flight) MarkSeatBooked(seatNumber int) {
	if seat, ok := f.FindSeat(seatNumber); ok {
		seat.Booked = true
	}
}

func (f *Flight) MarkSeatAvailable(seatNumber int) {
	if seat, ok := f.FindSeat(seatNumber); ok {
		seat.Booked = false
	}
}

func (f *Flight) SeatClassLabel(seatNumber int) string {
	seat, ok := f.FindSeat(seatNumber)
	if !ok {
		return "Unknown"
	}
	return seat.Class.String()
}

func (f *Flight) FindPassengerByTicket(ticketNumber string) (*Passenger, bool) {
	for i := range f.Passengers {
		if f.Passengers[i].TicketNumber == ticketNumber {
			return &f.Passengers[i], true
		}
	}
	return nil, false
}

// HasPassenger reports whether a passenger with the same name and phone is
// already booked on the flight. This is the duplicate-booking guard; it is a
// weak identity check, not keyed on any document.
func (f *Flight) HasPassenger(name, phone string) bool {
	for i := range f.Passengers {
		if f.Passengers[i].Name == name && f.Passengers[i].Phone == phone {
			return true
		}
	}
	return false
}

func (f *Flight) Route() string {
	return f.Source + "-" + f.Destination
}
