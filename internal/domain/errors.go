package domain

import "errors"

var (
	ErrFlightNotFound   = errors.New("flight not found")
	ErrDuplicateFlight  = errors.New("flight number already exists")
	ErrFlightCanceled   = errors.New("flight is canceled")
	ErrSeatNotFound     = errors.New("seat not found")
	ErrSeatUnavailable  = errors.New("seat is already booked")
	ErrDuplicateBooking = errors.New("passenger already has a booking on this flight")
	ErrTicketNotFound   = errors.New("ticket not found")
	ErrHistoryNotFound  = errors.New("no booking history for this phone number")
	ErrHasPassengers    = errors.New("flight has booked passengers")
)
