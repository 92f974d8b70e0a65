package domain

type Passenger struct {
	Name         string
	Email        string
	Phone        string
	SeatNumber   int
	TicketNumber string
}
