package domain

import "fmt"

type SeatClass int

const (
	SeatClassEconomy SeatClass = iota
	SeatClassBusiness
)

func (c SeatClass) String() string {
	switch c {
	case SeatClassEconomy:
		return "Economy"
	case SeatClassBusiness:
		return "Business"
	default:
		return "Unknown"
	}
}

// Code returns the integer code used by the flight store file. The mapping
// exists only at the serialization boundary.
func (c SeatClass) Code() int {
	return int(c)
}

func SeatClassFromCode(code int) (SeatClass, error) {
	switch code {
	case 0:
		return SeatClassEconomy, nil
	case 1:
		return SeatClassBusiness, nil
	default:
		return 0, fmt.Errorf("unknown seat class code %d", code)
	}
}

type Seat struct {
	Number    int
	Class     SeatClass
	Booked    bool
	BasePrice float64
}

// CabinPlan describes the fixed seat inventory seeded into every new flight:
// a contiguous economy block starting at seat 1 followed by a contiguous
// business block.
type CabinPlan struct {
	EconomySeats      int
	EconomyBasePrice  float64
	BusinessSeats     int
	BusinessBasePrice float64
}

func DefaultCabinPlan() CabinPlan {
	return CabinPlan{
		EconomySeats:      30,
		EconomyBasePrice:  1000,
		BusinessSeats:     10,
		BusinessBasePrice: 2500,
	}
}

func (p CabinPlan) TotalSeats() int {
	return p.EconomySeats + p.BusinessSeats
}

func NewSeatMap(plan CabinPlan) []Seat {
	seats := make([]Seat, 0, plan.TotalSeats())
	for i := 1; i <= plan.EconomySeats; i++ {
		seats = append(seats, Seat{Number: i, Class: SeatClassEconomy, BasePrice: plan.EconomyBasePrice})
	}
	for i := plan.EconomySeats + 1; i <= plan.TotalSeats(); i++ {
		seats = append(seats, Seat{Number: i, Class: SeatClassBusiness, BasePrice: plan.BusinessBasePrice})
	}
	return seats
}
