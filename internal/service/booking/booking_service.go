package booking

import (
	"context"
	"log/slog"
	"strings"

	"github.com/Domenick1991/flightdesk/internal/domain"
	"github.com/google/uuid"
)

type BookingUseCase interface {
	SearchRoute(source, destination string) []*domain.Flight
	Schedule(filter ScheduleFilter) []*domain.Flight
	Quote(flightNumber string, seatNumber int) (*SeatQuote, error)
	Book(ctx context.Context, input BookingInput) (*Confirmation, error)
	Cancel(ctx context.Context, ticketNumber string) (*Cancellation, error)
	History(phone string) ([]HistoryEntry, error)
	FindTicket(ticketNumber string) (*TicketRecord, error)
}

// Catalog is the slice of the catalog the booking flow needs. The concrete
// catalog applies mutations and persists; this service owns the booking rules.
type Catalog interface {
	Flights() []*domain.Flight
	FindFlight(number string) (*domain.Flight, error)
	RecordBooking(ctx context.Context, flight *domain.Flight, p domain.Passenger)
	RemoveBooking(ctx context.Context, flight *domain.Flight, p domain.Passenger)
	History(phone string) ([]string, error)
}

type BookingService struct {
	catalog         Catalog
	log             *slog.Logger
	surcharge       float64
	newTicketNumber func() string
}

type BookingServiceOption func(*BookingService)

func WithOccupancySurcharge(surcharge float64) BookingServiceOption {
	return func(s *BookingService) {
		s.surcharge = surcharge
	}
}

// WithTicketNumberFunc overrides ticket number generation, for tests.
func WithTicketNumberFunc(fn func() string) BookingServiceOption {
	return func(s *BookingService) {
		s.newTicketNumber = fn
	}
}

func NewBookingService(catalog Catalog, log *slog.Logger, opts ...BookingServiceOption) *BookingService {
	if log == nil {
		log = slog.Default()
	}
	s := &BookingService{
		catalog:         catalog,
		log:             log,
		surcharge:       domain.DefaultOccupancySurcharge,
		newTicketNumber: NewTicketNumber,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewTicketNumber generates an opaque, collision-resistant ticket number in
// the traditional TKT-prefixed shape.
func NewTicketNumber() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "TKT" + strings.ToUpper(hex[:10])
}

type BookingInput struct {
	FlightNumber string
	SeatNumber   int
	Name         string
	Email        string
	Phone        string
}

type Confirmation struct {
	Flight    *domain.Flight
	Passenger domain.Passenger
	Price     float64
}

type Cancellation struct {
	Flight    *domain.Flight
	Passenger domain.Passenger
}

type SeatQuote struct {
	Price      float64
	ClassLabel string
}

type ScheduleFilter struct {
	Source      string
	Destination string
	Date        string
	// MaxBasePrice < 0 means no price limit.
	MaxBasePrice float64
}

type HistoryEntry struct {
	TicketNumber string
	FlightNumber string
	Route        string
	Date         string
	Status       string
	Resolved     bool
}

type TicketRecord struct {
	Flight    *domain.Flight
	Passenger domain.Passenger
}

// SearchRoute returns flights matching the route exactly, excluding canceled
// ones.
func (s *BookingService) SearchRoute(source, destination string) []*domain.Flight {
	matches := make([]*domain.Flight, 0)
	for _, f := range s.catalog.Flights() {
		if f.Source == source && f.Destination == destination && f.Status != domain.StatusCanceled {
			matches = append(matches, f)
		}
	}
	return matches
}

// Schedule filters the full catalog; empty filter fields match everything.
func (s *BookingService) Schedule(filter ScheduleFilter) []*domain.Flight {
	matches := make([]*domain.Flight, 0)
	for _, f := range s.catalog.Flights() {
		if filter.Source != "" && f.Source != filter.Source {
			continue
		}
		if filter.Destination != "" && f.Destination != filter.Destination {
			continue
		}
		if filter.Date != "" && f.Date != filter.Date {
			continue
		}
		if filter.MaxBasePrice >= 0 && f.BasePrice > filter.MaxBasePrice {
			continue
		}
		matches = append(matches, f)
	}
	return matches
}

// Quote prices a seat for the confirmation prompt without mutating anything.
func (s *BookingService) Quote(flightNumber string, seatNumber int) (*SeatQuote, error) {
	flight, err := s.catalog.FindFlight(flightNumber)
	if err != nil {
		return nil, err
	}
	if _, ok := flight.FindSeat(seatNumber); !ok {
		return nil, domain.ErrSeatNotFound
	}
	if !flight.IsSeatAvailable(seatNumber) {
		return nil, domain.ErrSeatUnavailable
	}
	price, err := flight.BookingPrice(seatNumber, s.surcharge)
	if err != nil {
		return nil, err
	}
	return &SeatQuote{Price: price, ClassLabel: flight.SeatClassLabel(seatNumber)}, nil
}

// Book runs the whole booking transaction: seat validation, duplicate
// passenger guard, dynamic pricing, ticket generation, catalog mutation and
// persistence. On any validation failure nothing is mutated.
func (s *BookingService) Book(ctx context.Context, input BookingInput) (*Confirmation, error) {
	flight, err := s.catalog.FindFlight(input.FlightNumber)
	if err != nil {
		return nil, err
	}
	if flight.Status == domain.StatusCanceled {
		return nil, domain.ErrFlightCanceled
	}
	if _, ok := flight.FindSeat(input.SeatNumber); !ok {
		return nil, domain.ErrSeatNotFound
	}
	if !flight.IsSeatAvailable(input.SeatNumber) {
		return nil, domain.ErrSeatUnavailable
	}
	if flight.HasPassenger(input.Name, input.Phone) {
		return nil, domain.ErrDuplicateBooking
	}

	// The booking itself counts toward occupancy, so the charged price always
	// matches the quote shown at confirmation.
	price, err := flight.BookingPrice(input.SeatNumber, s.surcharge)
	if err != nil {
		return nil, err
	}

	passenger := domain.Passenger{
		Name:         input.Name,
		Email:        input.Email,
		Phone:        input.Phone,
		SeatNumber:   input.SeatNumber,
		TicketNumber: s.newTicketNumber(),
	}
	s.catalog.RecordBooking(ctx, flight, passenger)

	s.log.Info("seat booked",
		"flight", flight.Number,
		"seat", passenger.SeatNumber,
		"ticket", passenger.TicketNumber,
		"price", price,
	)
	return &Confirmation{Flight: flight, Passenger: passenger, Price: price}, nil
}

// Cancel locates the ticket across all flights, frees its seat and drops it
// from the registry. Canceling an unknown (or already canceled) ticket
// returns ErrTicketNotFound.
func (s *BookingService) Cancel(ctx context.Context, ticketNumber string) (*Cancellation, error) {
	record, err := s.FindTicket(ticketNumber)
	if err != nil {
		return nil, err
	}

	s.catalog.RemoveBooking(ctx, record.Flight, record.Passenger)

	s.log.Info("ticket canceled", "flight", record.Flight.Number, "seat", record.Passenger.SeatNumber, "ticket", ticketNumber)
	return &Cancellation{Flight: record.Flight, Passenger: record.Passenger}, nil
}

// History resolves every ticket booked under the phone to its flight.
// Tickets whose flight no longer exists (deleted, or the ticket was
// superseded) are reported as canceled with N/A fields.
func (s *BookingService) History(phone string) ([]HistoryEntry, error) {
	tickets, err := s.catalog.History(phone)
	if err != nil {
		return nil, err
	}

	entries := make([]HistoryEntry, 0, len(tickets))
	for _, ticket := range tickets {
		record, err := s.FindTicket(ticket)
		if err != nil {
			entries = append(entries, HistoryEntry{
				TicketNumber: ticket,
				FlightNumber: "N/A",
				Route:        "N/A",
				Date:         "N/A",
				Status:       "Canceled",
			})
			continue
		}
		entries = append(entries, HistoryEntry{
			TicketNumber: ticket,
			FlightNumber: record.Flight.Number,
			Route:        record.Flight.Route(),
			Date:         record.Flight.Date,
			Status:       record.Flight.Status.String(),
			Resolved:     true,
		})
	}
	return entries, nil
}

// FindTicket scans all flights for the ticket. Linear in flights x
// passengers, which is fine at this scale.
func (s *BookingService) FindTicket(ticketNumber string) (*TicketRecord, error) {
	for _, f := range s.catalog.Flights() {
		if p, ok := f.FindPassengerByTicket(ticketNumber); ok {
			return &TicketRecord{Flight: f, Passenger: *p}, nil
		}
	}
	return nil, domain.ErrTicketNotFound
}

var _ BookingUseCase = (*BookingService)(nil)
