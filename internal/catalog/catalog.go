package catalog

import (
	"context"
	"log/slog"

	"github.com/Domenick1991/flightdesk/internal/domain"
	"github.com/Domenick1991/flightdesk/internal/repository"
)

// Catalog is the single owner of all flights and the booking registry. Every
// mutating operation persists the full state before returning, so the store
// never diverges from memory after a completed call. Persist failures are
// logged and swallowed; the in-memory state stays authoritative for the rest
// of the session.
//
// The catalog is not safe for concurrent use. If it is ever shared across
// goroutines, every method needs a single coarse lock.
type Catalog struct {
	store   repository.CatalogStore
	log     *slog.Logger
	plan    domain.CabinPlan
	flights []*domain.Flight
	history map[string][]string
}

type Option func(*Catalog)

// WithCabinPlan overrides the seat inventory seeded into new flights.
func WithCabinPlan(plan domain.CabinPlan) Option {
	return func(c *Catalog) {
		c.plan = plan
	}
}

// Load builds a catalog from the persisted state. A missing store yields an
// empty catalog.
func Load(ctx context.Context, store repository.CatalogStore, log *slog.Logger, opts ...Option) (*Catalog, error) {
	if log == nil {
		log = slog.Default()
	}

	snap, err := store.Load(ctx)
	if err != nil {
		return nil, err
	}

	c := &Catalog{
		store:   store,
		log:     log,
		plan:    domain.DefaultCabinPlan(),
		flights: snap.Flights,
		history: snap.History,
	}
	if c.history == nil {
		c.history = make(map[string][]string)
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Catalog) Flights() []*domain.Flight {
	return c.flights
}

func (c *Catalog) FindFlight(number string) (*domain.Flight, error) {
	for _, f := range c.flights {
		if f.Number == number {
			return f, nil
		}
	}
	return nil, domain.ErrFlightNotFound
}

// FlightSpec carries the admin-entered fields of a new flight. The seat
// inventory is seeded from the catalog's cabin plan, not from the spec.
type FlightSpec struct {
	Number          string
	Source          string
	Destination     string
	SourceTime      string
	DestinationTime string
	Date            string
	BasePrice       float64
	Via             string
	Stops           int
}

func (c *Catalog) AddFlight(ctx context.Context, spec FlightSpec) (*domain.Flight, error) {
	if _, err := c.FindFlight(spec.Number); err == nil {
		return nil, domain.ErrDuplicateFlight
	}

	flight := domain.NewFlight(spec.Number, spec.Source, spec.Destination, spec.SourceTime, spec.DestinationTime, spec.Date, spec.BasePrice, spec.Via, spec.Stops, c.plan)
	c.flights = append(c.flights, flight)
	c.persist(ctx)

	c.log.Info("flight added", "flight", flight.Number, "route", flight.Route())
	return flight, nil
}

// FlightUpdate holds the fields an admin may change. A nil field keeps the
// current value; "blank = keep current" is part of the contract, not a UI
// convenience.
type FlightUpdate struct {
	Source          *string
	Destination     *string
	SourceTime      *string
	DestinationTime *string
	Date            *string
	BasePrice       *float64
	Via             *string
	Stops           *int
}

func (c *Catalog) ModifyFlight(ctx context.Context, number string, upd FlightUpdate) error {
	flight, err := c.FindFlight(number)
	if err != nil {
		return err
	}

	if upd.Source != nil {
		flight.Source = *upd.Source
	}
	if upd.Destination != nil {
		flight.Destination = *upd.Destination
	}
	if upd.SourceTime != nil {
		flight.SourceTime = *upd.SourceTime
	}
	if upd.DestinationTime != nil {
		flight.DestinationTime = *upd.DestinationTime
	}
	if upd.Date != nil {
		flight.Date = *upd.Date
	}
	if upd.BasePrice != nil {
		flight.BasePrice = *upd.BasePrice
	}
	if upd.Via != nil {
		flight.Via = *upd.Via
	}
	if upd.Stops != nil {
		flight.Stops = *upd.Stops
	}

	c.persist(ctx)
	c.log.Info("flight modified", "flight", number)
	return nil
}

// DeleteFlight removes a flight. When the flight has booked passengers the
// caller must pass confirmed=true; otherwise ErrHasPassengers is returned and
// nothing changes. Registry entries referencing the deleted flight's tickets
// are left in place; history lookups report them as canceled.
func (c *Catalog) DeleteFlight(ctx context.Context, number string, confirmed bool) error {
	for i, f := range c.flights {
		if f.Number != number {
			continue
		}
		if len(f.Passengers) > 0 && !confirmed {
			return domain.ErrHasPassengers
		}
		c.flights = append(c.flights[:i], c.flights[i+1:]...)
		c.persist(ctx)
		c.log.Info("flight deleted", "flight", number, "passengers", len(f.Passengers))
		return nil
	}
	return domain.ErrFlightNotFound
}

func (c *Catalog) UpdateStatus(ctx context.Context, number string, status domain.FlightStatus) error {
	flight, err := c.FindFlight(number)
	if err != nil {
		return err
	}
	flight.Status = status
	c.persist(ctx)
	c.log.Info("flight status updated", "flight", number, "status", status.String())
	return nil
}

// RecordBooking appends the passenger to the flight, flips the seat to
// booked, registers the ticket under the passenger's phone and persists.
// Validation belongs to the booking service; the catalog only applies the
// already-validated mutation.
func (c *Catalog) RecordBooking(ctx context.Context, flight *domain.Flight, p domain.Passenger) {
	flight.Passengers = append(flight.Passengers, p)
	flight.MarkSeatBooked(p.SeatNumber)
	c.history[p.Phone] = append(c.history[p.Phone], p.TicketNumber)
	c.persist(ctx)
}

// RemoveBooking undoes RecordBooking: drops the ticket from the registry,
// frees the seat, removes the passenger and persists. The registry entry is
// kept (possibly empty) so the phone's key survives, as the store format does.
func (c *Catalog) RemoveBooking(ctx context.Context, flight *domain.Flight, p domain.Passenger) {
	if tickets, ok := c.history[p.Phone]; ok {
		kept := tickets[:0]
		for _, t := range tickets {
			if t != p.TicketNumber {
				kept = append(kept, t)
			}
		}
		c.history[p.Phone] = kept
	}

	flight.MarkSeatAvailable(p.SeatNumber)
	for i := range flight.Passengers {
		if flight.Passengers[i].TicketNumber == p.TicketNumber {
			flight.Passengers = append(flight.Passengers[:i], flight.Passengers[i+1:]...)
			break
		}
	}
	c.persist(ctx)
}

// History returns the ticket numbers booked under a phone, in booking order.
func (c *Catalog) History(phone string) ([]string, error) {
	tickets, ok := c.history[phone]
	if !ok || len(tickets) == 0 {
		return nil, domain.ErrHistoryNotFound
	}
	return tickets, nil
}

func (c *Catalog) persist(ctx context.Context) {
	snap := &repository.Snapshot{Flights: c.flights, History: c.history}
	if err := c.store.Save(ctx, snap); err != nil {
		c.log.Error("failed to persist catalog", "error", err)
	}
}
