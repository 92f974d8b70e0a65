package repository

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/Domenick1991/flightdesk/internal/domain"
)

// FileStore persists the catalog to two line-oriented text files.
//
// Flight store file, one logical record = exactly 3 lines:
//
//	number|source|destination|sourceTime|destinationTime|date|basePrice|via|stops|status
//	seatNumber,booked(0|1),classCode(0|1),basePrice;...
//	name,email,phone,seatNumber,ticketNumber;...
//
// Booking registry file, one line per phone: phone|ticket1,ticket2,
//
// Separators inside free-text fields are not escaped and corrupt parsing;
// this is a known limitation of the format.
type FileStore struct {
	flightsPath string
	historyPath string
	log         *slog.Logger
}

func NewFileStore(flightsPath, historyPath string, log *slog.Logger) CatalogStore {
	if log == nil {
		log = slog.Default()
	}
	return &FileStore{flightsPath: flightsPath, historyPath: historyPath, log: log}
}

func (s *FileStore) Load(ctx context.Context) (*Snapshot, error) {
	snap := NewSnapshot()

	if err := s.loadFlights(snap); err != nil {
		return nil, err
	}
	if err := s.loadHistory(snap); err != nil {
		return nil, err
	}
	return snap, nil
}

func (s *FileStore) Save(ctx context.Context, snap *Snapshot) error {
	if err := s.saveFlights(snap.Flights); err != nil {
		return err
	}
	return s.saveHistory(snap.History)
}

func (s *FileStore) saveFlights(flights []*domain.Flight) error {
	f, err := os.Create(s.flightsPath)
	if err != nil {
		return fmt.Errorf("create flight store: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, fl := range flights {
		header := strings.Join([]string{
			fl.Number,
			fl.Source,
			fl.Destination,
			fl.SourceTime,
			fl.DestinationTime,
			fl.Date,
			formatPrice(fl.BasePrice),
			fl.Via,
			strconv.Itoa(fl.Stops),
			strconv.Itoa(fl.Status.Code()),
		}, "|")
		fmt.Fprintln(w, header)

		for _, seat := range fl.Seats {
			fmt.Fprintf(w, "%d,%d,%d,%s;", seat.Number, boolCode(seat.Booked), seat.Class.Code(), formatPrice(seat.BasePrice))
		}
		fmt.Fprintln(w)

		for _, p := range fl.Passengers {
			fmt.Fprintf(w, "%s,%s,%s,%d,%s;", p.Name, p.Email, p.Phone, p.SeatNumber, p.TicketNumber)
		}
		fmt.Fprintln(w)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write flight store: %w", err)
	}
	return nil
}

func (s *FileStore) saveHistory(history map[string][]string) error {
	f, err := os.Create(s.historyPath)
	if err != nil {
		return fmt.Errorf("create booking registry: %w", err)
	}
	defer f.Close()

	phones := make([]string, 0, len(history))
	for phone := range history {
		phones = append(phones, phone)
	}
	sort.Strings(phones)

	w := bufio.NewWriter(f)
	for _, phone := range phones {
		fmt.Fprintf(w, "%s|", phone)
		for _, ticket := range history[phone] {
			fmt.Fprintf(w, "%s,", ticket)
		}
		fmt.Fprintln(w)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write booking registry: %w", err)
	}
	return nil
}

func (s *FileStore) loadFlights(snap *Snapshot) error {
	lines, err := readLines(s.flightsPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("open flight store: %w", err)
	}

	for i := 0; i < len(lines); {
		if strings.TrimSpace(lines[i]) == "" {
			i++
			continue
		}
		// Record boundaries are purely positional: header, seats, passengers.
		if i+2 >= len(lines) {
			return &ParseError{File: s.flightsPath, Line: i + 1, Msg: "truncated flight record"}
		}
		flight, err := parseFlightRecord(lines[i], lines[i+1], lines[i+2])
		if err != nil {
			s.log.Warn("skipping malformed flight record", "file", s.flightsPath, "line", i+1, "error", err)
		} else {
			snap.Flights = append(snap.Flights, flight)
		}
		i += 3
	}
	return nil
}

func (s *FileStore) loadHistory(snap *Snapshot) error {
	lines, err := readLines(s.historyPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("open booking registry: %w", err)
	}

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		phone, rest, ok := strings.Cut(line, "|")
		if !ok || phone == "" {
			s.log.Warn("skipping malformed registry entry", "file", s.historyPath, "line", i+1)
			continue
		}
		tickets := []string{}
		for _, ticket := range strings.Split(rest, ",") {
			if ticket != "" {
				tickets = append(tickets, ticket)
			}
		}
		snap.History[phone] = tickets
	}
	return nil
}

func parseFlightRecord(header, seatLine, passengerLine string) (*domain.Flight, error) {
	fields := strings.Split(header, "|")
	if len(fields) != 10 {
		return nil, fmt.Errorf("header has %d fields, want 10", len(fields))
	}

	basePrice, err := strconv.ParseFloat(fields[6], 64)
	if err != nil {
		return nil, fmt.Errorf("base price %q: %w", fields[6], err)
	}
	stops, err := strconv.Atoi(fields[8])
	if err != nil {
		return nil, fmt.Errorf("stops %q: %w", fields[8], err)
	}
	statusCode, err := strconv.Atoi(fields[9])
	if err != nil {
		return nil, fmt.Errorf("status %q: %w", fields[9], err)
	}
	status, err := domain.StatusFromCode(statusCode)
	if err != nil {
		return nil, err
	}

	flight := &domain.Flight{
		Number:          fields[0],
		Source:          fields[1],
		Destination:     fields[2],
		SourceTime:      fields[3],
		DestinationTime: fields[4],
		Date:            fields[5],
		BasePrice:       basePrice,
		Via:             fields[7],
		Stops:           stops,
		Status:          status,
	}

	for _, segment := range strings.Split(seatLine, ";") {
		if segment == "" {
			continue
		}
		seat, err := parseSeat(segment)
		if err != nil {
			return nil, fmt.Errorf("seat %q: %w", segment, err)
		}
		flight.Seats = append(flight.Seats, seat)
	}

	for _, segment := range strings.Split(passengerLine, ";") {
		if segment == "" {
			continue
		}
		p, err := parsePassenger(segment)
		if err != nil {
			return nil, fmt.Errorf("passenger %q: %w", segment, err)
		}
		flight.Passengers = append(flight.Passengers, p)
	}

	return flight, nil
}

func parseSeat(segment string) (domain.Seat, error) {
	parts := strings.Split(segment, ",")
	if len(parts) != 4 {
		return domain.Seat{}, fmt.Errorf("has %d fields, want 4", len(parts))
	}
	number, err := strconv.Atoi(parts[0])
	if err != nil {
		return domain.Seat{}, err
	}
	classCode, err := strconv.Atoi(parts[2])
	if err != nil {
		return domain.Seat{}, err
	}
	class, err := domain.SeatClassFromCode(classCode)
	if err != nil {
		return domain.Seat{}, err
	}
	price, err := strconv.ParseFloat(parts[3], 64)
	if err != nil {
		return domain.Seat{}, err
	}
	return domain.Seat{Number: number, Booked: parts[1] == "1", Class: class, BasePrice: price}, nil
}

func parsePassenger(segment string) (domain.Passenger, error) {
	parts := strings.Split(segment, ",")
	if len(parts) != 5 {
		return domain.Passenger{}, fmt.Errorf("has %d fields, want 5", len(parts))
	}
	seatNumber, err := strconv.Atoi(parts[3])
	if err != nil {
		return domain.Passenger{}, err
	}
	return domain.Passenger{
		Name:         parts[0],
		Email:        parts[1],
		Phone:        parts[2],
		SeatNumber:   seatNumber,
		TicketNumber: parts[4],
	}, nil
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

func formatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}

func boolCode(b bool) int {
	if b {
		return 1
	}
	return 0
}

var _ CatalogStore = (*FileStore)(nil)
