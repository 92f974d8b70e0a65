package ticket

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/Domenick1991/flightdesk/internal/domain"
)

const artifactTemplate = `=============================================
              FLIGHTDESK TICKET
=============================================

TICKET NUMBER: {{.Passenger.TicketNumber}}

PASSENGER INFORMATION:
Name: {{.Passenger.Name}}
Phone: {{.Passenger.Phone}}
Email: {{.Passenger.Email}}

FLIGHT INFORMATION:
Flight Number: {{.Flight.Number}}
From: {{.Flight.Source}}
To: {{.Flight.Destination}}
{{- if .Flight.Via}}
Via: {{.Flight.Via}}
{{- end}}
Date: {{.Flight.Date}}
Departure Time: {{.Flight.SourceTime}}
Arrival Time: {{.Flight.DestinationTime}}
Seat Number: {{.Passenger.SeatNumber}} ({{.Flight.SeatClassLabel .Passenger.SeatNumber}})

=============================================
         THANK YOU FOR FLYING WITH US!
=============================================
`

var tmpl = template.Must(template.New("ticket").Parse(artifactTemplate))

// Writer emits one plain-text artifact per ticket, named by ticket number.
// Reprinting a ticket overwrites the same file.
type Writer struct {
	dir string
}

func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// Write renders the ticket and returns the path of the written file.
func (w *Writer) Write(flight *domain.Flight, p domain.Passenger) (string, error) {
	var buf strings.Builder
	if err := tmpl.Execute(&buf, struct {
		Flight    *domain.Flight
		Passenger domain.Passenger
	}{flight, p}); err != nil {
		return "", fmt.Errorf("render ticket %s: %w", p.TicketNumber, err)
	}

	if w.dir != "" {
		if err := os.MkdirAll(w.dir, 0o755); err != nil {
			return "", fmt.Errorf("create tickets dir: %w", err)
		}
	}

	path := filepath.Join(w.dir, Filename(p.TicketNumber))
	if err := os.WriteFile(path, []byte(buf.String()), 0o644); err != nil {
		return "", fmt.Errorf("write ticket %s: %w", p.TicketNumber, err)
	}
	return path, nil
}

func Filename(ticketNumber string) string {
	return "ticket_" + ticketNumber + ".txt"
}
