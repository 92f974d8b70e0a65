package main

import (
	"context"
	"log"
	"os"

	"github.com/Domenick1991/flightdesk/config"
	"github.com/Domenick1991/flightdesk/internal/catalog"
	"github.com/Domenick1991/flightdesk/internal/cli"
	"github.com/Domenick1991/flightdesk/internal/domain"
	"github.com/Domenick1991/flightdesk/internal/logger"
	"github.com/Domenick1991/flightdesk/internal/repository"
	"github.com/Domenick1991/flightdesk/internal/service/booking"
	"github.com/Domenick1991/flightdesk/internal/ticket"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	appLog, closeLog, err := logger.New(cfg.Logging.File, logger.ParseLevel(cfg.Logging.Level))
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer closeLog()

	ctx := context.Background()

	store := repository.NewFileStore(cfg.Storage.FlightsFile, cfg.Storage.HistoryFile, appLog)
	plan := domain.CabinPlan{
		EconomySeats:      cfg.Cabin.EconomySeats,
		EconomyBasePrice:  cfg.Cabin.EconomyBasePrice,
		BusinessSeats:     cfg.Cabin.BusinessSeats,
		BusinessBasePrice: cfg.Cabin.BusinessBasePrice,
	}

	cat, err := catalog.Load(ctx, store, appLog, catalog.WithCabinPlan(plan))
	if err != nil {
		log.Fatalf("load catalog: %v", err)
	}

	bookingService := booking.NewBookingService(
		cat,
		appLog,
		booking.WithOccupancySurcharge(cfg.Pricing.OccupancySurcharge),
	)
	tickets := ticket.NewWriter(cfg.Storage.TicketsDir)

	console := cli.New(os.Stdin, os.Stdout, cat, bookingService, tickets, cfg.Admin.Password)
	console.Run(ctx)
}
