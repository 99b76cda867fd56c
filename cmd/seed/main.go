package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/torioweb/cj-hair-lounge/backend/internal/config"
	"github.com/torioweb/cj-hair-lounge/backend/internal/repository"
	"github.com/torioweb/cj-hair-lounge/backend/internal/seed"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var days int

	flag.IntVar(&op, "op", 0, "operation to run (1: seed gallery images, 2: seed demo appointments)")
	flag.IntVar(&days, "days", 0, "how many days of demo appointments to seed (defaults to SEED_APPOINTMENT_DAYS)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("failed to create database pool", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open does not connect eagerly, so ping before doing any work
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("failed to connect to database", "error", err)
		return
	}

	repo := repository.NewRepository(cfg, dbpool)

	location, err := time.LoadLocation(cfg.Salon.Timezone)
	if err != nil {
		logger.Error("failed to load salon timezone", "error", err)
		return
	}

	if days <= 0 {
		days = cfg.Seed.AppointmentDays
	}

	switch op {
	case 0:
		slog.Error("no operation specified")
	case 1:
		seed.SeedGallery(repo)
	case 2:
		seed.SeedAppointments(repo, days, location)
	default:
		slog.Error("unknown operation", "op", op)
	}
}
