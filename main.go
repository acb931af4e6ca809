package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/go-co-op/gocron"

	auction "github.com/SudarshanaRao/orchids-dream60website-1-sub004/internal/auctionService"
	"github.com/SudarshanaRao/orchids-dream60website-1-sub004/internal/clock"
	"github.com/SudarshanaRao/orchids-dream60website-1-sub004/internal/config"
	"github.com/SudarshanaRao/orchids-dream60website-1-sub004/internal/history"
	"github.com/SudarshanaRao/orchids-dream60website-1-sub004/internal/repository"
	"github.com/SudarshanaRao/orchids-dream60website-1-sub004/internal/schedule"
	"github.com/SudarshanaRao/orchids-dream60website-1-sub004/internal/server"
	"github.com/SudarshanaRao/orchids-dream60website-1-sub004/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	loc := clock.FixedOffset(cfg.TimezoneName, cfg.TimezoneOffsetMinutes)
	clk := clock.NewZoneClock(loc)

	store, err := buildStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize store: %v\n", err)
		os.Exit(1)
	}

	source := schedule.NewHourlySource(
		cfg.HourSlots, cfg.EntryFee, cfg.PrizeValue, cfg.MinParticipants, cfg.RoundCount,
	)
	svc := auction.NewService(store, source, clk, history.LogSink{})

	startScheduler(svc, loc)

	router := server.SetupRouter(svc)
	port := ":" + cfg.Port
	fmt.Printf("Starting dream60 auction server on %s...\n", port)
	if err := router.Run(port); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// buildStore selects the persistence backend from configuration.
func buildStore(cfg config.Config) (repository.AuctionStore, error) {
	if cfg.StoreType == "mongo" {
		return repository.NewMongoRepo(context.Background(), cfg.MongoURI, cfg.MongoDatabase)
	}
	return repository.NewMemoryRepo(), nil
}

// startScheduler drives the engine: Tick every minute, rollover once a day.
// The engine itself never schedules anything.
func startScheduler(svc *auction.Service, loc *time.Location) {
	scheduler := gocron.NewScheduler(loc)

	if _, err := scheduler.Every(1).Minute().Do(func() {
		svc.Tick(context.Background())
	}); err != nil {
		utils.Fatal("failed to schedule tick", map[string]any{"error": err.Error()})
	}
	if _, err := scheduler.Every(1).Day().At("00:05").Do(func() {
		svc.DailyRollover(context.Background())
	}); err != nil {
		utils.Fatal("failed to schedule daily rollover", map[string]any{"error": err.Error()})
	}

	scheduler.StartAsync()
	utils.Info("auction scheduler started", map[string]any{"timezone": loc.String()})
}
