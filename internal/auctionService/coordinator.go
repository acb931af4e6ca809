package auction

import (
	"context"
	"errors"
	"fmt"

	"github.com/SudarshanaRao/orchids-dream60website-1-sub004/internal/auctionerrors"
	"github.com/SudarshanaRao/orchids-dream60website-1-sub004/internal/clock"
	model "github.com/SudarshanaRao/orchids-dream60website-1-sub004/internal/models"
	"github.com/SudarshanaRao/orchids-dream60website-1-sub004/internal/schedule"
	"github.com/SudarshanaRao/orchids-dream60website-1-sub004/utils"
)

// Tick is the once-per-minute entry point: it reconciles stored auctions
// against the descriptor source, then drives every auction's lifecycle and
// claim queue. One auction's failure never aborts the rest; a failed write
// is simply retried by the next tick.
func (s *Service) Tick(ctx context.Context) {
	now := s.clock.Now()

	descriptors, err := s.source.ListAuctionDescriptors(now)
	if err != nil {
		utils.Error("tick: descriptor source failed", map[string]any{"error": err.Error()})
	}
	for _, d := range descriptors {
		if err := schedule.Validate(d); err != nil {
			utils.Warn("tick: skipping invalid descriptor", map[string]any{
				"auction_id": d.AuctionID,
				"error":      err.Error(),
			})
			continue
		}
		if err := s.ensureAuction(ctx, d); err != nil {
			utils.Error("tick: failed to seed auction", map[string]any{
				"auction_id": d.AuctionID,
				"error":      err.Error(),
			})
		}
	}

	auctions, err := s.store.List(ctx)
	if err != nil {
		utils.Error("tick: listing auctions failed", map[string]any{"error": err.Error()})
		return
	}

	for _, snapshot := range auctions {
		// Finished auctions only ever need claim-queue bookkeeping.
		if snapshot.Status.Terminal() && !claimQueueOpen(&snapshot) {
			continue
		}

		var evs []emission
		_, err := s.store.Update(ctx, snapshot.AuctionID, func(a *model.Auction) error {
			evs = nil
			evs = append(evs, s.advanceLifecycle(a, now)...)
			evs = append(evs, sweepClaims(a, now)...)
			return nil
		})
		if err != nil {
			utils.Error("tick: auction processing failed", map[string]any{
				"auction_id": snapshot.AuctionID,
				"error":      err.Error(),
			})
			continue
		}
		s.deliver(evs)
	}
}

// DailyRollover is the once-per-day safety net: any auction left unfinished
// from a previous day is force-completed without re-running its rounds.
func (s *Service) DailyRollover(ctx context.Context) {
	now := s.clock.Now()
	today := clock.DateOf(now)

	auctions, err := s.store.List(ctx)
	if err != nil {
		utils.Error("rollover: listing auctions failed", map[string]any{"error": err.Error()})
		return
	}

	closed := 0
	for _, snapshot := range auctions {
		if snapshot.Status.Terminal() || snapshot.Date >= today {
			continue
		}
		var evs []emission
		_, err := s.store.Update(ctx, snapshot.AuctionID, func(a *model.Auction) error {
			evs = nil
			if !a.Status.Terminal() {
				evs = completeStale(a, now)
			}
			return nil
		})
		if err != nil {
			utils.Error("rollover: failed to close stale auction", map[string]any{
				"auction_id": snapshot.AuctionID,
				"error":      err.Error(),
			})
			continue
		}
		s.deliver(evs)
		closed++
	}

	utils.Info("daily rollover finished", map[string]any{"date": today, "closed": closed})
}

// ensureAuction creates the minimal local record for a descriptor the store
// has not seen yet.
func (s *Service) ensureAuction(ctx context.Context, d model.AuctionDescriptor) error {
	_, err := s.store.Get(ctx, d.AuctionID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, auctionerrors.ErrAuctionNotFound) {
		return err
	}

	if err := s.store.Create(ctx, newAuction(d)); err != nil {
		// Another tick or instance created it in between; fine.
		if errors.Is(err, auctionerrors.ErrAuctionExists) {
			return nil
		}
		return err
	}
	utils.Info("auction created", map[string]any{
		"auction_id": d.AuctionID,
		"date":       d.Date,
		"slot_hour":  d.SlotHour,
	})
	return nil
}

func newAuction(d model.AuctionDescriptor) model.Auction {
	roundCount := d.RoundCount
	if roundCount == 0 {
		roundCount = DefaultRoundCount
	}
	rounds := make([]model.Round, roundCount)
	for i := range rounds {
		rounds[i] = model.Round{RoundNumber: i + 1, Status: model.RoundPending}
	}
	return model.Auction{
		AuctionID:       d.AuctionID,
		Date:            d.Date,
		TimeSlot:        fmt.Sprintf("%02d:00", d.SlotHour),
		SlotHour:        d.SlotHour,
		Status:          model.AuctionUpcoming,
		RoundCount:      roundCount,
		CurrentRound:    1,
		EntryFee:        d.EntryFee,
		PrizeValue:      d.PrizeValue,
		MinParticipants: d.MinParticipants,
		Rounds:          rounds,
	}
}
