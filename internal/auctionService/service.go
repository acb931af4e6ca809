package auction

import (
	"context"
	"fmt"
	"time"

	"github.com/SudarshanaRao/orchids-dream60website-1-sub004/internal/auctionerrors"
	"github.com/SudarshanaRao/orchids-dream60website-1-sub004/internal/clock"
	"github.com/SudarshanaRao/orchids-dream60website-1-sub004/internal/history"
	model "github.com/SudarshanaRao/orchids-dream60website-1-sub004/internal/models"
	"github.com/SudarshanaRao/orchids-dream60website-1-sub004/internal/repository"
	"github.com/SudarshanaRao/orchids-dream60website-1-sub004/internal/schedule"
)

const (
	// RoundMinutes is the length of one bidding round; round r is active
	// during minutes [15*(r-1), 15*r) of the slot hour.
	RoundMinutes = 15

	// DefaultRoundCount is used when a descriptor does not specify one.
	DefaultRoundCount = 4

	// ClaimWindow is how long each winner rank has to claim the prize.
	ClaimWindow = 15 * time.Minute

	// MinParticipantCheckMinute is the checkpoint within round 1 at which
	// an under-subscribed auction is cancelled.
	MinParticipantCheckMinute = 14
)

// Service owns the auction fleet: it drives every auction's round and claim
// state machines off the injected clock and store, and reports state changes
// to the history sink without ever blocking on it.
type Service struct {
	store   repository.AuctionStore
	source  schedule.DescriptorSource
	clock   clock.Clock
	history history.Sink
}

// NewService wires the coordinator with its collaborators.
func NewService(store repository.AuctionStore, source schedule.DescriptorSource, clk clock.Clock, sink history.Sink) *Service {
	return &Service{
		store:   store,
		source:  source,
		clock:   clk,
		history: sink,
	}
}

// GetAuction returns one auction by id.
func (s *Service) GetAuction(ctx context.Context, auctionID string) (model.Auction, error) {
	if auctionID == "" {
		return model.Auction{}, fmt.Errorf("service: empty auction id: %w", auctionerrors.ErrValidation)
	}
	return s.store.Get(ctx, auctionID)
}

// ListAuctions returns every stored auction.
func (s *Service) ListAuctions(ctx context.Context) ([]model.Auction, error) {
	return s.store.List(ctx)
}

// GetWinners returns the winner list of an auction once announced.
func (s *Service) GetWinners(ctx context.Context, auctionID string) ([]model.Winner, error) {
	a, err := s.GetAuction(ctx, auctionID)
	if err != nil {
		return nil, err
	}
	if !a.WinnersAnnounced {
		return nil, fmt.Errorf("service: auction %s: %w", auctionID, auctionerrors.ErrNoWinners)
	}
	return a.Winners, nil
}

// emission is a deferred history notification. State-machine code appends
// emissions while mutating an auction inside a store transaction; they are
// delivered only after the write commits, so a failed write emits nothing.
type emission func(history.Sink)

func emitStatus(auctionID string, status model.AuctionStatus) emission {
	return func(sink history.Sink) { sink.OnStatusChanged(auctionID, status) }
}

func emitWinners(auctionID string, winners []model.Winner) emission {
	return func(sink history.Sink) { sink.OnWinnersDetermined(auctionID, winners) }
}

func emitClaim(auctionID string, rank int, outcome history.ClaimOutcome) emission {
	return func(sink history.Sink) { sink.OnClaim(auctionID, rank, outcome) }
}

func emitRefund(auctionID, participantID string) emission {
	return func(sink history.Sink) { sink.OnRefundDue(auctionID, participantID) }
}

func (s *Service) deliver(emissions []emission) {
	for _, e := range emissions {
		e(s.history)
	}
}
