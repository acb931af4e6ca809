package auction

import (
	"context"
	"fmt"
	"time"

	"github.com/SudarshanaRao/orchids-dream60website-1-sub004/internal/auctionerrors"
	"github.com/SudarshanaRao/orchids-dream60website-1-sub004/internal/history"
	model "github.com/SudarshanaRao/orchids-dream60website-1-sub004/internal/models"
	"github.com/SudarshanaRao/orchids-dream60website-1-sub004/internal/ranker"
)

// SubmitClaim records the prize claim for the currently eligible winner.
// Only the rank at the queue cursor may claim; the first accepted claim
// settles the auction and every other winner is expired. Claiming after the
// deadline expires this rank, advances the queue, and reports ErrWindowExpired
// (the expiry is persisted even though the call fails).
func (s *Service) SubmitClaim(ctx context.Context, auctionID, participantID, paymentRef string) (model.Winner, error) {
	if auctionID == "" || participantID == "" {
		return model.Winner{}, fmt.Errorf("service: missing auction or participant id: %w", auctionerrors.ErrValidation)
	}

	now := s.clock.Now()
	var (
		evs      []emission
		claimErr error
		claimed  model.Winner
	)
	_, err := s.store.Update(ctx, auctionID, func(a *model.Auction) error {
		evs, claimErr = nil, nil

		w, err := eligibleWinner(a, participantID)
		if err != nil {
			return err
		}
		if w.ClaimDeadline != nil && now.After(*w.ClaimDeadline) {
			w.ClaimStatus = model.ClaimExpired
			evs = append(evs, emitClaim(a.AuctionID, w.Rank, history.OutcomeExpired))
			advanceClaimQueue(a, w.Rank, now)
			claimErr = fmt.Errorf("service: claim for rank %d: %w", w.Rank, auctionerrors.ErrWindowExpired)
			return nil // commit the expiry, then surface the error
		}

		w.ClaimStatus = model.ClaimClaimed
		w.ClaimedAt = &now
		w.PaymentRef = paymentRef
		for i := range a.Winners {
			other := &a.Winners[i]
			if other.Rank != w.Rank && other.ClaimStatus == model.ClaimPending {
				other.ClaimStatus = model.ClaimExpired
				evs = append(evs, emitClaim(a.AuctionID, other.Rank, history.OutcomeExpired))
			}
		}
		claimed = *w
		evs = append(evs, emitClaim(a.AuctionID, w.Rank, history.OutcomeClaimed))
		return nil
	})
	if err != nil {
		return model.Winner{}, err
	}
	s.deliver(evs)
	if claimErr != nil {
		return model.Winner{}, claimErr
	}
	return claimed, nil
}

// CancelClaim lets the currently eligible winner waive the prize, expiring
// its rank and advancing the queue immediately.
func (s *Service) CancelClaim(ctx context.Context, auctionID, participantID string) (model.Winner, error) {
	if auctionID == "" || participantID == "" {
		return model.Winner{}, fmt.Errorf("service: missing auction or participant id: %w", auctionerrors.ErrValidation)
	}

	now := s.clock.Now()
	var (
		evs       []emission
		cancelled model.Winner
	)
	_, err := s.store.Update(ctx, auctionID, func(a *model.Auction) error {
		evs = nil

		w, err := eligibleWinner(a, participantID)
		if err != nil {
			return err
		}
		w.ClaimStatus = model.ClaimExpired
		advanceClaimQueue(a, w.Rank, now)
		cancelled = *w
		evs = append(evs, emitClaim(a.AuctionID, w.Rank, history.OutcomeCancelled))
		return nil
	})
	if err != nil {
		return model.Winner{}, err
	}
	s.deliver(evs)
	return cancelled, nil
}

// eligibleWinner locates the participant's winner record and checks it is
// the one the queue cursor currently allows to act.
func eligibleWinner(a *model.Auction, participantID string) (*model.Winner, error) {
	if !a.WinnersAnnounced || len(a.Winners) == 0 {
		return nil, fmt.Errorf("service: auction %s: %w", a.AuctionID, auctionerrors.ErrNoWinners)
	}
	w := a.WinnerByParticipant(participantID)
	if w == nil {
		return nil, fmt.Errorf("service: participant %s is not a winner: %w", participantID, auctionerrors.ErrNotEligible)
	}
	if w.ClaimStatus == model.ClaimClaimed {
		return nil, fmt.Errorf("service: rank %d: %w", w.Rank, auctionerrors.ErrAlreadyClaimed)
	}
	if w.Rank != a.CurrentEligibleRank {
		return nil, fmt.Errorf("service: rank %d is not the eligible rank %d: %w",
			w.Rank, a.CurrentEligibleRank, auctionerrors.ErrNotEligible)
	}
	if w.ClaimStatus == model.ClaimExpired {
		return nil, fmt.Errorf("service: rank %d: %w", w.Rank, auctionerrors.ErrWindowExpired)
	}
	return w, nil
}

// openClaimWindow starts a fresh 15-minute window for a winner.
func openClaimWindow(w *model.Winner, now time.Time) {
	started := now
	deadline := now.Add(ClaimWindow)
	w.ClaimWindowStartedAt = &started
	w.ClaimDeadline = &deadline
}

// advanceClaimQueue moves the cursor to the next rank and opens its window
// if that winner exists and is still pending. The cursor only ever grows.
func advanceClaimQueue(a *model.Auction, fromRank int, now time.Time) {
	next := fromRank + 1
	if next > ranker.QualifyingRank {
		return
	}
	a.CurrentEligibleRank = next
	if w := a.WinnerByRank(next); w != nil && w.ClaimStatus == model.ClaimPending {
		openClaimWindow(w, now)
	}
}

// sweepClaims expires the current rank's claim when its deadline has passed
// and advances the queue, once per expiry: after the status flips to
// EXPIRED the same deadline can never trigger another advance.
func sweepClaims(a *model.Auction, now time.Time) []emission {
	if !claimQueueOpen(a) {
		return nil
	}
	w := a.WinnerByRank(a.CurrentEligibleRank)
	if w == nil || w.ClaimStatus != model.ClaimPending ||
		w.ClaimDeadline == nil || !now.After(*w.ClaimDeadline) {
		return nil
	}

	w.ClaimStatus = model.ClaimExpired
	advanceClaimQueue(a, w.Rank, now)
	return []emission{emitClaim(a.AuctionID, w.Rank, history.OutcomeExpired)}
}

// claimQueueOpen reports whether any claim work remains: winners exist, none
// has claimed, and at least one rank is still pending.
func claimQueueOpen(a *model.Auction) bool {
	if !a.WinnersAnnounced {
		return false
	}
	pending := false
	for _, w := range a.Winners {
		switch w.ClaimStatus {
		case model.ClaimClaimed:
			return false
		case model.ClaimPending:
			pending = true
		}
	}
	return pending
}
