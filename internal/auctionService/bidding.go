package auction

import (
	"context"
	"fmt"

	"github.com/SudarshanaRao/orchids-dream60website-1-sub004/internal/auctionerrors"
	model "github.com/SudarshanaRao/orchids-dream60website-1-sub004/internal/models"
	"github.com/SudarshanaRao/orchids-dream60website-1-sub004/utils"
)

// JoinAuction registers a paying user as a participant. Entries are open
// while the auction is UPCOMING and during round 1's bidding window; once
// round 1 completes the field is locked.
func (s *Service) JoinAuction(ctx context.Context, auctionID, userID, username string) (model.Participant, error) {
	if auctionID == "" || userID == "" || username == "" {
		return model.Participant{}, fmt.Errorf("service: missing auction, user id or username: %w", auctionerrors.ErrValidation)
	}

	now := s.clock.Now()
	var joined model.Participant
	_, err := s.store.Update(ctx, auctionID, func(a *model.Auction) error {
		switch a.Status {
		case model.AuctionUpcoming:
			// open
		case model.AuctionLive:
			r1 := a.RoundByNumber(1)
			if a.WinnersAnnounced || r1 == nil || r1.Status == model.RoundCompleted {
				return fmt.Errorf("service: entries closed for auction %s: %w", auctionID, auctionerrors.ErrRoundNotActive)
			}
		default:
			return fmt.Errorf("service: auction %s is %s: %w", auctionID, a.Status, auctionerrors.ErrRoundNotActive)
		}

		if a.ParticipantByUserID(userID) != nil {
			return fmt.Errorf("service: user %s in auction %s: %w", userID, auctionID, auctionerrors.ErrAlreadyJoined)
		}

		joined = model.Participant{
			ParticipantID: utils.GenerateID(),
			UserID:        userID,
			Username:      username,
			EntryFeePaid:  a.EntryFee,
			JoinedAt:      now,
			CurrentRound:  1,
		}
		a.Participants = append(a.Participants, joined)
		return nil
	})
	if err != nil {
		return model.Participant{}, err
	}
	return joined, nil
}

// PlaceBid validates and records a sealed bid for the auction's current
// round. The whole check-and-append runs inside the store's per-auction
// transaction, so the one-bid-per-round invariant and the participant
// counters cannot race with ticks or other bids.
func (s *Service) PlaceBid(ctx context.Context, auctionID, participantID string, amount int64) (model.Bid, error) {
	if auctionID == "" || participantID == "" {
		return model.Bid{}, fmt.Errorf("service: missing auction or participant id: %w", auctionerrors.ErrValidation)
	}
	if amount < 1 {
		return model.Bid{}, fmt.Errorf("service: bid amount must be at least 1: %w", auctionerrors.ErrValidation)
	}

	now := s.clock.Now()
	var placed model.Bid
	_, err := s.store.Update(ctx, auctionID, func(a *model.Auction) error {
		if a.Status != model.AuctionLive || a.WinnersAnnounced {
			return fmt.Errorf("service: auction %s is not accepting bids: %w", auctionID, auctionerrors.ErrRoundNotActive)
		}
		round := a.RoundByNumber(a.CurrentRound)
		if round == nil || round.Status != model.RoundActive {
			return fmt.Errorf("service: round %d of auction %s: %w", a.CurrentRound, auctionID, auctionerrors.ErrRoundNotActive)
		}

		p := a.ParticipantByID(participantID)
		if p == nil {
			return fmt.Errorf("service: participant %s in auction %s: %w", participantID, auctionID, auctionerrors.ErrParticipantNotFound)
		}
		if p.Eliminated {
			return fmt.Errorf("service: participant %s (round %d): %w", participantID, p.EliminatedRound, auctionerrors.ErrAlreadyEliminated)
		}
		if round.RoundNumber > 1 {
			prev := a.RoundByNumber(round.RoundNumber - 1)
			if prev == nil || !prev.HasQualified(participantID) {
				return fmt.Errorf("service: participant %s did not qualify for round %d: %w",
					participantID, round.RoundNumber, auctionerrors.ErrNotEligible)
			}
		}
		if round.BidByParticipant(participantID) != nil {
			return fmt.Errorf("service: participant %s in round %d: %w", participantID, round.RoundNumber, auctionerrors.ErrAlreadyBid)
		}

		placed = model.Bid{
			BidID:         utils.GenerateID(),
			RoundNumber:   round.RoundNumber,
			ParticipantID: participantID,
			Username:      p.Username,
			Amount:        amount,
			PlacedAt:      now,
		}
		round.Bids = append(round.Bids, placed)
		p.TotalBids++
		p.TotalBidAmount += amount
		p.CurrentRound = round.RoundNumber
		return nil
	})
	if err != nil {
		return model.Bid{}, err
	}
	return placed, nil
}
