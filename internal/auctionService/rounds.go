package auction

import (
	"fmt"
	"time"

	model "github.com/SudarshanaRao/orchids-dream60website-1-sub004/internal/models"
	"github.com/SudarshanaRao/orchids-dream60website-1-sub004/internal/ranker"
)

// completeRound finishes one round: ranks its bids, carries the qualified
// set forward, and eliminates everyone who should have bid but did not.
// Calling it on an already-completed round is a no-op.
func completeRound(a *model.Auction, roundNumber int, now time.Time) {
	r := a.RoundByNumber(roundNumber)
	if r == nil || r.Status == model.RoundCompleted {
		return
	}

	r.Bids = ranker.Rank(r.Bids)
	r.QualifiedPlayers = ranker.QualifiedIDs(r.Bids)
	eliminateNonBidders(a, roundNumber)

	r.Status = model.RoundCompleted
	if r.StartedAt == nil {
		r.StartedAt = &now
	}
	r.CompletedAt = &now
}

// eliminateNonBidders marks participants out of the game. Round 1 eliminates
// every entrant without a bid; later rounds eliminate only players who
// qualified in the previous round and then went silent. Already-eliminated
// participants are left untouched so repeated completion is idempotent.
func eliminateNonBidders(a *model.Auction, roundNumber int) {
	r := a.RoundByNumber(roundNumber)
	bidders := make(map[string]bool, len(r.Bids))
	for _, b := range r.Bids {
		bidders[b.ParticipantID] = true
	}

	if roundNumber == 1 {
		for i := range a.Participants {
			p := &a.Participants[i]
			if p.Eliminated || bidders[p.ParticipantID] {
				continue
			}
			eliminate(p, roundNumber, "no bid placed after paying entry")
		}
		return
	}

	prev := a.RoundByNumber(roundNumber - 1)
	if prev == nil {
		return
	}
	for _, id := range prev.QualifiedPlayers {
		p := a.ParticipantByID(id)
		if p == nil || p.Eliminated || bidders[id] {
			continue
		}
		eliminate(p, roundNumber, fmt.Sprintf("no bid placed in round %d", roundNumber))
	}
}

func eliminate(p *model.Participant, roundNumber int, reason string) {
	p.Eliminated = true
	p.EliminatedRound = roundNumber
	p.EliminationReason = reason
}

// activateRound marks the target round active and keeps every later round
// pending, undoing any advancement from a tick that observed a bad clock.
func activateRound(a *model.Auction, roundNumber int, now time.Time) {
	for i := range a.Rounds {
		r := &a.Rounds[i]
		switch {
		case r.RoundNumber == roundNumber:
			if r.Status != model.RoundActive {
				r.Status = model.RoundActive
				if r.StartedAt == nil {
					r.StartedAt = &now
				}
			}
		case r.RoundNumber > roundNumber:
			if r.Status != model.RoundPending {
				r.Status = model.RoundPending
				r.StartedAt = nil
				r.CompletedAt = nil
			}
		}
	}
}

// resetRounds puts every round back to pending, used when a slot is
// re-observed before its hour actually starts.
func resetRounds(a *model.Auction) {
	for i := range a.Rounds {
		r := &a.Rounds[i]
		r.Status = model.RoundPending
		r.StartedAt = nil
		r.CompletedAt = nil
		r.QualifiedPlayers = nil
		for j := range r.Bids {
			r.Bids[j].Rank = 0
			r.Bids[j].Qualified = false
		}
	}
}

// forceCompleteRemaining closes out rounds after an early termination. The
// rounds never ran, so their bids are left unranked and no elimination is
// applied.
func forceCompleteRemaining(a *model.Auction, afterRound int, now time.Time) {
	for i := range a.Rounds {
		r := &a.Rounds[i]
		if r.RoundNumber > afterRound && r.Status != model.RoundCompleted {
			r.Status = model.RoundCompleted
			r.CompletedAt = &now
		}
	}
}
