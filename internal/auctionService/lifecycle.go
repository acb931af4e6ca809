package auction

import (
	"time"

	"github.com/SudarshanaRao/orchids-dream60website-1-sub004/internal/clock"
	model "github.com/SudarshanaRao/orchids-dream60website-1-sub004/internal/models"
	"github.com/SudarshanaRao/orchids-dream60website-1-sub004/internal/ranker"
)

// advanceLifecycle moves one auction's state machine to where the current
// time says it should be. It is called once per tick inside the store's
// per-auction transaction and returns the notifications to deliver after
// the write commits.
func (s *Service) advanceLifecycle(a *model.Auction, now time.Time) []emission {
	if a.Status.Terminal() {
		return nil
	}

	today := clock.DateOf(now)
	if a.Date < today {
		// Stale record from a previous day: close it without running
		// round or winner logic over data nobody can act on anymore.
		return completeStale(a, now)
	}
	if a.Date > today {
		return ensureUpcoming(a)
	}

	switch {
	case now.Hour() < a.SlotHour:
		return ensureUpcoming(a)
	case now.Hour() == a.SlotHour:
		return s.runLiveMinute(a, now)
	default:
		return s.forceComplete(a, now)
	}
}

// ensureUpcoming pins a not-yet-started auction to UPCOMING, rewinding any
// round advancement left behind by a misbehaving clock.
func ensureUpcoming(a *model.Auction) []emission {
	var evs []emission
	if a.Status != model.AuctionUpcoming {
		a.Status = model.AuctionUpcoming
		evs = append(evs, emitStatus(a.AuctionID, a.Status))
	}
	for _, r := range a.Rounds {
		if r.Status != model.RoundPending {
			resetRounds(a)
			break
		}
	}
	a.CurrentRound = 1
	return evs
}

// completeStale finishes an auction whose date has passed without touching
// its rounds; whatever state it was left in is frozen as-is.
func completeStale(a *model.Auction, now time.Time) []emission {
	a.Status = model.AuctionCompleted
	a.CompletedAt = &now
	return []emission{emitStatus(a.AuctionID, a.Status)}
}

// runLiveMinute drives the auction during its slot hour: round progression,
// the minimum-participant checkpoint, early termination and the final-round
// winner calculation all hang off the current minute.
func (s *Service) runLiveMinute(a *model.Auction, now time.Time) []emission {
	var evs []emission
	if a.Status != model.AuctionLive {
		a.Status = model.AuctionLive
		if a.StartedAt == nil {
			a.StartedAt = &now
		}
		evs = append(evs, emitStatus(a.AuctionID, a.Status))
	}

	minute := now.Minute()

	if minute == MinParticipantCheckMinute && !a.WinnersAnnounced {
		if r1 := a.RoundByNumber(1); r1 != nil && r1.Status != model.RoundCompleted &&
			len(a.Participants) < a.MinParticipants {
			return append(evs, cancelUnderSubscribed(a, now)...)
		}
	}

	target := minute/RoundMinutes + 1
	if target > a.RoundCount {
		// A delayed tick landed past the last round window; close out the
		// whole auction the same way the end-of-slot path does.
		return append(evs, s.forceComplete(a, now)...)
	}

	evs = append(evs, s.completeRoundsThrough(a, target-1, now)...)

	if !a.WinnersAnnounced {
		activateRound(a, target, now)
		a.CurrentRound = target
	}
	return evs
}

// cancelUnderSubscribed is the minute-14 checkpoint outcome: terminal
// cancellation with a refund note for every entrant.
func cancelUnderSubscribed(a *model.Auction, now time.Time) []emission {
	a.Status = model.AuctionCancelled
	a.CompletedAt = &now

	evs := []emission{emitStatus(a.AuctionID, a.Status)}
	for _, p := range a.Participants {
		evs = append(evs, emitRefund(a.AuctionID, p.ParticipantID))
	}
	return evs
}

// completeRoundsThrough completes rounds 1..through in ascending order,
// checking for early termination after each. The first round that completes
// with 1 to 3 qualified players freezes the auction's winner list; rounds
// after it never collect ranked bids.
func (s *Service) completeRoundsThrough(a *model.Auction, through int, now time.Time) []emission {
	var evs []emission
	if through > a.RoundCount {
		through = a.RoundCount
	}
	for n := 1; n <= through; n++ {
		if a.WinnersAnnounced {
			break
		}
		round := a.RoundByNumber(n)
		if round == nil || round.Status == model.RoundCompleted {
			continue
		}

		completeRound(a, n, now)

		qualified := len(round.QualifiedPlayers)
		if n < a.RoundCount && qualified >= 1 && qualified <= ranker.QualifyingRank {
			a.CurrentRound = n
			forceCompleteRemaining(a, n, now)
			computeEarlyWinners(a, n, now)
			evs = append(evs, emitWinners(a.AuctionID, a.Winners))
			break
		}
		if n == a.RoundCount {
			computeFinalWinners(a, now)
			evs = append(evs, emitWinners(a.AuctionID, a.Winners))
		}
	}
	return evs
}

// forceComplete closes out every unfinished round and the auction itself,
// used when the slot hour has passed (or a delayed tick reached the end of
// the hour). Idempotent: completed rounds and announced winners stay as
// they are.
func (s *Service) forceComplete(a *model.Auction, now time.Time) []emission {
	evs := s.completeRoundsThrough(a, a.RoundCount, now)

	// Early termination is the only path that announces winners with the
	// round cursor frozen before the last round; keep that freeze.
	earlyFrozen := a.WinnersAnnounced && a.CurrentRound > 0 && a.CurrentRound < a.RoundCount

	if !a.WinnersAnnounced {
		computeFinalWinners(a, now)
		evs = append(evs, emitWinners(a.AuctionID, a.Winners))
	}
	if !earlyFrozen {
		a.CurrentRound = a.RoundCount
	}
	if a.Status != model.AuctionCompleted {
		a.Status = model.AuctionCompleted
		a.CompletedAt = &now
		evs = append(evs, emitStatus(a.AuctionID, a.Status))
	}
	return evs
}
