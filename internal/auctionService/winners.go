package auction

import (
	"sort"
	"time"

	model "github.com/SudarshanaRao/orchids-dream60website-1-sub004/internal/models"
	"github.com/SudarshanaRao/orchids-dream60website-1-sub004/internal/ranker"
)

// computeFinalWinners fills the winner list from the last round's ranking.
// Rank groups are drained in order (all rank-1 bidders before any rank-2
// bidder); inside a group, higher total spend across the earlier rounds wins,
// then the earlier final-round bid.
func computeFinalWinners(a *model.Auction, now time.Time) {
	final := a.RoundByNumber(a.RoundCount)
	if final == nil {
		setWinners(a, nil, now)
		return
	}

	var pool []model.Bid
	for _, b := range final.Bids {
		if b.Rank >= 1 && b.Rank <= ranker.QualifyingRank {
			pool = append(pool, b)
		}
	}
	sort.SliceStable(pool, func(i, j int) bool {
		if pool[i].Rank != pool[j].Rank {
			return pool[i].Rank < pool[j].Rank
		}
		ti := bidTotalThrough(a, pool[i].ParticipantID, a.RoundCount-1)
		tj := bidTotalThrough(a, pool[j].ParticipantID, a.RoundCount-1)
		if ti != tj {
			return ti > tj
		}
		return pool[i].PlacedAt.Before(pool[j].PlacedAt)
	})

	winners := make([]model.Winner, 0, ranker.QualifyingRank)
	for _, b := range pool {
		if len(winners) == ranker.QualifyingRank {
			break
		}
		winners = append(winners, newWinner(a, len(winners)+1, b))
	}
	setWinners(a, winners, now)
}

// computeEarlyWinners orders the terminating round's qualified players by
// their rank in that round, then total spend so far, then bid time.
func computeEarlyWinners(a *model.Auction, terminatingRound int, now time.Time) {
	tr := a.RoundByNumber(terminatingRound)
	if tr == nil {
		setWinners(a, nil, now)
		return
	}

	var pool []model.Bid
	for _, id := range tr.QualifiedPlayers {
		if b := tr.BidByParticipant(id); b != nil {
			pool = append(pool, *b)
		}
	}
	sort.SliceStable(pool, func(i, j int) bool {
		if pool[i].Rank != pool[j].Rank {
			return pool[i].Rank < pool[j].Rank
		}
		ti := bidTotalThrough(a, pool[i].ParticipantID, terminatingRound)
		tj := bidTotalThrough(a, pool[j].ParticipantID, terminatingRound)
		if ti != tj {
			return ti > tj
		}
		return pool[i].PlacedAt.Before(pool[j].PlacedAt)
	})

	winners := make([]model.Winner, 0, ranker.QualifyingRank)
	for _, b := range pool {
		if len(winners) == ranker.QualifyingRank {
			break
		}
		winners = append(winners, newWinner(a, len(winners)+1, b))
	}
	setWinners(a, winners, now)
}

func newWinner(a *model.Auction, rank int, deciding model.Bid) model.Winner {
	total := deciding.Amount
	if p := a.ParticipantByID(deciding.ParticipantID); p != nil {
		total = p.TotalBidAmount
	}
	return model.Winner{
		Rank:               rank,
		ParticipantID:      deciding.ParticipantID,
		Username:           deciding.Username,
		FinalAuctionAmount: deciding.Amount,
		TotalAmountPaid:    total,
		PrizeAmount:        a.PrizeValue,
		ClaimStatus:        model.ClaimPending,
	}
}

// setWinners writes the winner list, the rank-1 convenience fields and the
// claim-queue cursor in one step, and opens rank 1's claim window.
func setWinners(a *model.Auction, winners []model.Winner, now time.Time) {
	a.Winners = winners
	a.WinnersAnnounced = true
	if len(winners) == 0 {
		return
	}

	first := winners[0]
	a.WinnerID = first.ParticipantID
	a.WinnerUsername = first.Username
	a.WinningBid = first.FinalAuctionAmount

	a.CurrentEligibleRank = 1
	openClaimWindow(&a.Winners[0], now)
}

// bidTotalThrough sums a participant's bid amounts in rounds 1..through.
func bidTotalThrough(a *model.Auction, participantID string, through int) int64 {
	var total int64
	for _, r := range a.Rounds {
		if r.RoundNumber > through {
			continue
		}
		for _, b := range r.Bids {
			if b.ParticipantID == participantID {
				total += b.Amount
			}
		}
	}
	return total
}
