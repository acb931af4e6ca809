package ranker

import (
	"sort"

	model "github.com/SudarshanaRao/orchids-dream60website-1-sub004/internal/models"
)

// QualifyingRank is the cutoff for advancing to the next round: a bidder
// qualifies iff its dense rank is at most this value.
const QualifyingRank = 3

// Rank assigns dense ranks to a round's bids: highest amount first, earlier
// timestamp first on equal amounts. Ties share a rank and the next distinct
// amount gets the previous rank plus one, so amounts [90,90,80] rank [1,1,2].
// The input is not modified; the returned slice is sorted in rank order with
// Rank and Qualified populated.
func Rank(bids []model.Bid) []model.Bid {
	ranked := append([]model.Bid(nil), bids...)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Amount != ranked[j].Amount {
			return ranked[i].Amount > ranked[j].Amount
		}
		return ranked[i].PlacedAt.Before(ranked[j].PlacedAt)
	})

	for i := range ranked {
		switch {
		case i == 0:
			ranked[i].Rank = 1
		case ranked[i].Amount == ranked[i-1].Amount:
			ranked[i].Rank = ranked[i-1].Rank
		default:
			ranked[i].Rank = ranked[i-1].Rank + 1
		}
		ranked[i].Qualified = ranked[i].Rank <= QualifyingRank
	}
	return ranked
}

// QualifiedIDs returns the participant IDs of all qualified bids, in rank
// order.
func QualifiedIDs(ranked []model.Bid) []string {
	ids := make([]string, 0, QualifyingRank)
	for _, b := range ranked {
		if b.Qualified {
			ids = append(ids, b.ParticipantID)
		}
	}
	return ids
}
