package models

import "time"

// AuctionStatus is the top-level lifecycle state of an hourly auction.
type AuctionStatus string

const (
	AuctionUpcoming  AuctionStatus = "UPCOMING"
	AuctionLive      AuctionStatus = "LIVE"
	AuctionCompleted AuctionStatus = "COMPLETED"
	AuctionCancelled AuctionStatus = "CANCELLED"
)

// Terminal reports whether the auction can no longer change state,
// claim-queue bookkeeping aside.
func (s AuctionStatus) Terminal() bool {
	return s == AuctionCompleted || s == AuctionCancelled
}

// RoundStatus is the state of one 15-minute bidding round.
type RoundStatus string

const (
	RoundPending   RoundStatus = "PENDING"
	RoundActive    RoundStatus = "ACTIVE"
	RoundCompleted RoundStatus = "COMPLETED"
)

// ClaimStatus is the state of one winner's prize claim.
type ClaimStatus string

const (
	ClaimPending ClaimStatus = "PENDING"
	ClaimClaimed ClaimStatus = "CLAIMED"
	ClaimExpired ClaimStatus = "EXPIRED"
)

// Auction is the durable unit of the system: one auction per (date, hour slot),
// embedding its rounds, participants and winners.
type Auction struct {
	AuctionID           string        `json:"auction_id" bson:"auctionId"`
	Date                string        `json:"date" bson:"date"` // "2006-01-02" in the operating timezone
	TimeSlot            string        `json:"time_slot" bson:"timeSlot"`
	SlotHour            int           `json:"slot_hour" bson:"slotHour"`
	Status              AuctionStatus `json:"status" bson:"status"`
	RoundCount          int           `json:"round_count" bson:"roundCount"`
	CurrentRound        int           `json:"current_round" bson:"currentRound"`
	EntryFee            int64         `json:"entry_fee" bson:"entryFee"`
	PrizeValue          int64         `json:"prize_value" bson:"prizeValue"`
	MinParticipants     int           `json:"min_participants" bson:"minParticipants"`
	WinnersAnnounced    bool          `json:"winners_announced" bson:"winnersAnnounced"`
	CurrentEligibleRank int           `json:"current_eligible_rank" bson:"currentEligibleRank"`
	WinnerID            string        `json:"winner_id,omitempty" bson:"winnerId,omitempty"`
	WinnerUsername      string        `json:"winner_username,omitempty" bson:"winnerUsername,omitempty"`
	WinningBid          int64         `json:"winning_bid,omitempty" bson:"winningBid,omitempty"`
	StartedAt           *time.Time    `json:"started_at,omitempty" bson:"startedAt,omitempty"`
	CompletedAt         *time.Time    `json:"completed_at,omitempty" bson:"completedAt,omitempty"`
	Rounds              []Round       `json:"rounds" bson:"rounds"`
	Participants        []Participant `json:"participants" bson:"participants"`
	Winners             []Winner      `json:"winners" bson:"winners"`
	Version             int64         `json:"-" bson:"version"` // optimistic-concurrency counter
}

// Round is one 15-minute bidding phase of an auction.
type Round struct {
	RoundNumber      int         `json:"round_number" bson:"roundNumber"`
	Status           RoundStatus `json:"status" bson:"status"`
	StartedAt        *time.Time  `json:"started_at,omitempty" bson:"startedAt,omitempty"`
	CompletedAt      *time.Time  `json:"completed_at,omitempty" bson:"completedAt,omitempty"`
	Bids             []Bid       `json:"bids" bson:"bids"`
	QualifiedPlayers []string    `json:"qualified_players" bson:"qualifiedPlayers"`
}

// Participant is a user who paid the entry fee for one auction.
type Participant struct {
	ParticipantID     string    `json:"participant_id" bson:"participantId"`
	UserID            string    `json:"user_id" bson:"userId"`
	Username          string    `json:"username" bson:"username"`
	EntryFeePaid      int64     `json:"entry_fee_paid" bson:"entryFeePaid"`
	JoinedAt          time.Time `json:"joined_at" bson:"joinedAt"`
	Eliminated        bool      `json:"eliminated" bson:"eliminated"`
	EliminatedRound   int       `json:"eliminated_round,omitempty" bson:"eliminatedRound,omitempty"` // 0 while still active
	EliminationReason string    `json:"elimination_reason,omitempty" bson:"eliminationReason,omitempty"`
	TotalBids         int       `json:"total_bids" bson:"totalBids"`
	TotalBidAmount    int64     `json:"total_bid_amount" bson:"totalBidAmount"`
	CurrentRound      int       `json:"current_round" bson:"currentRound"`
}

// Bid is a single sealed bid placed by a participant in one round.
// Rank stays 0 until the round completes.
type Bid struct {
	BidID         string    `json:"bid_id" bson:"bidId"`
	RoundNumber   int       `json:"round_number" bson:"roundNumber"`
	ParticipantID string    `json:"participant_id" bson:"participantId"`
	Username      string    `json:"username" bson:"username"`
	Amount        int64     `json:"amount" bson:"amount"`
	PlacedAt      time.Time `json:"placed_at" bson:"placedAt"`
	Rank          int       `json:"rank,omitempty" bson:"rank,omitempty"`
	Qualified     bool      `json:"qualified" bson:"qualified"`
}

// Winner is one of the up-to-three prize winners of a completed auction.
type Winner struct {
	Rank                 int         `json:"rank" bson:"rank"`
	ParticipantID        string      `json:"participant_id" bson:"participantId"`
	Username             string      `json:"username" bson:"username"`
	FinalAuctionAmount   int64       `json:"final_auction_amount" bson:"finalAuctionAmount"`
	TotalAmountPaid      int64       `json:"total_amount_paid" bson:"totalAmountPaid"`
	PrizeAmount          int64       `json:"prize_amount" bson:"prizeAmount"`
	ClaimStatus          ClaimStatus `json:"claim_status" bson:"claimStatus"`
	ClaimWindowStartedAt *time.Time  `json:"claim_window_started_at,omitempty" bson:"claimWindowStartedAt,omitempty"`
	ClaimDeadline        *time.Time  `json:"claim_deadline,omitempty" bson:"claimDeadline,omitempty"`
	ClaimedAt            *time.Time  `json:"claimed_at,omitempty" bson:"claimedAt,omitempty"`
	PaymentRef           string      `json:"payment_ref,omitempty" bson:"paymentRef,omitempty"`
}

// AuctionDescriptor is the externally-configured shape of an auction that
// should exist; the coordinator reconciles local state against these.
type AuctionDescriptor struct {
	AuctionID       string `json:"auction_id"`
	Date            string `json:"date"`
	SlotHour        int    `json:"slot_hour"`
	MinParticipants int    `json:"min_participants"`
	EntryFee        int64  `json:"entry_fee"`
	PrizeValue      int64  `json:"prize_value"`
	RoundCount      int    `json:"round_count"`
}

// RoundByNumber returns a pointer into Rounds for the given round number,
// or nil if the number is out of range.
func (a *Auction) RoundByNumber(n int) *Round {
	for i := range a.Rounds {
		if a.Rounds[i].RoundNumber == n {
			return &a.Rounds[i]
		}
	}
	return nil
}

// ParticipantByID returns a pointer into Participants, or nil.
func (a *Auction) ParticipantByID(participantID string) *Participant {
	for i := range a.Participants {
		if a.Participants[i].ParticipantID == participantID {
			return &a.Participants[i]
		}
	}
	return nil
}

// ParticipantByUserID returns a pointer into Participants, or nil.
func (a *Auction) ParticipantByUserID(userID string) *Participant {
	for i := range a.Participants {
		if a.Participants[i].UserID == userID {
			return &a.Participants[i]
		}
	}
	return nil
}

// WinnerByRank returns a pointer into Winners, or nil.
func (a *Auction) WinnerByRank(rank int) *Winner {
	for i := range a.Winners {
		if a.Winners[i].Rank == rank {
			return &a.Winners[i]
		}
	}
	return nil
}

// WinnerByParticipant returns a pointer into Winners, or nil.
func (a *Auction) WinnerByParticipant(participantID string) *Winner {
	for i := range a.Winners {
		if a.Winners[i].ParticipantID == participantID {
			return &a.Winners[i]
		}
	}
	return nil
}

// BidByParticipant returns a pointer into the round's Bids, or nil.
func (r *Round) BidByParticipant(participantID string) *Bid {
	for i := range r.Bids {
		if r.Bids[i].ParticipantID == participantID {
			return &r.Bids[i]
		}
	}
	return nil
}

// HasQualified reports whether the participant is in the round's
// carried-forward qualified set.
func (r *Round) HasQualified(participantID string) bool {
	for _, id := range r.QualifiedPlayers {
		if id == participantID {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the auction so callers can mutate it without
// aliasing stored state.
func (a Auction) Clone() Auction {
	out := a
	if a.StartedAt != nil {
		t := *a.StartedAt
		out.StartedAt = &t
	}
	if a.CompletedAt != nil {
		t := *a.CompletedAt
		out.CompletedAt = &t
	}
	out.Rounds = make([]Round, len(a.Rounds))
	for i, r := range a.Rounds {
		out.Rounds[i] = r.clone()
	}
	out.Participants = append([]Participant(nil), a.Participants...)
	out.Winners = make([]Winner, len(a.Winners))
	for i, w := range a.Winners {
		out.Winners[i] = w.clone()
	}
	return out
}

func (r Round) clone() Round {
	out := r
	if r.StartedAt != nil {
		t := *r.StartedAt
		out.StartedAt = &t
	}
	if r.CompletedAt != nil {
		t := *r.CompletedAt
		out.CompletedAt = &t
	}
	out.Bids = append([]Bid(nil), r.Bids...)
	out.QualifiedPlayers = append([]string(nil), r.QualifiedPlayers...)
	return out
}

func (w Winner) clone() Winner {
	out := w
	if w.ClaimWindowStartedAt != nil {
		t := *w.ClaimWindowStartedAt
		out.ClaimWindowStartedAt = &t
	}
	if w.ClaimDeadline != nil {
		t := *w.ClaimDeadline
		out.ClaimDeadline = &t
	}
	if w.ClaimedAt != nil {
		t := *w.ClaimedAt
		out.ClaimedAt = &t
	}
	return out
}
