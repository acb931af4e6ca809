package helpers

// Request/Response DTOs
type JoinAuctionRequest struct {
	UserID   string `json:"user_id" binding:"required"`
	Username string `json:"username" binding:"required"`
}

type PlaceBidRequest struct {
	ParticipantID string `json:"participant_id" binding:"required"`
	Amount        int64  `json:"amount" binding:"required,gt=0"`
}

type SubmitClaimRequest struct {
	ParticipantID string `json:"participant_id" binding:"required"`
	PaymentRef    string `json:"payment_ref"`
}

type CancelClaimRequest struct {
	ParticipantID string `json:"participant_id" binding:"required"`
}

type ParticipantResponse struct {
	ParticipantID string `json:"participant_id"`
	UserID        string `json:"user_id"`
	Username      string `json:"username"`
	EntryFeePaid  int64  `json:"entry_fee_paid"`
	JoinedAt      string `json:"joined_at"`
}

type BidResponse struct {
	BidID         string `json:"bid_id"`
	AuctionID     string `json:"auction_id"`
	RoundNumber   int    `json:"round_number"`
	ParticipantID string `json:"participant_id"`
	Amount        int64  `json:"amount"`
	PlacedAt      string `json:"placed_at"`
}

type WinnerResponse struct {
	Rank               int    `json:"rank"`
	ParticipantID      string `json:"participant_id"`
	Username           string `json:"username"`
	FinalAuctionAmount int64  `json:"final_auction_amount"`
	TotalAmountPaid    int64  `json:"total_amount_paid"`
	PrizeAmount        int64  `json:"prize_amount"`
	ClaimStatus        string `json:"claim_status"`
	ClaimDeadline      string `json:"claim_deadline,omitempty"`
}
