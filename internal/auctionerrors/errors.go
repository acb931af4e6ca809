package auctionerrors

import "errors"

// Repository-level errors
var (
	ErrAuctionNotFound     = errors.New("auction not found")
	ErrAuctionExists       = errors.New("auction already exists")
	ErrParticipantNotFound = errors.New("participant not found")
	ErrNoWinners           = errors.New("no winners recorded for auction")
)

// Bid and entry precondition errors
var (
	ErrValidation        = errors.New("invalid request")
	ErrRoundNotActive    = errors.New("round is not accepting bids")
	ErrAlreadyBid        = errors.New("participant already bid in this round")
	ErrAlreadyEliminated = errors.New("participant has been eliminated")
	ErrNotEligible       = errors.New("participant is not eligible")
	ErrAlreadyJoined     = errors.New("user already joined this auction")
)

// Claim-queue errors
var (
	ErrAlreadyClaimed = errors.New("prize already claimed")
	ErrWindowExpired  = errors.New("claim window has expired")
)

// ErrTransient marks persistence failures that are safe to retry from the
// caller's side; the operation was not applied, even partially.
var ErrTransient = errors.New("transient storage error")
