package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	model "github.com/SudarshanaRao/orchids-dream60website-1-sub004/internal/models"
	"github.com/SudarshanaRao/orchids-dream60website-1-sub004/services/auction/helpers"
	"github.com/SudarshanaRao/orchids-dream60website-1-sub004/utils"
)

//go:generate mockgen -source=auction_handler.go -destination=mock_auction_service.go -package=handler

type AuctionServiceInterface interface {
	JoinAuction(ctx context.Context, auctionID, userID, username string) (model.Participant, error)
	PlaceBid(ctx context.Context, auctionID, participantID string, amount int64) (model.Bid, error)
	SubmitClaim(ctx context.Context, auctionID, participantID, paymentRef string) (model.Winner, error)
	CancelClaim(ctx context.Context, auctionID, participantID string) (model.Winner, error)
	GetAuction(ctx context.Context, auctionID string) (model.Auction, error)
	ListAuctions(ctx context.Context) ([]model.Auction, error)
	GetWinners(ctx context.Context, auctionID string) ([]model.Winner, error)
}

type AuctionHandler struct {
	service AuctionServiceInterface
}

func NewAuctionHandler(service AuctionServiceInterface) *AuctionHandler {
	return &AuctionHandler{service: service}
}

// JoinAuctionHandler handles POST /auctions/:auction_id/participants
func (h *AuctionHandler) JoinAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	var req helpers.JoinAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "JoinAuctionHandler", err)
		return
	}

	p, err := h.service.JoinAuction(c.Request.Context(), auctionID, req.UserID, req.Username)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("JoinAuctionHandler: failed to join auction", map[string]any{
			"auction_id": auctionID,
			"user_id":    req.UserID,
			"error":      err.Error(),
		})
		return
	}

	resp := helpers.ParticipantResponse{
		ParticipantID: p.ParticipantID,
		UserID:        p.UserID,
		Username:      p.Username,
		EntryFeePaid:  p.EntryFeePaid,
		JoinedAt:      p.JoinedAt.Format(time.RFC3339),
	}

	utils.JSONResponse(c, http.StatusCreated, resp, "joined auction successfully")
	helpers.LogSuccess("JoinAuctionHandler", "joined auction successfully", map[string]any{
		"auction_id":     auctionID,
		"participant_id": p.ParticipantID,
		"user_id":        p.UserID,
	})
}

// PlaceBidHandler handles POST /auctions/:auction_id/bids
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	bid, err := h.service.PlaceBid(c.Request.Context(), auctionID, req.ParticipantID, req.Amount)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("PlaceBidHandler: failed to place bid", map[string]any{
			"auction_id":     auctionID,
			"participant_id": req.ParticipantID,
			"error":          err.Error(),
		})
		return
	}

	resp := helpers.BidResponse{
		BidID:         bid.BidID,
		AuctionID:     auctionID,
		RoundNumber:   bid.RoundNumber,
		ParticipantID: bid.ParticipantID,
		Amount:        bid.Amount,
		PlacedAt:      bid.PlacedAt.Format(time.RFC3339),
	}

	utils.JSONResponse(c, http.StatusCreated, resp, "bid recorded successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid recorded successfully", map[string]any{
		"bid_id":         bid.BidID,
		"auction_id":     auctionID,
		"participant_id": bid.ParticipantID,
		"round":          bid.RoundNumber,
		"amount":         bid.Amount,
	})
}

// SubmitClaimHandler handles POST /auctions/:auction_id/claims
func (h *AuctionHandler) SubmitClaimHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	var req helpers.SubmitClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SubmitClaimHandler", err)
		return
	}

	winner, err := h.service.SubmitClaim(c.Request.Context(), auctionID, req.ParticipantID, req.PaymentRef)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("SubmitClaimHandler: claim rejected", map[string]any{
			"auction_id":     auctionID,
			"participant_id": req.ParticipantID,
			"error":          err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, winnerResponse(winner), "prize claimed successfully")
	helpers.LogSuccess("SubmitClaimHandler", "prize claimed successfully", map[string]any{
		"auction_id":     auctionID,
		"participant_id": winner.ParticipantID,
		"rank":           winner.Rank,
	})
}

// CancelClaimHandler handles DELETE /auctions/:auction_id/claims
func (h *AuctionHandler) CancelClaimHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	var req helpers.CancelClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CancelClaimHandler", err)
		return
	}

	winner, err := h.service.CancelClaim(c.Request.Context(), auctionID, req.ParticipantID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("CancelClaimHandler: cancel rejected", map[string]any{
			"auction_id":     auctionID,
			"participant_id": req.ParticipantID,
			"error":          err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, winnerResponse(winner), "claim cancelled")
	helpers.LogSuccess("CancelClaimHandler", "claim cancelled", map[string]any{
		"auction_id":     auctionID,
		"participant_id": winner.ParticipantID,
		"rank":           winner.Rank,
	})
}

// GetAuctionHandler handles GET /auctions/:auction_id
func (h *AuctionHandler) GetAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	a, err := h.service.GetAuction(c.Request.Context(), auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		return
	}

	utils.JSONResponse(c, http.StatusOK, a, "auction retrieved successfully")
}

// ListAuctionsHandler handles GET /auctions
func (h *AuctionHandler) ListAuctionsHandler(c *gin.Context) {
	auctions, err := h.service.ListAuctions(c.Request.Context())
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		return
	}

	if auctions == nil {
		auctions = []model.Auction{}
	}
	utils.JSONResponse(c, http.StatusOK, auctions, "auctions retrieved successfully")
}

// GetWinnersHandler handles GET /auctions/:auction_id/winners
func (h *AuctionHandler) GetWinnersHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	winners, err := h.service.GetWinners(c.Request.Context(), auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		return
	}

	resp := make([]helpers.WinnerResponse, 0, len(winners))
	for _, w := range winners {
		resp = append(resp, winnerResponse(w))
	}
	utils.JSONResponse(c, http.StatusOK, resp, "winners retrieved successfully")
}

func winnerResponse(w model.Winner) helpers.WinnerResponse {
	resp := helpers.WinnerResponse{
		Rank:               w.Rank,
		ParticipantID:      w.ParticipantID,
		Username:           w.Username,
		FinalAuctionAmount: w.FinalAuctionAmount,
		TotalAmountPaid:    w.TotalAmountPaid,
		PrizeAmount:        w.PrizeAmount,
		ClaimStatus:        string(w.ClaimStatus),
	}
	if w.ClaimDeadline != nil {
		resp.ClaimDeadline = w.ClaimDeadline.Format(time.RFC3339)
	}
	return resp
}
