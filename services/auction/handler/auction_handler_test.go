package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/SudarshanaRao/orchids-dream60website-1-sub004/internal/auctionerrors"
	model "github.com/SudarshanaRao/orchids-dream60website-1-sub004/internal/models"
	"github.com/SudarshanaRao/orchids-dream60website-1-sub004/services/auction/helpers"
)

const testAuctionID = "dream60-2026-08-28-15"

// Test JoinAuctionHandler
func TestJoinAuctionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuctionServiceInterface(ctrl)
	handler := NewAuctionHandler(mockService)

	// Initialize Gin in test mode
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/auctions/:auction_id/participants", handler.JoinAuctionHandler)

	now := time.Now().UTC()

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
		validateData   func(t *testing.T, data map[string]any)
	}{
		{
			name: "success_join",
			requestBody: helpers.JoinAuctionRequest{
				UserID:   "user1",
				Username: "alice",
			},
			mockSetup: func() {
				mockService.EXPECT().
					JoinAuction(gomock.Any(), testAuctionID, "user1", "alice").
					Return(model.Participant{
						ParticipantID: uuid.NewString(),
						UserID:        "user1",
						Username:      "alice",
						EntryFeePaid:  50,
						JoinedAt:      now,
					}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "joined auction successfully",
			validateData: func(t *testing.T, data map[string]any) {
				pid := data["participant_id"].(string)
				require.NotEmpty(t, pid)
				_, parseErr := uuid.Parse(pid)
				require.NoError(t, parseErr, "ParticipantID should be a valid UUID")
				require.Equal(t, "user1", data["user_id"])
				require.Equal(t, "alice", data["username"])
				require.Equal(t, 50.0, data["entry_fee_paid"])
			},
		},
		{
			name:           "invalid_json",
			requestBody:    `{invalid json}`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "missing_user_id",
			requestBody: helpers.JoinAuctionRequest{
				UserID:   "",
				Username: "alice",
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "missing_username",
			requestBody: helpers.JoinAuctionRequest{
				UserID:   "user1",
				Username: "",
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "service_already_joined",
			requestBody: helpers.JoinAuctionRequest{
				UserID:   "user1",
				Username: "alice",
			},
			mockSetup: func() {
				mockService.EXPECT().
					JoinAuction(gomock.Any(), testAuctionID, "user1", "alice").
					Return(model.Participant{}, auctionerrors.ErrAlreadyJoined)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "user already joined",
		},
		{
			name: "service_entries_closed",
			requestBody: helpers.JoinAuctionRequest{
				UserID:   "user2",
				Username: "bob",
			},
			mockSetup: func() {
				mockService.EXPECT().
					JoinAuction(gomock.Any(), testAuctionID, "user2", "bob").
					Return(model.Participant{}, auctionerrors.ErrRoundNotActive)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "round is not active",
		},
		{
			name: "service_auction_not_found",
			requestBody: helpers.JoinAuctionRequest{
				UserID:   "user1",
				Username: "alice",
			},
			mockSetup: func() {
				mockService.EXPECT().
					JoinAuction(gomock.Any(), testAuctionID, "user1", "alice").
					Return(model.Participant{}, auctionerrors.ErrAuctionNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "auction not found",
		},
		{
			name: "service_generic_error",
			requestBody: helpers.JoinAuctionRequest{
				UserID:   "user1",
				Username: "alice",
			},
			mockSetup: func() {
				mockService.EXPECT().
					JoinAuction(gomock.Any(), testAuctionID, "user1", "alice").
					Return(model.Participant{}, errors.New("database failure"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "internal server error",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			var reqBody []byte
			var err error
			switch v := tc.requestBody.(type) {
			case string:
				reqBody = []byte(v)
			default:
				reqBody, err = json.Marshal(v)
				require.NoError(t, err)
			}

			tc.mockSetup()

			req := httptest.NewRequest(http.MethodPost, "/auctions/"+testAuctionID+"/participants", bytes.NewReader(reqBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			err = json.Unmarshal(w.Body.Bytes(), &resp)
			require.NoError(t, err)

			require.Contains(t, resp["message"], tc.expectedMsg)

			if tc.validateData != nil && w.Code == http.StatusCreated {
				data := resp["data"].(map[string]any)
				tc.validateData(t, data)
			}
		})
	}
}

// Test PlaceBidHandler
func TestPlaceBidHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuctionServiceInterface(ctrl)
	handler := NewAuctionHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/auctions/:auction_id/bids", handler.PlaceBidHandler)

	now := time.Now().UTC()

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
		validateData   func(t *testing.T, data map[string]any)
	}{
		{
			name: "success_valid_bid",
			requestBody: helpers.PlaceBidRequest{
				ParticipantID: "P1",
				Amount:        100,
			},
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid(gomock.Any(), testAuctionID, "P1", int64(100)).
					Return(model.Bid{
						BidID:         uuid.NewString(),
						RoundNumber:   1,
						ParticipantID: "P1",
						Username:      "alice",
						Amount:        100,
						PlacedAt:      now,
					}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "bid recorded successfully",
			validateData: func(t *testing.T, data map[string]any) {
				bidID := data["bid_id"].(string)
				require.NotEmpty(t, bidID)
				_, parseErr := uuid.Parse(bidID)
				require.NoError(t, parseErr, "BidID should be a valid UUID")
				require.Equal(t, testAuctionID, data["auction_id"])
				require.Equal(t, "P1", data["participant_id"])
				require.Equal(t, 100.0, data["amount"])
				require.Equal(t, 1.0, data["round_number"])
			},
		},
		{
			name:           "invalid_json",
			requestBody:    `{invalid json}`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "missing_participant_id",
			requestBody: helpers.PlaceBidRequest{
				ParticipantID: "",
				Amount:        50,
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "invalid_amount_zero",
			requestBody: helpers.PlaceBidRequest{
				ParticipantID: "P1",
				Amount:        0,
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "negative_amount",
			requestBody: helpers.PlaceBidRequest{
				ParticipantID: "P1",
				Amount:        -10,
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "service_round_not_active",
			requestBody: helpers.PlaceBidRequest{
				ParticipantID: "P1",
				Amount:        50,
			},
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid(gomock.Any(), testAuctionID, "P1", int64(50)).
					Return(model.Bid{}, auctionerrors.ErrRoundNotActive)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "round is not active",
		},
		{
			name: "service_duplicate_bid",
			requestBody: helpers.PlaceBidRequest{
				ParticipantID: "P1",
				Amount:        75,
			},
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid(gomock.Any(), testAuctionID, "P1", int64(75)).
					Return(model.Bid{}, auctionerrors.ErrAlreadyBid)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "bid already placed this round",
		},
		{
			name: "service_eliminated",
			requestBody: helpers.PlaceBidRequest{
				ParticipantID: "P9",
				Amount:        75,
			},
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid(gomock.Any(), testAuctionID, "P9", int64(75)).
					Return(model.Bid{}, auctionerrors.ErrAlreadyEliminated)
			},
			expectedStatus: http.StatusForbidden,
			expectedMsg:    "participant eliminated",
		},
		{
			name: "service_generic_error",
			requestBody: helpers.PlaceBidRequest{
				ParticipantID: "P1",
				Amount:        100,
			},
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid(gomock.Any(), testAuctionID, "P1", int64(100)).
					Return(model.Bid{}, errors.New("database failure"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "internal server error",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			var reqBody []byte
			var err error
			switch v := tc.requestBody.(type) {
			case string:
				reqBody = []byte(v)
			default:
				reqBody, err = json.Marshal(v)
				require.NoError(t, err)
			}

			tc.mockSetup()

			req := httptest.NewRequest(http.MethodPost, "/auctions/"+testAuctionID+"/bids", bytes.NewReader(reqBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			err = json.Unmarshal(w.Body.Bytes(), &resp)
			require.NoError(t, err)

			require.Contains(t, resp["message"], tc.expectedMsg)

			if tc.validateData != nil && w.Code == http.StatusCreated {
				data := resp["data"].(map[string]any)
				tc.validateData(t, data)
			}
		})
	}
}

// Test SubmitClaimHandler
func TestSubmitClaimHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuctionServiceInterface(ctrl)
	handler := NewAuctionHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/auctions/:auction_id/claims", handler.SubmitClaimHandler)

	deadline := time.Now().UTC().Add(15 * time.Minute)

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
		validateData   func(t *testing.T, data map[string]any)
	}{
		{
			name: "success_claim",
			requestBody: helpers.SubmitClaimRequest{
				ParticipantID: "P1",
				PaymentRef:    "upi-123",
			},
			mockSetup: func() {
				mockService.EXPECT().
					SubmitClaim(gomock.Any(), testAuctionID, "P1", "upi-123").
					Return(model.Winner{
						Rank:          1,
						ParticipantID: "P1",
						Username:      "alice",
						PrizeAmount:   10000,
						ClaimStatus:   model.ClaimClaimed,
						ClaimDeadline: &deadline,
						PaymentRef:    "upi-123",
					}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "prize claimed successfully",
			validateData: func(t *testing.T, data map[string]any) {
				require.Equal(t, 1.0, data["rank"])
				require.Equal(t, "P1", data["participant_id"])
				require.Equal(t, string(model.ClaimClaimed), data["claim_status"])
				require.Equal(t, 10000.0, data["prize_amount"])
			},
		},
		{
			name:           "invalid_json",
			requestBody:    `{invalid json}`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "missing_participant_id",
			requestBody: helpers.SubmitClaimRequest{
				ParticipantID: "",
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "service_not_eligible",
			requestBody: helpers.SubmitClaimRequest{
				ParticipantID: "P2",
			},
			mockSetup: func() {
				mockService.EXPECT().
					SubmitClaim(gomock.Any(), testAuctionID, "P2", "").
					Return(model.Winner{}, auctionerrors.ErrNotEligible)
			},
			expectedStatus: http.StatusForbidden,
			expectedMsg:    "not eligible",
		},
		{
			name: "service_window_expired",
			requestBody: helpers.SubmitClaimRequest{
				ParticipantID: "P1",
			},
			mockSetup: func() {
				mockService.EXPECT().
					SubmitClaim(gomock.Any(), testAuctionID, "P1", "").
					Return(model.Winner{}, auctionerrors.ErrWindowExpired)
			},
			expectedStatus: http.StatusGone,
			expectedMsg:    "claim window expired",
		},
		{
			name: "service_already_claimed",
			requestBody: helpers.SubmitClaimRequest{
				ParticipantID: "P1",
			},
			mockSetup: func() {
				mockService.EXPECT().
					SubmitClaim(gomock.Any(), testAuctionID, "P1", "").
					Return(model.Winner{}, auctionerrors.ErrAlreadyClaimed)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "prize already claimed",
		},
		{
			name: "service_no_winners",
			requestBody: helpers.SubmitClaimRequest{
				ParticipantID: "P1",
			},
			mockSetup: func() {
				mockService.EXPECT().
					SubmitClaim(gomock.Any(), testAuctionID, "P1", "").
					Return(model.Winner{}, auctionerrors.ErrNoWinners)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "winners not announced yet",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			var reqBody []byte
			var err error
			switch v := tc.requestBody.(type) {
			case string:
				reqBody = []byte(v)
			default:
				reqBody, err = json.Marshal(v)
				require.NoError(t, err)
			}

			tc.mockSetup()

			req := httptest.NewRequest(http.MethodPost, "/auctions/"+testAuctionID+"/claims", bytes.NewReader(reqBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			err = json.Unmarshal(w.Body.Bytes(), &resp)
			require.NoError(t, err)

			require.Contains(t, resp["message"], tc.expectedMsg)

			if tc.validateData != nil && w.Code == http.StatusOK {
				data := resp["data"].(map[string]any)
				tc.validateData(t, data)
			}
		})
	}
}

// Test CancelClaimHandler
func TestCancelClaimHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuctionServiceInterface(ctrl)
	handler := NewAuctionHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.DELETE("/auctions/:auction_id/claims", handler.CancelClaimHandler)

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "success_cancel",
			requestBody: helpers.CancelClaimRequest{
				ParticipantID: "P1",
			},
			mockSetup: func() {
				mockService.EXPECT().
					CancelClaim(gomock.Any(), testAuctionID, "P1").
					Return(model.Winner{
						Rank:          1,
						ParticipantID: "P1",
						ClaimStatus:   model.ClaimExpired,
					}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "claim cancelled",
		},
		{
			name:           "invalid_json",
			requestBody:    `{invalid json}`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "service_not_eligible",
			requestBody: helpers.CancelClaimRequest{
				ParticipantID: "P3",
			},
			mockSetup: func() {
				mockService.EXPECT().
					CancelClaim(gomock.Any(), testAuctionID, "P3").
					Return(model.Winner{}, auctionerrors.ErrNotEligible)
			},
			expectedStatus: http.StatusForbidden,
			expectedMsg:    "not eligible",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			var reqBody []byte
			var err error
			switch v := tc.requestBody.(type) {
			case string:
				reqBody = []byte(v)
			default:
				reqBody, err = json.Marshal(v)
				require.NoError(t, err)
			}

			tc.mockSetup()

			req := httptest.NewRequest(http.MethodDelete, "/auctions/"+testAuctionID+"/claims", bytes.NewReader(reqBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			err = json.Unmarshal(w.Body.Bytes(), &resp)
			require.NoError(t, err)
			require.Contains(t, resp["message"], tc.expectedMsg)
		})
	}
}

// Test GetWinnersHandler
func TestGetWinnersHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuctionServiceInterface(ctrl)
	handler := NewAuctionHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/auctions/:auction_id/winners", handler.GetWinnersHandler)

	tests := []struct {
		name           string
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
		validateData   func(t *testing.T, data []map[string]any)
	}{
		{
			name: "success_three_winners",
			mockSetup: func() {
				mockService.EXPECT().
					GetWinners(gomock.Any(), testAuctionID).
					Return([]model.Winner{
						{Rank: 1, ParticipantID: "P1", Username: "alice", PrizeAmount: 10000, ClaimStatus: model.ClaimPending},
						{Rank: 2, ParticipantID: "P2", Username: "bob", ClaimStatus: model.ClaimPending},
						{Rank: 3, ParticipantID: "P3", Username: "carol", ClaimStatus: model.ClaimPending},
					}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "winners retrieved successfully",
			validateData: func(t *testing.T, data []map[string]any) {
				require.Len(t, data, 3)
				require.Equal(t, 1.0, data[0]["rank"])
				require.Equal(t, "alice", data[0]["username"])
				require.Equal(t, string(model.ClaimPending), data[0]["claim_status"])
			},
		},
		{
			name: "no_winners_yet",
			mockSetup: func() {
				mockService.EXPECT().
					GetWinners(gomock.Any(), testAuctionID).
					Return(nil, auctionerrors.ErrNoWinners)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "winners not announced yet",
		},
		{
			name: "auction_not_found",
			mockSetup: func() {
				mockService.EXPECT().
					GetWinners(gomock.Any(), testAuctionID).
					Return(nil, auctionerrors.ErrAuctionNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "auction not found",
		},
		{
			name: "service_generic_error",
			mockSetup: func() {
				mockService.EXPECT().
					GetWinners(gomock.Any(), testAuctionID).
					Return(nil, errors.New("database failure"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "internal server error",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			req := httptest.NewRequest(http.MethodGet, "/auctions/"+testAuctionID+"/winners", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			err := json.Unmarshal(w.Body.Bytes(), &resp)
			require.NoError(t, err)

			require.Contains(t, resp["message"], tc.expectedMsg)

			if tc.validateData != nil && w.Code == http.StatusOK {
				dataRaw := resp["data"].([]any)
				data := make([]map[string]any, len(dataRaw))
				for i, v := range dataRaw {
					data[i] = v.(map[string]any)
				}
				tc.validateData(t, data)
			}
		})
	}
}

// Test GetAuctionHandler
func TestGetAuctionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuctionServiceInterface(ctrl)
	handler := NewAuctionHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/auctions/:auction_id", handler.GetAuctionHandler)

	tests := []struct {
		name           string
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "success",
			mockSetup: func() {
				mockService.EXPECT().
					GetAuction(gomock.Any(), testAuctionID).
					Return(model.Auction{
						AuctionID: testAuctionID,
						Date:      "2026-08-28",
						TimeSlot:  "15:00",
						Status:    model.AuctionLive,
					}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "auction retrieved successfully",
		},
		{
			name: "not_found",
			mockSetup: func() {
				mockService.EXPECT().
					GetAuction(gomock.Any(), testAuctionID).
					Return(model.Auction{}, auctionerrors.ErrAuctionNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "auction not found",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			req := httptest.NewRequest(http.MethodGet, "/auctions/"+testAuctionID, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			err := json.Unmarshal(w.Body.Bytes(), &resp)
			require.NoError(t, err)
			require.Contains(t, resp["message"], tc.expectedMsg)

			if w.Code == http.StatusOK {
				data := resp["data"].(map[string]any)
				require.Equal(t, testAuctionID, data["auction_id"])
				require.Equal(t, string(model.AuctionLive), data["status"])
			}
		})
	}
}

// Test ListAuctionsHandler
func TestListAuctionsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuctionServiceInterface(ctrl)
	handler := NewAuctionHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/auctions", handler.ListAuctionsHandler)

	tests := []struct {
		name           string
		mockSetup      func()
		expectedStatus int
		expectedLen    int
	}{
		{
			name: "two_auctions",
			mockSetup: func() {
				mockService.EXPECT().
					ListAuctions(gomock.Any()).
					Return([]model.Auction{
						{AuctionID: "dream60-2026-08-28-15"},
						{AuctionID: "dream60-2026-08-28-16"},
					}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedLen:    2,
		},
		{
			name: "nil_slice_becomes_empty_list",
			mockSetup: func() {
				mockService.EXPECT().
					ListAuctions(gomock.Any()).
					Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			expectedLen:    0,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			req := httptest.NewRequest(http.MethodGet, "/auctions", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			err := json.Unmarshal(w.Body.Bytes(), &resp)
			require.NoError(t, err)

			data := resp["data"].([]any)
			require.Len(t, data, tc.expectedLen)
		})
	}
}
