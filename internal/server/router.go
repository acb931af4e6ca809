package server

import (
	"github.com/gin-gonic/gin"

	handler "github.com/SudarshanaRao/orchids-dream60website-1-sub004/services/auction/handler"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(svc handler.AuctionServiceInterface) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	auctionHandler := handler.NewAuctionHandler(svc)

	auctions := router.Group("/auctions")
	{
		auctions.GET("", auctionHandler.ListAuctionsHandler)
		auctions.GET("/:auction_id", auctionHandler.GetAuctionHandler)
		auctions.GET("/:auction_id/winners", auctionHandler.GetWinnersHandler)
		auctions.POST("/:auction_id/participants", auctionHandler.JoinAuctionHandler)
		auctions.POST("/:auction_id/bids", auctionHandler.PlaceBidHandler)
		auctions.POST("/:auction_id/claims", auctionHandler.SubmitClaimHandler)
		auctions.DELETE("/:auction_id/claims", auctionHandler.CancelClaimHandler)
	}

	return router
}
