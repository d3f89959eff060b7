package server

import (
	auction "live-auction/internal/auctionService"
	handler "live-auction/services/auction/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(auctionService *auction.AuctionService) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging
	router.Use(IdentityMiddleware)      // actor id from the identity provider header

	auctionHandler := handler.NewAuctionHandler(auctionService)

	auctions := router.Group("/auctions")
	{
		auctions.POST("/:auction_id/bids", auctionHandler.PlaceBidHandler)
		auctions.PUT("/:auction_id/active-item", auctionHandler.SetActiveItemHandler)
		auctions.POST("/:auction_id/items/:item_id/close", auctionHandler.CloseItemHandler)
		auctions.PUT("/:auction_id/timer", auctionHandler.AdjustTimerHandler)
		auctions.POST("/:auction_id/chat", auctionHandler.PostMessageHandler)
		auctions.GET("/:auction_id/chat", auctionHandler.ReadMessagesHandler)
		auctions.GET("/:auction_id/live", auctionHandler.GetLiveStateHandler)
		auctions.POST("/:auction_id/reset", auctionHandler.ResetAuctionHandler)
	}

	items := router.Group("/items")
	{
		items.GET("/:item_id/bids", auctionHandler.GetBidHistoryHandler)
	}

	return router
}
