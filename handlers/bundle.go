package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the endpoint handlers registered by the router.
type HandlerBundle struct {
	// Booking endpoints
	SubmitBookingInquiry gin.HandlerFunc

	// Operational endpoints
	Health gin.HandlerFunc
}
