package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"staybook-backend/services"
	"staybook-backend/utils"
)

type BookingController struct {
	BookingSvc *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{BookingSvc: svc}
}

// CreateBooking (POST /api/bookings/create) acknowledges the request; the
// real booking flow has not landed yet.
func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	if err := ctrl.BookingSvc.Create(c.Request.Context()); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusCreated, "booking created")
}

// GetUserBookings (GET /api/bookings/user) lists the session user's bookings.
func (ctrl *BookingController) GetUserBookings(c *gin.Context) {
	bookings, err := ctrl.BookingSvc.ListForUser(c.Request.Context(), sessionUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}
