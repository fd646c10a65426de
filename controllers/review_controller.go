package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"staybook-backend/services"
	"staybook-backend/utils"
)

type ReviewController struct {
	ReviewSvc *services.ReviewService
}

func NewReviewController(svc *services.ReviewService) *ReviewController {
	return &ReviewController{ReviewSvc: svc}
}

// GetHotelReviews (GET /api/reviews/hotel/:id).
func (ctrl *ReviewController) GetHotelReviews(c *gin.Context) {
	hotelID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid hotel id")
		return
	}

	reviews, svcErr := ctrl.ReviewSvc.ListForHotel(c.Request.Context(), uint(hotelID))
	if svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// CreateReview (POST /api/reviews/create) acknowledges the request; review
// submission has not landed yet.
func (ctrl *ReviewController) CreateReview(c *gin.Context) {
	if err := ctrl.ReviewSvc.Create(c.Request.Context()); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusCreated, "review created")
}
