package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"staybook-backend/models"
	"staybook-backend/services"
	"staybook-backend/utils"
)

type HotelController struct {
	CatalogSvc *services.CatalogService
}

func NewHotelController(svc *services.CatalogService) *HotelController {
	return &HotelController{CatalogSvc: svc}
}

// coordinateJSON serializes a coordinate as a string, or JSON null when the
// hotel has none. Every endpoint uses the same shape.
func coordinateJSON(d *decimal.Decimal) any {
	if d == nil {
		return nil
	}
	return d.String()
}

func amenitiesJSON(links []models.HotelAmenity) []gin.H {
	out := make([]gin.H, 0, len(links))
	for _, link := range links {
		out = append(out, gin.H{
			"id":   link.Amenity.ID,
			"name": link.Amenity.Name,
		})
	}
	return out
}

func hotelSummaryJSON(h models.Hotel) gin.H {
	return gin.H{
		"id":                   h.ID,
		"name":                 h.Name,
		"city":                 h.City,
		"country":              h.Country,
		"base_price":           h.BasePrice,
		"member_price_display": services.MemberPrice(h.BasePrice, h.MemberPrice),
		"is_flagged":           h.IsFlagged,
		"special_discount":     h.SpecialDiscount,
		"rating":               h.Rating,
		"total_reviews":        h.TotalReviews,
		"description":          h.Description,
		"latitude":             coordinateJSON(h.Latitude),
		"longitude":            coordinateJSON(h.Longitude),
		"amenities":            amenitiesJSON(h.Amenities),
	}
}

func hotelDetailJSON(h models.Hotel) gin.H {
	images := make([]gin.H, 0, len(h.Images))
	for _, img := range h.Images {
		images = append(images, gin.H{
			"id":      img.ID,
			"image":   img.Image,
			"caption": img.Caption,
			"is_main": img.IsMain,
		})
	}

	detail := hotelSummaryJSON(h)
	detail["address"] = h.Address
	detail["images"] = images
	return detail
}

// GetWeekendHotels (GET /api/hotels/weekend) serves the homepage listing.
func (ctrl *HotelController) GetWeekendHotels(c *gin.Context) {
	hotels, err := ctrl.CatalogSvc.ListFeatured(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	out := make([]gin.H, 0, len(hotels))
	for _, h := range hotels {
		out = append(out, hotelSummaryJSON(h))
	}
	c.JSON(http.StatusOK, out)
}

// SearchHotels (GET /api/hotels/search) filters by destination. The check_in,
// check_out and guests params are accepted for forward compatibility but do
// not narrow the result set.
func (ctrl *HotelController) SearchHotels(c *gin.Context) {
	destination := c.Query("destination")

	hotels, err := ctrl.CatalogSvc.Search(c.Request.Context(), destination)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	out := make([]gin.H, 0, len(hotels))
	for _, h := range hotels {
		out = append(out, hotelSummaryJSON(h))
	}
	c.JSON(http.StatusOK, out)
}

// GetHotelDetail (GET /api/hotels/:id).
func (ctrl *HotelController) GetHotelDetail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "hotel not found")
		return
	}

	hotel, err := ctrl.CatalogSvc.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "hotel not found")
			return
		}
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, hotelDetailJSON(*hotel))
}
