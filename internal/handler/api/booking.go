package api

import (
	"errors"
	"net/http"

	reqdto "carevacay/internal/handler/dto/request"
	resdto "carevacay/internal/handler/dto/response"
	"carevacay/internal/handler/httperr"
	"carevacay/internal/pkg/errs"
	"carevacay/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// Error codes surfaced to the UI for field-level feedback.
const (
	CodeInvalidDateRange   = "InvalidDateRange"
	CodeStayTooShort       = "StayTooShort"
	CodeStayTooLong        = "StayTooLong"
	CodeGuestCountExceeded = "GuestCountExceeded"
)

type BookingHandler struct {
	bookingQueries queries.BookingQueries
}

func NewBookingHandler(bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingQueries: bookingQueries,
	}
}

// @Summary Quote a booking
// @Description Validate a booking request against property constraints and price it
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.QuoteRequest true "Booking request"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} map[string]string
// @Failure 422 {object} httperr.Response
// @Router /bookings/quote [post]
func (h *BookingHandler) Quote(c *gin.Context) {
	var req reqdto.QuoteRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	domainReq, err := req.ToDomain()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	quote, err := h.bookingQueries.Quote(c.Request.Context(), domainReq)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrPropertyNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Property not found",
			})
		case errors.Is(err, errs.ErrInvalidDateRange):
			httperr.AbortWithError(c, http.StatusBadRequest, err, CodeInvalidDateRange, "Check-out must be after check-in", nil)
		case errors.Is(err, errs.ErrStayTooShort):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, CodeStayTooShort, "Stay is shorter than the property minimum stay", nil)
		case errors.Is(err, errs.ErrStayTooLong):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, CodeStayTooLong, "Stay exceeds the property maximum stay", nil)
		case errors.Is(err, errs.ErrGuestCountExceeded):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, CodeGuestCountExceeded, "Guest count is outside property capacity", nil)
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromQuoteView(quote))
}
