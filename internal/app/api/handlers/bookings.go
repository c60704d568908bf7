package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kassem10h/Gym-Poject/internal/app/api/middleware"
	"github.com/kassem10h/Gym-Poject/internal/app/service/booking"
	"github.com/kassem10h/Gym-Poject/pkg/response"
	"github.com/kassem10h/Gym-Poject/pkg/types"
)

// @Summary      Booking History (Member)
// @Description  Lists the member's bookings, optionally filtered by status.
// @Tags         Bookings
// @Produce      json
// @Param        status query string false "Status filter (confirmed, cancelled, completed)"
// @Success      200  {object}  handlers.RespOK
// @Security     BearerAuth
// @Router       /api/bookings [get]
func ApiBookingHistory(svc *booking.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookings, err := svc.History(c.Request.Context(), middleware.UserID(c), types.BookingStatus(c.Query("status")))
		if err != nil {
			writeErr(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(bookings))
	}
}

// @Summary      Cancel Booking (Member)
// @Description  Cancels an owned confirmed booking before the session starts and releases the spot.
// @Tags         Bookings
// @Produce      json
// @Param        id path string true "Booking ID"
// @Success      200  {object}  handlers.RespOK
// @Security     BearerAuth
// @Router       /api/bookings/{id}/cancel [post]
func ApiCancelBooking(svc *booking.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.CancelByMember(c.Request.Context(), middleware.UserID(c), c.Param("id")); err != nil {
			writeErr(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT[any](nil))
	}
}

func RegisterBookingRoutes(r gin.IRouter, svc *booking.Service) {
	r.GET("/bookings", ApiBookingHistory(svc))
	r.POST("/bookings/:id/cancel", ApiCancelBooking(svc))
}
