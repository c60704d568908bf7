package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kassem10h/Gym-Poject/internal/app/service/booking"
	"github.com/kassem10h/Gym-Poject/pkg/response"
)

// @Summary      List Bookings (Admin)
// @Description  Pages through the full booking ledger with field filters.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request body booking.AdminListRequest true "Filters and pagination"
// @Success      200  {object}  handlers.RespOK
// @Security     BearerAuth
// @Router       /api/admin/bookings [post]
func ApiAdminListBookings(svc *booking.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req booking.AdminListRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorMsg[any](response.APIResponseCodeBadRequest, err.Error(), nil))
			return
		}
		res, err := svc.AdminList(c.Request.Context(), &req)
		if err != nil {
			writeErr(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(res))
	}
}

// @Summary      Cancel Booking (Admin)
// @Description  Force-cancels a non-terminal booking and releases the spot.
// @Tags         Admin
// @Produce      json
// @Param        id path string true "Booking ID"
// @Success      200  {object}  handlers.RespOK
// @Security     BearerAuth
// @Router       /api/admin/bookings/{id}/cancel [post]
func ApiAdminCancelBooking(svc *booking.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.AdminCancel(c.Request.Context(), c.Param("id")); err != nil {
			writeErr(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT[any](nil))
	}
}

// @Summary      Complete Booking (Admin)
// @Description  Marks a confirmed booking completed once its session has started.
// @Tags         Admin
// @Produce      json
// @Param        id path string true "Booking ID"
// @Success      200  {object}  handlers.RespOK
// @Security     BearerAuth
// @Router       /api/admin/bookings/{id}/complete [post]
func ApiAdminCompleteBooking(svc *booking.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.AdminComplete(c.Request.Context(), c.Param("id")); err != nil {
			writeErr(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT[any](nil))
	}
}

// @Summary      Cancel Session (Admin)
// @Description  Cancels a session outright, cancelling its confirmed bookings and notifying affected members.
// @Tags         Admin
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200  {object}  handlers.RespOK
// @Security     BearerAuth
// @Router       /api/admin/sessions/{id}/cancel [post]
func ApiAdminCancelSession(svc *booking.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.AdminCancelSession(c.Request.Context(), c.Param("id")); err != nil {
			writeErr(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT[any](nil))
	}
}

func RegisterAdminRoutes(r gin.IRouter, svc *booking.Service) {
	r.POST("/bookings", ApiAdminListBookings(svc))
	r.POST("/bookings/:id/cancel", ApiAdminCancelBooking(svc))
	r.POST("/bookings/:id/complete", ApiAdminCompleteBooking(svc))
	r.POST("/sessions/:id/cancel", ApiAdminCancelSession(svc))
}
