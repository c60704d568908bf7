package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kassem10h/Gym-Poject/internal/app/api/middleware"
	"github.com/kassem10h/Gym-Poject/internal/app/service/schedule"
	"github.com/kassem10h/Gym-Poject/pkg/response"
)

// @Summary      List My Sessions (Trainer)
// @Description  Lists the trainer's active sessions.
// @Tags         Trainer
// @Produce      json
// @Success      200  {object}  handlers.RespOK
// @Security     BearerAuth
// @Router       /api/trainer/sessions [get]
func ApiListTrainerSessions(svc *schedule.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessions, err := svc.ListTrainerSessions(c.Request.Context(), middleware.UserID(c))
		if err != nil {
			writeErr(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(sessions))
	}
}

// @Summary      Create Session (Trainer)
// @Description  Creates a session, rejecting overlaps with the trainer's other sessions on that date.
// @Tags         Trainer
// @Accept       json
// @Produce      json
// @Param        request body schedule.SessionRequest true "Session details"
// @Success      201  {object}  handlers.RespOK
// @Security     BearerAuth
// @Router       /api/trainer/sessions [post]
func ApiCreateSession(svc *schedule.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req schedule.SessionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorMsg[any](response.APIResponseCodeBadRequest, err.Error(), nil))
			return
		}
		session, err := svc.CreateSession(c.Request.Context(), middleware.UserID(c), &req)
		if err != nil {
			writeErr(c, err)
			return
		}
		c.JSON(http.StatusCreated, response.OKT(session))
	}
}

// @Summary      Update Session (Trainer)
// @Description  Updates an owned session; sessions with bookings are frozen.
// @Tags         Trainer
// @Accept       json
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        request body schedule.SessionUpdate true "Fields to update; omitted fields stay unchanged"
// @Success      200  {object}  handlers.RespOK
// @Security     BearerAuth
// @Router       /api/trainer/sessions/{id} [put]
func ApiUpdateSession(svc *schedule.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req schedule.SessionUpdate
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorMsg[any](response.APIResponseCodeBadRequest, err.Error(), nil))
			return
		}
		session, err := svc.UpdateSession(c.Request.Context(), middleware.UserID(c), c.Param("id"), &req)
		if err != nil {
			writeErr(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(session))
	}
}

// @Summary      Delete Session (Trainer)
// @Description  Deactivates an owned session without bookings.
// @Tags         Trainer
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200  {object}  handlers.RespOK
// @Security     BearerAuth
// @Router       /api/trainer/sessions/{id} [delete]
func ApiDeleteSession(svc *schedule.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.DeleteSession(c.Request.Context(), middleware.UserID(c), c.Param("id")); err != nil {
			writeErr(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT[any](nil))
	}
}

type sessionBookingsResp struct {
	Session  *schedule.SessionView          `json:"session"`
	Bookings []*schedule.SessionBookingView `json:"bookings"`
}

// @Summary      Session Bookings (Trainer)
// @Description  Lists confirmed bookings of an owned session.
// @Tags         Trainer
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200  {object}  handlers.RespOK
// @Security     BearerAuth
// @Router       /api/trainer/sessions/{id}/bookings [get]
func ApiSessionBookings(svc *schedule.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, bookings, err := svc.SessionBookings(c.Request.Context(), middleware.UserID(c), c.Param("id"))
		if err != nil {
			writeErr(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(sessionBookingsResp{Session: session, Bookings: bookings}))
	}
}

// @Summary      Available Sessions (Member)
// @Description  Lists sessions the member can still book, filterable by class type and date range.
// @Tags         Sessions
// @Produce      json
// @Param        class_type_id query string false "Class type filter"
// @Param        date_from query string false "Earliest date (YYYY-MM-DD)"
// @Param        date_to query string false "Latest date (YYYY-MM-DD)"
// @Success      200  {object}  handlers.RespOK
// @Security     BearerAuth
// @Router       /api/sessions/available [get]
func ApiListAvailableSessions(svc *schedule.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := &schedule.AvailableFilter{
			ClassTypeID: c.Query("class_type_id"),
			DateFrom:    c.Query("date_from"),
			DateTo:      c.Query("date_to"),
		}
		sessions, err := svc.ListAvailable(c.Request.Context(), middleware.UserID(c), filter)
		if err != nil {
			writeErr(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(sessions))
	}
}

// @Summary      List Class Types
// @Description  Lists all class types.
// @Tags         Trainer
// @Produce      json
// @Success      200  {object}  handlers.RespOK
// @Security     BearerAuth
// @Router       /api/trainer/class-types [get]
func ApiListClassTypes(svc *schedule.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		classTypes, err := svc.ListClassTypes(c.Request.Context())
		if err != nil {
			writeErr(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(classTypes))
	}
}

// @Summary      Create Class Type
// @Tags         Trainer
// @Accept       json
// @Produce      json
// @Param        request body schedule.ClassTypeRequest true "Class type details"
// @Success      201  {object}  handlers.RespOK
// @Security     BearerAuth
// @Router       /api/trainer/class-types [post]
func ApiCreateClassType(svc *schedule.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req schedule.ClassTypeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorMsg[any](response.APIResponseCodeBadRequest, err.Error(), nil))
			return
		}
		classType, err := svc.CreateClassType(c.Request.Context(), &req)
		if err != nil {
			writeErr(c, err)
			return
		}
		c.JSON(http.StatusCreated, response.OKT(classType))
	}
}

// @Summary      Update Class Type
// @Tags         Trainer
// @Accept       json
// @Produce      json
// @Param        id path string true "Class type ID"
// @Param        request body schedule.ClassTypeRequest true "Fields to update"
// @Success      200  {object}  handlers.RespOK
// @Security     BearerAuth
// @Router       /api/trainer/class-types/{id} [put]
func ApiUpdateClassType(svc *schedule.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req schedule.ClassTypeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorMsg[any](response.APIResponseCodeBadRequest, err.Error(), nil))
			return
		}
		classType, err := svc.UpdateClassType(c.Request.Context(), c.Param("id"), &req)
		if err != nil {
			writeErr(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(classType))
	}
}

// @Summary      Delete Class Type
// @Description  Deletes a class type with no active sessions referencing it.
// @Tags         Trainer
// @Produce      json
// @Param        id path string true "Class type ID"
// @Success      200  {object}  handlers.RespOK
// @Security     BearerAuth
// @Router       /api/trainer/class-types/{id} [delete]
func ApiDeleteClassType(svc *schedule.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.DeleteClassType(c.Request.Context(), c.Param("id")); err != nil {
			writeErr(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT[any](nil))
	}
}

func RegisterTrainerRoutes(r gin.IRouter, svc *schedule.Service) {
	r.GET("/sessions", ApiListTrainerSessions(svc))
	r.POST("/sessions", ApiCreateSession(svc))
	r.PUT("/sessions/:id", ApiUpdateSession(svc))
	r.DELETE("/sessions/:id", ApiDeleteSession(svc))
	r.GET("/sessions/:id/bookings", ApiSessionBookings(svc))

	r.GET("/class-types", ApiListClassTypes(svc))
	r.POST("/class-types", ApiCreateClassType(svc))
	r.PUT("/class-types/:id", ApiUpdateClassType(svc))
	r.DELETE("/class-types/:id", ApiDeleteClassType(svc))
}

func RegisterSessionDiscoveryRoutes(r gin.IRouter, svc *schedule.Service) {
	r.GET("/sessions/available", ApiListAvailableSessions(svc))
}
