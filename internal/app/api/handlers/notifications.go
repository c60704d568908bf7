package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kassem10h/Gym-Poject/internal/app/api/middleware"
	"github.com/kassem10h/Gym-Poject/internal/app/service/notification"
	"github.com/kassem10h/Gym-Poject/pkg/response"
)

// @Summary      List Notifications
// @Tags         Notifications
// @Produce      json
// @Param        unread query bool false "Only unread"
// @Param        limit query int false "Max rows"
// @Success      200  {object}  handlers.RespOK
// @Security     BearerAuth
// @Router       /api/notifications [get]
func ApiListNotifications(svc *notification.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		unread := c.Query("unread") == "true"
		limit, _ := strconv.Atoi(c.Query("limit"))
		items, err := svc.List(c.Request.Context(), middleware.UserID(c), unread, limit)
		if err != nil {
			writeErr(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(items))
	}
}

// @Summary      Unread Count
// @Tags         Notifications
// @Produce      json
// @Success      200  {object}  handlers.RespOK
// @Security     BearerAuth
// @Router       /api/notifications/unread-count [get]
func ApiUnreadCount(svc *notification.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		count, err := svc.UnreadCount(c.Request.Context(), middleware.UserID(c))
		if err != nil {
			writeErr(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(map[string]int64{"unread": count}))
	}
}

// @Summary      Mark Notification Read
// @Tags         Notifications
// @Produce      json
// @Param        id path string true "Notification ID"
// @Success      200  {object}  handlers.RespOK
// @Security     BearerAuth
// @Router       /api/notifications/{id}/read [post]
func ApiMarkNotificationRead(svc *notification.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.MarkRead(c.Request.Context(), middleware.UserID(c), c.Param("id")); err != nil {
			writeErr(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT[any](nil))
	}
}

// @Summary      Mark All Notifications Read
// @Tags         Notifications
// @Produce      json
// @Success      200  {object}  handlers.RespOK
// @Security     BearerAuth
// @Router       /api/notifications/read-all [post]
func ApiMarkAllNotificationsRead(svc *notification.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		count, err := svc.MarkAllRead(c.Request.Context(), middleware.UserID(c))
		if err != nil {
			writeErr(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(map[string]int64{"updated": count}))
	}
}

func RegisterNotificationRoutes(r gin.IRouter, svc *notification.Service) {
	r.GET("/notifications", ApiListNotifications(svc))
	r.GET("/notifications/unread-count", ApiUnreadCount(svc))
	r.POST("/notifications/:id/read", ApiMarkNotificationRead(svc))
	r.POST("/notifications/read-all", ApiMarkAllNotificationsRead(svc))
}
