package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kassem10h/Gym-Poject/internal/app/api/middleware"
	"github.com/kassem10h/Gym-Poject/internal/app/service/membership"
	"github.com/kassem10h/Gym-Poject/pkg/response"
)

// @Summary      Membership Plans
// @Description  Lists the configured plan catalog.
// @Tags         Membership
// @Produce      json
// @Success      200  {object}  handlers.RespOK
// @Router       /api/membership/plans [get]
func ApiMembershipPlans(svc *membership.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, response.OKT(svc.Plans()))
	}
}

// @Summary      Current Membership
// @Description  Returns the member's active membership, null when none exists.
// @Tags         Membership
// @Produce      json
// @Success      200  {object}  handlers.RespOK
// @Security     BearerAuth
// @Router       /api/membership/current [get]
func ApiCurrentMembership(svc *membership.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		current, err := svc.Current(c.Request.Context(), middleware.UserID(c))
		if err != nil {
			writeErr(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(current))
	}
}

// @Summary      Membership History
// @Tags         Membership
// @Produce      json
// @Success      200  {object}  handlers.RespOK
// @Security     BearerAuth
// @Router       /api/membership/history [get]
func ApiMembershipHistory(svc *membership.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		history, err := svc.History(c.Request.Context(), middleware.UserID(c))
		if err != nil {
			writeErr(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(history))
	}
}

// @Summary      Purchase Membership
// @Description  Charges the plan price and opens the new window; renewals chain from the current end date.
// @Tags         Membership
// @Accept       json
// @Produce      json
// @Param        request body membership.PurchaseRequest true "Plan and payment details"
// @Success      201  {object}  handlers.RespOK
// @Security     BearerAuth
// @Router       /api/membership/purchase [post]
func ApiPurchaseMembership(svc *membership.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req membership.PurchaseRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorMsg[any](response.APIResponseCodeBadRequest, err.Error(), nil))
			return
		}
		view, err := svc.Purchase(c.Request.Context(), middleware.UserID(c), &req)
		if err != nil {
			writeErr(c, err)
			return
		}
		c.JSON(http.StatusCreated, response.OKT(view))
	}
}

// @Summary      Cancel Membership
// @Description  Stops renewal; access persists until the end date.
// @Tags         Membership
// @Produce      json
// @Success      200  {object}  handlers.RespOK
// @Security     BearerAuth
// @Router       /api/membership/cancel [post]
func ApiCancelMembership(svc *membership.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Cancel(c.Request.Context(), middleware.UserID(c)); err != nil {
			writeErr(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT[any](nil))
	}
}

func RegisterMembershipPublicRoutes(r gin.IRouter, svc *membership.Service) {
	r.GET("/membership/plans", ApiMembershipPlans(svc))
}

func RegisterMembershipRoutes(r gin.IRouter, svc *membership.Service) {
	r.GET("/membership/current", ApiCurrentMembership(svc))
	r.GET("/membership/history", ApiMembershipHistory(svc))
	r.POST("/membership/purchase", ApiPurchaseMembership(svc))
	r.POST("/membership/cancel", ApiCancelMembership(svc))
}
