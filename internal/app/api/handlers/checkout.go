package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kassem10h/Gym-Poject/internal/app/api/middleware"
	"github.com/kassem10h/Gym-Poject/internal/app/service/checkout"
	"github.com/kassem10h/Gym-Poject/pkg/response"
)

// @Summary      Checkout Preview
// @Description  Read-only summary of both carts with the combined total.
// @Tags         Checkout
// @Produce      json
// @Success      200  {object}  handlers.RespOK
// @Security     BearerAuth
// @Router       /api/checkout/preview [get]
func ApiCheckoutPreview(svc *checkout.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		preview, err := svc.GetPreview(c.Request.Context(), middleware.UserID(c))
		if err != nil {
			writeErr(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(preview))
	}
}

// @Summary      Process Checkout
// @Description  Charges the selected cart lines and materializes the order and bookings atomically.
// @Tags         Checkout
// @Accept       json
// @Produce      json
// @Param        request body checkout.ProcessRequest true "Selected cart items and payment details"
// @Success      200  {object}  handlers.RespOK
// @Security     BearerAuth
// @Router       /api/checkout/process [post]
func ApiProcessCheckout(svc *checkout.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req checkout.ProcessRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorMsg[any](response.APIResponseCodeBadRequest, err.Error(), nil))
			return
		}
		result, err := svc.Process(c.Request.Context(), middleware.UserID(c), &req)
		if err != nil {
			writeErr(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(result))
	}
}

// @Summary      Order History
// @Description  Lists the member's orders, newest first.
// @Tags         Checkout
// @Produce      json
// @Success      200  {object}  handlers.RespOK
// @Security     BearerAuth
// @Router       /api/checkout/orders [get]
func ApiOrderHistory(svc *checkout.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := svc.OrderHistory(c.Request.Context(), middleware.UserID(c))
		if err != nil {
			writeErr(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(orders))
	}
}

func RegisterCheckoutRoutes(r gin.IRouter, svc *checkout.Service) {
	r.GET("/checkout/preview", ApiCheckoutPreview(svc))
	r.POST("/checkout/process", ApiProcessCheckout(svc))
	r.GET("/checkout/orders", ApiOrderHistory(svc))
}
