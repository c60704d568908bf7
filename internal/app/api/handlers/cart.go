package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kassem10h/Gym-Poject/internal/app/api/middleware"
	"github.com/kassem10h/Gym-Poject/internal/app/service/cart"
	"github.com/kassem10h/Gym-Poject/pkg/response"
)

// @Summary      Get Product Cart
// @Tags         Cart
// @Produce      json
// @Success      200  {object}  handlers.RespOK
// @Security     BearerAuth
// @Router       /api/cart [get]
func ApiGetProductCart(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		view, err := svc.GetProductCart(c.Request.Context(), middleware.UserID(c))
		if err != nil {
			writeErr(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(view))
	}
}

type addProductRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

// @Summary      Add Product to Cart
// @Description  Adds a product line; an existing line for the same product merges quantities.
// @Tags         Cart
// @Accept       json
// @Produce      json
// @Param        request body handlers.addProductRequest true "Product and quantity"
// @Success      201  {object}  handlers.RespOK
// @Security     BearerAuth
// @Router       /api/cart/items [post]
func ApiAddProductToCart(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorMsg[any](response.APIResponseCodeBadRequest, err.Error(), nil))
			return
		}
		if req.Quantity == 0 {
			req.Quantity = 1
		}
		item, err := svc.AddProduct(c.Request.Context(), middleware.UserID(c), req.ProductID, req.Quantity)
		if err != nil {
			writeErr(c, err)
			return
		}
		c.JSON(http.StatusCreated, response.OKT(item))
	}
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

// @Summary      Update Cart Item Quantity
// @Tags         Cart
// @Accept       json
// @Produce      json
// @Param        id path string true "Cart item ID"
// @Param        request body handlers.updateQuantityRequest true "New quantity"
// @Success      200  {object}  handlers.RespOK
// @Security     BearerAuth
// @Router       /api/cart/items/{id} [put]
func ApiUpdateCartItem(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateQuantityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorMsg[any](response.APIResponseCodeBadRequest, err.Error(), nil))
			return
		}
		item, err := svc.UpdateProductQuantity(c.Request.Context(), middleware.UserID(c), c.Param("id"), req.Quantity)
		if err != nil {
			writeErr(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(item))
	}
}

// @Summary      Remove Cart Item
// @Tags         Cart
// @Produce      json
// @Param        id path string true "Cart item ID"
// @Success      200  {object}  handlers.RespOK
// @Security     BearerAuth
// @Router       /api/cart/items/{id} [delete]
func ApiRemoveCartItem(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.RemoveProduct(c.Request.Context(), middleware.UserID(c), c.Param("id")); err != nil {
			writeErr(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT[any](nil))
	}
}

// @Summary      Clear Product Cart
// @Tags         Cart
// @Produce      json
// @Success      200  {object}  handlers.RespOK
// @Security     BearerAuth
// @Router       /api/cart [delete]
func ApiClearProductCart(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.ClearProductCart(c.Request.Context(), middleware.UserID(c)); err != nil {
			writeErr(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT[any](nil))
	}
}

// @Summary      Get Session Cart
// @Description  Returns staged sessions; rows invalidated by capacity, deactivation or time are dropped on read.
// @Tags         SessionCart
// @Produce      json
// @Success      200  {object}  handlers.RespOK
// @Security     BearerAuth
// @Router       /api/session-cart [get]
func ApiGetSessionCart(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		view, err := svc.GetSessionCart(c.Request.Context(), middleware.UserID(c))
		if err != nil {
			writeErr(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(view))
	}
}

type addSessionRequest struct {
	SessionID string `json:"session_id" binding:"required"`
}

// @Summary      Add Session to Cart
// @Description  Stages a bookable session, rejecting duplicates, already-booked sessions and in-cart time conflicts.
// @Tags         SessionCart
// @Accept       json
// @Produce      json
// @Param        request body handlers.addSessionRequest true "Session to stage"
// @Success      201  {object}  handlers.RespOK
// @Security     BearerAuth
// @Router       /api/session-cart/items [post]
func ApiAddSessionToCart(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addSessionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorMsg[any](response.APIResponseCodeBadRequest, err.Error(), nil))
			return
		}
		line, err := svc.AddSession(c.Request.Context(), middleware.UserID(c), req.SessionID)
		if err != nil {
			writeErr(c, err)
			return
		}
		c.JSON(http.StatusCreated, response.OKT(line))
	}
}

// @Summary      Remove Session Cart Item
// @Tags         SessionCart
// @Produce      json
// @Param        id path string true "Session cart item ID"
// @Success      200  {object}  handlers.RespOK
// @Security     BearerAuth
// @Router       /api/session-cart/items/{id} [delete]
func ApiRemoveSessionCartItem(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.RemoveSession(c.Request.Context(), middleware.UserID(c), c.Param("id")); err != nil {
			writeErr(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT[any](nil))
	}
}

// @Summary      Clear Session Cart
// @Tags         SessionCart
// @Produce      json
// @Success      200  {object}  handlers.RespOK
// @Security     BearerAuth
// @Router       /api/session-cart [delete]
func ApiClearSessionCart(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.ClearSessionCart(c.Request.Context(), middleware.UserID(c)); err != nil {
			writeErr(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT[any](nil))
	}
}

func RegisterCartRoutes(r gin.IRouter, svc *cart.Service) {
	r.GET("/cart", ApiGetProductCart(svc))
	r.DELETE("/cart", ApiClearProductCart(svc))
	r.POST("/cart/items", ApiAddProductToCart(svc))
	r.PUT("/cart/items/:id", ApiUpdateCartItem(svc))
	r.DELETE("/cart/items/:id", ApiRemoveCartItem(svc))

	r.GET("/session-cart", ApiGetSessionCart(svc))
	r.DELETE("/session-cart", ApiClearSessionCart(svc))
	r.POST("/session-cart/items", ApiAddSessionToCart(svc))
	r.DELETE("/session-cart/items/:id", ApiRemoveSessionCartItem(svc))
}
