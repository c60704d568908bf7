package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kassem10h/Gym-Poject/internal/app/service/shop"
	"github.com/kassem10h/Gym-Poject/pkg/response"
)

// @Summary      List Products
// @Description  Lists active products, optionally filtered by category name.
// @Tags         Shop
// @Produce      json
// @Param        category query string false "Category name filter"
// @Success      200  {object}  handlers.RespOK
// @Router       /api/shop/products [get]
func ApiListProducts(svc *shop.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := svc.ListProducts(c.Request.Context(), c.Query("category"))
		if err != nil {
			writeErr(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(products))
	}
}

// @Summary      Product Detail
// @Tags         Shop
// @Produce      json
// @Param        id path string true "Product ID"
// @Success      200  {object}  handlers.RespOK
// @Router       /api/shop/products/{id} [get]
func ApiGetProduct(svc *shop.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := svc.GetProduct(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeErr(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(product))
	}
}

// @Summary      List Categories
// @Tags         Shop
// @Produce      json
// @Success      200  {object}  handlers.RespOK
// @Router       /api/shop/categories [get]
func ApiListCategories(svc *shop.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := svc.ListCategories(c.Request.Context())
		if err != nil {
			writeErr(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(categories))
	}
}

func RegisterShopRoutes(r gin.IRouter, svc *shop.Service) {
	r.GET("/products", ApiListProducts(svc))
	r.GET("/products/:id", ApiGetProduct(svc))
	r.GET("/categories", ApiListCategories(svc))
}
