package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kassem10h/Gym-Poject/internal/app/api/middleware"
	"github.com/kassem10h/Gym-Poject/internal/app/service/account"
	"github.com/kassem10h/Gym-Poject/pkg/response"
)

// @Summary      Register
// @Description  Creates a member or trainer account.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body account.RegisterRequest true "Registration details"
// @Success      201  {object}  handlers.RespOK
// @Router       /api/auth/register [post]
func ApiRegister(svc *account.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req account.RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorMsg[any](response.APIResponseCodeBadRequest, err.Error(), nil))
			return
		}
		user, err := svc.Register(c.Request.Context(), &req)
		if err != nil {
			writeErr(c, err)
			return
		}
		c.JSON(http.StatusCreated, response.OKT(user))
	}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// @Summary      Login
// @Description  Verifies credentials and returns a bearer token.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body handlers.loginRequest true "Credentials"
// @Success      200  {object}  handlers.RespOK
// @Router       /api/auth/login [post]
func ApiLogin(svc *account.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorMsg[any](response.APIResponseCodeBadRequest, err.Error(), nil))
			return
		}
		res, err := svc.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			writeErr(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(res))
	}
}

// @Summary      Profile
// @Description  Returns the authenticated user's account.
// @Tags         Auth
// @Produce      json
// @Success      200  {object}  handlers.RespOK
// @Security     BearerAuth
// @Router       /api/me [get]
func ApiProfile(svc *account.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := svc.Profile(c.Request.Context(), middleware.UserID(c))
		if err != nil {
			writeErr(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(user))
	}
}

func RegisterAuthRoutes(r gin.IRouter, svc *account.Service) {
	r.POST("/auth/register", ApiRegister(svc))
	r.POST("/auth/login", ApiLogin(svc))
}

func RegisterProfileRoutes(r gin.IRouter, svc *account.Service) {
	r.GET("/me", ApiProfile(svc))
}
