package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/lenscraft/studio-api/internal/dto"
	"github.com/lenscraft/studio-api/internal/middleware"
	"github.com/lenscraft/studio-api/internal/models"
	"github.com/lenscraft/studio-api/internal/service"
)

type AuthHandler struct {
	svc service.AuthService
}

func NewAuthHandler(svc service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) RegisterRoutes(e *echo.Echo, session echo.MiddlewareFunc) {
	g := e.Group("/api/auth")

	g.POST("/register", h.Register)
	g.POST("/login", h.Login)
	g.POST("/admin/login", h.AdminLogin)
	g.GET("/me", h.Me, session)
	g.PUT("/update", h.UpdateProfile, session)
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req dto.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	account, tok, err := h.svc.Register(c.Request().Context(), req.Name, req.Email, req.Password, models.Role(req.Role))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingAuthFields):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrEmailTaken):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
		}
	}

	return c.JSON(http.StatusCreated, dto.AuthResponse{
		Message: "Registration successful",
		User:    dto.ToAccountResponse(account),
		Token:   tok,
	})
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	account, tok, err := h.svc.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}

	return c.JSON(http.StatusOK, dto.AuthResponse{
		Message: "Login successful",
		User:    dto.ToAccountResponse(account),
		Token:   tok,
	})
}

func (h *AuthHandler) AdminLogin(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	account, tok, err := h.svc.AdminLogin(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotAdminAccount):
			return echo.NewHTTPError(http.StatusForbidden, err.Error())
		case errors.Is(err, service.ErrInvalidCredentials):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
		}
	}

	return c.JSON(http.StatusOK, dto.AuthResponse{
		Message: "Admin login successful",
		User:    dto.ToAccountResponse(account),
		Token:   tok,
		IsAdmin: true,
	})
}

func (h *AuthHandler) Me(c echo.Context) error {
	caller, ok := middleware.Caller(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	account, err := h.svc.GetAccount(c.Request().Context(), caller.AccountID)
	if err != nil {
		if errors.Is(err, service.ErrAccountNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
	return c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	caller, ok := middleware.Caller(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	var req dto.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	account, err := h.svc.UpdateProfile(c.Request().Context(), caller.AccountID, req.Name, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAccountNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrEmailTaken):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
		}
	}
	return c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}
