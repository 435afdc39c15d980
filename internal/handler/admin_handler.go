package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/lenscraft/studio-api/internal/dto"
	"github.com/lenscraft/studio-api/internal/middleware"
	"github.com/lenscraft/studio-api/internal/service"
)

type AdminHandler struct {
	stats service.StatsService
}

func NewAdminHandler(stats service.StatsService) *AdminHandler {
	return &AdminHandler{stats: stats}
}

// RegisterRoutes gates /api/admin behind the admin role at the route level, so
// every endpoint added here inherits the check.
func (h *AdminHandler) RegisterRoutes(e *echo.Echo, session echo.MiddlewareFunc) {
	g := e.Group("/api/admin", session, middleware.RequireAdmin)
	g.GET("/stats", h.Stats)
}

func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.stats.ComputeStats(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}

	return c.JSON(http.StatusOK, dto.StatsResponse{
		TotalBookings: stats.TotalBookings,
		Pending:       stats.Pending,
		Confirmed:     stats.Confirmed,
		Cancelled:     stats.Cancelled,
		Revenue:       stats.Revenue,
	})
}
