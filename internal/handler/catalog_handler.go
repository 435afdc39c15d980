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

type CatalogHandler struct {
	svc service.CatalogService
}

func NewCatalogHandler(svc service.CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

func (h *CatalogHandler) RegisterRoutes(e *echo.Echo, session echo.MiddlewareFunc) {
	services := e.Group("/api/services")
	services.GET("", h.ListPackages)
	services.GET("/:slug", h.GetPackage)
	services.POST("", h.CreatePackage, session, middleware.RequireAdmin)

	team := e.Group("/api/team")
	team.GET("", h.PublicTeam)
	team.GET("/admin", h.AdminListTeam, session, middleware.RequireAdmin)
	team.POST("", h.CreateMember, session, middleware.RequireAdmin)
	team.PUT("/:id", h.UpdateMember, session, middleware.RequireAdmin)
	team.PATCH("/:id/toggle", h.ToggleMemberActive, session, middleware.RequireAdmin)
}

func (h *CatalogHandler) ListPackages(c echo.Context) error {
	packages, err := h.svc.ListPackages(c.Request().Context(), c.QueryParam("category"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
	return c.JSON(http.StatusOK, packages)
}

func (h *CatalogHandler) GetPackage(c echo.Context) error {
	pkg, err := h.svc.GetPackage(c.Request().Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrPackageNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
	return c.JSON(http.StatusOK, pkg)
}

func (h *CatalogHandler) CreatePackage(c echo.Context) error {
	caller, ok := middleware.Caller(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	var req dto.CreatePackageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	pkg := &models.ServicePackage{
		Title:                 req.Title,
		Slug:                  req.Slug,
		Category:              req.Category,
		ShortDescription:      req.ShortDescription,
		Description:           req.Description,
		Price:                 req.Price,
		PhotosIncluded:        req.PhotosIncluded,
		VideosIncludedMinutes: req.VideosIncludedMinutes,
		DroneIncluded:         req.DroneIncluded,
		Perks:                 models.StringList(req.Perks),
		CoverImage:            req.CoverImage,
	}
	if err := h.svc.CreatePackage(c.Request().Context(), caller, pkg); err != nil {
		if errors.Is(err, service.ErrPackageTitleNeeded) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
	return c.JSON(http.StatusCreated, pkg)
}

func (h *CatalogHandler) PublicTeam(c echo.Context) error {
	team, err := h.svc.PublicTeam(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
	return c.JSON(http.StatusOK, team)
}

func (h *CatalogHandler) AdminListTeam(c echo.Context) error {
	team, err := h.svc.AdminListTeam(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
	return c.JSON(http.StatusOK, team)
}

func (h *CatalogHandler) CreateMember(c echo.Context) error {
	var req dto.TeamMemberRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	member := memberFromRequest(req)
	if err := h.svc.CreateMember(c.Request().Context(), member); err != nil {
		if errors.Is(err, service.ErrMemberFieldsNeeded) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
	return c.JSON(http.StatusCreated, member)
}

func (h *CatalogHandler) UpdateMember(c echo.Context) error {
	var req dto.TeamMemberRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	member, err := h.svc.UpdateMember(c.Request().Context(), c.Param("id"), memberFromRequest(req))
	if err != nil {
		if errors.Is(err, service.ErrMemberNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
	return c.JSON(http.StatusOK, member)
}

func (h *CatalogHandler) ToggleMemberActive(c echo.Context) error {
	member, err := h.svc.ToggleMemberActive(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrMemberNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
	return c.JSON(http.StatusOK, member)
}

func memberFromRequest(req dto.TeamMemberRequest) *models.TeamMember {
	return &models.TeamMember{
		Name:            req.Name,
		Role:            req.Role,
		Specialization:  req.Specialization,
		Bio:             req.Bio,
		ExperienceYears: req.ExperienceYears,
		Skills:          models.StringList(req.Skills),
		ImageURL:        req.ImageURL,
	}
}
