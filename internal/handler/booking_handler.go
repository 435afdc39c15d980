package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/lenscraft/studio-api/internal/dto"
	"github.com/lenscraft/studio-api/internal/middleware"
	"github.com/lenscraft/studio-api/internal/repository"
	"github.com/lenscraft/studio-api/internal/service"
)

type BookingHandler struct {
	svc service.BookingService
}

func NewBookingHandler(svc service.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

func (h *BookingHandler) RegisterRoutes(e *echo.Echo, session echo.MiddlewareFunc) {
	g := e.Group("/api/bookings", session)

	g.POST("", h.CreateBooking)
	g.GET("/my", h.ListMyBookings)
	g.PUT("/cancel/:id", h.CancelBooking)

	g.GET("", h.ListBookings, middleware.RequireAdmin)
	g.GET("/admin/list", h.AdminListBookings, middleware.RequireAdmin)
	g.GET("/admin/export", h.ExportBookingsCSV, middleware.RequireAdmin)
	g.PUT("/accept/:id", h.AcceptBooking, middleware.RequireAdmin)
	g.PUT("/admin/cancel/:id", h.AdminCancelBooking, middleware.RequireAdmin)
}

func (h *BookingHandler) CreateBooking(c echo.Context) error {
	caller, ok := middleware.Caller(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	var req dto.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	booking, err := h.svc.Create(c.Request().Context(), caller, service.CreateBookingInput{
		ServiceType:   req.ServiceType,
		Date:          req.Date,
		Time:          req.Time,
		Venue:         req.Venue,
		City:          req.City,
		Notes:         req.Notes,
		ContactMethod: req.ContactMethod,
		ContactValue:  req.ContactValue,
	})
	if err != nil {
		return bookingHTTPError(err)
	}

	return c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) ListMyBookings(c echo.Context) error {
	caller, ok := middleware.Caller(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	bookings, err := h.svc.ListMine(c.Request().Context(), caller)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, dto.ToBookingResponses(bookings))
}

func (h *BookingHandler) CancelBooking(c echo.Context) error {
	caller, ok := middleware.Caller(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	booking, err := h.svc.Cancel(c.Request().Context(), caller, c.Param("id"))
	if err != nil {
		return bookingHTTPError(err)
	}

	return c.JSON(http.StatusOK, dto.BookingActionResponse{
		Message: "Booking cancelled successfully",
		Booking: dto.ToBookingResponse(booking),
	})
}

func (h *BookingHandler) ListBookings(c echo.Context) error {
	caller, ok := middleware.Caller(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	bookings, err := h.svc.ListAll(c.Request().Context(), caller)
	if err != nil {
		return bookingHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.ToBookingResponses(bookings))
}

func (h *BookingHandler) AdminListBookings(c echo.Context) error {
	caller, ok := middleware.Caller(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	filter := repository.BookingFilter{
		Status:        c.QueryParam("status"),
		ServiceType:   c.QueryParam("serviceType"),
		ContactMethod: c.QueryParam("contactMethod"),
		FromDate:      c.QueryParam("fromDate"),
		ToDate:        c.QueryParam("toDate"),
	}

	bookings, err := h.svc.ListFiltered(c.Request().Context(), caller, filter)
	if err != nil {
		return bookingHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.ToBookingResponses(bookings))
}

func (h *BookingHandler) ExportBookingsCSV(c echo.Context) error {
	caller, ok := middleware.Caller(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	data, err := h.svc.ExportCSV(c.Request().Context(), caller)
	if err != nil {
		return bookingHTTPError(err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="bookings_export.csv"`)
	return c.Blob(http.StatusOK, "text/csv", data)
}

func (h *BookingHandler) AcceptBooking(c echo.Context) error {
	caller, ok := middleware.Caller(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	booking, err := h.svc.Accept(c.Request().Context(), caller, c.Param("id"))
	if err != nil {
		return bookingHTTPError(err)
	}

	return c.JSON(http.StatusOK, dto.BookingActionResponse{
		Message: "Booking accepted successfully",
		Booking: dto.ToBookingResponse(booking),
	})
}

func (h *BookingHandler) AdminCancelBooking(c echo.Context) error {
	caller, ok := middleware.Caller(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	booking, err := h.svc.AdminCancel(c.Request().Context(), caller, c.Param("id"))
	if err != nil {
		return bookingHTTPError(err)
	}

	return c.JSON(http.StatusOK, dto.BookingActionResponse{
		Message: "Booking cancelled successfully",
		Booking: dto.ToBookingResponse(booking),
	})
}

// bookingHTTPError maps lifecycle errors onto the HTTP taxonomy:
// validation 400, not-found 404, forbidden 403, conflict 409, anything else 500.
func bookingHTTPError(err error) error {
	switch {
	case errors.Is(err, service.ErrContactRequired),
		errors.Is(err, service.ErrInvalidContactMethod),
		errors.Is(err, service.ErrMissingBookingFields):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrBookingNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrNotBookingOwner),
		errors.Is(err, service.ErrAdminOnly):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrDuplicateBooking),
		errors.Is(err, service.ErrAlreadyCancelled),
		errors.Is(err, service.ErrOnlyPendingAccepted):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
