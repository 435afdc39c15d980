package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/lenscraft/studio-api/internal/dto"
	"github.com/lenscraft/studio-api/internal/middleware"
	"github.com/lenscraft/studio-api/internal/models"
	"github.com/lenscraft/studio-api/internal/repository"
	"github.com/lenscraft/studio-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Mock BookingService ---

type mockBookingService struct {
	createFn       func(ctx context.Context, caller models.CallerIdentity, in service.CreateBookingInput) (*models.Booking, error)
	listMineFn     func(ctx context.Context, caller models.CallerIdentity) ([]models.Booking, error)
	listAllFn      func(ctx context.Context, caller models.CallerIdentity) ([]models.Booking, error)
	listFilteredFn func(ctx context.Context, caller models.CallerIdentity, f repository.BookingFilter) ([]models.Booking, error)
	cancelFn       func(ctx context.Context, caller models.CallerIdentity, id string) (*models.Booking, error)
	acceptFn       func(ctx context.Context, caller models.CallerIdentity, id string) (*models.Booking, error)
	adminCancelFn  func(ctx context.Context, caller models.CallerIdentity, id string) (*models.Booking, error)
	exportFn       func(ctx context.Context, caller models.CallerIdentity) ([]byte, error)
}

func (m *mockBookingService) Create(ctx context.Context, caller models.CallerIdentity, in service.CreateBookingInput) (*models.Booking, error) {
	return m.createFn(ctx, caller, in)
}
func (m *mockBookingService) ListMine(ctx context.Context, caller models.CallerIdentity) ([]models.Booking, error) {
	return m.listMineFn(ctx, caller)
}
func (m *mockBookingService) ListAll(ctx context.Context, caller models.CallerIdentity) ([]models.Booking, error) {
	return m.listAllFn(ctx, caller)
}
func (m *mockBookingService) ListFiltered(ctx context.Context, caller models.CallerIdentity, f repository.BookingFilter) ([]models.Booking, error) {
	return m.listFilteredFn(ctx, caller, f)
}
func (m *mockBookingService) Cancel(ctx context.Context, caller models.CallerIdentity, id string) (*models.Booking, error) {
	return m.cancelFn(ctx, caller, id)
}
func (m *mockBookingService) Accept(ctx context.Context, caller models.CallerIdentity, id string) (*models.Booking, error) {
	return m.acceptFn(ctx, caller, id)
}
func (m *mockBookingService) AdminCancel(ctx context.Context, caller models.CallerIdentity, id string) (*models.Booking, error) {
	return m.adminCancelFn(ctx, caller, id)
}
func (m *mockBookingService) ExportCSV(ctx context.Context, caller models.CallerIdentity) ([]byte, error) {
	return m.exportFn(ctx, caller)
}

// --- Helpers ---

var (
	testClient = models.CallerIdentity{AccountID: "client-1", Role: models.RoleClient}
	testAdmin  = models.CallerIdentity{AccountID: "admin-1", Role: models.RoleAdmin}
)

func newBookingContext(t *testing.T, method, target, body string, caller models.CallerIdentity) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	middleware.SetCaller(c, caller)
	return c, rec
}

// --- Tests ---

func TestCreateBooking_Handler_Success(t *testing.T) {
	svc := &mockBookingService{
		createFn: func(ctx context.Context, caller models.CallerIdentity, in service.CreateBookingInput) (*models.Booking, error) {
			return &models.Booking{
				ID:            "booking-1",
				ClientID:      caller.AccountID,
				ServiceType:   in.ServiceType,
				Date:          in.Date,
				Status:        models.StatusPending,
				ContactMethod: in.ContactMethod,
				ContactValue:  in.ContactValue,
				CreatedAt:     time.Now(),
			}, nil
		},
	}

	body := `{"service_type":"Wedding Photography","date":"2025-06-01","time":"14:00","venue":"Grand Palace Hotel","city":"Bangkok","contact_method":"whatsapp","contact_value":"+66812345678"}`
	c, rec := newBookingContext(t, http.MethodPost, "/api/bookings", body, testClient)

	h := NewBookingHandler(svc)
	err := h.CreateBooking(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "booking-1", resp.ID)
	assert.Equal(t, models.StatusPending, resp.Status)
	assert.Equal(t, "client-1", resp.ClientID)
}

func TestCreateBooking_Handler_ValidationError(t *testing.T) {
	svc := &mockBookingService{
		createFn: func(ctx context.Context, caller models.CallerIdentity, in service.CreateBookingInput) (*models.Booking, error) {
			return nil, service.ErrInvalidContactMethod
		},
	}

	body := `{"service_type":"Wedding Photography","date":"2025-06-01","contact_method":"sms","contact_value":"+66812345678"}`
	c, _ := newBookingContext(t, http.MethodPost, "/api/bookings", body, testClient)

	h := NewBookingHandler(svc)
	err := h.CreateBooking(c)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestCreateBooking_Handler_Duplicate(t *testing.T) {
	svc := &mockBookingService{
		createFn: func(ctx context.Context, caller models.CallerIdentity, in service.CreateBookingInput) (*models.Booking, error) {
			return nil, service.ErrDuplicateBooking
		},
	}

	body := `{"service_type":"Wedding Photography","date":"2025-06-01","contact_method":"whatsapp","contact_value":"x"}`
	c, _ := newBookingContext(t, http.MethodPost, "/api/bookings", body, testClient)

	h := NewBookingHandler(svc)
	err := h.CreateBooking(c)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, he.Code)
}

func TestCreateBooking_Handler_NoCaller(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewBookingHandler(&mockBookingService{})
	err := h.CreateBooking(c)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestCancelBooking_Handler_Forbidden(t *testing.T) {
	svc := &mockBookingService{
		cancelFn: func(ctx context.Context, caller models.CallerIdentity, id string) (*models.Booking, error) {
			return nil, service.ErrNotBookingOwner
		},
	}

	c, _ := newBookingContext(t, http.MethodPut, "/api/bookings/cancel/booking-1", "", testClient)
	c.SetParamNames("id")
	c.SetParamValues("booking-1")

	h := NewBookingHandler(svc)
	err := h.CancelBooking(c)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, he.Code)
}

func TestCancelBooking_Handler_Success(t *testing.T) {
	svc := &mockBookingService{
		cancelFn: func(ctx context.Context, caller models.CallerIdentity, id string) (*models.Booking, error) {
			return &models.Booking{ID: id, ClientID: caller.AccountID, Status: models.StatusCancelled}, nil
		},
	}

	c, rec := newBookingContext(t, http.MethodPut, "/api/bookings/cancel/booking-1", "", testClient)
	c.SetParamNames("id")
	c.SetParamValues("booking-1")

	h := NewBookingHandler(svc)
	require.NoError(t, h.CancelBooking(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.BookingActionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Booking cancelled successfully", resp.Message)
	assert.Equal(t, models.StatusCancelled, resp.Booking.Status)
}

func TestAcceptBooking_Handler_Conflict(t *testing.T) {
	svc := &mockBookingService{
		acceptFn: func(ctx context.Context, caller models.CallerIdentity, id string) (*models.Booking, error) {
			return nil, service.ErrOnlyPendingAccepted
		},
	}

	c, _ := newBookingContext(t, http.MethodPut, "/api/bookings/accept/booking-1", "", testAdmin)
	c.SetParamNames("id")
	c.SetParamValues("booking-1")

	h := NewBookingHandler(svc)
	err := h.AcceptBooking(c)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, he.Code)
	assert.Equal(t, "only pending bookings can be accepted", he.Message)
}

func TestAcceptBooking_Handler_NotFound(t *testing.T) {
	svc := &mockBookingService{
		acceptFn: func(ctx context.Context, caller models.CallerIdentity, id string) (*models.Booking, error) {
			return nil, service.ErrBookingNotFound
		},
	}

	c, _ := newBookingContext(t, http.MethodPut, "/api/bookings/accept/missing", "", testAdmin)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	h := NewBookingHandler(svc)
	err := h.AcceptBooking(c)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Code)
}

func TestAdminListBookings_Handler_ForwardsQueryParams(t *testing.T) {
	var gotFilter repository.BookingFilter
	svc := &mockBookingService{
		listFilteredFn: func(ctx context.Context, caller models.CallerIdentity, f repository.BookingFilter) ([]models.Booking, error) {
			gotFilter = f
			return []models.Booking{}, nil
		},
	}

	target := "/api/bookings/admin/list?status=pending&serviceType=all&contactMethod=email&fromDate=2025-01-01&toDate=2025-12-31"
	c, rec := newBookingContext(t, http.MethodGet, target, "", testAdmin)

	h := NewBookingHandler(svc)
	require.NoError(t, h.AdminListBookings(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, repository.BookingFilter{
		Status:        "pending",
		ServiceType:   "all",
		ContactMethod: "email",
		FromDate:      "2025-01-01",
		ToDate:        "2025-12-31",
	}, gotFilter)
}

func TestExportBookingsCSV_Handler_Headers(t *testing.T) {
	svc := &mockBookingService{
		exportFn: func(ctx context.Context, caller models.CallerIdentity) ([]byte, error) {
			return []byte("Client Name,Client Email\n"), nil
		},
	}

	c, rec := newBookingContext(t, http.MethodGet, "/api/bookings/admin/export", "", testAdmin)

	h := NewBookingHandler(svc)
	require.NoError(t, h.ExportBookingsCSV(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/csv")
	assert.Equal(t, `attachment; filename="bookings_export.csv"`, rec.Header().Get(echo.HeaderContentDisposition))
	assert.Contains(t, rec.Body.String(), "Client Name")
}

func TestListMyBookings_Handler_Success(t *testing.T) {
	svc := &mockBookingService{
		listMineFn: func(ctx context.Context, caller models.CallerIdentity) ([]models.Booking, error) {
			return []models.Booking{
				{ID: "b2", ClientID: caller.AccountID, Status: models.StatusPending},
				{ID: "b1", ClientID: caller.AccountID, Status: models.StatusCancelled},
			}, nil
		},
	}

	c, rec := newBookingContext(t, http.MethodGet, "/api/bookings/my", "", testClient)

	h := NewBookingHandler(svc)
	require.NoError(t, h.ListMyBookings(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "b2", resp[0].ID)
}
