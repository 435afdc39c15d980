//go:build api

package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseURL = "http://localhost:8080"

// End-to-end flow against a running instance: register, book, accept, cancel,
// stats, export.
func TestAPI_FullFlow(t *testing.T) {
	waitForService(t)

	var clientToken, adminToken, bookingID string

	t.Run("Step1_RegisterClient", func(t *testing.T) {
		resp := post(t, "/api/auth/register", "", map[string]any{
			"name":     "Alice",
			"email":    fmt.Sprintf("alice+%d@example.com", time.Now().UnixNano()),
			"password": "hunter22",
		})
		require.Equal(t, 201, resp.StatusCode)

		var body map[string]any
		decodeJSON(t, resp, &body)
		clientToken = body["token"].(string)
		require.NotEmpty(t, clientToken)
	})

	t.Run("Step2_AdminLogin", func(t *testing.T) {
		resp := post(t, "/api/auth/admin/login", "", map[string]any{
			"email":    "admin@photopro.com",
			"password": "admin123",
		})
		require.Equal(t, 200, resp.StatusCode)

		var body map[string]any
		decodeJSON(t, resp, &body)
		adminToken = body["token"].(string)
		assert.Equal(t, true, body["is_admin"])
	})

	t.Run("Step3_CreateBooking", func(t *testing.T) {
		resp := post(t, "/api/bookings", clientToken, map[string]any{
			"service_type":   "Wedding Photography",
			"date":           "2025-06-01",
			"time":           "14:00",
			"venue":          "Grand Palace Hotel",
			"city":           "Bangkok",
			"contact_method": "whatsapp",
			"contact_value":  "+66812345678",
		})
		require.Equal(t, 201, resp.StatusCode)

		var body map[string]any
		decodeJSON(t, resp, &body)
		bookingID = body["id"].(string)
		assert.Equal(t, "pending", body["status"])
	})

	t.Run("Step4_DuplicateRejected", func(t *testing.T) {
		resp := post(t, "/api/bookings", clientToken, map[string]any{
			"service_type":   "Wedding Photography",
			"date":           "2025-06-01",
			"time":           "14:00",
			"venue":          "Grand Palace Hotel",
			"city":           "Bangkok",
			"contact_method": "whatsapp",
			"contact_value":  "+66812345678",
		})
		assert.Equal(t, 409, resp.StatusCode)
	})

	t.Run("Step5_BadContactMethod", func(t *testing.T) {
		resp := post(t, "/api/bookings", clientToken, map[string]any{
			"service_type":   "Drone Coverage",
			"date":           "2025-08-01",
			"time":           "10:00",
			"venue":          "Beach Resort",
			"city":           "Phuket",
			"contact_method": "sms",
			"contact_value":  "+66812345678",
		})
		assert.Equal(t, 400, resp.StatusCode)
	})

	t.Run("Step6_AcceptBooking", func(t *testing.T) {
		resp := put(t, "/api/bookings/accept/"+bookingID, adminToken)
		require.Equal(t, 200, resp.StatusCode)

		var body map[string]any
		decodeJSON(t, resp, &body)
		booking := body["booking"].(map[string]any)
		assert.Equal(t, "confirmed", booking["status"])
	})

	t.Run("Step7_SecondAcceptConflict", func(t *testing.T) {
		resp := put(t, "/api/bookings/accept/"+bookingID, adminToken)
		assert.Equal(t, 409, resp.StatusCode)

		var body map[string]string
		decodeJSON(t, resp, &body)
		assert.Contains(t, body["message"], "only pending bookings can be accepted")
	})

	t.Run("Step8_ClientCannotAccessAdminRoutes", func(t *testing.T) {
		resp := get(t, "/api/admin/stats", clientToken)
		assert.Equal(t, 403, resp.StatusCode)

		resp = get(t, "/api/bookings", clientToken)
		assert.Equal(t, 403, resp.StatusCode)
	})

	t.Run("Step9_Stats", func(t *testing.T) {
		resp := get(t, "/api/admin/stats", adminToken)
		require.Equal(t, 200, resp.StatusCode)

		var body map[string]float64
		decodeJSON(t, resp, &body)
		assert.Equal(t, body["total_bookings"], body["pending"]+body["confirmed"]+body["cancelled"])
	})

	t.Run("Step10_ExportCSV", func(t *testing.T) {
		resp := get(t, "/api/bookings/admin/export", adminToken)
		require.Equal(t, 200, resp.StatusCode)
		assert.Contains(t, resp.Header.Get("Content-Type"), "text/csv")
		assert.Contains(t, resp.Header.Get("Content-Disposition"), "bookings_export.csv")

		data, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(data), "Client Name,Client Email"))
	})

	t.Run("Step11_OwnerCancel", func(t *testing.T) {
		resp := put(t, "/api/bookings/cancel/"+bookingID, clientToken)
		require.Equal(t, 200, resp.StatusCode)

		var body map[string]any
		decodeJSON(t, resp, &body)
		booking := body["booking"].(map[string]any)
		assert.Equal(t, "cancelled", booking["status"])
	})

	t.Run("Step12_CancelAgainConflict", func(t *testing.T) {
		resp := put(t, "/api/bookings/cancel/"+bookingID, clientToken)
		assert.Equal(t, 409, resp.StatusCode)
	})
}

func TestAPI_Unauthenticated(t *testing.T) {
	waitForService(t)

	resp := get(t, "/api/bookings/my", "")
	assert.Equal(t, 401, resp.StatusCode)

	resp = post(t, "/api/bookings", "", map[string]any{})
	assert.Equal(t, 401, resp.StatusCode)
}

// --- helpers ---

func waitForService(t *testing.T) {
	t.Helper()
	for i := 0; i < 30; i++ {
		resp, err := http.Get(baseURL + "/health")
		if err == nil && resp.StatusCode == 200 {
			resp.Body.Close()
			return
		}
		time.Sleep(time.Second)
	}
	t.Fatal("service did not become ready")
}

func post(t *testing.T, path, token string, payload any) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, baseURL+path, bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func put(t *testing.T, path, token string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodPut, baseURL+path, nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func get(t *testing.T, path, token string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, baseURL+path, nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}
