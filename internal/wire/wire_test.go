package wire

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"marrakech-tours/internal/data/memory"
	"marrakech-tours/internal/data/repository"
	"marrakech-tours/internal/data/seed"
	"marrakech-tours/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T) (*App, *repository.Repository) {
	t.Helper()

	repo := memory.NewRepository(zap.NewNop())
	config := &utils.Config{
		App:     utils.AppConfig{Name: "marrakech-tours", Port: "0", Debug: true},
		Session: utils.SessionConfig{ExpiryHours: 24},
		Seed: utils.SeedConfig{
			AdminPassword:      "AdminPass123!",
			SuperadminPassword: "SuperPass123!",
		},
		CORS: utils.CORSConfig{Origins: []string{"http://localhost:5173"}},
	}

	require.NoError(t, seed.EnsureDefaults(context.Background(), repo, config, zap.NewNop()))

	return Wiring(repo, nil, "memory", config, zap.NewNop()), repo
}

func decodeEnvelope(t *testing.T, body *bytes.Buffer) map[string]any {
	t.Helper()

	var envelope map[string]any
	require.NoError(t, json.Unmarshal(body.Bytes(), &envelope))
	return envelope
}

func firstActivityID(t *testing.T, app *App) string {
	t.Helper()

	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/activities", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	data := decodeEnvelope(t, rec.Body)["data"].([]any)
	require.NotEmpty(t, data)
	return data[0].(map[string]any)["id"].(string)
}

func login(t *testing.T, app *App, username, password string) *http.Cookie {
	t.Helper()

	body, _ := json.Marshal(map[string]string{"username": username, "password": password})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "tour_session" {
			return cookie
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

func TestHealthEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	data := decodeEnvelope(t, rec.Body)["data"].(map[string]any)
	assert.Equal(t, "ok", data["status"])
	assert.Equal(t, "memory", data["storage"])
	assert.Equal(t, float64(5), data["activities"], "seeded catalog")
}

func TestBookingFlow(t *testing.T) {
	app, _ := newTestApp(t)

	// Find the Agafay trip (450 MAD) in the seeded catalog.
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/activities", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var agafayID string
	for _, item := range decodeEnvelope(t, rec.Body)["data"].([]any) {
		activity := item.(map[string]any)
		if activity["price"] == "450" {
			agafayID = activity["id"].(string)
			break
		}
	}
	require.NotEmpty(t, agafayID)

	body, _ := json.Marshal(map[string]any{
		"customerName":   "Marie Dupont",
		"customerPhone":  "+33612345678",
		"activityId":     agafayID,
		"numberOfPeople": 2,
		"preferredDate":  "2026-09-15",
	})

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	rec = httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	data := decodeEnvelope(t, rec.Body)["data"].(map[string]any)
	assert.Equal(t, "900", data["totalAmount"])
	assert.Equal(t, "pending", data["status"])
	assert.Equal(t, "unpaid", data["paymentStatus"])

	notification := data["notification"].(map[string]any)
	assert.Len(t, notification["whatsappLinks"].([]any), 3)
	assert.Contains(t, notification["customerWhatsappLink"].(string), "https://wa.me/33612345678")
}

func TestAdminRoutesRequireSession(t *testing.T) {
	app, _ := newTestApp(t)

	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/admin/bookings", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminLoginAndRoleGates(t *testing.T) {
	app, _ := newTestApp(t)

	adminCookie := login(t, app, "ahmed", "AdminPass123!")

	// Admin reaches the booking list.
	req := httptest.NewRequest(http.MethodGet, "/api/admin/bookings", nil)
	req.AddCookie(adminCookie)
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	// But not the superadmin audit trail.
	req = httptest.NewRequest(http.MethodGet, "/api/admin/audit-logs", nil)
	req.AddCookie(adminCookie)
	rec = httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	superCookie := login(t, app, "nadia", "SuperPass123!")

	req = httptest.NewRequest(http.MethodGet, "/api/admin/audit-logs", nil)
	req.AddCookie(superCookie)
	rec = httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	app, _ := newTestApp(t)

	body, _ := json.Marshal(map[string]string{"username": "ahmed", "password": "nope"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginRateLimited(t *testing.T) {
	repo := memory.NewRepository(zap.NewNop())
	config := &utils.Config{
		App:     utils.AppConfig{Name: "marrakech-tours", Port: "0", Debug: false},
		Session: utils.SessionConfig{ExpiryHours: 24},
		Seed: utils.SeedConfig{
			AdminPassword:      "AdminPass123!",
			SuperadminPassword: "SuperPass123!",
		},
		CORS: utils.CORSConfig{Origins: []string{"http://localhost:5173"}},
	}
	require.NoError(t, seed.EnsureDefaults(context.Background(), repo, config, zap.NewNop()))
	app := Wiring(repo, nil, "memory", config, zap.NewNop())

	body, _ := json.Marshal(map[string]string{"username": "ahmed", "password": "nope"})

	// All failed attempts come from the same address.
	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		app.Router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestCurrentUserRoundTrip(t *testing.T) {
	app, _ := newTestApp(t)

	cookie := login(t, app, "nadia", "SuperPass123!")

	req := httptest.NewRequest(http.MethodGet, "/api/auth/user", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	data := decodeEnvelope(t, rec.Body)["data"].(map[string]any)
	assert.Equal(t, "nadia", data["username"])
	assert.Equal(t, "superadmin", data["role"])
}

func TestLogoutClearsSession(t *testing.T) {
	app, _ := newTestApp(t)

	cookie := login(t, app, "ahmed", "AdminPass123!")

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	// The old token no longer opens admin routes.
	req = httptest.NewRequest(http.MethodGet, "/api/admin/bookings", nil)
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestReviewModerationFlow(t *testing.T) {
	app, _ := newTestApp(t)
	activityID := firstActivityID(t, app)

	body, _ := json.Marshal(map[string]any{
		"customerName":  "Marie Dupont",
		"customerEmail": "marie@example.com",
		"activityId":    activityID,
		"rating":        5,
		"title":         "Magical",
		"comment":       "Sunrise over the Atlas was unforgettable.",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/reviews", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	reviewID := decodeEnvelope(t, rec.Body)["data"].(map[string]any)["id"].(string)

	// Unapproved reviews stay hidden from the public list.
	rec = httptest.NewRecorder()
	app.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/reviews?activityId="+activityID, nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeEnvelope(t, rec.Body)["data"])

	cookie := login(t, app, "ahmed", "AdminPass123!")
	body, _ = json.Marshal(map[string]any{"approved": true})
	req = httptest.NewRequest(http.MethodPatch, "/api/admin/reviews/"+reviewID+"/approval", bytes.NewReader(body))
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	app.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/reviews?activityId="+activityID, nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeEnvelope(t, rec.Body)["data"].([]any), 1)
}
