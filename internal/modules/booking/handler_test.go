package booking

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"brightway/internal/database"
	"brightway/internal/email"
	"brightway/internal/pipeline"
	"brightway/internal/repository"
)

type fakeSender struct {
	mu   sync.Mutex
	sent []email.Message
	err  error
}

func (f *fakeSender) Send(_ context.Context, m email.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, m)
	return nil
}

func (f *fakeSender) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB, *fakeSender) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db, "booking_submissions", "contact_submissions"))

	sender := &fakeSender{}
	runner := pipeline.New(sender, pipeline.Options{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	handler := NewHandler(NewService(repository.NewBookingRepository(db, ""), runner, "ops@brightway.example"))

	router := gin.New()
	v1 := router.Group("/api/v1")
	handler.RegisterRoutes(v1)

	return router, db, sender
}

func performRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func validBookingBody() map[string]any {
	return map[string]any{
		"serviceType":   "Residential",
		"firstName":     "Jane",
		"lastName":      "Doe",
		"email":         "jane@example.com",
		"phone":         "5551234567",
		"cleaningType":  "Deep Cleaning",
		"preferredDate": "2025-03-01",
		"preferredTime": "08:00 - 10:00",
	}
}

func bookingCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Table("booking_submissions").Count(&n).Error)
	return n
}

func TestSubmitBooking(t *testing.T) {
	router, db, sender := setupRouter(t)

	rr := performRequest(router, http.MethodPost, "/api/v1/booking", validBookingBody())
	require.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

	assert.Equal(t, true, resp["success"])
	assert.Equal(t, SuccessMessage, resp["message"])
	assert.NotNil(t, resp["recordId"])

	data, ok := resp["data"].(map[string]any)
	require.True(t, ok)
	for field, want := range validBookingBody() {
		assert.Equal(t, want, data[field], field)
	}

	assert.Equal(t, int64(1), bookingCount(t, db))
	assert.Equal(t, 2, sender.count())
}

func TestSubmitBookingMissingFields(t *testing.T) {
	router, db, sender := setupRouter(t)

	body := validBookingBody()
	delete(body, "phone")
	delete(body, "preferredTime")

	rr := performRequest(router, http.MethodPost, "/api/v1/booking", body)
	require.Equal(t, http.StatusBadRequest, rr.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "Please fill in all required fields.", resp["message"])
	assert.ElementsMatch(t, []any{"phone", "preferredTime"}, resp["missingFields"])

	assert.Equal(t, int64(0), bookingCount(t, db))
	assert.Equal(t, 0, sender.count())
}

func TestSubmitBookingEmptyStringIsMissing(t *testing.T) {
	router, _, _ := setupRouter(t)

	body := validBookingBody()
	body["email"] = ""

	rr := performRequest(router, http.MethodPost, "/api/v1/booking", body)
	require.Equal(t, http.StatusBadRequest, rr.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.ElementsMatch(t, []any{"email"}, resp["missingFields"])
}

func TestSubmitBookingTwiceInsertsTwice(t *testing.T) {
	router, db, sender := setupRouter(t)

	for i := 0; i < 2; i++ {
		rr := performRequest(router, http.MethodPost, "/api/v1/booking", validBookingBody())
		require.Equal(t, http.StatusOK, rr.Code)
	}

	assert.Equal(t, int64(2), bookingCount(t, db))
	assert.Equal(t, 4, sender.count())
}

func TestSubmitBookingSenderFailureStillSucceeds(t *testing.T) {
	router, db, sender := setupRouter(t)
	sender.err = errors.New("smtp: connection refused")

	rr := performRequest(router, http.MethodPost, "/api/v1/booking", validBookingBody())
	require.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.NotNil(t, resp["recordId"])

	assert.Equal(t, int64(1), bookingCount(t, db))
}

func TestSubmitBookingFormEncoded(t *testing.T) {
	router, db, _ := setupRouter(t)

	form := url.Values{}
	for field, value := range validBookingBody() {
		form.Set(field, value.(string))
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/booking", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, int64(1), bookingCount(t, db))
}

func TestSubmitBookingMalformedBody(t *testing.T) {
	router, db, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/booking", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusInternalServerError, rr.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Something went wrong. Please try again later.", resp["message"])

	assert.Equal(t, int64(0), bookingCount(t, db))
}
