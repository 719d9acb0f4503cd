package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"quickfind/middleware"
	"quickfind/models"
	"quickfind/services/credit"
	"quickfind/services/quickfind"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubService struct {
	candidates []models.Candidate
	booking    *models.Booking
	requestID  string
	err        error

	gotQuery quickfind.SearchQuery
}

func (s *stubService) SearchNearby(_ context.Context, query quickfind.SearchQuery) ([]models.Candidate, error) {
	s.gotQuery = query
	return s.candidates, s.err
}

func (s *stubService) Solicit(_ context.Context, clientID, providerID, category string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.requestID, nil
}

func (s *stubService) Respond(_ context.Context, providerID, requestID, action string) error {
	return s.err
}

func (s *stubService) Confirm(_ context.Context, requestID, providerID string, req quickfind.ConfirmRequest) (*models.Booking, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.booking, nil
}

type stubGate struct {
	err     error
	charges int
}

func (g *stubGate) Charge(_ context.Context, accountID string) error {
	g.charges++
	return g.err
}

func setupRouter(h *QuickFindHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextAccountID, "client_42")
	})
	r.GET("/nearby", h.SearchNearbyHandler)
	r.POST("/request", h.RequestHandler)
	r.POST("/respond", h.RespondHandler)
	r.POST("/confirm", h.ConfirmHandler)
	return r
}

func TestSearchNearbyHandlerRejectsMissingCoordinate(t *testing.T) {
	gate := &stubGate{}
	r := setupRouter(NewQuickFindHandler(&stubService{}, gate))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/nearby?lng=-6.84", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, gate.charges, "validation must reject before any side effect")
}

func TestSearchNearbyHandlerDefaultsRadius(t *testing.T) {
	svc := &stubService{candidates: []models.Candidate{}}
	r := setupRouter(NewQuickFindHandler(svc, &stubGate{}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/nearby?lat=34.02&lng=-6.84", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 10.0, svc.gotQuery.RadiusKm)
	assert.Equal(t, 0.0, svc.gotQuery.MinRating)
}

func TestSearchNearbyHandlerInsufficientCredits(t *testing.T) {
	gate := &stubGate{err: fmt.Errorf("account client_42: %w", credit.ErrInsufficientCredits)}
	r := setupRouter(NewQuickFindHandler(&stubService{}, gate))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/nearby?lat=34.02&lng=-6.84", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRespondHandlerMapsProviderNotFound(t *testing.T) {
	svc := &stubService{err: fmt.Errorf("responding provider ghost: %w", quickfind.ErrProviderNotFound)}
	r := setupRouter(NewQuickFindHandler(svc, &stubGate{}))

	body, _ := json.Marshal(gin.H{"requestId": "qf_1700000000_client_42", "action": "accept"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/respond", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestConfirmHandlerReturnsBookingID(t *testing.T) {
	svc := &stubService{booking: &models.Booking{ID: "booking-123"}}
	r := setupRouter(NewQuickFindHandler(svc, &stubGate{}))

	body, _ := json.Marshal(gin.H{"requestId": "qf_1700000000_client_42", "providerId": "prov-1"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/confirm", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "booking-123", resp["bookingId"])
}

func TestConfirmHandlerRequiresProviderID(t *testing.T) {
	r := setupRouter(NewQuickFindHandler(&stubService{}, &stubGate{}))

	body, _ := json.Marshal(gin.H{"requestId": "qf_1700000000_client_42"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/confirm", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
