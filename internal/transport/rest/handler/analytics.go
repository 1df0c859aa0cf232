package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"pulsecheck/internal/service"
)

// AnalyticsHandler handles analytics endpoints
type AnalyticsHandler struct {
	analyticsSvc *service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsSvc *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsSvc: analyticsSvc}
}

// Summary handles GET /v1/surveys/{surveyId}/analytics
func (h *AnalyticsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	surveyID := mux.Vars(r)["surveyId"]

	summary, err := h.analyticsSvc.Summary(r.Context(), surveyID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

// Distribution handles GET /v1/surveys/{surveyId}/analytics/distribution
func (h *AnalyticsHandler) Distribution(w http.ResponseWriter, r *http.Request) {
	surveyID := mux.Vars(r)["surveyId"]

	dist, err := h.analyticsSvc.Distribution(r.Context(), surveyID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dist)
}

// Bands handles GET /v1/surveys/{surveyId}/analytics/bands
func (h *AnalyticsHandler) Bands(w http.ResponseWriter, r *http.Request) {
	surveyID := mux.Vars(r)["surveyId"]

	bands, err := h.analyticsSvc.Bands(r.Context(), surveyID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, bands)
}

// Trend handles GET /v1/surveys/{surveyId}/analytics/trend
func (h *AnalyticsHandler) Trend(w http.ResponseWriter, r *http.Request) {
	surveyID := mux.Vars(r)["surveyId"]

	trend, err := h.analyticsSvc.Trend(r.Context(), surveyID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, trend)
}

// Segments handles GET /v1/surveys/{surveyId}/analytics/segments
func (h *AnalyticsHandler) Segments(w http.ResponseWriter, r *http.Request) {
	surveyID := mux.Vars(r)["surveyId"]

	segments, err := h.analyticsSvc.Segments(r.Context(), surveyID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, segments)
}
