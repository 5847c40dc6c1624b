package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ITSky-Solutions/call-center-dasboard/internal/domain"
	"github.com/ITSky-Solutions/call-center-dasboard/internal/lookup"
	"github.com/ITSky-Solutions/call-center-dasboard/internal/middleware"
	"github.com/ITSky-Solutions/call-center-dasboard/internal/minutes"
	"github.com/ITSky-Solutions/call-center-dasboard/internal/phone"
	"github.com/ITSky-Solutions/call-center-dasboard/internal/telemetry"
)

// LookupHandler serves the lookup form page and processes submits.
type LookupHandler struct {
	service  minutes.Service
	renderer *Renderer
	metrics  *telemetry.LookupMetrics
}

// NewLookupHandler creates a new lookup handler.
// metrics may be nil, in which case no lookup telemetry is recorded.
func NewLookupHandler(service minutes.Service, renderer *Renderer, metrics *telemetry.LookupMetrics) *LookupHandler {
	return &LookupHandler{
		service:  service,
		renderer: renderer,
		metrics:  metrics,
	}
}

// LookupPageData contains data for the lookup page template
type LookupPageData struct {
	Phone  string
	Result *ResultView
	Error  *ErrorView
}

// ResultView is the rendered form of a balance record.
type ResultView struct {
	Status string
	JSON   string
}

// ErrorView is the rendered form of a failed attempt.
type ErrorView struct {
	Category string
	Message  string
	CanRetry bool
}

// ShowForm handles GET / - displays the empty lookup form
func (h *LookupHandler) ShowForm(w http.ResponseWriter, r *http.Request) {
	h.renderer.RenderHTTP(w, "lookup", LookupPageData{})
}

// HandleSubmit handles POST /lookup - runs one lookup attempt and
// re-renders the page with the result or the classified error.
func (h *LookupHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := middleware.GetLogger(ctx)

	if err := r.ParseForm(); err != nil {
		logger.Error("lookup: failed to parse form", "error", err)
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	c := lookup.NewController(h.service)
	c.OnInputChange(r.FormValue("phone"))

	start := time.Now()
	state := c.Submit(ctx)
	elapsed := time.Since(start)

	data := LookupPageData{
		Phone: state.Phone,
	}

	switch {
	case state.Err != nil:
		logger.Warn("lookup attempt failed",
			"phone", state.Phone,
			"category", state.Err.Category,
		)
		data.Error = &ErrorView{
			Category: state.Err.Category,
			Message:  state.Err.Message,
			CanRetry: state.Err.Category == domain.CategoryNetwork,
		}
		h.recordOutcome(state, elapsed)

	case state.Result != nil:
		logger.Info("lookup attempt succeeded", "phone", state.Phone)
		data.Result = &ResultView{
			Status: state.Result.Status(),
			JSON:   state.Result.FormatJSON(),
		}
		h.recordOutcome(state, elapsed)
	}

	h.renderer.RenderHTTP(w, "lookup", data)
}

func (h *LookupHandler) recordOutcome(state lookup.State, elapsed time.Duration) {
	if h.metrics == nil {
		return
	}

	if state.Err != nil {
		// Rejected submits never left the process; keep them out of
		// the attempt duration histogram.
		if state.LatestAttempt == 0 {
			h.metrics.RejectedSubmits.Inc()
			return
		}
		h.metrics.ObserveAttempt(state.Err.Category, elapsed)
		return
	}
	h.metrics.ObserveAttempt(domain.CategoryNone, elapsed)
}

// MinutesAPIHandler exposes one lookup attempt as a JSON endpoint.
type MinutesAPIHandler struct {
	service minutes.Service
}

// NewMinutesAPIHandler creates a new JSON API handler.
func NewMinutesAPIHandler(service minutes.Service) *MinutesAPIHandler {
	return &MinutesAPIHandler{service: service}
}

// ServeHTTP handles GET /api/minutes/{phone}
func (h *MinutesAPIHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := middleware.GetLogger(ctx)

	digits := phone.Digits(r.PathValue("phone"))
	if digits == "" {
		writeError(w, domain.Invalid("api.minutes", "Please enter a phone number"))
		return
	}

	record, err := h.service.Lookup(ctx, digits)
	if err != nil {
		logger.Warn("api lookup failed", "phone", digits, "category", domain.Category(err))
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(record)
}

func writeError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(domain.ErrorStatus(err))
	json.NewEncoder(w).Encode(map[string]string{
		"error":    domain.ErrorMessage(err),
		"category": domain.Category(err),
	})
}
