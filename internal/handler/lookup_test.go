package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/ITSky-Solutions/call-center-dasboard/internal/domain"
	"github.com/ITSky-Solutions/call-center-dasboard/internal/handler"
	"github.com/ITSky-Solutions/call-center-dasboard/internal/minutes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRenderer(t *testing.T) *handler.Renderer {
	t.Helper()

	renderer, err := handler.NewRenderer("../../web/templates")
	require.NoError(t, err)
	return renderer
}

func postForm(t *testing.T, h http.HandlerFunc, values url.Values) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/lookup", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	h(w, req)
	return w
}

func TestLookupHandler_ShowForm(t *testing.T) {
	h := handler.NewLookupHandler(&minutes.Mock{}, newTestRenderer(t), nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	h.ShowForm(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `name="phone"`)
	assert.Contains(t, w.Body.String(), "Check Balance")
}

func TestLookupHandler_SubmitSuccess(t *testing.T) {
	mock := &minutes.Mock{
		LookupFunc: func(ctx context.Context, phone string) (minutes.BalanceRecord, error) {
			return minutes.BalanceRecord{"status": "Active", "minutes": 120.0}, nil
		},
	}
	h := handler.NewLookupHandler(mock, newTestRenderer(t), nil)

	w := postForm(t, h.HandleSubmit, url.Values{"phone": {"+44 (20) 9360-6060"}})

	assert.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, []string{"442093606060"}, mock.Calls, "submit strips non-digits before the lookup")

	body := w.Body.String()
	assert.Contains(t, body, "Active")
	assert.Contains(t, body, "&#34;minutes&#34;: 120")
	assert.NotContains(t, body, "alert", "no error card on success")
}

func TestLookupHandler_SubmitEmptyInput(t *testing.T) {
	mock := &minutes.Mock{}
	h := handler.NewLookupHandler(mock, newTestRenderer(t), nil)

	w := postForm(t, h.HandleSubmit, url.Values{"phone": {"   "}})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, mock.Calls, "empty input never reaches the service")
	assert.Contains(t, w.Body.String(), "Please enter a phone number")
}

func TestLookupHandler_SubmitErrorRendering(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		expectedMessage string
		expectRetry     bool
	}{
		{
			name:            "not found",
			err:             domain.Errorf(domain.ENOTFOUND, "minutes.lookup", "Phone number not found in our system"),
			expectedMessage: "Phone number not found in our system",
			expectRetry:     false,
		},
		{
			name:            "server",
			err:             domain.Errorf(domain.EINTERNAL, "minutes.lookup", "Server is experiencing issues. Please try again later."),
			expectedMessage: "Server is experiencing issues. Please try again later.",
			expectRetry:     false,
		},
		{
			name:            "network offers retry",
			err:             domain.Network(errors.New("refused"), "minutes.lookup", "Network connection failed. Please check your internet connection."),
			expectedMessage: "Network connection failed. Please check your internet connection.",
			expectRetry:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &minutes.Mock{
				LookupFunc: func(ctx context.Context, phone string) (minutes.BalanceRecord, error) {
					return nil, tt.err
				},
			}
			h := handler.NewLookupHandler(mock, newTestRenderer(t), nil)

			w := postForm(t, h.HandleSubmit, url.Values{"phone": {"555"}})

			assert.Equal(t, http.StatusOK, w.Code)
			body := w.Body.String()
			assert.Contains(t, body, tt.expectedMessage)
			if tt.expectRetry {
				assert.Contains(t, body, "Retry")
			} else {
				assert.NotContains(t, body, "Retry")
			}
		})
	}
}

func TestMinutesAPIHandler_Success(t *testing.T) {
	mock := &minutes.Mock{
		LookupFunc: func(ctx context.Context, phone string) (minutes.BalanceRecord, error) {
			return minutes.BalanceRecord{"status": "Active", "minutes": 42.0}, nil
		},
	}
	h := handler.NewMinutesAPIHandler(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/minutes/442093606060", nil)
	req.SetPathValue("phone", "442093606060")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &record))
	assert.Equal(t, "Active", record["status"])
	assert.Equal(t, float64(42), record["minutes"])
}

func TestMinutesAPIHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name             string
		err              error
		expectedStatus   int
		expectedCategory string
	}{
		{
			name:             "not found maps to 404",
			err:              domain.Errorf(domain.ENOTFOUND, "minutes.lookup", "Phone number not found in our system"),
			expectedStatus:   http.StatusNotFound,
			expectedCategory: domain.CategoryNotFound,
		},
		{
			name:             "network maps to 502",
			err:              domain.Network(errors.New("refused"), "minutes.lookup", "Network connection failed. Please check your internet connection."),
			expectedStatus:   http.StatusBadGateway,
			expectedCategory: domain.CategoryNetwork,
		},
		{
			name:             "server maps to 500",
			err:              domain.Errorf(domain.EINTERNAL, "minutes.lookup", "Service unavailable (Error 503)"),
			expectedStatus:   http.StatusInternalServerError,
			expectedCategory: domain.CategoryServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &minutes.Mock{
				LookupFunc: func(ctx context.Context, phone string) (minutes.BalanceRecord, error) {
					return nil, tt.err
				},
			}
			h := handler.NewMinutesAPIHandler(mock)

			req := httptest.NewRequest(http.MethodGet, "/api/minutes/555", nil)
			req.SetPathValue("phone", "555")
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var payload map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
			assert.Equal(t, tt.expectedCategory, payload["category"])
			assert.Equal(t, domain.ErrorMessage(tt.err), payload["error"])
		})
	}
}

func TestMinutesAPIHandler_EmptyPhone(t *testing.T) {
	mock := &minutes.Mock{}
	h := handler.NewMinutesAPIHandler(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/minutes/abc", nil)
	req.SetPathValue("phone", "abc")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, mock.Calls, "a phone with no digits never reaches the service")
}
