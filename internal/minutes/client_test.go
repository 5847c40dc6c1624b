package minutes_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ITSky-Solutions/call-center-dasboard/internal/domain"
	"github.com/ITSky-Solutions/call-center-dasboard/internal/minutes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*minutes.Client, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := minutes.NewClient(minutes.ClientConfig{
		BaseURL:    srv.URL,
		HTTPClient: srv.Client(),
	})
	require.NoError(t, err)

	return client, srv
}

func TestClient_Lookup_Success(t *testing.T) {
	var gotPath string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"Active","minutes":120,"plan":"monthly"}`))
	})

	record, err := client.Lookup(context.Background(), "442093606060")

	require.NoError(t, err)
	assert.Equal(t, "/api/utils/minutes/442093606060", gotPath)
	assert.Equal(t, "Active", record.Status())
	assert.Equal(t, float64(120), record["minutes"])
	assert.Equal(t, "monthly", record["plan"])
}

func TestClient_Lookup_StatusDefaultsToSuccess(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"minutes":5}`))
	})

	record, err := client.Lookup(context.Background(), "555")

	require.NoError(t, err)
	assert.Equal(t, "Success", record.Status(), "missing status field falls back to the literal Success")
}

func TestClient_Lookup_Classification(t *testing.T) {
	tests := []struct {
		name             string
		status           int
		expectedCategory string
		expectedMessage  string
	}{
		{
			name:             "404 is not found",
			status:           http.StatusNotFound,
			expectedCategory: domain.CategoryNotFound,
			expectedMessage:  "Phone number not found in our system",
		},
		{
			name:             "500 is server trouble",
			status:           http.StatusInternalServerError,
			expectedCategory: domain.CategoryServer,
			expectedMessage:  "Server is experiencing issues. Please try again later.",
		},
		{
			name:             "400 is invalid input",
			status:           http.StatusBadRequest,
			expectedCategory: domain.CategoryInvalid,
			expectedMessage:  "Invalid phone number format",
		},
		{
			name:             "503 carries the status code",
			status:           http.StatusServiceUnavailable,
			expectedCategory: domain.CategoryServer,
			expectedMessage:  "Service unavailable (Error 503)",
		},
		{
			name:             "418 carries the status code",
			status:           http.StatusTeapot,
			expectedCategory: domain.CategoryServer,
			expectedMessage:  "Service unavailable (Error 418)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})

			record, err := client.Lookup(context.Background(), "442093606060")

			require.Error(t, err)
			assert.Nil(t, record)
			assert.Equal(t, tt.expectedCategory, domain.Category(err))
			assert.Equal(t, tt.expectedMessage, domain.ErrorMessage(err))
		})
	}
}

func TestClient_Lookup_TransportFailureIsNetwork(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := srv.URL
	srv.Close() // connection refused from here on

	client, err := minutes.NewClient(minutes.ClientConfig{BaseURL: baseURL})
	require.NoError(t, err)

	record, err := client.Lookup(context.Background(), "442093606060")

	require.Error(t, err)
	assert.Nil(t, record)
	assert.Equal(t, domain.CategoryNetwork, domain.Category(err))
	assert.Equal(t, "Network connection failed. Please check your internet connection.", domain.ErrorMessage(err))
}

func TestClient_Lookup_ContextCancellationIsNetwork(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{}`))
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := client.Lookup(ctx, "442093606060")

	require.Error(t, err)
	assert.Equal(t, domain.CategoryNetwork, domain.Category(err))
}

func TestClient_Lookup_MalformedBodyIsServer(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json at all`))
	})

	record, err := client.Lookup(context.Background(), "442093606060")

	require.Error(t, err)
	assert.Nil(t, record)
	assert.Equal(t, domain.CategoryServer, domain.Category(err))
	assert.Equal(t, "Something went wrong. Please try again.", domain.ErrorMessage(err))
}

func TestClient_Lookup_EmptyPhoneIsInvalid(t *testing.T) {
	called := false
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	_, err := client.Lookup(context.Background(), "")

	require.Error(t, err)
	assert.False(t, called, "empty phone must not reach the network")
	assert.Equal(t, domain.CategoryInvalid, domain.Category(err))
}

func TestNewClient_RequiresBaseURL(t *testing.T) {
	_, err := minutes.NewClient(minutes.ClientConfig{})
	assert.ErrorIs(t, err, minutes.ErrMissingBaseURL)
}

func TestBalanceRecord_FormatJSON(t *testing.T) {
	record := minutes.BalanceRecord{"status": "Active", "minutes": 42}

	formatted := record.FormatJSON()

	assert.Contains(t, formatted, `"status": "Active"`)
	assert.Contains(t, formatted, `"minutes": 42`)
}
