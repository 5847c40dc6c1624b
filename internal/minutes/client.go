package minutes

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ITSky-Solutions/call-center-dasboard/internal/domain"
)

// User-facing messages for each classification bucket. The UI renders
// these verbatim, so wording changes are user-visible.
const (
	msgNotFound     = "Phone number not found in our system"
	msgServerDown   = "Server is experiencing issues. Please try again later."
	msgBadRequest   = "Invalid phone number format"
	msgNetworkDown  = "Network connection failed. Please check your internet connection."
	msgUnexpected   = "Something went wrong. Please try again."
	msgUnavailable  = "Service unavailable (Error %d)"
	lookupPathTmpl  = "/api/utils/minutes/%s"
	lookupOperation = "minutes.lookup"
)

// Client implements Service against the remote minutes API.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

// ClientConfig contains configuration for the minutes API client.
type ClientConfig struct {
	// BaseURL is the scheme and host of the minutes API.
	BaseURL string

	// Timeout bounds each request. Zero leaves the transport defaults
	// in place.
	Timeout time.Duration

	// HTTPClient overrides the underlying client (used in tests).
	HTTPClient *http.Client

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// NewClient creates a new minutes API client.
func NewClient(cfg ClientConfig) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, ErrMissingBaseURL
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &Client{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		http:    httpClient,
		logger:  logger,
	}, nil
}

// Lookup fetches the balance record for one phone number and classifies
// the outcome. Transport failures (DNS, refused connection, timeouts) are
// distinguished from HTTP-level failures by where the error surfaces: an
// error from the transport never carries an HTTP status, so it is
// classified as a network failure without inspecting message text.
func (c *Client) Lookup(ctx context.Context, phone string) (BalanceRecord, error) {
	if phone == "" {
		return nil, domain.Invalid(lookupOperation, msgBadRequest)
	}

	logger := c.logger.With("phone", phone)

	endpoint := c.baseURL + fmt.Sprintf(lookupPathTmpl, url.PathEscape(phone))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, domain.Internal(err, lookupOperation, msgUnexpected)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		logger.Error("lookup transport failure", "error", err)
		return nil, domain.Network(err, lookupOperation, msgNetworkDown)
	}
	defer resp.Body.Close()

	if err := classifyStatus(resp.StatusCode); err != nil {
		logger.Warn("lookup rejected by upstream", "status", resp.StatusCode)
		return nil, err
	}

	var record BalanceRecord
	if err := json.NewDecoder(resp.Body).Decode(&record); err != nil {
		logger.Error("lookup response decode failed", "error", err)
		return nil, domain.Internal(err, lookupOperation, msgUnexpected)
	}

	logger.Info("lookup succeeded", "status", record.Status())
	return record, nil
}

// classifyStatus maps a non-2xx HTTP status onto a domain error.
// Order matters: 404, 500 and 400 are specific buckets; any other
// non-2xx (including 502/503) falls through to a generic unavailable
// message carrying the status code.
func classifyStatus(status int) error {
	if status >= 200 && status < 300 {
		return nil
	}

	switch status {
	case http.StatusNotFound:
		return domain.Errorf(domain.ENOTFOUND, lookupOperation, msgNotFound)
	case http.StatusInternalServerError:
		return domain.Errorf(domain.EINTERNAL, lookupOperation, msgServerDown)
	case http.StatusBadRequest:
		return domain.Errorf(domain.EINVALID, lookupOperation, msgBadRequest)
	default:
		return domain.Errorf(domain.EINTERNAL, lookupOperation, msgUnavailable, status)
	}
}
