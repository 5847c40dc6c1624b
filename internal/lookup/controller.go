package lookup

import (
	"context"
	"strings"
	"sync"

	"github.com/ITSky-Solutions/call-center-dasboard/internal/domain"
	"github.com/ITSky-Solutions/call-center-dasboard/internal/minutes"
)

const msgEmptyInput = "Please enter a phone number"

// Controller drives the lookup form: it owns the State, feeds events
// through Reduce, and runs attempts against a minutes.Service. Safe for
// concurrent use.
type Controller struct {
	mu      sync.Mutex
	state   State
	service minutes.Service
	nextID  uint64
}

// NewController creates a controller in the idle state.
func NewController(service minutes.Service) *Controller {
	return &Controller{service: service}
}

// State returns a snapshot of the current form state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// OnInputChange handles an edit of the phone field: non-digit characters
// are stripped and any visible error is dismissed. A visible result
// stays on screen.
func (c *Controller) OnInputChange(raw string) State {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = Reduce(c.state, InputChanged{Raw: raw})
	return c.state
}

// DismissError clears the error descriptor only.
func (c *Controller) DismissError() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = Reduce(c.state, ErrorDismissed{})
	return c.state
}

// Submit runs one lookup attempt with the stored phone number. While an
// attempt is in flight further submits are ignored (the submit control
// is disabled during loading). An empty input is rejected without a
// network call.
func (c *Controller) Submit(ctx context.Context) State {
	c.mu.Lock()
	if c.state.Loading {
		s := c.state
		c.mu.Unlock()
		return s
	}

	if strings.TrimSpace(c.state.Phone) == "" {
		c.state = Reduce(c.state, SubmitRejected{Message: msgEmptyInput})
		s := c.state
		c.mu.Unlock()
		return s
	}

	c.nextID++
	id := c.nextID
	phone := c.state.Phone
	c.state = Reduce(c.state, AttemptStarted{ID: id})
	c.mu.Unlock()

	record, err := c.service.Lookup(ctx, phone)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.state = Reduce(c.state, AttemptFailed{
			ID:       id,
			Category: domain.Category(err),
			Message:  domain.ErrorMessage(err),
		})
	} else {
		c.state = Reduce(c.state, AttemptSucceeded{ID: id, Record: record})
	}
	return c.state
}

// Retry re-runs the lookup after a network failure. It is a no-op for
// every other error category and for an empty input.
func (c *Controller) Retry(ctx context.Context) State {
	c.mu.Lock()
	retryable := c.state.Err != nil &&
		c.state.Err.Category == domain.CategoryNetwork &&
		c.state.Phone != ""
	c.mu.Unlock()

	if !retryable {
		return c.State()
	}
	return c.Submit(ctx)
}
