package minutes

import (
	"context"
	"encoding/json"
)

// Service defines the interface for minutes balance lookups.
// The production implementation calls the remote minutes API; use Mock
// in tests.
type Service interface {
	// Lookup fetches the minutes balance record for a digit-only phone
	// number. Failures carry a domain error code that classifies the
	// outcome (network, not found, server, invalid).
	Lookup(ctx context.Context, phone string) (BalanceRecord, error)
}

// BalanceRecord is the open key/value record returned by the minutes API
// on success. Beyond an optional "status" field its shape is owned by the
// remote service; all fields are passed through opaquely for display.
type BalanceRecord map[string]any

// Status returns the record's status field when present, else the
// literal "Success".
func (r BalanceRecord) Status() string {
	if s, ok := r["status"].(string); ok && s != "" {
		return s
	}
	return "Success"
}

// FormatJSON renders the full record as indented JSON for display.
func (r BalanceRecord) FormatJSON() string {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(data)
}
