package minutes

import "context"

// Mock is a test implementation of Service.
type Mock struct {
	LookupFunc func(ctx context.Context, phone string) (BalanceRecord, error)

	// Calls records every phone number Lookup was invoked with.
	Calls []string
}

// Lookup delegates to the configured function or returns an empty record.
func (m *Mock) Lookup(ctx context.Context, phone string) (BalanceRecord, error) {
	m.Calls = append(m.Calls, phone)
	if m.LookupFunc != nil {
		return m.LookupFunc(ctx, phone)
	}
	return BalanceRecord{}, nil
}
