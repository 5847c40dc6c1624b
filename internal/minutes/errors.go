package minutes

import "errors"

// Configuration errors returned by NewClient.
var (
	ErrMissingBaseURL = errors.New("minutes: base URL is required")
)
