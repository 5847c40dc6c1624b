package middleware

// contextKey is a private type for context keys defined in this package.
// Using a dedicated type prevents collisions with keys set elsewhere.
type contextKey string
