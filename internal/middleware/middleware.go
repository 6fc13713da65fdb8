package middleware

// contextKey is a private type for request context keys, preventing
// collisions with keys set by other packages.
type contextKey string
