package contextkeys

// contextKey is an unexported type for context keys to prevent collisions.
type contextKey string

const (
	// RequestID is the context key for the per-request correlation ID.
	RequestID contextKey = "requestID"
)
