package constant

type contextKey string

const (
	RequestIDKey contextKey = "request_id"
)

const RequestIDHeader = "X-Request-ID"
