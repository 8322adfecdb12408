package errors

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "AUTH_FAILED"
	Details string `json:"details,omitempty"` // Detailed error information (optional)
}

// Response is the error half of the unified API envelope, shared with the
// HTTP error handler so boundary errors render the same shape as handler
// responses.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Error   *ErrorInfo `json:"error,omitempty"`
}
