package portal

import "fmt"

// APIError is a backend response with a non-success status code. Message
// holds the best text the response offered: a structured message or detail
// field when present, the HTTP status text otherwise.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (%d): %s", e.StatusCode, e.Message)
}

// AuthError is a failed login or signup. Message carries the server's own
// wording when it supplied any; Err holds the underlying transport or API
// failure when the credentials never got a verdict.
type AuthError struct {
	Message string
	Err     error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// ValidationError is a local field check that failed before any request was
// made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
