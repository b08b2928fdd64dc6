package types

// ErrorPayload is the failure body returned by every endpoint: a short
// message, plus the underlying error text when the code allows details.
type ErrorPayload struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
	Details any    `json:"details,omitempty"`
}

// TokenResponse carries the bearer token issued by GET /jwt. The field is
// present (and empty) even on the forbidden path.
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
}

// MutationResult acknowledges a write without returning a resource body.
type MutationResult struct {
	Acknowledged  bool  `json:"acknowledged"`
	ModifiedCount int64 `json:"modifiedCount"`
}
