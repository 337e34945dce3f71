package utils

// ErrorResponse is the payload for failed store operations: a human-readable
// message plus the underlying error string. No machine-readable codes.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}
