// Package types defines the JSON envelopes every API response is wrapped in.
package types

// SuccessEnvelope carries a successful payload under the "data" key.
type SuccessEnvelope struct {
	Data any `json:"data"`
}

// ErrorEnvelope carries a failed response under the "error" key.
type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

// APIError is the client-facing shape of a failure. Details is present only
// for codes that allow exposing them.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}
