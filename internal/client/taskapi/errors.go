package taskapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrUnauthorized matches any *APIError carrying HTTP 401.
var ErrUnauthorized = errors.New("unauthorized (taskapi)")

const defaultErrorMessage = "Erro na requisição"

// APIError is a non-2xx answer from the API.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Detail     string
	Message    string
	Body       []byte
}

func newAPIError(req *http.Request, status int, body []byte) *APIError {
	apiErr := &APIError{
		Method:     req.Method,
		Path:       req.URL.Path,
		StatusCode: status,
		Body:       body,
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return apiErr
	}
	apiErr.Detail = stringField(fields, "detail")
	apiErr.Message = stringField(fields, "message")
	if apiErr.Message == "" {
		// custom actions answer {"error": "..."}
		apiErr.Message = stringField(fields, "error")
	}
	return apiErr
}

func stringField(fields map[string]json.RawMessage, key string) string {
	raw, ok := fields[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

func (e *APIError) Error() string {
	msg := e.Detail
	if msg == "" {
		msg = e.Message
	}
	if msg == "" {
		return fmt.Sprintf("%s %s (taskapi): status %d", e.Method, e.Path, e.StatusCode)
	}
	return fmt.Sprintf("%s %s (taskapi): status %d: %s", e.Method, e.Path, e.StatusCode, msg)
}

func (e *APIError) Is(target error) bool {
	return target == ErrUnauthorized && e.StatusCode == http.StatusUnauthorized
}

// UserMessage is the text shown to the user for a failed call: the server's
// detail, then its message, then the transport error.
func UserMessage(err error) string {
	if err == nil {
		return defaultErrorMessage
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Detail != "":
			return apiErr.Detail
		case apiErr.Message != "":
			return apiErr.Message
		}
		return fmt.Sprintf("Request failed with status code %d", apiErr.StatusCode)
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return defaultErrorMessage
}
