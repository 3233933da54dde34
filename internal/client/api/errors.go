package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// StatusError reports a non-2xx backend response. Detail carries the
// backend's {"detail": ...} message when one was present, so callers can
// surface it to the user verbatim.
type StatusError struct {
	Code   int
	Detail string
}

func (e *StatusError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("backend returned %d: %s", e.Code, e.Detail)
	}
	return fmt.Sprintf("backend returned %d", e.Code)
}

// newStatusError builds a StatusError from resp, extracting the "detail"
// field the backend uses for error messages. The body is consumed; a
// non-JSON body just yields an empty Detail.
func newStatusError(resp *http.Response) error {
	e := &StatusError{Code: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return e
	}

	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		e.Detail = payload.Detail
	}
	return e
}
