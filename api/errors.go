package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/PaesslerAG/jsonpath"
)

// Error is the only error kind returned by the Client.
//
// Message is ready for display. Status is the HTTP status of the response, or
// zero when no response was received.
type Error struct {
	Status  int
	Message string
	Err     error // underlying cause, if any
}

func newError(status int, msg string, err error) *Error {
	return &Error{Status: status, Message: fmt.Sprintf("%s: %v", msg, err), Err: err}
}

func (e *Error) Error() string { return e.Message }
func (e *Error) Unwrap() error { return e.Err }

// errorPath locates the message in the service's error bodies: {"error": "..."}.
const errorPath = "$.error"

// statusError builds the Error of a non-success response. The message is the
// body's error field when there is one, "<status> <status text>" otherwise.
func statusError(resp *http.Response, body []byte) *Error {
	if msg := errorMessage(body); msg != "" {
		return &Error{Status: resp.StatusCode, Message: msg}
	}
	status := resp.Status
	if status == "" {
		status = fmt.Sprintf("%d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}
	return &Error{Status: resp.StatusCode, Message: status}
}

// errorMessage extracts the error message of a JSON error body, or "".
func errorMessage(body []byte) string {
	var jobj any
	if err := json.Unmarshal(body, &jobj); err != nil {
		return ""
	}
	jval, err := jsonpath.Get(errorPath, jobj)
	if err != nil {
		return ""
	}
	msg, _ := jval.(string)
	return msg
}
