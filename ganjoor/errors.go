package ganjoor

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// ErrNotLoggedIn is returned, without any network call, by operations that need a
// bearer token when the client has none.
var ErrNotLoggedIn = errors.New("ganjoor: user is not logged in")

// RemoteRequestError reports a remote call that did not answer 200 OK.
// Every non-200 status maps to this one kind.
type RemoteRequestError struct {
	Method     string
	Path       string
	StatusCode int
	Reason     string
}

func (e *RemoteRequestError) Error() string {
	return fmt.Sprintf("ganjoor: %s %s returned status %d: %s", e.Method, e.Path, e.StatusCode, e.Reason)
}

// IsNotFound reports whether err is a RemoteRequestError with status 404.
func IsNotFound(err error) bool {
	var remote *RemoteRequestError
	return errors.As(err, &remote) && remote.StatusCode == http.StatusNotFound
}

// reasonPhrase extracts the reason phrase the server put on the status line.
func reasonPhrase(resp *http.Response) string {
	reason := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if reason == "" {
		reason = http.StatusText(resp.StatusCode)
	}
	return reason
}
