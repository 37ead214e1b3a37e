package wordpress

import "fmt"

// RemoteRequestError is returned when WordPress cannot be reached or rejects the post.
// The remote status code is kept for logs only.
type RemoteRequestError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *RemoteRequestError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("%d %s for url: %s", e.StatusCode, statusText(e.StatusCode), e.URL)
}

func (e *RemoteRequestError) Unwrap() error {
	return e.Err
}
