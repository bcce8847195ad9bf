package contact

import "fmt"

// HTTPError indicates the contacts endpoint answered with a non-2xx status.
type HTTPError struct {
	Status int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("contacts endpoint returned status %d", e.Status)
}

// TransportError indicates the request never produced a parseable response,
// either because the connection failed or because the body was not valid JSON.
type TransportError struct {
	Message string
}

func (e *TransportError) Error() string {
	return "contacts request failed: " + e.Message
}
