package contact

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// RequestTimeout caps how long a single contacts request may take.
const RequestTimeout = 10 * time.Second

// Fetcher retrieves the full contact list from a backend.
type Fetcher interface {
	FetchContacts(ctx context.Context) ([]Contact, error)
}

// HTTPFetcher implements Fetcher against a JSON endpoint. The endpoint is
// expected to answer GET with an array of {id, name, phone} objects.
type HTTPFetcher struct {
	endpoint string
	client   *http.Client
}

// NewHTTPFetcher creates a new fetcher for the given endpoint URL.
func NewHTTPFetcher(endpoint string) *HTTPFetcher {
	return &HTTPFetcher{
		endpoint: endpoint,
		client:   &http.Client{Timeout: RequestTimeout},
	}
}

// FetchContacts issues one GET request and maps the response body to
// contacts. Name and phone are copied verbatim; ids are coerced to strings.
// A non-2xx status yields an *HTTPError, anything else a *TransportError.
func (f *HTTPFetcher) FetchContacts(ctx context.Context) ([]Contact, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.endpoint, nil)
	if err != nil {
		return nil, &TransportError{Message: err.Error()}
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &TransportError{Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &HTTPError{Status: resp.StatusCode}
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()

	var wire []wireContact
	if err := dec.Decode(&wire); err != nil {
		return nil, &TransportError{Message: err.Error()}
	}

	contacts := make([]Contact, 0, len(wire))
	for _, w := range wire {
		contacts = append(contacts, Contact{
			ID:    coerceID(w.ID),
			Name:  w.Name,
			Phone: w.Phone,
		})
	}

	return contacts, nil
}
