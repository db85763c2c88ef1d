package clients

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	timeout     = 15 * time.Second
	userAgent   = "aescholar/1.0"
	maxBodySize = 1 << 20
)

var (
	ErrFailedCloseResponseBody = errors.New("failed close response body")
	ErrBodyTooLarge            = fmt.Errorf("response body exceeds %d bytes", maxBodySize)
)

// HTTPClientI is the outbound surface used for partner systems.
type HTTPClientI interface {
	Do(req *http.Request) (*http.Response, error)
	Get(ctx context.Context, url string, headers http.Header) (statusCode int, respBody []byte, respHeaders http.Header, err error)
}

type stdClient struct {
	client *http.Client
}

func (s *stdClient) Do(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", userAgent)
	}
	return s.client.Do(req)
}

// Get reads at most maxBodySize bytes. JSON is requested unless the caller
// sets its own Accept header.
func (s *stdClient) Get(ctx context.Context, url string, headers http.Header) (statusCode int, respBody []byte, respHeaders http.Header, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return 0, nil, nil, err
	}
	if headers != nil {
		req.Header = headers.Clone()
	}
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "application/json")
	}

	resp, err := s.Do(req)
	if err != nil {
		return 0, nil, nil, err
	}
	defer func() {
		if e := resp.Body.Close(); e != nil {
			err = errors.Join(err, ErrFailedCloseResponseBody)
		}
	}()

	respBody, err = io.ReadAll(io.LimitReader(resp.Body, maxBodySize+1))
	if err != nil {
		return 0, nil, nil, err
	}
	if len(respBody) > maxBodySize {
		return resp.StatusCode, nil, resp.Header, ErrBodyTooLarge
	}
	return resp.StatusCode, respBody, resp.Header, nil
}

// HTTPClient delegates to a swappable implementation so tests can stub the
// network.
type HTTPClient struct {
	client HTTPClientI
}

func NewHTTPClient() *HTTPClient {
	return &HTTPClient{client: &stdClient{client: &http.Client{Timeout: timeout}}}
}

func (h *HTTPClient) Get(ctx context.Context, url string, headers http.Header) (int, []byte, http.Header, error) {
	return h.client.Get(ctx, url, headers)
}

func (h *HTTPClient) Do(req *http.Request) (*http.Response, error) {
	return h.client.Do(req)
}

func (h *HTTPClient) SetClient(mock HTTPClientI) {
	h.client = mock
}
