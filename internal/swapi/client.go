package swapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"planetarium/internal/validation"
)

const userAgent = "Planetarium-Crawler/1.0"

// Client performs typed GET requests against the remote catalog.
// It never retries; recovery is the caller's decision.
type Client struct {
	client *http.Client
}

// NewClient creates a catalog client with the given request timeout.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		client: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return errors.New("too many redirects")
				}
				return nil
			},
		},
	}
}

// FetchPage retrieves and parses one catalog page.
func (c *Client) FetchPage(ctx context.Context, url string) (*Page, error) {
	var page Page
	if err := c.getJSON(ctx, url, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// FetchResidentName retrieves a resident record and returns its display
// name. A missing or empty name field is a failure.
func (c *Client) FetchResidentName(ctx context.Context, url string) (string, error) {
	var p person
	if err := c.getJSON(ctx, url, &p); err != nil {
		return "", err
	}
	if p.Name == "" {
		return "", &FetchError{URL: url, Err: errors.New("response has no name field")}
	}
	return p.Name, nil
}

// getJSON issues a GET and decodes the JSON body into out.
func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	if valid, msg := validation.ValidateFetchURL(url); !valid {
		return &FetchError{URL: url, Err: errors.New(msg)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &FetchError{URL: url, Err: err}
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &FetchError{URL: url, Status: resp.Status}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &FetchError{URL: url, Err: err}
	}
	return nil
}
