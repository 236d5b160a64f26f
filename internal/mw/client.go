package mw

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const maxBodySize = 4 << 20

// Client talks to the Merriam-Webster dictionary API and the public site
// endpoints used for autocomplete. Every call is a single attempt.
type Client struct {
	apiKey        string
	dictionaryURL string
	siteURL       string
	http          *http.Client
}

func NewClient(dictionaryURL, siteURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		apiKey:        apiKey,
		dictionaryURL: dictionaryURL,
		siteURL:       siteURL,
		http:          &http.Client{Timeout: timeout},
	}
}

// Lookup fetches every entry for term.
// Reference: GET /api/v3/references/collegiate/json/{word}?key=
func (c *Client) Lookup(ctx context.Context, term string) (LookupResult, error) {
	u := fmt.Sprintf("%s/%s?key=%s", c.dictionaryURL, url.PathEscape(term), url.QueryEscape(c.apiKey))
	body, err := c.get(ctx, "lookup", u)
	if err != nil {
		return nil, err
	}
	result, err := ParseLookup(body)
	if err != nil {
		return nil, &Error{Kind: ErrDecode, Endpoint: "lookup", Err: err}
	}
	return result, nil
}

// Autocomplete returns the raw suggestion list for a prefix, unfiltered.
func (c *Client) Autocomplete(ctx context.Context, prefix string) ([]Suggestion, error) {
	u := c.siteURL + "/lapi/v1/mwol-search/autocomplete?search=" + url.QueryEscape(prefix)
	body, err := c.get(ctx, "autocomplete", u)
	if err != nil {
		return nil, err
	}
	var resp autocompleteResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &Error{Kind: ErrDecode, Endpoint: "autocomplete", Err: err}
	}
	return resp.Docs, nil
}

// PopularTerms returns the site's current top lookups.
func (c *Client) PopularTerms(ctx context.Context) ([]string, error) {
	u := c.siteURL + "/lapi/v1/mwol-mp/get-lookups-data-homepage"
	body, err := c.get(ctx, "popular", u)
	if err != nil {
		return nil, err
	}
	var resp popularResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &Error{Kind: ErrDecode, Endpoint: "popular", Err: err}
	}
	return resp.Data.Words, nil
}

func (c *Client) get(ctx context.Context, endpoint, u string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, &Error{Kind: ErrTransport, Endpoint: endpoint, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &Error{Kind: ErrTransport, Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, &Error{Kind: ErrTransport, Endpoint: endpoint, Err: err}
	}
	if resp.StatusCode >= 400 {
		return nil, &Error{
			Kind:     ErrStatus,
			Endpoint: endpoint,
			Status:   resp.StatusCode,
			Err:      errors.New(truncateBody(body)),
		}
	}
	return body, nil
}

func truncateBody(b []byte) string {
	const max = 200
	if len(b) > max {
		return string(b[:max]) + "..."
	}
	return string(b)
}
