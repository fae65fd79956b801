package fetch

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"presswatch/internal/config"

	"github.com/PuerkitoBio/goquery"
)

// Client fetches list pages with a browser-like header set and a fixed
// timeout. It is shared by all press adapters.
type Client struct {
	http           *http.Client
	userAgent      string
	accept         string
	acceptLanguage string
}

func NewClient(cfg config.HTTPConfig) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		http:           &http.Client{Timeout: timeout},
		userAgent:      cfg.UserAgent,
		accept:         cfg.Accept,
		acceptLanguage: cfg.AcceptLanguage,
	}
}

// Document GETs a URL and parses the response body as HTML.
func (c *Client) Document(ctx context.Context, rawURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if c.accept != "" {
		req.Header.Set("Accept", c.accept)
	}
	if c.acceptLanguage != "" {
		req.Header.Set("Accept-Language", c.acceptLanguage)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetch %s: status %d", rawURL, resp.StatusCode)
	}
	return goquery.NewDocumentFromReader(resp.Body)
}
