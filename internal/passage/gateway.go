package passage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// DefaultBaseURL is the passage lookup host used by Gateway.
const DefaultBaseURL = "https://www.biblegateway.com"

const maxMarkupBytes = 4 << 20

// ErrPageTooLarge is returned instead of parsing a truncated page.
var ErrPageTooLarge = errors.New("passage page too large")

// HTTPError is returned for a non-200 passage response.
type HTTPError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("GET %s: HTTP %d: %s", e.URL, e.StatusCode, e.Status)
}

// Gateway fetches passage pages over HTTP. It is safe for concurrent use.
type Gateway struct {
	baseURL   string
	client    *http.Client
	userAgent string
	logger    *zap.Logger
}

// GatewayOption configures a Gateway.
type GatewayOption func(*Gateway)

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(c *http.Client) GatewayOption {
	return func(g *Gateway) { g.client = c }
}

// WithGatewayLogger sets the logger.
func WithGatewayLogger(l *zap.Logger) GatewayOption {
	return func(g *Gateway) { g.logger = l }
}

// NewGateway returns a fetcher for baseURL; each request is bounded by timeout.
func NewGateway(baseURL string, timeout time.Duration, opts ...GatewayOption) *Gateway {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	g := &Gateway{
		baseURL:   strings.TrimRight(baseURL, "/"),
		client:    &http.Client{Timeout: timeout},
		userAgent: "Mozilla/5.0 (compatible; biblevault/1.0)",
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// PassageURL returns the page URL for a reference and version.
func (g *Gateway) PassageURL(reference, version string) string {
	q := url.Values{}
	q.Set("search", reference)
	q.Set("version", version)
	return g.baseURL + "/passage/?" + q.Encode()
}

// FetchMarkup downloads the passage page for reference in version.
func (g *Gateway) FetchMarkup(ctx context.Context, reference, version string) (string, error) {
	u := g.PassageURL(reference, version)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", g.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")

	start := time.Now()
	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", u, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &HTTPError{URL: u, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxMarkupBytes+1))
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", u, err)
	}
	if len(body) > maxMarkupBytes {
		return "", fmt.Errorf("%w: %s exceeds %d bytes", ErrPageTooLarge, u, maxMarkupBytes)
	}
	g.logger.Debug("fetched passage",
		zap.String("reference", reference),
		zap.String("version", version),
		zap.Int("bytes", len(body)),
		zap.Duration("elapsed", time.Since(start)))
	return string(body), nil
}
