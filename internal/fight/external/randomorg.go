package external

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const defaultRandomOrgURL = "https://www.random.org/decimal-fractions/?num=1&dec=2&col=1&format=plain&rnd=new"

// RandomOrgClient fetches decimal fractions from random.org (no API key).
type RandomOrgClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewRandomOrgClient(baseURL string, httpClient *http.Client) *RandomOrgClient {
	if baseURL == "" {
		baseURL = defaultRandomOrgURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 5 * time.Second}
	}
	return &RandomOrgClient{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// Float64 fetches a single decimal fraction in [0, 1).
func (c *RandomOrgClient) Float64(ctx context.Context) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return 0, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("random.org request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return 0, fmt.Errorf("random.org non-200: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64))
	if err != nil {
		return 0, fmt.Errorf("read random.org response: %w", err)
	}

	raw := strings.TrimSpace(string(body))
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid random.org response %q: %w", raw, err)
	}
	return value, nil
}
