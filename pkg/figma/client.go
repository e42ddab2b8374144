package figma

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"
)

const (
	figmaAPIBase = "https://api.figma.com/v1"
)

// Client represents a Figma API client with configured HTTP settings for reliable
// communication with the Figma API. It includes retry logic and optimized transport
// settings for handling large files.
type Client struct {
	accessToken string
	baseURL     string
	httpClient  *http.Client
}

// NewClient creates a new Figma API client with the provided personal access token.
// The client is configured with optimized HTTP transport settings including connection pooling,
// disabled HTTP/2 (for large file stability), and a 10-minute timeout for very large files.
func NewClient(accessToken string) *Client {
	transport := &http.Transport{
		MaxIdleConns:        10,
		IdleConnTimeout:     90 * time.Second,
		DisableCompression:  false,
		DisableKeepAlives:   false,
		MaxIdleConnsPerHost: 10,
		// Disable HTTP/2 to avoid stream errors with large files
		ForceAttemptHTTP2: false,
	}

	return &Client{
		accessToken: accessToken,
		baseURL:     figmaAPIBase,
		httpClient: &http.Client{
			Timeout:   10 * time.Minute, // very large documents take a while
			Transport: transport,
		},
	}
}

// ExtractFileKey extracts the unique file identifier from a Figma URL.
// Supports both /file/ and /design/ URL patterns (e.g., figma.com/file/ABC123/Design-Name).
// Returns an error if the URL format is invalid or if the URL doesn't match the expected
// Figma domain pattern.
func ExtractFileKey(figmaURL string) (string, error) {
	// Match patterns like:
	// https://www.figma.com/file/ABC123/Design-Name
	// https://www.figma.com/design/ABC123/Design-Name
	// Anchored to ensure the entire URL matches the expected pattern and prevent bypass attacks.
	re := regexp.MustCompile(`^https?://(?:www\.)?figma\.com/(?:file|design)/([A-Za-z0-9]+)(?:/|$)`)
	matches := re.FindStringSubmatch(figmaURL)

	if len(matches) < 2 {
		return "", fmt.Errorf("invalid Figma URL format: must be a valid figma.com URL with /file/ or /design/ path")
	}

	return matches[1], nil
}

// ExtractNodeIDs extracts node IDs from a Figma URL. It understands the node-id
// query parameter (with Figma's URL form "11933-305884" normalized to the API
// form "11933:305884"), hash fragments, and /nodes/ path segments. Duplicates
// are removed while preserving order. Returns an empty slice when the URL
// carries no node IDs.
func ExtractNodeIDs(figmaURL string) ([]string, error) {
	u, err := url.Parse(figmaURL)
	if err != nil {
		return nil, fmt.Errorf("invalid URL: %w", err)
	}

	raw := u.Query().Get("node-id")
	if raw == "" {
		raw = u.Fragment
	}
	if raw == "" {
		if idx := strings.Index(u.Path, "/nodes/"); idx >= 0 {
			raw = u.Path[idx+len("/nodes/"):]
		}
	}

	ids := []string{}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		// Figma URLs encode the node ID separator as "-"; the API wants ":".
		ids = append(ids, strings.ReplaceAll(part, "-", ":"))
	}

	return deduplicateNodeIDs(ids), nil
}

// deduplicateNodeIDs removes duplicate IDs while preserving first-seen order.
func deduplicateNodeIDs(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	result := make([]string, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		result = append(result, id)
	}
	return result
}

// GetFile retrieves complete file data from the Figma API including the document tree,
// styles, and metadata. Implements automatic retry logic (up to 3 attempts) with
// backoff for handling rate limits and temporary failures.
func (c *Client) GetFile(fileKey string) (*FileResponse, error) {
	endpoint := fmt.Sprintf("%s/files/%s", c.baseURL, fileKey)

	var fileResp FileResponse
	if err := c.getJSON(endpoint, &fileResp); err != nil {
		return nil, err
	}
	return &fileResp, nil
}

// GetFileNodes retrieves specific nodes from a Figma file by their IDs.
// This is more efficient than GetFile when only a few frames or components are needed.
func (c *Client) GetFileNodes(fileKey string, nodeIDs []string) (*NodesResponse, error) {
	endpoint := fmt.Sprintf("%s/files/%s/nodes?ids=%s", c.baseURL, fileKey,
		url.QueryEscape(strings.Join(nodeIDs, ",")))

	var nodesResp NodesResponse
	if err := c.getJSON(endpoint, &nodesResp); err != nil {
		return nil, err
	}
	return &nodesResp, nil
}

// getJSON performs an authenticated GET against the Figma API and decodes the
// JSON response into v. Requests are retried up to 3 times with linear backoff
// on transport errors, 429 (rate limit), and 5xx responses.
func (c *Client) getJSON(endpoint string, v any) error {
	var lastErr error
	maxRetries := 3

	for attempt := 1; attempt <= maxRetries; attempt++ {
		req, err := http.NewRequest(http.MethodGet, endpoint, nil)
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}

		req.Header.Set("X-Figma-Token", c.accessToken)
		// Disable HTTP/2 to avoid stream errors with large files
		req.Header.Set("Connection", "close")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("attempt %d failed to execute request: %w", attempt, err)
			if attempt < maxRetries {
				time.Sleep(time.Duration(attempt) * 2 * time.Second)
				continue
			}
			return lastErr
		}

		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			lastErr = fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
			if attempt < maxRetries && (resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500) {
				time.Sleep(time.Duration(attempt) * 2 * time.Second)
				continue
			}
			return lastErr
		}

		if readErr != nil {
			lastErr = fmt.Errorf("attempt %d failed to read response body: %w", attempt, readErr)
			if attempt < maxRetries {
				time.Sleep(time.Duration(attempt) * 2 * time.Second)
				continue
			}
			return lastErr
		}

		if err := json.Unmarshal(body, v); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
		return nil
	}

	return lastErr
}
