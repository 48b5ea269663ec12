package gtfsrt

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// Client fetches GTFS-RT protobuf data from URLs or local files.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a new GTFS-RT client
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Fetch returns the raw protobuf bytes at urlOrPath.
// Anything that is not an http(s) URL is read as a local file.
func (c *Client) Fetch(urlOrPath string) ([]byte, error) {
	if urlOrPath == "" {
		return nil, fmt.Errorf("no feed given")
	}

	if !strings.HasPrefix(urlOrPath, "http://") && !strings.HasPrefix(urlOrPath, "https://") {
		return os.ReadFile(urlOrPath)
	}

	resp, err := c.httpClient.Get(urlOrPath)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", urlOrPath, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, urlOrPath)
	}

	return io.ReadAll(resp.Body)
}
