package lib

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"
)

// LivestreamClient is a thin passthrough to the livestream provider's REST
// API. Request and response shapes are owned by the provider; callers get
// the raw JSON back.
type LivestreamClient struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

var livestreamClient *LivestreamClient

func GetLivestreamClient() *LivestreamClient {
	if livestreamClient != nil {
		return livestreamClient
	}
	livestreamClient = &LivestreamClient{
		BaseURL: os.Getenv("LIVESTREAM_API_URL"),
		APIKey:  os.Getenv("LIVESTREAM_API_KEY"),
		Client:  &http.Client{Timeout: 30 * time.Second},
	}
	return livestreamClient
}

// NewLivestreamClient Replace livestream instance with custom client implementation
func NewLivestreamClient(c *LivestreamClient) *LivestreamClient {
	livestreamClient = c
	return livestreamClient
}

func (c *LivestreamClient) do(ctx context.Context, method string, path string, body []byte) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.APIKey))
	req.Header.Set("Content-Type", "application/json")
	res, err := c.Client.Do(req)
	if err != nil {
		log.Printf("[livestream] Error calling provider: %s\n", err.Error())
		return nil, err
	}
	defer res.Body.Close()
	resBytes, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}
	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("livestream provider returned %d: %s", res.StatusCode, string(resBytes))
	}
	return resBytes, nil
}

func (c *LivestreamClient) CreateStream(ctx context.Context, body []byte) ([]byte, error) {
	return c.do(ctx, http.MethodPost, "/streams", body)
}

func (c *LivestreamClient) ListStreams(ctx context.Context) ([]byte, error) {
	return c.do(ctx, http.MethodGet, "/streams", nil)
}

func (c *LivestreamClient) GetStream(ctx context.Context, id string) ([]byte, error) {
	return c.do(ctx, http.MethodGet, fmt.Sprintf("/streams/%s", id), nil)
}

func (c *LivestreamClient) DisableStream(ctx context.Context, id string) ([]byte, error) {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/streams/%s/disable", id), nil)
}
