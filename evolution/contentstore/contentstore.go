// Package contentstore uploads immutable blobs to IPFS and returns their
// ipfs:// references.
package contentstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	Scheme = "ipfs://"

	DefaultMaxBytes = 8 << 20
	DefaultTimeout  = 60 * time.Second
)

var ErrPayloadTooLarge = errors.New("payload too large")

type Store interface {
	Put(ctx context.Context, data []byte, contentType string) (string, error)
	PutJSON(ctx context.Context, v any) (string, error)
}

type Config struct {
	Endpoint string
	Token    string
	MaxBytes int64
	Timeout  time.Duration
}

// Client uploads to a pinning service speaking the nft.storage upload API:
// POST the raw bytes, receive {"ok":true,"value":{"cid":"..."}}.
type Client struct {
	endpoint string
	token    string
	maxBytes int64
	http     *http.Client
}

func NewClient(cfg Config) *Client {
	if cfg.MaxBytes <= 0 {
		cfg.MaxBytes = DefaultMaxBytes
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &Client{
		endpoint: strings.TrimRight(cfg.Endpoint, "/"),
		token:    cfg.Token,
		maxBytes: cfg.MaxBytes,
		http:     &http.Client{Timeout: cfg.Timeout},
	}
}

type uploadResponse struct {
	OK    bool `json:"ok"`
	Value struct {
		CID string `json:"cid"`
	} `json:"value"`
	Error *struct {
		Name    string `json:"name"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (c *Client) Put(ctx context.Context, data []byte, contentType string) (string, error) {
	if int64(len(data)) > c.maxBytes {
		return "", fmt.Errorf("%w: %d bytes exceeds %d", ErrPayloadTooLarge, len(data), c.maxBytes)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/upload", bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("read upload response: %w", err)
	}
	if resp.StatusCode == http.StatusRequestEntityTooLarge {
		return "", ErrPayloadTooLarge
	}

	var out uploadResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("decode upload response (status %d): %w", resp.StatusCode, err)
	}
	if resp.StatusCode >= 300 || !out.OK || out.Value.CID == "" {
		if out.Error != nil {
			return "", fmt.Errorf("upload rejected (status %d): %s", resp.StatusCode, out.Error.Message)
		}
		return "", fmt.Errorf("upload rejected (status %d)", resp.StatusCode)
	}

	return Scheme + out.Value.CID, nil
}

func (c *Client) PutJSON(ctx context.Context, v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode json: %w", err)
	}
	return c.Put(ctx, data, "application/json")
}

// IsReference reports whether ref is an ipfs:// reference with a non-empty
// path.
func IsReference(ref string) bool {
	return strings.HasPrefix(ref, Scheme) && len(ref) > len(Scheme)
}
