package generator

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"elementalsouls.app/evolution/model"
)

const comfyWorkflow = "elemental-soul-evolution"

var ErrEmptyResponse = errors.New("image provider returned no image")

// ComfyClient drives a ComfyUI gateway that runs the evolution workflow.
type ComfyClient struct {
	baseURL string
	http    *http.Client
}

func NewComfyClient(baseURL string, timeout time.Duration) *ComfyClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &ComfyClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type comfyRequest struct {
	Workflow       string          `json:"workflow"`
	Prompt         string          `json:"prompt"`
	NegativePrompt string          `json:"negativePrompt"`
	Mode           model.ImageMode `json:"mode"`
	BaseCID        string          `json:"baseCid,omitempty"`
	Strength       *float64        `json:"strength,omitempty"`
	Seed           *int64          `json:"seed,omitempty"`
}

type comfyResponse struct {
	Images []struct {
		Data     string `json:"data"`
		MimeType string `json:"mimeType"`
	} `json:"images"`
}

func (c *ComfyClient) Generate(ctx context.Context, params model.GenerationParams) (*Image, error) {
	prompt := BuildPrompt(params)

	body, err := json.Marshal(comfyRequest{
		Workflow:       comfyWorkflow,
		Prompt:         prompt,
		NegativePrompt: NegativePrompt,
		Mode:           params.Mode,
		BaseCID:        params.BaseImageRef,
		Strength:       ResolveStrength(params.Mode, params.Strength),
		Seed:           params.Seed,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/prompt", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("comfy request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("comfy request failed: status %d", resp.StatusCode)
	}

	var out comfyResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode comfy response: %w", err)
	}
	if len(out.Images) == 0 || out.Images[0].Data == "" {
		return nil, ErrEmptyResponse
	}

	data, err := base64.StdEncoding.DecodeString(out.Images[0].Data)
	if err != nil {
		return nil, fmt.Errorf("decode comfy image: %w", err)
	}

	mimeType := out.Images[0].MimeType
	if mimeType == "" {
		mimeType = "image/png"
	}

	return &Image{Data: data, MimeType: mimeType, Prompt: prompt}, nil
}
