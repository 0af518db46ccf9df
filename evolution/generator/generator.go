// Package generator produces evolution artwork from generation parameters.
package generator

import (
	"context"
	"fmt"
	"time"

	"elementalsouls.app/evolution/model"
)

const (
	ProviderComfy = "comfy"
	ProviderLocal = "local"

	DefaultTimeout = 90 * time.Second
)

type Image struct {
	Data     []byte
	MimeType string
	// Prompt is the final prompt the image was generated from.
	Prompt string
}

type Generator interface {
	Generate(ctx context.Context, params model.GenerationParams) (*Image, error)
}

type Config struct {
	Provider string
	ComfyURL string
	Timeout  time.Duration
}

func New(cfg Config) (Generator, error) {
	switch cfg.Provider {
	case ProviderComfy:
		if cfg.ComfyURL == "" {
			return nil, fmt.Errorf("comfy provider requires a url")
		}
		return NewComfyClient(cfg.ComfyURL, cfg.Timeout), nil
	case ProviderLocal, "":
		return NewLocal(), nil
	default:
		return nil, fmt.Errorf("unknown image provider %q", cfg.Provider)
	}
}
