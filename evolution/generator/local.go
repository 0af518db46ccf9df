package generator

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"elementalsouls.app/evolution/model"
)

var gradients = map[model.Element][2]string{
	model.ElementFire:  {"#ff6b6b", "#ffd93d"},
	model.ElementWater: {"#38bdf8", "#1d4ed8"},
	model.ElementEarth: {"#4ade80", "#16a34a"},
	model.ElementAir:   {"#c084fc", "#60a5fa"},
}

const svgTemplate = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 512 512">
  <defs>
    <linearGradient id="grad" x1="0%%" y1="0%%" x2="100%%" y2="100%%">
      <stop offset="0%%" stop-color="%s" />
      <stop offset="100%%" stop-color="%s" />
    </linearGradient>
  </defs>
  <rect width="512" height="512" fill="url(#grad)" />
  <text x="50%%" y="45%%" dominant-baseline="middle" text-anchor="middle" font-size="64" fill="#ffffff" font-family="Arial, Helvetica, sans-serif">%s</text>
  <text x="50%%" y="60%%" dominant-baseline="middle" text-anchor="middle" font-size="32" fill="#ffffff" font-family="Arial, Helvetica, sans-serif">Lv.%d</text>
  <text x="50%%" y="75%%" dominant-baseline="middle" text-anchor="middle" font-size="20" fill="#ffffff" opacity="0.6" font-family="monospace">%s</text>
</svg>`

// Local renders a gradient card per element. Output depends only on the
// parameters, so it is usable in development and tests without a model.
type Local struct{}

func NewLocal() *Local { return &Local{} }

func (l *Local) Generate(ctx context.Context, params model.GenerationParams) (*Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	colors, ok := gradients[params.Element]
	if !ok {
		return nil, fmt.Errorf("unknown element %q", params.Element)
	}

	prompt := BuildPrompt(params)
	var seed int64
	if params.Seed != nil {
		seed = *params.Seed
	}
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s|%d|%s", prompt, seed, params.BaseImageRef)))
	tag := hex.EncodeToString(sum[:4])

	svg := fmt.Sprintf(svgTemplate, colors[0], colors[1], params.Element, params.ToLevel, tag)
	return &Image{Data: []byte(svg), MimeType: "image/svg+xml", Prompt: prompt}, nil
}
