package generator

import (
	"fmt"
	"strings"

	"elementalsouls.app/evolution/model"
)

const DefaultImg2ImgStrength = 0.65

const NegativePrompt = "text, watermark, deformed, extra limbs, low resolution, disfigured, cropped, frame"

var basePrompts = map[model.Element]string{
	model.ElementFire:  "A blazing fire elemental spirit surrounded by embers and molten lava",
	model.ElementWater: "A graceful water elemental spirit formed of shimmering tides and mist",
	model.ElementEarth: "A sturdy earth elemental spirit composed of mossy stone and crystals",
	model.ElementAir:   "An ethereal air elemental spirit swirling with clouds and astral lights",
}

var palettes = map[model.Element]string{
	model.ElementFire:  "warm orange, red and gold palette",
	model.ElementWater: "cool teal, blue and silver palette",
	model.ElementEarth: "earthy green, brown and amber palette",
	model.ElementAir:   "iridescent white, cyan and violet palette",
}

// BuildPrompt composes the element base, palette, level progression, mode
// hint and the caller's own prompt, in that order.
func BuildPrompt(params model.GenerationParams) string {
	hint := "dynamic pose"
	if params.Mode == model.ImageModeImg2Img {
		hint = "respect base composition"
	}

	parts := []string{
		basePrompts[params.Element],
		palettes[params.Element],
		fmt.Sprintf("level %d evolution, intricate sigils, cinematic lighting", params.ToLevel),
		hint,
		strings.TrimSpace(params.Prompt),
	}

	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, ", ")
}

// ResolveStrength returns nil for txt2img.
func ResolveStrength(mode model.ImageMode, strength *float64) *float64 {
	if mode != model.ImageModeImg2Img {
		return nil
	}
	if strength != nil {
		return strength
	}
	v := DefaultImg2ImgStrength
	return &v
}
