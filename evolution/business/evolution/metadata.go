package evolution

import (
	"encoding/json"
	"fmt"
	"strconv"

	"elementalsouls.app/evolution/model"
)

const (
	TraitElement = "Element"
	TraitLevel   = "Level"

	metadataDescription = "ElementalSoul evolved via the ElementalSouls gateway. Generated image hosted on IPFS."
)

// RequiredAttributes are the traits the service owns. Callers cannot override them.
func RequiredAttributes(element model.Element, level int) []model.Attribute {
	encodedElement, _ := json.Marshal(string(element))
	return []model.Attribute{
		{TraitType: TraitElement, Value: encodedElement},
		{TraitType: TraitLevel, Value: json.RawMessage(strconv.Itoa(level))},
	}
}

// MergeAttributes layers extra onto the required traits. A required trait
// always wins over an extra one with the same name, and the first occurrence
// of a duplicated extra trait is kept.
func MergeAttributes(required, extra []model.Attribute) []model.Attribute {
	merged := make([]model.Attribute, 0, len(required)+len(extra))
	seen := make(map[string]bool, len(required)+len(extra))

	for _, attr := range required {
		merged = append(merged, attr)
		seen[attr.TraitType] = true
	}
	for _, attr := range extra {
		if seen[attr.TraitType] {
			continue
		}
		merged = append(merged, attr)
		seen[attr.TraitType] = true
	}
	return merged
}

func BuildMetadata(element model.Element, level int, imageRef string, extra []model.Attribute) model.Metadata {
	return model.Metadata{
		Name:        fmt.Sprintf("Elemental Soul Lv.%d (%s)", level, element),
		Description: metadataDescription,
		Image:       imageRef,
		Attributes:  MergeAttributes(RequiredAttributes(element, level), extra),
	}
}

// elementAttribute returns the element named by a string Element trait, if any.
func elementAttribute(attrs []model.Attribute) (model.Element, bool) {
	for _, attr := range attrs {
		if attr.TraitType != TraitElement {
			continue
		}
		var value string
		if err := json.Unmarshal(attr.Value, &value); err != nil {
			return "", false
		}
		return model.Element(value), true
	}
	return "", false
}
