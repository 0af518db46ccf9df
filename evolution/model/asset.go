package model

import (
	"encoding/json"
	"time"
)

type Element string

const (
	ElementFire  Element = "Fire"
	ElementWater Element = "Water"
	ElementEarth Element = "Earth"
	ElementAir   Element = "Air"
)

// Valid reports whether e is one of the four known elements.
func (e Element) Valid() bool {
	switch e {
	case ElementFire, ElementWater, ElementEarth, ElementAir:
		return true
	}
	return false
}

// Attribute is a single metadata trait. Value holds a raw JSON string, number or boolean.
type Attribute struct {
	TraitType string          `json:"trait_type" validate:"required,max=64"`
	Value     json.RawMessage `json:"value"`
}

// Metadata is the document stored in the content store and referenced by the ledger record.
type Metadata struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Image       string      `json:"image"`
	Attributes  []Attribute `json:"attributes"`
}

// AssetSnapshot is the locally cached view of a ledger record.
type AssetSnapshot struct {
	AssetID    uint64      `json:"asset_id"`
	Owner      string      `json:"owner"`
	Level      int         `json:"level"`
	Element    Element     `json:"element"`
	URI        string      `json:"uri"`
	ImageRef   string      `json:"image_ref,omitempty"`
	Attributes []Attribute `json:"attributes,omitempty"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// MetadataDraft is provisional metadata waiting for its ledger mutation to land.
type MetadataDraft struct {
	URI        string      `json:"uri"`
	AssetID    uint64      `json:"asset_id"`
	Element    Element     `json:"element"`
	Level      int         `json:"level"`
	ImageRef   string      `json:"image_ref"`
	Attributes []Attribute `json:"attributes"`
	CreatedAt  time.Time   `json:"created_at"`
}
