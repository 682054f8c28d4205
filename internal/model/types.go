package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// ItemType enumerates the kinds of listings the marketplace supports.
type ItemType string

const (
	ItemTypeBuy  ItemType = "BUY"
	ItemTypeSell ItemType = "SELL"
	ItemTypeRent ItemType = "RENT"
)

// Valid reports whether the item type is one of the known variants.
func (t ItemType) Valid() bool {
	switch t {
	case ItemTypeBuy, ItemTypeSell, ItemTypeRent:
		return true
	}
	return false
}

// Coordinates is a geographic point stored as a JSON column.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// LocationInfo describes where an item is located and who to contact about it.
type LocationInfo struct {
	Address     string       `json:"address,omitempty"`
	Description string       `json:"description,omitempty"`
	Email       string       `json:"email,omitempty"`
	Phone       string       `json:"phone,omitempty"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

// Metadata carries the structured free-form details of an item.
type Metadata struct {
	LocationInfo LocationInfo `json:"locationInfo"`
	Amount       *int         `json:"amount,omitempty"`
}

// ItemProperty is a single key/value pair attached to an item.
type ItemProperty struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// CategoryProperty is a property template a category prescribes for its items.
type CategoryProperty struct {
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
}

// ItemProperties is a list of item properties persisted as a JSON column.
type ItemProperties []ItemProperty

// CategoryProperties is a list of category properties persisted as a JSON column.
type CategoryProperties []CategoryProperty

// Value serializes metadata for storage.
func (m Metadata) Value() (driver.Value, error) {
	return jsonValue(m)
}

// Scan deserializes metadata from storage.
func (m *Metadata) Scan(src interface{}) error {
	return jsonScan(src, m)
}

// Value serializes coordinates for storage.
func (c Coordinates) Value() (driver.Value, error) {
	return jsonValue(c)
}

// Scan deserializes coordinates from storage.
func (c *Coordinates) Scan(src interface{}) error {
	return jsonScan(src, c)
}

// Value serializes item properties for storage.
func (p ItemProperties) Value() (driver.Value, error) {
	if p == nil {
		return nil, nil
	}
	return jsonValue(p)
}

// Scan deserializes item properties from storage.
func (p *ItemProperties) Scan(src interface{}) error {
	return jsonScan(src, p)
}

// Value serializes category properties for storage.
func (p CategoryProperties) Value() (driver.Value, error) {
	if p == nil {
		return nil, nil
	}
	return jsonValue(p)
}

// Scan deserializes category properties from storage.
func (p *CategoryProperties) Scan(src interface{}) error {
	return jsonScan(src, p)
}

func jsonValue(v interface{}) (driver.Value, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func jsonScan(src, dst interface{}) error {
	if src == nil {
		return nil
	}
	switch data := src.(type) {
	case []byte:
		if len(data) == 0 {
			return nil
		}
		return json.Unmarshal(data, dst)
	case string:
		if data == "" {
			return nil
		}
		return json.Unmarshal([]byte(data), dst)
	default:
		return fmt.Errorf("unsupported column type %T", src)
	}
}
