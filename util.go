package cssbuilder

import (
	"encoding/json"
	"fmt"
)

// Rect is a rectangle whose area is derived on demand.
type Rect struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewRect returns a rectangle with the given dimensions.
func NewRect(width, height float64) Rect {
	return Rect{Width: width, Height: height}
}

// Area recomputes Width * Height on every call, it is not cached.
func (r Rect) Area() float64 {
	return r.Width * r.Height
}

// Serialize returns the JSON text of v. Struct fields keep their declared
// order, arrays their positions.
func Serialize(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("serialize: %w", err)
	}
	return string(data), nil
}

// Deserialize parses text onto a shallow copy of blueprint and returns the
// copy. Fields present in text win over the blueprint's values; everything
// else, the method set included, comes from the blueprint.
func Deserialize[T any](blueprint T, text string) (T, error) {
	out := blueprint
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		var zero T
		return zero, fmt.Errorf("deserialize: %w", err)
	}
	return out, nil
}
