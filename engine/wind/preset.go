package wind

import (
	"encoding/json"
	"fmt"
	"io"
)

// LoadPreset decodes a JSON wind preset on top of Default. Fields absent from the
// document keep their default values, so a preset only needs to list what it overrides.
//
// Parameters:
//   - r: the reader holding the JSON document
//
// Returns:
//   - Wind: the decoded wind parameters
//   - error: error if the document cannot be decoded
func LoadPreset(r io.Reader) (Wind, error) {
	w := Default()
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&w); err != nil {
		return Wind{}, fmt.Errorf("failed to decode wind preset: %w", err)
	}
	return w, nil
}

// SavePreset writes w as an indented JSON preset.
//
// Parameters:
//   - wr: the destination writer
//   - w: the wind parameters to write
//
// Returns:
//   - error: error if encoding or writing fails
func SavePreset(wr io.Writer, w Wind) error {
	enc := json.NewEncoder(wr)
	enc.SetIndent("", "  ")
	if err := enc.Encode(w); err != nil {
		return fmt.Errorf("failed to encode wind preset: %w", err)
	}
	return nil
}
