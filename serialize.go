package persondir

import "encoding/json"

// Dict converts a domain object to its nested key-value form. Absent optional
// relations stay absent (no key), dates become strings via their JSON
// encoding, and nested objects become nested maps.
func Dict(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// JSON renders a domain object as indented JSON text with deterministic
// (sorted) key ordering.
func JSON(v any) ([]byte, error) {
	m, err := Dict(v)
	if err != nil {
		return nil, err
	}
	// encoding/json sorts map keys, which gives the deterministic ordering.
	return json.MarshalIndent(m, "", "  ")
}

// ToDict is shorthand for Dict(p).
func (p *Person) ToDict() (map[string]any, error) { return Dict(p) }

// ToJSON is shorthand for JSON(p).
func (p *Person) ToJSON() ([]byte, error) { return JSON(p) }
