package alignment

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load reads an alignment model from a JSON file
func Load(filename string) (*Model, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read alignment: %w", err)
	}

	var m Model
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse alignment: %w", err)
	}

	for i, seg := range m.Geometry {
		if seg.Type != SegmentLine && seg.Type != SegmentCurve {
			return nil, fmt.Errorf("segment %d: unknown type %q", i, seg.Type)
		}
		if seg.Type == SegmentCurve && seg.Radius <= 0 {
			return nil, fmt.Errorf("segment %d: curve radius must be positive", i)
		}
	}

	return &m, nil
}

// Save writes an alignment model to a JSON file
func (m *Model) Save(filename string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode alignment: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write alignment: %w", err)
	}

	return nil
}
