package rp210types

import (
	"fmt"

	"github.com/johnwheeler/go-mxf/pkg/rp210"
)

// VersionConverter handles "VersionType": two bytes rendered as
// "major.minor" (e.g. MXF version 1.2).
type VersionConverter struct{}

func (c *VersionConverter) Match(typeName string) (rp210.Capture, bool) {
	return rp210.Capture{}, typeName == "VersionType"
}

func (c *VersionConverter) Decode(raw []byte, _ rp210.Capture) (any, error) {
	if len(raw) != 2 {
		return nil, fmt.Errorf("rp210types: version: want 2 bytes, got %d", len(raw))
	}
	return fmt.Sprintf("%d.%d", raw[0], raw[1]), nil
}

func (c *VersionConverter) Encode(value any, _ rp210.Capture) ([]byte, error) {
	s, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("rp210types: version: want string, got %T", value)
	}
	var major, minor uint8
	if _, err := fmt.Sscanf(s, "%d.%d", &major, &minor); err != nil {
		return nil, fmt.Errorf("rp210types: version: parse %q: %w", s, err)
	}
	return []byte{major, minor}, nil
}
