package rp210types

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/johnwheeler/go-mxf/pkg/rp210"
)

// timestampTick is the resolution of the trailing TimeStamp byte, which
// stores milliseconds divided by four (0–249).
const timestampTick = 4 * time.Millisecond

// TimestampConverter handles the 8-byte "TimeStamp" type:
//
//	0  2  year (uint16)
//	2  1  month
//	3  1  day
//	4  1  hour
//	5  1  minute
//	6  1  second
//	7  1  msec/4 (0–249)
//
// Decoded values are time.Time in UTC, the timezone MXF timestamps are
// defined in.
type TimestampConverter struct{}

func (c *TimestampConverter) Match(typeName string) (rp210.Capture, bool) {
	return rp210.Capture{}, typeName == "TimeStamp"
}

func (c *TimestampConverter) Decode(raw []byte, _ rp210.Capture) (any, error) {
	if len(raw) != 8 {
		return nil, fmt.Errorf("rp210types: timestamp: want 8 bytes, got %d", len(raw))
	}

	year := int(binary.BigEndian.Uint16(raw[0:2]))
	nsec := int(time.Duration(raw[7]) * timestampTick / time.Nanosecond)
	return time.Date(year, time.Month(raw[2]), int(raw[3]),
		int(raw[4]), int(raw[5]), int(raw[6]), nsec, time.UTC), nil
}

func (c *TimestampConverter) Encode(value any, _ rp210.Capture) ([]byte, error) {
	t, ok := value.(time.Time)
	if !ok {
		return nil, fmt.Errorf("rp210types: timestamp: want time.Time, got %T", value)
	}
	t = t.UTC()

	buf := make([]byte, 8)
	binary.BigEndian.PutUint16(buf[0:2], uint16(t.Year()))
	buf[2] = byte(t.Month())
	buf[3] = byte(t.Day())
	buf[4] = byte(t.Hour())
	buf[5] = byte(t.Minute())
	buf[6] = byte(t.Second())
	buf[7] = byte(time.Duration(t.Nanosecond()) / timestampTick)
	return buf, nil
}
