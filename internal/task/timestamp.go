package task

import (
	"encoding/json"
	"fmt"
	"time"
)

// Layout is the on-disk timestamp format: local time, no zone suffix,
// up to microsecond precision. It matches the isoformat strings the
// store file has always used.
const Layout = "2006-01-02T15:04:05.999999"

// parseLayouts are the formats accepted when reading a store file.
// RFC 3339 is allowed so hand-edited files with zone suffixes load too.
var parseLayouts = []string{Layout, time.RFC3339Nano}

// Timestamp is a time.Time that marshals in the store file's layout.
type Timestamp struct {
	time.Time
}

// Now returns the current local time as a Timestamp.
func Now() Timestamp {
	return Timestamp{time.Now()}
}

// MarshalJSON encodes the timestamp as a Layout string.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Format(Layout))
}

// UnmarshalJSON decodes a timestamp string in any accepted layout.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	for _, layout := range parseLayouts {
		parsed, err := time.ParseInLocation(layout, s, time.Local)
		if err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("invalid timestamp: %q", s)
}
