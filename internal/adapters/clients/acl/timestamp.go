package acl

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Timestamp decodes every time shape the backend has been seen to send and
// always holds UTC:
//
//	"2024-05-01T09:00:00.123456+00:00"      ISO-8601, with or without zone
//	{"seconds": 1714554000, "nanos": 0}     structured
//	{"_seconds": 1714554000, "_nanoseconds": 0}
//	1714554000123                            epoch milliseconds
type Timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999Z07",
	"2006-01-02 15:04:05.999999999",
}

type structuredTimestamp struct {
	Seconds     *int64 `json:"seconds"`
	Nanos       int64  `json:"nanos"`
	USeconds    *int64 `json:"_seconds"`
	UNanosecond int64  `json:"_nanoseconds"`
}

// UnmarshalJSON implements json.Unmarshaler. null leaves the zero time.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		t.Time = time.Time{}
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}

		parsed, err := parseTimestamp(s)
		if err != nil {
			return err
		}

		t.Time = parsed

		return nil
	case '{':
		var st structuredTimestamp
		if err := json.Unmarshal(data, &st); err != nil {
			return fmt.Errorf("decoding structured timestamp: %w", err)
		}

		switch {
		case st.Seconds != nil:
			t.Time = time.Unix(*st.Seconds, st.Nanos).UTC()
		case st.USeconds != nil:
			t.Time = time.Unix(*st.USeconds, st.UNanosecond).UTC()
		default:
			return fmt.Errorf("structured timestamp without seconds: %s", data)
		}

		return nil
	default:
		var millis int64
		if err := json.Unmarshal(data, &millis); err != nil {
			return fmt.Errorf("decoding epoch timestamp: %w", err)
		}

		t.Time = time.UnixMilli(millis).UTC()

		return nil
	}
}

// MarshalJSON writes ISO-8601 in UTC, the shape the backend accepts on writes.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}

	return json.Marshal(t.UTC().Format(time.RFC3339Nano))
}

func parseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			return parsed.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}
