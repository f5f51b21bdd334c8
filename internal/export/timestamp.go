package export

import (
	"strconv"
	"time"
)

// millisCutoff distinguishes unix-second from unix-millisecond values.
const millisCutoff = int64(1e12)

// ParseTimestamp decodes the timestamp formats seen in exports: unix
// seconds, unix milliseconds (as number or digit string) and ISO-8601 with a
// trailing Z. Returns (nil, false) for an absent value and (nil, true) for a
// present but unparseable one, so callers can apply the documented
// "analysis time" fallback only to genuinely malformed data.
func ParseTimestamp(raw any) (ts *time.Time, invalid bool) {
	switch v := raw.(type) {
	case nil:
		return nil, false
	case float64:
		if v == 0 {
			return nil, false
		}
		return fromUnix(int64(v)), false
	case int64:
		if v == 0 {
			return nil, false
		}
		return fromUnix(v), false
	case string:
		if v == "" {
			return nil, false
		}
		if isDigits(v) {
			n, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return nil, true
			}
			return fromUnix(n), false
		}
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			// Some export tools emit ISO timestamps with no zone.
			t, err = time.Parse("2006-01-02T15:04:05", v)
			if err != nil {
				return nil, true
			}
		}
		u := t.UTC()
		return &u, false
	default:
		return nil, true
	}
}

func fromUnix(n int64) *time.Time {
	var t time.Time
	if n >= millisCutoff {
		t = time.UnixMilli(n).UTC()
	} else {
		t = time.Unix(n, 0).UTC()
	}
	return &t
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
