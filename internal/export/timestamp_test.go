package export

import (
	"testing"
	"time"
)

func TestParseTimestamp(t *testing.T) {
	want := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	seconds := float64(want.Unix())
	millis := float64(want.UnixMilli())

	tests := []struct {
		name    string
		raw     any
		want    *time.Time
		invalid bool
	}{
		{name: "nil", raw: nil},
		{name: "zero number", raw: float64(0)},
		{name: "empty string", raw: ""},
		{name: "unix seconds", raw: seconds, want: &want},
		{name: "unix milliseconds", raw: millis, want: &want},
		{name: "digit string millis", raw: "1717243200000", want: &want},
		{name: "iso with zone", raw: "2024-06-01T12:00:00Z", want: &want},
		{name: "iso without zone", raw: "2024-06-01T12:00:00", want: &want},
		{name: "garbage string", raw: "not a timestamp", invalid: true},
		{name: "unsupported type", raw: []string{"x"}, invalid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, invalid := ParseTimestamp(tt.raw)
			if invalid != tt.invalid {
				t.Fatalf("invalid = %v, want %v", invalid, tt.invalid)
			}
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("timestamp = %v, want %v", got, tt.want)
			}
			if got != nil && !got.Equal(*tt.want) {
				t.Fatalf("timestamp = %v, want %v", got, tt.want)
			}
		})
	}
}
