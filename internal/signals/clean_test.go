package signals

import (
	"strings"
	"testing"
)

func TestRemoveLinks(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "markdown link keeps text",
			input: "read [this article](https://example.com/a) today",
			want:  "read this article today",
		},
		{
			name:  "bare url stripped",
			input: "see https://example.com/page now",
			want:  "see  now",
		},
		{
			name:  "www url stripped",
			input: "visit www.example.com please",
			want:  "visit  please",
		},
		{
			name:  "plain text untouched",
			input: "nothing to strip here",
			want:  "nothing to strip here",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := RemoveLinks(tc.input); got != tc.want {
				t.Fatalf("RemoveLinks(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestMarkdownToText(t *testing.T) {
	got := MarkdownToText("# Heading\n\nsome **bold** text")

	if strings.Contains(got, "#") || strings.Contains(got, "*") || strings.Contains(got, "<") {
		t.Fatalf("markdown syntax survived: %q", got)
	}
	if !strings.Contains(got, "Heading") || !strings.Contains(got, "bold") {
		t.Fatalf("content lost during flattening: %q", got)
	}
}
