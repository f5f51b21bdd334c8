// Package export reads a personal social-media data export from disk and
// turns it into the records the analysis pipeline consumes. Export archives
// are messy: mixed encodings, missing directories, malformed timestamps. A
// single bad file degrades its own records and nothing else.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"unicode/utf8"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// LoadJSON reads and decodes one export file with encoding fallback:
// UTF-8 first (with or without BOM), then latin-1. Export tools are known to
// emit either.
func LoadJSON(path string, v any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	raw = bytes.TrimPrefix(raw, utf8BOM)
	if !utf8.Valid(raw) {
		raw = latin1ToUTF8(raw)
	}

	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// latin1ToUTF8 reinterprets bytes as latin-1 code points.
func latin1ToUTF8(raw []byte) []byte {
	buf := make([]rune, len(raw))
	for i, b := range raw {
		buf[i] = rune(b)
	}
	return []byte(string(buf))
}

// loadOptional decodes a file that may legitimately be absent; absence and
// malformed content both return false after logging, never an error.
func loadOptional(path string, v any) bool {
	if _, err := os.Stat(path); err != nil {
		return false
	}
	if err := LoadJSON(path, v); err != nil {
		slog.Warn("[ExportLoader] Skipping malformed file",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return false
	}
	return true
}
