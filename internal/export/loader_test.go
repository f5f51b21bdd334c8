package export

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name string, raw []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadJSONStripsBOM(t *testing.T) {
	dir := t.TempDir()
	raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte(`{"name":"test"}`)...)
	path := writeFile(t, dir, "bom.json", raw)

	var v struct {
		Name string `json:"name"`
	}
	if err := LoadJSON(path, &v); err != nil {
		t.Fatalf("LoadJSON: %v", err)
	}
	if v.Name != "test" {
		t.Fatalf("name = %q, want %q", v.Name, "test")
	}
}

func TestLoadJSONLatin1Fallback(t *testing.T) {
	dir := t.TempDir()
	// "café" with a latin-1 e-acute byte, invalid as UTF-8.
	raw := []byte(`{"name":"caf`)
	raw = append(raw, 0xE9)
	raw = append(raw, []byte(`"}`)...)
	path := writeFile(t, dir, "latin1.json", raw)

	var v struct {
		Name string `json:"name"`
	}
	if err := LoadJSON(path, &v); err != nil {
		t.Fatalf("LoadJSON: %v", err)
	}
	if v.Name != "café" {
		t.Fatalf("name = %q, want %q", v.Name, "café")
	}
}

func TestLoadJSONMalformed(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bad.json", []byte(`{"name":`))

	var v map[string]any
	if err := LoadJSON(path, &v); err == nil {
		t.Fatal("expected decode error for malformed JSON")
	}
}

func TestLoadJSONMissingFile(t *testing.T) {
	var v map[string]any
	if err := LoadJSON(filepath.Join(t.TempDir(), "absent.json"), &v); err == nil {
		t.Fatal("expected read error for missing file")
	}
}

func TestLoadOptional(t *testing.T) {
	dir := t.TempDir()

	var v map[string]any
	if loadOptional(filepath.Join(dir, "absent.json"), &v) {
		t.Fatal("absent file should report false")
	}

	bad := writeFile(t, dir, "bad.json", []byte(`{`))
	if loadOptional(bad, &v) {
		t.Fatal("malformed file should report false")
	}

	good := writeFile(t, dir, "good.json", []byte(`{"ok":true}`))
	if !loadOptional(good, &v) {
		t.Fatal("valid file should report true")
	}
	if v["ok"] != true {
		t.Fatalf("decoded value = %v", v)
	}
}
