// Package http serves a small browsing and results API over an export
// directory and its analysis output.
package http

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/russross/blackfriday/v2"
)

const (
	// Content search only scans files small enough to read eagerly.
	searchContentLimit = 100 * 1024
	searchMaxResults   = 50
)

// Browser walks an export directory for the read-only API.
type Browser struct {
	root string
}

// NewBrowser returns a browser rooted at an export directory.
func NewBrowser(root string) *Browser {
	return &Browser{root: root}
}

// CategoryInfo summarizes one top-level export directory.
type CategoryInfo struct {
	Name      string `json:"name"`
	FileCount int    `json:"file_count"`
	TotalSize int64  `json:"total_size"`
	SizeHuman string `json:"size_human"`
}

// FileInfo is one direct child file of a category.
type FileInfo struct {
	Name      string `json:"name"`
	Size      int64  `json:"size"`
	SizeHuman string `json:"size_human"`
}

// SearchResult is one file matched by name or content.
type SearchResult struct {
	Path  string `json:"path"`
	Name  string `json:"name"`
	Size  string `json:"size"`
	Match string `json:"match"`
}

// Overview lists every top-level directory with file counts and sizes.
func (b *Browser) Overview() ([]CategoryInfo, error) {
	entries, err := os.ReadDir(b.root)
	if err != nil {
		return nil, fmt.Errorf("read export root: %w", err)
	}
	var out []CategoryInfo
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		info, err := b.analyzeDir(filepath.Join(b.root, entry.Name()))
		if err != nil {
			return nil, err
		}
		info.Name = entry.Name()
		out = append(out, info)
	}
	return out, nil
}

// Category lists a category's direct files along with its totals.
func (b *Browser) Category(name string) (CategoryInfo, []FileInfo, error) {
	dir, err := b.resolve(name)
	if err != nil {
		return CategoryInfo{}, nil, err
	}
	info, err := b.analyzeDir(dir)
	if err != nil {
		return CategoryInfo{}, nil, err
	}
	info.Name = filepath.Base(dir)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return CategoryInfo{}, nil, fmt.Errorf("read category %s: %w", name, err)
	}
	var files []FileInfo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		fi, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, FileInfo{
			Name:      entry.Name(),
			Size:      fi.Size(),
			SizeHuman: formatSize(fi.Size()),
		})
	}
	return info, files, nil
}

// FileContent returns a file under the root rendered for display: JSON is
// re-decoded, markdown is converted to HTML, anything else is rejected.
func (b *Browser) FileContent(rel string) (any, error) {
	path, err := b.resolve(rel)
	if err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", rel, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		var v any
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("decode %s: %w", rel, err)
		}
		return v, nil
	case ".md":
		return string(blackfriday.Run(raw)), nil
	default:
		return nil, fmt.Errorf("unsupported file type %q", filepath.Ext(path))
	}
}

// Search matches JSON files by filename, then by content for small files.
func (b *Browser) Search(query string) []SearchResult {
	lower := strings.ToLower(query)
	var results []SearchResult

	filepath.WalkDir(b.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !strings.HasSuffix(d.Name(), ".json") {
			return nil
		}
		if len(results) >= searchMaxResults {
			return fs.SkipAll
		}
		fi, err := d.Info()
		if err != nil {
			return nil
		}
		rel, err := filepath.Rel(b.root, path)
		if err != nil {
			return nil
		}

		if strings.Contains(strings.ToLower(d.Name()), lower) {
			results = append(results, SearchResult{
				Path: rel, Name: d.Name(), Size: formatSize(fi.Size()), Match: "filename",
			})
			return nil
		}
		if fi.Size() < searchContentLimit {
			raw, err := os.ReadFile(path)
			if err == nil && strings.Contains(strings.ToLower(string(raw)), lower) {
				results = append(results, SearchResult{
					Path: rel, Name: d.Name(), Size: formatSize(fi.Size()), Match: "content",
				})
			}
		}
		return nil
	})
	return results
}

func (b *Browser) analyzeDir(dir string) (CategoryInfo, error) {
	var info CategoryInfo
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		fi, err := d.Info()
		if err != nil {
			return err
		}
		info.FileCount++
		info.TotalSize += fi.Size()
		return nil
	})
	if err != nil {
		return CategoryInfo{}, fmt.Errorf("walk %s: %w", dir, err)
	}
	info.SizeHuman = formatSize(info.TotalSize)
	return info, nil
}

// resolve joins rel under the root and refuses path escapes.
func (b *Browser) resolve(rel string) (string, error) {
	path := filepath.Join(b.root, filepath.Clean("/"+rel))
	root := filepath.Clean(b.root)
	if path != root && !strings.HasPrefix(path, root+string(os.PathSeparator)) {
		return "", fmt.Errorf("path %q escapes export root", rel)
	}
	return path, nil
}

func formatSize(size int64) string {
	switch {
	case size < 1<<10:
		return fmt.Sprintf("%dB", size)
	case size < 1<<20:
		return fmt.Sprintf("%.1fKB", float64(size)/(1<<10))
	case size < 1<<30:
		return fmt.Sprintf("%.1fMB", float64(size)/(1<<20))
	default:
		return fmt.Sprintf("%.1fGB", float64(size)/(1<<30))
	}
}
