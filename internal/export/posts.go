package export

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spacesedan/psychprint/internal/models"
)

type rawPostsFile struct {
	StatusUpdates []rawPost `json:"status_updates_v2"`
}

type rawPost struct {
	Timestamp any           `json:"timestamp"`
	Data      []rawPostData `json:"data"`
}

type rawPostData struct {
	Post string `json:"post"`
}

// loadPosts parses every posts file once, keeping post bodies and an hourly
// posting histogram.
func (s *DirSource) loadPosts() {
	s.postOnce.Do(func() {
		dir := filepath.Join(s.activityDir(), "posts")
		entries, err := os.ReadDir(dir)
		if err != nil {
			return
		}
		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
				continue
			}
			var raw rawPostsFile
			if !loadOptional(filepath.Join(dir, entry.Name()), &raw) {
				continue
			}
			for _, p := range raw.StatusUpdates {
				body := postBody(p)
				if body == "" {
					continue
				}
				ts, invalid := ParseTimestamp(p.Timestamp)
				if ts != nil {
					s.postHours[ts.Hour()]++
				}
				s.posts = append(s.posts, models.TextRecord{
					Text:             body,
					Kind:             models.SourcePost,
					Timestamp:        ts,
					TimestampInvalid: invalid,
				})
			}
		}
		slog.Debug("[DirSource] Parsed posts", slog.Int("posts", len(s.posts)))
	})
}

// PostingHours returns how many posts fell in each hour of the day.
func (s *DirSource) PostingHours() [24]int {
	s.loadPosts()
	return s.postHours
}

// postBody returns the first text body in a post's data entries.
func postBody(p rawPost) string {
	for _, d := range p.Data {
		if d.Post != "" {
			return d.Post
		}
	}
	return ""
}
