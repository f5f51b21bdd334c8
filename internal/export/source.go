package export

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/spacesedan/psychprint/internal/models"
)

// expectedDirs are the top-level directories a complete export archive
// carries. Missing ones lower confidence downstream, they never abort a run.
var expectedDirs = []string{
	"ads_information",
	"apps_and_websites_off_of_facebook",
	"connections",
	"logged_information",
	"personal_information",
	"preferences",
	"security_and_login_information",
	"your_facebook_activity",
}

// DirSource reads an unpacked export directory. Parsing happens once per
// category and is cached; a missing or malformed category yields empty
// results. Only a missing export root is an error.
type DirSource struct {
	root string

	msgOnce     sync.Once
	threads     []thread
	owner       string
	initiations int
	helpSeeking int

	postOnce  sync.Once
	posts     []models.TextRecord
	postHours [24]int

	adsOnce sync.Once
	ads     models.AdsData
}

// NewDirSource opens an export root. The directory must exist; everything
// under it is optional.
func NewDirSource(root string) (*DirSource, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("open export root %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("open export root %s: not a directory", root)
	}
	return &DirSource{root: root}, nil
}

// ValidateStructure reports which of the expected top-level export
// directories are present.
func (s *DirSource) ValidateStructure() map[string]bool {
	status := make(map[string]bool, len(expectedDirs))
	for _, name := range expectedDirs {
		status[name] = dirExists(filepath.Join(s.root, name))
	}
	return status
}

// Available reports whether the export contains any data for a category.
func (s *DirSource) Available(cat models.Category) bool {
	switch cat {
	case models.CategoryMessages:
		return dirExists(filepath.Join(s.activityDir(), "messages", "inbox"))
	case models.CategoryPosts:
		return dirExists(filepath.Join(s.activityDir(), "posts"))
	case models.CategoryAdPreferences:
		return fileExists(filepath.Join(s.adsDir(), "ad_preferences.json"))
	case models.CategoryTargeting:
		return fileExists(filepath.Join(s.adsDir(), "advertisers_using_your_activity_or_information.json")) ||
			fileExists(filepath.Join(s.adsDir(), "other_categories_used_to_reach_you.json"))
	default:
		return false
	}
}

// Records returns the text fragments for one category: the subject's own
// messages, post bodies, or advertising topic and category names.
func (s *DirSource) Records(cat models.Category) []models.TextRecord {
	switch cat {
	case models.CategoryMessages:
		s.loadMessages()
		var recs []models.TextRecord
		for _, t := range s.threads {
			for _, m := range t.messages {
				if m.sender != s.owner {
					continue
				}
				recs = append(recs, models.TextRecord{
					Text:             m.text,
					Kind:             models.SourceMessage,
					Timestamp:        m.timestamp,
					TimestampInvalid: m.invalid,
				})
			}
		}
		return recs
	case models.CategoryPosts:
		s.loadPosts()
		return s.posts
	case models.CategoryAdPreferences:
		ads := s.Ads()
		recs := make([]models.TextRecord, 0, len(ads.Topics))
		for _, topic := range ads.Topics {
			recs = append(recs, models.TextRecord{Text: topic, Kind: models.SourceAd})
		}
		return recs
	case models.CategoryTargeting:
		ads := s.Ads()
		recs := make([]models.TextRecord, 0, len(ads.OtherCategories))
		for _, c := range ads.OtherCategories {
			recs = append(recs, models.TextRecord{Text: c, Kind: models.SourceAd})
		}
		return recs
	default:
		return nil
	}
}

func (s *DirSource) activityDir() string {
	return filepath.Join(s.root, "your_facebook_activity")
}

func (s *DirSource) adsDir() string {
	return filepath.Join(s.root, "ads_information")
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
