package export

import (
	"path/filepath"

	"github.com/spacesedan/psychprint/internal/models"
)

type rawAdPreferences struct {
	Topics []rawNamed `json:"topics_v2"`
}

type rawNamed struct {
	Name string `json:"name"`
}

type rawAudienceFile struct {
	CustomAudiences []rawAudience `json:"custom_audiences_v2"`
}

type rawAudience struct {
	AdvertiserName string `json:"advertiser_name"`
	HasDataFile    bool   `json:"has_data_file_custom_audience"`
}

type rawHistoryFile struct {
	History []rawInteraction `json:"history_v2"`
}

type rawInteraction struct {
	AdvertiserName string `json:"advertiser_name"`
	Action         string `json:"action"`
	Timestamp      any    `json:"timestamp"`
}

type rawCategoriesFile struct {
	Categories []rawCategory `json:"other_categories_v2"`
}

type rawCategory struct {
	Category string `json:"category"`
}

// loadAds parses the four advertising files once. Each file is independent;
// a malformed one only empties its own slice.
func (s *DirSource) loadAds() {
	s.adsOnce.Do(func() {
		dir := s.adsDir()

		var prefs rawAdPreferences
		if loadOptional(filepath.Join(dir, "ad_preferences.json"), &prefs) {
			for _, t := range prefs.Topics {
				if t.Name != "" {
					s.ads.Topics = append(s.ads.Topics, t.Name)
				}
			}
		}

		var audiences rawAudienceFile
		if loadOptional(filepath.Join(dir, "advertisers_using_your_activity_or_information.json"), &audiences) {
			for _, a := range audiences.CustomAudiences {
				if a.AdvertiserName == "" {
					continue
				}
				s.ads.Audiences = append(s.ads.Audiences, models.CustomAudience{
					Advertiser:  a.AdvertiserName,
					HasDataFile: a.HasDataFile,
				})
			}
		}

		var history rawHistoryFile
		if loadOptional(filepath.Join(dir, "advertisers_you've_interacted_with.json"), &history) {
			for _, h := range history.History {
				if h.AdvertiserName == "" {
					continue
				}
				ts, _ := ParseTimestamp(h.Timestamp)
				s.ads.Interactions = append(s.ads.Interactions, models.AdInteraction{
					Advertiser: h.AdvertiserName,
					Action:     h.Action,
					Timestamp:  ts,
				})
			}
		}

		var cats rawCategoriesFile
		if loadOptional(filepath.Join(dir, "other_categories_used_to_reach_you.json"), &cats) {
			for _, c := range cats.Categories {
				if c.Category != "" {
					s.ads.OtherCategories = append(s.ads.OtherCategories, c.Category)
				}
			}
		}
	})
}

// Ads returns the raw advertising evidence for the reverse-mapper.
func (s *DirSource) Ads() models.AdsData {
	s.loadAds()
	return s.ads
}
