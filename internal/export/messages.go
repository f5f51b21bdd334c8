package export

import (
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spacesedan/psychprint/internal/models"
)

// helpSeekingMarkers flag messages where the subject asked for guidance.
var helpSeekingMarkers = []string{"help", "advice", "what should", "how do"}

type thread struct {
	title           string
	messages        []threadMessage
	responseSeconds []float64
}

type threadMessage struct {
	sender    string
	text      string
	timestamp *time.Time
	invalid   bool
}

type rawThread struct {
	Title    string       `json:"title"`
	Messages []rawMessage `json:"messages"`
}

type rawMessage struct {
	SenderName  string `json:"sender_name"`
	TimestampMS any    `json:"timestamp_ms"`
	Content     string `json:"content"`
}

type rawAIFile struct {
	Conversations []rawAIConversation `json:"conversations"`
}

type rawAIConversation struct {
	Messages []rawAIMessage `json:"messages"`
}

type rawAIMessage struct {
	Content string `json:"content"`
}

// loadMessages parses every inbox thread once. The export owner is inferred
// as the sender with the most messages across all threads; response times are
// the gaps between another participant's message and the owner's reply.
func (s *DirSource) loadMessages() {
	s.msgOnce.Do(func() {
		inbox := filepath.Join(s.activityDir(), "messages", "inbox")
		entries, err := os.ReadDir(inbox)
		if err == nil {
			counts := make(map[string]int)
			for _, entry := range entries {
				if !entry.IsDir() {
					continue
				}
				var raw rawThread
				if !loadOptional(filepath.Join(inbox, entry.Name(), "message_1.json"), &raw) {
					continue
				}
				t := thread{title: raw.Title}
				for _, m := range raw.Messages {
					if m.Content == "" {
						continue
					}
					ts, invalid := ParseTimestamp(m.TimestampMS)
					t.messages = append(t.messages, threadMessage{
						sender:    m.SenderName,
						text:      m.Content,
						timestamp: ts,
						invalid:   invalid,
					})
					counts[m.SenderName]++
				}
				if len(t.messages) == 0 {
					continue
				}
				sortByTimestamp(t.messages)
				s.threads = append(s.threads, t)
			}

			s.owner = topSender(counts)
			for i := range s.threads {
				t := &s.threads[i]
				if t.messages[0].sender == s.owner {
					s.initiations++
				}
				t.responseSeconds = responseTimes(t.messages, s.owner)
			}
		}

		s.helpSeeking = s.countHelpSeeking()
		slog.Debug("[DirSource] Parsed message threads",
			slog.Int("threads", len(s.threads)),
			slog.String("owner", s.owner))
	})
}

// Conversations summarizes each thread for conative analysis.
func (s *DirSource) Conversations() []models.ConversationStats {
	s.loadMessages()
	stats := make([]models.ConversationStats, 0, len(s.threads))
	for _, t := range s.threads {
		cs := models.ConversationStats{TotalMessages: len(t.messages)}
		for _, m := range t.messages {
			if m.sender == s.owner {
				cs.UserMessages++
			}
		}
		cs.AvgResponseSeconds = mean(t.responseSeconds)
		stats = append(stats, cs)
	}
	return stats
}

// HelpSeekingCount returns how many AI-assistant messages asked for help.
func (s *DirSource) HelpSeekingCount() int {
	s.loadMessages()
	return s.helpSeeking
}

// Social builds the corpus-wide communication profile.
func (s *DirSource) Social() models.SocialBehaviorProfile {
	s.loadMessages()
	s.loadPosts()

	var profile models.SocialBehaviorProfile
	var userTotal int
	var allResponses []float64
	for _, t := range s.threads {
		for _, m := range t.messages {
			if m.sender == s.owner {
				userTotal++
			}
		}
		allResponses = append(allResponses, t.responseSeconds...)
	}
	if len(s.threads) > 0 {
		profile.CommunicationFrequency = float64(userTotal) / float64(len(s.threads))
		profile.InitiationRatio = float64(s.initiations) / float64(len(s.threads))
	}
	profile.ResponseTimeAvg = mean(allResponses)
	profile.HelpSeekingCount = s.helpSeeking
	profile.GroupParticipationLevel = float64(len(s.posts)) / 365.0
	return profile
}

func (s *DirSource) countHelpSeeking() int {
	var raw rawAIFile
	path := filepath.Join(s.activityDir(), "messages", "ai_conversations.json")
	if !loadOptional(path, &raw) {
		return 0
	}
	count := 0
	for _, conv := range raw.Conversations {
		for _, m := range conv.Messages {
			lower := strings.ToLower(m.Content)
			for _, marker := range helpSeekingMarkers {
				if strings.Contains(lower, marker) {
					count++
					break
				}
			}
		}
	}
	return count
}

func responseTimes(msgs []threadMessage, owner string) []float64 {
	var times []float64
	for i := 1; i < len(msgs); i++ {
		cur, prev := msgs[i], msgs[i-1]
		if cur.sender != owner || prev.sender == owner {
			continue
		}
		if cur.timestamp == nil || prev.timestamp == nil {
			continue
		}
		times = append(times, cur.timestamp.Sub(*prev.timestamp).Seconds())
	}
	return times
}

// sortByTimestamp orders messages oldest first, nil timestamps before all
// dated ones.
func sortByTimestamp(msgs []threadMessage) {
	sort.SliceStable(msgs, func(i, j int) bool {
		return timeOrZero(msgs[i].timestamp).Before(timeOrZero(msgs[j].timestamp))
	})
}

func timeOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

// topSender picks the most frequent sender, ties broken alphabetically.
func topSender(counts map[string]int) string {
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	var best string
	bestN := -1
	for _, name := range names {
		if counts[name] > bestN {
			best, bestN = name, counts[name]
		}
	}
	return best
}

func mean(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}
