package analytics

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"peacey/internal/storage"
)

// maxUnmatchedSamples caps the unmatched questions kept in a report.
const maxUnmatchedSamples = 10

// DailyStats summarises one day of assistant traffic.
type DailyStats struct {
	Date             string              `json:"date"`
	TotalMessages    int                 `json:"total_messages"`
	UniqueUsers      int                 `json:"unique_users"`
	Unmatched        int                 `json:"unmatched"`
	IntentsByType    map[string]int      `json:"intents_by_type"`
	UnmatchedSamples []string            `json:"unmatched_samples"`
	UserStats        map[int64]UserStats `json:"user_stats"`
}

type UserStats struct {
	UserID    int64 `json:"user_id"`
	Messages  int   `json:"messages"`
	Unmatched int   `json:"unmatched"`
}

// AnalyzeDailyLogs aggregates the events that fall on targetDate in its location.
// Events without a user message are ignored.
func AnalyzeDailyLogs(events []storage.Event, targetDate time.Time) *DailyStats {
	startOfDay := time.Date(targetDate.Year(), targetDate.Month(), targetDate.Day(), 0, 0, 0, 0, targetDate.Location())
	endOfDay := startOfDay.AddDate(0, 0, 1)

	stats := &DailyStats{
		Date:          startOfDay.Format("2006-01-02"),
		IntentsByType: make(map[string]int),
		UserStats:     make(map[int64]UserStats),
	}
	seenSample := make(map[string]bool)

	for _, event := range events {
		if event.Timestamp.Before(startOfDay) || !event.Timestamp.Before(endOfDay) {
			continue
		}
		if event.UserMessage == "" {
			continue
		}

		stats.TotalMessages++
		us, ok := stats.UserStats[event.UserID]
		if !ok {
			us = UserStats{UserID: event.UserID}
		}
		us.Messages++

		if event.Intent != "" {
			stats.IntentsByType[event.Intent]++
		}
		if !event.Matched {
			stats.Unmatched++
			us.Unmatched++
			q := strings.TrimSpace(event.UserMessage)
			key := strings.ToLower(q)
			if !seenSample[key] && len(stats.UnmatchedSamples) < maxUnmatchedSamples {
				seenSample[key] = true
				stats.UnmatchedSamples = append(stats.UnmatchedSamples, q)
			}
		}
		stats.UserStats[event.UserID] = us
	}

	stats.UniqueUsers = len(stats.UserStats)
	return stats
}

// MatchRate is the share of messages answered by a rule, in [0,1]. An empty day reports 0.
func (ds *DailyStats) MatchRate() float64 {
	if ds.TotalMessages == 0 {
		return 0
	}
	return float64(ds.TotalMessages-ds.Unmatched) / float64(ds.TotalMessages)
}

// GenerateReportSummary renders the stats as a plain-text report. Intents are listed by
// descending count, then name.
func (ds *DailyStats) GenerateReportSummary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Peacey usage for %s:\n\n", ds.Date)
	fmt.Fprintf(&b, "- Messages: %d\n", ds.TotalMessages)
	fmt.Fprintf(&b, "- Unique users: %d\n", ds.UniqueUsers)
	fmt.Fprintf(&b, "- Unmatched: %d (match rate %.0f%%)\n", ds.Unmatched, ds.MatchRate()*100)

	if len(ds.IntentsByType) > 0 {
		type kv struct {
			name  string
			count int
		}
		intents := make([]kv, 0, len(ds.IntentsByType))
		for k, v := range ds.IntentsByType {
			intents = append(intents, kv{k, v})
		}
		sort.Slice(intents, func(i, j int) bool {
			if intents[i].count != intents[j].count {
				return intents[i].count > intents[j].count
			}
			return intents[i].name < intents[j].name
		})
		b.WriteString("\nTop intents:\n")
		for _, it := range intents {
			fmt.Fprintf(&b, "- %s: %d\n", it.name, it.count)
		}
	}

	if len(ds.UnmatchedSamples) > 0 {
		b.WriteString("\nQuestions without an answer:\n")
		for _, q := range ds.UnmatchedSamples {
			fmt.Fprintf(&b, "- %q\n", q)
		}
	}
	return b.String()
}

func (ds *DailyStats) ToJSON() (string, error) {
	data, err := json.MarshalIndent(ds, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
