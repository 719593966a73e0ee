// Package classify derives memory metadata (title, summary, tags,
// categories, topics, sentiment, entities) from captured content using
// fixed keyword and pattern tables. It stands in for an external
// classification service and never fails.
package classify

import (
	"context"
	"strings"
	"time"

	"github.com/memomemo/memomemo/internal/model"
)

// DefaultLatency is the simulated processing delay before results are
// returned, modeling a remote classification call.
const DefaultLatency = 800 * time.Millisecond

// Heuristic is the deterministic keyword-matching classifier.
type Heuristic struct {
	// Latency is slept before returning. Zero disables the delay.
	Latency time.Duration
}

// New returns a classifier with the default simulated latency.
func New() *Heuristic {
	return &Heuristic{Latency: DefaultLatency}
}

// Classify produces metadata for the capture. It is total over any input,
// including empty content, and always returns a nil error. The simulated
// delay is not cancellable: a started classification runs to completion.
func (h *Heuristic) Classify(ctx context.Context, c model.Capture) (model.Metadata, error) {
	if h.Latency > 0 {
		time.Sleep(h.Latency)
	}

	content := c.Body()
	tags, categories := extractTagsAndCategories(content, c.Kind())

	return model.Metadata{
		Title:      generateTitle(content, c.Kind()),
		Summary:    generateSummary(content),
		Tags:       tags,
		Categories: categories,
		Topics:     detectTopics(content),
		Sentiment:  detectSentiment(content),
		Entities:   extractEntities(content),
		Language:   "en",
	}, nil
}

const (
	titleMax     = 60
	summaryMax   = 200
	rawFallback  = 150
	maxTags      = 6
	maxEntities  = 5
	maxCapitals  = 3
	titleMark    = "…"
	summaryMark  = "..."
	dateScore    = 0.9
	capitalScore = 0.6
)

// typeTitles are fallback titles when the derived title is empty.
var typeTitles = map[model.Type]string{
	model.TypeURL:   "Web Link",
	model.TypeText:  "Text Note",
	model.TypeImage: "Image",
	model.TypeAudio: "Voice Recording",
	model.TypeFile:  "Document",
}

func generateTitle(content string, kind model.Type) string {
	firstLine := content
	if i := strings.IndexByte(content, '\n'); i >= 0 {
		firstLine = content[:i]
	}

	title, truncated := truncateRunes(firstLine, titleMax)
	if truncated {
		title += titleMark
	}

	if title == "" {
		if label, ok := typeTitles[kind]; ok {
			return label
		}
		return "Untitled Memory"
	}
	return title
}

func generateSummary(content string) string {
	if !sentencePattern.MatchString(content) {
		head, _ := truncateRunes(content, rawFallback)
		return head
	}

	var sentences []string
	for _, s := range sentencePattern.Split(content, -1) {
		if strings.TrimSpace(s) != "" {
			sentences = append(sentences, s)
		}
	}
	if len(sentences) == 0 {
		head, _ := truncateRunes(content, rawFallback)
		return head
	}

	if len(sentences) > 2 {
		sentences = sentences[:2]
	}
	summary := strings.Join(sentences, ". ")
	if head, truncated := truncateRunes(summary, summaryMax); truncated {
		return head + summaryMark
	}
	return summary + "."
}

func detectSentiment(content string) model.Sentiment {
	positive := len(positivePattern.FindAllStringIndex(content, -1))
	negative := len(negativePattern.FindAllStringIndex(content, -1))
	switch {
	case positive > negative:
		return model.SentimentPositive
	case negative > positive:
		return model.SentimentNegative
	default:
		return model.SentimentNeutral
	}
}

func detectTopics(content string) []string {
	var topics []string
	for _, t := range topicPatterns {
		if t.pattern.MatchString(content) {
			topics = append(topics, t.topic)
		}
	}
	if len(topics) == 0 {
		return []string{"General"}
	}
	return topics
}

// extractEntities finds date-like substrings, then up to three capitalized
// word sequences. Dates come first; the combined list keeps the earliest
// five.
func extractEntities(content string) []model.Entity {
	var entities []model.Entity

	for _, d := range datePattern.FindAllString(content, -1) {
		entities = append(entities, model.Entity{Kind: model.EntityDate, Value: d, Confidence: dateScore})
	}

	capitals := capitalizedPattern.FindAllString(content, -1)
	if len(capitals) > maxCapitals {
		capitals = capitals[:maxCapitals]
	}
	for _, v := range capitals {
		entities = append(entities, model.Entity{Kind: model.EntityOther, Value: v, Confidence: capitalScore})
	}

	if len(entities) > maxEntities {
		entities = entities[:maxEntities]
	}
	return entities
}

// truncateRunes cuts s to at most n runes, reporting whether it was cut.
func truncateRunes(s string, n int) (string, bool) {
	runes := []rune(s)
	if len(runes) <= n {
		return s, false
	}
	return string(runes[:n]), true
}
