package classify

import (
	"regexp"
	"strings"

	"github.com/memomemo/memomemo/internal/model"
)

// tagCasing is the normalization a vocabulary applies to matched keywords.
type tagCasing int

const (
	casingCapitalized tagCasing = iota
	casingUpper
)

// vocabulary maps a fixed keyword list to its category and tag casing.
type vocabulary struct {
	category string
	casing   tagCasing
	terms    []string
}

// vocabularies are matched in declaration order against lowercased content;
// each matched term becomes a tag, and the category is added once.
var vocabularies = []vocabulary{
	{
		category: "Technology",
		casing:   casingCapitalized,
		terms: []string{
			"react", "javascript", "typescript", "python", "nodejs",
			"api", "database", "frontend", "backend", "ai",
			"machine learning", "docker", "kubernetes",
		},
	},
	{
		category: "Design",
		casing:   casingUpper,
		terms:    []string{"ui", "ux", "design", "figma", "sketch", "typography", "color"},
	},
	{
		category: "Business",
		casing:   casingCapitalized,
		terms:    []string{"meeting", "strategy", "product", "roadmap", "revenue", "growth"},
	},
	{
		category: "Learning",
		casing:   casingCapitalized,
		terms:    []string{"tutorial", "guide", "learn", "course", "documentation"},
	},
}

// typeTags are appended after vocabulary tags, one per capture kind.
var typeTags = map[model.Type]string{
	model.TypeURL:   "Article",
	model.TypeText:  "Note",
	model.TypeImage: "Visual",
	model.TypeAudio: "Audio",
}

// topicPatterns map word-boundary patterns to topic labels, collected in
// declaration order.
var topicPatterns = []struct {
	pattern *regexp.Regexp
	topic   string
}{
	{regexp.MustCompile(`(?i)\b(web|frontend|backend|fullstack)\b`), "Web Development"},
	{regexp.MustCompile(`(?i)\b(mobile|ios|android|app)\b`), "Mobile Development"},
	{regexp.MustCompile(`(?i)\b(data|analytics|visualization)\b`), "Data Science"},
	{regexp.MustCompile(`(?i)\b(ai|ml|neural|deep learning)\b`), "Artificial Intelligence"},
	{regexp.MustCompile(`(?i)\b(design|ui|ux|user experience)\b`), "Design"},
	{regexp.MustCompile(`(?i)\b(marketing|seo|content)\b`), "Marketing"},
	{regexp.MustCompile(`(?i)\b(business|strategy|management)\b`), "Business"},
	{regexp.MustCompile(`(?i)\b(tutorial|guide|how to)\b`), "Tutorial"},
}

var (
	sentencePattern = regexp.MustCompile(`[.!?]+`)
	datePattern     = regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{2,4}\b`)

	// Capitalized word sequences, e.g. "Product Roadmap".
	capitalizedPattern = regexp.MustCompile(`\b[A-Z][a-z]+(?:\s[A-Z][a-z]+)*\b`)

	positivePattern = wordListPattern("great", "excellent", "awesome", "love", "amazing", "good", "best")
	negativePattern = wordListPattern("bad", "terrible", "hate", "worst", "problem", "issue", "error")
)

func wordListPattern(words ...string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b(?:` + strings.Join(words, "|") + `)\b`)
}

func extractTagsAndCategories(content string, kind model.Type) (tags, categories []string) {
	lower := strings.ToLower(content)

	for _, v := range vocabularies {
		for _, term := range v.terms {
			if !strings.Contains(lower, term) {
				continue
			}
			tags = append(tags, applyCasing(term, v.casing))
			if !containsString(categories, v.category) {
				categories = append(categories, v.category)
			}
		}
	}

	if t, ok := typeTags[kind]; ok {
		tags = append(tags, t)
	}

	tags = dedupe(tags)
	if len(tags) > maxTags {
		tags = tags[:maxTags]
	}
	if len(categories) == 0 {
		categories = []string{"General"}
	}
	return tags, categories
}

func applyCasing(term string, c tagCasing) string {
	switch c {
	case casingUpper:
		return strings.ToUpper(term)
	default:
		return strings.ToUpper(term[:1]) + term[1:]
	}
}

func dedupe(values []string) []string {
	seen := make(map[string]bool, len(values))
	var out []string
	for _, v := range values {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

func containsString(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
