// Package model defines the core memory data types.
package model

import "time"

// Type identifies the kind of captured content.
type Type string

const (
	TypeURL   Type = "url"
	TypeText  Type = "text"
	TypeImage Type = "image"
	TypeAudio Type = "audio"
	TypeFile  Type = "file"
)

// ValidTypes are the allowed memory types.
var ValidTypes = map[Type]bool{
	TypeURL:   true,
	TypeText:  true,
	TypeImage: true,
	TypeAudio: true,
	TypeFile:  true,
}

// Sentiment is the detected emotional lean of captured content.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// EntityKind classifies an extracted entity.
type EntityKind string

const (
	EntityPerson       EntityKind = "person"
	EntityPlace        EntityKind = "place"
	EntityOrganization EntityKind = "organization"
	EntityDate         EntityKind = "date"
	EntityOther        EntityKind = "other"
)

// Entity is a single extracted entity with a confidence score.
type Entity struct {
	Kind       EntityKind `json:"kind"`
	Value      string     `json:"value"`
	Confidence float64    `json:"confidence"`
}

// Metadata is the derived payload produced by a classifier.
type Metadata struct {
	Title      string    `json:"title"`
	Summary    string    `json:"summary"`
	Tags       []string  `json:"tags"`
	Categories []string  `json:"categories"`
	Topics     []string  `json:"topics"`
	Sentiment  Sentiment `json:"sentiment"`
	Entities   []Entity  `json:"entities"`
	Language   string    `json:"language"`
}

// DefaultImportance is assigned to every new memory. There is no mutator.
const DefaultImportance = 50

// Memory is a single captured unit of content plus its derived metadata.
// ID, Capture and CreatedAt never change after creation.
type Memory struct {
	ID      string
	Capture Capture
	Metadata

	CollectionIDs []string
	IsFavorite    bool
	IsArchived    bool
	Importance    int

	CreatedAt   time.Time
	UpdatedAt   time.Time
	AccessedAt  time.Time
	AccessCount int
}

// Type returns the capture kind of the memory.
func (m Memory) Type() Type {
	if m.Capture == nil {
		return ""
	}
	return m.Capture.Kind()
}

// Content returns the raw captured payload.
func (m Memory) Content() string {
	if m.Capture == nil {
		return ""
	}
	return m.Capture.Body()
}

// Clone returns a deep copy of the memory. Capture variants are value
// types, so only the slices need copying.
func (m Memory) Clone() Memory {
	c := m
	c.Tags = append([]string(nil), m.Tags...)
	c.Categories = append([]string(nil), m.Categories...)
	c.Topics = append([]string(nil), m.Topics...)
	c.Entities = append([]Entity(nil), m.Entities...)
	c.CollectionIDs = append([]string(nil), m.CollectionIDs...)
	return c
}
