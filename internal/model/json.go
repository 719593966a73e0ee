package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// memoryJSON is the flat wire form of a Memory. Variant-specific capture
// fields are present only for the kinds they apply to.
type memoryJSON struct {
	ID          string    `json:"id"`
	Type        Type      `json:"type"`
	Content     string    `json:"content"`
	Source      string    `json:"source,omitempty"`
	OriginalURL string    `json:"original_url,omitempty"`
	FileURL     string    `json:"file_url,omitempty"`
	FileName    string    `json:"file_name,omitempty"`
	Title       string    `json:"title"`
	Summary     string    `json:"summary"`
	Tags        []string  `json:"tags"`
	Categories  []string  `json:"categories"`
	Topics      []string  `json:"topics"`
	Sentiment   Sentiment `json:"sentiment"`
	Entities    []Entity  `json:"entities,omitempty"`
	Language    string    `json:"language,omitempty"`
	Collections []string  `json:"collection_ids,omitempty"`
	IsFavorite  bool      `json:"is_favorite"`
	IsArchived  bool      `json:"is_archived"`
	Importance  int       `json:"importance"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	AccessedAt  time.Time `json:"accessed_at"`
	AccessCount int       `json:"access_count"`
}

// MarshalJSON flattens the capture variant into the wire form.
func (m Memory) MarshalJSON() ([]byte, error) {
	w := memoryJSON{
		ID:          m.ID,
		Type:        m.Type(),
		Content:     m.Content(),
		Title:       m.Title,
		Summary:     m.Summary,
		Tags:        m.Tags,
		Categories:  m.Categories,
		Topics:      m.Topics,
		Sentiment:   m.Sentiment,
		Entities:    m.Entities,
		Language:    m.Language,
		Collections: m.CollectionIDs,
		IsFavorite:  m.IsFavorite,
		IsArchived:  m.IsArchived,
		Importance:  m.Importance,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		AccessedAt:  m.AccessedAt,
		AccessCount: m.AccessCount,
	}

	switch c := m.Capture.(type) {
	case URLCapture:
		w.Source = c.Source
		w.OriginalURL = c.URL
	case TextCapture:
		w.Source = c.Source
	case ImageCapture:
		w.Source = c.Source
		w.FileURL = c.FileURL
		w.FileName = c.FileName
	case AudioCapture:
		w.Source = c.Source
		w.FileURL = c.FileURL
		w.FileName = c.FileName
	case FileCapture:
		w.Source = c.Source
		w.FileURL = c.FileURL
		w.FileName = c.FileName
	}

	return json.Marshal(w)
}

// UnmarshalJSON reconstructs the capture variant from the wire form.
func (m *Memory) UnmarshalJSON(data []byte) error {
	var w memoryJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	capture, err := captureFromWire(w)
	if err != nil {
		return err
	}

	*m = Memory{
		ID:      w.ID,
		Capture: capture,
		Metadata: Metadata{
			Title:      w.Title,
			Summary:    w.Summary,
			Tags:       w.Tags,
			Categories: w.Categories,
			Topics:     w.Topics,
			Sentiment:  w.Sentiment,
			Entities:   w.Entities,
			Language:   w.Language,
		},
		CollectionIDs: w.Collections,
		IsFavorite:    w.IsFavorite,
		IsArchived:    w.IsArchived,
		Importance:    w.Importance,
		CreatedAt:     w.CreatedAt,
		UpdatedAt:     w.UpdatedAt,
		AccessedAt:    w.AccessedAt,
		AccessCount:   w.AccessCount,
	}
	return nil
}

func captureFromWire(w memoryJSON) (Capture, error) {
	switch w.Type {
	case TypeURL:
		return URLCapture{Content: w.Content, Source: w.Source, URL: w.OriginalURL}, nil
	case TypeText:
		return TextCapture{Content: w.Content, Source: w.Source}, nil
	case TypeImage:
		return ImageCapture{Content: w.Content, Source: w.Source, FileURL: w.FileURL, FileName: w.FileName}, nil
	case TypeAudio:
		return AudioCapture{Content: w.Content, Source: w.Source, FileURL: w.FileURL, FileName: w.FileName}, nil
	case TypeFile:
		return FileCapture{Content: w.Content, Source: w.Source, FileURL: w.FileURL, FileName: w.FileName}, nil
	default:
		return nil, fmt.Errorf("unknown memory type %q", w.Type)
	}
}
