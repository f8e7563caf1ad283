// internal/domain/models/media.go
package models

// MediaType classifies a media record.
type MediaType string

const (
	MediaImage    MediaType = "image"
	MediaVideo    MediaType = "video"
	MediaDocument MediaType = "document"
	MediaAudio    MediaType = "audio"
)

// MediaTypes is the canonical list of accepted media types.
var MediaTypes = []MediaType{MediaImage, MediaVideo, MediaDocument, MediaAudio}

// Visual reports whether the type carries dimensional metadata.
func (t MediaType) Visual() bool { return t == MediaImage || t == MediaVideo }

// TimeBased reports whether the type carries a duration.
func (t MediaType) TimeBased() bool { return t == MediaVideo || t == MediaAudio }

// Media is one resolved media record. Immutable once resolved; referenced
// (never owned) by every other entity with a photo or gallery.
type Media struct {
	ID              string    `json:"id"`
	Type            MediaType `json:"type"`
	Src             string    `json:"src"`
	Alt             string    `json:"alt,omitempty"`
	Caption         string    `json:"caption,omitempty"`
	Width           int       `json:"width,omitempty"`
	Height          int       `json:"height,omitempty"`
	DurationSeconds int       `json:"duration_seconds,omitempty"`
}
