// internal/domain/docs/media.go
package docs

// MediaDoc is one record in a tenant's flat media catalog.
type MediaDoc struct {
	ID              string `yaml:"id" json:"id"`
	Type            string `yaml:"type" json:"type"`
	Src             string `yaml:"src" json:"src"`
	Alt             string `yaml:"alt" json:"alt"`
	Caption         string `yaml:"caption" json:"caption"`
	Width           int    `yaml:"width" json:"width"`
	Height          int    `yaml:"height" json:"height"`
	DurationSeconds int    `yaml:"duration_seconds" json:"duration_seconds"`
}
