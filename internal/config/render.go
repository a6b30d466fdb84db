package config

// RenderConfig holds settings for the text board.
type RenderConfig struct {
	// ShowCoordinates prints rank numbers and file letters around the board
	ShowCoordinates bool
}

// NewRenderConfig creates a RenderConfig with default values.
func NewRenderConfig() *RenderConfig {
	return &RenderConfig{
		ShowCoordinates: true,
	}
}
