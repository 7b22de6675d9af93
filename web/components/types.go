package components

// ThemePreview is what the gallery shows for one theme preset.
type ThemePreview struct {
	Name  string
	Label string
	Style string
	Eye   string
	FG    string
	BG    string
	// Image is a data URI of a sample render, empty when it failed.
	Image string
	// Dark marks backgrounds that need light text.
	Dark bool
}
