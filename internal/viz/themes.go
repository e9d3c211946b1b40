package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the colour scheme of the playback view.
type Theme struct {
	Name   string
	Vacuum lipgloss.Color
	Drag   lipgloss.Color
	Marker lipgloss.Color
	Axes   lipgloss.Color
	Accent lipgloss.Color
	Text   lipgloss.Color
	Muted  lipgloss.Color
}

var (
	ThemeClassic = Theme{
		Name:   "classic",
		Vacuum: lipgloss.Color("#4c9be8"),
		Drag:   lipgloss.Color("#ff5555"),
		Marker: lipgloss.Color("#ffffff"),
		Axes:   lipgloss.Color("#666666"),
		Accent: lipgloss.Color("#00ffff"),
		Text:   lipgloss.Color("#ffffff"),
		Muted:  lipgloss.Color("#888899"),
	}

	ThemeRetroGreen = Theme{
		Name:   "retro",
		Vacuum: lipgloss.Color("#00ff00"),
		Drag:   lipgloss.Color("#88ff88"),
		Marker: lipgloss.Color("#ffff00"),
		Axes:   lipgloss.Color("#005500"),
		Accent: lipgloss.Color("#00cc00"),
		Text:   lipgloss.Color("#00ff00"),
		Muted:  lipgloss.Color("#005500"),
	}

	ThemeOcean = Theme{
		Name:   "ocean",
		Vacuum: lipgloss.Color("#00a8cc"),
		Drag:   lipgloss.Color("#ffd700"),
		Marker: lipgloss.Color("#e0f0ff"),
		Axes:   lipgloss.Color("#4488aa"),
		Accent: lipgloss.Color("#0077be"),
		Text:   lipgloss.Color("#e0f0ff"),
		Muted:  lipgloss.Color("#4488aa"),
	}

	ThemeSunset = Theme{
		Name:   "sunset",
		Vacuum: lipgloss.Color("#feca57"),
		Drag:   lipgloss.Color("#ff6b6b"),
		Marker: lipgloss.Color("#fff5f5"),
		Axes:   lipgloss.Color("#8b6b8c"),
		Accent: lipgloss.Color("#ff9ff3"),
		Text:   lipgloss.Color("#fff5f5"),
		Muted:  lipgloss.Color("#8b6b8c"),
	}

	CurrentTheme = ThemeClassic

	Themes = []Theme{
		ThemeClassic,
		ThemeRetroGreen,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to classic.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeClassic
}

func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// NextTheme returns the theme after name in Themes, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}
