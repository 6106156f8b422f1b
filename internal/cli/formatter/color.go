package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/lite/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StatusBadge renders the display group of a ranked item.
func StatusBadge(s domain.ItemStatus) string {
	switch s {
	case domain.StatusWatched:
		return StyleBlue.Render("✔ watched")
	case domain.StatusFavorite:
		return StyleYellow.Render("★ favorite")
	case domain.StatusDiscovery:
		return StyleGreen.Render("◆ discovery")
	default:
		return StyleDim.Render(string(s))
	}
}

// BucketBadge renders a Day/Night bucket, or "" when there is none.
func BucketBadge(b domain.Bucket) string {
	switch b {
	case domain.BucketDay:
		return StyleYellow.Render("☀ Day")
	case domain.BucketNight:
		return StylePurple.Render("☾ Night")
	default:
		return ""
	}
}

// ContextLabel names the active viewing context.
func ContextLabel(c domain.ViewingContext) string {
	if c == domain.ContextNight {
		return StylePurple.Render("NIGHT MODE")
	}
	return StyleYellow.Render("DAY MODE")
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
