package renderer

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/dshills/rite/internal/config"
)

// Theme holds the styles the view draws with.
type Theme struct {
	Text   tcell.Style
	Status tcell.Style
	Cursor tcell.Color
}

// DefaultTheme uses the terminal's own colors.
func DefaultTheme() Theme {
	return Theme{
		Text:   tcell.StyleDefault,
		Status: tcell.StyleDefault.Reverse(true),
		Cursor: tcell.ColorDefault,
	}
}

// ThemeFromPalette builds a true-color theme from parsed config colors.
func ThemeFromPalette(p config.Palette) Theme {
	return Theme{
		Text: tcell.StyleDefault.
			Foreground(convertColor(p.Foreground)).
			Background(convertColor(p.Background)),
		Status: tcell.StyleDefault.
			Foreground(convertColor(p.StatusForeground)).
			Background(convertColor(p.StatusBackground)).
			Bold(true),
		Cursor: convertColor(p.Cursor),
	}
}

// convertColor converts a colorful.Color to tcell.Color.
func convertColor(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
