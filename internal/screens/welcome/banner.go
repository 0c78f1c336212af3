package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quickcode/internal/ui/theme"
)

const bannerArt = `
  ___        _      _     ___          _
 / _ \ _   _(_) ___| | __/ __|___   __| | ___
| | | | | | | |/ __| |/ / |  / _ \ / _` + "`" + ` |/ _ \
| |_| | |_| | | (__|   <| |_| (_) | (_| |  __/
 \__\_\\__,_|_|\___|_|\_\\___\___/ \__,_|\___|`

const bannerCompact = "Q U I C K C O D E"

// RenderBanner returns the QuickCode banner in the accent color. Uses a
// compact fallback for terminals narrower than 50 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true)

	if width < 50 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
