package picker

import (
	"github.com/gdamore/tcell/v2"
)

// Theme defines the color scheme for the selector.
var Theme = struct {
	Primary tcell.Color

	// Text colors
	Text    tcell.Color
	TextDim tcell.Color

	// Background colors
	Background tcell.Color

	// UI element colors
	Border    tcell.Color
	Header    tcell.Color
	Selection tcell.Color
}{
	Primary: tcell.ColorBlue,

	// Text colors
	Text:    tcell.ColorWhite,
	TextDim: tcell.ColorGray,

	// Background colors
	Background: tcell.ColorBlack,

	// UI element colors
	Border:    tcell.ColorGray,
	Header:    tcell.ColorYellow,
	Selection: tcell.ColorTeal,
}
