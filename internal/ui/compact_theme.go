package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// CompactTheme keeps the three stage tabs on a small window: the banner blue
// drives the progress bar and the run buttons, and spacing is tightened so
// each tab fits without scrolling.
type CompactTheme struct{}

// NewCompactTheme creates the application theme
func NewCompactTheme() fyne.Theme {
	return &CompactTheme{}
}

// Color maps the accent and status colors; everything else is the default
func (t *CompactTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary, theme.ColorNameFocus:
		return HeaderColor
	case theme.ColorNameSelection:
		return color.NRGBA{R: HeaderColor.R, G: HeaderColor.G, B: HeaderColor.B, A: 0x40}
	case theme.ColorNameSuccess:
		return StageDoneColor
	case theme.ColorNameError:
		return StageFailedColor
	}

	return theme.DefaultTheme().Color(name, variant)
}

func (t *CompactTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *CompactTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size shrinks padding so four buttons and two status labels fit in a tab
func (t *CompactTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 4
	case theme.SizeNameInnerPadding:
		return 7
	case theme.SizeNameText:
		return 13
	}

	return theme.DefaultTheme().Size(name)
}
