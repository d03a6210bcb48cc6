package ui

import "image/color"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Window sizing
const (
	WindowWidth  float32 = 560
	WindowHeight float32 = 520
)

// Progress bar range: stage runs report 0 at start and 100 on success
const (
	ProgressMin  = 0
	ProgressMax  = 100
	ProgressDone = ProgressMax
)

// IconClose labels the remove button of picked files
const IconClose = "×"

// Layout sizing
const (
	HeaderTextSize   float32 = 18
	PickerListWidth  float32 = 420
	PickerListHeight float32 = 220
	SettingsWidth    float32 = 500
	SettingsHeight   float32 = 300
)

// Banner colors: white on dodger blue
var (
	HeaderColor     = color.NRGBA{R: 30, G: 144, B: 255, A: 255}
	HeaderTextColor = color.White
)

// Outcome colors of a stage run
var (
	StageDoneColor   = color.NRGBA{R: 46, G: 160, B: 67, A: 255}
	StageFailedColor = color.NRGBA{R: 198, G: 40, B: 40, A: 255}
)
