package ui

import (
	"fyne.io/fyne/v2"
)

const (
	AppIcon = "cryocare-setup.png"
)

// LoadLogoResource loads the window icon from the working directory.
// The icon is optional; callers ignore the error.
func LoadLogoResource() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(AppIcon)
}
