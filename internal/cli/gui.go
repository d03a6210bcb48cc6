package cli

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/cryocare-tools/cryocare-setup/internal/logger"
	"github.com/cryocare-tools/cryocare-setup/internal/pipeline"
	"github.com/cryocare-tools/cryocare-setup/internal/ui"
)

const (
	AppID   = "fr.ibs.cryocare-setup"
	AppName = "CryoCARE Setup"
)

// RunGUI opens the main window and blocks until it is closed
func RunGUI(version string, log *logger.Logger) error {
	log.Info(component, "Starting desktop UI", map[string]interface{}{
		"version": version,
	})

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	if icon, err := ui.LoadLogoResource(); err == nil {
		myApp.SetIcon(icon)
	}

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	runner := pipeline.NewService(log)
	ui.NewRootUI(myWindow, myApp, runner, log)

	myWindow.ShowAndRun()
	return nil
}
