package ui

import (
	"fmt"
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/cryocare-tools/cryocare-setup/internal/config"
	"github.com/cryocare-tools/cryocare-setup/internal/logger"
	"github.com/cryocare-tools/cryocare-setup/internal/model"
	"github.com/cryocare-tools/cryocare-setup/internal/pipeline"
	"github.com/cryocare-tools/cryocare-setup/internal/platform"
	"github.com/cryocare-tools/cryocare-setup/internal/session"
)

const componentUI = "ui"

// selectionLabels are the two status labels of one tab
type selectionLabels struct {
	odd  *widget.Label
	even *widget.Label
}

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	session      *session.Session
	runner       pipeline.Executor
	controller   *Controller
	log          *logger.Logger

	header      *canvas.Text
	tabs        *container.AppTabs
	progressBar *widget.ProgressBar
	runningText *widget.Label

	prepareLabels    selectionLabels
	predictionLabels selectionLabels

	// buttons keyed by localization key, so texts can be refreshed
	buttons    map[string]*widget.Button
	runButtons []*widget.Button
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, runner pipeline.Executor, log *logger.Logger) *RootUI {
	if log == nil {
		log = logger.Nop()
	}

	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	sess := session.New()
	prompter := newFynePrompter(window, settings, localization)

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		session:      sess,
		runner:       runner,
		controller:   NewController(sess, runner, prompter, localization, log),
		log:          log,
		buttons:      make(map[string]*widget.Button),
	}

	ui.applyLocations()

	window.SetTitle(localization.GetText(KeyAppTitle))

	// Run updates arrive from the runner goroutine
	runner.SetUpdateCallback(func(result *model.ExecutionResult) {
		fyne.Do(func() { ui.onRunUpdate(result) })
	})

	ui.setupUI()
	return ui
}

// Controller exposes the controller driving the window
func (ui *RootUI) Controller() *Controller {
	return ui.controller
}

func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.header = canvas.NewText(ui.localization.GetText(KeyHeader), HeaderTextColor)
	ui.header.TextSize = HeaderTextSize
	ui.header.TextStyle = fyne.TextStyle{Bold: true}
	ui.header.Alignment = fyne.TextAlignCenter

	background := canvas.NewRectangle(HeaderColor)
	banner := container.NewStack(background, container.NewPadded(ui.header))

	ui.prepareLabels = newSelectionLabels()
	ui.predictionLabels = newSelectionLabels()
	ui.session.Subscribe(ui.onSelectionChanged)
	ui.refreshSelectionLabels()

	ui.progressBar = widget.NewProgressBar()
	ui.progressBar.Min = ProgressMin
	ui.progressBar.Max = ProgressMax
	ui.controller.SetProgressSink(ui.progressBar.SetValue)
	ui.controller.SetBusyCallback(ui.onBusyChanged)

	ui.runningText = widget.NewLabel("")
	ui.runningText.Hide()

	ui.tabs = container.NewAppTabs(
		container.NewTabItem(ui.localization.GetText(KeyTabPrepare), ui.prepareTab()),
		container.NewTabItem(ui.localization.GetText(KeyTabTraining), ui.trainingTab()),
		container.NewTabItem(ui.localization.GetText(KeyTabPrediction), ui.predictionTab()),
	)

	content := container.NewBorder(
		banner,
		container.NewVBox(ui.runningText, ui.progressBar),
		nil,
		nil,
		ui.tabs,
	)

	ui.window.SetContent(content)
	ui.log.Debug(componentUI, "UI setup completed", nil)
}

func newSelectionLabels() selectionLabels {
	l := selectionLabels{odd: widget.NewLabel(""), even: widget.NewLabel("")}
	l.odd.Wrapping = fyne.TextWrapWord
	l.even.Wrapping = fyne.TextWrapWord
	return l
}

func (ui *RootUI) button(key string, onTap func()) *widget.Button {
	btn := widget.NewButton(ui.localization.GetText(key), onTap)
	ui.buttons[key] = btn
	return btn
}

// generateButton is labelled with the name of the file it writes
func (ui *RootUI) generateButton(stage model.Stage) *widget.Button {
	text := fmt.Sprintf(ui.localization.GetText(KeyGenerateFormat), stage.ConfigName())
	btn := widget.NewButton(text, func() { ui.controller.GenerateConfig(stage) })
	ui.buttons[generateKey(stage)] = btn
	return btn
}

func (ui *RootUI) runButton(key string, stage model.Stage) *widget.Button {
	btn := ui.button(key, func() { ui.controller.RunStage(stage) })
	btn.Importance = widget.HighImportance
	ui.runButtons = append(ui.runButtons, btn)
	return btn
}

func (ui *RootUI) prepareTab() fyne.CanvasObject {
	return container.NewVBox(
		ui.button(KeyImportOddTraining, func() { ui.controller.SelectFiles(model.SelectionOdd) }),
		ui.button(KeyImportEvenTraining, func() { ui.controller.SelectFiles(model.SelectionEven) }),
		ui.generateButton(model.StageExtraction),
		ui.runButton(KeyPrepareData, model.StageExtraction),
		widget.NewSeparator(),
		ui.prepareLabels.odd,
		ui.prepareLabels.even,
	)
}

func (ui *RootUI) trainingTab() fyne.CanvasObject {
	return container.NewVBox(
		ui.generateButton(model.StageTraining),
		ui.runButton(KeyRunTraining, model.StageTraining),
	)
}

func (ui *RootUI) predictionTab() fyne.CanvasObject {
	return container.NewVBox(
		ui.button(KeyImportOddDenoising, func() { ui.controller.SelectFiles(model.SelectionOdd) }),
		ui.button(KeyImportEvenDenoising, func() { ui.controller.SelectFiles(model.SelectionEven) }),
		ui.generateButton(model.StagePrediction),
		ui.runButton(KeyRunPrediction, model.StagePrediction),
		widget.NewSeparator(),
		ui.predictionLabels.odd,
		ui.predictionLabels.even,
	)
}

func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)
	workingItem := fyne.NewMenuItem(ui.localization.GetText(KeyOpenWorkingFolder), ui.onOpenWorkingFolder)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	available := ui.localization.GetAvailableLanguages()
	for _, code := range sortedKeys(available) {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(available[code], func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	aboutItem := fyne.NewMenuItem(ui.localization.GetText(KeyAbout), ui.onShowAbout)

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem, workingItem),
		languageMenu,
		fyne.NewMenu(ui.localization.GetText(KeyAbout), aboutItem),
	))
}

func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.header.Text = ui.localization.GetText(KeyHeader)
	ui.header.Refresh()

	for key, btn := range ui.buttons {
		if stage, ok := stageOfGenerateKey(key); ok {
			btn.SetText(fmt.Sprintf(ui.localization.GetText(KeyGenerateFormat), stage.ConfigName()))
			continue
		}
		btn.SetText(ui.localization.GetText(key))
	}

	ui.tabs.Items[0].Text = ui.localization.GetText(KeyTabPrepare)
	ui.tabs.Items[1].Text = ui.localization.GetText(KeyTabTraining)
	ui.tabs.Items[2].Text = ui.localization.GetText(KeyTabPrediction)
	ui.tabs.Refresh()

	ui.refreshSelectionLabels()
}

func (ui *RootUI) onSelectionChanged(model.FileSelection) {
	ui.refreshSelectionLabels()
}

// refreshSelectionLabels shows the stored odd/even files on both tabs
func (ui *RootUI) refreshSelectionLabels() {
	odd := ui.localization.GetText(KeyOddSelected) + ui.session.Selection(model.SelectionOdd).Joined()
	even := ui.localization.GetText(KeyEvenSelected) + ui.session.Selection(model.SelectionEven).Joined()

	for _, labels := range []selectionLabels{ui.prepareLabels, ui.predictionLabels} {
		labels.odd.SetText(odd)
		labels.even.SetText(even)
	}
}

// onBusyChanged disables every stage trigger while a stage is in flight
func (ui *RootUI) onBusyChanged(busy bool) {
	for _, btn := range ui.runButtons {
		if busy {
			btn.Disable()
		} else {
			btn.Enable()
		}
	}
}

func (ui *RootUI) onRunUpdate(result *model.ExecutionResult) {
	if result == nil {
		return
	}
	switch {
	case result.Status.IsActive():
		ui.runningText.SetText(fmt.Sprintf(ui.localization.GetText(KeyRunningFormat), result.Stage.Executable()))
		ui.runningText.Show()
	case result.Status.IsFinished():
		ui.runningText.Hide()
	}
}

func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.window, ui.localization, ui.onSettingsSaved).Show()
}

func (ui *RootUI) onSettingsSaved() {
	ui.applyLocations()

	lang := ui.settings.GetLanguage()
	if lang != ui.localization.GetCurrentLanguage() {
		ui.localization.SetLanguage(lang)
		ui.refreshUITexts()
		ui.createMenu()
	}
}

// applyLocations pushes the tools and working directories to the runner
func (ui *RootUI) applyLocations() {
	locator, ok := ui.runner.(pipeline.Locator)
	if !ok {
		return
	}
	locator.SetToolsDirectory(ui.settings.GetToolsDirectory())
	locator.SetWorkingDirectory(ui.settings.GetWorkingDirectory())
}

func (ui *RootUI) onOpenWorkingFolder() {
	dir, err := platform.WorkingDirectory(ui.settings.GetWorkingDirectory())
	if err == nil {
		err = platform.CreateDirectoryIfNotExists(dir)
	}
	if err == nil {
		err = platform.OpenFolder(dir)
	}
	if err != nil {
		ui.log.Error(componentUI, "Failed to open working folder", err, map[string]interface{}{
			"dir": dir,
		})
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorOpeningFolder), err), ui.window)
	}
}

func (ui *RootUI) onShowAbout() {
	dialog.ShowInformation(ui.localization.GetText(KeyAbout), ui.localization.GetText(KeyAboutText), ui.window)
}

func generateKey(stage model.Stage) string {
	return KeyGenerateFormat + ":" + stage.String()
}

func stageOfGenerateKey(key string) (model.Stage, bool) {
	for _, stage := range model.AllStages {
		if key == generateKey(stage) {
			return stage, true
		}
	}
	return 0, false
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
