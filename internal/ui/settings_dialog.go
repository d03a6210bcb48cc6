package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/cryocare-tools/cryocare-setup/internal/config"
)

// SettingsDialog edits where the pipeline programs are found and run
type SettingsDialog struct {
	settings *config.Settings
	window   fyne.Window
	text     *Localization
	dialog   *dialog.ConfirmDialog
	onSaved  func()

	// UI components
	toolsDirEntry   *widget.Entry
	workDirEntry    *widget.Entry
	languageSelect  *widget.Select
	languageByLabel map[string]string
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// preferences have been written.
func NewSettingsDialog(settings *config.Settings, window fyne.Window, text *Localization, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings: settings,
		window:   window,
		text:     text,
		onSaved:  onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

func (sd *SettingsDialog) createUI() {
	sd.toolsDirEntry = widget.NewEntry()
	sd.toolsDirEntry.SetPlaceHolder(sd.text.GetText(KeyUsePath))
	toolsRow := container.NewBorder(nil, nil, nil,
		widget.NewButton(sd.text.GetText(KeyBrowse), func() { sd.browseInto(sd.toolsDirEntry) }),
		sd.toolsDirEntry)

	sd.workDirEntry = widget.NewEntry()
	sd.workDirEntry.SetPlaceHolder(sd.text.GetText(KeyCurrentDirectory))
	workRow := container.NewBorder(nil, nil, nil,
		widget.NewButton(sd.text.GetText(KeyBrowse), func() { sd.browseInto(sd.workDirEntry) }),
		sd.workDirEntry)

	// The select shows display names; map them back to codes on save
	sd.languageByLabel = make(map[string]string)
	var labels []string
	for _, code := range sortedKeys(sd.settings.GetLanguageOptions()) {
		label := sd.settings.GetLanguageOptions()[code]
		sd.languageByLabel[label] = code
		labels = append(labels, label)
	}
	sd.languageSelect = widget.NewSelect(labels, nil)

	form := container.NewVBox(
		widget.NewLabel(sd.text.GetText(KeyToolsDirectory)+":"),
		toolsRow,

		widget.NewLabel(sd.text.GetText(KeyWorkingDirectory)+":"),
		workRow,

		widget.NewSeparator(),

		widget.NewLabel(sd.text.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.text.GetText(KeySettings),
		sd.text.GetText(KeySave),
		sd.text.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsWidth, SettingsHeight))
}

func (sd *SettingsDialog) loadCurrentSettings() {
	sd.toolsDirEntry.SetText(sd.settings.GetToolsDirectory())
	sd.workDirEntry.SetText(sd.settings.GetWorkingDirectory())

	current := sd.settings.GetLanguage()
	for label, code := range sd.languageByLabel {
		if code == current {
			sd.languageSelect.SetSelected(label)
		}
	}
}

func (sd *SettingsDialog) browseInto(entry *widget.Entry) {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		entry.SetText(uri.Path())
	}, sd.window)
}

func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.apply()
	dialog.ShowInformation(sd.text.GetText(KeySettings), sd.text.GetText(KeySettingsSaved), sd.window)
}

// apply writes the form into the preferences. Empty directories are valid
// and restore the PATH / current directory behaviour.
func (sd *SettingsDialog) apply() {
	sd.settings.SetToolsDirectory(sd.toolsDirEntry.Text)
	sd.settings.SetWorkingDirectory(sd.workDirEntry.Text)

	if code, ok := sd.languageByLabel[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
