package ui

import (
	"fmt"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/cryocare-tools/cryocare-setup/internal/config"
)

// JSONExtension filters the configuration dialogs
const JSONExtension = ".json"

// fynePrompter implements Prompter with Fyne dialogs
type fynePrompter struct {
	window   fyne.Window
	settings *config.Settings
	text     *Localization
}

func newFynePrompter(window fyne.Window, settings *config.Settings, text *Localization) *fynePrompter {
	return &fynePrompter{window: window, settings: settings, text: text}
}

// PickFiles shows a list the user fills one file at a time through the
// standard open dialog, then confirms as a whole. No type filter is set.
func (p *fynePrompter) PickFiles(title string, onDone func(paths []string)) {
	var picked []string

	countLabel := widget.NewLabel(fmt.Sprintf(p.text.GetText(KeyFilesPickedFormat), 0))

	var list *widget.List
	list = widget.NewList(
		func() int { return len(picked) },
		func() fyne.CanvasObject {
			return container.NewBorder(nil, nil, nil, widget.NewButton(IconClose, nil), widget.NewLabel(""))
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			row := obj.(*fyne.Container)
			label := row.Objects[0].(*widget.Label)
			removeBtn := row.Objects[1].(*widget.Button)

			if id >= len(picked) {
				return
			}
			label.SetText(filepath.Base(picked[id]))
			removeBtn.OnTapped = func() {
				picked = append(picked[:id], picked[id+1:]...)
				countLabel.SetText(fmt.Sprintf(p.text.GetText(KeyFilesPickedFormat), len(picked)))
				list.Refresh()
			}
		},
	)

	addBtn := widget.NewButton(p.text.GetText(KeyAddFiles), func() {
		open := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
			if err != nil {
				dialog.ShowError(err, p.window)
				return
			}
			if reader == nil {
				return // User cancelled
			}
			defer reader.Close()

			path := reader.URI().Path()
			for _, existing := range picked {
				if existing == path {
					return
				}
			}
			picked = append(picked, path)
			p.settings.SetLastDirectory(filepath.Dir(path))
			countLabel.SetText(fmt.Sprintf(p.text.GetText(KeyFilesPickedFormat), len(picked)))
			list.Refresh()
		}, p.window)
		p.startIn(open)
		open.Show()
	})
	addBtn.Importance = widget.HighImportance

	clearBtn := widget.NewButton(p.text.GetText(KeyClearAll), func() {
		picked = nil
		countLabel.SetText(fmt.Sprintf(p.text.GetText(KeyFilesPickedFormat), 0))
		list.Refresh()
	})

	hint := widget.NewLabel(p.text.GetText(KeyPickerHint))
	hint.Wrapping = fyne.TextWrapWord

	scroll := container.NewScroll(list)
	scroll.SetMinSize(fyne.NewSize(PickerListWidth, PickerListHeight))

	content := container.NewBorder(
		container.NewVBox(hint, container.NewHBox(addBtn, clearBtn), countLabel),
		nil, nil, nil,
		scroll,
	)

	dialog.ShowCustomConfirm(title, p.text.GetText(KeyUseSelected), p.text.GetText(KeyCancel), content, func(confirmed bool) {
		if !confirmed {
			onDone(nil)
			return
		}
		onDone(picked)
	}, p.window)
}

// PickSavePath shows the save dialog pre-filled with defaultName
func (p *fynePrompter) PickSavePath(_, defaultName string, onDone func(path string, err error)) {
	save := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		onDone(saveTarget(writer, err))
	}, p.window)
	save.SetFileName(defaultName)
	save.SetFilter(storage.NewExtensionFileFilter([]string{JSONExtension}))
	p.startIn(save)
	save.Show()
}

// saveTarget turns the save dialog result into the destination path.
// Fyne has already created (or truncated) the file when the callback runs,
// so the path is used exactly as chosen: the dialog's overwrite prompt
// covered that name and no other file is touched. The writer is closed
// and the caller replaces the file atomically.
func saveTarget(writer fyne.URIWriteCloser, err error) (string, error) {
	if err != nil {
		return "", err
	}
	if writer == nil {
		return "", nil // User cancelled
	}
	path := writer.URI().Path()
	if closeErr := writer.Close(); closeErr != nil {
		return path, closeErr
	}
	return path, nil
}

// PickConfig shows the open dialog filtered to .json files. The standard
// file dialog has no title of its own.
func (p *fynePrompter) PickConfig(_ string, onDone func(path string)) {
	open := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, p.window)
			onDone("")
			return
		}
		if reader == nil {
			onDone("") // User cancelled
			return
		}
		path := reader.URI().Path()
		reader.Close()
		p.settings.SetLastDirectory(filepath.Dir(path))
		onDone(path)
	}, p.window)
	open.SetFilter(storage.NewExtensionFileFilter([]string{JSONExtension}))
	p.startIn(open)
	open.Show()
}

func (p *fynePrompter) ShowInfo(title, message string) {
	dialog.ShowInformation(title, message, p.window)
}

func (p *fynePrompter) ShowError(err error) {
	dialog.ShowError(err, p.window)
}

// startIn points a file dialog at the last used folder, when it still exists
func (p *fynePrompter) startIn(d *dialog.FileDialog) {
	dir := p.settings.GetLastDirectory()
	if dir == "" {
		return
	}
	lister, err := storage.ListerForURI(storage.NewFileURI(dir))
	if err != nil {
		return
	}
	d.SetLocation(lister)
}
