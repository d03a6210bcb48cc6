package ui

import (
	"strings"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/cryocare-tools/cryocare-setup/internal/config"
	"github.com/cryocare-tools/cryocare-setup/internal/model"
)

func newTestRootUI(t *testing.T) (*RootUI, *fakePrompter) {
	t.Helper()
	app := test.NewApp()
	t.Cleanup(app.Quit)
	app.Preferences().SetString(config.KeyLanguage, "en")

	window := test.NewWindow(nil)
	t.Cleanup(window.Close)

	ui := NewRootUI(window, app, &fakeRunner{}, nil)
	prompter := &fakePrompter{}
	ui.controller.prompter = prompter
	return ui, prompter
}

func TestRootUILayout(t *testing.T) {
	ui, _ := newTestRootUI(t)

	if got := ui.window.Title(); got != "CryoCARE - setup" {
		t.Errorf("title = %q", got)
	}
	if len(ui.tabs.Items) != 3 {
		t.Fatalf("tabs = %d, want 3", len(ui.tabs.Items))
	}
	wantTabs := []string{"Prepare Training Data", "Run Training", "Run Predictions"}
	for i, want := range wantTabs {
		if ui.tabs.Items[i].Text != want {
			t.Errorf("tab %d = %q, want %q", i, ui.tabs.Items[i].Text, want)
		}
	}
	if len(ui.runButtons) != 3 {
		t.Errorf("run buttons = %d, want 3", len(ui.runButtons))
	}
	if ui.prepareLabels.odd.Text != "Odd Files Selected: " {
		t.Errorf("initial odd label = %q", ui.prepareLabels.odd.Text)
	}
}

func TestRootUISelectionUpdatesBothTabs(t *testing.T) {
	ui, prompter := newTestRootUI(t)

	prompter.files = []string{"/d/a.mrc", "/d/b.txt", "/d/c.tif"}
	test.Tap(ui.buttons[KeyImportOddTraining])

	want := "Odd Files Selected: /d/a.mrc, /d/c.tif"
	if ui.prepareLabels.odd.Text != want {
		t.Errorf("prepare odd = %q, want %q", ui.prepareLabels.odd.Text, want)
	}
	if ui.predictionLabels.odd.Text != want {
		t.Errorf("prediction odd = %q, want %q", ui.predictionLabels.odd.Text, want)
	}
	if ui.predictionLabels.even.Text != "Even Files Selected: " {
		t.Errorf("even label changed: %q", ui.predictionLabels.even.Text)
	}
}

func TestRootUIBusyDisablesRunButtons(t *testing.T) {
	ui, _ := newTestRootUI(t)

	ui.onBusyChanged(true)
	for _, btn := range ui.runButtons {
		if !btn.Disabled() {
			t.Errorf("%q should be disabled", btn.Text)
		}
	}

	ui.onBusyChanged(false)
	for _, btn := range ui.runButtons {
		if btn.Disabled() {
			t.Errorf("%q should be enabled", btn.Text)
		}
	}
}

func TestRootUIRunStageSetsProgress(t *testing.T) {
	ui, prompter := newTestRootUI(t)
	ui.controller.background = func(f func()) { f() }
	ui.controller.main = func(f func()) { f() }

	prompter.configPath = "/cfg/train_config.json"
	test.Tap(ui.buttons[KeyRunTraining])

	if ui.progressBar.Value != ProgressDone {
		t.Errorf("progress = %v, want %v", ui.progressBar.Value, ProgressDone)
	}
}

func TestRootUIRunningText(t *testing.T) {
	ui, _ := newTestRootUI(t)

	ui.onRunUpdate(&model.ExecutionResult{Stage: model.StageTraining, Status: model.StageStatusRunning})
	if !ui.runningText.Visible() || !strings.Contains(ui.runningText.Text, "cryoCARE_train.py") {
		t.Errorf("running text = %q visible=%v", ui.runningText.Text, ui.runningText.Visible())
	}

	ui.onRunUpdate(&model.ExecutionResult{Stage: model.StageTraining, Status: model.StageStatusCompleted})
	if ui.runningText.Visible() {
		t.Error("running text should be hidden after the run")
	}

	ui.onRunUpdate(&model.ExecutionResult{Stage: model.StagePrediction, Status: model.StageStatusRunning})
	ui.onRunUpdate(&model.ExecutionResult{Stage: model.StagePrediction, Status: model.StageStatusIdle})
	if !ui.runningText.Visible() {
		t.Error("an idle update should not hide a running stage")
	}

	ui.onRunUpdate(&model.ExecutionResult{Stage: model.StagePrediction, Status: model.StageStatusFailed})
	if ui.runningText.Visible() {
		t.Error("running text should be hidden after a failure")
	}
}

func TestRootUILanguageChange(t *testing.T) {
	ui, _ := newTestRootUI(t)

	ui.onLanguageChange("fr")

	if got := ui.buttons[KeyRunTraining].Text; got != "Lancer l'entraînement" {
		t.Errorf("run training = %q", got)
	}
	if got := ui.buttons[generateKey(model.StageTraining)].Text; got != "Générer train_config.json" {
		t.Errorf("generate = %q", got)
	}
	if ui.settings.GetLanguage() != "fr" {
		t.Errorf("language not persisted: %q", ui.settings.GetLanguage())
	}
	if !strings.HasPrefix(ui.prepareLabels.even.Text, "Fichiers pairs") {
		t.Errorf("even label = %q", ui.prepareLabels.even.Text)
	}
}
