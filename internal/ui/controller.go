package ui

import (
	"context"
	"errors"
	"fmt"

	"fyne.io/fyne/v2"

	"github.com/cryocare-tools/cryocare-setup/internal/configdoc"
	"github.com/cryocare-tools/cryocare-setup/internal/logger"
	"github.com/cryocare-tools/cryocare-setup/internal/model"
	"github.com/cryocare-tools/cryocare-setup/internal/pipeline"
	"github.com/cryocare-tools/cryocare-setup/internal/session"
)

const componentController = "controller"

// ProgressSink receives the shared progress bar value
type ProgressSink func(value float64)

// Controller turns button taps into session, configdoc and pipeline calls.
// All methods must be called on the UI thread.
type Controller struct {
	session  *session.Session
	runner   pipeline.Executor
	prompter Prompter
	text     *Localization
	log      *logger.Logger

	progress      ProgressSink
	onBusyChanged func(busy bool)

	// background runs blocking work off the UI thread; main hands the
	// result back to it
	background func(func())
	main       func(func())

	busy bool
}

// NewController wires a controller. Blocking stage runs go to a new
// goroutine and come back through fyne.Do.
func NewController(sess *session.Session, runner pipeline.Executor, prompter Prompter, text *Localization, log *logger.Logger) *Controller {
	if log == nil {
		log = logger.Nop()
	}
	return &Controller{
		session:    sess,
		runner:     runner,
		prompter:   prompter,
		text:       text,
		log:        log,
		progress:   func(float64) {},
		background: func(f func()) { go f() },
		main:       fyne.Do,
	}
}

// SetProgressSink sets where progress values go
func (c *Controller) SetProgressSink(sink ProgressSink) {
	if sink == nil {
		sink = func(float64) {}
	}
	c.progress = sink
}

// SetBusyCallback is called when a stage starts or stops being in flight
func (c *Controller) SetBusyCallback(cb func(busy bool)) {
	c.onBusyChanged = cb
}

// IsBusy reports whether a stage run is in flight
func (c *Controller) IsBusy() bool {
	return c.busy
}

// SelectFiles asks for odd or even files and stores the accepted ones
func (c *Controller) SelectFiles(kind model.SelectionKind) {
	title := c.text.GetText(KeySelectOddTitle)
	if kind == model.SelectionEven {
		title = c.text.GetText(KeySelectEvenTitle)
	}

	c.prompter.PickFiles(title, func(paths []string) {
		if len(paths) == 0 {
			return
		}

		err := c.session.Select(kind, paths)
		if errors.Is(err, model.ErrNoValidFiles) {
			c.log.Warning(componentController, "No accepted files in selection", map[string]interface{}{
				"kind":   string(kind),
				"picked": len(paths),
			})
			c.prompter.ShowError(errors.New(c.text.GetText(KeyNoValidFiles)))
			return
		}
		if err != nil {
			c.log.Error(componentController, "Selection failed", err, nil)
			c.prompter.ShowError(err)
			return
		}

		c.log.Info(componentController, "Selection replaced", map[string]interface{}{
			"kind":  string(kind),
			"files": c.session.Selection(kind).Len(),
		})
	})
}

// GenerateConfig builds the document of a stage and saves it where the user says
func (c *Controller) GenerateConfig(stage model.Stage) {
	doc, err := c.session.Document(stage)
	if err != nil {
		c.prompter.ShowError(err)
		return
	}

	name := stage.ConfigName()
	title := fmt.Sprintf(c.text.GetText(KeySaveTitleFormat), name)

	c.prompter.PickSavePath(title, name, func(path string, err error) {
		if err != nil {
			c.log.Error(componentController, "Save dialog failed", err, nil)
			c.prompter.ShowError(err)
			return
		}
		if path == "" {
			return // User cancelled
		}

		if err := configdoc.Save(path, doc); err != nil {
			c.log.Error(componentController, "Failed to write configuration", err, map[string]interface{}{
				"path": path,
			})
			c.prompter.ShowError(err)
			return
		}

		c.log.Info(componentController, "Configuration written", map[string]interface{}{
			"stage": stage.String(),
			"path":  path,
		})
		c.prompter.ShowInfo(c.text.GetText(KeySuccess), fmt.Sprintf(c.text.GetText(KeyGeneratedFormat), name))
	})
}

// RunStage asks for a configuration file and runs the stage program on it.
// Progress goes to 0 first, then to 100 on success or back to 0 otherwise.
func (c *Controller) RunStage(stage model.Stage) {
	if c.busy {
		c.log.Debug(componentController, "Stage trigger ignored while busy", map[string]interface{}{
			"stage": stage.String(),
		})
		return
	}
	c.setBusy(true)
	c.progress(ProgressMin)

	title := fmt.Sprintf(c.text.GetText(KeySelectConfigFormat), stage.ConfigName())
	c.prompter.PickConfig(title, func(path string) {
		if path == "" {
			c.progress(ProgressMin)
			c.setBusy(false)
			return
		}

		c.background(func() {
			result, err := c.runner.Run(context.Background(), stage, path)
			c.main(func() {
				c.finishStage(stage, result, err)
			})
		})
	})
}

func (c *Controller) finishStage(stage model.Stage, result *model.ExecutionResult, err error) {
	c.setBusy(false)

	if err != nil {
		c.progress(ProgressMin)
		if errors.Is(err, pipeline.ErrStageBusy) {
			c.prompter.ShowError(errors.New(c.text.GetText(KeyStageBusy)))
			return
		}
		c.prompter.ShowError(fmt.Errorf("%s: %w", c.text.GetText(failedKey(stage)), err))
		return
	}

	c.progress(ProgressDone)
	if result != nil {
		c.log.Info(componentController, "Stage finished", map[string]interface{}{
			"stage":    stage.String(),
			"duration": result.GetDurationString(),
		})
	}
	c.prompter.ShowInfo(c.text.GetText(KeySuccess), c.text.GetText(doneKey(stage)))
}

func (c *Controller) setBusy(busy bool) {
	c.busy = busy
	if c.onBusyChanged != nil {
		c.onBusyChanged(busy)
	}
}

func doneKey(stage model.Stage) string {
	switch stage {
	case model.StageTraining:
		return KeyTrainingDone
	case model.StagePrediction:
		return KeyPredictionDone
	default:
		return KeyExtractionDone
	}
}

func failedKey(stage model.Stage) string {
	switch stage {
	case model.StageTraining:
		return KeyTrainingFailed
	case model.StagePrediction:
		return KeyPredictionFailed
	default:
		return KeyExtractionFailed
	}
}
