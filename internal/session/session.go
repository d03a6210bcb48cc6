// Package session holds the odd/even file selections of one app run and
// builds the configuration documents from them.
//
// A Session is owned by a single goroutine (the UI thread, or the CLI
// command); it does no locking.
package session

import (
	"fmt"

	"github.com/cryocare-tools/cryocare-setup/internal/configdoc"
	"github.com/cryocare-tools/cryocare-setup/internal/model"
)

// Listener is notified after a selection has been replaced
type Listener func(sel model.FileSelection)

// Session stores the current odd and even selections
type Session struct {
	odd       model.FileSelection
	even      model.FileSelection
	listeners []Listener
}

// New creates a session with empty selections
func New() *Session {
	return &Session{
		odd:  model.FileSelection{Kind: model.SelectionOdd, Paths: []string{}},
		even: model.FileSelection{Kind: model.SelectionEven, Paths: []string{}},
	}
}

// Subscribe registers a listener for selection changes
func (s *Session) Subscribe(l Listener) {
	if l != nil {
		s.listeners = append(s.listeners, l)
	}
}

// Select replaces the selection of the given kind with the accepted files
// among paths. An empty paths slice is a cancelled chooser and changes
// nothing. When no file is accepted a *model.NoValidFilesError is returned
// and the previous selection is kept.
func (s *Session) Select(kind model.SelectionKind, paths []string) error {
	if len(paths) == 0 {
		return nil
	}

	sel, err := model.NewFileSelection(kind, paths)
	if err != nil {
		return err
	}

	switch kind {
	case model.SelectionOdd:
		s.odd = sel
	case model.SelectionEven:
		s.even = sel
	default:
		return fmt.Errorf("unknown selection kind: %q", kind)
	}

	for _, l := range s.listeners {
		l(sel.Clone())
	}
	return nil
}

// Selection returns a copy of the current selection of the given kind
func (s *Session) Selection(kind model.SelectionKind) model.FileSelection {
	if kind == model.SelectionEven {
		return s.even.Clone()
	}
	return s.odd.Clone()
}

// Odd returns the selected odd files
func (s *Session) Odd() []string {
	return s.odd.Clone().Paths
}

// Even returns the selected even files
func (s *Session) Even() []string {
	return s.even.Clone().Paths
}

// ExtractionConfig builds train_data_config.json from the current selections
func (s *Session) ExtractionConfig() configdoc.ExtractionConfig {
	return configdoc.NewExtraction(s.odd.Paths, s.even.Paths)
}

// TrainingConfig builds train_config.json. It does not read the selections.
func (s *Session) TrainingConfig() configdoc.TrainingConfig {
	return configdoc.NewTraining()
}

// PredictionConfig builds predict_config.json from the current selections
func (s *Session) PredictionConfig() configdoc.PredictionConfig {
	return configdoc.NewPrediction(s.odd.Paths, s.even.Paths)
}

// Document builds the configuration document of a stage
func (s *Session) Document(stage model.Stage) (configdoc.Document, error) {
	switch stage {
	case model.StageExtraction:
		return s.ExtractionConfig(), nil
	case model.StageTraining:
		return s.TrainingConfig(), nil
	case model.StagePrediction:
		return s.PredictionConfig(), nil
	default:
		return nil, fmt.Errorf("invalid stage: %d", stage)
	}
}
