package model

import (
	"fmt"
	"strings"
)

// Stage identifies one of the three external pipeline steps
type Stage int

const (
	StageExtraction Stage = iota
	StageTraining
	StagePrediction
)

// Executable names of the pipeline programs, looked up on PATH
const (
	ExtractionExecutable = "cryoCARE_extract_train_data.py"
	TrainingExecutable   = "cryoCARE_train.py"
	PredictionExecutable = "cryoCARE_predict.py"
)

// Default file names offered when saving a configuration document
const (
	ExtractionConfigName = "train_data_config.json"
	TrainingConfigName   = "train_config.json"
	PredictionConfigName = "predict_config.json"
)

// ConfFlag is the only flag passed to the pipeline programs
const ConfFlag = "--conf"

// AllStages lists the stages in pipeline order
var AllStages = []Stage{StageExtraction, StageTraining, StagePrediction}

// String returns the short command name used by the CLI
func (s Stage) String() string {
	switch s {
	case StageExtraction:
		return "extract"
	case StageTraining:
		return "train"
	case StagePrediction:
		return "predict"
	default:
		return "unknown"
	}
}

// Executable returns the program invoked for the stage
func (s Stage) Executable() string {
	switch s {
	case StageExtraction:
		return ExtractionExecutable
	case StageTraining:
		return TrainingExecutable
	case StagePrediction:
		return PredictionExecutable
	default:
		return ""
	}
}

// ConfigName returns the default configuration file name of the stage
func (s Stage) ConfigName() string {
	switch s {
	case StageExtraction:
		return ExtractionConfigName
	case StageTraining:
		return TrainingConfigName
	case StagePrediction:
		return PredictionConfigName
	default:
		return ""
	}
}

// IsValid reports whether s is one of the known stages
func (s Stage) IsValid() bool {
	return s >= StageExtraction && s <= StagePrediction
}

// ParseStage maps a CLI name ("extract", "train", "predict") to a Stage
func ParseStage(name string) (Stage, error) {
	for _, s := range AllStages {
		if strings.EqualFold(name, s.String()) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown stage %q (expected extract, train or predict)", name)
}
