package configdoc

import (
	"github.com/cryocare-tools/cryocare-setup/internal/model"
)

// Extraction defaults (train_data_config.json)
const (
	DefaultPatchSize             = 72
	DefaultNumSlices             = 1200
	DefaultSplit                 = 0.9
	DefaultTiltAxis              = "Y"
	DefaultNormalizationSamples  = 500
	DefaultTrainingDataDirectory = "./output"
)

// Training defaults (train_config.json)
const (
	DefaultEpochs         = 100
	DefaultStepsPerEpoch  = 200
	DefaultBatchSize      = 16
	DefaultUNetKernelSize = 3
	DefaultUNetDepth      = 3
	DefaultUNetFirst      = 16
	DefaultLearningRate   = 0.0004
	DefaultModelName      = "model_test"
	DefaultModelDirectory = "./output_model"
	DefaultGPUID          = 0
)

// Prediction defaults (predict_config.json)
const (
	DefaultModelArchive    = DefaultModelDirectory + "/" + DefaultModelName + ".tar.gz"
	DefaultTiles           = 4
	DefaultOutputDirectory = "denoised_files"
	DefaultOverwrite       = false
)

// Document is one of the three configuration documents; Stage tells which
type Document interface {
	Stage() model.Stage
}

// ExtractionConfig is train_data_config.json. Field order is the key order.
type ExtractionConfig struct {
	Even                  []string `json:"even"`
	Odd                   []string `json:"odd"`
	PatchShape            [3]int   `json:"patch_shape"`
	NumSlices             int      `json:"num_slices"`
	Split                 float64  `json:"split"`
	TiltAxis              string   `json:"tilt_axis"`
	NNormalizationSamples int      `json:"n_normalization_samples"`
	Path                  string   `json:"path"`
}

// TrainingConfig is train_config.json. It never depends on the file
// selections: the trainer reads from the extraction output directory.
type TrainingConfig struct {
	TrainData     string  `json:"train_data"`
	Epochs        int     `json:"epochs"`
	StepsPerEpoch int     `json:"steps_per_epoch"`
	BatchSize     int     `json:"batch_size"`
	UNetKernSize  int     `json:"unet_kern_size"`
	UNetNDepth    int     `json:"unet_n_depth"`
	UNetNFirst    int     `json:"unet_n_first"`
	LearningRate  float64 `json:"learning_rate"`
	ModelName     string  `json:"model_name"`
	Path          string  `json:"path"`
	GPUID         int     `json:"gpu_id"`
}

// PredictionConfig is predict_config.json
type PredictionConfig struct {
	Path      string   `json:"path"`
	Even      []string `json:"even"`
	Odd       []string `json:"odd"`
	NTiles    [3]int   `json:"n_tiles"`
	Output    string   `json:"output"`
	Overwrite bool     `json:"overwrite"`
	GPUID     int      `json:"gpu_id"`
}

func (ExtractionConfig) Stage() model.Stage { return model.StageExtraction }
func (TrainingConfig) Stage() model.Stage   { return model.StageTraining }
func (PredictionConfig) Stage() model.Stage { return model.StagePrediction }

// NewExtraction builds train_data_config.json from the current selections
func NewExtraction(odd, even []string) ExtractionConfig {
	return ExtractionConfig{
		Even:                  copyPaths(even),
		Odd:                   copyPaths(odd),
		PatchShape:            [3]int{DefaultPatchSize, DefaultPatchSize, DefaultPatchSize},
		NumSlices:             DefaultNumSlices,
		Split:                 DefaultSplit,
		TiltAxis:              DefaultTiltAxis,
		NNormalizationSamples: DefaultNormalizationSamples,
		Path:                  DefaultTrainingDataDirectory,
	}
}

// NewTraining builds train_config.json
func NewTraining() TrainingConfig {
	return TrainingConfig{
		TrainData:     DefaultTrainingDataDirectory,
		Epochs:        DefaultEpochs,
		StepsPerEpoch: DefaultStepsPerEpoch,
		BatchSize:     DefaultBatchSize,
		UNetKernSize:  DefaultUNetKernelSize,
		UNetNDepth:    DefaultUNetDepth,
		UNetNFirst:    DefaultUNetFirst,
		LearningRate:  DefaultLearningRate,
		ModelName:     DefaultModelName,
		Path:          DefaultModelDirectory,
		GPUID:         DefaultGPUID,
	}
}

// NewPrediction builds predict_config.json from the current selections
func NewPrediction(odd, even []string) PredictionConfig {
	return PredictionConfig{
		Path:      DefaultModelArchive,
		Even:      copyPaths(even),
		Odd:       copyPaths(odd),
		NTiles:    [3]int{DefaultTiles, DefaultTiles, DefaultTiles},
		Output:    DefaultOutputDirectory,
		Overwrite: DefaultOverwrite,
		GPUID:     DefaultGPUID,
	}
}

// copyPaths detaches the document from the caller's slice; nil becomes
// an empty slice so it encodes as [] rather than null.
func copyPaths(paths []string) []string {
	out := make([]string, len(paths))
	copy(out, paths)
	return out
}
