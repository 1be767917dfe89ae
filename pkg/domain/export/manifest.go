package export

import (
	"gopkg.in/yaml.v3"

	kdb "github.com/AliRehmantechndev/EdgeMind-backend/pkg/db"
)

const (
	DefaultEpochs            = 100
	DefaultBatchSize         = 16
	DefaultImgSize           = 640
	DefaultLearningRate      = 0.001
	DefaultModelType         = "yolov8recommended"
	DefaultDatasetSplitRatio = "80/20"
)

// withDefaults fills zero-valued config fields with documented defaults.
func withDefaults(config kdb.TrainingConfig) kdb.TrainingConfig {
	if config.Epochs == 0 {
		config.Epochs = DefaultEpochs
	}
	if config.BatchSize == 0 {
		config.BatchSize = DefaultBatchSize
	}
	if config.ImgSize == 0 {
		config.ImgSize = DefaultImgSize
	}
	if config.LearningRate == 0 {
		config.LearningRate = DefaultLearningRate
	}
	if config.ModelType == "" {
		config.ModelType = DefaultModelType
	}
	if config.DatasetSplitRatio == "" {
		config.DatasetSplitRatio = DefaultDatasetSplitRatio
	}
	return config
}

type manifest struct {
	Epochs        int      `yaml:"epochs"`
	BatchSize     int      `yaml:"batch_size"`
	ImgSize       int      `yaml:"img_size"`
	LearningRate  float64  `yaml:"learning_rate"`
	Model         string   `yaml:"model"`
	NumClasses    int      `yaml:"num_classes"`
	ClassNames    []string `yaml:"class_names"`
	ProjectName   string   `yaml:"project_name"`
	TrainValSplit string   `yaml:"train_val_split"`
}

// renderManifest produces the config.yaml placed at the archive root.
// config must already have defaults applied.
func renderManifest(config kdb.TrainingConfig, classNames []string, datasetName string) ([]byte, error) {
	return yaml.Marshal(manifest{
		Epochs:        config.Epochs,
		BatchSize:     config.BatchSize,
		ImgSize:       config.ImgSize,
		LearningRate:  config.LearningRate,
		Model:         config.ModelType,
		NumClasses:    len(classNames),
		ClassNames:    classNames,
		ProjectName:   datasetName,
		TrainValSplit: config.DatasetSplitRatio,
	})
}
