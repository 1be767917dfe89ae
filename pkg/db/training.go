package db

import (
	"context"
	"time"
)

type TrainingStatus string

const (
	TrainingSubmitted TrainingStatus = "submitted"
)

// TrainingConfig is the caller-supplied training parameter set.
// Zero-valued fields are filled with defaults by the export builder.
type TrainingConfig struct {
	Epochs            int     `json:"epochs" yaml:"epochs"`
	BatchSize         int     `json:"batchSize" yaml:"batch_size"`
	ImgSize           int     `json:"imgSize" yaml:"img_size"`
	LearningRate      float64 `json:"learningRate" yaml:"learning_rate"`
	ModelType         string  `json:"modelType" yaml:"model"`
	DatasetSplitRatio string  `json:"datasetSplitRatio" yaml:"train_val_split"`
}

// TrainingRun is the bookkeeping row for one submitted training job.
type TrainingRun struct {
	Id          string
	DatasetId   string
	UserId      string
	Status      TrainingStatus
	ObjectName  string
	BucketName  string
	DownloadUrl string
	UploadPath  string
	Config      TrainingConfig
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type TrainingResult struct {
	ObjectName  string
	BucketName  string
	DownloadUrl string
	UploadPath  string
	Config      TrainingConfig
}

type TrainingInterface interface {
	// Create records a successfully dispatched training job.
	Create(ctx context.Context, userId string, datasetId string, result TrainingResult) (TrainingRun, error)

	Get(ctx context.Context, userId string, trainingId string) (TrainingRun, error)

	List(ctx context.Context, userId string, datasetId string) ([]TrainingRun, error)
}
