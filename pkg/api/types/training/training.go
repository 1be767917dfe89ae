package training

import (
	"time"

	kdb "github.com/AliRehmantechndev/EdgeMind-backend/pkg/db"
)

// Config is the caller-supplied training parameter set. Omitted fields
// get server-side defaults.
type Config struct {
	Epochs            int     `json:"epochs"`
	BatchSize         int     `json:"batchSize"`
	ImgSize           int     `json:"imgSize"`
	LearningRate      float64 `json:"learningRate"`
	ModelType         string  `json:"modelType"`
	DatasetSplitRatio string  `json:"datasetSplitRatio"`
}

func (c Config) Into() kdb.TrainingConfig {
	return kdb.TrainingConfig(c)
}

func ComposeConfig(c kdb.TrainingConfig) Config {
	return Config(c)
}

// SubmitRequest starts one training export for a dataset.
type SubmitRequest struct {
	Config Config `json:"config"`
}

// SubmitResponse reports a dispatched training job.
type SubmitResponse struct {
	TrainingId           string   `json:"trainingId"`
	ObjectName           string   `json:"objectName"`
	BucketName           string   `json:"bucketName"`
	DownloadUrl          string   `json:"downloadUrl"`
	TotalAnnotatedImages int      `json:"totalAnnotatedImages"`
	TotalAnnotations     int      `json:"totalAnnotations"`
	ClassNames           []string `json:"classNames"`
	TrainingConfig       Config   `json:"trainingConfig"`
	UploadPath           string   `json:"uploadPath"`
}

type Detail struct {
	Id          string    `json:"id"`
	DatasetId   string    `json:"datasetId"`
	Status      string    `json:"status"`
	ObjectName  string    `json:"objectName"`
	BucketName  string    `json:"bucketName"`
	DownloadUrl string    `json:"downloadUrl"`
	UploadPath  string    `json:"uploadPath"`
	Config      Config    `json:"config"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func ComposeDetail(r kdb.TrainingRun) Detail {
	return Detail{
		Id:          r.Id,
		DatasetId:   r.DatasetId,
		Status:      string(r.Status),
		ObjectName:  r.ObjectName,
		BucketName:  r.BucketName,
		DownloadUrl: r.DownloadUrl,
		UploadPath:  r.UploadPath,
		Config:      ComposeConfig(r.Config),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
