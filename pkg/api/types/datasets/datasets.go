package datasets

import (
	"time"

	kdb "github.com/AliRehmantechndev/EdgeMind-backend/pkg/db"
)

type Spec struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Detail struct {
	Id             string    `json:"id"`
	ProjectId      string    `json:"projectId"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	ImageCount     int       `json:"imageCount"`
	TotalSizeBytes int64     `json:"totalSizeBytes"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func ComposeDetail(d kdb.Dataset) Detail {
	return Detail{
		Id:             d.Id,
		ProjectId:      d.ProjectId,
		Name:           d.Name,
		Description:    d.Description,
		ImageCount:     d.ImageCount,
		TotalSizeBytes: d.TotalSizeBytes,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}

// UploadResult reports one multipart image upload.
type UploadResult struct {
	Uploaded  int    `json:"uploaded"`
	SizeBytes int64  `json:"sizeBytes"`
	Dataset   Detail `json:"dataset"`
}

// FileListing is the dataset's storage content.
type FileListing struct {
	Files []string `json:"files"`
}
