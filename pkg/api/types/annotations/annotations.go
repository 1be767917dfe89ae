package annotations

import (
	"time"

	kdb "github.com/AliRehmantechndev/EdgeMind-backend/pkg/db"
)

type ClassSpec struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

type ClassDetail struct {
	Id        string    `json:"id"`
	DatasetId string    `json:"datasetId"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"createdAt"`
}

func ComposeClassDetail(c kdb.AnnotationClass) ClassDetail {
	return ClassDetail{
		Id:        c.Id,
		DatasetId: c.DatasetId,
		Name:      c.Name,
		Color:     c.Color,
		CreatedAt: c.CreatedAt,
	}
}

type Geometry struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type Spec struct {
	ClassId  string   `json:"classId"`
	ImageId  string   `json:"imageId"`
	Label    string   `json:"label"`
	Geometry Geometry `json:"geometry"`
}

func (s Spec) Into() kdb.AnnotationSpec {
	return kdb.AnnotationSpec{
		ClassId: s.ClassId,
		ImageId: s.ImageId,
		Label:   s.Label,
		Geometry: kdb.BoundingBox{
			X:      s.Geometry.X,
			Y:      s.Geometry.Y,
			Width:  s.Geometry.Width,
			Height: s.Geometry.Height,
		},
	}
}

type Detail struct {
	Id        string    `json:"id"`
	DatasetId string    `json:"datasetId"`
	ClassId   string    `json:"classId"`
	ImageId   string    `json:"imageId"`
	Label     string    `json:"label"`
	Geometry  Geometry  `json:"geometry"`
	CreatedAt time.Time `json:"createdAt"`
}

func ComposeDetail(a kdb.Annotation) Detail {
	return Detail{
		Id:        a.Id,
		DatasetId: a.DatasetId,
		ClassId:   a.ClassId,
		ImageId:   a.ImageId,
		Label:     a.Label,
		Geometry: Geometry{
			X:      a.Geometry.X,
			Y:      a.Geometry.Y,
			Width:  a.Geometry.Width,
			Height: a.Geometry.Height,
		},
		CreatedAt: a.CreatedAt,
	}
}
