package projects

import (
	"time"

	kdb "github.com/AliRehmantechndev/EdgeMind-backend/pkg/db"
)

type Spec struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Detail struct {
	Id          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func ComposeDetail(p kdb.Project) Detail {
	return Detail{
		Id:          p.Id,
		Name:        p.Name,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
