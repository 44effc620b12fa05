package entities

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// Update represents a campaign progress post. Posts are written by the
// owning founder and readable only by investors in the project.
type Update struct {
	ID        uint        `json:"id"`
	Title     null.String `json:"title,omitempty"`
	Content   string      `json:"content"`
	ProjectID uint        `json:"project_id"`
	CreatedAt time.Time   `json:"createdAt"`
}

// CreateUpdateInput represents input for posting a campaign update
type CreateUpdateInput struct {
	ProjectID uint   `json:"project_id" binding:"required"`
	Title     string `json:"title"`
	Content   string `json:"content" binding:"required"`
}

// UpdateUpdateInput represents a partial edit of a campaign update
type UpdateUpdateInput struct {
	Title   null.String `json:"title"`
	Content null.String `json:"content"`
}
