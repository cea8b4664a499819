package comment

import (
	"time"

	"github.com/vazifa-app/vazifa/core"
)

type Comment struct {
	ID     string `json:"id"`
	TaskID string `json:"task_id"`
	Author string `json:"author"` // never empty; reassigned when the author is removed
	Text   string `json:"text"`
	// preservation field; only the name is kept for comments
	OriginalAuthorName string    `json:"original_author_name,omitempty"`
	CreatedAt          time.Time `json:"created_at"` // UTC
	UpdatedAt          time.Time `json:"updated_at"` // UTC
}

// Response is a threaded reply to a Comment.
type Response struct {
	ID                 string    `json:"id"`
	CommentID          string    `json:"comment_id"`
	TaskID             string    `json:"task_id"`
	Author             string    `json:"author"`
	Text               string    `json:"text"`
	OriginalAuthorName string    `json:"original_author_name,omitempty"`
	CreatedAt          time.Time `json:"created_at"` // UTC
	UpdatedAt          time.Time `json:"updated_at"` // UTC
}

// NewComment defines what information must be provided to create a Comment.
type NewComment struct {
	TaskID string `json:"task_id" validate:"required"`
	Author string `json:"author" validate:"required"`
	Text   string `json:"text" validate:"required"`
}

func (nc *NewComment) Validate() error {
	nc.Text = core.CleanString(nc.Text)

	if err := core.Validate.Struct(nc); err != nil {
		return core.TranslateValidatorErrs(err)
	}
	return nil
}

// NewResponse defines what information must be provided to reply to a Comment.
type NewResponse struct {
	CommentID string `json:"comment_id" validate:"required"`
	TaskID    string `json:"task_id" validate:"required"`
	Author    string `json:"author" validate:"required"`
	Text      string `json:"text" validate:"required"`
}

func (nr *NewResponse) Validate() error {
	nr.Text = core.CleanString(nr.Text)

	if err := core.Validate.Struct(nr); err != nil {
		return core.TranslateValidatorErrs(err)
	}
	return nil
}
