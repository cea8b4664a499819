package task

import (
	"time"

	"github.com/vazifa-app/vazifa/core"
)

// Statuses
const (
	StatusToDo       = "todo"
	StatusInProgress = "in-progress"
	StatusDone       = "done"
	StatusArchived   = "archived"
)

// Priorities
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

var (
	AllStatuses   = []string{StatusToDo, StatusInProgress, StatusDone, StatusArchived}
	AllPriorities = []string{PriorityLow, PriorityMedium, PriorityHigh}
)

type Task struct {
	ID                 string    `json:"id"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	Status             string    `json:"status"`
	Priority           string    `json:"priority"`
	WorkspaceID        string    `json:"workspace_id"`
	ProjectID          string    `json:"project_id"`
	CreatedBy          string    `json:"created_by"` // never empty; reassigned, not cleared, when the creator is removed
	Assignees          []string  `json:"assignees"`
	ResponsibleManager string    `json:"responsible_manager,omitempty"`
	Watchers           []string  `json:"watchers"`
	DueDate            time.Time `json:"due_date"`
	// preservation fields; set only once the original creator has been removed
	OriginalCreatorName  string    `json:"original_creator_name,omitempty"`
	OriginalCreatorEmail string    `json:"original_creator_email,omitempty"`
	CreatedAt            time.Time `json:"created_at"` // UTC
	UpdatedAt            time.Time `json:"updated_at"` // UTC
}

func (t *Task) HasAssignee(accountID string) bool {
	return core.ContainsString(t.Assignees, accountID)
}

func (t *Task) HasWatcher(accountID string) bool {
	return core.ContainsString(t.Watchers, accountID)
}

// NewTask defines what information must be provided to create a Task.
type NewTask struct {
	Title              string    `json:"title" validate:"required"`
	Description        string    `json:"description"`
	Status             string    `json:"status" validate:"omitempty,taskstatus"`
	Priority           string    `json:"priority" validate:"omitempty,taskpriority"`
	WorkspaceID        string    `json:"workspace_id" validate:"required"`
	ProjectID          string    `json:"project_id"`
	CreatedBy          string    `json:"created_by" validate:"required"`
	Assignees          []string  `json:"assignees"`
	ResponsibleManager string    `json:"responsible_manager"`
	Watchers           []string  `json:"watchers"`
	DueDate            time.Time `json:"due_date"`
}

func (nt *NewTask) Validate() error {
	nt.Title = core.CleanString(nt.Title)
	nt.Description = core.CleanString(nt.Description)

	if err := core.Validate.Struct(nt); err != nil {
		return core.TranslateValidatorErrs(err)
	}
	return nil
}

// UpdateTask defines what information may be provided to modify an existing Task.
type UpdateTask struct {
	Title              string     `json:"title"`
	Description        *string    `json:"description"`
	Status             string     `json:"status" validate:"omitempty,taskstatus"`
	Priority           string     `json:"priority" validate:"omitempty,taskpriority"`
	Assignees          *[]string  `json:"assignees"`
	ResponsibleManager *string    `json:"responsible_manager"`
	Watchers           *[]string  `json:"watchers"`
	DueDate            *time.Time `json:"due_date"`
}

func (ut *UpdateTask) Validate() error {
	ut.Title = core.CleanString(ut.Title)

	if err := core.Validate.Struct(ut); err != nil {
		return core.TranslateValidatorErrs(err)
	}
	return nil
}

// QueryFilter applies AND on available fields when filtering Tasks.
type QueryFilter struct {
	Search      string `query:"search"`
	WorkspaceID string `query:"workspace_id"`
	ProjectID   string `query:"project_id"`
	Status      string `query:"status"`
	Priority    string `query:"priority"`
	CreatedBy   string `query:"created_by"`
	Assignee    string `query:"assignee"`
}
