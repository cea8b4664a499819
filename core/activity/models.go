package activity

import "time"

// Actions recorded in the log.
const (
	ActionTaskCreated      = "task_created"
	ActionTaskUpdated      = "task_updated"
	ActionTaskAssigned     = "task_assigned"
	ActionCommentAdded     = "comment_added"
	ActionWorkspaceJoined  = "workspace_joined"
	ActionWorkspaceCreated = "workspace_created"
)

// Log is an append-only historical record. It is never deleted; when the
// referenced account is removed its identity is preserved inside Details
// under originalUserName / originalUserEmail.
type Log struct {
	ID        string                 `json:"id"`
	User      string                 `json:"user"`
	Action    string                 `json:"action"`
	Details   map[string]interface{} `json:"details"`
	CreatedAt time.Time              `json:"created_at"` // UTC
}
