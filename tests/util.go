package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/vazifa-app/vazifa/core"
	"github.com/vazifa-app/vazifa/core/activity"
	"github.com/vazifa-app/vazifa/core/comment"
	"github.com/vazifa-app/vazifa/core/task"
	"github.com/vazifa-app/vazifa/core/user"
	"github.com/vazifa-app/vazifa/core/workspace"
	"github.com/vazifa-app/vazifa/storage/database/dummy"
)

// PrepareDB returns a fresh in-memory store.
func PrepareDB(t *testing.T) *dummydb.DB {
	t.Helper()
	db, err := dummydb.Open()
	if err != nil {
		t.Fatalf("dummydb.Open() failed: %v", err)
	}
	return db
}

func CreateUser(
	t *testing.T,
	repo user.Repository,
	name, email, phone, pwd string,
	role string,
	isActive bool,
) user.User {
	t.Helper()
	now := time.Now().UTC()
	usr := user.User{
		Name:      name,
		Email:     email,
		Phone:     phone,
		Role:      role,
		IsActive:  isActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if usr.Role == "" {
		usr.Role = user.RoleMember
	}
	if pwd != "" {
		if err := usr.SetPassword(pwd); err != nil {
			t.Fatalf("CreateUser() failed: %v", err)
		}
	}
	usr, err := repo.CreateUser(context.Background(), usr)
	if err != nil {
		t.Fatalf("CreateUser() failed: %v", err)
	}
	return usr
}

func CreateTask(
	t *testing.T,
	repo task.Repository,
	title, createdBy string,
	assignees, watchers []string,
	manager string,
) task.Task {
	t.Helper()
	now := time.Now().UTC()
	tsk, err := repo.CreateTask(context.Background(), task.Task{
		Title:              title,
		Status:             task.StatusToDo,
		Priority:           task.PriorityMedium,
		WorkspaceID:        "ws",
		CreatedBy:          createdBy,
		Assignees:          assignees,
		Watchers:           watchers,
		ResponsibleManager: manager,
		CreatedAt:          now,
		UpdatedAt:          now,
	})
	if err != nil {
		t.Fatalf("CreateTask() failed: %v", err)
	}
	return tsk
}

func CreateComment(t *testing.T, repo comment.Repository, taskID, author, text string) comment.Comment {
	t.Helper()
	now := time.Now().UTC()
	cmt, err := repo.CreateComment(context.Background(), comment.Comment{
		TaskID:    taskID,
		Author:    author,
		Text:      text,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("CreateComment() failed: %v", err)
	}
	return cmt
}

func CreateResponse(t *testing.T, repo comment.Repository, commentID, taskID, author, text string) comment.Response {
	t.Helper()
	now := time.Now().UTC()
	rsp, err := repo.CreateResponse(context.Background(), comment.Response{
		CommentID: commentID,
		TaskID:    taskID,
		Author:    author,
		Text:      text,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("CreateResponse() failed: %v", err)
	}
	return rsp
}

func CreateWorkspace(t *testing.T, repo workspace.Repository, name, owner string, memberIDs ...string) workspace.Workspace {
	t.Helper()
	now := time.Now().UTC()
	members := []workspace.Member{{AccountID: owner, Role: workspace.MemberRoleOwner, JoinedAt: now}}
	for _, id := range memberIDs {
		members = append(members, workspace.Member{AccountID: id, Role: workspace.MemberRoleMember, JoinedAt: now})
	}
	ws, err := repo.CreateWorkspace(context.Background(), workspace.Workspace{
		Name:      name,
		Owner:     owner,
		Members:   members,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("CreateWorkspace() failed: %v", err)
	}
	return ws
}

func LogActivity(t *testing.T, repo activity.Repository, accountID, action string) activity.Log {
	t.Helper()
	entry, err := repo.LogActivity(context.Background(), activity.Log{
		User:      accountID,
		Action:    action,
		Details:   map[string]interface{}{"via": "test"},
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("LogActivity() failed: %v", err)
	}
	return entry
}

// NopLogger discards everything; tests assert on state, not log output.
type NopLogger struct{}

var _ core.Logger = (*NopLogger)(nil)

func (NopLogger) Debug(string, ...interface{}) {}
func (NopLogger) Info(string, ...interface{})  {}
func (NopLogger) Warn(string, ...interface{})  {}
func (NopLogger) Error(string, ...interface{}) {}
func (NopLogger) Fatal(string, ...interface{}) {}
