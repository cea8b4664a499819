// Package dummydb is an in-memory implementation of every repository,
// used by tests and local tinkering. Mutation semantics mirror the mongo
// repositories, including per-record update atomicity and duplicate-email
// detection on insert.
package dummydb

import (
	"sync"

	"github.com/vazifa-app/vazifa/core/activity"
	"github.com/vazifa-app/vazifa/core/comment"
	"github.com/vazifa-app/vazifa/core/task"
	"github.com/vazifa-app/vazifa/core/user"
	"github.com/vazifa-app/vazifa/core/workspace"
)

type (
	DB struct {
		user      *userTable
		task      *taskTable
		comment   *commentTable
		response  *responseTable
		workspace *workspaceTable
		activity  *activityTable
	}

	userTable struct {
		sync.RWMutex
		table map[string]*user.User
	}

	taskTable struct {
		sync.RWMutex
		table map[string]*task.Task
	}

	commentTable struct {
		sync.RWMutex
		table map[string]*comment.Comment
	}

	responseTable struct {
		sync.RWMutex
		table map[string]*comment.Response
	}

	workspaceTable struct {
		sync.RWMutex
		table map[string]*workspace.Workspace
	}

	activityTable struct {
		sync.RWMutex
		table map[string]*activity.Log
	}
)

func Open() (*DB, error) {
	db := &DB{
		user:      &userTable{table: make(map[string]*user.User)},
		task:      &taskTable{table: make(map[string]*task.Task)},
		comment:   &commentTable{table: make(map[string]*comment.Comment)},
		response:  &responseTable{table: make(map[string]*comment.Response)},
		workspace: &workspaceTable{table: make(map[string]*workspace.Workspace)},
		activity:  &activityTable{table: make(map[string]*activity.Log)},
	}
	return db, nil
}
