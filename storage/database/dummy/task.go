package dummydb

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/vazifa-app/vazifa/core"
	"github.com/vazifa-app/vazifa/core/task"
)

type taskRepository struct {
	db *taskTable
}

var _ task.Repository = (*taskRepository)(nil) // interface compliance check

func NewTaskRepository(db *DB) *taskRepository {
	return &taskRepository{db: db.task}
}

func (repo *taskRepository) query() []task.Task {
	tasks := make([]task.Task, 0, len(repo.db.table))
	for _, t := range repo.db.table {
		tasks = append(tasks, *t)
	}
	return tasks
}

func (repo *taskRepository) CreateTask(_ context.Context, tsk task.Task) (task.Task, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if tsk.ID == "" {
		tsk.ID = uuid.NewString()
	}
	repo.db.table[tsk.ID] = &tsk
	return tsk, nil
}

func (repo *taskRepository) GetTaskByID(_ context.Context, id string) (task.Task, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if tsk, ok := repo.db.table[id]; ok {
		return *tsk, nil
	}
	return task.Task{}, task.ErrNotFound
}

func (repo *taskRepository) FilterTasks(_ context.Context, filter task.QueryFilter) ([]task.Task, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	var filtered []task.Task
	for _, t := range repo.query() {
		if filter.Search != "" &&
			!strings.Contains(strings.ToLower(t.Title), strings.ToLower(filter.Search)) &&
			!strings.Contains(strings.ToLower(t.Description), strings.ToLower(filter.Search)) {
			continue
		}
		if filter.WorkspaceID != "" && t.WorkspaceID != filter.WorkspaceID {
			continue
		}
		if filter.ProjectID != "" && t.ProjectID != filter.ProjectID {
			continue
		}
		if filter.Status != "" && t.Status != filter.Status {
			continue
		}
		if filter.Priority != "" && t.Priority != filter.Priority {
			continue
		}
		if filter.CreatedBy != "" && t.CreatedBy != filter.CreatedBy {
			continue
		}
		if filter.Assignee != "" && !t.HasAssignee(filter.Assignee) {
			continue
		}
		filtered = append(filtered, t)
	}
	return filtered, nil
}

func (repo *taskRepository) UpdateTask(_ context.Context, tsk task.Task) (task.Task, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[tsk.ID]; !ok {
		return task.Task{}, task.ErrNotFound
	}
	repo.db.table[tsk.ID] = &tsk
	return tsk, nil
}

func (repo *taskRepository) DeleteTasksByID(_ context.Context, ids ...string) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	for _, id := range ids {
		delete(repo.db.table, id)
	}
	return nil
}

func (repo *taskRepository) ReassignCreator(_ context.Context, targetID, sentinelID, origName, origEmail string) (int64, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	var count int64
	for _, t := range repo.db.table {
		if t.CreatedBy == targetID {
			t.CreatedBy = sentinelID
			t.OriginalCreatorName = origName
			t.OriginalCreatorEmail = origEmail
			count++
		}
	}
	return count, nil
}

func (repo *taskRepository) RemoveAssignee(_ context.Context, targetID string) (int64, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	var count int64
	for _, t := range repo.db.table {
		if t.HasAssignee(targetID) {
			t.Assignees = core.RemoveString(t.Assignees, targetID)
			count++
		}
	}
	return count, nil
}

func (repo *taskRepository) ClearResponsibleManager(_ context.Context, targetID string) (int64, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	var count int64
	for _, t := range repo.db.table {
		if t.ResponsibleManager == targetID {
			t.ResponsibleManager = ""
			count++
		}
	}
	return count, nil
}

func (repo *taskRepository) RemoveWatcher(_ context.Context, targetID string) (int64, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	var count int64
	for _, t := range repo.db.table {
		if t.HasWatcher(targetID) {
			t.Watchers = core.RemoveString(t.Watchers, targetID)
			count++
		}
	}
	return count, nil
}
