package task

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("task not found")

type (
	Repository interface {
		CreateTask(ctx context.Context, tsk Task) (Task, error)
		GetTaskByID(ctx context.Context, id string) (Task, error)
		FilterTasks(ctx context.Context, filter QueryFilter) ([]Task, error)
		UpdateTask(ctx context.Context, tsk Task) (Task, error)
		DeleteTasksByID(ctx context.Context, ids ...string) error

		// Bulk reassignment passes. Each is a single update-many against the
		// store; the returned count is the number of records modified. Every
		// pass is idempotent: its predicate no longer matches once applied.

		// ReassignCreator retargets createdBy from target to sentinel on every
		// matching Task and records the original identity in the preservation
		// fields. createdBy is never left empty.
		ReassignCreator(ctx context.Context, targetID, sentinelID, origName, origEmail string) (int64, error)
		// RemoveAssignee strips target from the assignees of every matching
		// Task; other assignees and the Task itself are untouched.
		RemoveAssignee(ctx context.Context, targetID string) (int64, error)
		// ClearResponsibleManager unsets the field on every matching Task;
		// a Task may have no responsible manager, so nothing is reassigned.
		ClearResponsibleManager(ctx context.Context, targetID string) (int64, error)
		// RemoveWatcher strips target from the watchers of every matching Task.
		RemoveWatcher(ctx context.Context, targetID string) (int64, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ctx context.Context, nt NewTask) (Task, error) {
	if err := nt.Validate(); err != nil {
		return Task{}, err
	}
	now := time.Now().UTC()
	tsk := Task{
		Title:              nt.Title,
		Description:        nt.Description,
		Status:             nt.Status,
		Priority:           nt.Priority,
		WorkspaceID:        nt.WorkspaceID,
		ProjectID:          nt.ProjectID,
		CreatedBy:          nt.CreatedBy,
		Assignees:          nt.Assignees,
		ResponsibleManager: nt.ResponsibleManager,
		Watchers:           nt.Watchers,
		DueDate:            nt.DueDate,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if tsk.Status == "" {
		tsk.Status = StatusToDo
	}
	if tsk.Priority == "" {
		tsk.Priority = PriorityMedium
	}
	return svc.repo.CreateTask(ctx, tsk)
}

func (svc *Service) GetByID(ctx context.Context, id string) (Task, error) {
	return svc.repo.GetTaskByID(ctx, id)
}

func (svc *Service) Filter(ctx context.Context, filter QueryFilter) ([]Task, error) {
	return svc.repo.FilterTasks(ctx, filter)
}

func (svc *Service) Update(ctx context.Context, id string, ut UpdateTask) (Task, error) {
	tsk, err := svc.repo.GetTaskByID(ctx, id)
	if err != nil {
		return Task{}, err
	}
	if err := ut.Validate(); err != nil {
		return Task{}, err
	}
	if ut.Title != "" {
		tsk.Title = ut.Title
	}
	if ut.Description != nil {
		tsk.Description = *ut.Description
	}
	if ut.Status != "" {
		tsk.Status = ut.Status
	}
	if ut.Priority != "" {
		tsk.Priority = ut.Priority
	}
	if ut.Assignees != nil {
		tsk.Assignees = *ut.Assignees
	}
	if ut.ResponsibleManager != nil {
		tsk.ResponsibleManager = *ut.ResponsibleManager
	}
	if ut.Watchers != nil {
		tsk.Watchers = *ut.Watchers
	}
	if ut.DueDate != nil {
		tsk.DueDate = *ut.DueDate
	}
	tsk.UpdatedAt = time.Now().UTC()
	return svc.repo.UpdateTask(ctx, tsk)
}

func (svc *Service) Delete(ctx context.Context, ids ...string) error {
	return svc.repo.DeleteTasksByID(ctx, ids...)
}
