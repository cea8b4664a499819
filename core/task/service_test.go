package task_test

import (
	"context"
	"errors"
	"testing"

	"github.com/vazifa-app/vazifa/core"
	"github.com/vazifa-app/vazifa/core/task"
	"github.com/vazifa-app/vazifa/storage/database/dummy"
	"github.com/vazifa-app/vazifa/tests"
)

func setup(t *testing.T) *task.Service {
	return task.NewService(dummydb.NewTaskRepository(testutil.PrepareDB(t)))
}

func TestService_Create(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	valid := task.NewTask{
		Title:       "write report",
		WorkspaceID: "ws",
		CreatedBy:   "usr",
	}

	tests := []struct {
		name    string
		mod     func(nt *task.NewTask)
		wantErr bool
	}{
		{name: "valid", mod: func(nt *task.NewTask) {}},
		{name: "no title", mod: func(nt *task.NewTask) { nt.Title = "" }, wantErr: true},
		{name: "no workspace", mod: func(nt *task.NewTask) { nt.WorkspaceID = "" }, wantErr: true},
		{name: "no creator", mod: func(nt *task.NewTask) { nt.CreatedBy = "" }, wantErr: true},
		{name: "bad status", mod: func(nt *task.NewTask) { nt.Status = "pending" }, wantErr: true},
		{name: "bad priority", mod: func(nt *task.NewTask) { nt.Priority = "urgent" }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nt := valid
			tt.mod(&nt)
			tsk, err := svc.Create(ctx, nt)
			if tt.wantErr {
				if _, ok := err.(*core.ValidationError); !ok {
					t.Errorf("Create() error = %v, want a validation error", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Create() failed: %v", err)
			}
			if tsk.Status != task.StatusToDo {
				t.Errorf("Status = %s, want default %s", tsk.Status, task.StatusToDo)
			}
			if tsk.Priority != task.PriorityMedium {
				t.Errorf("Priority = %s, want default %s", tsk.Priority, task.PriorityMedium)
			}
			if tsk.CreatedBy == "" {
				t.Error("task must never be ownerless")
			}
		})
	}
}

func TestService_Update(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	tsk, err := svc.Create(ctx, task.NewTask{Title: "t", WorkspaceID: "ws", CreatedBy: "usr"})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	assignees := []string{"a", "b"}
	got, err := svc.Update(ctx, tsk.ID, task.UpdateTask{Status: task.StatusInProgress, Assignees: &assignees})
	if err != nil {
		t.Fatalf("Update() failed: %v", err)
	}
	if got.Status != task.StatusInProgress {
		t.Errorf("Status = %s, want %s", got.Status, task.StatusInProgress)
	}
	if len(got.Assignees) != 2 {
		t.Errorf("Assignees = %v, want [a b]", got.Assignees)
	}
	if got.Title != "t" {
		t.Errorf("Title = %s, want unchanged t", got.Title)
	}

	if _, err := svc.Update(ctx, "nope", task.UpdateTask{}); !errors.Is(err, task.ErrNotFound) {
		t.Errorf("Update() error = %v, want %v", err, task.ErrNotFound)
	}
}

func TestService_Filter(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, task.NewTask{Title: "a", WorkspaceID: "ws1", CreatedBy: "usr"}); err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if _, err := svc.Create(ctx, task.NewTask{Title: "b", WorkspaceID: "ws2", CreatedBy: "usr"}); err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	tasks, err := svc.Filter(ctx, task.QueryFilter{WorkspaceID: "ws1"})
	if err != nil {
		t.Fatalf("Filter() failed: %v", err)
	}
	if len(tasks) != 1 || tasks[0].Title != "a" {
		t.Errorf("Filter() = %v, want the single ws1 task", tasks)
	}
}

func TestService_Delete(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	tsk, err := svc.Create(ctx, task.NewTask{Title: "t", WorkspaceID: "ws", CreatedBy: "usr"})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if err := svc.Delete(ctx, tsk.ID); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if _, err := svc.GetByID(ctx, tsk.ID); !errors.Is(err, task.ErrNotFound) {
		t.Errorf("GetByID() error = %v, want %v", err, task.ErrNotFound)
	}
}
