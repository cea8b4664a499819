package activity_test

import (
	"context"
	"testing"

	"github.com/vazifa-app/vazifa/core/activity"
	"github.com/vazifa-app/vazifa/storage/database/dummy"
	"github.com/vazifa-app/vazifa/tests"
)

func TestService_Log(t *testing.T) {
	svc := activity.NewService(dummydb.NewActivityRepository(testutil.PrepareDB(t)))
	ctx := context.Background()

	entry, err := svc.Log(ctx, "usr", activity.ActionTaskCreated, map[string]interface{}{"taskId": "tsk"})
	if err != nil {
		t.Fatalf("Log() failed: %v", err)
	}
	if entry.ID == "" {
		t.Error("ID not assigned")
	}
	if entry.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}

	if _, err := svc.Log(ctx, "usr2", activity.ActionCommentAdded, nil); err != nil {
		t.Fatalf("Log() failed: %v", err)
	}

	entries, err := svc.QueryByUser(ctx, "usr")
	if err != nil {
		t.Fatalf("QueryByUser() failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Action != activity.ActionTaskCreated {
		t.Errorf("QueryByUser() = %v, want the single usr entry", entries)
	}
}
