package workspace_test

import (
	"context"
	"errors"
	"testing"

	"github.com/vazifa-app/vazifa/core"
	"github.com/vazifa-app/vazifa/core/workspace"
	"github.com/vazifa-app/vazifa/storage/database/dummy"
	"github.com/vazifa-app/vazifa/tests"
)

func setup(t *testing.T) *workspace.Service {
	return workspace.NewService(dummydb.NewWorkspaceRepository(testutil.PrepareDB(t)))
}

func TestService_Create(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	ws, err := svc.Create(ctx, workspace.NewWorkspace{Name: "Engineering", Owner: "usr"})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if ws.Owner != "usr" {
		t.Errorf("Owner = %s, want usr", ws.Owner)
	}
	// the owner is always the first member
	if len(ws.Members) != 1 || ws.Members[0].AccountID != "usr" || ws.Members[0].Role != workspace.MemberRoleOwner {
		t.Errorf("Members = %v, want the owner as sole member", ws.Members)
	}

	if _, err := svc.Create(ctx, workspace.NewWorkspace{Owner: "usr"}); err != nil {
		if _, ok := err.(*core.ValidationError); !ok {
			t.Errorf("Create() error = %v, want a validation error", err)
		}
	} else {
		t.Error("Create() accepted an empty name")
	}
}

func TestService_AddMember(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	ws, err := svc.Create(ctx, workspace.NewWorkspace{Name: "Engineering", Owner: "usr"})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	if err := svc.AddMember(ctx, ws.ID, workspace.NewMember{AccountID: "usr2"}); err != nil {
		t.Fatalf("AddMember() failed: %v", err)
	}
	// adding again is a no-op
	if err := svc.AddMember(ctx, ws.ID, workspace.NewMember{AccountID: "usr2"}); err != nil {
		t.Fatalf("AddMember() failed on re-add: %v", err)
	}

	got, err := svc.GetByID(ctx, ws.ID)
	if err != nil {
		t.Fatalf("GetByID() failed: %v", err)
	}
	if len(got.Members) != 2 {
		t.Errorf("Members = %v, want 2 entries", got.Members)
	}
	if !got.HasMember("usr2") {
		t.Error("usr2 not a member")
	}
	// default role
	for _, m := range got.Members {
		if m.AccountID == "usr2" && m.Role != workspace.MemberRoleMember {
			t.Errorf("Role = %s, want default %s", m.Role, workspace.MemberRoleMember)
		}
	}

	if err := svc.AddMember(ctx, ws.ID, workspace.NewMember{AccountID: "usr3", Role: "boss"}); err != nil {
		if _, ok := err.(*core.ValidationError); !ok {
			t.Errorf("AddMember() error = %v, want a validation error", err)
		}
	} else {
		t.Error("AddMember() accepted an invalid role")
	}

	if err := svc.AddMember(ctx, "nope", workspace.NewMember{AccountID: "usr3"}); !errors.Is(err, workspace.ErrNotFound) {
		t.Errorf("AddMember() error = %v, want %v", err, workspace.ErrNotFound)
	}
}

func TestService_QueryByMember(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	ws, err := svc.Create(ctx, workspace.NewWorkspace{Name: "Engineering", Owner: "usr"})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if _, err := svc.Create(ctx, workspace.NewWorkspace{Name: "Design", Owner: "usr2"}); err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	workspaces, err := svc.QueryByMember(ctx, "usr")
	if err != nil {
		t.Fatalf("QueryByMember() failed: %v", err)
	}
	if len(workspaces) != 1 || workspaces[0].ID != ws.ID {
		t.Errorf("QueryByMember() = %v, want the single usr workspace", workspaces)
	}
}
