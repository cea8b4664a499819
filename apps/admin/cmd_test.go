package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log"
	"strings"
	"testing"

	"github.com/vazifa-app/vazifa/core"
	"github.com/vazifa-app/vazifa/core/deletion"
	"github.com/vazifa-app/vazifa/core/user"
	"github.com/vazifa-app/vazifa/services/logger"
	"github.com/vazifa-app/vazifa/storage/database/dummy"
	"github.com/vazifa-app/vazifa/tests"
)

var (
	usrRepo user.Repository
	out     *bytes.Buffer
)

func setup(t *testing.T) (*commandLine, *dummydb.DB) {
	// set up DB & repos
	db := testutil.PrepareDB(t)
	usrRepo = dummydb.NewUserRepository(db)
	tskRepo := dummydb.NewTaskRepository(db)
	cmtRepo := dummydb.NewCommentRepository(db)
	wsRepo := dummydb.NewWorkspaceRepository(db)
	actRepo := dummydb.NewActivityRepository(db)

	// start CLI
	out = new(bytes.Buffer)
	return &commandLine{
		usrSvc: user.NewService(usrRepo),
		delSvc: deletion.NewService(usrRepo, tskRepo, cmtRepo, wsRepo, actRepo, testutil.NopLogger{}),
		out:    out,
	}, db
}

type cliTest struct {
	name       string
	args       []string // without program name
	wantErr    error
	wantErrStr string
}

func Test_commandLine_deleteUser(t *testing.T) {
	cli, db := setup(t)
	tskRepo := dummydb.NewTaskRepository(db)
	wsRepo := dummydb.NewWorkspaceRepository(db)

	usr := testutil.CreateUser(t, usrRepo, "Awe", "awe@test.cd", "+243971234567", "LolC@t123", user.RoleMember, true)
	testutil.CreateTask(t, tskRepo, "do the thing", usr.ID, nil, nil, "")
	testutil.CreateWorkspace(t, wsRepo, "Solo", usr.ID)

	tests := []cliTest{
		{name: "no command", wantErr: errHelp},
		{name: "unknown command", args: []string{"lol"}, wantErr: errHelp},
		{name: "no identifier", args: []string{"deleteuser"}, wantErr: errHelp},
		{name: "empty identifier", args: []string{"deleteuser", ""}, wantErr: errHelp},
		{name: "unknown identifier", args: []string{"deleteuser", "ghost@test.cd"}, wantErr: user.ErrNotFound},
		{name: "by email", args: []string{"deleteuser", "awe@test.cd"}},
		{name: "already deleted", args: []string{"deleteuser", "awe@test.cd"}, wantErr: user.ErrNotFound},
	}
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		t.Run(tt.name, func(t *testing.T) {
			out.Reset()
			if err := cli.run(args); err != nil {
				if tt.wantErr != nil {
					if !errors.Is(err, tt.wantErr) {
						t.Errorf("cli.run() error = %v, wantErr %v", err, tt.wantErr)
					}
				} else if tt.wantErrStr != "" {
					if err.Error() != tt.wantErrStr {
						t.Errorf("cli.run() error.Error() = %s, wantErrStr %s", err.Error(), tt.wantErrStr)
					}
				} else {
					t.Errorf("cli.run() unexpected error = %v", err)
				}
				return
			}

			if tt.name == "by email" {
				got := out.String()
				if !strings.Contains(got, "Done. Summary:") {
					t.Errorf("cli.run() output missing summary:\n%s", got)
				}
				if !strings.Contains(got, "WARNING") || !strings.Contains(got, "Solo") {
					t.Errorf("cli.run() output missing orphaned workspace warning:\n%s", got)
				}
				if _, err := usrRepo.GetUser(context.Background(), user.GetFilter{ID: usr.ID}); !errors.Is(err, user.ErrNotFound) {
					t.Errorf("GetUser() error = %v, want %v", err, user.ErrNotFound)
				}
			}
		})
	}
}

func Test_newAppLogger(t *testing.T) {
	std := log.New(io.Discard, "", 0)

	conf := &core.Config{Debug: true}
	if _, ok := newAppLogger(conf, std).(*logsvc.StdLogger); !ok {
		t.Error("newAppLogger() without a token must return a StdLogger")
	}

	conf = &core.Config{Debug: true, RollbarToken: "token", Env: "TEST", Build: "test"}
	if _, ok := newAppLogger(conf, std).(*logsvc.RollbarLogger); !ok {
		t.Error("newAppLogger() with a token must return a RollbarLogger")
	}
}

func Test_commandLine_migrateVerification(t *testing.T) {
	cli, _ := setup(t)

	verified := true
	legacy := testutil.CreateUser(t, usrRepo, "Legacy", "legacy@test.cd", "", "", user.RoleMember, true)
	legacy.EmailVerified = &verified
	if _, err := usrRepo.UpdateUser(context.Background(), legacy); err != nil {
		t.Fatalf("UpdateUser() failed: %v", err)
	}
	testutil.CreateUser(t, usrRepo, "Fresh", "fresh@test.cd", "", "", user.RoleMember, true)

	if err := cli.run([]string{"admin", "migrateverification"}); err != nil {
		t.Fatalf("cli.run() unexpected error = %v", err)
	}
	if got, want := out.String(), "migrated verification field on 1 user(s)\n"; got != want {
		t.Errorf("cli.run() output = %q, want %q", got, want)
	}

	migrated, err := usrRepo.GetUser(context.Background(), user.GetFilter{ID: legacy.ID})
	if err != nil {
		t.Fatalf("GetUser() failed: %v", err)
	}
	if !migrated.IsEmailVerified {
		t.Error("IsEmailVerified not backfilled from the legacy field")
	}
	if migrated.EmailVerified != nil {
		t.Error("legacy field not cleared after migration")
	}

	// re-run is a no-op
	out.Reset()
	if err := cli.run([]string{"admin", "migrateverification"}); err != nil {
		t.Fatalf("cli.run() unexpected error = %v", err)
	}
	if got, want := out.String(), "migrated verification field on 0 user(s)\n"; got != want {
		t.Errorf("cli.run() output = %q, want %q", got, want)
	}
}
