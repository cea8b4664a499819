package user_test

import (
	"context"
	"errors"
	"testing"

	"github.com/vazifa-app/vazifa/core"
	"github.com/vazifa-app/vazifa/core/user"
	"github.com/vazifa-app/vazifa/storage/database/dummy"
	"github.com/vazifa-app/vazifa/tests"
)

func setup(t *testing.T) (*user.Service, user.Repository) {
	repo := dummydb.NewUserRepository(testutil.PrepareDB(t))
	return user.NewService(repo), repo
}

func TestService_Create(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	nu := user.NewUser{
		Name:            "Awe",
		Email:           "AWE@test.cd",
		Phone:           "+243971234567",
		Password:        "LolC@t123",
		PasswordConfirm: "LolC@t123",
	}
	usr, err := svc.Create(ctx, nu)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if usr.ID == "" {
		t.Error("ID not assigned")
	}
	if usr.Email != "awe@test.cd" {
		t.Errorf("Email = %s, want awe@test.cd", usr.Email)
	}
	if usr.Role != user.RoleMember {
		t.Errorf("Role = %s, want default %s", usr.Role, user.RoleMember)
	}
	if !usr.IsActive {
		t.Error("new user must be active")
	}
	if err := usr.CheckPassword("LolC@t123"); err != nil {
		t.Errorf("CheckPassword() error = %v", err)
	}

	// duplicate email
	if _, err := svc.Create(ctx, nu); !errors.Is(err, user.ErrEmailExists) {
		t.Errorf("Create() error = %v, want %v", err, user.ErrEmailExists)
	}

	// invalid input
	nu.Email = "lol"
	if _, err := svc.Create(ctx, nu); err != nil {
		if _, ok := err.(*core.ValidationError); !ok {
			t.Errorf("Create() error = %v, want a validation error", err)
		}
	} else {
		t.Error("Create() accepted an invalid email")
	}
}

func TestService_GetByAnyIdentifier(t *testing.T) {
	svc, repo := setup(t)
	ctx := context.Background()

	usr := testutil.CreateUser(t, repo, "Awe", "awe@test.cd", "+243971234567", "", user.RoleMember, true)

	for _, identifier := range []string{"awe@test.cd", "+243971234567", usr.ID} {
		got, err := svc.GetByAnyIdentifier(ctx, identifier)
		if err != nil {
			t.Errorf("GetByAnyIdentifier(%q) error = %v", identifier, err)
			continue
		}
		if got.ID != usr.ID {
			t.Errorf("GetByAnyIdentifier(%q) ID = %s, want %s", identifier, got.ID, usr.ID)
		}
	}

	if _, err := svc.GetByAnyIdentifier(ctx, "ghost@test.cd"); !errors.Is(err, user.ErrNotFound) {
		t.Errorf("GetByAnyIdentifier() error = %v, want %v", err, user.ErrNotFound)
	}
}

func TestService_Update(t *testing.T) {
	svc, repo := setup(t)
	ctx := context.Background()

	usr := testutil.CreateUser(t, repo, "Awe", "awe@test.cd", "", "", user.RoleMember, true)

	inactive := false
	got, err := svc.Update(ctx, usr.ID, user.UpdateUser{Name: "Awe II", IsActive: &inactive})
	if err != nil {
		t.Fatalf("Update() failed: %v", err)
	}
	if got.Name != "Awe II" {
		t.Errorf("Name = %s, want Awe II", got.Name)
	}
	if got.Email != "awe@test.cd" {
		t.Errorf("Email = %s, want unchanged awe@test.cd", got.Email)
	}
	if got.IsActive {
		t.Error("user not deactivated")
	}

	if _, err := svc.Update(ctx, "nope", user.UpdateUser{}); !errors.Is(err, user.ErrNotFound) {
		t.Errorf("Update() error = %v, want %v", err, user.ErrNotFound)
	}
}

func TestService_Delete(t *testing.T) {
	svc, repo := setup(t)
	ctx := context.Background()

	usr := testutil.CreateUser(t, repo, "Awe", "awe@test.cd", "", "", user.RoleMember, true)
	if err := svc.Delete(ctx, usr.ID); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if _, err := svc.GetByID(ctx, usr.ID); !errors.Is(err, user.ErrNotFound) {
		t.Errorf("GetByID() error = %v, want %v", err, user.ErrNotFound)
	}
}

func TestService_MarkLegacyEmailsVerified(t *testing.T) {
	svc, repo := setup(t)
	ctx := context.Background()

	verified := true
	legacy := testutil.CreateUser(t, repo, "Legacy", "legacy@test.cd", "", "", user.RoleMember, true)
	legacy.EmailVerified = &verified
	if _, err := repo.UpdateUser(ctx, legacy); err != nil {
		t.Fatalf("UpdateUser() failed: %v", err)
	}
	testutil.CreateUser(t, repo, "Fresh", "fresh@test.cd", "", "", user.RoleMember, true)

	count, err := svc.MarkLegacyEmailsVerified(ctx)
	if err != nil {
		t.Fatalf("MarkLegacyEmailsVerified() failed: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}

	migrated, err := svc.GetByID(ctx, legacy.ID)
	if err != nil {
		t.Fatalf("GetByID() failed: %v", err)
	}
	if !migrated.IsEmailVerified || migrated.EmailVerified != nil {
		t.Error("legacy verification flag not migrated")
	}

	// re-run is a no-op
	if count, _ = svc.MarkLegacyEmailsVerified(ctx); count != 0 {
		t.Errorf("count = %d, want 0 on re-run", count)
	}
}
