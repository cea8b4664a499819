package user

import (
	"testing"

	"github.com/vazifa-app/vazifa/core"
)

func TestNewSentinel(t *testing.T) {
	sentinel := NewSentinel()

	if sentinel.Email != SentinelEmail {
		t.Errorf("Email = %s, want %s", sentinel.Email, SentinelEmail)
	}
	if sentinel.Name != SentinelName {
		t.Errorf("Name = %s, want %s", sentinel.Name, SentinelName)
	}
	if sentinel.Role != RoleMember {
		t.Errorf("Role = %s, want %s", sentinel.Role, RoleMember)
	}
	if sentinel.IsActive {
		t.Error("sentinel must not be active")
	}
	if !sentinel.IsSentinel {
		t.Error("sentinel must be flagged as such")
	}
	if len(sentinel.PasswordHash) > 0 {
		t.Error("sentinel must not carry a credential")
	}
	if sentinel.DisabledReason != SentinelDisabledReason {
		t.Errorf("DisabledReason = %s, want %s", sentinel.DisabledReason, SentinelDisabledReason)
	}
}

func TestUser_SetCheckPassword(t *testing.T) {
	var usr User
	if err := usr.SetPassword("LolC@t123"); err != nil {
		t.Fatalf("SetPassword() failed: %v", err)
	}
	if len(usr.PasswordHash) == 0 || string(usr.PasswordHash) == "LolC@t123" {
		t.Error("password not hashed")
	}
	if err := usr.CheckPassword("LolC@t123"); err != nil {
		t.Errorf("CheckPassword() error = %v", err)
	}
	if err := usr.CheckPassword("nope"); err == nil {
		t.Error("CheckPassword() accepted a wrong password")
	}
}

func TestNewUser_validation(t *testing.T) {
	valid := NewUser{
		Name:            "Awe",
		Email:           "awe@test.cd",
		Phone:           "+243971234567",
		Role:            RoleMember,
		Password:        "LolC@t123",
		PasswordConfirm: "LolC@t123",
	}

	tests := []struct {
		name    string
		mod     func(nu *NewUser)
		wantErr bool
	}{
		{name: "valid", mod: func(nu *NewUser) {}},
		{name: "no name", mod: func(nu *NewUser) { nu.Name = "" }, wantErr: true},
		{name: "bad email", mod: func(nu *NewUser) { nu.Email = "lol" }, wantErr: true},
		{name: "bad phone", mod: func(nu *NewUser) { nu.Phone = "call me" }, wantErr: true},
		{name: "no phone ok", mod: func(nu *NewUser) { nu.Phone = "" }},
		{name: "bad role", mod: func(nu *NewUser) { nu.Role = "boss" }, wantErr: true},
		{name: "password mismatch", mod: func(nu *NewUser) { nu.PasswordConfirm = "nope" }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nu := valid
			tt.mod(&nu)
			err := nu.Validate()
			if tt.wantErr {
				if _, ok := err.(*core.ValidationError); !ok {
					t.Errorf("Validate() error = %v, want a validation error", err)
				}
			} else if err != nil {
				t.Errorf("Validate() error = %v", err)
			}
		})
	}
}
