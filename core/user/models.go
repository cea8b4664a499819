package user

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/vazifa-app/vazifa/core"
)

// Roles
const (
	RoleMember  = "member"
	RoleManager = "manager"
	RoleAdmin   = "admin"
)

var AllRoles = []string{RoleMember, RoleManager, RoleAdmin}

// Sentinel account. A single disabled, non-authenticatable account that
// absorbs ownership of records whose original owner has been removed.
// It is identified by the reserved email; at most one such account exists.
const (
	SentinelEmail          = "deleted-user@vazifa.app"
	SentinelName           = "[Deleted user]"
	SentinelDisabledReason = "account removed; retained to preserve history"
)

type User struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	Role            string    `json:"role"`
	IsActive        bool      `json:"is_active"`
	IsEmailVerified bool      `json:"is_email_verified"`
	EmailVerified   *bool     `json:"-"` // legacy field, see `admin migrateverification`
	DisabledReason  string    `json:"disabled_reason,omitempty"`
	IsSentinel      bool      `json:"-"`
	PasswordHash    []byte    `json:"-"`
	CreatedAt       time.Time `json:"created_at"` // UTC
	UpdatedAt       time.Time `json:"updated_at"` // UTC
	LastLogin       time.Time `json:"last_login"` // UTC
}

func (u *User) SetPassword(pwd string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	return nil
}

func (u *User) CheckPassword(pwd string) error {
	return bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(pwd))
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u *User) IsManager() bool {
	return u.Role == RoleManager
}

// NewSentinel returns the record the sentinel provisioner creates on first
// use: lowest-privilege role, disabled, no credential.
func NewSentinel() User {
	now := time.Now().UTC()
	return User{
		Name:           SentinelName,
		Email:          SentinelEmail,
		Role:           RoleMember,
		IsActive:       false,
		DisabledReason: SentinelDisabledReason,
		IsSentinel:     true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// NewUser defines what information must be provided to create a User.
type NewUser struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"omitempty,phone"`
	Role            string `json:"role" validate:"omitempty,role"`
	Password        string `json:"password" validate:"required"`
	PasswordConfirm string `json:"password_confirm" validate:"required,eqfield=Password"`
}

func (nu *NewUser) Validate() error {
	nu.Name = core.CleanString(nu.Name)
	nu.Email = core.CleanString(nu.Email, true /* lower */)
	nu.Phone = core.CleanString(nu.Phone)

	if err := core.Validate.Struct(nu); err != nil {
		return core.TranslateValidatorErrs(err)
	}
	return nil
}

// UpdateUser defines what information may be provided to modify an existing User.
type UpdateUser struct {
	Name     string `json:"name"`
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone" validate:"omitempty,phone"`
	Role     string `json:"role" validate:"omitempty,role"`
	IsActive *bool  `json:"is_active"`
}

func (uu *UpdateUser) Validate(origUsr User) error {
	if name := core.CleanString(uu.Name); name != "" {
		uu.Name = name
	} else {
		uu.Name = origUsr.Name
	}
	if email := core.CleanString(uu.Email, true /* lower */); email != "" {
		uu.Email = email
	} else {
		uu.Email = origUsr.Email
	}
	if phone := core.CleanString(uu.Phone); phone != "" {
		uu.Phone = phone
	} else {
		uu.Phone = origUsr.Phone
	}
	if uu.Role == "" {
		uu.Role = origUsr.Role
	}

	if err := core.Validate.Struct(uu); err != nil {
		return core.TranslateValidatorErrs(err)
	}
	return nil
}

// GetFilter selects a single User. AnyIdentifier matches email, phone or,
// when it parses as a UUID, the id - all in one query.
type GetFilter struct {
	ID            string
	Email         string
	Phone         string
	AnyIdentifier string
}

// QueryFilter applies AND on available fields when filtering Users.
type QueryFilter struct {
	Search      string    `query:"search"`
	Role        string    `query:"role"`
	IsActive    *bool     `query:"is_active"`
	CreatedFrom time.Time `query:"created_from"`
	CreatedTo   time.Time `query:"created_to"`
}
