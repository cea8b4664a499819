package workspace

import (
	"time"

	"github.com/vazifa-app/vazifa/core"
)

// Member roles within a workspace.
const (
	MemberRoleOwner  = "owner"
	MemberRoleAdmin  = "admin"
	MemberRoleMember = "member"
	MemberRoleViewer = "viewer"
)

var AllMemberRoles = []string{MemberRoleOwner, MemberRoleAdmin, MemberRoleMember, MemberRoleViewer}

type Member struct {
	AccountID string    `json:"account_id"`
	Role      string    `json:"role"`
	JoinedAt  time.Time `json:"joined_at"` // UTC
}

type Workspace struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Color       string    `json:"color"`
	Owner       string    `json:"owner"` // non-transferable by the deletion workflow
	Members     []Member  `json:"members"`
	CreatedAt   time.Time `json:"created_at"` // UTC
	UpdatedAt   time.Time `json:"updated_at"` // UTC
}

func (ws *Workspace) HasMember(accountID string) bool {
	for _, m := range ws.Members {
		if m.AccountID == accountID {
			return true
		}
	}
	return false
}

// NewWorkspace defines what information must be provided to create a Workspace.
type NewWorkspace struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Color       string `json:"color"`
	Owner       string `json:"owner" validate:"required"`
}

func (nw *NewWorkspace) Validate() error {
	nw.Name = core.CleanString(nw.Name)
	nw.Description = core.CleanString(nw.Description)

	if err := core.Validate.Struct(nw); err != nil {
		return core.TranslateValidatorErrs(err)
	}
	return nil
}

// NewMember defines what information must be provided to add a workspace member.
type NewMember struct {
	AccountID string `json:"account_id" validate:"required"`
	Role      string `json:"role" validate:"omitempty,memberrole"`
}

func (nm *NewMember) Validate() error {
	if err := core.Validate.Struct(nm); err != nil {
		return core.TranslateValidatorErrs(err)
	}
	return nil
}
