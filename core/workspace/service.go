package workspace

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("workspace not found")

type (
	Repository interface {
		CreateWorkspace(ctx context.Context, ws Workspace) (Workspace, error)
		GetWorkspaceByID(ctx context.Context, id string) (Workspace, error)
		QueryWorkspacesByMember(ctx context.Context, accountID string) ([]Workspace, error)
		UpdateWorkspace(ctx context.Context, ws Workspace) (Workspace, error)
		DeleteWorkspacesByID(ctx context.Context, ids ...string) error
		AddMember(ctx context.Context, workspaceID string, m Member) error

		// RemoveMember strips target's membership entry from every Workspace
		// containing it, in one update-many. Workspaces and their remaining
		// members are untouched. Returns the number of workspaces modified.
		RemoveMember(ctx context.Context, targetID string) (int64, error)
		// FindOwnedBy returns every Workspace whose owner is the given
		// account. Ownership is never reassigned by this repository; callers
		// report such workspaces instead.
		FindOwnedBy(ctx context.Context, ownerID string) ([]Workspace, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ctx context.Context, nw NewWorkspace) (Workspace, error) {
	if err := nw.Validate(); err != nil {
		return Workspace{}, err
	}
	now := time.Now().UTC()
	ws := Workspace{
		Name:        nw.Name,
		Description: nw.Description,
		Color:       nw.Color,
		Owner:       nw.Owner,
		Members: []Member{
			{AccountID: nw.Owner, Role: MemberRoleOwner, JoinedAt: now},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	return svc.repo.CreateWorkspace(ctx, ws)
}

func (svc *Service) GetByID(ctx context.Context, id string) (Workspace, error) {
	return svc.repo.GetWorkspaceByID(ctx, id)
}

func (svc *Service) QueryByMember(ctx context.Context, accountID string) ([]Workspace, error) {
	return svc.repo.QueryWorkspacesByMember(ctx, accountID)
}

func (svc *Service) AddMember(ctx context.Context, workspaceID string, nm NewMember) error {
	if err := nm.Validate(); err != nil {
		return err
	}
	if nm.Role == "" {
		nm.Role = MemberRoleMember
	}
	return svc.repo.AddMember(ctx, workspaceID, Member{
		AccountID: nm.AccountID,
		Role:      nm.Role,
		JoinedAt:  time.Now().UTC(),
	})
}

func (svc *Service) Delete(ctx context.Context, ids ...string) error {
	return svc.repo.DeleteWorkspacesByID(ctx, ids...)
}
