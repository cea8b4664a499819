package dummydb

import (
	"context"

	"github.com/google/uuid"

	"github.com/vazifa-app/vazifa/core/workspace"
)

type workspaceRepository struct {
	db *workspaceTable
}

var _ workspace.Repository = (*workspaceRepository)(nil) // interface compliance check

func NewWorkspaceRepository(db *DB) *workspaceRepository {
	return &workspaceRepository{db: db.workspace}
}

func (repo *workspaceRepository) CreateWorkspace(_ context.Context, ws workspace.Workspace) (workspace.Workspace, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if ws.ID == "" {
		ws.ID = uuid.NewString()
	}
	repo.db.table[ws.ID] = &ws
	return ws, nil
}

func (repo *workspaceRepository) GetWorkspaceByID(_ context.Context, id string) (workspace.Workspace, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if ws, ok := repo.db.table[id]; ok {
		return *ws, nil
	}
	return workspace.Workspace{}, workspace.ErrNotFound
}

func (repo *workspaceRepository) QueryWorkspacesByMember(_ context.Context, accountID string) ([]workspace.Workspace, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	var workspaces []workspace.Workspace
	for _, ws := range repo.db.table {
		if ws.HasMember(accountID) {
			workspaces = append(workspaces, *ws)
		}
	}
	return workspaces, nil
}

func (repo *workspaceRepository) UpdateWorkspace(_ context.Context, ws workspace.Workspace) (workspace.Workspace, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[ws.ID]; !ok {
		return workspace.Workspace{}, workspace.ErrNotFound
	}
	repo.db.table[ws.ID] = &ws
	return ws, nil
}

func (repo *workspaceRepository) DeleteWorkspacesByID(_ context.Context, ids ...string) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	for _, id := range ids {
		delete(repo.db.table, id)
	}
	return nil
}

func (repo *workspaceRepository) AddMember(_ context.Context, workspaceID string, m workspace.Member) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	ws, ok := repo.db.table[workspaceID]
	if !ok {
		return workspace.ErrNotFound
	}
	if ws.HasMember(m.AccountID) {
		return nil
	}
	ws.Members = append(ws.Members, m)
	return nil
}

func (repo *workspaceRepository) RemoveMember(_ context.Context, targetID string) (int64, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	var count int64
	for _, ws := range repo.db.table {
		if !ws.HasMember(targetID) {
			continue
		}
		members := make([]workspace.Member, 0, len(ws.Members)-1)
		for _, m := range ws.Members {
			if m.AccountID != targetID {
				members = append(members, m)
			}
		}
		ws.Members = members
		count++
	}
	return count, nil
}

func (repo *workspaceRepository) FindOwnedBy(_ context.Context, ownerID string) ([]workspace.Workspace, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	var workspaces []workspace.Workspace
	for _, ws := range repo.db.table {
		if ws.Owner == ownerID {
			workspaces = append(workspaces, *ws)
		}
	}
	return workspaces, nil
}
