// Package deletion implements the account removal workflow: resolve the
// target, provision the sentinel account, retarget or strip every reference
// to the target across the store, report workspaces it still owns, then
// delete the account record itself.
//
// Every reassignment pass is a single bulk update whose predicate stops
// matching once applied, so an interrupted run can simply be re-run; only
// the final account delete is non-idempotent and it always runs last.
package deletion

import (
	"context"
	"errors"

	"github.com/vazifa-app/vazifa/core"
	"github.com/vazifa-app/vazifa/core/activity"
	"github.com/vazifa-app/vazifa/core/comment"
	"github.com/vazifa-app/vazifa/core/task"
	"github.com/vazifa-app/vazifa/core/user"
	"github.com/vazifa-app/vazifa/core/workspace"
)

// ErrInvalidTarget is returned when the resolved account is the sentinel
// itself. The sentinel can never be deleted.
var ErrInvalidTarget = errors.New("cannot delete the sentinel account")

// OrphanedWorkspace identifies a workspace still owned by the removed
// account. Ownership transfer is a business decision; the workflow reports
// these instead of reassigning or deleting them.
type OrphanedWorkspace struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Summary reports what a run changed.
type Summary struct {
	TasksCreated  int64               `json:"tasks_created"`
	TasksAssigned int64               `json:"tasks_assigned"`
	ManagerTasks  int64               `json:"manager_tasks"`
	Comments      int64               `json:"comments"`
	Responses     int64               `json:"responses"`
	Activities    int64               `json:"activities"`
	Workspaces    int64               `json:"workspaces"`
	Orphaned      []OrphanedWorkspace `json:"orphaned_workspaces"`
	SentinelID    string              `json:"sentinel_id"`
}

type Service struct {
	usrRepo user.Repository
	tskRepo task.Repository
	cmtRepo comment.Repository
	wsRepo  workspace.Repository
	actRepo activity.Repository
	log     core.Logger
}

func NewService(
	usrRepo user.Repository,
	tskRepo task.Repository,
	cmtRepo comment.Repository,
	wsRepo workspace.Repository,
	actRepo activity.Repository,
	log core.Logger,
) *Service {
	return &Service{
		usrRepo: usrRepo,
		tskRepo: tskRepo,
		cmtRepo: cmtRepo,
		wsRepo:  wsRepo,
		actRepo: actRepo,
		log:     log,
	}
}

// Run deletes the account matching identifier (email, phone or id) after
// reassigning everything it owns. No mutation happens unless the target
// resolves and is not the sentinel.
func (svc *Service) Run(ctx context.Context, identifier string) (Summary, error) {
	target, err := svc.resolve(ctx, identifier)
	if err != nil {
		return Summary{}, err
	}

	sentinel, err := svc.ensureSentinel(ctx)
	if err != nil {
		return Summary{}, err
	}

	summary, err := svc.reassign(ctx, target, sentinel)
	if err != nil {
		return summary, err
	}

	summary.Orphaned, err = svc.reportOrphaned(ctx, target)
	if err != nil {
		return summary, err
	}

	// finalize: the delete is the only non-idempotent step and must be last,
	// otherwise records would briefly reference a nonexistent account.
	if err := svc.usrRepo.DeleteUsersByID(ctx, target.ID); err != nil {
		return summary, err
	}
	svc.log.Info("account deleted", "id", target.ID, "email", target.Email)
	return summary, nil
}

// resolve locates the target account by email, phone or id in one query.
// Read-only; fails with user.ErrNotFound or ErrInvalidTarget.
func (svc *Service) resolve(ctx context.Context, identifier string) (user.User, error) {
	target, err := svc.usrRepo.GetUser(ctx, user.GetFilter{AnyIdentifier: core.CleanString(identifier)})
	if err != nil {
		return user.User{}, err
	}
	if target.IsSentinel || target.Email == user.SentinelEmail {
		return user.User{}, ErrInvalidTarget
	}
	return target, nil
}

// ensureSentinel idempotently provisions the sentinel account. Two runs may
// race on the create; the loser's duplicate-key error means the sentinel
// exists, so it is treated as success and the lookup retried.
func (svc *Service) ensureSentinel(ctx context.Context) (user.User, error) {
	sentinel, err := svc.usrRepo.GetUser(ctx, user.GetFilter{Email: user.SentinelEmail})
	if err == nil {
		return sentinel, nil
	}
	if !errors.Is(err, user.ErrNotFound) {
		return user.User{}, err
	}

	sentinel, err = svc.usrRepo.CreateUser(ctx, user.NewSentinel())
	if err != nil {
		if errors.Is(err, user.ErrEmailExists) {
			return svc.usrRepo.GetUser(ctx, user.GetFilter{Email: user.SentinelEmail})
		}
		return user.User{}, err
	}
	svc.log.Info("sentinel account created", "id", sentinel.ID)
	return sentinel, nil
}

// reassign runs the bulk passes sequentially, logging each count as it
// lands. The sentinel identity is passed explicitly into every pass.
func (svc *Service) reassign(ctx context.Context, target, sentinel user.User) (Summary, error) {
	summary := Summary{SentinelID: sentinel.ID}
	var err error

	if summary.TasksCreated, err = svc.tskRepo.ReassignCreator(ctx, target.ID, sentinel.ID, target.Name, target.Email); err != nil {
		return summary, err
	}
	svc.log.Info("reassigned created tasks", "count", summary.TasksCreated)

	if summary.TasksAssigned, err = svc.tskRepo.RemoveAssignee(ctx, target.ID); err != nil {
		return summary, err
	}
	svc.log.Info("removed from assigned tasks", "count", summary.TasksAssigned)

	if summary.ManagerTasks, err = svc.tskRepo.ClearResponsibleManager(ctx, target.ID); err != nil {
		return summary, err
	}
	svc.log.Info("cleared responsible manager", "count", summary.ManagerTasks)

	// watcher removal is deliberately absent from the summary
	if _, err = svc.tskRepo.RemoveWatcher(ctx, target.ID); err != nil {
		return summary, err
	}
	svc.log.Info("removed from watched tasks")

	if summary.Comments, err = svc.cmtRepo.ReassignCommentAuthors(ctx, target.ID, sentinel.ID, target.Name); err != nil {
		return summary, err
	}
	svc.log.Info("reassigned comments", "count", summary.Comments)

	if summary.Responses, err = svc.cmtRepo.ReassignResponseAuthors(ctx, target.ID, sentinel.ID, target.Name); err != nil {
		return summary, err
	}
	svc.log.Info("reassigned responses", "count", summary.Responses)

	if summary.Activities, err = svc.actRepo.ReassignUser(ctx, target.ID, sentinel.ID, target.Name, target.Email); err != nil {
		return summary, err
	}
	svc.log.Info("reassigned activity logs", "count", summary.Activities)

	if summary.Workspaces, err = svc.wsRepo.RemoveMember(ctx, target.ID); err != nil {
		return summary, err
	}
	svc.log.Info("removed workspace memberships", "count", summary.Workspaces)

	return summary, nil
}

// reportOrphaned surfaces workspaces still owned by the target. Advisory
// only: it blocks nothing and mutates nothing.
func (svc *Service) reportOrphaned(ctx context.Context, target user.User) ([]OrphanedWorkspace, error) {
	owned, err := svc.wsRepo.FindOwnedBy(ctx, target.ID)
	if err != nil {
		return nil, err
	}
	orphaned := make([]OrphanedWorkspace, 0, len(owned))
	for _, ws := range owned {
		orphaned = append(orphaned, OrphanedWorkspace{ID: ws.ID, Name: ws.Name})
		svc.log.Warn("workspace left without a reachable owner", "id", ws.ID, "name", ws.Name)
	}
	return orphaned, nil
}
