package activity

import (
	"context"
	"time"
)

type (
	Repository interface {
		LogActivity(ctx context.Context, entry Log) (Log, error)
		QueryByUser(ctx context.Context, accountID string) ([]Log, error)

		// ReassignUser retargets the user reference of every matching Log to
		// the sentinel in one update-many and records the original identity
		// under details.originalUserName / details.originalUserEmail.
		ReassignUser(ctx context.Context, targetID, sentinelID, origName, origEmail string) (int64, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Log(ctx context.Context, accountID, action string, details map[string]interface{}) (Log, error) {
	return svc.repo.LogActivity(ctx, Log{
		User:      accountID,
		Action:    action,
		Details:   details,
		CreatedAt: time.Now().UTC(),
	})
}

func (svc *Service) QueryByUser(ctx context.Context, accountID string) ([]Log, error) {
	return svc.repo.QueryByUser(ctx, accountID)
}
