package dummydb

import (
	"context"

	"github.com/google/uuid"

	"github.com/vazifa-app/vazifa/core/activity"
)

type activityRepository struct {
	db *activityTable
}

var _ activity.Repository = (*activityRepository)(nil) // interface compliance check

func NewActivityRepository(db *DB) *activityRepository {
	return &activityRepository{db: db.activity}
}

func (repo *activityRepository) LogActivity(_ context.Context, entry activity.Log) (activity.Log, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	repo.db.table[entry.ID] = &entry
	return entry, nil
}

func (repo *activityRepository) QueryByUser(_ context.Context, accountID string) ([]activity.Log, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	var logs []activity.Log
	for _, entry := range repo.db.table {
		if entry.User == accountID {
			logs = append(logs, *entry)
		}
	}
	return logs, nil
}

func (repo *activityRepository) ReassignUser(_ context.Context, targetID, sentinelID, origName, origEmail string) (int64, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	var count int64
	for _, entry := range repo.db.table {
		if entry.User == targetID {
			entry.User = sentinelID
			if entry.Details == nil {
				entry.Details = make(map[string]interface{})
			}
			entry.Details["originalUserName"] = origName
			entry.Details["originalUserEmail"] = origEmail
			count++
		}
	}
	return count, nil
}
