package mongorepos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/vazifa-app/vazifa/core/activity"
)

type activityRepository struct {
	db *mongo.Database
}

var _ activity.Repository = (*activityRepository)(nil) // interface compliance check

func NewActivityRepository(db *mongo.Database) *activityRepository {
	return &activityRepository{db: db}
}

func (repo activityRepository) logs() *mongo.Collection {
	return repo.db.Collection("activitylogs")
}

type activityDoc struct {
	ID        string                 `bson:"_id,omitempty"`
	User      string                 `bson:"user"`
	Action    string                 `bson:"action"`
	Details   map[string]interface{} `bson:"details,omitempty"`
	CreatedAt time.Time              `bson:"createdAt"`
}

func (repo activityRepository) LogActivity(ctx context.Context, entry activity.Log) (activity.Log, error) {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	doc := activityDoc{
		ID:        entry.ID,
		User:      entry.User,
		Action:    entry.Action,
		Details:   entry.Details,
		CreatedAt: entry.CreatedAt.UTC(),
	}
	if _, err := repo.logs().InsertOne(ctx, doc); err != nil {
		return activity.Log{}, errors.Wrap(err, "logging activity")
	}
	return entry, nil
}

func (repo activityRepository) QueryByUser(ctx context.Context, accountID string) ([]activity.Log, error) {
	cursor, err := repo.logs().Find(ctx, bson.M{"user": accountID})
	if err != nil {
		return nil, errors.Wrap(err, "querying activity logs")
	}
	var docs []activityDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "decoding activity logs")
	}
	logs := make([]activity.Log, 0, len(docs))
	for _, doc := range docs {
		logs = append(logs, activity.Log{
			ID:        doc.ID,
			User:      doc.User,
			Action:    doc.Action,
			Details:   doc.Details,
			CreatedAt: doc.CreatedAt,
		})
	}
	return logs, nil
}

func (repo activityRepository) ReassignUser(ctx context.Context, targetID, sentinelID, origName, origEmail string) (int64, error) {
	res, err := repo.logs().UpdateMany(ctx,
		bson.M{"user": targetID},
		bson.M{"$set": bson.M{
			"user":                      sentinelID,
			"details.originalUserName":  origName,
			"details.originalUserEmail": origEmail,
		}},
	)
	if err != nil {
		return 0, errors.Wrap(err, "reassigning activity logs")
	}
	return res.ModifiedCount, nil
}
