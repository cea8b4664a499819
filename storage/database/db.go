package database

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/vazifa-app/vazifa/core"
)

// Open connects to the record store and returns a handle on the configured
// database. The connection string must be present; see Config.Validate.
func Open(ctx context.Context, conf *core.Config) (*mongo.Database, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	client, err := mongo.Connect(options.Client().ApplyURI(conf.Database.URI))
	if err != nil {
		return nil, errors.Wrap(err, "opening database")
	}
	if err := ping(ctx, client); err != nil {
		return nil, err
	}
	return client.Database(conf.Database.Name), nil
}

// ping waits for the database to be ready. Waits 100ms longer between each attempt.
func ping(ctx context.Context, client *mongo.Client) error {
	var err error
	maxAttempts := 30
	for attempts := 1; attempts <= maxAttempts; attempts++ {
		err = client.Ping(ctx, nil)
		if err == nil {
			break
		}
		time.Sleep(time.Duration(attempts) * 100 * time.Millisecond)
	}

	if err != nil {
		return errors.Wrap(err, "DB ping timeout")
	}
	return nil
}

// EnsureIndexes creates the indexes the repositories rely on. The unique
// email index doubles as the singleton guarantee for the sentinel account:
// concurrent provisioners collide on it and one creation wins.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		"users": {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true).SetSparse(true)},
			{Keys: bson.D{{Key: "phone", Value: 1}}, Options: options.Index().SetSparse(true)},
		},
		"tasks": {
			{Keys: bson.D{{Key: "createdBy", Value: 1}}},
			{Keys: bson.D{{Key: "assignees", Value: 1}}},
			{Keys: bson.D{{Key: "responsibleManager", Value: 1}}},
			{Keys: bson.D{{Key: "watchers", Value: 1}}},
			{Keys: bson.D{{Key: "workspaceId", Value: 1}, {Key: "createdAt", Value: 1}}},
		},
		"comments": {
			{Keys: bson.D{{Key: "author", Value: 1}}},
			{Keys: bson.D{{Key: "taskId", Value: 1}, {Key: "createdAt", Value: 1}}},
		},
		"responses": {
			{Keys: bson.D{{Key: "author", Value: 1}}},
			{Keys: bson.D{{Key: "commentId", Value: 1}, {Key: "createdAt", Value: 1}}},
		},
		"activitylogs": {
			{Keys: bson.D{{Key: "user", Value: 1}, {Key: "createdAt", Value: 1}}},
		},
		"workspaces": {
			{Keys: bson.D{{Key: "owner", Value: 1}}},
			{Keys: bson.D{{Key: "members.accountId", Value: 1}}},
		},
	}

	for coll, models := range indexes {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return errors.Wrapf(err, "creating %s indexes", coll)
		}
	}
	return nil
}
