package mongorepos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/vazifa-app/vazifa/core/task"
)

type taskRepository struct {
	db *mongo.Database
}

var _ task.Repository = (*taskRepository)(nil) // interface compliance check

func NewTaskRepository(db *mongo.Database) *taskRepository {
	return &taskRepository{db: db}
}

func (repo taskRepository) tasks() *mongo.Collection {
	return repo.db.Collection("tasks")
}

type taskDoc struct {
	ID                   string    `bson:"_id,omitempty"`
	Title                string    `bson:"title"`
	Description          string    `bson:"description,omitempty"`
	Status               string    `bson:"status"`
	Priority             string    `bson:"priority"`
	WorkspaceID          string    `bson:"workspaceId"`
	ProjectID            string    `bson:"projectId,omitempty"`
	CreatedBy            string    `bson:"createdBy"`
	Assignees            []string  `bson:"assignees,omitempty"`
	ResponsibleManager   string    `bson:"responsibleManager,omitempty"`
	Watchers             []string  `bson:"watchers,omitempty"`
	DueDate              time.Time `bson:"dueDate,omitempty"`
	OriginalCreatorName  string    `bson:"originalCreatorName,omitempty"`
	OriginalCreatorEmail string    `bson:"originalCreatorEmail,omitempty"`
	CreatedAt            time.Time `bson:"createdAt"`
	UpdatedAt            time.Time `bson:"updatedAt"`
}

func (repo taskRepository) doc(tsk task.Task) taskDoc {
	return taskDoc{
		ID:                   tsk.ID,
		Title:                tsk.Title,
		Description:          tsk.Description,
		Status:               tsk.Status,
		Priority:             tsk.Priority,
		WorkspaceID:          tsk.WorkspaceID,
		ProjectID:            tsk.ProjectID,
		CreatedBy:            tsk.CreatedBy,
		Assignees:            tsk.Assignees,
		ResponsibleManager:   tsk.ResponsibleManager,
		Watchers:             tsk.Watchers,
		DueDate:              tsk.DueDate.UTC(),
		OriginalCreatorName:  tsk.OriginalCreatorName,
		OriginalCreatorEmail: tsk.OriginalCreatorEmail,
		CreatedAt:            tsk.CreatedAt.UTC(),
		UpdatedAt:            tsk.UpdatedAt.UTC(),
	}
}

func (repo taskRepository) undoc(doc taskDoc) task.Task {
	return task.Task{
		ID:                   doc.ID,
		Title:                doc.Title,
		Description:          doc.Description,
		Status:               doc.Status,
		Priority:             doc.Priority,
		WorkspaceID:          doc.WorkspaceID,
		ProjectID:            doc.ProjectID,
		CreatedBy:            doc.CreatedBy,
		Assignees:            doc.Assignees,
		ResponsibleManager:   doc.ResponsibleManager,
		Watchers:             doc.Watchers,
		DueDate:              doc.DueDate,
		OriginalCreatorName:  doc.OriginalCreatorName,
		OriginalCreatorEmail: doc.OriginalCreatorEmail,
		CreatedAt:            doc.CreatedAt,
		UpdatedAt:            doc.UpdatedAt,
	}
}

func (repo taskRepository) CreateTask(ctx context.Context, tsk task.Task) (task.Task, error) {
	if tsk.ID == "" {
		tsk.ID = uuid.NewString()
	}
	if _, err := repo.tasks().InsertOne(ctx, repo.doc(tsk)); err != nil {
		return task.Task{}, errors.Wrap(err, "creating task")
	}
	return tsk, nil
}

func (repo taskRepository) GetTaskByID(ctx context.Context, id string) (task.Task, error) {
	var doc taskDoc
	if err := repo.tasks().FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return task.Task{}, task.ErrNotFound
		}
		return task.Task{}, errors.Wrap(err, "getting task")
	}
	return repo.undoc(doc), nil
}

func (repo taskRepository) FilterTasks(ctx context.Context, filter task.QueryFilter) ([]task.Task, error) {
	match := bson.M{}
	if filter.Search != "" {
		regex := bson.M{"$regex": filter.Search, "$options": "i"}
		match["$or"] = []bson.M{{"title": regex}, {"description": regex}}
	}
	if filter.WorkspaceID != "" {
		match["workspaceId"] = filter.WorkspaceID
	}
	if filter.ProjectID != "" {
		match["projectId"] = filter.ProjectID
	}
	if filter.Status != "" {
		match["status"] = filter.Status
	}
	if filter.Priority != "" {
		match["priority"] = filter.Priority
	}
	if filter.CreatedBy != "" {
		match["createdBy"] = filter.CreatedBy
	}
	if filter.Assignee != "" {
		match["assignees"] = filter.Assignee
	}

	cursor, err := repo.tasks().Find(ctx, match)
	if err != nil {
		return nil, errors.Wrap(err, "querying tasks")
	}
	var docs []taskDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "decoding tasks")
	}
	tasks := make([]task.Task, 0, len(docs))
	for _, doc := range docs {
		tasks = append(tasks, repo.undoc(doc))
	}
	return tasks, nil
}

func (repo taskRepository) UpdateTask(ctx context.Context, tsk task.Task) (task.Task, error) {
	res, err := repo.tasks().ReplaceOne(ctx, bson.M{"_id": tsk.ID}, repo.doc(tsk))
	if err != nil {
		return task.Task{}, errors.Wrap(err, "updating task")
	}
	if res.MatchedCount == 0 {
		return task.Task{}, task.ErrNotFound
	}
	return tsk, nil
}

func (repo taskRepository) DeleteTasksByID(ctx context.Context, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}
	if _, err := repo.tasks().DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}}); err != nil {
		return errors.Wrap(err, "deleting tasks")
	}
	return nil
}

func (repo taskRepository) ReassignCreator(ctx context.Context, targetID, sentinelID, origName, origEmail string) (int64, error) {
	res, err := repo.tasks().UpdateMany(ctx,
		bson.M{"createdBy": targetID},
		bson.M{"$set": bson.M{
			"createdBy":            sentinelID,
			"originalCreatorName":  origName,
			"originalCreatorEmail": origEmail,
		}},
	)
	if err != nil {
		return 0, errors.Wrap(err, "reassigning task creator")
	}
	return res.ModifiedCount, nil
}

func (repo taskRepository) RemoveAssignee(ctx context.Context, targetID string) (int64, error) {
	res, err := repo.tasks().UpdateMany(ctx,
		bson.M{"assignees": targetID},
		bson.M{"$pull": bson.M{"assignees": targetID}},
	)
	if err != nil {
		return 0, errors.Wrap(err, "removing task assignee")
	}
	return res.ModifiedCount, nil
}

func (repo taskRepository) ClearResponsibleManager(ctx context.Context, targetID string) (int64, error) {
	res, err := repo.tasks().UpdateMany(ctx,
		bson.M{"responsibleManager": targetID},
		bson.M{"$unset": bson.M{"responsibleManager": ""}},
	)
	if err != nil {
		return 0, errors.Wrap(err, "clearing responsible manager")
	}
	return res.ModifiedCount, nil
}

func (repo taskRepository) RemoveWatcher(ctx context.Context, targetID string) (int64, error) {
	res, err := repo.tasks().UpdateMany(ctx,
		bson.M{"watchers": targetID},
		bson.M{"$pull": bson.M{"watchers": targetID}},
	)
	if err != nil {
		return 0, errors.Wrap(err, "removing task watcher")
	}
	return res.ModifiedCount, nil
}
