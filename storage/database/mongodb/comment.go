package mongorepos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/vazifa-app/vazifa/core/comment"
)

type commentRepository struct {
	db *mongo.Database
}

var _ comment.Repository = (*commentRepository)(nil) // interface compliance check

func NewCommentRepository(db *mongo.Database) *commentRepository {
	return &commentRepository{db: db}
}

func (repo commentRepository) comments() *mongo.Collection {
	return repo.db.Collection("comments")
}

func (repo commentRepository) responses() *mongo.Collection {
	return repo.db.Collection("responses")
}

type commentDoc struct {
	ID                 string    `bson:"_id,omitempty"`
	TaskID             string    `bson:"taskId"`
	CommentID          string    `bson:"commentId,omitempty"` // responses only
	Author             string    `bson:"author"`
	Text               string    `bson:"text"`
	OriginalAuthorName string    `bson:"originalAuthorName,omitempty"`
	CreatedAt          time.Time `bson:"createdAt"`
	UpdatedAt          time.Time `bson:"updatedAt"`
}

func (repo commentRepository) CreateComment(ctx context.Context, cmt comment.Comment) (comment.Comment, error) {
	if cmt.ID == "" {
		cmt.ID = uuid.NewString()
	}
	doc := commentDoc{
		ID:        cmt.ID,
		TaskID:    cmt.TaskID,
		Author:    cmt.Author,
		Text:      cmt.Text,
		CreatedAt: cmt.CreatedAt.UTC(),
		UpdatedAt: cmt.UpdatedAt.UTC(),
	}
	if _, err := repo.comments().InsertOne(ctx, doc); err != nil {
		return comment.Comment{}, errors.Wrap(err, "creating comment")
	}
	return cmt, nil
}

func (repo commentRepository) GetCommentByID(ctx context.Context, id string) (comment.Comment, error) {
	var doc commentDoc
	if err := repo.comments().FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return comment.Comment{}, comment.ErrCommentNotFound
		}
		return comment.Comment{}, errors.Wrap(err, "getting comment")
	}
	return comment.Comment{
		ID:                 doc.ID,
		TaskID:             doc.TaskID,
		Author:             doc.Author,
		Text:               doc.Text,
		OriginalAuthorName: doc.OriginalAuthorName,
		CreatedAt:          doc.CreatedAt,
		UpdatedAt:          doc.UpdatedAt,
	}, nil
}

func (repo commentRepository) QueryCommentsByTask(ctx context.Context, taskID string) ([]comment.Comment, error) {
	cursor, err := repo.comments().Find(ctx, bson.M{"taskId": taskID})
	if err != nil {
		return nil, errors.Wrap(err, "querying comments")
	}
	var docs []commentDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "decoding comments")
	}
	comments := make([]comment.Comment, 0, len(docs))
	for _, doc := range docs {
		comments = append(comments, comment.Comment{
			ID:                 doc.ID,
			TaskID:             doc.TaskID,
			Author:             doc.Author,
			Text:               doc.Text,
			OriginalAuthorName: doc.OriginalAuthorName,
			CreatedAt:          doc.CreatedAt,
			UpdatedAt:          doc.UpdatedAt,
		})
	}
	return comments, nil
}

func (repo commentRepository) DeleteCommentsByID(ctx context.Context, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}
	if _, err := repo.comments().DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}}); err != nil {
		return errors.Wrap(err, "deleting comments")
	}
	return nil
}

func (repo commentRepository) CreateResponse(ctx context.Context, rsp comment.Response) (comment.Response, error) {
	if rsp.ID == "" {
		rsp.ID = uuid.NewString()
	}
	doc := commentDoc{
		ID:        rsp.ID,
		TaskID:    rsp.TaskID,
		CommentID: rsp.CommentID,
		Author:    rsp.Author,
		Text:      rsp.Text,
		CreatedAt: rsp.CreatedAt.UTC(),
		UpdatedAt: rsp.UpdatedAt.UTC(),
	}
	if _, err := repo.responses().InsertOne(ctx, doc); err != nil {
		return comment.Response{}, errors.Wrap(err, "creating response")
	}
	return rsp, nil
}

func (repo commentRepository) GetResponseByID(ctx context.Context, id string) (comment.Response, error) {
	var doc commentDoc
	if err := repo.responses().FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return comment.Response{}, comment.ErrResponseNotFound
		}
		return comment.Response{}, errors.Wrap(err, "getting response")
	}
	return comment.Response{
		ID:                 doc.ID,
		CommentID:          doc.CommentID,
		TaskID:             doc.TaskID,
		Author:             doc.Author,
		Text:               doc.Text,
		OriginalAuthorName: doc.OriginalAuthorName,
		CreatedAt:          doc.CreatedAt,
		UpdatedAt:          doc.UpdatedAt,
	}, nil
}

func (repo commentRepository) QueryResponsesByComment(ctx context.Context, commentID string) ([]comment.Response, error) {
	cursor, err := repo.responses().Find(ctx, bson.M{"commentId": commentID})
	if err != nil {
		return nil, errors.Wrap(err, "querying responses")
	}
	var docs []commentDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "decoding responses")
	}
	responses := make([]comment.Response, 0, len(docs))
	for _, doc := range docs {
		responses = append(responses, comment.Response{
			ID:                 doc.ID,
			CommentID:          doc.CommentID,
			TaskID:             doc.TaskID,
			Author:             doc.Author,
			Text:               doc.Text,
			OriginalAuthorName: doc.OriginalAuthorName,
			CreatedAt:          doc.CreatedAt,
			UpdatedAt:          doc.UpdatedAt,
		})
	}
	return responses, nil
}

func (repo commentRepository) DeleteResponsesByID(ctx context.Context, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}
	if _, err := repo.responses().DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}}); err != nil {
		return errors.Wrap(err, "deleting responses")
	}
	return nil
}

// Only the author name is preserved on comments and responses; the email is
// deliberately not recorded, matching the Task passes' asymmetry.

func (repo commentRepository) ReassignCommentAuthors(ctx context.Context, targetID, sentinelID, origName string) (int64, error) {
	res, err := repo.comments().UpdateMany(ctx,
		bson.M{"author": targetID},
		bson.M{"$set": bson.M{"author": sentinelID, "originalAuthorName": origName}},
	)
	if err != nil {
		return 0, errors.Wrap(err, "reassigning comment authors")
	}
	return res.ModifiedCount, nil
}

func (repo commentRepository) ReassignResponseAuthors(ctx context.Context, targetID, sentinelID, origName string) (int64, error) {
	res, err := repo.responses().UpdateMany(ctx,
		bson.M{"author": targetID},
		bson.M{"$set": bson.M{"author": sentinelID, "originalAuthorName": origName}},
	)
	if err != nil {
		return 0, errors.Wrap(err, "reassigning response authors")
	}
	return res.ModifiedCount, nil
}
