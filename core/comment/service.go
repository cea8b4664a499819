package comment

import (
	"context"
	"errors"
	"time"
)

var (
	ErrCommentNotFound  = errors.New("comment not found")
	ErrResponseNotFound = errors.New("response not found")
)

type (
	Repository interface {
		CreateComment(ctx context.Context, cmt Comment) (Comment, error)
		GetCommentByID(ctx context.Context, id string) (Comment, error)
		QueryCommentsByTask(ctx context.Context, taskID string) ([]Comment, error)
		DeleteCommentsByID(ctx context.Context, ids ...string) error

		CreateResponse(ctx context.Context, rsp Response) (Response, error)
		GetResponseByID(ctx context.Context, id string) (Response, error)
		QueryResponsesByComment(ctx context.Context, commentID string) ([]Response, error)
		DeleteResponsesByID(ctx context.Context, ids ...string) error

		// Bulk reassignment passes, one per record kind. Single update-many
		// each; the count of modified records is returned. Only the author
		// name is preserved for comments and responses - not the email.
		ReassignCommentAuthors(ctx context.Context, targetID, sentinelID, origName string) (int64, error)
		ReassignResponseAuthors(ctx context.Context, targetID, sentinelID, origName string) (int64, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) CreateComment(ctx context.Context, nc NewComment) (Comment, error) {
	if err := nc.Validate(); err != nil {
		return Comment{}, err
	}
	now := time.Now().UTC()
	return svc.repo.CreateComment(ctx, Comment{
		TaskID:    nc.TaskID,
		Author:    nc.Author,
		Text:      nc.Text,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func (svc *Service) CreateResponse(ctx context.Context, nr NewResponse) (Response, error) {
	if err := nr.Validate(); err != nil {
		return Response{}, err
	}
	now := time.Now().UTC()
	return svc.repo.CreateResponse(ctx, Response{
		CommentID: nr.CommentID,
		TaskID:    nr.TaskID,
		Author:    nr.Author,
		Text:      nr.Text,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func (svc *Service) QueryByTask(ctx context.Context, taskID string) ([]Comment, error) {
	return svc.repo.QueryCommentsByTask(ctx, taskID)
}

func (svc *Service) QueryResponses(ctx context.Context, commentID string) ([]Response, error) {
	return svc.repo.QueryResponsesByComment(ctx, commentID)
}
