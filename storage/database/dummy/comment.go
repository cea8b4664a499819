package dummydb

import (
	"context"

	"github.com/google/uuid"

	"github.com/vazifa-app/vazifa/core/comment"
)

type commentRepository struct {
	comments  *commentTable
	responses *responseTable
}

var _ comment.Repository = (*commentRepository)(nil) // interface compliance check

func NewCommentRepository(db *DB) *commentRepository {
	return &commentRepository{comments: db.comment, responses: db.response}
}

func (repo *commentRepository) CreateComment(_ context.Context, cmt comment.Comment) (comment.Comment, error) {
	repo.comments.Lock()
	defer repo.comments.Unlock()

	if cmt.ID == "" {
		cmt.ID = uuid.NewString()
	}
	repo.comments.table[cmt.ID] = &cmt
	return cmt, nil
}

func (repo *commentRepository) GetCommentByID(_ context.Context, id string) (comment.Comment, error) {
	repo.comments.RLock()
	defer repo.comments.RUnlock()

	if cmt, ok := repo.comments.table[id]; ok {
		return *cmt, nil
	}
	return comment.Comment{}, comment.ErrCommentNotFound
}

func (repo *commentRepository) QueryCommentsByTask(_ context.Context, taskID string) ([]comment.Comment, error) {
	repo.comments.RLock()
	defer repo.comments.RUnlock()

	var comments []comment.Comment
	for _, cmt := range repo.comments.table {
		if cmt.TaskID == taskID {
			comments = append(comments, *cmt)
		}
	}
	return comments, nil
}

func (repo *commentRepository) DeleteCommentsByID(_ context.Context, ids ...string) error {
	repo.comments.Lock()
	defer repo.comments.Unlock()

	for _, id := range ids {
		delete(repo.comments.table, id)
	}
	return nil
}

func (repo *commentRepository) CreateResponse(_ context.Context, rsp comment.Response) (comment.Response, error) {
	repo.responses.Lock()
	defer repo.responses.Unlock()

	if rsp.ID == "" {
		rsp.ID = uuid.NewString()
	}
	repo.responses.table[rsp.ID] = &rsp
	return rsp, nil
}

func (repo *commentRepository) GetResponseByID(_ context.Context, id string) (comment.Response, error) {
	repo.responses.RLock()
	defer repo.responses.RUnlock()

	if rsp, ok := repo.responses.table[id]; ok {
		return *rsp, nil
	}
	return comment.Response{}, comment.ErrResponseNotFound
}

func (repo *commentRepository) QueryResponsesByComment(_ context.Context, commentID string) ([]comment.Response, error) {
	repo.responses.RLock()
	defer repo.responses.RUnlock()

	var responses []comment.Response
	for _, rsp := range repo.responses.table {
		if rsp.CommentID == commentID {
			responses = append(responses, *rsp)
		}
	}
	return responses, nil
}

func (repo *commentRepository) DeleteResponsesByID(_ context.Context, ids ...string) error {
	repo.responses.Lock()
	defer repo.responses.Unlock()

	for _, id := range ids {
		delete(repo.responses.table, id)
	}
	return nil
}

func (repo *commentRepository) ReassignCommentAuthors(_ context.Context, targetID, sentinelID, origName string) (int64, error) {
	repo.comments.Lock()
	defer repo.comments.Unlock()

	var count int64
	for _, cmt := range repo.comments.table {
		if cmt.Author == targetID {
			cmt.Author = sentinelID
			cmt.OriginalAuthorName = origName
			count++
		}
	}
	return count, nil
}

func (repo *commentRepository) ReassignResponseAuthors(_ context.Context, targetID, sentinelID, origName string) (int64, error) {
	repo.responses.Lock()
	defer repo.responses.Unlock()

	var count int64
	for _, rsp := range repo.responses.table {
		if rsp.Author == targetID {
			rsp.Author = sentinelID
			rsp.OriginalAuthorName = origName
			count++
		}
	}
	return count, nil
}
