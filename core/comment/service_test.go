package comment_test

import (
	"context"
	"testing"

	"github.com/vazifa-app/vazifa/core"
	"github.com/vazifa-app/vazifa/core/comment"
	"github.com/vazifa-app/vazifa/storage/database/dummy"
	"github.com/vazifa-app/vazifa/tests"
)

func setup(t *testing.T) *comment.Service {
	return comment.NewService(dummydb.NewCommentRepository(testutil.PrepareDB(t)))
}

func TestService_CreateComment(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	cmt, err := svc.CreateComment(ctx, comment.NewComment{TaskID: "tsk", Author: "usr", Text: "  lgtm  "})
	if err != nil {
		t.Fatalf("CreateComment() failed: %v", err)
	}
	if cmt.ID == "" {
		t.Error("ID not assigned")
	}
	if cmt.Text != "lgtm" {
		t.Errorf("Text = %q, want trimmed %q", cmt.Text, "lgtm")
	}

	if _, err := svc.CreateComment(ctx, comment.NewComment{TaskID: "tsk", Author: "usr"}); err != nil {
		if _, ok := err.(*core.ValidationError); !ok {
			t.Errorf("CreateComment() error = %v, want a validation error", err)
		}
	} else {
		t.Error("CreateComment() accepted an empty text")
	}

	comments, err := svc.QueryByTask(ctx, "tsk")
	if err != nil {
		t.Fatalf("QueryByTask() failed: %v", err)
	}
	if len(comments) != 1 {
		t.Errorf("QueryByTask() returned %d comments, want 1", len(comments))
	}
}

func TestService_CreateResponse(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	cmt, err := svc.CreateComment(ctx, comment.NewComment{TaskID: "tsk", Author: "usr", Text: "wdyt?"})
	if err != nil {
		t.Fatalf("CreateComment() failed: %v", err)
	}

	rsp, err := svc.CreateResponse(ctx, comment.NewResponse{CommentID: cmt.ID, TaskID: "tsk", Author: "usr2", Text: "done"})
	if err != nil {
		t.Fatalf("CreateResponse() failed: %v", err)
	}
	if rsp.CommentID != cmt.ID {
		t.Errorf("CommentID = %s, want %s", rsp.CommentID, cmt.ID)
	}

	if _, err := svc.CreateResponse(ctx, comment.NewResponse{TaskID: "tsk", Author: "usr2", Text: "done"}); err != nil {
		if _, ok := err.(*core.ValidationError); !ok {
			t.Errorf("CreateResponse() error = %v, want a validation error", err)
		}
	} else {
		t.Error("CreateResponse() accepted a missing comment id")
	}

	responses, err := svc.QueryResponses(ctx, cmt.ID)
	if err != nil {
		t.Fatalf("QueryResponses() failed: %v", err)
	}
	if len(responses) != 1 {
		t.Errorf("QueryResponses() returned %d responses, want 1", len(responses))
	}
}
