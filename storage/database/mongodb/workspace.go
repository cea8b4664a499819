package mongorepos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/vazifa-app/vazifa/core/workspace"
)

type workspaceRepository struct {
	db *mongo.Database
}

var _ workspace.Repository = (*workspaceRepository)(nil) // interface compliance check

func NewWorkspaceRepository(db *mongo.Database) *workspaceRepository {
	return &workspaceRepository{db: db}
}

func (repo workspaceRepository) workspaces() *mongo.Collection {
	return repo.db.Collection("workspaces")
}

type memberDoc struct {
	AccountID string    `bson:"accountId"`
	Role      string    `bson:"role"`
	JoinedAt  time.Time `bson:"joinedAt"`
}

type workspaceDoc struct {
	ID          string      `bson:"_id,omitempty"`
	Name        string      `bson:"name"`
	Description string      `bson:"description,omitempty"`
	Color       string      `bson:"color,omitempty"`
	Owner       string      `bson:"owner"`
	Members     []memberDoc `bson:"members"`
	CreatedAt   time.Time   `bson:"createdAt"`
	UpdatedAt   time.Time   `bson:"updatedAt"`
}

func (repo workspaceRepository) doc(ws workspace.Workspace) workspaceDoc {
	members := make([]memberDoc, 0, len(ws.Members))
	for _, m := range ws.Members {
		members = append(members, memberDoc{AccountID: m.AccountID, Role: m.Role, JoinedAt: m.JoinedAt.UTC()})
	}
	return workspaceDoc{
		ID:          ws.ID,
		Name:        ws.Name,
		Description: ws.Description,
		Color:       ws.Color,
		Owner:       ws.Owner,
		Members:     members,
		CreatedAt:   ws.CreatedAt.UTC(),
		UpdatedAt:   ws.UpdatedAt.UTC(),
	}
}

func (repo workspaceRepository) undoc(doc workspaceDoc) workspace.Workspace {
	members := make([]workspace.Member, 0, len(doc.Members))
	for _, m := range doc.Members {
		members = append(members, workspace.Member{AccountID: m.AccountID, Role: m.Role, JoinedAt: m.JoinedAt})
	}
	return workspace.Workspace{
		ID:          doc.ID,
		Name:        doc.Name,
		Description: doc.Description,
		Color:       doc.Color,
		Owner:       doc.Owner,
		Members:     members,
		CreatedAt:   doc.CreatedAt,
		UpdatedAt:   doc.UpdatedAt,
	}
}

func (repo workspaceRepository) CreateWorkspace(ctx context.Context, ws workspace.Workspace) (workspace.Workspace, error) {
	if ws.ID == "" {
		ws.ID = uuid.NewString()
	}
	if _, err := repo.workspaces().InsertOne(ctx, repo.doc(ws)); err != nil {
		return workspace.Workspace{}, errors.Wrap(err, "creating workspace")
	}
	return ws, nil
}

func (repo workspaceRepository) GetWorkspaceByID(ctx context.Context, id string) (workspace.Workspace, error) {
	var doc workspaceDoc
	if err := repo.workspaces().FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return workspace.Workspace{}, workspace.ErrNotFound
		}
		return workspace.Workspace{}, errors.Wrap(err, "getting workspace")
	}
	return repo.undoc(doc), nil
}

func (repo workspaceRepository) QueryWorkspacesByMember(ctx context.Context, accountID string) ([]workspace.Workspace, error) {
	return repo.find(ctx, bson.M{"members.accountId": accountID})
}

func (repo workspaceRepository) UpdateWorkspace(ctx context.Context, ws workspace.Workspace) (workspace.Workspace, error) {
	res, err := repo.workspaces().ReplaceOne(ctx, bson.M{"_id": ws.ID}, repo.doc(ws))
	if err != nil {
		return workspace.Workspace{}, errors.Wrap(err, "updating workspace")
	}
	if res.MatchedCount == 0 {
		return workspace.Workspace{}, workspace.ErrNotFound
	}
	return ws, nil
}

func (repo workspaceRepository) DeleteWorkspacesByID(ctx context.Context, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}
	if _, err := repo.workspaces().DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}}); err != nil {
		return errors.Wrap(err, "deleting workspaces")
	}
	return nil
}

func (repo workspaceRepository) AddMember(ctx context.Context, workspaceID string, m workspace.Member) error {
	res, err := repo.workspaces().UpdateOne(ctx,
		bson.M{"_id": workspaceID, "members.accountId": bson.M{"$ne": m.AccountID}},
		bson.M{"$push": bson.M{"members": memberDoc{AccountID: m.AccountID, Role: m.Role, JoinedAt: m.JoinedAt.UTC()}}},
	)
	if err != nil {
		return errors.Wrap(err, "adding workspace member")
	}
	if res.MatchedCount == 0 {
		// either the workspace is missing or the account is already a member
		if _, err := repo.GetWorkspaceByID(ctx, workspaceID); err != nil {
			return err
		}
	}
	return nil
}

func (repo workspaceRepository) RemoveMember(ctx context.Context, targetID string) (int64, error) {
	res, err := repo.workspaces().UpdateMany(ctx,
		bson.M{"members.accountId": targetID},
		bson.M{"$pull": bson.M{"members": bson.M{"accountId": targetID}}},
	)
	if err != nil {
		return 0, errors.Wrap(err, "removing workspace member")
	}
	return res.ModifiedCount, nil
}

func (repo workspaceRepository) FindOwnedBy(ctx context.Context, ownerID string) ([]workspace.Workspace, error) {
	return repo.find(ctx, bson.M{"owner": ownerID})
}

func (repo workspaceRepository) find(ctx context.Context, match bson.M) ([]workspace.Workspace, error) {
	cursor, err := repo.workspaces().Find(ctx, match)
	if err != nil {
		return nil, errors.Wrap(err, "querying workspaces")
	}
	var docs []workspaceDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "decoding workspaces")
	}
	workspaces := make([]workspace.Workspace, 0, len(docs))
	for _, doc := range docs {
		workspaces = append(workspaces, repo.undoc(doc))
	}
	return workspaces, nil
}
