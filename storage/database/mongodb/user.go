package mongorepos

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/vazifa-app/vazifa/core/user"
)

type userRepository struct {
	db *mongo.Database
}

var _ user.Repository = (*userRepository)(nil) // interface compliance check

func NewUserRepository(db *mongo.Database) *userRepository {
	return &userRepository{db: db}
}

func (repo userRepository) users() *mongo.Collection {
	return repo.db.Collection("users")
}

type userDoc struct {
	ID              string    `bson:"_id,omitempty"`
	Name            string    `bson:"name"`
	Email           string    `bson:"email,omitempty"`
	Phone           string    `bson:"phone,omitempty"`
	Role            string    `bson:"role"`
	IsActive        bool      `bson:"isActive"`
	IsEmailVerified bool      `bson:"isEmailVerified"`
	EmailVerified   *bool     `bson:"emailVerified,omitempty"` // legacy field
	DisabledReason  string    `bson:"disabledReason,omitempty"`
	IsSentinel      bool      `bson:"isSentinel,omitempty"`
	PasswordHash    []byte    `bson:"passwordHash,omitempty"`
	CreatedAt       time.Time `bson:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt"`
	LastLogin       time.Time `bson:"lastLogin,omitempty"`
}

func (repo userRepository) doc(usr user.User) userDoc {
	return userDoc{
		ID:              usr.ID,
		Name:            usr.Name,
		Email:           usr.Email,
		Phone:           usr.Phone,
		Role:            usr.Role,
		IsActive:        usr.IsActive,
		IsEmailVerified: usr.IsEmailVerified,
		EmailVerified:   usr.EmailVerified,
		DisabledReason:  usr.DisabledReason,
		IsSentinel:      usr.IsSentinel,
		PasswordHash:    usr.PasswordHash,
		CreatedAt:       usr.CreatedAt.UTC(),
		UpdatedAt:       usr.UpdatedAt.UTC(),
		LastLogin:       usr.LastLogin.UTC(),
	}
}

func (repo userRepository) undoc(doc userDoc) user.User {
	return user.User{
		ID:              doc.ID,
		Name:            doc.Name,
		Email:           doc.Email,
		Phone:           doc.Phone,
		Role:            doc.Role,
		IsActive:        doc.IsActive,
		IsEmailVerified: doc.IsEmailVerified,
		EmailVerified:   doc.EmailVerified,
		DisabledReason:  doc.DisabledReason,
		IsSentinel:      doc.IsSentinel,
		PasswordHash:    doc.PasswordHash,
		CreatedAt:       doc.CreatedAt,
		UpdatedAt:       doc.UpdatedAt,
		LastLogin:       doc.LastLogin,
	}
}

// filterOf builds the match for a GetFilter. AnyIdentifier becomes a single
// "$or" across email, phone and - when it parses as a UUID - the id, so
// resolution is one query rather than sequential fallback lookups.
func (repo userRepository) filterOf(f user.GetFilter) bson.M {
	switch {
	case f.AnyIdentifier != "":
		or := []bson.M{
			{"email": strings.ToLower(f.AnyIdentifier)},
			{"phone": f.AnyIdentifier},
		}
		if _, err := uuid.Parse(f.AnyIdentifier); err == nil {
			or = append(or, bson.M{"_id": f.AnyIdentifier})
		}
		return bson.M{"$or": or}
	case f.ID != "":
		return bson.M{"_id": f.ID}
	case f.Email != "":
		return bson.M{"email": f.Email}
	case f.Phone != "":
		return bson.M{"phone": f.Phone}
	}
	return bson.M{"_id": nil} // empty filter must match nothing, not everything
}

func (repo userRepository) GetUser(ctx context.Context, filter user.GetFilter) (user.User, error) {
	var doc userDoc
	if err := repo.users().FindOne(ctx, repo.filterOf(filter)).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, errors.Wrap(err, "getting user")
	}
	return repo.undoc(doc), nil
}

func (repo userRepository) CreateUser(ctx context.Context, usr user.User) (user.User, error) {
	if usr.ID == "" {
		usr.ID = uuid.NewString()
	}
	if _, err := repo.users().InsertOne(ctx, repo.doc(usr)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return user.User{}, user.ErrEmailExists
		}
		return user.User{}, errors.Wrap(err, "creating user")
	}
	return usr, nil
}

func (repo userRepository) UpdateUser(ctx context.Context, usr user.User) (user.User, error) {
	res, err := repo.users().ReplaceOne(ctx, bson.M{"_id": usr.ID}, repo.doc(usr))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return user.User{}, user.ErrEmailExists
		}
		return user.User{}, errors.Wrap(err, "updating user")
	}
	if res.MatchedCount == 0 {
		return user.User{}, user.ErrNotFound
	}
	return usr, nil
}

func (repo userRepository) QueryAllUsers(ctx context.Context) ([]user.User, error) {
	return repo.find(ctx, bson.M{})
}

func (repo userRepository) FilterUsers(ctx context.Context, filter user.QueryFilter) ([]user.User, error) {
	match := bson.M{}
	if filter.Search != "" {
		regex := bson.M{"$regex": filter.Search, "$options": "i"}
		match["$or"] = []bson.M{{"name": regex}, {"email": regex}, {"phone": regex}}
	}
	if filter.Role != "" {
		match["role"] = filter.Role
	}
	if filter.IsActive != nil {
		match["isActive"] = *filter.IsActive
	}
	createdAt := bson.M{}
	if !filter.CreatedFrom.IsZero() {
		createdAt["$gte"] = filter.CreatedFrom.UTC()
	}
	if !filter.CreatedTo.IsZero() {
		createdAt["$lte"] = filter.CreatedTo.UTC()
	}
	if len(createdAt) > 0 {
		match["createdAt"] = createdAt
	}
	return repo.find(ctx, match)
}

func (repo userRepository) find(ctx context.Context, match bson.M) ([]user.User, error) {
	cursor, err := repo.users().Find(ctx, match)
	if err != nil {
		return nil, errors.Wrap(err, "querying users")
	}
	var docs []userDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "decoding users")
	}
	users := make([]user.User, 0, len(docs))
	for _, doc := range docs {
		users = append(users, repo.undoc(doc))
	}
	return users, nil
}

func (repo userRepository) DeleteUsersByID(ctx context.Context, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}
	if _, err := repo.users().DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}}); err != nil {
		return errors.Wrap(err, "deleting users")
	}
	return nil
}

// MarkLegacyEmailsVerified backfills isEmailVerified from the legacy
// emailVerified field in one pipeline update and drops the legacy field.
// Records without the legacy field never match, so re-runs are no-ops.
func (repo userRepository) MarkLegacyEmailsVerified(ctx context.Context) (int64, error) {
	res, err := repo.users().UpdateMany(ctx,
		bson.M{"emailVerified": bson.M{"$exists": true}},
		mongo.Pipeline{
			bson.D{{Key: "$set", Value: bson.M{"isEmailVerified": "$emailVerified"}}},
			bson.D{{Key: "$unset", Value: "emailVerified"}},
		},
	)
	if err != nil {
		return 0, errors.Wrap(err, "migrating verification fields")
	}
	return res.ModifiedCount, nil
}
