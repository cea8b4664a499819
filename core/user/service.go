package user

import (
	"context"
	"errors"
	"time"

	"github.com/vazifa-app/vazifa/core"
)

var (
	// errors
	ErrNotFound    = errors.New("user not found")
	ErrEmailExists = errors.New("a user with this email already exists")
)

type (
	Repository interface {
		// GetUser returns the single User matching the filter, ErrNotFound otherwise.
		GetUser(ctx context.Context, filter GetFilter) (User, error)
		// CreateUser inserts a new User. A clash on the unique email surfaces as ErrEmailExists.
		CreateUser(ctx context.Context, usr User) (User, error)
		UpdateUser(ctx context.Context, usr User) (User, error)
		QueryAllUsers(ctx context.Context) ([]User, error)
		// FilterUsers applies AND operation on available QueryFilter fields.
		// QueryFilter.Search does a case-insensitive match on one of User.Name, User.Email or User.Phone.
		FilterUsers(ctx context.Context, filter QueryFilter) ([]User, error)
		DeleteUsersByID(ctx context.Context, ids ...string) error
		// MarkLegacyEmailsVerified backfills IsEmailVerified from the legacy
		// emailVerified field and drops the legacy field. Returns the number of
		// records modified; already-migrated records never match again.
		MarkLegacyEmailsVerified(ctx context.Context) (int64, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ctx context.Context, nu NewUser) (User, error) {
	if err := nu.Validate(); err != nil {
		return User{}, err
	}
	now := time.Now().UTC()
	usr := User{
		Name:      nu.Name,
		Email:     nu.Email,
		Phone:     nu.Phone,
		Role:      nu.Role,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if usr.Role == "" {
		usr.Role = RoleMember
	}
	if err := usr.SetPassword(nu.Password); err != nil {
		return User{}, err
	}
	return svc.repo.CreateUser(ctx, usr)
}

func (svc *Service) QueryAll(ctx context.Context) ([]User, error) {
	return svc.repo.QueryAllUsers(ctx)
}

func (svc *Service) GetByID(ctx context.Context, id string) (User, error) {
	return svc.repo.GetUser(ctx, GetFilter{ID: id})
}

func (svc *Service) GetByEmail(ctx context.Context, email string) (User, error) {
	return svc.repo.GetUser(ctx, GetFilter{Email: core.CleanString(email, true /* lower */)})
}

func (svc *Service) GetByPhone(ctx context.Context, phone string) (User, error) {
	return svc.repo.GetUser(ctx, GetFilter{Phone: core.CleanString(phone)})
}

// GetByAnyIdentifier resolves a User by email, phone or id in a single query.
func (svc *Service) GetByAnyIdentifier(ctx context.Context, identifier string) (User, error) {
	return svc.repo.GetUser(ctx, GetFilter{AnyIdentifier: core.CleanString(identifier)})
}

func (svc *Service) Filter(ctx context.Context, filter QueryFilter) ([]User, error) {
	return svc.repo.FilterUsers(ctx, filter)
}

func (svc *Service) Update(ctx context.Context, id string, uu UpdateUser) (User, error) {
	origUsr, err := svc.repo.GetUser(ctx, GetFilter{ID: id})
	if err != nil {
		return User{}, err
	}
	if err := uu.Validate(origUsr); err != nil {
		return User{}, err
	}
	origUsr.Name = uu.Name
	origUsr.Email = uu.Email
	origUsr.Phone = uu.Phone
	origUsr.Role = uu.Role
	if uu.IsActive != nil {
		origUsr.IsActive = *uu.IsActive
	}
	origUsr.UpdatedAt = time.Now().UTC()
	return svc.repo.UpdateUser(ctx, origUsr)
}

func (svc *Service) Delete(ctx context.Context, ids ...string) error {
	return svc.repo.DeleteUsersByID(ctx, ids...)
}

// MarkLegacyEmailsVerified backfills IsEmailVerified from the legacy
// emailVerified field in one bulk update and returns the number of records
// modified. Safe to re-run; migrated records never match again.
func (svc *Service) MarkLegacyEmailsVerified(ctx context.Context) (int64, error) {
	return svc.repo.MarkLegacyEmailsVerified(ctx)
}
