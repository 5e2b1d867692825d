package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/caretide/caretide_backend/config"
	"github.com/caretide/caretide_backend/internal/repo"
	entuser "github.com/caretide/caretide_backend/internal/repo/user"
	"github.com/caretide/caretide_backend/pkg/authorize"
	"github.com/caretide/caretide_backend/pkg/email"
	"github.com/caretide/caretide_backend/pkg/util/paging"
	"github.com/caretide/caretide_backend/pkg/util/password"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateUserRequest struct {
	Email         string
	Password      *string // nil means generate a temporary one
	FirstName     string
	LastName      string
	Role          *string // defaults to doctor
	Department    *string
	LicenseNumber *string
	CreatedBy     *uuid.UUID
}

type UpdateUserRequest struct {
	FirstName     *string
	LastName      *string
	Role          *string
	Department    *string
	LicenseNumber *string
	IsActive      *bool
}

type ListUsersRequest struct {
	Page            int
	Limit           int
	Search          *string // matches first name, last name or email
	Role            *string
	IncludeInactive bool
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, req CreateUserRequest) (*repo.User, error)
	List(ctx context.Context, req ListUsersRequest) (*paging.Result[*repo.User], error)
	GetByID(ctx context.Context, id uuid.UUID) (*repo.User, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateUserRequest) (*repo.User, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type userService struct {
	db          *repo.Client
	emailClient *email.Client
	authorize   authorize.IAuthorization
	cfg         *config.Config
}

func New(
	db *repo.Client,
	emailClient *email.Client,
	auth authorize.IAuthorization,
	cfg *config.Config,
) Service {
	return &userService{
		db:          db,
		emailClient: emailClient,
		authorize:   auth,
		cfg:         cfg,
	}
}

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

func (s *userService) Create(ctx context.Context, req CreateUserRequest) (*repo.User, error) {
	emailAddr := strings.ToLower(strings.TrimSpace(req.Email))
	if emailAddr == "" {
		return nil, ErrEmailRequired
	}

	exists, err := s.db.User.Query().
		Where(entuser.EmailEqualFold(emailAddr)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, ErrEmailTaken
	}

	role := authorize.UserRoleDoctor
	if req.Role != nil {
		role = *req.Role
	}
	rbacRole, ok := authorize.UserRoleToRBACRole[role]
	if !ok || role == authorize.UserRoleSuperAdmin {
		// super_admin accounts are provisioned from the CLI only
		return nil, ErrInvalidRole
	}

	// Generate a temporary password when the admin did not provide one.
	plainPassword := ""
	generated := false
	if req.Password != nil && *req.Password != "" {
		plainPassword = *req.Password
	} else {
		plainPassword, err = password.Generate(s.cfg.Authentication.DefaultPasswordLength)
		if err != nil {
			return nil, fmt.Errorf("generate password: %w", err)
		}
		generated = true
	}

	hash, err := password.Hash(plainPassword)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u, err := s.db.User.Create().
		SetEmail(emailAddr).
		SetPasswordHash(hash).
		SetFirstName(strings.TrimSpace(req.FirstName)).
		SetLastName(strings.TrimSpace(req.LastName)).
		SetRole(entuser.Role(role)).
		SetNillableDepartment(req.Department).
		SetNillableLicenseNumber(req.LicenseNumber).
		SetNillableCreatedBy(req.CreatedBy).
		Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	if err := authorize.AssignStaffRole(ctx, s.authorize, u.ID.String(), rbacRole); err != nil {
		return nil, fmt.Errorf("assign role: %w", err)
	}
	if err := authorize.AssignUserSelfRole(ctx, s.authorize, u.ID.String()); err != nil {
		return nil, fmt.Errorf("assign self role: %w", err)
	}

	// Welcome email is best effort, the account is already usable.
	if generated {
		msg := email.BuildStaffWelcomeEmail(email.StaffEmailData{
			FirstName:    u.FirstName,
			Email:        u.Email,
			Role:         role,
			TempPassword: plainPassword,
			LoginURL:     "https://" + s.cfg.Server.Domain + "/login",
		})
		if err := s.emailClient.Send(ctx, msg); err != nil {
			slog.Warn("failed to send staff welcome email",
				"user_id", u.ID,
				"error", err)
		}
	}

	return u, nil
}

// ---------------------------------------------------------------------------
// List
// ---------------------------------------------------------------------------

func (s *userService) List(ctx context.Context, req ListUsersRequest) (*paging.Result[*repo.User], error) {
	p := paging.Clamp(req.Page, req.Limit)

	q := s.db.User.Query()

	if !req.IncludeInactive {
		q = q.Where(entuser.IsActive(true))
	}
	if req.Role != nil && *req.Role != "" {
		q = q.Where(entuser.RoleEQ(entuser.Role(*req.Role)))
	}
	if req.Search != nil && *req.Search != "" {
		term := strings.TrimSpace(*req.Search)
		q = q.Where(entuser.Or(
			entuser.FirstNameContainsFold(term),
			entuser.LastNameContainsFold(term),
			entuser.EmailContainsFold(term),
		))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	items, err := q.
		Order(entuser.ByCreatedAt(sql.OrderDesc())).
		Offset(p.Offset()).
		Limit(p.Limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	res := paging.NewResult(items, total, p)
	return &res, nil
}

// ---------------------------------------------------------------------------
// GetByID
// ---------------------------------------------------------------------------

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*repo.User, error) {
	u, err := s.db.User.Get(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// ---------------------------------------------------------------------------
// Update
// ---------------------------------------------------------------------------

func (s *userService) Update(ctx context.Context, id uuid.UUID, req UpdateUserRequest) (*repo.User, error) {
	u, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	upd := s.db.User.UpdateOne(u)

	if req.FirstName != nil {
		upd = upd.SetFirstName(strings.TrimSpace(*req.FirstName))
	}
	if req.LastName != nil {
		upd = upd.SetLastName(strings.TrimSpace(*req.LastName))
	}
	if req.Department != nil {
		upd = upd.SetDepartment(*req.Department)
	}
	if req.LicenseNumber != nil {
		upd = upd.SetLicenseNumber(*req.LicenseNumber)
	}
	if req.IsActive != nil {
		upd = upd.SetIsActive(*req.IsActive)
	}

	var newRBACRole, oldRBACRole authorize.Role
	roleChanged := false
	if req.Role != nil && *req.Role != string(u.Role) {
		rbacRole, ok := authorize.UserRoleToRBACRole[*req.Role]
		if !ok || *req.Role == authorize.UserRoleSuperAdmin {
			return nil, ErrInvalidRole
		}
		oldRBACRole = authorize.UserRoleToRBACRole[string(u.Role)]
		newRBACRole = rbacRole
		roleChanged = true
		upd = upd.SetRole(entuser.Role(*req.Role))
	}

	updated, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	if roleChanged {
		if err := authorize.ReplaceStaffRole(ctx, s.authorize, updated.ID.String(), oldRBACRole, newRBACRole); err != nil {
			return nil, fmt.Errorf("replace role: %w", err)
		}
	}

	return updated, nil
}

// ---------------------------------------------------------------------------
// Deactivate
// ---------------------------------------------------------------------------

func (s *userService) Deactivate(ctx context.Context, id uuid.UUID) error {
	u, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !u.IsActive {
		return nil
	}

	if _, err := s.db.User.UpdateOne(u).SetIsActive(false).Save(ctx); err != nil {
		return fmt.Errorf("deactivate user: %w", err)
	}
	return nil
}
