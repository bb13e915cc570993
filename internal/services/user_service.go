package services

import (
	"context"
	"errors"
	"fmt"

	"bakery_console_backend/internal/models"
	"bakery_console_backend/internal/repositories"
	"bakery_console_backend/pkg/utils"
)

// --- Custom Service Errors for Users ---
var ErrUserNotFound = errors.New("user not found")

// --- User DTOs ---
type SaveUserRequest struct {
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"required"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role" binding:"required"`
	Status    string `json:"status"`
}

// RecordAuditLogRequest is a manually filed audit entry.
type RecordAuditLogRequest struct {
	Action  string `json:"action" binding:"required"`
	Details string `json:"details"`
}

// --- UserService Interface ---
type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id int64) (*models.User, error)
	CreateUser(ctx context.Context, actor string, req SaveUserRequest) (*models.User, error)
	UpdateUser(ctx context.Context, actor string, id int64, req SaveUserRequest) (*models.User, error)
	DeleteUser(ctx context.Context, actor string, id int64) error
	ListAuditLogs(ctx context.Context) ([]models.AuditLog, error)
	RecordAuditLog(ctx context.Context, actor string, req RecordAuditLogRequest) (*models.AuditLog, error)
}

type userService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func validateUserRequest(req SaveUserRequest) error {
	if utils.IsEmpty(req.Username) {
		return fmt.Errorf("%w: username is required", ErrValidation)
	}
	if !utils.IsValidEmail(req.Email) {
		return fmt.Errorf("%w: email format is invalid", ErrValidation)
	}
	if _, ok := initialRouteForRole(req.Role); !ok {
		return fmt.Errorf("%w: unknown role %q", ErrValidation, req.Role)
	}
	if req.Status != "" && req.Status != models.StatusActive && req.Status != models.StatusInactive {
		return fmt.Errorf("%w: status must be active or inactive", ErrValidation)
	}
	return nil
}

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepo.ListUsers(ctx)
}

func (s *userService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrUserNotFound, id)
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) CreateUser(ctx context.Context, actor string, req SaveUserRequest) (*models.User, error) {
	if err := validateUserRequest(req); err != nil {
		return nil, err
	}
	status := req.Status
	if status == "" {
		status = models.StatusActive
	}
	created, err := s.userRepo.CreateUser(ctx, &models.User{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Profile:   models.UserProfile{Role: req.Role, Status: status},
	})
	if err != nil {
		return nil, err
	}
	s.audit(ctx, actor, "user_created", fmt.Sprintf("created %s (%s)", created.Username, created.Profile.Role))
	return created, nil
}

func (s *userService) UpdateUser(ctx context.Context, actor string, id int64, req SaveUserRequest) (*models.User, error) {
	if err := validateUserRequest(req); err != nil {
		return nil, err
	}
	current, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	current.Username = req.Username
	current.Email = req.Email
	current.FirstName = req.FirstName
	current.LastName = req.LastName
	current.Profile.Role = req.Role
	if req.Status != "" {
		current.Profile.Status = req.Status
	}
	updated, err := s.userRepo.UpdateUser(ctx, current)
	if err != nil {
		return nil, err
	}
	s.audit(ctx, actor, "user_updated", fmt.Sprintf("updated %s", updated.Username))
	return updated, nil
}

func (s *userService) DeleteUser(ctx context.Context, actor string, id int64) error {
	if err := s.userRepo.DeleteUser(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fmt.Errorf("%w: id %d", ErrUserNotFound, id)
		}
		return err
	}
	s.audit(ctx, actor, "user_deleted", fmt.Sprintf("deleted user %d", id))
	return nil
}

func (s *userService) ListAuditLogs(ctx context.Context) ([]models.AuditLog, error) {
	return s.userRepo.ListAuditLogs(ctx)
}

// RecordAuditLog files an explicit audit entry on behalf of the caller.
// Unlike the implicit trail, a failure here is surfaced to the caller.
func (s *userService) RecordAuditLog(ctx context.Context, actor string, req RecordAuditLogRequest) (*models.AuditLog, error) {
	if utils.IsEmpty(req.Action) {
		return nil, fmt.Errorf("%w: action is required", ErrValidation)
	}
	return s.userRepo.CreateAuditLog(ctx, &models.AuditLog{
		Action:  req.Action,
		Details: fmt.Sprintf("%s: %s", actor, req.Details),
	})
}

// audit writes an administrative trail entry. Failures are logged only.
func (s *userService) audit(ctx context.Context, actor, action, details string) {
	if _, err := s.userRepo.CreateAuditLog(ctx, &models.AuditLog{
		Action:  action,
		Details: fmt.Sprintf("%s: %s", actor, details),
	}); err != nil {
		utils.LogWarn(err, "failed to record audit log entry")
	}
}
