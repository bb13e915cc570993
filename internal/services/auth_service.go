package services

import (
	"context"
	"errors"
	"fmt"

	"bakery_console_backend/internal/models"
	"bakery_console_backend/internal/repositories"
	"bakery_console_backend/pkg/utils"
)

// --- Custom Service Errors for Auth ---
var (
	ErrInvalidCredentials = errors.New("invalid username or email")
	ErrInactiveAccount    = errors.New("account is not active")
	ErrUnknownRole        = errors.New("account has no recognized role")
)

// --- Auth DTOs ---

// LoginRequest carries the console credential pair. There is no password in
// this system; authorization is a username+email match against the remote
// user list plus an active status check.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
}

// LoginResponse carries the session token and the initial route the browser
// should navigate to for the account's role.
type LoginResponse struct {
	Token        string      `json:"token"`
	Username     string      `json:"username"`
	Role         string      `json:"role"`
	InitialRoute string      `json:"initial_route"`
	User         models.User `json:"user"`
}

// --- AuthService Interface ---
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
}

type authService struct {
	userRepo repositories.UserRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

// initialRouteForRole maps an account role to the console screen it lands on
// after login.
func initialRouteForRole(role string) (string, bool) {
	switch role {
	case models.RoleAdmin:
		return "/user-management", true
	case models.RoleInventoryRep:
		return "/inventory-list", true
	case models.RoleProductionRep:
		return "/production-list", true
	case models.RoleSalesRep:
		return "/sales-stock", true
	default:
		return "", false
	}
}

func (s *authService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user list for login: %w", err)
	}

	var account *models.User
	for i := range users {
		if users[i].Username == req.Username && users[i].Email == req.Email {
			account = &users[i]
			break
		}
	}
	if account == nil {
		return nil, ErrInvalidCredentials
	}
	if account.Profile.Status != models.StatusActive {
		return nil, fmt.Errorf("%w: user %s", ErrInactiveAccount, account.Username)
	}

	route, ok := initialRouteForRole(account.Profile.Role)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRole, account.Profile.Role)
	}

	token, err := utils.GenerateSessionToken(account.Username, account.Profile.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}

	// Best-effort audit trail; a failed write must not block the login.
	if _, err := s.userRepo.CreateAuditLog(ctx, &models.AuditLog{
		User:    account.ID,
		Action:  "login",
		Details: fmt.Sprintf("%s signed in as %s", account.Username, account.Profile.Role),
	}); err != nil {
		utils.LogWarn(err, "Login: failed to record audit log")
	}

	return &LoginResponse{
		Token:        token,
		Username:     account.Username,
		Role:         account.Profile.Role,
		InitialRoute: route,
		User:         *account,
	}, nil
}
