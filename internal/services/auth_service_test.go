package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bakery_console_backend/internal/models"
	"bakery_console_backend/internal/repositories"
	"bakery_console_backend/pkg/utils"
)

type stubUserRepo struct {
	users     []models.User
	auditLogs []models.AuditLog
	listErr   error
}

func (r *stubUserRepo) ListUsers(ctx context.Context) ([]models.User, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]models.User, len(r.users))
	copy(out, r.users)
	return out, nil
}

func (r *stubUserRepo) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	for i := range r.users {
		if r.users[i].ID == id {
			user := r.users[i]
			return &user, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *stubUserRepo) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	created := *user
	created.ID = int64(len(r.users) + 1)
	r.users = append(r.users, created)
	return &created, nil
}

func (r *stubUserRepo) UpdateUser(ctx context.Context, user *models.User) (*models.User, error) {
	for i := range r.users {
		if r.users[i].ID == user.ID {
			r.users[i] = *user
			updated := *user
			return &updated, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *stubUserRepo) DeleteUser(ctx context.Context, id int64) error {
	for i := range r.users {
		if r.users[i].ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (r *stubUserRepo) ListAuditLogs(ctx context.Context) ([]models.AuditLog, error) {
	out := make([]models.AuditLog, len(r.auditLogs))
	copy(out, r.auditLogs)
	return out, nil
}

func (r *stubUserRepo) CreateAuditLog(ctx context.Context, entry *models.AuditLog) (*models.AuditLog, error) {
	created := *entry
	created.LogID = int64(len(r.auditLogs) + 1)
	r.auditLogs = append(r.auditLogs, created)
	return &created, nil
}

func activeUser(id int64, username, email, role string) models.User {
	return models.User{
		ID:       id,
		Username: username,
		Email:    email,
		Profile:  models.UserProfile{Role: role, Status: models.StatusActive},
	}
}

func TestLoginIssuesTokenAndInitialRoute(t *testing.T) {
	repo := &stubUserRepo{users: []models.User{
		activeUser(1, "nakato", "nakato@bakery.ug", models.RoleSalesRep),
	}}
	svc := NewAuthService(repo)

	resp, err := svc.Login(context.Background(), LoginRequest{Username: "nakato", Email: "nakato@bakery.ug"})
	require.NoError(t, err)

	assert.Equal(t, "/sales-stock", resp.InitialRoute)
	assert.Equal(t, models.RoleSalesRep, resp.Role)

	claims, err := utils.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "nakato", claims.Username)
	assert.Equal(t, models.RoleSalesRep, claims.Role)

	require.Len(t, repo.auditLogs, 1)
	assert.Equal(t, "login", repo.auditLogs[0].Action)
}

func TestLoginRoutesPerRole(t *testing.T) {
	cases := map[string]string{
		models.RoleAdmin:         "/user-management",
		models.RoleInventoryRep:  "/inventory-list",
		models.RoleProductionRep: "/production-list",
		models.RoleSalesRep:      "/sales-stock",
	}
	for role, route := range cases {
		repo := &stubUserRepo{users: []models.User{activeUser(1, "u", "u@bakery.ug", role)}}
		resp, err := NewAuthService(repo).Login(context.Background(), LoginRequest{Username: "u", Email: "u@bakery.ug"})
		require.NoError(t, err, role)
		assert.Equal(t, route, resp.InitialRoute, role)
	}
}

func TestLoginRequiresBothUsernameAndEmailToMatch(t *testing.T) {
	repo := &stubUserRepo{users: []models.User{
		activeUser(1, "nakato", "nakato@bakery.ug", models.RoleSalesRep),
	}}
	svc := NewAuthService(repo)

	_, err := svc.Login(context.Background(), LoginRequest{Username: "nakato", Email: "other@bakery.ug"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), LoginRequest{Username: "other", Email: "nakato@bakery.ug"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginRejectsInactiveAccount(t *testing.T) {
	repo := &stubUserRepo{users: []models.User{{
		ID:       1,
		Username: "nakato",
		Email:    "nakato@bakery.ug",
		Profile:  models.UserProfile{Role: models.RoleSalesRep, Status: models.StatusInactive},
	}}}
	_, err := NewAuthService(repo).Login(context.Background(), LoginRequest{Username: "nakato", Email: "nakato@bakery.ug"})
	assert.ErrorIs(t, err, ErrInactiveAccount)
}

func TestLoginRejectsUnknownRole(t *testing.T) {
	repo := &stubUserRepo{users: []models.User{
		activeUser(1, "nakato", "nakato@bakery.ug", "baker"),
	}}
	_, err := NewAuthService(repo).Login(context.Background(), LoginRequest{Username: "nakato", Email: "nakato@bakery.ug"})
	assert.ErrorIs(t, err, ErrUnknownRole)
}
