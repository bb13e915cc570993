package repositories

import (
	"context"

	"bakery_console_backend/internal/models"
	"bakery_console_backend/internal/remote"
)

// UserRepository defines the remote operations for user accounts and the
// administrative audit trail.
type UserRepository interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) (*models.User, error)
	DeleteUser(ctx context.Context, id int64) error

	ListAuditLogs(ctx context.Context) ([]models.AuditLog, error)
	CreateAuditLog(ctx context.Context, entry *models.AuditLog) (*models.AuditLog, error)
}

type userRepository struct {
	client *remote.Client
}

// NewUserRepository creates a new instance of UserRepository.
func NewUserRepository(client *remote.Client) UserRepository {
	return &userRepository{client: client}
}

func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	if err := r.client.List(ctx, "users", nil, &users); err != nil {
		return nil, translate(err, "listing users")
	}
	return users, nil
}

func (r *userRepository) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	user := &models.User{}
	if err := r.client.Get(ctx, "users", id, user); err != nil {
		return nil, translate(err, "getting user")
	}
	return user, nil
}

func (r *userRepository) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	created := &models.User{}
	if err := r.client.Create(ctx, "users", user, created); err != nil {
		return nil, translate(err, "creating user")
	}
	return created, nil
}

func (r *userRepository) UpdateUser(ctx context.Context, user *models.User) (*models.User, error) {
	updated := &models.User{}
	if err := r.client.Update(ctx, "users", user.ID, user, updated); err != nil {
		return nil, translate(err, "updating user")
	}
	return updated, nil
}

func (r *userRepository) DeleteUser(ctx context.Context, id int64) error {
	if err := r.client.Delete(ctx, "users", id); err != nil {
		return translate(err, "deleting user")
	}
	return nil
}

func (r *userRepository) ListAuditLogs(ctx context.Context) ([]models.AuditLog, error) {
	logs := []models.AuditLog{}
	if err := r.client.List(ctx, "auditlogs", nil, &logs); err != nil {
		return nil, translate(err, "listing audit logs")
	}
	return logs, nil
}

func (r *userRepository) CreateAuditLog(ctx context.Context, entry *models.AuditLog) (*models.AuditLog, error) {
	created := &models.AuditLog{}
	if err := r.client.Create(ctx, "auditlogs", entry, created); err != nil {
		return nil, translate(err, "recording audit log")
	}
	return created, nil
}
