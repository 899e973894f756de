package auth

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/uemerson199/hospitalcare-meta/pkg/database"
	"github.com/uemerson199/hospitalcare-meta/pkg/interfaces"
	"github.com/uemerson199/hospitalcare-meta/pkg/logger"
	"github.com/uemerson199/hospitalcare-meta/pkg/types"
)

// Repository implements the UserRepository interface
type Repository struct {
	db     *database.DB
	logger *logger.Logger
}

// NewRepository creates a new user repository
func NewRepository(db *database.DB, log *logger.Logger) interfaces.UserRepository {
	return &Repository{
		db:     db,
		logger: log,
	}
}

// Create inserts a new user
func (r *Repository) Create(user *types.User) error {
	query := `
		INSERT INTO users (id, username, name, password_hash, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(query,
		user.ID,
		user.Username,
		user.Name,
		user.PasswordHash,
		user.IsActive,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return types.NewConflictError(types.ErrCodeDuplicateKey, "Username is already taken",
				map[string]string{"username": "already in use"})
		}
		r.logger.WithError(err).Error("Failed to create user")
		return fmt.Errorf("failed to create user: %w", err)
	}

	r.logger.WithUserID(user.ID).Info("Created user")
	return nil
}

// GetByID retrieves a user by ID
func (r *Repository) GetByID(id string) (*types.User, error) {
	query := `
		SELECT id, username, name, password_hash, is_active, created_at, updated_at
		FROM users
		WHERE id = $1`

	user := &types.User{}
	err := r.db.QueryRow(query, id).Scan(
		&user.ID,
		&user.Username,
		&user.Name,
		&user.PasswordHash,
		&user.IsActive,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.NewNotFoundError(types.ErrCodeNotFound, "User not found")
		}
		r.logger.WithError(err).Error("Failed to get user")
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

// GetByUsername retrieves a user by username
func (r *Repository) GetByUsername(username string) (*types.User, error) {
	query := `
		SELECT id, username, name, password_hash, is_active, created_at, updated_at
		FROM users
		WHERE username = $1`

	user := &types.User{}
	err := r.db.QueryRow(query, username).Scan(
		&user.ID,
		&user.Username,
		&user.Name,
		&user.PasswordHash,
		&user.IsActive,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.NewNotFoundError(types.ErrCodeNotFound, "User not found")
		}
		r.logger.WithError(err).Error("Failed to get user by username")
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}

	return user, nil
}
