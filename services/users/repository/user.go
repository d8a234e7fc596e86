package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ridepool/ridepool/internal/pkg/models"
)

// UserRepo implements users.UserRepo against PostgreSQL
type UserRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(cfg *models.Config, db *sqlx.DB) *UserRepo {
	return &UserRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateUser inserts a new user account
func (r *UserRepo) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (
			id, email, password_hash, first_name, last_name,
			bio, profile_picture, chattiness, smoking, pets,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		user.ID,
		user.Email,
		user.PasswordHash,
		user.FirstName,
		user.LastName,
		user.Bio,
		user.ProfilePicture,
		user.Chattiness,
		user.Smoking,
		user.Pets,
		user.CreatedAt,
		user.UpdatedAt,
	)

	return err
}

// GetUserByEmail retrieves a user by email. Returns (nil, nil) when the
// email is unknown.
func (r *UserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, email, password_hash, first_name, last_name,
			bio, profile_picture, chattiness, smoking, pets,
			created_at, updated_at
		FROM users
		WHERE email = $1
	`

	user, err := r.scanUser(r.db.QueryRowContext(ctx, query, email))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

// GetUserByID retrieves a user by id
func (r *UserRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := `
		SELECT id, email, password_hash, first_name, last_name,
			bio, profile_picture, chattiness, smoking, pets,
			created_at, updated_at
		FROM users
		WHERE id = $1
	`

	user, err := r.scanUser(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("user not found: %w", err)
		}
		return nil, err
	}
	return user, nil
}

func (r *UserRepo) scanUser(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	var bio, picture sql.NullString

	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.FirstName,
		&user.LastName,
		&bio,
		&picture,
		&user.Chattiness,
		&user.Smoking,
		&user.Pets,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if bio.Valid {
		user.Bio = bio.String
	}
	if picture.Valid {
		user.ProfilePicture = picture.String
	}

	return user, nil
}

// UpdateUser persists profile and preference changes
func (r *UserRepo) UpdateUser(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users
		SET first_name = $1, last_name = $2, bio = $3, profile_picture = $4,
			chattiness = $5, smoking = $6, pets = $7, updated_at = $8
		WHERE id = $9
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		user.FirstName,
		user.LastName,
		user.Bio,
		user.ProfilePicture,
		user.Chattiness,
		user.Smoking,
		user.Pets,
		time.Now().UTC(),
		user.ID,
	)

	return err
}
