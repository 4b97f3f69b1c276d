package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/dkovalev/adboard/internal/logger"
	"github.com/dkovalev/adboard/internal/models"
)

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByID returns the user with the given id, or nil if no such user exists.
func (r *UserReadRepository) GetByID(ctx context.Context, id int64) (*models.UserDB, error) {
	const query = `
		SELECT id, login, password, mail, registration_time, token
		FROM users
		WHERE id = $1
	`

	var user models.UserDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &user, query, id)

	logger.Log.Debugw("user select",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user and returns the generated id.
// A taken login surfaces as ErrUniqueViolation.
func (r *UserWriteRepository) Save(ctx context.Context, user *models.UserDB) (int64, error) {
	const query = `
		INSERT INTO users (login, password, mail, token)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	args := []any{user.Login, user.Password, user.Mail, user.Token}

	var id int64
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &id, query, args...)

	logger.Log.Debugw("user insert",
		"query", strings.Join(strings.Fields(query), " "),
		"login", user.Login,
		"error", err,
	)

	if err != nil {
		return 0, mapPgError(err)
	}

	return id, nil
}

// Update overwrites the mutable user fields. Registration time and token
// stay as created.
func (r *UserWriteRepository) Update(ctx context.Context, user *models.UserDB) error {
	const query = `
		UPDATE users
		SET login = $1, password = $2, mail = $3
		WHERE id = $4
	`
	args := []any{user.Login, user.Password, user.Mail, user.ID}

	_, err := ext(ctx, r.db).ExecContext(ctx, query, args...)

	logger.Log.Debugw("user update",
		"query", strings.Join(strings.Fields(query), " "),
		"id", user.ID,
		"error", err,
	)

	return mapPgError(err)
}

// Delete removes the user with the given id.
func (r *UserWriteRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM users WHERE id = $1`

	_, err := ext(ctx, r.db).ExecContext(ctx, query, id)

	logger.Log.Debugw("user delete",
		"query", query,
		"id", id,
		"error", err,
	)

	return mapPgError(err)
}
