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

type AdvertisementReadRepository struct {
	db *sqlx.DB
}

func NewAdvertisementReadRepository(db *sqlx.DB) *AdvertisementReadRepository {
	return &AdvertisementReadRepository{db: db}
}

// GetByID returns the advertisement with the given id, or nil if absent.
func (r *AdvertisementReadRepository) GetByID(ctx context.Context, id int64) (*models.AdvertisementDB, error) {
	const query = `
		SELECT id, header, description, date_of_creation, owner
		FROM advertisements
		WHERE id = $1
	`

	var adv models.AdvertisementDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &adv, query, id)

	logger.Log.Debugw("advertisement select",
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

	return &adv, nil
}

type AdvertisementWriteRepository struct {
	db *sqlx.DB
}

func NewAdvertisementWriteRepository(db *sqlx.DB) *AdvertisementWriteRepository {
	return &AdvertisementWriteRepository{db: db}
}

// Save inserts a new advertisement and returns the generated id.
// A taken header surfaces as ErrUniqueViolation, a missing owner as
// ErrForeignKeyViolation.
func (r *AdvertisementWriteRepository) Save(ctx context.Context, adv *models.AdvertisementDB) (int64, error) {
	const query = `
		INSERT INTO advertisements (header, description, owner)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	args := []any{adv.Header, adv.Description, adv.Owner}

	var id int64
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &id, query, args...)

	logger.Log.Debugw("advertisement insert",
		"query", strings.Join(strings.Fields(query), " "),
		"header", adv.Header,
		"error", err,
	)

	if err != nil {
		return 0, mapPgError(err)
	}

	return id, nil
}

// Update overwrites the mutable advertisement fields. The creation date
// stays as created.
func (r *AdvertisementWriteRepository) Update(ctx context.Context, adv *models.AdvertisementDB) error {
	const query = `
		UPDATE advertisements
		SET header = $1, description = $2, owner = $3
		WHERE id = $4
	`
	args := []any{adv.Header, adv.Description, adv.Owner, adv.ID}

	_, err := ext(ctx, r.db).ExecContext(ctx, query, args...)

	logger.Log.Debugw("advertisement update",
		"query", strings.Join(strings.Fields(query), " "),
		"id", adv.ID,
		"error", err,
	)

	return mapPgError(err)
}

// Delete removes the advertisement with the given id.
func (r *AdvertisementWriteRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM advertisements WHERE id = $1`

	_, err := ext(ctx, r.db).ExecContext(ctx, query, id)

	logger.Log.Debugw("advertisement delete",
		"query", query,
		"id", id,
		"error", err,
	)

	return mapPgError(err)
}
