package services

import (
	"context"
	"errors"

	"github.com/dkovalev/adboard/internal/logger"
	"github.com/dkovalev/adboard/internal/models"
	"github.com/dkovalev/adboard/internal/repositories"
)

// Error variables
var (
	ErrAdvertisementNotFound = errors.New("advertisement not found")
	ErrAdvertisementExists   = errors.New("advertisement already exists")
	ErrTokenMismatch         = errors.New("token does not match owner")
)

// AdvertisementReader defines read-only operations for advertisements.
type AdvertisementReader interface {
	GetByID(ctx context.Context, id int64) (*models.AdvertisementDB, error)
}

// AdvertisementWriter defines write operations for advertisements.
type AdvertisementWriter interface {
	Save(ctx context.Context, adv *models.AdvertisementDB) (int64, error)
	Update(ctx context.Context, adv *models.AdvertisementDB) error
	Delete(ctx context.Context, id int64) error
}

// AdvertisementService handles advertisement CRUD. Every mutation is guarded
// by the owner's bearer token.
type AdvertisementService struct {
	reader AdvertisementReader
	writer AdvertisementWriter
	users  UserReader
}

// NewAdvertisementService creates a new AdvertisementService instance.
func NewAdvertisementService(reader AdvertisementReader, writer AdvertisementWriter, users UserReader) *AdvertisementService {
	return &AdvertisementService{reader: reader, writer: writer, users: users}
}

// authorize loads the owning user and compares its stored token with the
// supplied one. Exact, case-sensitive match.
func (svc *AdvertisementService) authorize(ctx context.Context, ownerID int64, token string) error {
	user, err := svc.users.GetByID(ctx, ownerID)
	if err != nil {
		logger.Log.Errorw("failed to get owner", "owner", ownerID, "err", err)
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if user.Token != token {
		return ErrTokenMismatch
	}
	return nil
}

// Create inserts a new advertisement after authorizing the supplied token
// against the supplied owner. Returns the new advertisement id.
func (svc *AdvertisementService) Create(ctx context.Context, header, description string, owner int64, token string) (int64, error) {
	if err := svc.authorize(ctx, owner, token); err != nil {
		return 0, err
	}

	id, err := svc.writer.Save(ctx, &models.AdvertisementDB{
		Header:      header,
		Description: description,
		Owner:       owner,
	})
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrUniqueViolation):
			logger.Log.Errorw("header already taken", "header", header)
			return 0, ErrAdvertisementExists
		case errors.Is(err, repositories.ErrForeignKeyViolation):
			return 0, ErrUserNotFound
		}
		logger.Log.Errorw("failed to save advertisement", "err", err)
		return 0, err
	}

	return id, nil
}

// Get returns the advertisement with the given id.
func (svc *AdvertisementService) Get(ctx context.Context, id int64) (*models.AdvertisementDB, error) {
	adv, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get advertisement", "id", id, "err", err)
		return nil, err
	}
	if adv == nil {
		return nil, ErrAdvertisementNotFound
	}
	return adv, nil
}

// Update overwrites the supplied fields of an existing advertisement after
// authorizing the token against the stored owner.
func (svc *AdvertisementService) Update(ctx context.Context, id int64, patch models.AdvertisementPatch, token string) error {
	adv, err := svc.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := svc.authorize(ctx, adv.Owner, token); err != nil {
		return err
	}

	if patch.Header != nil {
		adv.Header = *patch.Header
	}
	if patch.Description != nil {
		adv.Description = *patch.Description
	}
	if patch.Owner != nil {
		adv.Owner = *patch.Owner
	}

	if err := svc.writer.Update(ctx, adv); err != nil {
		if errors.Is(err, repositories.ErrUniqueViolation) {
			logger.Log.Errorw("header already taken", "header", adv.Header)
			return ErrAdvertisementExists
		}
		logger.Log.Errorw("failed to update advertisement", "id", id, "err", err)
		return err
	}

	return nil
}

// Delete removes an existing advertisement after authorizing the token
// against the stored owner.
func (svc *AdvertisementService) Delete(ctx context.Context, id int64, token string) error {
	adv, err := svc.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := svc.authorize(ctx, adv.Owner, token); err != nil {
		return err
	}

	if err := svc.writer.Delete(ctx, id); err != nil {
		logger.Log.Errorw("failed to delete advertisement", "id", id, "err", err)
		return err
	}

	return nil
}
