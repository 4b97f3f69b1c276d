package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/dkovalev/adboard/internal/models"
	"github.com/dkovalev/adboard/internal/repositories"
	"github.com/dkovalev/adboard/internal/services"
)

func newAdvService(t *testing.T) (*services.AdvertisementService, *services.MockAdvertisementReader, *services.MockAdvertisementWriter, *services.MockUserReader) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	reader := services.NewMockAdvertisementReader(ctrl)
	writer := services.NewMockAdvertisementWriter(ctrl)
	users := services.NewMockUserReader(ctrl)
	return services.NewAdvertisementService(reader, writer, users), reader, writer, users
}

func TestAdvertisementService_Create(t *testing.T) {
	ctx := context.Background()
	owner := &models.UserDB{ID: 1, Login: "alice", Token: "alice-token"}

	t.Run("success", func(t *testing.T) {
		svc, _, writer, users := newAdvService(t)

		users.EXPECT().GetByID(gomock.Any(), int64(1)).Return(owner, nil)
		writer.EXPECT().
			Save(gomock.Any(), &models.AdvertisementDB{
				Header:      "ad1",
				Description: "nice adv",
				Owner:       1,
			}).
			Return(int64(1), nil)

		id, err := svc.Create(ctx, "ad1", "nice adv", 1, "alice-token")
		assert.NoError(t, err)
		assert.Equal(t, int64(1), id)
	})

	t.Run("token mismatch skips insert", func(t *testing.T) {
		svc, _, _, users := newAdvService(t)

		users.EXPECT().GetByID(gomock.Any(), int64(1)).Return(owner, nil)

		_, err := svc.Create(ctx, "ad1", "nice adv", 1, "wrong-token")
		assert.ErrorIs(t, err, services.ErrTokenMismatch)
	})

	t.Run("owner missing", func(t *testing.T) {
		svc, _, _, users := newAdvService(t)

		users.EXPECT().GetByID(gomock.Any(), int64(42)).Return(nil, nil)

		_, err := svc.Create(ctx, "ad1", "nice adv", 42, "whatever")
		assert.ErrorIs(t, err, services.ErrUserNotFound)
	})

	t.Run("header already taken", func(t *testing.T) {
		svc, _, writer, users := newAdvService(t)

		users.EXPECT().GetByID(gomock.Any(), int64(1)).Return(owner, nil)
		writer.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			Return(int64(0), repositories.ErrUniqueViolation)

		_, err := svc.Create(ctx, "ad1", "nice adv", 1, "alice-token")
		assert.ErrorIs(t, err, services.ErrAdvertisementExists)
	})

	t.Run("owner deleted between check and insert", func(t *testing.T) {
		svc, _, writer, users := newAdvService(t)

		users.EXPECT().GetByID(gomock.Any(), int64(1)).Return(owner, nil)
		writer.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			Return(int64(0), repositories.ErrForeignKeyViolation)

		_, err := svc.Create(ctx, "ad1", "nice adv", 1, "alice-token")
		assert.ErrorIs(t, err, services.ErrUserNotFound)
	})
}

func TestAdvertisementService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		svc, reader, _, _ := newAdvService(t)

		stored := &models.AdvertisementDB{ID: 1, Header: "ad1", Owner: 1}
		reader.EXPECT().GetByID(gomock.Any(), int64(1)).Return(stored, nil)

		adv, err := svc.Get(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, stored, adv)
	})

	t.Run("not found", func(t *testing.T) {
		svc, reader, _, _ := newAdvService(t)

		reader.EXPECT().GetByID(gomock.Any(), int64(42)).Return(nil, nil)

		_, err := svc.Get(ctx, 42)
		assert.ErrorIs(t, err, services.ErrAdvertisementNotFound)
	})

	t.Run("reader error", func(t *testing.T) {
		svc, reader, _, _ := newAdvService(t)

		reader.EXPECT().GetByID(gomock.Any(), int64(1)).Return(nil, errors.New("db error"))

		_, err := svc.Get(ctx, 1)
		assert.EqualError(t, err, "db error")
	})
}

func TestAdvertisementService_Update(t *testing.T) {
	ctx := context.Background()
	owner := &models.UserDB{ID: 1, Login: "alice", Token: "alice-token"}
	stored := func() *models.AdvertisementDB {
		return &models.AdvertisementDB{ID: 1, Header: "ad1", Description: "nice adv", Owner: 1}
	}

	t.Run("overwrites supplied fields", func(t *testing.T) {
		svc, reader, writer, users := newAdvService(t)

		reader.EXPECT().GetByID(gomock.Any(), int64(1)).Return(stored(), nil)
		users.EXPECT().GetByID(gomock.Any(), int64(1)).Return(owner, nil)

		var updated *models.AdvertisementDB
		writer.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, adv *models.AdvertisementDB) error {
				updated = adv
				return nil
			})

		desc := "updated description"
		err := svc.Update(ctx, 1, models.AdvertisementPatch{Description: &desc}, "alice-token")
		assert.NoError(t, err)

		assert.Equal(t, "ad1", updated.Header)
		assert.Equal(t, "updated description", updated.Description)
		assert.Equal(t, int64(1), updated.Owner)
	})

	t.Run("wrong token never mutates", func(t *testing.T) {
		svc, reader, _, users := newAdvService(t)

		reader.EXPECT().GetByID(gomock.Any(), int64(1)).Return(stored(), nil)
		users.EXPECT().GetByID(gomock.Any(), int64(1)).Return(owner, nil)

		desc := "should not apply"
		err := svc.Update(ctx, 1, models.AdvertisementPatch{Description: &desc}, "wrong-token")
		assert.ErrorIs(t, err, services.ErrTokenMismatch)
	})

	t.Run("authorizes against stored owner, not patch owner", func(t *testing.T) {
		svc, reader, writer, users := newAdvService(t)

		reader.EXPECT().GetByID(gomock.Any(), int64(1)).Return(stored(), nil)
		// Token check must load user 1 (stored owner) even though the patch
		// reassigns the advertisement to user 2.
		users.EXPECT().GetByID(gomock.Any(), int64(1)).Return(owner, nil)
		writer.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		newOwner := int64(2)
		err := svc.Update(ctx, 1, models.AdvertisementPatch{Owner: &newOwner}, "alice-token")
		assert.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		svc, reader, _, _ := newAdvService(t)

		reader.EXPECT().GetByID(gomock.Any(), int64(42)).Return(nil, nil)

		err := svc.Update(ctx, 42, models.AdvertisementPatch{}, "alice-token")
		assert.ErrorIs(t, err, services.ErrAdvertisementNotFound)
	})

	t.Run("new header already taken", func(t *testing.T) {
		svc, reader, writer, users := newAdvService(t)

		reader.EXPECT().GetByID(gomock.Any(), int64(1)).Return(stored(), nil)
		users.EXPECT().GetByID(gomock.Any(), int64(1)).Return(owner, nil)
		writer.EXPECT().Update(gomock.Any(), gomock.Any()).Return(repositories.ErrUniqueViolation)

		header := "ad2"
		err := svc.Update(ctx, 1, models.AdvertisementPatch{Header: &header}, "alice-token")
		assert.ErrorIs(t, err, services.ErrAdvertisementExists)
	})
}

func TestAdvertisementService_Delete(t *testing.T) {
	ctx := context.Background()
	owner := &models.UserDB{ID: 1, Login: "alice", Token: "alice-token"}
	stored := &models.AdvertisementDB{ID: 1, Header: "ad1", Owner: 1}

	t.Run("success", func(t *testing.T) {
		svc, reader, writer, users := newAdvService(t)

		reader.EXPECT().GetByID(gomock.Any(), int64(1)).Return(stored, nil)
		users.EXPECT().GetByID(gomock.Any(), int64(1)).Return(owner, nil)
		writer.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil)

		assert.NoError(t, svc.Delete(ctx, 1, "alice-token"))
	})

	t.Run("wrong token never deletes", func(t *testing.T) {
		svc, reader, _, users := newAdvService(t)

		reader.EXPECT().GetByID(gomock.Any(), int64(1)).Return(stored, nil)
		users.EXPECT().GetByID(gomock.Any(), int64(1)).Return(owner, nil)

		err := svc.Delete(ctx, 1, "wrong-token")
		assert.ErrorIs(t, err, services.ErrTokenMismatch)
	})

	t.Run("not found", func(t *testing.T) {
		svc, reader, _, _ := newAdvService(t)

		reader.EXPECT().GetByID(gomock.Any(), int64(42)).Return(nil, nil)

		err := svc.Delete(ctx, 42, "alice-token")
		assert.ErrorIs(t, err, services.ErrAdvertisementNotFound)
	})
}
