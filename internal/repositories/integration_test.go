package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/dkovalev/adboard/internal/models"
)

func setupPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	assert.NoError(t, EnsureSchema(context.Background(), db))

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func TestEnsureSchema_Idempotent(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	// Second run must be a no-op, not an error.
	assert.NoError(t, EnsureSchema(context.Background(), db))
}

func TestRepositories_UserAndAdvertisementFlow(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	userRead := NewUserReadRepository(db)
	userWrite := NewUserWriteRepository(db)
	advRead := NewAdvertisementReadRepository(db)
	advWrite := NewAdvertisementWriteRepository(db)

	mail := "alice@example.com"
	aliceID, err := userWrite.Save(ctx, &models.UserDB{
		Login:    "alice",
		Password: "$2a$10$hash",
		Mail:     &mail,
		Token:    "alice-token",
	})
	assert.NoError(t, err)
	assert.NotZero(t, aliceID)

	// Duplicate login is rejected, the first record stays readable.
	_, err = userWrite.Save(ctx, &models.UserDB{Login: "alice", Password: "x", Token: "y"})
	assert.ErrorIs(t, err, ErrUniqueViolation)

	alice, err := userRead.GetByID(ctx, aliceID)
	assert.NoError(t, err)
	assert.Equal(t, "alice", alice.Login)
	assert.Equal(t, "alice-token", alice.Token)
	assert.False(t, alice.RegistrationTime.IsZero())

	// Missing ids read as nil regardless of other data present.
	missing, err := userRead.GetByID(ctx, aliceID+1000)
	assert.NoError(t, err)
	assert.Nil(t, missing)

	advID, err := advWrite.Save(ctx, &models.AdvertisementDB{
		Header:      "ad1",
		Description: "nice adv",
		Owner:       aliceID,
	})
	assert.NoError(t, err)

	_, err = advWrite.Save(ctx, &models.AdvertisementDB{Header: "ad1", Description: "dup", Owner: aliceID})
	assert.ErrorIs(t, err, ErrUniqueViolation)

	_, err = advWrite.Save(ctx, &models.AdvertisementDB{Header: "ad2", Description: "orphan", Owner: aliceID + 1000})
	assert.ErrorIs(t, err, ErrForeignKeyViolation)

	adv, err := advRead.GetByID(ctx, advID)
	assert.NoError(t, err)
	assert.Equal(t, "nice adv", adv.Description)
	assert.Equal(t, aliceID, adv.Owner)

	adv.Description = "updated description"
	assert.NoError(t, advWrite.Update(ctx, adv))

	adv, err = advRead.GetByID(ctx, advID)
	assert.NoError(t, err)
	assert.Equal(t, "updated description", adv.Description)

	// Delete then read back: gone.
	assert.NoError(t, advWrite.Delete(ctx, advID))
	adv, err = advRead.GetByID(ctx, advID)
	assert.NoError(t, err)
	assert.Nil(t, adv)

	assert.NoError(t, userWrite.Delete(ctx, aliceID))
	alice, err = userRead.GetByID(ctx, aliceID)
	assert.NoError(t, err)
	assert.Nil(t, alice)
}
